package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/ui"
)

// MessagingPrefix opens a WhatsApp conversation when followed by a phone number.
const MessagingPrefix = "https://wa.me/"

// DeepLink builds the conversation link for a phone number. The digits are
// used verbatim.
func DeepLink(phone string) string {
	return MessagingPrefix + phone
}

// Contacts renders the contact directory.
func Contacts(c content.Contacts) g.Node {
	return h.Section(
		h.ID(nav.AnchorContact),
		h.Class("py-24 bg-gray-50"),
		g.Attr("data-section", "contacts"),
		h.Div(
			h.Class("container mx-auto px-6"),
			h.Div(
				h.Class("text-center mb-16"),
				h.H2(h.Class("font-display text-4xl md:text-6xl uppercase text-aurea-ebony mb-4"), g.Text(c.Title)),
				h.Div(h.Class("w-24 h-1.5 bg-aurea-blue mx-auto")),
			),
			h.Div(
				h.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Map(c.Entries, contactCard),
			),
		),
	)
}

func contactCard(c content.Contact) g.Node {
	return h.Div(
		h.Class("bg-white rounded-[2rem] p-8 shadow-xl shadow-gray-100/50 flex flex-col items-center text-center hover:-translate-y-2 transition-transform duration-300 border border-transparent hover:border-aurea-blue/10"),
		g.Attr("data-contact", c.Name),
		h.Div(
			h.Class("w-24 h-24 rounded-full bg-aurea-blue flex items-center justify-center text-white text-4xl font-display mb-6"),
			g.Attr("data-avatar", ""),
			g.Text(c.Initial),
		),
		h.H3(h.Class("font-bold text-xl text-aurea-ebony mb-2"), g.Text(c.Name)),
		// The role slot keeps its height when empty so cards stay aligned.
		h.P(
			h.Class("text-sm text-gray-400 uppercase tracking-widest font-bold mb-8 min-h-[1.25rem]"),
			g.Attr("data-role-slot", ""),
			g.Text(c.Role),
		),
		ui.ExternalLink(DeepLink(c.Phone),
			h.Class("w-full bg-[#25D366] hover:bg-[#1da851] text-white py-3 px-6 rounded-full font-bold flex items-center justify-center gap-2 transition-colors shadow-lg shadow-green-200"),
			g.Attr("data-deep-link", ""),
			ui.IconMessageCircle.Render(20, ""),
			h.Span(g.Text(c.Action)),
		),
	)
}
