package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/ui"
)

// Benefits renders one card per benefit, in table order.
func Benefits(b content.Benefits) g.Node {
	return h.Section(
		h.ID(nav.AnchorBenefits),
		h.Class("py-24 bg-gray-50"),
		g.Attr("data-section", "benefits"),
		h.Div(
			h.Class("container mx-auto px-6"),
			ui.SectionTitle(b.Title, ui.Centered()),
			h.P(h.Class("text-center text-gray-600 mb-12"), g.Text(b.Lead)),
			h.Div(
				h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				benefitCards(b.Items),
			),
		),
	)
}

func benefitCards(items []content.Benefit) g.Node {
	cards := make(g.Group, 0, len(items))
	for i, item := range items {
		cards = append(cards, h.Div(
			h.Class("bg-white p-6 border border-gray-100 shadow-sm flex items-center gap-4 hover:border-aurea-blue transition-colors"),
			g.Attr("data-benefit-index", strconv.Itoa(i)),
			h.Div(h.Class("text-aurea-tangerine"), item.Icon.Render(24, "")),
			h.Span(h.Class("font-bold text-gray-800"), g.Attr("data-benefit-text", ""), g.Text(item.Text)),
		))
	}
	return cards
}
