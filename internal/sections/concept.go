package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/ui"
)

// Concept explains the bundle next to the checklist of what a student gets.
func Concept(c content.Concept) g.Node {
	return h.Section(
		h.ID(nav.AnchorConcept),
		h.Class("py-20 bg-white"),
		g.Attr("data-section", "concept"),
		h.Div(
			h.Class("container mx-auto px-6"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-16 items-center"),
				h.Div(
					h.Div(
						h.Class("flex items-center gap-2 mb-4 text-aurea-tangerine font-bold uppercase tracking-widest"),
						ui.IconZap.Render(20, ""),
						h.Span(g.Text(c.Eyebrow)),
					),
					ui.SectionTitle(c.Title),
					// BodyHTML is sanitised when the content is loaded.
					h.Div(h.Class("prose-concept space-y-6 text-lg text-gray-700 mb-8"), g.Raw(c.BodyHTML)),
				),
				h.Div(
					h.Class("bg-gray-50 p-8 md:p-10 border-l-8 border-aurea-tangerine shadow-xl"),
					h.H3(h.Class("font-display text-2xl uppercase mb-6 text-aurea-ebony"), g.Text(c.CardTitle)),
					h.Div(
						h.Class("space-y-2"),
						g.Map(c.Checklist, func(item string) g.Node {
							return ui.ChecklistItem(false, g.Text(item))
						}),
					),
				),
			),
		),
	)
}
