package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/ui"
)

// Strategy renders the strategic-value grid on the dark background.
func Strategy(s content.Strategy) g.Node {
	return h.Section(
		h.Class("py-20 bg-aurea-ebony text-white relative overflow-hidden"),
		g.Attr("data-section", "strategy"),
		h.Div(h.Class("absolute top-0 right-0 w-full h-full bg-cubes opacity-5")),
		h.Div(
			h.Class("container mx-auto px-6 relative z-10"),
			h.Div(
				h.Class("max-w-4xl mx-auto"),
				ui.SectionTitle(s.Title, ui.WithColor("text-white"), ui.Centered()),
				h.Div(
					h.Class("grid md:grid-cols-2 gap-8 mt-12"),
					g.Map(s.Points, func(point string) g.Node {
						return h.Div(
							h.Class("bg-white/5 p-6 border border-white/10 rounded-lg hover:bg-white/10 transition-colors"),
							ui.ChecklistItem(true, g.Text(point)),
						)
					}),
					g.If(s.Closing != "", h.Div(
						h.Class("md:col-span-2 bg-aurea-tangerine/20 p-6 border border-aurea-tangerine/30 rounded-lg text-center"),
						h.P(h.Class("text-xl font-bold text-white"), g.Text(s.Closing)),
					)),
				),
			),
		),
	)
}
