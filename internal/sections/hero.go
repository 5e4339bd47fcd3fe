package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/ui"
)

// Hero renders the introductory banner. scroll is the in-page behaviour of
// the call to action; a zero handler leaves the button inert.
func Hero(hero content.Hero, scroll ui.Handler) g.Node {
	return h.Section(
		h.Class("relative pt-32 pb-20 md:pt-48 md:pb-32 bg-aurea-blue text-white overflow-hidden"),
		g.Attr("data-section", "hero"),
		h.Div(h.Class("absolute top-0 right-0 w-[600px] h-[600px] bg-white opacity-5 rounded-full blur-3xl -translate-y-1/3 translate-x-1/3")),
		h.Div(h.Class("absolute bottom-0 left-0 w-[400px] h-[400px] bg-aurea-tangerine opacity-20 rounded-full blur-3xl translate-y-1/3 -translate-x-1/4")),
		h.Div(
			h.Class("container mx-auto px-6 relative z-10"),
			h.Div(
				h.Class("max-w-5xl"),
				h.H1(
					h.Class("font-display text-5xl md:text-8xl uppercase leading-[0.9] mb-6"),
					g.Text(hero.Title),
					h.Br(),
					h.Span(h.Class("text-transparent stroke-white text-outline"), g.Text(hero.TitleOutline)),
				),
				h.H2(
					h.Class("text-xl md:text-3xl font-light mb-8 max-w-3xl text-gray-100 leading-normal"),
					g.Text(hero.Subtitle),
				),
				h.Div(
					h.Class("flex items-center gap-4 mb-10 text-aurea-tangerine font-bold uppercase tracking-widest bg-white/10 p-4 backdrop-blur-sm w-fit"),
					ui.IconLayers.Render(24, ""),
					h.Span(g.Text(hero.Badge)),
					h.Span(h.Class("w-px h-6 bg-white/20")),
					h.Span(h.Class("text-white font-normal"), g.Text(hero.BadgeNote)),
				),
				ui.MustAction(ui.ActionOptions{
					Variant:  ui.VariantPrimary,
					Handler:  scroll,
					Children: []g.Node{g.Text(hero.CTA)},
				}),
			),
		),
	)
}
