package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/ui"
)

// Reservation renders the call to action pointing at the intake form.
func Reservation(r content.Reservation) g.Node {
	title := make(g.Group, 0, 2*len(r.Title))
	for i, line := range r.Title {
		if i > 0 {
			title = append(title, h.Br())
		}
		title = append(title, g.Text(line))
	}

	return h.Section(
		h.Class("py-24 bg-aurea-ebony text-white text-center"),
		g.Attr("data-section", "reservation"),
		h.Div(
			h.Class("container mx-auto px-6"),
			h.Div(
				h.Class("max-w-4xl mx-auto border border-aurea-blue/30 bg-white/5 p-12 rounded-[2rem] relative overflow-hidden"),
				h.Div(h.Class("absolute top-0 right-0 w-64 h-64 bg-aurea-blue blur-3xl opacity-20 -translate-y-1/2 translate-x-1/2")),
				h.H2(h.Class("font-display text-4xl md:text-6xl uppercase mb-6 relative z-10"), title),
				h.P(h.Class("text-xl text-gray-300 mb-10 relative z-10"), g.Text(r.Body)),
				ui.MustAction(ui.ActionOptions{
					Variant:  r.Variant,
					Class:    "text-xl px-12 py-5 relative z-10",
					Href:     r.FormURL,
					Children: []g.Node{g.Text(r.CTA)},
				}),
			),
		),
	)
}
