package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
)

// Footer renders the closing brand line and tagline.
func Footer(b content.Brand) g.Node {
	return h.Footer(
		h.Class("bg-aurea-ebony text-white py-16 border-t border-gray-800"),
		g.Attr("data-section", "footer"),
		h.Div(
			h.Class("container mx-auto px-6 text-center"),
			h.Div(
				h.Class("flex flex-col items-center"),
				h.H3(h.Class("font-display text-2xl uppercase mb-2"), g.Text(b.Name)),
				h.P(h.Class("text-gray-400 font-light tracking-wider uppercase text-sm"), g.Text(b.Tagline)),
			),
		),
	)
}
