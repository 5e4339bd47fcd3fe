package page

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/seo"
)

const (
	// HTMXScript is the htmx build the header relies on.
	HTMXScript = "https://unpkg.com/htmx.org@1.9.12"
	// TailwindScript is the browser build of the utility classes used by
	// every section. It must run before first paint, so it is not deferred.
	TailwindScript = "https://cdn.tailwindcss.com/3.4.5"
	// IconifyScript resolves the data-icon placeholders into SVG.
	IconifyScript = "https://code.iconify.design/3/3.1.1/iconify.min.js"
	fontsCSS      = "https://fonts.googleapis.com/css2?family=Anton&family=Inter:wght@300;400;700&display=swap"
)

func layout(meta seo.Meta, assets string, body g.Node) g.Node {
	assets = strings.TrimRight(assets, "/")
	return h.Doctype(
		h.HTML(
			h.Lang(meta.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(meta.Title)),
				g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
				g.If(meta.Canonical != "", h.Link(h.Rel("canonical"), h.Href(meta.Canonical))),
				h.Meta(h.Name("referrer"), h.Content("no-referrer")),
				openGraph(meta),
				h.Script(h.Src(TailwindScript)),
				h.Script(h.Src(assets+"/tailwind.config.js")),
				h.Link(h.Rel("stylesheet"), h.Href(fontsCSS)),
				h.Link(h.Rel("stylesheet"), h.Href(assets+"/app.css")),
				h.Script(h.Src(HTMXScript), h.Defer()),
				h.Script(h.Src(IconifyScript), h.Defer()),
				h.Script(h.Src(assets+"/app.js"), h.Defer()),
				g.Map(meta.JSONLD, func(payload string) g.Node {
					// json.Marshal escapes <, > and & so the payload cannot close the tag.
					return h.Script(h.Type("application/ld+json"), g.Raw(payload))
				}),
			),
			h.Body(body),
		),
	)
}

func openGraph(meta seo.Meta) g.Node {
	props := [][2]string{
		{"og:title", meta.OG.Title},
		{"og:description", meta.OG.Description},
		{"og:type", meta.OG.Type},
		{"og:url", meta.OG.URL},
		{"og:image", meta.OG.Image},
		{"og:site_name", meta.OG.SiteName},
		{"og:locale", meta.OG.Locale},
	}
	nodes := make(g.Group, 0, len(props)+2)
	for _, p := range props {
		if p[1] == "" {
			continue
		}
		nodes = append(nodes, h.Meta(g.Attr("property", p[0]), h.Content(p[1])))
	}
	if meta.Twitter.Card != "" {
		nodes = append(nodes, h.Meta(h.Name("twitter:card"), h.Content(meta.Twitter.Card)))
	}
	if meta.Twitter.Image != "" {
		nodes = append(nodes, h.Meta(h.Name("twitter:image"), h.Content(meta.Twitter.Image)))
	}
	return nodes
}
