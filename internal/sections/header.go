package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/ui"
)

const (
	desktopLinkClass = "text-white hover:text-aurea-tangerine transition-colors uppercase text-sm font-bold tracking-widest"
	desktopCTAClass  = "bg-white text-aurea-ebony px-6 py-2 font-bold hover:bg-aurea-tangerine hover:text-white transition-colors uppercase text-sm"
	mobileLinkClass  = "text-white hover:text-aurea-tangerine uppercase font-bold"
	mobileCTAClass   = "text-aurea-tangerine font-bold uppercase"
)

// Header renders the fixed top bar and, when the menu is open, the mobile
// panel. The toggle and every panel link ask htmx for the header in its next
// state and swap it in place.
func Header(brand content.Brand, menu nav.Menu) g.Node {
	return h.Header(
		h.ID(nav.HeaderID),
		h.Class("fixed top-0 w-full z-50 bg-aurea-ebony border-b border-gray-800"),
		g.Attr("data-menu-state", menu.State().String()),
		h.Div(
			h.Class("container mx-auto px-6 py-4 flex justify-between items-center"),
			h.Div(
				h.Class("flex items-center gap-2"),
				h.Span(h.Class("font-logo text-3xl text-white font-medium tracking-tight"), g.Text(brand.Logo)),
			),
			h.Nav(
				h.Class("hidden md:flex items-center gap-8"),
				g.Attr("aria-label", "Principal"),
				g.Attr("data-nav", "desktop"),
				g.Map(nav.Main, func(l nav.Link) g.Node {
					class := desktopLinkClass
					if l.CTA {
						class = desktopCTAClass
					}
					return h.A(h.Href(l.Href()), h.Class(class), g.Text(l.Label))
				}),
			),
			menuToggle(menu),
		),
		g.If(menu.IsOpen(), mobilePanel(menu)),
	)
}

// menuToggle points the button at the header in the state Toggle leads to.
func menuToggle(menu nav.Menu) g.Node {
	next := menu
	nextState := next.Toggle()
	icon, label := ui.IconMenu, "Abrir menu"
	if menu.IsOpen() {
		icon, label = ui.IconClose, "Fechar menu"
	}
	return h.Button(
		h.Type("button"),
		h.Class("md:hidden text-white"),
		g.Attr("data-menu-toggle", ""),
		g.Attr("aria-label", label),
		g.Attr("aria-expanded", boolAttr(menu.IsOpen())),
		g.Attr("aria-controls", "mobile-menu"),
		swapHeader(nextState),
		icon.Render(28, ""),
	)
}

// mobilePanel renders the small-viewport links. Each one navigates to the
// href Follow returns and swaps in the header in the state Follow leaves.
func mobilePanel(menu nav.Menu) g.Node {
	return h.Div(
		h.ID("mobile-menu"),
		h.Class("md:hidden bg-aurea-ebony border-t border-gray-800 absolute w-full p-6 flex flex-col gap-4 shadow-xl"),
		g.Attr("data-nav", "mobile"),
		g.Map(nav.Main, func(l nav.Link) g.Node {
			class := mobileLinkClass
			if l.CTA {
				class = mobileCTAClass
			}
			next := menu
			href := next.Follow(l.Anchor)
			return h.A(
				h.Href(href),
				h.Class(class),
				swapHeader(next.State()),
				g.Text(l.Label),
			)
		}),
	)
}

func swapHeader(next nav.MenuState) g.Node {
	return g.Group{
		g.Attr("hx-get", nav.FragmentURL(next)),
		g.Attr("hx-target", "#"+nav.HeaderID),
		g.Attr("hx-swap", "outerHTML"),
	}
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
