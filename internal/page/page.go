package page

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/sections"
	"aureacursos.com.br/combo-web/internal/seo"
	"aureacursos.com.br/combo-web/internal/ui"
)

// Kind identifies one of the page sections.
type Kind string

const (
	KindHeader      Kind = "header"
	KindHero        Kind = "hero"
	KindConcept     Kind = "concept"
	KindBenefits    Kind = "benefits"
	KindStrategy    Kind = "strategy"
	KindPricing     Kind = "pricing"
	KindReservation Kind = "reservation"
	KindContacts    Kind = "contacts"
	KindFooter      Kind = "footer"
)

// Order is the fixed vertical order of the sections.
var Order = []Kind{
	KindHeader,
	KindHero,
	KindConcept,
	KindBenefits,
	KindStrategy,
	KindPricing,
	KindReservation,
	KindContacts,
	KindFooter,
}

// anchors maps sections to the id they expose for same-page navigation.
var anchors = map[Kind]string{
	KindConcept:  nav.AnchorConcept,
	KindBenefits: nav.AnchorBenefits,
	KindPricing:  nav.AnchorPricing,
	KindContacts: nav.AnchorContact,
}

// Option customises a Page.
type Option func(*Page)

// WithMenu renders the header with the menu in the given state.
func WithMenu(s nav.MenuState) Option {
	return func(p *Page) { p.menu = nav.MenuAt(s) }
}

// WithoutSection drops a section from the page.
func WithoutSection(k Kind) Option {
	return func(p *Page) { p.omit[k] = struct{}{} }
}

// WithBaseURL sets the absolute origin used for canonical and OG URLs.
func WithBaseURL(base string) Option {
	return func(p *Page) { p.baseURL = base }
}

// WithAssetPrefix overrides where stylesheets and scripts are served from.
func WithAssetPrefix(prefix string) Option {
	return func(p *Page) {
		if prefix != "" {
			p.assetPrefix = prefix
		}
	}
}

// Page is the landing page container. It is built per request and owns the
// only mutable UI state, the header menu.
type Page struct {
	landing     *content.Landing
	menu        nav.Menu
	omit        map[Kind]struct{}
	baseURL     string
	assetPrefix string
}

// New assembles the page from its content tables.
func New(l *content.Landing, opts ...Option) *Page {
	if l == nil {
		l = &content.Landing{}
	}
	p := &Page{
		landing:     l,
		omit:        map[Kind]struct{}{},
		assetPrefix: "/assets",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Menu returns the header menu.
func (p *Page) Menu() nav.Menu { return p.menu }

// Kinds lists the rendered sections in display order.
func (p *Page) Kinds() []Kind {
	out := make([]Kind, 0, len(Order))
	for _, k := range Order {
		if _, skip := p.omit[k]; !skip {
			out = append(out, k)
		}
	}
	return out
}

// Anchors lists the anchor ids present on the page, in display order.
func (p *Page) Anchors() []string {
	var out []string
	for _, k := range p.Kinds() {
		if id, ok := anchors[k]; ok {
			out = append(out, id)
		}
	}
	return out
}

// HasAnchor reports whether a section with the id is rendered.
func (p *Page) HasAnchor(id string) bool {
	for _, a := range p.Anchors() {
		if a == id {
			return true
		}
	}
	return false
}

// ScrollTarget resolves a scroll request. A missing target yields false and
// leaves the page untouched.
func (p *Page) ScrollTarget(id string) (string, bool) {
	if !p.HasAnchor(id) {
		return "", false
	}
	return id, true
}

// heroHandler is the hero call to action: scroll to pricing when present.
func (p *Page) heroHandler() ui.Handler {
	target, ok := p.ScrollTarget(nav.AnchorPricing)
	if !ok {
		return ui.Handler{}
	}
	return ui.ScrollTo(target)
}

// Section renders a single section.
func (p *Page) Section(k Kind) g.Node {
	l := p.landing
	switch k {
	case KindHeader:
		return sections.Header(l.Brand, p.menu)
	case KindHero:
		return sections.Hero(l.Hero, p.heroHandler())
	case KindConcept:
		return sections.Concept(l.Concept)
	case KindBenefits:
		return sections.Benefits(l.Benefits)
	case KindStrategy:
		return sections.Strategy(l.Strategy)
	case KindPricing:
		return sections.Pricing(l.Pricing)
	case KindReservation:
		return sections.Reservation(l.Reservation)
	case KindContacts:
		return sections.Contacts(l.Contacts)
	case KindFooter:
		return sections.Footer(l.Brand)
	}
	return nil
}

// Body renders the root container: the header, the main column and the
// footer.
func (p *Page) Body() g.Node {
	var header, footer g.Node
	main := make(g.Group, 0, len(Order))
	for _, k := range p.Kinds() {
		switch k {
		case KindHeader:
			header = p.Section(k)
		case KindFooter:
			footer = p.Section(k)
		default:
			main = append(main, p.Section(k))
		}
	}
	return h.Div(
		h.ID("app"),
		h.Class("font-sans antialiased text-aurea-ebony bg-white"),
		header,
		h.Main(main),
		footer,
	)
}

// Meta builds the document metadata from the content.
func (p *Page) Meta() seo.Meta {
	l := p.landing
	var canonical string
	if p.baseURL != "" {
		canonical = seo.Absolute(p.baseURL, "/")
	}
	image := seo.Absolute(p.baseURL, l.SEO.Image)
	lang, _ := l.SEO.Language()

	offers := make([]seo.Offer, 0, len(l.Pricing.Tiers))
	for _, t := range l.Pricing.Tiers {
		offers = append(offers, seo.Offer{
			Name:     t.Title,
			Price:    int64(t.Price),
			Currency: "BRL",
			URL:      t.PayInFullURL,
		})
	}

	m := seo.Meta{
		Title:       l.SEO.Title,
		Description: l.SEO.Description,
		Canonical:   canonical,
		Lang:        lang.String(),
		OG: seo.OpenGraph{
			Title:       l.SEO.Title,
			Description: l.SEO.Description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    l.Brand.Name,
			Locale:      l.SEO.Locale,
		},
		Twitter: seo.Twitter{Card: "summary_large_image", Image: image},
	}
	m.JSONLD = append(m.JSONLD,
		seo.JSON(seo.EducationalOrganization(l.Brand.Name, canonical, "")),
		seo.JSON(seo.Course(l.SEO.Title, l.SEO.Description, l.Brand.Name, offers)),
	)
	return m
}

// Document renders the complete HTML document.
func (p *Page) Document() g.Node {
	return layout(p.Meta(), p.assetPrefix, p.Body())
}

// Component exposes the document as a templ component.
func (p *Page) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return p.Document().Render(w)
	})
}

// HeaderComponent renders only the header, for htmx swaps.
func (p *Page) HeaderComponent() templ.Component {
	return ui.Component(p.Section(KindHeader))
}
