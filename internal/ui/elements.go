package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultTitleColor is the brand ebony used for headings on light backgrounds.
const DefaultTitleColor = "text-aurea-ebony"

type titleOptions struct {
	color  string
	center bool
}

// TitleOption customises SectionTitle.
type TitleOption func(*titleOptions)

// WithColor overrides the heading color token.
func WithColor(token string) TitleOption {
	return func(o *titleOptions) {
		if token != "" {
			o.color = token
		}
	}
}

// Centered aligns the heading to the center.
func Centered() TitleOption {
	return func(o *titleOptions) { o.center = true }
}

// SectionTitle renders a section heading, left aligned in the brand color by default.
func SectionTitle(text string, opts ...TitleOption) g.Node {
	o := titleOptions{color: DefaultTitleColor}
	for _, opt := range opts {
		opt(&o)
	}
	align := "text-left"
	if o.center {
		align = "text-center"
	}
	return h.H2(
		h.Class("font-display text-4xl md:text-6xl uppercase tracking-tight mb-8 "+o.color+" "+align),
		g.Text(text),
	)
}

// ChecklistItem pairs the confirmed glyph with a line of text. Light items
// are meant for dark backgrounds.
func ChecklistItem(light bool, children ...g.Node) g.Node {
	glyphColor, textColor := "text-aurea-blue", "text-aurea-ebony"
	if light {
		glyphColor, textColor = "text-aurea-tangerine", "text-gray-300"
	}
	return h.Div(
		h.Class("flex items-start gap-4 mb-4"),
		g.Attr("data-checklist-item", ""),
		h.Div(
			h.Class("mt-1 min-w-[24px] "+glyphColor),
			IconCheck.Render(24, ""),
		),
		h.P(h.Class("text-lg leading-relaxed "+textColor), g.Group(children)),
	)
}

// Component adapts a node tree into a templ component so it can be served
// with templ.Handler.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}
