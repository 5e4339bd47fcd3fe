package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrUnknownVariant is returned when an action is built with a variant outside the closed set.
var ErrUnknownVariant = errors.New("ui: unknown action variant")

// Variant selects one of the fixed visual treatments of an action element.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
)

// Variants lists the supported variants in declaration order.
var Variants = []Variant{VariantPrimary, VariantSecondary, VariantOutline}

const actionBaseClass = "px-8 py-4 font-bold text-lg uppercase tracking-wide transition-all duration-300 transform hover:-translate-y-1 hover:shadow-lg rounded-none inline-flex items-center justify-center"

var variantClasses = map[Variant]string{
	VariantPrimary:   "action-primary bg-aurea-tangerine text-white hover:bg-orange-600",
	VariantSecondary: "action-secondary bg-aurea-blue text-white hover:bg-blue-800",
	VariantOutline:   "action-outline border-2 border-aurea-tangerine text-aurea-tangerine hover:bg-aurea-tangerine hover:text-white",
}

// ParseVariant resolves a variant name. Empty input selects the primary variant.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return VariantPrimary, nil
	}
	v := Variant(name)
	if _, ok := variantClasses[v]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// UnmarshalYAML fails the content load when a variant name is unknown.
func (v *Variant) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseVariant(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Class returns the variant's designated class list.
func (v Variant) Class() string {
	return variantClasses[v]
}

// Handler is an in-page behaviour triggered by an action rendered as a button.
// The zero Handler does nothing when activated.
type Handler struct {
	kind   string
	target string
}

// ScrollTo asks the browser to bring the element with the given id into view.
func ScrollTo(anchor string) Handler {
	anchor = strings.TrimPrefix(strings.TrimSpace(anchor), "#")
	if anchor == "" {
		return Handler{}
	}
	return Handler{kind: "scroll", target: anchor}
}

// IsZero reports whether the handler is a no-op.
func (hd Handler) IsZero() bool { return hd.kind == "" }

// Target returns the element id the handler acts on.
func (hd Handler) Target() string { return hd.target }

func (hd Handler) attrs() g.Node {
	if hd.IsZero() {
		return nil
	}
	return g.Group{
		g.Attr("data-action", hd.kind),
		g.Attr("data-target", hd.target),
	}
}

// ActionOptions configures an action element. When Href is set the action
// renders as an outbound link and Handler is ignored.
type ActionOptions struct {
	Variant  Variant
	Class    string
	Href     string
	Handler  Handler
	Children []g.Node
}

// Action is a validated clickable element. It implements gomponents.Node.
type Action struct {
	variant  Variant
	class    string
	href     string
	handler  Handler
	children []g.Node
}

// NewAction validates the options and builds the action.
func NewAction(opts ActionOptions) (Action, error) {
	variant := opts.Variant
	if variant == "" {
		variant = VariantPrimary
	}
	if _, ok := variantClasses[variant]; !ok {
		return Action{}, fmt.Errorf("%w %q", ErrUnknownVariant, string(variant))
	}
	return Action{
		variant:  variant,
		class:    strings.TrimSpace(opts.Class),
		href:     strings.TrimSpace(opts.Href),
		handler:  opts.Handler,
		children: opts.Children,
	}, nil
}

// MustAction is NewAction for statically authored content; it panics on error.
func MustAction(opts ActionOptions) Action {
	a, err := NewAction(opts)
	if err != nil {
		panic(err)
	}
	return a
}

// Variant returns the action's variant.
func (a Action) Variant() Variant { return a.variant }

// IsLink reports whether the action renders as an outbound link.
func (a Action) IsLink() bool { return a.href != "" }

func (a Action) classes() string {
	parts := []string{actionBaseClass, a.variant.Class()}
	if a.class != "" {
		parts = append(parts, a.class)
	}
	return strings.Join(parts, " ")
}

// Render writes the action as a link or a button.
func (a Action) Render(w io.Writer) error {
	if a.IsLink() {
		return ExternalLink(a.href, h.Class(a.classes()), g.Group(a.children)).Render(w)
	}
	return h.Button(
		h.Type("button"),
		h.Class(a.classes()),
		a.handler.attrs(),
		g.Group(a.children),
	).Render(w)
}

// ExternalLink renders a link that leaves the page. The target opens in a new
// browsing context without opener access and without a referrer.
func ExternalLink(href string, children ...g.Node) g.Node {
	return h.A(
		h.Href(href),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		g.Group(children),
	)
}
