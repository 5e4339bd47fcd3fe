package nav

import (
	"net/url"
	"strings"
)

// Anchor ids exposed by page sections. Header links and the hero scroll
// action depend on them, so renaming one is a breaking change.
const (
	AnchorConcept  = "o-combo"
	AnchorBenefits = "beneficios"
	AnchorPricing  = "precos"
	AnchorContact  = "contato"
)

// HeaderID is the element id of the header; htmx swaps it in place.
const HeaderID = "site-header"

// FragmentPath serves the header fragment for a given menu state.
const FragmentPath = "/fragments/header"

// Link is a same-page navigation entry.
type Link struct {
	Anchor string
	Label  string
	// CTA marks the link rendered as the call-to-action pill.
	CTA bool
}

// Href returns the fragment URL of the link.
func (l Link) Href() string {
	return "#" + l.Anchor
}

// Main is the header navigation, in display order.
var Main = []Link{
	{Anchor: AnchorConcept, Label: "O Combo"},
	{Anchor: AnchorBenefits, Label: "Benefícios"},
	{Anchor: AnchorPricing, Label: "Valores"},
	{Anchor: AnchorContact, Label: "Fale Conosco", CTA: true},
}

// MenuState is the mobile panel visibility.
type MenuState uint8

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// ParseMenuState maps a query value to a state. Anything but "open" is closed.
func ParseMenuState(v string) MenuState {
	if strings.EqualFold(strings.TrimSpace(v), "open") {
		return MenuOpen
	}
	return MenuClosed
}

// Menu is the header's two-state machine. The zero value is closed.
type Menu struct {
	state MenuState
}

// MenuAt returns a menu in the given state.
func MenuAt(s MenuState) Menu {
	if s != MenuOpen {
		s = MenuClosed
	}
	return Menu{state: s}
}

// State returns the current state.
func (m Menu) State() MenuState { return m.state }

// IsOpen reports whether the mobile panel is visible.
func (m Menu) IsOpen() bool { return m.state == MenuOpen }

// Toggle flips the panel and returns the new state.
func (m *Menu) Toggle() MenuState {
	if m.IsOpen() {
		m.state = MenuClosed
	} else {
		m.state = MenuOpen
	}
	return m.state
}

// Follow records activation of the navigation link to anchor and returns the
// in-page href to navigate to. An open panel closes so the destination
// section is not hidden behind it.
func (m *Menu) Follow(anchor string) string {
	m.state = MenuClosed
	return "#" + strings.TrimPrefix(strings.TrimSpace(anchor), "#")
}

// FragmentURL is the htmx endpoint rendering the header in state s.
func FragmentURL(s MenuState) string {
	q := url.Values{}
	q.Set("menu", s.String())
	return FragmentPath + "?" + q.Encode()
}
