package ui

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrUnknownIcon is returned when an icon name is outside the supported set.
var ErrUnknownIcon = errors.New("ui: unknown icon")

// Icon names a glyph from the closed set the page knows how to draw.
type Icon string

const (
	IconTarget        Icon = "target"
	IconAward         Icon = "award"
	IconLayers        Icon = "layers"
	IconZap           Icon = "zap"
	IconCheck         Icon = "check"
	IconBrainCircuit  Icon = "brain-circuit"
	IconTrendingUp    Icon = "trending-up"
	IconMessageCircle Icon = "message-circle"
	IconMenu          Icon = "menu"
	IconClose         Icon = "x"
)

// glyphs maps every icon to its lucide glyph id.
var glyphs = map[Icon]string{
	IconTarget:        "lucide:target",
	IconAward:         "lucide:award",
	IconLayers:        "lucide:layers",
	IconZap:           "lucide:zap",
	IconCheck:         "lucide:check",
	IconBrainCircuit:  "lucide:brain-circuit",
	IconTrendingUp:    "lucide:trending-up",
	IconMessageCircle: "lucide:message-circle",
	IconMenu:          "lucide:menu",
	IconClose:         "lucide:x",
}

// ParseIcon resolves a content-authored icon name.
func ParseIcon(name string) (Icon, error) {
	icon := Icon(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := glyphs[icon]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownIcon, name)
	}
	return icon, nil
}

// UnmarshalYAML rejects unknown icon names while the content file is parsed.
func (i *Icon) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	icon, err := ParseIcon(raw)
	if err != nil {
		return err
	}
	*i = icon
	return nil
}

// Glyph returns the glyph id for the icon.
func (i Icon) Glyph() string {
	return glyphs[i]
}

// Render draws the icon at the given pixel size.
func (i Icon) Render(size int, class string) g.Node {
	return h.Span(
		h.Class(strings.TrimSpace("iconify inline-block "+class)),
		g.Attr("data-icon", i.Glyph()),
		g.Attr("data-icon-name", string(i)),
		g.Attr("data-width", fmt.Sprint(size)),
		g.Attr("data-height", fmt.Sprint(size)),
		g.Attr("aria-hidden", "true"),
	)
}
