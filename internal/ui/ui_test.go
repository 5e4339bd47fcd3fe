package ui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"aureacursos.com.br/combo-web/internal/testutil"
)

func TestActionRendersOneElementPerVariant(t *testing.T) {
	t.Parallel()

	for _, variant := range Variants {
		variant := variant
		t.Run(string(variant), func(t *testing.T) {
			t.Parallel()

			action, err := NewAction(ActionOptions{
				Variant:  variant,
				Handler:  ScrollTo("precos"),
				Children: []g.Node{g.Text("Quero")},
			})
			require.NoError(t, err)

			doc := testutil.RenderNode(t, action)
			interactive := doc.Find("a, button")
			require.Equal(t, 1, interactive.Length(), "exactly one interactive element")
			require.True(t, interactive.HasClass("action-"+string(variant)), "variant class must be present")
			for _, other := range Variants {
				if other == variant {
					continue
				}
				require.False(t, interactive.HasClass("action-"+string(other)), "class of %s must not leak into %s", other, variant)
			}
		})
	}
}

func TestNewActionRejectsUnknownVariant(t *testing.T) {
	t.Parallel()

	_, err := NewAction(ActionOptions{Variant: "ghost"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownVariant))

	require.Panics(t, func() {
		MustAction(ActionOptions{Variant: "ghost"})
	})
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	v, err := ParseVariant("")
	require.NoError(t, err)
	require.Equal(t, VariantPrimary, v)

	v, err = ParseVariant(" Outline ")
	require.NoError(t, err)
	require.Equal(t, VariantOutline, v)

	_, err = ParseVariant("danger")
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestActionWithHrefIsIsolatedLink(t *testing.T) {
	t.Parallel()

	action := MustAction(ActionOptions{
		Variant:  VariantPrimary,
		Class:    "text-xl",
		Href:     "https://forms.example.com/reserva",
		Handler:  ScrollTo("precos"),
		Children: []g.Node{g.Text("Reservar")},
	})
	require.True(t, action.IsLink())

	doc := testutil.RenderNode(t, action)
	require.Equal(t, 0, doc.Find("button").Length())

	link := doc.Find("a")
	require.Equal(t, 1, link.Length())
	require.Equal(t, "https://forms.example.com/reserva", link.AttrOr("href", ""))
	require.Equal(t, "_blank", link.AttrOr("target", ""))
	require.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))
	require.True(t, link.HasClass("text-xl"))
	_, hasAction := link.Attr("data-action")
	require.False(t, hasAction, "links never carry in-page handlers")
}

func TestActionButtonCarriesHandler(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, MustAction(ActionOptions{Handler: ScrollTo("#precos")}))
	button := doc.Find("button")
	require.Equal(t, 1, button.Length())
	require.Equal(t, "button", button.AttrOr("type", ""))
	require.Equal(t, "scroll", button.AttrOr("data-action", ""))
	require.Equal(t, "precos", button.AttrOr("data-target", ""))
}

func TestActionButtonWithoutHandlerIsInert(t *testing.T) {
	t.Parallel()

	require.True(t, ScrollTo("  ").IsZero())

	doc := testutil.RenderNode(t, MustAction(ActionOptions{}))
	button := doc.Find("button")
	require.Equal(t, 1, button.Length())
	_, hasAction := button.Attr("data-action")
	require.False(t, hasAction)
}

func TestSectionTitleDefaultsAndOptions(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, SectionTitle("Benefícios"))
	title := doc.Find("h2")
	require.Equal(t, "Benefícios", title.Text())
	require.True(t, title.HasClass(DefaultTitleColor))
	require.True(t, title.HasClass("text-left"))

	doc = testutil.RenderNode(t, SectionTitle("Estratégia", WithColor("text-white"), Centered()))
	title = doc.Find("h2")
	require.True(t, title.HasClass("text-white"))
	require.False(t, title.HasClass(DefaultTitleColor))
	require.True(t, title.HasClass("text-center"))
}

func TestChecklistItemAlwaysShowsGlyph(t *testing.T) {
	t.Parallel()

	for _, light := range []bool{false, true} {
		doc := testutil.RenderNode(t, ChecklistItem(light, g.Text("Planejamento integrado")))
		glyph := doc.Find(`[data-icon-name="check"]`)
		require.Equal(t, 1, glyph.Length())
		require.Equal(t, "Planejamento integrado", doc.Find("p").Text())
	}

	dark := testutil.RenderNode(t, ChecklistItem(false, g.Text("x")))
	require.True(t, dark.Find("p").HasClass("text-aurea-ebony"))
	light := testutil.RenderNode(t, ChecklistItem(true, g.Text("x")))
	require.True(t, light.Find("p").HasClass("text-gray-300"))
}

func TestParseIcon(t *testing.T) {
	t.Parallel()

	icon, err := ParseIcon("Brain-Circuit")
	require.NoError(t, err)
	require.Equal(t, IconBrainCircuit, icon)
	require.Equal(t, "lucide:brain-circuit", icon.Glyph())

	_, err = ParseIcon("rocket")
	require.ErrorIs(t, err, ErrUnknownIcon)
}

func TestComponentAdaptsNode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Component(g.Text("olá")).Render(context.Background(), &buf)
	require.NoError(t, err)
	require.Equal(t, "olá", buf.String())

	buf.Reset()
	require.NoError(t, Component(nil).Render(context.Background(), &buf))
	require.Empty(t, buf.String())
}
