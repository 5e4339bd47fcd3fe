package sections

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/testutil"
	"aureacursos.com.br/combo-web/internal/ui"
)

func landing(t *testing.T) *content.Landing {
	t.Helper()

	l, err := content.Default()
	require.NoError(t, err)
	return l
}

func TestHeaderClosedHasNoMobilePanel(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Header(landing(t).Brand, nav.Menu{}))

	header := doc.Find("header#" + nav.HeaderID)
	require.Equal(t, 1, header.Length())
	require.Equal(t, "closed", header.AttrOr("data-menu-state", ""))
	require.Equal(t, 0, doc.Find("#mobile-menu").Length())

	toggle := doc.Find("button[data-menu-toggle]")
	require.Equal(t, "false", toggle.AttrOr("aria-expanded", ""))
	require.Equal(t, nav.FragmentURL(nav.MenuOpen), toggle.AttrOr("hx-get", ""))
	require.Equal(t, 1, toggle.Find(`[data-icon-name="menu"]`).Length())

	desktop := doc.Find(`nav[data-nav="desktop"] a`)
	require.Equal(t, len(nav.Main), desktop.Length())
	desktop.Each(func(i int, s *goquery.Selection) {
		require.Equal(t, nav.Main[i].Href(), s.AttrOr("href", ""))
		require.Equal(t, nav.Main[i].Label, s.Text())
	})
}

func TestHeaderOpenShowsPanelAndCloseToggle(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Header(landing(t).Brand, nav.MenuAt(nav.MenuOpen)))

	require.Equal(t, "open", doc.Find("header").AttrOr("data-menu-state", ""))
	toggle := doc.Find("button[data-menu-toggle]")
	require.Equal(t, "true", toggle.AttrOr("aria-expanded", ""))
	require.Equal(t, nav.FragmentURL(nav.MenuClosed), toggle.AttrOr("hx-get", ""))
	require.Equal(t, 1, toggle.Find(`[data-icon-name="x"]`).Length())

	links := doc.Find(`#mobile-menu a`)
	require.Equal(t, len(nav.Main), links.Length())
}

func TestMobileLinksCloseTheMenu(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Header(landing(t).Brand, nav.MenuAt(nav.MenuOpen)))
	links := doc.Find(`#mobile-menu a`)

	for i, link := range nav.Main {
		link := link
		sel := links.Eq(i)
		t.Run(link.Anchor, func(t *testing.T) {
			require.Equal(t, link.Href(), sel.AttrOr("href", ""), "link still navigates to its section")

			u, err := url.Parse(sel.AttrOr("hx-get", ""))
			require.NoError(t, err)
			require.Equal(t, nav.FragmentPath, u.Path)
			require.Equal(t, nav.MenuClosed, nav.ParseMenuState(u.Query().Get("menu")))
			require.Equal(t, "#"+nav.HeaderID, sel.AttrOr("hx-target", ""))
			require.Equal(t, "outerHTML", sel.AttrOr("hx-swap", ""))
		})
	}
}

func TestHeroScrollsToPricing(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Hero(landing(t).Hero, ui.ScrollTo(nav.AnchorPricing)))
	button := doc.Find("button")
	require.Equal(t, 1, button.Length())
	require.Equal(t, "scroll", button.AttrOr("data-action", ""))
	require.Equal(t, nav.AnchorPricing, button.AttrOr("data-target", ""))
	require.Equal(t, "Quero o Combo com Desconto", strings.TrimSpace(button.Text()))
}

func TestHeroWithoutTargetIsInert(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Hero(landing(t).Hero, ui.Handler{}))
	button := doc.Find("button")
	require.Equal(t, 1, button.Length())
	_, ok := button.Attr("data-action")
	require.False(t, ok)
}

func TestBenefitsPreserveOrderAndCount(t *testing.T) {
	t.Parallel()

	benefits := landing(t).Benefits
	doc := testutil.RenderNode(t, Benefits(benefits))

	require.Equal(t, nav.AnchorBenefits, doc.Find("section").AttrOr("id", ""))

	var got []string
	doc.Find("[data-benefit-index]").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.Find("[data-benefit-text]").Text())
	})

	want := make([]string, 0, len(benefits.Items))
	for _, item := range benefits.Items {
		want = append(want, item.Text)
	}
	require.Equal(t, want, got)
}

func TestBenefitsAreTableDriven(t *testing.T) {
	t.Parallel()

	table := content.Benefits{Items: []content.Benefit{
		{Text: "Um", Icon: ui.IconAward},
		{Text: "Dois", Icon: ui.IconZap},
		{Text: "Três", Icon: ui.IconTarget},
	}}
	doc := testutil.RenderNode(t, Benefits(table))

	cards := doc.Find("[data-benefit-index]")
	require.Equal(t, 3, cards.Length())
	seen := map[string]bool{}
	cards.Each(func(i int, s *goquery.Selection) {
		text := s.Find("[data-benefit-text]").Text()
		require.False(t, seen[text], "duplicate card %q", text)
		seen[text] = true
		require.Equal(t, table.Items[i].Text, text)
		require.Equal(t, string(table.Items[i].Icon), s.Find("[data-icon-name]").AttrOr("data-icon-name", ""))
	})

	empty := testutil.RenderNode(t, Benefits(content.Benefits{}))
	require.Equal(t, 0, empty.Find("[data-benefit-index]").Length())
}

func TestPricingLinksUseTheirOwnTierDiscount(t *testing.T) {
	t.Parallel()

	tiers := []content.Tier{
		{Title: "A", CTA: "Quero A", Price: 100000, Discount: content.Discount{Title: "Até 31/12", Percent: 10, Items: []string{"10% novos"}}, PayInFullURL: "https://pay.example.com/a-full", InstallmentURL: "https://pay.example.com/a-split"},
		{Title: "B", CTA: "Quero B", Price: 200000, Discount: content.Discount{Title: "Até 31/12", Percent: 20, Items: []string{"20% novos"}}, PayInFullURL: "https://pay.example.com/b-full", InstallmentURL: "https://pay.example.com/b-split"},
		{Title: "C", CTA: "Quero C", Price: 300000, Discount: content.Discount{Title: "Até 31/12", Percent: 35, Items: []string{"35% novos", "extra"}}, PayInFullURL: "https://pay.example.com/c-full", InstallmentURL: "https://pay.example.com/c-split"},
	}
	doc := testutil.RenderNode(t, Pricing(content.Pricing{Tiers: tiers}))

	require.Equal(t, nav.AnchorPricing, doc.Find("section").AttrOr("id", ""))
	cards := doc.Find("[data-tier]")
	require.Equal(t, len(tiers), cards.Length())

	cards.Each(func(i int, card *goquery.Selection) {
		tier := tiers[i]
		require.Equal(t, tier.Title, card.AttrOr("data-tier", ""), "tier order is display order")

		full := card.Find(`a[data-payment="full"]`)
		split := card.Find(`a[data-payment="installment"]`)
		require.Equal(t, 1, full.Length())
		require.Equal(t, 1, split.Length())
		require.Equal(t, tier.PayInFullURL, full.AttrOr("href", ""))
		require.Equal(t, tier.InstallmentURL, split.AttrOr("href", ""))

		for _, link := range []*goquery.Selection{full, split} {
			require.Equal(t, "_blank", link.AttrOr("target", ""))
			require.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))
			require.Contains(t, link.Text(), tier.Discount.Label()+" de desconto")
			for j, other := range tiers {
				if j != i && other.Discount.Percent != tier.Discount.Percent {
					require.NotContains(t, link.Text(), other.Discount.Label())
				}
			}
		}

		require.Equal(t, len(tier.Discount.Items), card.Find("ul li").Length())
	})
}

func TestPricingCardFormatsReferenceTier(t *testing.T) {
	t.Parallel()

	tier := landing(t).Pricing.Tiers[1]
	doc := testutil.RenderNode(t, PricingCard(tier))

	require.Equal(t, "R$ 1.500,00", doc.Find("[data-price]").Text())
	require.Equal(t, "10 x R$ 190,00", doc.Find("[data-installment]").Text())
	require.Equal(t, "Quero o Intensivo à vista com 30% de desconto", doc.Find(`a[data-payment="full"]`).Text())
	require.Equal(t, "Quero o Intensivo parcelado com 30% de desconto", doc.Find(`a[data-payment="installment"]`).Text())
}

func TestReservationLinksToIntakeForm(t *testing.T) {
	t.Parallel()

	r := landing(t).Reservation
	doc := testutil.RenderNode(t, Reservation(r))

	link := doc.Find("a")
	require.Equal(t, 1, link.Length())
	require.Equal(t, r.FormURL, link.AttrOr("href", ""))
	require.Equal(t, "_blank", link.AttrOr("target", ""))
	require.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))
	require.True(t, link.HasClass("action-primary"))
	require.Equal(t, 1, doc.Find("h2 br").Length(), "title lines are separated by a break")
}

func TestContactDeepLinksUsePhoneVerbatim(t *testing.T) {
	t.Parallel()

	contacts := landing(t).Contacts
	doc := testutil.RenderNode(t, Contacts(contacts))

	require.Equal(t, nav.AnchorContact, doc.Find("section").AttrOr("id", ""))
	links := doc.Find("a[data-deep-link]")
	require.Equal(t, len(contacts.Entries), links.Length())

	links.Each(func(i int, s *goquery.Selection) {
		require.Equal(t, MessagingPrefix+contacts.Entries[i].Phone, s.AttrOr("href", ""))
		require.Equal(t, "_blank", s.AttrOr("target", ""))
		require.Equal(t, "noopener noreferrer", s.AttrOr("rel", ""))
	})

	require.True(t, strings.HasSuffix(links.Eq(0).AttrOr("href", ""), "/5538999573075"))
	require.True(t, strings.HasSuffix(links.Eq(3).AttrOr("href", ""), "/553832133244"))
}

func TestDeepLinkDoesNotRewriteDigits(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://wa.me/5538999573075", DeepLink("5538999573075"))
	require.Equal(t, "https://wa.me/553832133244", DeepLink("553832133244"))
}

func TestEmptyRoleKeepsReservedSlot(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Contacts(content.Contacts{Entries: []content.Contact{
		{Initial: "A", Name: "Com cargo", Role: "DIRETOR", Action: "Falar", Phone: "5538999573075"},
		{Initial: "B", Name: "Sem cargo", Role: "", Action: "Falar", Phone: "553832133244"},
	}}))

	slots := doc.Find("[data-role-slot]")
	require.Equal(t, 2, slots.Length(), "role slot renders regardless of role text")
	slots.Each(func(_ int, s *goquery.Selection) {
		require.True(t, s.HasClass("min-h-[1.25rem]"))
	})
	require.Equal(t, "DIRETOR", slots.Eq(0).Text())
	require.Equal(t, "", slots.Eq(1).Text())
	require.Equal(t, "B", doc.Find("[data-avatar]").Eq(1).Text())
}

func TestStaticSections(t *testing.T) {
	t.Parallel()

	l := landing(t)

	concept := testutil.RenderNode(t, Concept(l.Concept))
	require.Equal(t, nav.AnchorConcept, concept.Find("section").AttrOr("id", ""))
	require.Equal(t, len(l.Concept.Checklist), concept.Find("[data-checklist-item]").Length())
	require.Equal(t, 1, concept.Find(".prose-concept strong").Length())

	strategy := testutil.RenderNode(t, Strategy(l.Strategy))
	require.Equal(t, len(l.Strategy.Points), strategy.Find("[data-checklist-item]").Length())
	require.Contains(t, strategy.Text(), l.Strategy.Closing)
	require.True(t, strategy.Find("h2").HasClass("text-white"))

	footer := testutil.RenderNode(t, Footer(l.Brand))
	require.Equal(t, "Áurea Cursos e Pré Vestibular", footer.Find("h3").Text())
	require.Equal(t, "Tudo novo, de um jeito único", footer.Find("p").Text())
}

func TestHeaderTransitionsMatchMenuMachine(t *testing.T) {
	t.Parallel()

	brand := landing(t).Brand
	nextState := func(doc *goquery.Document, sel string) nav.MenuState {
		t.Helper()

		u, err := url.Parse(doc.Find(sel).AttrOr("hx-get", ""))
		require.NoError(t, err)
		return nav.ParseMenuState(u.Query().Get("menu"))
	}

	// Walk closed -> open -> closed through the rendered toggle only.
	var machine nav.Menu
	rendered := nav.Menu{}
	for step := 0; step < 4; step++ {
		doc := testutil.RenderNode(t, Header(brand, rendered))
		want := machine.Toggle()
		got := nextState(doc, "button[data-menu-toggle]")
		require.Equal(t, want, got, "step %d", step)
		rendered = nav.MenuAt(got)
	}

	open := testutil.RenderNode(t, Header(brand, nav.MenuAt(nav.MenuOpen)))
	for i, link := range nav.Main {
		m := nav.MenuAt(nav.MenuOpen)
		href := m.Follow(link.Anchor)
		a := open.Find("#mobile-menu a").Eq(i)
		require.Equal(t, href, a.AttrOr("href", ""))
		u, err := url.Parse(a.AttrOr("hx-get", ""))
		require.NoError(t, err)
		require.Equal(t, m.State(), nav.ParseMenuState(u.Query().Get("menu")), link.Anchor)
	}
}
