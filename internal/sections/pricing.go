package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/ui"
)

// Pricing renders one card per tier, in table order.
func Pricing(p content.Pricing) g.Node {
	return h.Section(
		h.ID(nav.AnchorPricing),
		h.Class("py-24 bg-white"),
		g.Attr("data-section", "pricing"),
		h.Div(
			h.Class("container mx-auto px-6"),
			ui.SectionTitle(p.Title, ui.Centered()),
			h.P(h.Class("text-center text-gray-600 max-w-2xl mx-auto mb-16 -mt-4"), g.Text(p.Lead)),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-8 max-w-6xl mx-auto"),
				g.Map(p.Tiers, PricingCard),
			),
		),
	)
}

// PayInFullLabel is the caption of a tier's pay-in-full link.
func PayInFullLabel(t content.Tier) string {
	return t.CTA + " à vista com " + t.Discount.Label() + " de desconto"
}

// InstallmentLabel is the caption of a tier's installment link.
func InstallmentLabel(t content.Tier) string {
	return t.CTA + " parcelado com " + t.Discount.Label() + " de desconto"
}

// PricingCard renders a single tier.
func PricingCard(t content.Tier) g.Node {
	return h.Div(
		h.Class("flex flex-col h-full p-8 border border-gray-200 bg-white text-aurea-ebony shadow-lg transition-transform duration-300 hover:-translate-y-2 relative overflow-hidden group"),
		g.Attr("data-tier", t.Title),
		h.Div(h.Class("absolute top-0 left-0 w-full h-1 bg-aurea-blue group-hover:bg-aurea-tangerine transition-colors duration-300")),
		h.H3(h.Class("font-display text-3xl uppercase mb-2 text-aurea-blue mt-2"), g.Text(t.Title)),
		h.P(h.Class("text-sm mb-8 h-12 text-gray-500"), g.Text(t.Subtitle)),
		h.Div(
			h.Class("mb-8"),
			h.Div(h.Class("text-sm uppercase tracking-wide opacity-70 mb-1"), g.Text("Preço à vista")),
			h.Div(h.Class("text-4xl font-bold font-display text-aurea-ebony"), g.Attr("data-price", ""), g.Text(t.Price.String())),
			h.Div(h.Class("text-sm mt-2 opacity-70"), g.Text("ou parcelado em")),
			h.Div(h.Class("text-xl font-bold text-aurea-tangerine"), g.Attr("data-installment", ""), g.Text(t.Installment.String())),
		),
		h.Div(
			h.Class("flex-grow border-t border-gray-100 pt-6 mb-8"),
			h.P(h.Class("font-bold uppercase text-xs tracking-widest mb-3 text-aurea-tangerine"), g.Text(t.Discount.Title)),
			h.Ul(
				h.Class("space-y-2 text-sm"),
				g.Map(t.Discount.Items, func(item string) g.Node {
					return h.Li(
						h.Class("flex items-start gap-2"),
						h.Span(h.Class("mt-1 block w-1 h-1 bg-aurea-blue rounded-full")),
						h.Span(h.Class("text-gray-600"), g.Text(item)),
					)
				}),
			),
		),
		h.Div(
			h.Class("flex flex-col gap-3 mt-auto"),
			ui.ExternalLink(t.PayInFullURL,
				h.Class("w-full py-4 font-bold uppercase tracking-wide bg-aurea-tangerine text-white hover:bg-orange-600 transition-colors text-sm shadow-md hover:shadow-lg text-center"),
				g.Attr("data-payment", "full"),
				g.Text(PayInFullLabel(t)),
			),
			ui.ExternalLink(t.InstallmentURL,
				h.Class("w-full py-4 font-bold uppercase tracking-wide border-2 border-aurea-blue text-aurea-blue hover:bg-aurea-blue hover:text-white transition-colors text-sm text-center"),
				g.Attr("data-payment", "installment"),
				g.Text(InstallmentLabel(t)),
			),
		),
	)
}
