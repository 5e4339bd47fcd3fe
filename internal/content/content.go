package content

import (
	"strings"

	"golang.org/x/text/language"

	"aureacursos.com.br/combo-web/internal/format"
	"aureacursos.com.br/combo-web/internal/ui"
)

// Money is an amount in centavos.
type Money int64

// String formats the amount as a BRL price tag.
func (m Money) String() string { return format.BRL(int64(m)) }

// Landing is every table and piece of copy the landing page renders. It is
// built once at startup and never mutated.
type Landing struct {
	Brand       Brand       `yaml:"brand"`
	SEO         SEO         `yaml:"seo"`
	Hero        Hero        `yaml:"hero"`
	Concept     Concept     `yaml:"concept"`
	Benefits    Benefits    `yaml:"benefits"`
	Strategy    Strategy    `yaml:"strategy"`
	Pricing     Pricing     `yaml:"pricing"`
	Reservation Reservation `yaml:"reservation"`
	Contacts    Contacts    `yaml:"contacts"`
}

// Brand holds the logo and footer identity lines.
type Brand struct {
	Logo    string `yaml:"logo"`
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

// SEO is the page-level metadata.
type SEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Locale      string `yaml:"locale"`
}

// Language parses Locale ("pt_BR" or "pt-BR"). The page copy is Brazilian
// Portuguese, so that is the fallback.
func (s SEO) Language() (language.Tag, error) {
	tag := strings.ReplaceAll(strings.TrimSpace(s.Locale), "_", "-")
	if tag == "" {
		return language.BrazilianPortuguese, nil
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return language.BrazilianPortuguese, err
	}
	return parsed, nil
}

// Hero is the introductory banner.
type Hero struct {
	Title        string `yaml:"title"`
	TitleOutline string `yaml:"title_outline"`
	Subtitle     string `yaml:"subtitle"`
	Badge        string `yaml:"badge"`
	BadgeNote    string `yaml:"badge_note"`
	CTA          string `yaml:"cta"`
}

// Concept explains what the bundle is.
type Concept struct {
	Eyebrow   string   `yaml:"eyebrow"`
	Title     string   `yaml:"title"`
	Body      string   `yaml:"body"`
	CardTitle string   `yaml:"card_title"`
	Checklist []string `yaml:"checklist"`

	// BodyHTML is Body rendered from Markdown and sanitised.
	BodyHTML string `yaml:"-"`
}

// Benefits is the benefits grid.
type Benefits struct {
	Title string    `yaml:"title"`
	Lead  string    `yaml:"lead"`
	Items []Benefit `yaml:"items"`
}

// Benefit is one card of the benefits grid.
type Benefit struct {
	Text string  `yaml:"text"`
	Icon ui.Icon `yaml:"icon"`
}

// Strategy is the strategic-value grid.
type Strategy struct {
	Title   string   `yaml:"title"`
	Points  []string `yaml:"points"`
	Closing string   `yaml:"closing"`
}

// Pricing is the pricing grid.
type Pricing struct {
	Title string `yaml:"title"`
	Lead  string `yaml:"lead"`
	Tiers []Tier `yaml:"tiers"`
}

// Tier is one pricing plan.
type Tier struct {
	Title          string      `yaml:"title"`
	Subtitle       string      `yaml:"subtitle"`
	Price          Money       `yaml:"price"`
	Installment    Installment `yaml:"installment"`
	Discount       Discount    `yaml:"discount"`
	CTA            string      `yaml:"cta"`
	PayInFullURL   string      `yaml:"pay_in_full_url"`
	InstallmentURL string      `yaml:"installment_url"`
}

// Installment is the split-payment alternative of a tier.
type Installment struct {
	Count  int   `yaml:"count"`
	Amount Money `yaml:"amount"`
}

// String formats the plan as "10 x R$ 340,00".
func (i Installment) String() string {
	return format.Installments(i.Count, int64(i.Amount))
}

// Discount is the promotional block of a tier.
type Discount struct {
	Title   string   `yaml:"title"`
	Percent int      `yaml:"percent"`
	Items   []string `yaml:"items"`
}

// Label returns the percentage, e.g. "30%".
func (d Discount) Label() string { return format.Percent(d.Percent) }

// Reservation is the reservation call to action.
type Reservation struct {
	Title   []string   `yaml:"title"`
	Body    string     `yaml:"body"`
	CTA     string     `yaml:"cta"`
	Variant ui.Variant `yaml:"variant"`
	FormURL string     `yaml:"form_url"`
}

// Contacts is the contact directory.
type Contacts struct {
	Title   string    `yaml:"title"`
	Entries []Contact `yaml:"entries"`
}

// Contact is one directory card. Phone holds international digits only,
// country and area code included.
type Contact struct {
	Initial string `yaml:"initial"`
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Action  string `yaml:"action"`
	Phone   string `yaml:"phone"`
}
