package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// TierCount is the number of plans the pricing grid is designed for.
const TierCount = 3

// ErrInvalid marks content that breaks an authoring rule.
var ErrInvalid = errors.New("content: invalid")

// ValidationError lists every offending field.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("content validation failed: [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the offending field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Is lets callers match with errors.Is(err, ErrInvalid).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// Validate checks authoring rules. Rendering never calls it; it backs the
// content tests and the -check flag of the web binary.
func (l *Landing) Validate() error {
	var fields []string
	add := func(format string, args ...any) {
		fields = append(fields, fmt.Sprintf(format, args...))
	}

	if _, err := l.SEO.Language(); err != nil {
		add("seo.locale")
	}

	if len(l.Benefits.Items) == 0 {
		add("benefits.items")
	}
	for i, b := range l.Benefits.Items {
		if strings.TrimSpace(b.Text) == "" {
			add("benefits.items[%d].text", i)
		}
		if b.Icon.Glyph() == "" {
			add("benefits.items[%d].icon", i)
		}
	}

	if len(l.Pricing.Tiers) != TierCount {
		add("pricing.tiers")
	}
	for i, t := range l.Pricing.Tiers {
		if strings.TrimSpace(t.Title) == "" {
			add("pricing.tiers[%d].title", i)
		}
		if t.Price <= 0 {
			add("pricing.tiers[%d].price", i)
		}
		if !isAbsoluteURL(t.PayInFullURL) {
			add("pricing.tiers[%d].pay_in_full_url", i)
		}
		if !isAbsoluteURL(t.InstallmentURL) {
			add("pricing.tiers[%d].installment_url", i)
		}
		if t.PayInFullURL == t.InstallmentURL {
			add("pricing.tiers[%d].installment_url (duplicates pay_in_full_url)", i)
		}
		if t.Discount.Percent <= 0 || t.Discount.Percent >= 100 {
			add("pricing.tiers[%d].discount.percent", i)
		}
	}

	if !isAbsoluteURL(l.Reservation.FormURL) {
		add("reservation.form_url")
	}

	for i, c := range l.Contacts.Entries {
		if !IsDigits(c.Phone) {
			add("contacts.entries[%d].phone", i)
		}
		if len([]rune(c.Initial)) != 1 {
			add("contacts.entries[%d].initial", i)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{fields: fields}
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
