package seo

import (
	"encoding/json"
	"strconv"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// EducationalOrganization returns a minimal schema for the school.
func EducationalOrganization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "EducationalOrganization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// Offer is one purchasable option of a course.
type Offer struct {
	Name     string
	Price    int64 // minor units
	Currency string
	URL      string
}

// Course returns a Course schema with one Offer per plan.
func Course(name, description, providerName string, offers []Offer) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Course",
		"name":        name,
		"description": description,
	}
	if providerName != "" {
		m["provider"] = map[string]any{
			"@type": "EducationalOrganization",
			"name":  providerName,
		}
	}
	if len(offers) > 0 {
		el := make([]map[string]any, 0, len(offers))
		for _, o := range offers {
			offer := map[string]any{
				"@type":         "Offer",
				"name":          o.Name,
				"price":         decimal(o.Price),
				"priceCurrency": o.Currency,
			}
			if o.URL != "" {
				offer["url"] = o.URL
			}
			el = append(el, offer)
		}
		m["offers"] = el
	}
	return m
}

// decimal renders minor units as a schema.org price, e.g. 300000 => "3000.00".
func decimal(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	cents := minor % 100
	s := strconv.FormatInt(minor/100, 10) + "."
	if cents < 10 {
		s += "0"
	}
	s += strconv.FormatInt(cents, 10)
	if neg {
		return "-" + s
	}
	return s
}
