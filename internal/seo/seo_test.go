package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourseOffers(t *testing.T) {
	t.Parallel()

	payload := JSON(Course("Combo", "Matemática + Redação", "Áurea", []Offer{
		{Name: "Combo Extensivo", Price: 300000, Currency: "BRL", URL: "https://pay.example.com/a"},
		{Name: "Combo Online", Price: 100005, Currency: "BRL"},
	}))
	require.NotEmpty(t, payload)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Equal(t, "Course", decoded["@type"])

	offers, ok := decoded["offers"].([]any)
	require.True(t, ok)
	require.Len(t, offers, 2)
	first := offers[0].(map[string]any)
	require.Equal(t, "3000.00", first["price"])
	require.Equal(t, "https://pay.example.com/a", first["url"])
	second := offers[1].(map[string]any)
	require.Equal(t, "1000.05", second["price"])
	_, hasURL := second["url"]
	require.False(t, hasURL)
}

func TestEducationalOrganizationOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	m := EducationalOrganization("Áurea", "", "")
	require.Equal(t, "EducationalOrganization", m["@type"])
	_, hasURL := m["url"]
	require.False(t, hasURL)
}

func TestAbsolute(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://combo.example.com/assets/og.png", Absolute("https://combo.example.com/", "/assets/og.png"))
	require.Equal(t, "/assets/og.png", Absolute("", "/assets/og.png"))
	require.Equal(t, "https://cdn.example.com/x.png", Absolute("https://combo.example.com", "https://cdn.example.com/x.png"))
	require.Equal(t, "", Absolute("https://combo.example.com", ""))
}
