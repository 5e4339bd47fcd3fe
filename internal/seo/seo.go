package seo

import (
	"net/url"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is the document head metadata.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Lang        string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Absolute resolves ref against base. Relative refs are returned unchanged
// when base is empty or unparsable.
func Absolute(base, ref string) string {
	ref = strings.TrimSpace(ref)
	base = strings.TrimSpace(base)
	if ref == "" || base == "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil || b.Scheme == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
