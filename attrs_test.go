package statejar_test

import (
	"testing"
	"time"

	statejar "github.com/statejar/statejar"
)

func TestAttributesFromYAML(t *testing.T) {
	doc := []byte(`
max_age: 604800
path: /
domain: example.com
secure: true
http_only: true
same_site: lax
expires: "2026-01-01T00:00:00Z"
`)
	got, err := statejar.AttributesFromYAML(doc)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	want := statejar.Attributes{
		Expires:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxAge:   604800,
		Path:     "/",
		Domain:   "example.com",
		Secure:   true,
		HTTPOnly: true,
		SameSite: statejar.SameSiteLax,
	}
	if !got.Expires.Equal(want.Expires) {
		t.Fatalf("expires = %v, want %v", got.Expires, want.Expires)
	}
	got.Expires = want.Expires
	if got != want {
		t.Fatalf("attrs = %+v, want %+v", got, want)
	}
}

func TestAttributesFromYAML_RejectsUnknownSameSite(t *testing.T) {
	if _, err := statejar.AttributesFromYAML([]byte("same_site: sideways")); err == nil {
		t.Fatalf("expected error for unknown same_site policy")
	}
}

func TestParseSameSite(t *testing.T) {
	cases := map[string]statejar.SameSite{
		"":        statejar.SameSiteDefault,
		"default": statejar.SameSiteDefault,
		"lax":     statejar.SameSiteLax,
		"strict":  statejar.SameSiteStrict,
		"none":    statejar.SameSiteNone,
	}
	for in, want := range cases {
		got, err := statejar.ParseSameSite(in)
		if err != nil {
			t.Fatalf("ParseSameSite(%q) err: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSameSite(%q) = %v, want %v", in, got, want)
		}
	}
}
