package httpjar

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	statejar "github.com/statejar/statejar"
)

func TestWriter_SetEmitsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewWriter(rec)

	attrs := statejar.Attributes{
		Path:     "/",
		MaxAge:   3600,
		Secure:   true,
		HTTPOnly: true,
		SameSite: statejar.SameSiteLax,
		Expires:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := w.Set("theme", `"dark"`, attrs); err != nil {
		t.Fatalf("set err: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "theme" {
		t.Fatalf("name = %q", c.Name)
	}
	if c.Value != "%22dark%22" {
		t.Fatalf("value = %q", c.Value)
	}
	if c.Path != "/" || c.MaxAge != 3600 || !c.Secure || !c.HttpOnly {
		t.Fatalf("attributes not mapped: %+v", c)
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("samesite = %v", c.SameSite)
	}
}

func TestReader_RoundTripThroughRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := NewWriter(rec).Set("volume", "30", statejar.Attributes{}); err != nil {
		t.Fatalf("set err: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}

	got, ok := NewReader(r).Get("volume")
	if !ok || got != "30" {
		t.Fatalf("get = %q (%v)", got, ok)
	}
}

func TestReader_AbsentCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := NewReader(r).Get("missing"); ok {
		t.Fatalf("expected absence")
	}
}
