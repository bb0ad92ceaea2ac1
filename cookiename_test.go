package statejar_test

import (
	"testing"

	statejar "github.com/statejar/statejar"
)

func TestEncodeCookieName_SafeCharactersSurvive(t *testing.T) {
	in := "a$b&c+d:e<f=g>h?i@j"
	if got := statejar.EncodeCookieName(in); got != in {
		t.Fatalf("expected %q to survive, got %q", in, got)
	}
}

func TestEncodeCookieName_ParensUseLegacyEscapes(t *testing.T) {
	if got := statejar.EncodeCookieName("key(1)"); got != "key%281%29" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}

func TestEncodeCookieName_PercentEncodesTheRest(t *testing.T) {
	cases := map[string]string{
		"a b":     "a%20b",
		"a/b":     "a%2Fb",
		"a;b":     "a%3Bb",
		"a,b":     "a%2Cb",
		"a%b":     "a%25b",
		"-_.!~*'": "-_.!~*'",
	}
	for in, want := range cases {
		if got := statejar.EncodeCookieName(in); got != want {
			t.Fatalf("EncodeCookieName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeCookieName_UTF8BytesEncoded(t *testing.T) {
	if got := statejar.EncodeCookieName("naïve"); got != "na%C3%AFve" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}
