// Package httpjar adapts net/http cookies to the statejar jar contracts.
//
// Stored values are JSON documents, which are not legal cookie values as-is,
// so the writer percent-encodes values and the reader decodes them back.
package httpjar

import (
	"net/http"
	"net/url"

	statejar "github.com/statejar/statejar"
)

// Reader wraps an *http.Request's cookie header as a statejar.JarReader.
type Reader struct {
	r *http.Request
}

var _ statejar.JarReader = Reader{}

// NewReader returns a reader over r's cookies.
func NewReader(r *http.Request) Reader { return Reader{r: r} }

// Get returns the decoded cookie value for name.
func (rd Reader) Get(name string) (string, bool) {
	if rd.r == nil {
		return "", false
	}
	c, err := rd.r.Cookie(name)
	if err != nil || c == nil || c.Value == "" {
		return "", false
	}
	decoded, err := url.QueryUnescape(c.Value)
	if err != nil {
		return c.Value, true
	}
	return decoded, true
}

// Writer emits Set-Cookie headers on an http.ResponseWriter.
type Writer struct {
	w http.ResponseWriter
}

var _ statejar.JarWriter = Writer{}

// NewWriter returns a writer over w.
func NewWriter(w http.ResponseWriter) Writer { return Writer{w: w} }

// Set writes the value under name with the given attributes.
func (wr Writer) Set(name, value string, attrs statejar.Attributes) error {
	if wr.w == nil {
		return nil
	}
	http.SetCookie(wr.w, NewCookie(name, value, attrs))
	return nil
}

// NewCookie maps a name/value pair and attributes onto an http.Cookie.
func NewCookie(name, value string, attrs statejar.Attributes) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     attrs.Path,
		Domain:   attrs.Domain,
		Expires:  attrs.Expires,
		MaxAge:   attrs.MaxAge,
		Secure:   attrs.Secure,
		HttpOnly: attrs.HTTPOnly,
		SameSite: sameSite(attrs.SameSite),
	}
}

func sameSite(s statejar.SameSite) http.SameSite {
	switch s {
	case statejar.SameSiteLax:
		return http.SameSiteLaxMode
	case statejar.SameSiteStrict:
		return http.SameSiteStrictMode
	case statejar.SameSiteNone:
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}
