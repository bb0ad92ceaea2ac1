package statejar

import "strings"

const upperhex = "0123456789ABCDEF"

// cookieNameSafe lists characters that are legal in cookie names but are
// unnecessarily escaped by generic percent-encoding; they are kept verbatim.
const cookieNameSafe = "$&+:<=>?@"

// EncodeCookieName converts a schema key into its transport-safe cookie name:
// percent-encode the key, decode back the cookieNameSafe set, and escape the
// parenthesis characters. The extraction filter and the store's persistence
// step must produce identical names, so both call this.
func EncodeCookieName(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '(':
			b.WriteString("%28")
		case c == ')':
			b.WriteString("%29")
		case cookieNameUnescaped(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}
	return b.String()
}

// cookieNameUnescaped reports whether c survives the name transform verbatim:
// the percent-encoding unreserved set plus cookieNameSafe. Parens are handled
// by the caller.
func cookieNameUnescaped(c byte) bool {
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'':
		return true
	}
	return strings.IndexByte(cookieNameSafe, c) >= 0
}
