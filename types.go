package statejar

import "time"

// SameSite mirrors the cookie SameSite policy without binding the core to
// net/http. Adapters translate it to their transport's representation.
type SameSite int

const (
	SameSiteDefault SameSite = iota
	SameSiteLax
	SameSiteStrict
	SameSiteNone
)

// Attributes is the cookie attribute bag passed through unmodified to the
// transport. The zero value means "transport defaults".
type Attributes struct {
	Expires  time.Time
	MaxAge   int // seconds; negative deletes the entry
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
	SameSite SameSite
}

// JarReader is the server-boundary read contract.
type JarReader interface {
	// Get returns the raw stored string for name, or false when absent.
	Get(name string) (string, bool)
}

// JarWriter is the client-boundary write contract. Set is a synchronous,
// side-effecting call; its error is the only transport failure the write
// pipeline propagates.
type JarWriter interface {
	Set(name, value string, attrs Attributes) error
}

// Jar combines both sides of the transport contract.
type Jar interface {
	JarReader
	JarWriter
}
