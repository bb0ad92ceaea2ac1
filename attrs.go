package statejar

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// attributesDoc is the YAML wire form of a cookie attribute policy.
type attributesDoc struct {
	MaxAge   int    `yaml:"max_age"`
	Expires  string `yaml:"expires"` // RFC3339
	Path     string `yaml:"path"`
	Domain   string `yaml:"domain"`
	Secure   bool   `yaml:"secure"`
	HTTPOnly bool   `yaml:"http_only"`
	SameSite string `yaml:"same_site"` // default | lax | strict | none
}

// AttributesFromYAML loads a cookie attribute policy from a YAML document.
// Deployments keep the policy (path, domain, lifetime, same-site) in config
// files rather than in code; the result is typically passed to WithAttributes.
func AttributesFromYAML(data []byte) (Attributes, error) {
	var doc attributesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Attributes{}, fmt.Errorf("statejar: parse attributes policy: %w", err)
	}

	attrs := Attributes{
		MaxAge:   doc.MaxAge,
		Path:     doc.Path,
		Domain:   doc.Domain,
		Secure:   doc.Secure,
		HTTPOnly: doc.HTTPOnly,
	}

	if doc.Expires != "" {
		t, err := time.Parse(time.RFC3339, doc.Expires)
		if err != nil {
			return Attributes{}, fmt.Errorf("statejar: parse attributes policy expires: %w", err)
		}
		attrs.Expires = t
	}

	ss, err := ParseSameSite(doc.SameSite)
	if err != nil {
		return Attributes{}, err
	}
	attrs.SameSite = ss

	return attrs, nil
}

// ParseSameSite maps a policy string to a SameSite value. Empty input means
// SameSiteDefault.
func ParseSameSite(s string) (SameSite, error) {
	switch s {
	case "", "default":
		return SameSiteDefault, nil
	case "lax":
		return SameSiteLax, nil
	case "strict":
		return SameSiteStrict, nil
	case "none":
		return SameSiteNone, nil
	default:
		return SameSiteDefault, fmt.Errorf("statejar: unknown same_site policy %q", s)
	}
}
