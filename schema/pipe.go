package schema

import (
	statejar "github.com/statejar/statejar"
)

// Codec performs bidirectional transformation between the wire representation
// and the domain representation of a field.
type Codec interface {
	Decode(v any) (any, error) // wire -> domain
	Encode(v any) (any, error) // domain -> wire
}

// Pipe wires a codec between a wire field and a domain field. Candidates
// already in domain form pass straight through the domain field; wire-form
// candidates are parsed, decoded, then validated as domain values. The
// codec's Encode step is surfaced to introspection as the field's codec
// encoder.
func Pipe(wire Field, c Codec, domain Field) Field {
	return pipeField{wire: wire, codec: c, domain: domain}
}

type pipeField struct {
	wire   Field
	codec  Codec
	domain Field
}

var _ statejar.FieldEncoder = pipeField{}

func (p pipeField) Parse(v any) (any, error) {
	if dv, err := p.domain.Parse(v); err == nil {
		return dv, nil
	}
	wv, err := p.wire.Parse(v)
	if err != nil {
		return nil, err
	}
	dv, err := p.codec.Decode(wv)
	if err != nil {
		if iss, ok := statejar.AsIssues(err); ok {
			return nil, iss
		}
		return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidFormat, Message: err.Error(), Cause: err}}
	}
	return p.domain.Parse(dv)
}

// EncodeFunc exposes the codec's reverse transform.
func (p pipeField) EncodeFunc() statejar.EncodeFunc {
	return func(v any) (any, error) { return p.codec.Encode(v) }
}
