// Package codec provides ready-made schema.Codec implementations.
package codec

import (
	"github.com/statejar/statejar/schema"
)

// Identity returns a Codec that performs identity transformations in both
// directions.
func Identity() schema.Codec { return identityCodec{} }

type identityCodec struct{}

func (identityCodec) Decode(v any) (any, error) { return v, nil }
func (identityCodec) Encode(v any) (any, error) { return v, nil }
