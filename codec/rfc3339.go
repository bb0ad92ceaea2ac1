package codec

import (
	"fmt"
	"time"

	statejar "github.com/statejar/statejar"
	"github.com/statejar/statejar/schema"
)

// TimeRFC3339 returns a Codec that converts between RFC3339 strings on the
// wire and time.Time in the domain.
func TimeRFC3339() schema.Codec { return rfc3339Codec{} }

type rfc3339Codec struct{}

func (rfc3339Codec) Decode(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidType, Message: "expected RFC3339 string"}}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidFormat, Message: "invalid RFC3339 time", Cause: err}}
	}
	return t, nil
}

func (rfc3339Codec) Encode(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("codec: expected time.Time, got %T", v)
	}
	return formatRFC3339Canonical(t), nil
}

// formatRFC3339Canonical drops the fractional second when it is zero so a
// decode/encode round trip reproduces the common wire form.
func formatRFC3339Canonical(t time.Time) string {
	if t.Nanosecond() == 0 {
		return t.Format(time.RFC3339)
	}
	return t.Format(time.RFC3339Nano)
}
