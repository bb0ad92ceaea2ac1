package schema

import (
	"math"
	"time"

	statejar "github.com/statejar/statejar"
)

// String returns the minimal string field implementation.
func String() Field { return stringField{} }

// Bool returns the minimal bool field implementation.
func Bool() Field { return boolField{} }

// Int returns an integer field. JSON numbers arrive as float64 after
// extraction, so integral floats are accepted and normalized to int.
func Int() Field { return intField{} }

// Float returns a float64 field. Plain ints are accepted and widened.
func Float() Field { return floatField{} }

// Time returns a time.Time field; it is the domain side of a TimeRFC3339
// pipe and accepts already-decoded values only.
func Time() Field { return timeField{} }

type stringField struct{}

func (stringField) Parse(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidType, Message: "expected string"}}
	}
	return s, nil
}

type boolField struct{}

func (boolField) Parse(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidType, Message: "expected bool"}}
	}
	return b, nil
}

type intField struct{}

func (intField) Parse(v any) (any, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int8:
		return int(t), nil
	case int16:
		return int(t), nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case float64:
		if math.Trunc(t) != t {
			return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidType, Message: "fractional part not allowed"}}
		}
		return int(t), nil
	}
	return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidType, Message: "expected integer"}}
}

type floatField struct{}

func (floatField) Parse(v any) (any, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	}
	return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidType, Message: "expected number"}}
}

type timeField struct{}

func (timeField) Parse(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, statejar.Issues{{Path: "/", Code: statejar.CodeInvalidType, Message: "expected time.Time"}}
	}
	return t, nil
}
