package codec

import (
	"testing"
	"time"
)

func TestTimeRFC3339_Codec_Basic(t *testing.T) {
	c := TimeRFC3339()

	in := "2025-01-01T00:00:00Z"
	got, err := c.Decode(in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	tm, ok := got.(time.Time)
	if !ok || !tm.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(tm)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %v != %s", out, in)
	}
}

func TestTimeRFC3339_Decode_Invalid(t *testing.T) {
	c := TimeRFC3339()
	if _, err := c.Decode("not-a-time"); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := c.Decode(42); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestTimeRFC3339_Encode_RequiresTime(t *testing.T) {
	c := TimeRFC3339()
	if _, err := c.Encode("2025-01-01T00:00:00Z"); err == nil {
		t.Fatalf("expected encode error for non-time value")
	}
}

func TestTimeRFC3339_Encode_KeepsFractionalSeconds(t *testing.T) {
	c := TimeRFC3339()
	out, err := c.Encode(time.Date(2025, 1, 1, 0, 0, 0, 500000000, time.UTC))
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2025-01-01T00:00:00.5Z" {
		t.Fatalf("unexpected encoding: %v", out)
	}
}

func TestIdentity_PassesValuesThrough(t *testing.T) {
	c := Identity()
	v, err := c.Decode("x")
	if err != nil || v != "x" {
		t.Fatalf("decode = %v, %v", v, err)
	}
	v, err = c.Encode(42)
	if err != nil || v != 42 {
		t.Fatalf("encode = %v, %v", v, err)
	}
}
