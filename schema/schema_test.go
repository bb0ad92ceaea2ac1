package schema_test

import (
	"testing"

	statejar "github.com/statejar/statejar"
	"github.com/statejar/statejar/schema"
)

func TestObject_ValidatesAndNormalizes(t *testing.T) {
	s := schema.Object().
		Field("name", schema.String()).Default("anon").
		Field("count", schema.Int()).Default(0).
		MustBuild()

	r := s.Validate(map[string]any{"name": "zoe", "count": float64(3)})
	if !r.OK() {
		t.Fatalf("unexpected issues: %v", r.Issues)
	}
	if r.Value["name"] != "zoe" {
		t.Fatalf("name = %v", r.Value["name"])
	}
	if v, ok := r.Value["count"].(int); !ok || v != 3 {
		t.Fatalf("count = %T(%v), want int(3)", r.Value["count"], r.Value["count"])
	}
}

func TestObject_AppliesDefaultsForMissingFields(t *testing.T) {
	s := schema.Object().
		Field("name", schema.String()).Default("anon").
		MustBuild()

	r := s.Validate(map[string]any{})
	if !r.OK() {
		t.Fatalf("unexpected issues: %v", r.Issues)
	}
	if r.Value["name"] != "anon" {
		t.Fatalf("default not applied: %v", r.Value)
	}
}

func TestObject_IssuePathsAnchoredAtField(t *testing.T) {
	s := schema.Object().
		Field("count", schema.Int()).Default(0).
		MustBuild()

	r := s.Validate(map[string]any{"count": "three"})
	if r.OK() {
		t.Fatalf("expected failure")
	}
	if len(r.Issues) != 1 || r.Issues[0].Path != "/count" {
		t.Fatalf("issues = %v", r.Issues)
	}
	if r.Issues[0].Code != statejar.CodeInvalidType {
		t.Fatalf("code = %s", r.Issues[0].Code)
	}
}

func TestObject_RequiredAndUnknownKeys(t *testing.T) {
	s := schema.Object().
		Field("name", schema.String()).Required().
		MustBuild()

	r := s.Validate(map[string]any{"extra": 1})
	if r.OK() {
		t.Fatalf("expected failure")
	}
	if len(r.Issues) != 2 {
		t.Fatalf("issues = %v", r.Issues)
	}
	// Deterministic sort by path.
	if r.Issues[0].Path != "/extra" || r.Issues[0].Code != statejar.CodeUnknownKey {
		t.Fatalf("issues[0] = %+v", r.Issues[0])
	}
	if r.Issues[1].Path != "/name" || r.Issues[1].Code != statejar.CodeRequired {
		t.Fatalf("issues[1] = %+v", r.Issues[1])
	}
}

func TestObject_BuildRejectsEmptyFieldSet(t *testing.T) {
	if _, err := schema.Object().Build(); err == nil {
		t.Fatalf("expected error for empty object")
	}
}

func TestPrimitives_RejectWrongTypes(t *testing.T) {
	cases := []struct {
		field schema.Field
		bad   any
	}{
		{schema.String(), 1},
		{schema.Bool(), "true"},
		{schema.Int(), 1.5},
		{schema.Float(), "1.5"},
		{schema.Time(), "2025-01-01T00:00:00Z"},
	}
	for i, c := range cases {
		if _, err := c.field.Parse(c.bad); err == nil {
			t.Fatalf("case %d: expected error for %v", i, c.bad)
		}
	}
}
