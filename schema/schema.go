// Package schema is the reference Schema implementation for statejar: an
// object builder over named fields with defaults, required markers, and
// codec pipes. It implements the statejar.ShapeSchema contract so the
// introspector can discover keys and codec encoders.
package schema

import (
	"fmt"
	"sort"
	"strings"

	statejar "github.com/statejar/statejar"
)

// Field parses a candidate value into its validated (possibly transformed)
// representation. Errors should carry statejar.Issues; anything else is
// wrapped as a parse error at the field's path.
type Field interface {
	Parse(v any) (any, error)
}

// Builder accumulates object fields before Build.
type Builder struct {
	fields map[string]fieldEntry
}

type fieldEntry struct {
	f          Field
	hasDefault bool
	def        any
	required   bool
}

// FieldStep scopes chained options to the field just added.
type FieldStep struct {
	b    *Builder
	name string
}

// Object creates a new object builder. Unknown keys are rejected.
func Object() *Builder {
	return &Builder{fields: map[string]fieldEntry{}}
}

// Field registers a field and returns a step for chained options.
func (b *Builder) Field(name string, f Field) *FieldStep {
	b.fields[name] = fieldEntry{f: f}
	return &FieldStep{b: b, name: name}
}

// Default sets the field's default, applied by parsing v through the field
// itself so transforms and validation run on defaults too.
func (s *FieldStep) Default(v any) *Builder {
	fe := s.b.fields[s.name]
	fe.hasDefault = true
	fe.def = v
	s.b.fields[s.name] = fe
	return s.b
}

// Required marks the field as required.
func (s *FieldStep) Required() *Builder {
	fe := s.b.fields[s.name]
	fe.required = true
	s.b.fields[s.name] = fe
	return s.b
}

// Field continues the builder chain with another field.
func (s *FieldStep) Field(name string, f Field) *FieldStep { return s.b.Field(name, f) }

func (s *FieldStep) Build() (*ObjectSchema, error) { return s.b.Build() }
func (s *FieldStep) MustBuild() *ObjectSchema      { return s.b.MustBuild() }

// Build finalizes the schema.
func (b *Builder) Build() (*ObjectSchema, error) {
	if len(b.fields) == 0 {
		return nil, fmt.Errorf("schema: object with no fields")
	}
	fields := make(map[string]fieldEntry, len(b.fields))
	sorted := make([]string, 0, len(b.fields))
	for k, fe := range b.fields {
		fields[k] = fe
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)
	return &ObjectSchema{fields: fields, sorted: sorted}, nil
}

// MustBuild is Build panicking on error.
func (b *Builder) MustBuild() *ObjectSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ObjectSchema validates a flat candidate object against its field set.
type ObjectSchema struct {
	fields map[string]fieldEntry
	sorted []string
}

var _ statejar.ShapeSchema = (*ObjectSchema)(nil)

// Validate parses known fields in sorted order, applies defaults for missing
// ones, and rejects unknown keys. The candidate is treated as read-only.
func (o *ObjectSchema) Validate(candidate map[string]any) statejar.Result {
	var iss statejar.Issues
	out := make(map[string]any, len(o.fields))

	for _, k := range o.sorted {
		fe := o.fields[k]
		if v, ok := candidate[k]; ok {
			parsed, err := fe.f.Parse(v)
			if err != nil {
				iss = statejar.AppendIssues(iss, rebase(k, err)...)
				continue
			}
			out[k] = parsed
			continue
		}
		if fe.hasDefault {
			parsed, err := fe.f.Parse(fe.def)
			if err != nil {
				iss = statejar.AppendIssues(iss, rebase(k, err)...)
				continue
			}
			out[k] = parsed
			continue
		}
		if fe.required {
			iss = statejar.AppendIssues(iss, statejar.Issue{
				Path: "/" + k, Code: statejar.CodeRequired, Message: "required",
			})
		}
	}

	for k := range candidate {
		if _, ok := o.fields[k]; !ok {
			iss = statejar.AppendIssues(iss, statejar.Issue{
				Path: "/" + k, Code: statejar.CodeUnknownKey, Message: "unknown key",
			})
		}
	}

	if len(iss) > 0 {
		sortIssues(iss)
		return statejar.Failure(iss)
	}
	return statejar.Success(out)
}

// Shape exposes the per-field layout for introspection.
func (o *ObjectSchema) Shape() map[string]any {
	shape := make(map[string]any, len(o.fields))
	for k, fe := range o.fields {
		shape[k] = fe.f
	}
	return shape
}

// rebase re-anchors a field error's issue paths under "/key".
func rebase(key string, err error) statejar.Issues {
	base := "/" + key
	child, ok := statejar.AsIssues(err)
	if !ok {
		return statejar.Issues{{Path: base, Code: statejar.CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(statejar.Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case strings.HasPrefix(p, "/"):
			p = base + p
		default:
			p = base + "/" + p
		}
		out = append(out, statejar.Issue{Path: p, Code: it.Code, Message: it.Message, Cause: it.Cause})
	}
	return out
}

// sortIssues keeps failure output deterministic regardless of candidate map
// iteration order.
func sortIssues(iss statejar.Issues) {
	sort.Slice(iss, func(i, j int) bool {
		if iss[i].Path != iss[j].Path {
			return iss[i].Path < iss[j].Path
		}
		return iss[i].Code < iss[j].Code
	})
}
