package statejar

// Schema is the external validation contract. Validate takes a candidate
// object and returns either the validated (possibly transformed) value set or
// a list of path-scoped issues. Validation must complete synchronously; a
// deferred Result is treated as a fatal contract violation by every consumer
// in this package.
type Schema interface {
	Validate(candidate map[string]any) Result
}

// Result is the outcome of validating a candidate object.
type Result struct {
	// Value holds the validated entries on success. Values may differ from
	// the candidate's when the schema applies its own transforms.
	Value map[string]any
	// Issues is non-empty on failure.
	Issues Issues

	deferred <-chan Result
}

// Success wraps a validated value set.
func Success(value map[string]any) Result { return Result{Value: value} }

// Failure wraps a set of validation issues.
func Failure(iss Issues) Result { return Result{Issues: iss} }

// DeferredResult marks a Result that will only complete asynchronously.
// Schema adapters bridging async validators may return it; the store refuses
// it with ErrAsyncValidation instead of awaiting.
func DeferredResult(ch <-chan Result) Result { return Result{deferred: ch} }

// OK reports whether validation completed and succeeded.
func (r Result) OK() bool { return r.deferred == nil && len(r.Issues) == 0 }

// Deferred reports whether the Result violates the synchronous contract.
func (r Result) Deferred() bool { return r.deferred != nil }

// EncodeFunc transforms a value into its validation/storage representation
// before the schema re-applies its own transform.
type EncodeFunc func(value any) (any, error)

// ShapeSchema is optionally implemented by schemas that expose their
// per-field layout. The introspector only probes fields for the FieldEncoder
// capability; everything else about a field stays opaque. Absence of the
// interface is tolerated and yields an empty codec map.
type ShapeSchema interface {
	Schema
	Shape() map[string]any
}

// FieldEncoder is the explicit codec capability a field declares up front.
// A field exposing a non-nil EncodeFunc has its reverse transform registered
// as the key's codec encoder.
type FieldEncoder interface {
	EncodeFunc() EncodeFunc
}

// mustSync asserts the synchronous-validation contract.
func mustSync(r Result) Result {
	if r.Deferred() {
		panic(ErrAsyncValidation)
	}
	return r
}
