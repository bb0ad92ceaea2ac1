package statejar

import (
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Store holds the authoritative client-side cache for one schema and owns the
// write pipeline: key check -> equality suppression -> codec encode ->
// validation gate -> persist -> commit -> notify.
//
// A Store is exclusively owned by one execution context; it is not designed
// for concurrent mutation.
type Store struct {
	schema Schema
	info   *SchemaInfo
	keys   map[string]struct{}
	cache  map[string]any

	jar   JarWriter
	attrs Attributes
	log   *zap.SugaredLogger

	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(key string, value any)
}

// Option configures a Store.
type Option func(*Store)

// WithTransport sets the jar the write pipeline persists to. Without it,
// writes mutate the cache only.
func WithTransport(w JarWriter) Option {
	return func(s *Store) { s.jar = w }
}

// WithAttributes sets the default cookie attributes used by Set. Update
// callers supply attributes explicitly.
func WithAttributes(a Attributes) Option {
	return func(s *Store) { s.attrs = a }
}

// WithLogger sets the pipeline logger. Defaults to a nop logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = l }
}

// New builds a Store over schema, seeded from initial (normally the output of
// PickCookies). Entries for non-schema keys are dropped so the cache never
// holds a key absent from the schema's key set.
func New(schema Schema, initial map[string]any, opts ...Option) *Store {
	info := ExtractSchemaInfo(schema)
	s := &Store{
		schema: schema,
		info:   info,
		keys:   make(map[string]struct{}, len(info.Keys)),
		cache:  make(map[string]any, len(info.Keys)),
		log:    zap.NewNop().Sugar(),
	}
	for _, k := range info.Keys {
		s.keys[k] = struct{}{}
	}
	for k, v := range initial {
		if _, ok := s.keys[k]; ok {
			s.cache[k] = v
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Has reports whether key belongs to the schema's key set.
func (s *Store) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Keys returns the schema's recognized keys in order.
func (s *Store) Keys() []string { return s.info.Keys }

// Validate delegates to the schema. It panics with ErrAsyncValidation when
// the schema returns a deferred result; everything else degrades gracefully.
func (s *Store) Validate(candidate map[string]any) Result {
	return mustSync(s.schema.Validate(candidate))
}

// Get reads key through the recovery pipeline. When the whole cache
// validates, the validated value is returned. Otherwise the schema defaults
// are overlaid with every cache entry not referenced by an issue, so a single
// invalid key never blocks reads of other, still-valid keys. Get never fails
// for data-shape reasons.
func (s *Store) Get(key string) any {
	r := s.Validate(s.cache)
	if r.OK() {
		return r.Value[key]
	}

	defaults := map[string]any{}
	if dr := s.Validate(map[string]any{}); dr.OK() {
		defaults = dr.Value
	}
	merged := make(map[string]any, len(defaults)+len(s.cache))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range s.cache {
		if issuesReference(r.Issues, k) {
			continue
		}
		merged[k] = v
	}
	return merged[key]
}

// Set writes key through the pipeline using the store's default attributes.
// The returned error is a transport failure only; every schema-level failure
// is a silent no-op.
func (s *Store) Set(key string, value any) error {
	return s.write(key, value, s.attrs)
}

// Update is Set with explicit cookie attributes.
func (s *Store) Update(key string, value any, attrs Attributes) error {
	return s.write(key, value, attrs)
}

// Subscribe registers fn to be invoked synchronously after each committed
// mutation. The returned cancel func removes the subscription; the caller
// owns its lifetime.
func (s *Store) Subscribe(fn func(key string, value any)) (cancel func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a copy of the raw cache.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.cache))
	for k, v := range s.cache {
		out[k] = v
	}
	return out
}

func (s *Store) write(key string, value any, attrs Attributes) error {
	if !s.Has(key) {
		return nil
	}
	if cur, ok := s.cache[key]; ok && equalValue(cur, value) {
		return nil
	}

	encoded := value
	if enc, ok := s.info.CodecEncoders[key]; ok {
		ev, err := enc(value)
		if err != nil {
			s.log.Warnw("codec encode failed, storing raw value", "key", key, "error", err)
		} else {
			encoded = ev
		}
	}

	candidate := make(map[string]any, len(s.cache)+1)
	for k, v := range s.cache {
		candidate[k] = v
	}
	candidate[key] = encoded

	r := s.Validate(candidate)
	if !r.OK() {
		s.log.Debugw("write rejected by schema", "key", key, "issues", r.Issues.Error())
		return nil
	}

	if s.jar != nil {
		// The transport stores the JSON of the pre-encode input; the cache
		// commits the validated value below. Keep this asymmetry.
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := s.jar.Set(EncodeCookieName(key), string(raw), attrs); err != nil {
			return err
		}
	}

	s.cache[key] = r.Value[key]
	for _, sub := range s.subs {
		sub.fn(key, s.cache[key])
	}
	return nil
}

// issuesReference reports whether any issue path points at key or below it.
func issuesReference(iss Issues, key string) bool {
	p := "/" + key
	for _, it := range iss {
		if it.Path == p || strings.HasPrefix(it.Path, p+"/") {
			return true
		}
	}
	return false
}

// equalValue compares primitives by equality and everything else
// structurally. Used to suppress redundant transport writes and notification
// churn.
func equalValue(a, b any) bool {
	if isPrimitive(a) || isPrimitive(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func isPrimitive(v any) bool {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
