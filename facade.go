package statejar

// Facade presents schema keys as a flat readable/writable surface over a
// Store. Accessors are generated once from the schema's key set as an
// explicit dispatch table; Update is the reserved operation name for
// explicit-attribute writes and always routes to the store, shadowing any
// schema key of the same name. Non-schema names fall through to the raw
// store surface via Raw.
type Facade struct {
	store   *Store
	getters map[string]func() any
	setters map[string]func(any) error
}

// NewFacade builds the dispatch table for the store's schema keys.
func NewFacade(s *Store) *Facade {
	f := &Facade{
		store:   s,
		getters: make(map[string]func() any, len(s.info.Keys)),
		setters: make(map[string]func(any) error, len(s.info.Keys)),
	}
	for _, k := range s.info.Keys {
		key := k
		f.getters[key] = func() any { return s.Get(key) }
		f.setters[key] = func(v any) error { return s.Set(key, v) }
	}
	return f
}

// Has reports whether name resolves through the dispatch table.
func (f *Facade) Has(name string) bool {
	_, ok := f.getters[name]
	return ok
}

// Get reads a schema key through the store's recovery pipeline. ok is false
// for names outside the dispatch table.
func (f *Facade) Get(name string) (value any, ok bool) {
	g, ok := f.getters[name]
	if !ok {
		return nil, false
	}
	return g(), true
}

// Set writes a schema key through the store's pipeline with default
// attributes. Names outside the dispatch table are a no-op.
func (f *Facade) Set(name string, value any) error {
	setter, ok := f.setters[name]
	if !ok {
		return nil
	}
	return setter(value)
}

// Update is the reserved explicit-attribute write; it always routes to the
// store regardless of the dispatch table.
func (f *Facade) Update(name string, value any, attrs Attributes) error {
	return f.store.Update(name, value, attrs)
}

// Raw exposes the underlying store for everything the dispatch table does
// not cover.
func (f *Facade) Raw() *Store { return f.store }
