package statejar

// Package statejar synchronizes a schema-defined set of key/value entries
// between a server-rendered cookie jar and a client-held cache.
//
// - Schema introspection (key and codec-encoder discovery), memoized per schema identity
// - A boundary extraction filter that seeds a Store from a raw jar
// - A synchronization Store with a validation-gated write pipeline
// - A dispatch-table Facade exposing schema keys as a flat surface
//
// Design policy:
// - Keep only public APIs in the root package; put jar adapters under jar/,
//   the reference schema implementation under schema/, and codecs under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	initial := statejar.PickCookies(httpjar.NewReader(r), prefs)
//	store := statejar.New(prefs, initial, statejar.WithTransport(httpjar.NewWriter(w)))
//	theme := store.Get("theme")
//	_ = store.Set("theme", "dark")
