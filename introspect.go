package statejar

import (
	"reflect"
	"sort"
	"sync"
)

// SchemaInfo is the derived, cached introspection artifact consumed by the
// Store: the schema's key set and any per-key codec encoders.
type SchemaInfo struct {
	// Keys is the ordered, unique key set obtained by validating an empty
	// candidate and reading the resulting defaults. Empty when that
	// validation fails.
	Keys []string
	// CodecEncoders maps keys to their declared reverse transforms. Keys
	// without a codec are absent.
	CodecEncoders map[string]EncodeFunc
}

// infoCache memoizes SchemaInfo per schema identity. Schemas are reused
// across many read/write calls, so repeated empty-candidate validation would
// be wasted work. Non-comparable schema values are recomputed per call.
var infoCache sync.Map // Schema -> *SchemaInfo

// ExtractSchemaInfo composes Keys and CodecEncoders into the single artifact
// the Store consumes, memoized per distinct schema identity.
func ExtractSchemaInfo(s Schema) *SchemaInfo {
	cacheable := schemaComparable(s)
	if cacheable {
		if v, ok := infoCache.Load(s); ok {
			return v.(*SchemaInfo)
		}
	}
	info := &SchemaInfo{
		Keys:          deriveKeys(s),
		CodecEncoders: extractCodecEncoders(s),
	}
	if cacheable {
		infoCache.Store(s, info)
	}
	return info
}

// Keys returns the schema's recognized key set.
func Keys(s Schema) []string { return ExtractSchemaInfo(s).Keys }

// CodecEncoders returns the schema's per-key codec encoders.
func CodecEncoders(s Schema) map[string]EncodeFunc { return ExtractSchemaInfo(s).CodecEncoders }

func schemaComparable(s Schema) bool {
	if s == nil {
		return false
	}
	return reflect.TypeOf(s).Comparable()
}

func deriveKeys(s Schema) []string {
	r := mustSync(s.Validate(map[string]any{}))
	if !r.OK() {
		return nil
	}
	keys := make([]string, 0, len(r.Value))
	for k := range r.Value {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extractCodecEncoders is best-effort: schemas without shape metadata, and
// fields without the FieldEncoder capability, simply contribute nothing.
func extractCodecEncoders(s Schema) map[string]EncodeFunc {
	out := map[string]EncodeFunc{}
	sp, ok := s.(ShapeSchema)
	if !ok {
		return out
	}
	for k, f := range sp.Shape() {
		fe, ok := f.(FieldEncoder)
		if !ok {
			continue
		}
		if enc := fe.EncodeFunc(); enc != nil {
			out[k] = enc
		}
	}
	return out
}
