package presets

import (
	"strconv"
	"strings"
)

// Fields is a flat mapping of field name to scalar value.
// It is the resolved form of one catalog entry: after base-template
// inheritance has been applied there are no remaining references,
// only string, integer, float, and boolean scalars.
type Fields map[string]any

// Copy returns a shallow copy of the fields.
// Values are scalars, so a shallow copy is a full copy.
func (f Fields) Copy() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge constructs a resolved record from a base template and an override.
// Every field of base is copied first, then every field of override is
// applied on top; override wins on key collision. The merge is shallow.
// Neither argument is mutated.
func Merge(base, override Fields) Fields {
	out := make(Fields, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Int reads an integer field. The second return is false when the field
// is absent or holds a non-integer value.
func (f Fields) Int(key string) (int, bool) {
	v, ok := f[key]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// Float reads a numeric field as float64. Integer values are widened.
func (f Fields) Float(key string) (float64, bool) {
	v, ok := f[key]
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// String reads a string field.
func (f Fields) String(key string) (string, bool) {
	v, ok := f[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool reads a boolean field.
func (f Fields) Bool(key string) (bool, bool) {
	v, ok := f[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Has reports whether the field is present.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// toInt coerces the scalar types the YAML decoder produces into an int.
// Floats do not coerce: 10.5 is not a valid layer width.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

// toFloat coerces numeric scalars into a float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		if i, ok := toInt(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

// isScalar reports whether v is one of the scalar value types the
// catalog format supports.
func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, float32, float64:
		return true
	default:
		_, ok := toInt(v)
		return ok
	}
}

// stageField describes a stage-indexed field name such as conv2_filters,
// pool0_ksize, fc1, or dims3.
type stageField struct {
	Prefix string // "conv", "pool", "fc", "dims"
	Index  int
	Attr   string // "filters", "size", "ksize", or "" for fc/dims
}

// stagePrefixes are the recognized stage-indexed field name prefixes.
var stagePrefixes = []string{"conv", "pool", "fc", "dims"}

// parseStageField splits a field name into its stage components.
// Returns ok == false for names that are not stage-indexed, such as
// n_classes or keep_prob.
func parseStageField(name string) (stageField, bool) {
	for _, prefix := range stagePrefixes {
		rest, found := strings.CutPrefix(name, prefix)
		if !found || rest == "" {
			continue
		}

		digits := rest
		attr := ""
		if i := strings.IndexByte(rest, '_'); i >= 0 {
			digits = rest[:i]
			attr = rest[i+1:]
		}

		idx, err := strconv.Atoi(digits)
		if err != nil || idx < 0 {
			continue
		}

		return stageField{Prefix: prefix, Index: idx, Attr: attr}, true
	}
	return stageField{}, false
}
