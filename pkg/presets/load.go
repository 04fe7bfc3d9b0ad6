package presets

import (
	goerrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/todoaskit/modelpresets/pkg/errors"
)

// baseKey is the reserved per-entry key declaring a base reference.
const baseKey = "base"

// requiredFields must be present on every full preset. An entry missing
// any of them is classified as a pure template.
var requiredFields = []string{"mtype", "dtype", "n_classes"}

// rawEntry is one top-level catalog entry before resolution.
type rawEntry struct {
	name   string
	base   string
	fields Fields
}

// load reads, parses, resolves, and validates the configured source.
// All failure modes surface here; after load the catalog is read-only.
func (cat *Catalog) load() error {
	data, source, err := cat.options.read()
	if err != nil {
		return err
	}
	cat.source = source

	entries, err := parseCatalog(data, source)
	if err != nil {
		return err
	}

	return cat.resolve(entries)
}

// read fetches the catalog source bytes per the configured options.
func (c *catalogOptions) read() ([]byte, string, error) {
	switch {
	case c.data != nil:
		return c.data, "<memory>", nil

	case c.path != "":
		path := c.path
		info, err := os.Stat(path)
		if err != nil {
			return nil, "", errors.WrapIO("stat", path, err)
		}
		if info.IsDir() {
			path = filepath.Join(path, c.file)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", errors.WrapIO("read", path, err)
		}
		return data, path, nil

	case c.readFS != nil:
		data, err := fs.ReadFile(c.readFS, c.file)
		if err != nil {
			return nil, "", errors.WrapIO("read", c.file, err)
		}
		return data, c.file, nil

	default:
		return nil, "", errors.New("no catalog source configured")
	}
}

// parseCatalog decodes the source into ordered raw entries, rejecting
// duplicate top-level keys and non-scalar or wrongly typed field values.
func parseCatalog(data []byte, source string) ([]rawEntry, error) {
	// MapSlice preserves declaration order and keeps duplicate keys as
	// separate items. The decoder rejects duplicate mapping keys on its
	// own unless told otherwise; letting them through here is what makes
	// the DuplicateKeyError check below reachable.
	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.AllowDuplicateMapKey()); err != nil {
		return nil, errors.WrapParse("yaml", source, err)
	}

	entries := make([]rawEntry, 0, len(doc))
	seen := make(map[string]bool, len(doc))

	for _, item := range doc {
		name, ok := item.Key.(string)
		if !ok {
			return nil, errors.NewMalformedEntryError("", "", "top-level key is not a string")
		}
		if seen[name] {
			return nil, errors.NewDuplicateKeyError(name)
		}
		seen[name] = true

		fields, err := entryFields(name, item.Value)
		if err != nil {
			return nil, err
		}

		entry := rawEntry{name: name, fields: fields}
		if raw, ok := fields[baseKey]; ok {
			base, ok := raw.(string)
			if !ok {
				return nil, errors.NewMalformedEntryError(name, baseKey, "base reference must be a string")
			}
			entry.base = base
			delete(fields, baseKey)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// entryFields converts one decoded entry value into Fields, checking
// every value against the schema's primitive types.
func entryFields(name string, value any) (Fields, error) {
	fields := make(Fields)

	switch v := value.(type) {
	case nil:
		return fields, nil
	case map[string]any:
		for key, val := range v {
			fields[key] = val
		}
	case yaml.MapSlice:
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				return nil, errors.NewMalformedEntryError(name, "", "field name is not a string")
			}
			fields[key] = item.Value
		}
	default:
		return nil, errors.NewMalformedEntryError(name, "", "entry is not a mapping")
	}

	for key, val := range fields {
		if key == baseKey {
			continue // checked by the caller
		}
		if err := checkFieldType(name, key, val); err != nil {
			return nil, err
		}
	}

	return fields, nil
}

// fieldKind is the expected primitive type of a known schema field.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
	kindBool
)

// knownFields maps non-stage schema fields to their primitive types.
var knownFields = map[string]fieldKind{
	"mtype":                   kindString,
	"dtype":                   kindString,
	"dropout_type":            kindString,
	"n_classes":               kindInt,
	"one_step_neurons":        kindInt,
	"one_step_filters":        kindInt,
	"keep_prob":               kindFloat,
	"use_batch_normalization": kindBool,
}

// checkFieldType rejects values whose primitive type does not match the
// schema's expectation for the key. Unknown keys only need to be scalar.
func checkFieldType(preset, key string, val any) error {
	kind, known := knownFields[key]
	if !known {
		if _, stage := parseStageField(key); stage {
			kind, known = kindInt, true
		}
	}

	if !known {
		if !isScalar(val) {
			return errors.NewMalformedEntryError(preset, key, "value is not a scalar")
		}
		return nil
	}

	switch kind {
	case kindString:
		if _, ok := val.(string); !ok {
			return errors.NewMalformedEntryError(preset, key, "expected string")
		}
	case kindInt:
		if _, ok := toInt(val); !ok {
			return errors.NewMalformedEntryError(preset, key, "expected integer")
		}
	case kindFloat:
		if _, ok := toFloat(val); !ok {
			return errors.NewMalformedEntryError(preset, key, "expected number")
		}
	case kindBool:
		if _, ok := val.(bool); !ok {
			return errors.NewMalformedEntryError(preset, key, "expected boolean")
		}
	}

	return nil
}

// resolve applies base-template inheritance, classifies entries, and
// validates every full preset against the schema.
func (cat *Catalog) resolve(entries []rawEntry) error {
	byName := make(map[string]rawEntry, len(entries))
	for _, e := range entries {
		byName[e.name] = e
	}

	for _, e := range entries {
		fields := e.fields
		if e.base != "" {
			base, ok := byName[e.base]
			if !ok {
				return errors.NewUnknownBaseError(e.name, e.base)
			}
			if base.base != "" {
				return errors.NewMalformedEntryError(e.name, baseKey,
					"base "+e.base+" declares a base of its own; chained inheritance is not supported")
			}
			fields = Merge(base.fields, e.fields)
		}

		preset := &Preset{
			name:     e.name,
			template: !hasRequiredFields(fields),
			fields:   fields,
		}

		cat.entries[e.name] = preset
		if preset.template {
			cat.templateOrder = append(cat.templateOrder, e.name)
		} else {
			cat.presetOrder = append(cat.presetOrder, e.name)
		}
	}

	// Eager schema validation: report every violation at once.
	var errs []error
	for _, name := range cat.presetOrder {
		for _, v := range Validate(cat.entries[name]) {
			errs = append(errs, errors.NewValidationError(name, v.Field, v.Message))
		}
	}
	if len(errs) > 0 {
		return goerrors.Join(errs...)
	}

	return nil
}

// hasRequiredFields reports whether the resolved fields carry everything
// a full preset must declare.
func hasRequiredFields(fields Fields) bool {
	for _, key := range requiredFields {
		if !fields.Has(key) {
			return false
		}
	}
	return true
}
