// Package presets provides the architecture preset catalog: a static,
// named collection of neural-network hyperparameter records with
// base-template inheritance.
//
// A catalog source is a YAML mapping of preset name to flat field
// mapping. An entry may declare a base reference; the loader resolves it
// by copying every field of the referenced template and applying the
// entry's own fields on top (own fields win). Resolution and schema
// validation happen eagerly at load time, so a malformed catalog fails
// at process start rather than deep inside model construction.
//
// Example usage:
//
//	// Load the built-in catalog (production use)
//	catalog, err := presets.New(presets.WithEmbedded())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Look up a preset and read its architecture
//	p, err := catalog.Preset("ALEXNETV_CIFAR100")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.ConvFilters(), p.NClasses())
//
//	// Load from files on disk (development use)
//	catalog, err = presets.New(presets.WithPath("./catalog"))
package presets

import (
	"os"

	"github.com/todoaskit/modelpresets/pkg/errors"
)

// Catalog is an immutable, ordered collection of resolved presets and
// the base templates they inherit from. It is safe for concurrent use:
// nothing is mutated after load.
type Catalog struct {
	options *catalogOptions
	source  string // where the catalog came from, for error reports

	entries       map[string]*Preset
	presetOrder   []string // full presets, declaration order
	templateOrder []string // pure templates, declaration order
}

// New creates a catalog from the given options and loads it eagerly.
// WithEmbedded() reads the built-in catalog, WithPath(path) reads from
// disk, WithFS/WithBytes support custom sources. Calling New without a
// source option is an error.
func New(opts ...Option) (*Catalog, error) {
	cat := &Catalog{
		options: catalogDefaults().apply(opts...),
		entries: make(map[string]*Preset),
	}

	if err := cat.load(); err != nil {
		return nil, errors.WrapResource("load", "catalog", "", err)
	}

	return cat, nil
}

// NewEmbedded creates a catalog backed by the preset data compiled into
// the binary. This is the recommended catalog for production use.
func NewEmbedded() (*Catalog, error) {
	return New(WithEmbedded())
}

// NewFromPath creates a catalog backed by files on disk. This is useful
// for development when you want to edit the catalog without recompiling.
func NewFromPath(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	return New(WithPath(path))
}

// NewFromBytes creates a catalog by parsing an in-memory source.
func NewFromBytes(data []byte) (*Catalog, error) {
	return New(WithBytes(data))
}

// Source describes where the catalog was loaded from.
func (cat *Catalog) Source() string {
	return cat.source
}

// Presets returns every full preset in declaration order. Pure
// templates are excluded; they are merge sources, not consumable
// presets.
func (cat *Catalog) Presets() []*Preset {
	out := make([]*Preset, 0, len(cat.presetOrder))
	for _, name := range cat.presetOrder {
		out = append(out, cat.entries[name])
	}
	return out
}

// Preset returns a full preset by name.
func (cat *Catalog) Preset(name string) (*Preset, error) {
	p, ok := cat.entries[name]
	if !ok || p.template {
		return nil, &errors.NotFoundError{
			Resource: "preset",
			Name:     name,
		}
	}
	return p, nil
}

// Templates returns every pure template in declaration order.
func (cat *Catalog) Templates() []*Preset {
	out := make([]*Preset, 0, len(cat.templateOrder))
	for _, name := range cat.templateOrder {
		out = append(out, cat.entries[name])
	}
	return out
}

// Template returns a pure template by name.
func (cat *Catalog) Template(name string) (*Preset, error) {
	p, ok := cat.entries[name]
	if !ok || !p.template {
		return nil, &errors.NotFoundError{
			Resource: "template",
			Name:     name,
		}
	}
	return p, nil
}

// Names returns the names of every full preset in declaration order.
func (cat *Catalog) Names() []string {
	out := make([]string, len(cat.presetOrder))
	copy(out, cat.presetOrder)
	return out
}

// Len returns the number of full presets in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.presetOrder)
}

// Validate re-runs schema validation over every full preset and returns
// the violations keyed by preset name. A freshly loaded catalog always
// validates cleanly; this exists for callers that want a full report,
// such as the validate CLI command.
func (cat *Catalog) Validate() map[string][]Violation {
	out := make(map[string][]Violation)
	for _, name := range cat.presetOrder {
		if violations := Validate(cat.entries[name]); len(violations) > 0 {
			out[name] = violations
		}
	}
	return out
}
