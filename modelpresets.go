// Package modelpresets provides the top-level entry point for the
// architecture preset catalog. It wraps the presets package with lazy
// loading and atomic reload so the hosting application can treat "the
// current catalog" as a single immutable value that is swapped whole.
//
// Example usage:
//
//	mp, err := modelpresets.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	catalog := mp.Catalog()
//	p, err := catalog.Preset("SMALL_FC_MNIST")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Dims())
//
//	// Pick up edits to an on-disk catalog
//	mp, err = modelpresets.New(modelpresets.WithPath("./catalog"))
//	...
//	if err := mp.Reload(); err != nil {
//	    log.Fatal(err)
//	}
package modelpresets

import (
	"sync"

	"github.com/todoaskit/modelpresets/pkg/errors"
	"github.com/todoaskit/modelpresets/pkg/logging"
	"github.com/todoaskit/modelpresets/pkg/presets"
)

// Modelpresets is the high-level handle on the preset catalog.
type Modelpresets interface {
	// Catalog returns the current resolved catalog. The returned value
	// is immutable; it stays valid across Reload.
	Catalog() *presets.Catalog

	// Reload rebuilds the catalog from its source and swaps it in
	// atomically. On failure the previous catalog stays current.
	Reload() error
}

// client is the single implementation of Modelpresets.
type client struct {
	options *options
	store   *presets.Store

	reloadMu sync.Mutex // serializes writers; readers go through the store
}

// New creates a Modelpresets handle and loads the catalog eagerly.
// Without options the embedded catalog is used.
func New(opts ...Option) (Modelpresets, error) {
	c := &client{
		options: defaultOptions().apply(opts...),
	}

	cat, err := c.loadCatalog()
	if err != nil {
		return nil, err
	}
	c.store = presets.NewStore(cat)

	logging.Debug().
		Str("source", cat.Source()).
		Int("presets", cat.Len()).
		Msg("Preset catalog loaded")

	return c, nil
}

// Catalog returns the current resolved catalog.
func (c *client) Catalog() *presets.Catalog {
	return c.store.Current()
}

// Reload rebuilds the catalog from its configured source and swaps it
// in. Readers holding the previous catalog are unaffected.
func (c *client) Reload() error {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	cat, err := c.loadCatalog()
	if err != nil {
		return errors.WrapResource("reload", "catalog", "", err)
	}

	c.store.Swap(cat)

	logging.Debug().
		Str("source", cat.Source()).
		Int("presets", cat.Len()).
		Msg("Preset catalog reloaded")

	return nil
}

// loadCatalog constructs a fresh catalog per the configured options.
func (c *client) loadCatalog() (*presets.Catalog, error) {
	return presets.New(c.options.catalogOptions()...)
}
