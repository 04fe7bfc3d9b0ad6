package presets

import (
	"io/fs"

	"github.com/todoaskit/modelpresets/internal/embedded"
)

// DefaultCatalogFile is the file name the loader reads from a catalog
// filesystem when no explicit file is configured.
const DefaultCatalogFile = "presets.yaml"

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	readFS fs.FS  // filesystem holding the catalog file
	file   string // catalog file name within readFS
	path   string // explicit directory or file path, resolved at load time
	data   []byte // in-memory catalog source
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		file: DefaultCatalogFile,
	}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithFS configures the catalog to read from a custom fs.FS.
func WithFS(fsys fs.FS) Option {
	return func(c *catalogOptions) {
		c.readFS = fsys
	}
}

// WithFile sets the catalog file name read from the configured filesystem.
func WithFile(name string) Option {
	return func(c *catalogOptions) {
		c.file = name
	}
}

// WithPath configures the catalog to read from a directory or file path.
// A directory is expected to contain DefaultCatalogFile.
func WithPath(path string) Option {
	return func(c *catalogOptions) {
		c.path = path
	}
}

// WithEmbedded configures the catalog to use the built-in preset data
// compiled into the binary.
func WithEmbedded() Option {
	return func(c *catalogOptions) {
		// Use fs.Sub to get the catalog subdirectory
		catalogFS, err := fs.Sub(embedded.FS, "catalog")
		if err != nil {
			// Fall back to the full embedded FS
			c.readFS = embedded.FS
		} else {
			c.readFS = catalogFS
		}
	}
}

// WithBytes configures the catalog to parse an in-memory source.
func WithBytes(data []byte) Option {
	return func(c *catalogOptions) {
		c.data = data
	}
}
