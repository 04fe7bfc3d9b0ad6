package modelpresets

import (
	"io/fs"

	"github.com/todoaskit/modelpresets/pkg/presets"
)

// options holds the configuration for a Modelpresets handle.
type options struct {
	path  string
	fsys  fs.FS
	bytes []byte
}

// Option configures a Modelpresets handle.
type Option func(*options)

// defaultOptions returns the default configuration: the embedded catalog.
func defaultOptions() *options {
	return &options{}
}

// apply applies the given options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPath loads the catalog from a directory or file path instead of
// the embedded data. Reload re-reads the path.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFS loads the catalog from a custom filesystem implementation.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithBytes loads the catalog from an in-memory source.
func WithBytes(data []byte) Option {
	return func(o *options) {
		o.bytes = data
	}
}

// catalogOptions translates the handle configuration into presets
// package options. The embedded catalog is the fallback.
func (o *options) catalogOptions() []presets.Option {
	switch {
	case o.path != "":
		return []presets.Option{presets.WithPath(o.path)}
	case o.fsys != nil:
		return []presets.Option{presets.WithFS(o.fsys)}
	case o.bytes != nil:
		return []presets.Option{presets.WithBytes(o.bytes)}
	default:
		return []presets.Option{presets.WithEmbedded()}
	}
}
