// Package embedded compiles the built-in preset catalog into the binary.
package embedded

import (
	"embed"
)

// FS embeds the preset catalog yaml files at build time.
//
//go:embed catalog/*
var FS embed.FS
