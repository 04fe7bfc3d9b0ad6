// Package main provides the entry point for the presets CLI tool.
package main

import (
	"github.com/todoaskit/modelpresets/cmd/presets/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
