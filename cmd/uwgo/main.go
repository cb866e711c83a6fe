// Package main provides the entry point for the uwgo CLI tool.
package main

import (
	"github.com/urbanclimate/uwgo/cmd/uwgo/cmd"
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
