// Package main provides the entry point for the tickclock CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/tickclock/internal/cli"
)

// Set via ldflags at build time.
//
//nolint:gochecknoglobals // Build metadata injected by the linker
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	cli.PrintError(os.Stderr, err)
	os.Exit(cli.ExitCodeForError(err))
}
