// Package main is the entry point for the shardvault CLI.
package main

import (
	"os"

	"github.com/shardvault/shardvault/internal/cli"
)

// Build info variables set via ldflags during build.
//
//nolint:gochecknoglobals // Required for ldflags injection at build time
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate

	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
