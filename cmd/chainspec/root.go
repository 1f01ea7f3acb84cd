package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "chainspec",
	Short: "Deterministic chain specifications for development networks",
	Long: `Chainspec builds block-zero state for the named development network
profiles. Every identity is re-derived from the public development phrase on
each run, so the output is reproducible across machines.

It provides subcommands for:
- Building a profile's chain specification as JSON
- Inspecting the identities derived for participant labels`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newBuildCmd(),
		newKeysCmd(),
	)
}
