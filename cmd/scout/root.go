package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Onebeat Scout - competitive intelligence service",
	Long: `Onebeat Scout serves the competitive intelligence database that backs
the sales, product, and go-to-market dashboards.

It provides:
  - CRUD endpoints for competitors, capabilities, and market segments
  - Team-scoped exports in JSON, CSV, and PDF formats
  - Dataset hot reload from a YAML override file
  - Scheduled export snapshots written to disk`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (empty uses built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
