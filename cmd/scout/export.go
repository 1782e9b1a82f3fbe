package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"onebeat/scout/pkg/cli"
	"onebeat/scout/pkg/config"
	"onebeat/scout/pkg/intel/export"
	"onebeat/scout/pkg/intel/projection"
	"onebeat/scout/pkg/telemetry/logging"
)

var exportFlags struct {
	format string
	team   string
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write an export to disk without starting the server",
	Long: `Write a one-off export of the competitor database to disk.

The dataset is loaded the same way the server loads it (embedded seed or
the configured dataset file), projected for the requested team, and
encoded in the requested format.

Examples:
  # Complete database as JSON
  scout export --format json --output database.json

  # Sales battle cards as CSV
  scout export --format csv --team sales --output sales.csv

  # Product report (PDF when wkhtmltopdf is installed, text otherwise)
  scout export --format pdf --team product --output report.pdf`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "f", "json", "export format (json, csv, pdf)")
	exportCmd.Flags().StringVarP(&exportFlags.team, "team", "t", "", "team scope (sales, product, gtm; empty for the complete database)")
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "", "output file (defaults to the export's suggested filename)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: "text",
		Writer: os.Stderr,
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	format, err := export.ParseFormat(exportFlags.format)
	if err != nil {
		return cli.NewCommandError("export", err)
	}

	store, err := buildStore(cfg, logger)
	if err != nil {
		return cli.NewCommandError("export", err)
	}

	exporter := buildExporter(cfg, logger)

	result, err := exporter.Export(
		cmd.Context(),
		format,
		projection.Team(exportFlags.team),
		store.ListCompetitors(),
		store.ListCapabilities(),
		store.ListMarketSegments(),
	)
	if err != nil {
		return cli.NewCommandError("export", err)
	}

	output := exportFlags.output
	if output == "" {
		output = result.Filename
	}

	if err := os.WriteFile(output, result.Data, 0o644); err != nil {
		return cli.NewCommandError("export", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", output, len(result.Data))
	return nil
}
