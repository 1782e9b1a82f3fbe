package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"onebeat/scout/pkg/cli"
	"onebeat/scout/pkg/config"
	"onebeat/scout/pkg/intel/export"
	"onebeat/scout/pkg/intel/storage"
	"onebeat/scout/pkg/server"
	"onebeat/scout/pkg/telemetry/logging"
	"onebeat/scout/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Scout API server",
	Long: `Start the Scout API server with the specified configuration.

The server loads the competitor dataset into memory, then serves the CRUD
and export endpoints until interrupted.

Examples:
  # Start with default config
  scout serve

  # Start with custom config
  scout serve --config /etc/scout/config.yaml

  # Override listen address
  scout serve --listen 0.0.0.0:8080

  # Validate config without starting the server
  scout serve --dry-run`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting the server")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.Setup(logging.Config{
		Level:  cfg.Telemetry.Logging.Level,
		Format: cfg.Telemetry.Logging.Format,
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if serveFlags.dryRun {
		fmt.Println("Configuration valid")
		return nil
	}

	ctx := cli.SetupSignalHandler()

	store, err := buildStore(cfg, logger)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	if cfg.Dataset.Watch {
		watcher, err := storage.NewWatcher(cfg.Dataset.Path, store, logger)
		if err != nil {
			return cli.NewCommandError("serve", err)
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				logger.Error("dataset watcher exited", "error", err)
			}
		}()
		defer watcher.Stop()
	}

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(nil)
		competitors, capabilities, segments := store.Counts()
		collector.SetStoreCounts(competitors, capabilities, segments)
	}

	exporter := buildExporter(cfg, logger)

	if cfg.Export.Schedule != "" {
		scheduler := export.NewScheduler(exporter, store, export.SchedulerConfig{
			Schedule:  cfg.Export.Schedule,
			OutputDir: cfg.Export.OutputDir,
			Formats:   scheduleFormats(cfg.Export.ScheduleFormats),
		}, logger)
		if err := scheduler.Start(ctx); err != nil {
			return cli.NewCommandError("serve", err)
		}
		defer scheduler.Stop()
	}

	srv := server.NewServer(cfg, store, exporter, collector, logger)

	competitors, capabilities, segments := store.Counts()
	logger.Info("dataset loaded",
		"competitors", competitors,
		"capabilities", capabilities,
		"market_segments", segments,
	)
	fmt.Printf("Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}

// buildStore creates the in-memory store and populates it from the
// configured dataset source.
func buildStore(cfg *config.Config, logger *slog.Logger) (*storage.Store, error) {
	store := storage.NewStore()

	switch {
	case cfg.Dataset.Path != "":
		ds, err := storage.LoadDatasetFile(cfg.Dataset.Path)
		if err != nil {
			return nil, fmt.Errorf("loading dataset %s: %w", cfg.Dataset.Path, err)
		}
		store.Replace(ds)
		logger.Info("dataset loaded from file", "path", cfg.Dataset.Path)

	case cfg.Dataset.Seed:
		ds, err := storage.Seed()
		if err != nil {
			return nil, fmt.Errorf("loading embedded seed dataset: %w", err)
		}
		store.Replace(ds)

	default:
		logger.Info("starting with an empty store")
	}

	return store, nil
}

// buildExporter creates the exporter with the configured PDF renderer.
// A missing wkhtmltopdf binary is not fatal; PDF exports degrade to
// plain-text reports.
func buildExporter(cfg *config.Config, logger *slog.Logger) *export.Exporter {
	renderer := export.NewWKHTMLToPDF(cfg.Export.PDFBinary)
	renderer.Timeout = cfg.Export.PDFTimeout

	if !renderer.Available() {
		logger.Warn("wkhtmltopdf not found, PDF exports will fall back to plain text",
			"binary", cfg.Export.PDFBinary,
		)
	}

	return export.NewExporter(cfg.Export.Product, renderer, logger)
}

func scheduleFormats(names []string) []export.Format {
	formats := make([]export.Format, 0, len(names))
	for _, name := range names {
		if f, err := export.ParseFormat(name); err == nil {
			formats = append(formats, f)
		}
	}
	return formats
}
