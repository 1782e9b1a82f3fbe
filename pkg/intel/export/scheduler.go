package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"onebeat/scout/pkg/intel"
)

// DataSource supplies the record collections a scheduled export reads.
// *storage.Store satisfies it.
type DataSource interface {
	ListCompetitors() []intel.Competitor
	ListCapabilities() []intel.Capability
	ListMarketSegments() []intel.MarketSegment
}

// SchedulerConfig configures periodic snapshot exports.
type SchedulerConfig struct {
	// Schedule is a standard cron expression, e.g. "0 6 * * *" for
	// daily at 6 AM. Empty disables the scheduler.
	Schedule string

	// OutputDir is where snapshot files land.
	OutputDir string

	// Formats lists the formats to write each run. Empty means JSON
	// only.
	Formats []Format
}

// Scheduler writes complete-database export snapshots to disk on a cron
// schedule.
type Scheduler struct {
	exporter *Exporter
	source   DataSource
	config   SchedulerConfig
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a snapshot scheduler.
func NewScheduler(exporter *Exporter, source DataSource, config SchedulerConfig, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if len(config.Formats) == 0 {
		config.Formats = []Format{FormatJSON}
	}
	return &Scheduler{
		exporter: exporter,
		source:   source,
		config:   config,
		cron:     cron.New(),
		logger:   logger.With("component", "export.scheduler"),
	}
}

// Start begins scheduled exports. If no schedule is configured the
// scheduler does nothing. The scheduler stops itself when ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.Schedule == "" {
		s.logger.Info("export schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.config.Schedule, err)
	}

	if err := os.MkdirAll(s.config.OutputDir, 0o750); err != nil {
		return fmt.Errorf("creating export output directory: %w", err)
	}

	if _, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.runExport(ctx)
	}); err != nil {
		return fmt.Errorf("scheduling export: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("export scheduler started",
		"schedule", s.config.Schedule,
		"output_dir", s.config.OutputDir,
		"formats", formatStrings(s.config.Formats),
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runExport writes one snapshot per configured format. A failure in one
// format does not stop the others.
func (s *Scheduler) runExport(ctx context.Context) {
	competitors := s.source.ListCompetitors()
	capabilities := s.source.ListCapabilities()
	segments := s.source.ListMarketSegments()

	stamp := time.Now().UTC().Format("20060102T150405Z")

	for _, format := range s.config.Formats {
		result, err := s.exporter.Export(ctx, format, "", competitors, capabilities, segments)
		if err != nil {
			s.logger.Error("scheduled export failed",
				"format", string(format),
				"error", err,
			)
			continue
		}

		name := fmt.Sprintf("%s-%s", stamp, result.Filename)
		path := filepath.Join(s.config.OutputDir, name)
		if err := os.WriteFile(path, result.Data, 0o640); err != nil {
			s.logger.Error("writing scheduled export failed",
				"path", path,
				"error", err,
			)
			continue
		}

		s.logger.Info("scheduled export written",
			"path", path,
			"bytes", len(result.Data),
			"records", len(competitors),
		)
	}
}

// Stop stops the scheduler and waits for any running export to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.running = false
		s.logger.Info("export scheduler stopped")
	}
}

// IsRunning reports whether the scheduler has been started.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

func formatStrings(formats []Format) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}
