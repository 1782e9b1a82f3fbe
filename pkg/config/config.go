package config

import "time"

// Config is the root configuration for the scout service.
type Config struct {
	// Server contains HTTP server settings: listen address, timeouts,
	// and CORS.
	Server ServerConfig `yaml:"server"`

	// Export contains export pipeline settings: product branding, the
	// PDF toolchain, and the optional snapshot schedule.
	Export ExportConfig `yaml:"export"`

	// Dataset controls how the in-memory store is populated at startup
	// and whether an override file is watched for changes.
	Dataset DatasetConfig `yaml:"dataset"`

	// Telemetry contains logging and metrics settings.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// ListenAddress is "host:port".
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire
	// request, including the body.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response. PDF rendering happens inside the handler, so this
	// must comfortably exceed the render timeout.
	// Default: 60s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle limit.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// RequestTimeout bounds a single request's handling via the timeout
	// middleware. Zero disables it.
	// Default: 45s
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// CORS contains Cross-Origin Resource Sharing settings. The
	// dashboard frontend is served from a different origin in
	// development, so CORS defaults to enabled with a wildcard origin.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS settings.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins lists allowed origins; ["*"] allows all.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods lists allowed HTTP methods.
	// Default: ["GET", "POST", "PUT", "DELETE", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders lists allowed request headers.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// MaxAge is the preflight cache lifetime in seconds.
	// Default: 3600
	MaxAge int `yaml:"max_age"`
}

// ExportConfig contains export pipeline settings.
type ExportConfig struct {
	// Product is the product name used in export filenames and report
	// headings.
	// Default: "Onebeat"
	Product string `yaml:"product"`

	// PDFBinary is the wkhtmltopdf binary path. Empty resolves from
	// PATH. When the binary is missing, PDF exports fall back to
	// plain-text reports.
	PDFBinary string `yaml:"pdf_binary"`

	// PDFTimeout bounds a single PDF render.
	// Default: 30s
	PDFTimeout time.Duration `yaml:"pdf_timeout"`

	// Schedule is a cron expression for periodic snapshot exports
	// written to OutputDir. Empty disables scheduled exports.
	Schedule string `yaml:"schedule"`

	// OutputDir is where scheduled snapshots are written.
	// Default: "data/exports"
	OutputDir string `yaml:"output_dir"`

	// ScheduleFormats lists the formats each scheduled run produces.
	// Default: ["json"]
	ScheduleFormats []string `yaml:"schedule_formats"`
}

// DatasetConfig controls store population.
type DatasetConfig struct {
	// Seed controls whether the embedded seed dataset is loaded at
	// startup when no override path is set.
	// Default: true
	Seed bool `yaml:"seed"`

	// Path is an optional YAML dataset file that replaces the embedded
	// seed.
	Path string `yaml:"path"`

	// Watch reloads Path on change when set. Requires Path.
	// Default: false
	Watch bool `yaml:"watch"`
}

// TelemetryConfig contains observability settings.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is served.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the metrics endpoint path.
	// Default: "/metrics"
	Path string `yaml:"path"`
}
