package config

import "time"

// Default values for configuration fields.
const (
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRequestTimeout  = 45 * time.Second

	DefaultCORSEnabled = true
	DefaultCORSMaxAge  = 3600

	DefaultProduct         = "Onebeat"
	DefaultPDFTimeout      = 30 * time.Second
	DefaultExportOutputDir = "data/exports"

	DefaultDatasetSeed = true

	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "json"

	DefaultMetricsEnabled = true
	DefaultMetricsPath    = "/metrics"
)

// DefaultConfig returns a configuration populated entirely with
// defaults, suitable for running without a config file.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields with default values. It never
// overrides a value the user set explicitly.
func ApplyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyExportDefaults(&cfg.Export)
	applyDatasetDefaults(&cfg.Dataset)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyServerDefaults(s *ServerConfig) {
	if s.ListenAddress == "" {
		s.ListenAddress = DefaultListenAddress
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = DefaultReadTimeout
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = DefaultWriteTimeout
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = DefaultIdleTimeout
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = DefaultShutdownTimeout
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = DefaultRequestTimeout
	}
	applyCORSDefaults(&s.CORS)
}

func applyCORSDefaults(cors *CORSConfig) {
	if !cors.Enabled {
		// A false Enabled with other CORS fields set means the user
		// configured CORS and turned it off. A fully zero CORS block
		// means they never touched it, so the default applies.
		hasAnyConfig := len(cors.AllowedOrigins) > 0 ||
			len(cors.AllowedMethods) > 0 ||
			len(cors.AllowedHeaders) > 0 ||
			cors.MaxAge > 0

		if !hasAnyConfig {
			cors.Enabled = DefaultCORSEnabled
		}
	}

	if len(cors.AllowedOrigins) == 0 {
		cors.AllowedOrigins = []string{"*"}
	}
	if len(cors.AllowedMethods) == 0 {
		cors.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cors.AllowedHeaders) == 0 {
		cors.AllowedHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cors.MaxAge == 0 {
		cors.MaxAge = DefaultCORSMaxAge
	}
}

func applyExportDefaults(e *ExportConfig) {
	if e.Product == "" {
		e.Product = DefaultProduct
	}
	if e.PDFTimeout == 0 {
		e.PDFTimeout = DefaultPDFTimeout
	}
	if e.OutputDir == "" {
		e.OutputDir = DefaultExportOutputDir
	}
	if len(e.ScheduleFormats) == 0 {
		e.ScheduleFormats = []string{"json"}
	}
}

func applyDatasetDefaults(d *DatasetConfig) {
	if !d.Seed && d.Path == "" && !d.Watch {
		d.Seed = DefaultDatasetSeed
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Logging.Level == "" {
		t.Logging.Level = DefaultLoggingLevel
	}
	if t.Logging.Format == "" {
		t.Logging.Format = DefaultLoggingFormat
	}
	if !t.Metrics.Enabled && t.Metrics.Path == "" {
		t.Metrics.Enabled = DefaultMetricsEnabled
	}
	if t.Metrics.Path == "" {
		t.Metrics.Path = DefaultMetricsPath
	}
}
