package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults,
// and validates the result. Environment variables are not consulted;
// use LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// layers SCOUT_SECTION_FIELD environment variables on top. An empty
// path starts from defaults only.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = DefaultConfig()
	} else {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	// Server
	if val := os.Getenv("SCOUT_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("SCOUT_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("SCOUT_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("SCOUT_SERVER_REQUEST_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.RequestTimeout = d
		}
	}
	if val := os.Getenv("SCOUT_SERVER_CORS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Server.CORS.Enabled = b
		}
	}
	if val := os.Getenv("SCOUT_SERVER_CORS_ALLOWED_ORIGINS"); val != "" {
		cfg.Server.CORS.AllowedOrigins = splitList(val)
	}

	// Export
	if val := os.Getenv("SCOUT_EXPORT_PRODUCT"); val != "" {
		cfg.Export.Product = val
	}
	if val := os.Getenv("SCOUT_EXPORT_PDF_BINARY"); val != "" {
		cfg.Export.PDFBinary = val
	}
	if val := os.Getenv("SCOUT_EXPORT_PDF_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Export.PDFTimeout = d
		}
	}
	if val := os.Getenv("SCOUT_EXPORT_SCHEDULE"); val != "" {
		cfg.Export.Schedule = val
	}
	if val := os.Getenv("SCOUT_EXPORT_OUTPUT_DIR"); val != "" {
		cfg.Export.OutputDir = val
	}
	if val := os.Getenv("SCOUT_EXPORT_SCHEDULE_FORMATS"); val != "" {
		cfg.Export.ScheduleFormats = splitList(val)
	}

	// Dataset
	if val := os.Getenv("SCOUT_DATASET_SEED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Dataset.Seed = b
		}
	}
	if val := os.Getenv("SCOUT_DATASET_PATH"); val != "" {
		cfg.Dataset.Path = val
	}
	if val := os.Getenv("SCOUT_DATASET_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Dataset.Watch = b
		}
	}

	// Telemetry
	if val := os.Getenv("SCOUT_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("SCOUT_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("SCOUT_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("SCOUT_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
