package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/robfig/cron/v3"

	"onebeat/scout/pkg/intel/export"
)

// FieldError is a validation error on one configuration field.
type FieldError struct {
	// Field is the dotted path to the field, e.g. "server.listen_address".
	Field string

	// Message is a human-readable error message.
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every validation failure in a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

// Validate checks the configuration and returns a ValidationError
// listing every problem, or nil when the configuration is valid.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateExport(&cfg.Export)...)
	errs = append(errs, validateDataset(&cfg.Dataset)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateServer(s *ServerConfig) []FieldError {
	var errs []FieldError

	if s.ListenAddress == "" {
		errs = append(errs, FieldError{"server.listen_address", "must not be empty"})
	} else if _, _, err := net.SplitHostPort(s.ListenAddress); err != nil {
		errs = append(errs, FieldError{"server.listen_address", fmt.Sprintf("invalid host:port: %v", err)})
	}

	if s.ReadTimeout < 0 {
		errs = append(errs, FieldError{"server.read_timeout", "must not be negative"})
	}
	if s.WriteTimeout < 0 {
		errs = append(errs, FieldError{"server.write_timeout", "must not be negative"})
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, FieldError{"server.shutdown_timeout", "must be positive"})
	}

	return errs
}

func validateExport(e *ExportConfig) []FieldError {
	var errs []FieldError

	if e.Product == "" {
		errs = append(errs, FieldError{"export.product", "must not be empty"})
	}
	if e.PDFTimeout <= 0 {
		errs = append(errs, FieldError{"export.pdf_timeout", "must be positive"})
	}

	if e.Schedule != "" {
		if _, err := cron.ParseStandard(e.Schedule); err != nil {
			errs = append(errs, FieldError{"export.schedule", fmt.Sprintf("invalid cron expression: %v", err)})
		}
		if e.OutputDir == "" {
			errs = append(errs, FieldError{"export.output_dir", "required when export.schedule is set"})
		}
	}

	for _, f := range e.ScheduleFormats {
		if _, err := export.ParseFormat(f); err != nil {
			errs = append(errs, FieldError{"export.schedule_formats", err.Error()})
		}
	}

	return errs
}

func validateDataset(d *DatasetConfig) []FieldError {
	var errs []FieldError

	if d.Watch && d.Path == "" {
		errs = append(errs, FieldError{"dataset.watch", "requires dataset.path"})
	}

	return errs
}

func validateTelemetry(t *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch t.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{"telemetry.logging.level", fmt.Sprintf("unknown level %q (use debug, info, warn, or error)", t.Logging.Level)})
	}

	switch t.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{"telemetry.logging.format", fmt.Sprintf("unknown format %q (use json or text)", t.Logging.Format)})
	}

	if t.Metrics.Enabled && !strings.HasPrefix(t.Metrics.Path, "/") {
		errs = append(errs, FieldError{"telemetry.metrics.path", "must start with /"})
	}

	return errs
}
