package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultConfigIsValid verifies a defaults-only configuration
// passes validation.
func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("listen address = %q", cfg.Server.ListenAddress)
	}
	if cfg.Export.Product != "Onebeat" {
		t.Errorf("product = %q", cfg.Export.Product)
	}
	if !cfg.Dataset.Seed {
		t.Error("seed should default to true")
	}
	if !cfg.Server.CORS.Enabled {
		t.Error("CORS should default to enabled")
	}
}

// TestLoadConfigFromFile verifies YAML values survive loading and
// unset fields pick up defaults.
func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scout.yaml")
	content := `
server:
  listen_address: "0.0.0.0:9090"
export:
  product: Acme
telemetry:
  logging:
    level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("listen address = %q", cfg.Server.ListenAddress)
	}
	if cfg.Export.Product != "Acme" {
		t.Errorf("product = %q", cfg.Export.Product)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Telemetry.Logging.Level)
	}
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("read timeout = %v, want default", cfg.Server.ReadTimeout)
	}
}

// TestEnvOverrides verifies SCOUT_ environment variables win over file
// values.
func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCOUT_SERVER_LISTEN_ADDRESS", "127.0.0.1:7777")
	t.Setenv("SCOUT_EXPORT_PRODUCT", "Envbeat")
	t.Setenv("SCOUT_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:7777" {
		t.Errorf("listen address = %q", cfg.Server.ListenAddress)
	}
	if cfg.Export.Product != "Envbeat" {
		t.Errorf("product = %q", cfg.Export.Product)
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("level = %q", cfg.Telemetry.Logging.Level)
	}
}

// TestValidateCollectsErrors verifies validation reports every problem,
// not just the first.
func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.ListenAddress = "not-an-address"
	cfg.Telemetry.Logging.Level = "verbose"
	cfg.Dataset.Watch = true
	cfg.Dataset.Path = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate succeeded, want errors")
	}

	msg := err.Error()
	for _, want := range []string{"server.listen_address", "telemetry.logging.level", "dataset.watch"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q: %s", want, msg)
		}
	}
}

// TestValidateScheduleRequiresOutputDir verifies a cron schedule
// without an output directory is rejected.
func TestValidateScheduleRequiresOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.Schedule = "not a cron expr"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate succeeded, want error")
	}
	if !strings.Contains(err.Error(), "export.schedule") {
		t.Errorf("error = %v", err)
	}

	cfg = DefaultConfig()
	cfg.Export.Schedule = "0 6 * * *"
	if err := Validate(cfg); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}
}
