package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestNewJSONLogger verifies JSON log records carry structured fields.
func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("export complete", "format", "csv", "records", 11)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "export complete" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["format"] != "csv" {
		t.Errorf("format attr = %v", record["format"])
	}
}

// TestLevelFiltering verifies records below the configured level are
// dropped.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info record leaked through warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn record missing")
	}
}

// TestInvalidLevel verifies unknown levels and formats are rejected.
func TestInvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "verbose"}); err == nil {
		t.Error("New accepted invalid level")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("New accepted invalid format")
	}
}
