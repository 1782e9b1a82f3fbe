package export

import (
	"context"
	"encoding/json"
	"testing"

	"onebeat/scout/pkg/intel"
	"onebeat/scout/pkg/intel/projection"
)

// TestJSONEnvelope verifies the team-less JSON export carries all three
// collections, the export timestamp, and accurate counts.
func TestJSONEnvelope(t *testing.T) {
	desc := "Reporting and business intelligence"
	capabilities := []intel.Capability{
		{ID: 1, Name: "Analytics", Description: &desc, Category: "analytics"},
	}
	segments := []intel.MarketSegment{
		{ID: 1, Name: "Direct Competitors", Description: "Similar products", Competitors: []string{"Acme"}},
	}

	e := testExporter()
	result, err := e.Export(context.Background(), FormatJSON, projection.TeamFull, []intel.Competitor{acme()}, capabilities, segments)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(result.Data, &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if env.TotalRecords.Competitors != 1 {
		t.Errorf("totalRecords.competitors = %d, want 1", env.TotalRecords.Competitors)
	}
	if env.TotalRecords.Capabilities != 1 || env.TotalRecords.MarketSegments != 1 {
		t.Errorf("catalog counts = %d/%d, want 1/1", env.TotalRecords.Capabilities, env.TotalRecords.MarketSegments)
	}
	if len(env.Capabilities) != 1 || len(env.MarketSegments) != 1 {
		t.Error("team-less export missing catalog collections")
	}
	if env.Team != "complete" {
		t.Errorf("team = %q, want complete", env.Team)
	}
	if env.ExportedAt != "2025-06-01T12:00:00Z" {
		t.Errorf("exportedAt = %q", env.ExportedAt)
	}
	if result.Filename != "onebeat-competitive-database.json" {
		t.Errorf("filename = %q", result.Filename)
	}
}

// TestJSONTeamExportOmitsCatalogs verifies team-scoped exports drop the
// catalog collections and zero their counts even when the store holds
// records.
func TestJSONTeamExportOmitsCatalogs(t *testing.T) {
	capabilities := []intel.Capability{{ID: 1, Name: "Analytics", Category: "analytics"}}
	segments := []intel.MarketSegment{{ID: 1, Name: "Direct Competitors", Description: "d"}}

	e := testExporter()
	result, err := e.Export(context.Background(), FormatJSON, projection.TeamSales, []intel.Competitor{acme()}, capabilities, segments)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(result.Data, &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if env.Capabilities != nil || env.MarketSegments != nil {
		t.Error("team export leaked catalog collections")
	}
	if env.TotalRecords.Capabilities != 0 || env.TotalRecords.MarketSegments != 0 {
		t.Errorf("catalog counts = %d/%d, want 0/0", env.TotalRecords.Capabilities, env.TotalRecords.MarketSegments)
	}
	if env.Team != "sales" {
		t.Errorf("team = %q, want sales", env.Team)
	}
	if result.Filename != "onebeat-sales-package.json" {
		t.Errorf("filename = %q", result.Filename)
	}
}

// TestJSONNullOptionals verifies absent optional fields serialize as
// JSON null and an empty capabilities map as {}.
func TestJSONNullOptionals(t *testing.T) {
	e := testExporter()
	result, err := e.Export(context.Background(), FormatJSON, projection.TeamSales, []intel.Competitor{acme()}, nil, nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var env struct {
		Competitors []map[string]json.RawMessage `json:"competitors"`
	}
	if err := json.Unmarshal(result.Data, &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(env.Competitors) != 1 {
		t.Fatalf("got %d competitors, want 1", len(env.Competitors))
	}

	rec := env.Competitors[0]
	if string(rec["employees"]) != "null" {
		t.Errorf("employees = %s, want null", rec["employees"])
	}
	if string(rec["capabilities"]) != "{}" {
		t.Errorf("capabilities = %s, want {}", rec["capabilities"])
	}
	if _, ok := rec["id"]; ok {
		t.Error("export leaked id field")
	}
}
