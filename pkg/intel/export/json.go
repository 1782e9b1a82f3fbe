package export

import (
	"encoding/json"
	"fmt"
	"time"

	"onebeat/scout/pkg/intel"
	"onebeat/scout/pkg/intel/projection"
)

// Envelope is the JSON export payload. Catalog collections are present
// only on team-less exports; their counts report zero on team exports
// even though the store has records.
type Envelope struct {
	Competitors    []projection.Record   `json:"competitors"`
	Capabilities   []intel.Capability    `json:"capabilities,omitempty"`
	MarketSegments []intel.MarketSegment `json:"marketSegments,omitempty"`
	ExportedAt     string                `json:"exportedAt"`
	TotalRecords   Totals                `json:"totalRecords"`
	Format         string                `json:"format"`
	Team           string                `json:"team"`
}

// Totals carries per-collection record counts for the export.
type Totals struct {
	Competitors    int `json:"competitors"`
	Capabilities   int `json:"capabilities"`
	MarketSegments int `json:"marketSegments"`
}

func (e *Exporter) encodeJSON(
	records []projection.Record,
	team projection.Team,
	capabilities []intel.Capability,
	segments []intel.MarketSegment,
) (*Result, error) {
	env := Envelope{
		Competitors: records,
		ExportedAt:  e.Now().UTC().Format(time.RFC3339),
		TotalRecords: Totals{
			Competitors: len(records),
		},
		Format: string(FormatJSON),
		Team:   teamLabel(team),
	}

	if team == projection.TeamFull {
		env.Capabilities = capabilities
		env.MarketSegments = segments
		env.TotalRecords.Capabilities = len(capabilities)
		env.TotalRecords.MarketSegments = len(segments)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling export envelope: %w", err)
	}

	return &Result{
		Data:        data,
		ContentType: "application/json",
		Filename:    e.filename(team, "json"),
	}, nil
}

// teamLabel is the team tag as it appears in the JSON envelope; the
// team-less export reports "complete".
func teamLabel(team projection.Team) string {
	if team == projection.TeamFull {
		return "complete"
	}
	return string(team)
}
