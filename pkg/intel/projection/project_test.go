package projection

import (
	"testing"

	"onebeat/scout/pkg/intel"
)

func sampleCompetitor() intel.Competitor {
	employees := 61
	funding := "$10.3M Series A"
	pricing := "premium SaaS"
	return intel.Competitor{
		ID:                1,
		Name:              "Toolio",
		Category:          "direct",
		Location:          "Brooklyn, New York, USA",
		Description:       "Cloud-based merchandising platform.",
		Similarity:        8,
		Employees:         &employees,
		Funding:           &funding,
		Pricing:           &pricing,
		Strengths:         []string{"Modern UX", "Easy Excel replacement"},
		Weaknesses:        []string{"Forecast-centric"},
		KillPoints:        []string{"Stops at plan"},
		LandmineQuestions: []string{"Largest rollout to date?"},
		UniqueFeatures:    []string{"Visual line boards"},
		Capabilities:      map[string]bool{"analytics": true, "pricing": false},
	}
}

// TestProjectSalesAllowlist verifies the sales projection contains
// exactly the sales field set, no more, no less.
func TestProjectSalesAllowlist(t *testing.T) {
	rec := Project(sampleCompetitor(), TeamSales)

	want := SchemaFor(TeamSales).Fields
	if len(rec) != len(want) {
		t.Errorf("sales projection has %d fields, want %d", len(rec), len(want))
	}
	for _, field := range want {
		if _, ok := rec[field]; !ok {
			t.Errorf("sales projection missing field %q", field)
		}
	}
	for field := range rec {
		found := false
		for _, f := range want {
			if f == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("sales projection has unexpected field %q", field)
		}
	}
}

// TestProjectExcludesID verifies projections never carry the internal
// record id into exports.
func TestProjectExcludesID(t *testing.T) {
	for _, team := range []Team{TeamSales, TeamProduct, TeamGTM, TeamFull} {
		rec := Project(sampleCompetitor(), team)
		if _, ok := rec["id"]; ok {
			t.Errorf("team %q projection leaked id field", team)
		}
	}
}

// TestProjectFullOmitsCapabilities pins the inherited asymmetry: the
// complete-database projection drops capabilities and landmine
// questions that every per-team projection includes. If this fails,
// someone changed the full-export field set; that is a product
// decision, not a bug fix.
func TestProjectFullOmitsCapabilities(t *testing.T) {
	rec := Project(sampleCompetitor(), TeamFull)

	if _, ok := rec[FieldCapabilities]; ok {
		t.Error("full projection unexpectedly includes capabilities")
	}
	if _, ok := rec[FieldLandmineQuestions]; ok {
		t.Error("full projection unexpectedly includes landmineQuestions")
	}
	if _, ok := rec[FieldStrengths]; !ok {
		t.Error("full projection missing strengths")
	}
}

// TestProjectAbsentOptionals verifies absent optional fields project to
// nil (so they serialize as JSON null) and a nil capabilities map
// projects to an empty map.
func TestProjectAbsentOptionals(t *testing.T) {
	c := intel.Competitor{
		Name:        "Acme",
		Category:    "direct",
		Location:    "NY",
		Description: "d",
		Similarity:  7,
	}
	rec := Project(c, TeamSales)

	if rec[FieldEmployees] != nil {
		t.Errorf("employees = %v, want nil", rec[FieldEmployees])
	}
	if rec[FieldStrengths] != nil {
		t.Errorf("strengths = %v, want nil", rec[FieldStrengths])
	}
	caps, ok := rec[FieldCapabilities].(map[string]bool)
	if !ok {
		t.Fatalf("capabilities = %T, want map[string]bool", rec[FieldCapabilities])
	}
	if len(caps) != 0 {
		t.Errorf("capabilities has %d entries, want 0", len(caps))
	}
}

// TestProjectDoesNotMutateInput verifies projection copies list and map
// values rather than aliasing the input record.
func TestProjectDoesNotMutateInput(t *testing.T) {
	c := sampleCompetitor()
	rec := Project(c, TeamSales)

	rec[FieldStrengths].([]string)[0] = "mutated"
	rec[FieldCapabilities].(map[string]bool)["analytics"] = false

	if c.Strengths[0] != "Modern UX" {
		t.Errorf("input strengths mutated: %q", c.Strengths[0])
	}
	if !c.Capabilities["analytics"] {
		t.Error("input capabilities mutated")
	}
}

// TestSchemaForUnknownTeam verifies unrecognized team tags fall back to
// the complete-database schema.
func TestSchemaForUnknownTeam(t *testing.T) {
	s := SchemaFor(Team("finance"))
	if s.Team != TeamFull {
		t.Errorf("unknown team resolved to %q, want full schema", s.Team)
	}
	if Known(Team("finance")) {
		t.Error("Known(finance) = true, want false")
	}
}

// TestCSVColumnsAreSubsetOfFields verifies every CSV column of every
// schema maps to a projected field, so the CSV encoder never reads a
// field projection stripped out.
func TestCSVColumnsAreSubsetOfFields(t *testing.T) {
	for team, schema := range map[Team]Schema{
		TeamSales:   SchemaFor(TeamSales),
		TeamProduct: SchemaFor(TeamProduct),
		TeamGTM:     SchemaFor(TeamGTM),
		TeamFull:    SchemaFor(TeamFull),
	} {
		fields := make(map[string]bool, len(schema.Fields))
		for _, f := range schema.Fields {
			fields[f] = true
		}
		for _, col := range schema.CSVColumns {
			if !fields[col.Field] {
				t.Errorf("team %q: CSV column %q reads field %q not in projection", team, col.Header, col.Field)
			}
		}
	}
}
