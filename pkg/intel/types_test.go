package intel

import "testing"

func TestCompetitorCloneIsDeep(t *testing.T) {
	funding := "$10M"
	c := Competitor{
		Name:         "Acme",
		Funding:      &funding,
		Strengths:    []string{"fast"},
		Capabilities: map[string]bool{"analytics": true},
	}

	clone := c.Clone()
	clone.Strengths[0] = "mutated"
	clone.Capabilities["analytics"] = false
	*clone.Funding = "$0"

	if c.Strengths[0] != "fast" {
		t.Error("slice mutation leaked into the original")
	}
	if !c.Capabilities["analytics"] {
		t.Error("map mutation leaked into the original")
	}
	if *c.Funding != "$10M" {
		t.Error("pointer mutation leaked into the original")
	}
}

func TestCompetitorClonePreservesNils(t *testing.T) {
	clone := Competitor{Name: "Acme"}.Clone()

	if clone.Employees != nil || clone.Strengths != nil || clone.Capabilities != nil {
		t.Errorf("absent fields should stay nil: %+v", clone)
	}
}

func TestMarketSegmentCloneIsDeep(t *testing.T) {
	seg := MarketSegment{Name: "Enterprise", Competitors: []string{"Acme"}}

	clone := seg.Clone()
	clone.Competitors[0] = "mutated"

	if seg.Competitors[0] != "Acme" {
		t.Error("slice mutation leaked into the original")
	}
}
