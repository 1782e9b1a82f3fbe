package intel

import (
	"errors"
	"testing"
)

func validCompetitor() Competitor {
	return Competitor{
		Name:        "Acme",
		Category:    "direct",
		Location:    "NY",
		Description: "d",
		Similarity:  7,
	}
}

func TestValidateCompetitor(t *testing.T) {
	if err := ValidateCompetitor(validCompetitor()); err != nil {
		t.Errorf("valid competitor rejected: %v", err)
	}
}

func TestValidateCompetitorRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*Competitor)
	}{
		{"name", func(c *Competitor) { c.Name = "" }},
		{"category", func(c *Competitor) { c.Category = "" }},
		{"location", func(c *Competitor) { c.Location = "" }},
		{"description", func(c *Competitor) { c.Description = "" }},
		{"similarity", func(c *Competitor) { c.Similarity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			c := validCompetitor()
			tc.mutate(&c)

			err := ValidateCompetitor(c)
			if err == nil {
				t.Fatal("expected an error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type %T, want *ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestValidateCompetitorNegativeEmployees(t *testing.T) {
	c := validCompetitor()
	n := -5
	c.Employees = &n

	err := ValidateCompetitor(c)
	if err == nil {
		t.Fatal("expected an error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "employees" {
		t.Errorf("got %v", err)
	}
}

func TestValidateCapability(t *testing.T) {
	if err := ValidateCapability(Capability{Name: "Analytics", Category: "reporting"}); err != nil {
		t.Errorf("valid capability rejected: %v", err)
	}
	if err := ValidateCapability(Capability{Category: "reporting"}); err == nil {
		t.Error("missing name should be rejected")
	}
	if err := ValidateCapability(Capability{Name: "Analytics"}); err == nil {
		t.Error("missing category should be rejected")
	}
}

func TestValidateMarketSegment(t *testing.T) {
	if err := ValidateMarketSegment(MarketSegment{Name: "Enterprise", Description: "d"}); err != nil {
		t.Errorf("valid segment rejected: %v", err)
	}
	if err := ValidateMarketSegment(MarketSegment{Description: "d"}); err == nil {
		t.Error("missing name should be rejected")
	}
	if err := ValidateMarketSegment(MarketSegment{Name: "Enterprise"}); err == nil {
		t.Error("missing description should be rejected")
	}
}
