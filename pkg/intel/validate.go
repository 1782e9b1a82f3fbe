package intel

import "fmt"

// ValidationError describes a rejected field on a create or update request.
type ValidationError struct {
	// Field is the JSON name of the offending field.
	Field string

	// Message is a human-readable description of the problem.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidateCompetitor checks the required fields of a competitor record
// supplied by a client. It returns a *ValidationError describing the first
// problem found, or nil if the record is acceptable.
//
// Similarity's intended 1-10 range is deliberately not enforced; only
// presence is checked via the required-field rule on the struct (the zero
// value is rejected).
func ValidateCompetitor(c Competitor) error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if c.Category == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	if c.Location == "" {
		return &ValidationError{Field: "location", Message: "is required"}
	}
	if c.Description == "" {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	if c.Similarity == 0 {
		return &ValidationError{Field: "similarity", Message: "is required"}
	}
	if c.Employees != nil && *c.Employees < 0 {
		return &ValidationError{Field: "employees", Message: "must be non-negative"}
	}
	return nil
}

// ValidateCapability checks the required fields of a capability catalog
// entry.
func ValidateCapability(c Capability) error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if c.Category == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	return nil
}

// ValidateMarketSegment checks the required fields of a market segment.
func ValidateMarketSegment(s MarketSegment) error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if s.Description == "" {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	return nil
}
