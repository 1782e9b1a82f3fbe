package projection

import "onebeat/scout/pkg/intel"

// Record is a projected competitor: field name to value for exactly the
// fields in the team's allowlist. Values are concrete (string, int,
// []string, map[string]bool) or untyped nil for absent optionals, so
// the record JSON-encodes with nulls and renders directly in templates.
type Record map[string]any

// Project reduces a competitor to the field set allowed for team. The
// input record is not mutated; list and map values are copied.
func Project(c intel.Competitor, team Team) Record {
	schema := SchemaFor(team)

	rec := make(Record, len(schema.Fields))
	for _, field := range schema.Fields {
		rec[field] = fieldValue(c, field)
	}
	return rec
}

// ProjectAll projects every competitor in the slice, preserving order.
func ProjectAll(competitors []intel.Competitor, team Team) []Record {
	out := make([]Record, 0, len(competitors))
	for _, c := range competitors {
		out = append(out, Project(c, team))
	}
	return out
}

func fieldValue(c intel.Competitor, field string) any {
	switch field {
	case FieldName:
		return c.Name
	case FieldCategory:
		return c.Category
	case FieldLocation:
		return c.Location
	case FieldDescription:
		return c.Description
	case FieldSimilarity:
		return c.Similarity
	case FieldEmployees:
		return intValue(c.Employees)
	case FieldFunding:
		return stringValue(c.Funding)
	case FieldRevenue:
		return stringValue(c.Revenue)
	case FieldPricing:
		return stringValue(c.Pricing)
	case FieldTargetMarket:
		return stringValue(c.TargetMarket)
	case FieldImplementationTime:
		return stringValue(c.ImplementationTime)
	case FieldStrengths:
		return listValue(c.Strengths)
	case FieldWeaknesses:
		return listValue(c.Weaknesses)
	case FieldKillPoints:
		return listValue(c.KillPoints)
	case FieldLandmineQuestions:
		return listValue(c.LandmineQuestions)
	case FieldUniqueFeatures:
		return listValue(c.UniqueFeatures)
	case FieldCapabilities:
		return capsValue(c.Capabilities)
	}
	return nil
}

func intValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func stringValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func listValue(in []string) any {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func capsValue(in map[string]bool) any {
	if in == nil {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
