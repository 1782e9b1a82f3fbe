package projection

// Team identifies the audience an export is scoped to. The empty Team
// means no scoping: the complete-database field set.
type Team string

const (
	TeamSales   Team = "sales"
	TeamProduct Team = "product"
	TeamGTM     Team = "gtm"
	TeamFull    Team = ""
)

// Field names, matching the JSON names on the competitor record.
const (
	FieldName               = "name"
	FieldCategory           = "category"
	FieldLocation           = "location"
	FieldDescription        = "description"
	FieldSimilarity         = "similarity"
	FieldEmployees          = "employees"
	FieldFunding            = "funding"
	FieldRevenue            = "revenue"
	FieldStrengths          = "strengths"
	FieldWeaknesses         = "weaknesses"
	FieldKillPoints         = "killPoints"
	FieldLandmineQuestions  = "landmineQuestions"
	FieldUniqueFeatures     = "uniqueFeatures"
	FieldCapabilities       = "capabilities"
	FieldPricing            = "pricing"
	FieldTargetMarket       = "targetMarket"
	FieldImplementationTime = "implementationTime"
)

// Column binds a CSV header to the projected field it renders.
type Column struct {
	Header string
	Field  string
}

// Schema is the single declarative description of what one team's
// exports contain. Projection, the CSV encoder, and the report renderer
// all consume it, so a field can't drift into one format and out of
// another.
type Schema struct {
	Team Team

	// Fields is the projection allowlist in canonical order. Encoders
	// iterate this slice, never the projected map.
	Fields []string

	// CSVColumns is the exact CSV column set and order. It is a subset
	// of Fields; the CSV format predates some per-team additions and
	// keeps its narrower historical layout.
	CSVColumns []Column
}

// baseFields are included in every projection regardless of team.
var baseFields = []string{
	FieldName,
	FieldCategory,
	FieldLocation,
	FieldDescription,
	FieldSimilarity,
	FieldEmployees,
	FieldFunding,
	FieldRevenue,
}

var schemas = map[Team]Schema{
	TeamSales: {
		Team: TeamSales,
		Fields: withBase(
			FieldStrengths,
			FieldWeaknesses,
			FieldKillPoints,
			FieldLandmineQuestions,
			FieldPricing,
			FieldTargetMarket,
			FieldImplementationTime,
			FieldCapabilities,
			FieldUniqueFeatures,
		),
		CSVColumns: []Column{
			{"Name", FieldName},
			{"Category", FieldCategory},
			{"Location", FieldLocation},
			{"Description", FieldDescription},
			{"Similarity", FieldSimilarity},
			{"Employees", FieldEmployees},
			{"Funding", FieldFunding},
			{"Revenue", FieldRevenue},
			{"Strengths", FieldStrengths},
			{"Weaknesses", FieldWeaknesses},
			{"Kill Points", FieldKillPoints},
			{"Pricing", FieldPricing},
			{"Target Market", FieldTargetMarket},
			{"Implementation Time", FieldImplementationTime},
		},
	},
	TeamProduct: {
		Team: TeamProduct,
		Fields: withBase(
			FieldCapabilities,
			FieldUniqueFeatures,
			FieldStrengths,
			FieldWeaknesses,
			FieldPricing,
			FieldImplementationTime,
			FieldKillPoints,
			FieldLandmineQuestions,
			FieldTargetMarket,
		),
		CSVColumns: []Column{
			{"Name", FieldName},
			{"Category", FieldCategory},
			{"Location", FieldLocation},
			{"Description", FieldDescription},
			{"Similarity", FieldSimilarity},
			{"Employees", FieldEmployees},
			{"Funding", FieldFunding},
			{"Revenue", FieldRevenue},
			{"Capabilities", FieldCapabilities},
			{"Unique Features", FieldUniqueFeatures},
			{"Strengths", FieldStrengths},
			{"Weaknesses", FieldWeaknesses},
			{"Pricing", FieldPricing},
			{"Implementation Time", FieldImplementationTime},
		},
	},
	TeamGTM: {
		Team: TeamGTM,
		Fields: withBase(
			FieldTargetMarket,
			FieldPricing,
			FieldImplementationTime,
			FieldUniqueFeatures,
			FieldStrengths,
			FieldKillPoints,
			FieldWeaknesses,
			FieldLandmineQuestions,
			FieldCapabilities,
		),
		CSVColumns: []Column{
			{"Name", FieldName},
			{"Category", FieldCategory},
			{"Location", FieldLocation},
			{"Description", FieldDescription},
			{"Similarity", FieldSimilarity},
			{"Target Market", FieldTargetMarket},
			{"Pricing", FieldPricing},
			{"Implementation Time", FieldImplementationTime},
			{"Unique Features", FieldUniqueFeatures},
			{"Strengths", FieldStrengths},
			{"Kill Points", FieldKillPoints},
		},
	},
	// The complete-database projection omits capabilities and landmine
	// questions even though every per-team export includes them. That
	// asymmetry is inherited behavior and kept on purpose; consumers of
	// the full export read those from the catalog collections instead.
	TeamFull: {
		Team: TeamFull,
		Fields: withBase(
			FieldStrengths,
			FieldWeaknesses,
			FieldKillPoints,
			FieldUniqueFeatures,
		),
		CSVColumns: []Column{
			{"Name", FieldName},
			{"Category", FieldCategory},
			{"Location", FieldLocation},
			{"Description", FieldDescription},
			{"Similarity", FieldSimilarity},
			{"Employees", FieldEmployees},
			{"Funding", FieldFunding},
			{"Revenue", FieldRevenue},
			{"Strengths", FieldStrengths},
			{"Weaknesses", FieldWeaknesses},
			{"Kill Points", FieldKillPoints},
			{"Unique Features", FieldUniqueFeatures},
		},
	},
}

// SchemaFor returns the schema for a team. An unrecognized team falls
// back to the complete-database schema, matching how the export surface
// has always treated unknown team values.
func SchemaFor(team Team) Schema {
	if s, ok := schemas[team]; ok {
		return s
	}
	return schemas[TeamFull]
}

// Known reports whether team is one of the recognized team tags (or the
// empty full-database tag).
func Known(team Team) bool {
	_, ok := schemas[team]
	return ok
}

func withBase(fields ...string) []string {
	out := make([]string, 0, len(baseFields)+len(fields))
	out = append(out, baseFields...)
	out = append(out, fields...)
	return out
}
