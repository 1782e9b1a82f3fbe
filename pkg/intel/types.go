package intel

// CapabilityFlags is the closed set of capability flag names used in the
// Competitor.Capabilities map. Flags absent from a record's map are treated
// as false for display and export purposes.
var CapabilityFlags = []string{
	"analytics",
	"financialPlanning",
	"assortmentPlanning",
	"initialAllocations",
	"replenishment",
	"storeTransfers",
	"pricing",
	"markdownOptimization",
	"aiSpecialEvents",
	"proactiveInsights",
	"dynamicInventoryTargets",
}

// Competitor categories observed in practice. Category is an open string;
// these constants cover the canonical values.
const (
	CategoryDirect     = "direct"
	CategoryGlobal     = "global"
	CategoryEnterprise = "enterprise"
	CategoryAdjacent   = "adjacent"
	CategoryReference  = "reference"
)

// Competitor is a single battle-card record.
//
// Pointer fields and nil slices represent absent optional values and
// serialize as JSON null, matching the wire format clients expect. The
// Capabilities map is never nil on a stored record; the storage layer
// normalizes a nil map to an empty one at create/update time.
type Competitor struct {
	// ID is assigned by the repository at creation time and is stable for
	// the lifetime of the record.
	ID int `json:"id" yaml:"id,omitempty"`

	// Name, Category, Location, and Description are required.
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`

	// Similarity scores how closely the competitor overlaps with our
	// offering, intended range 1-10 (not enforced).
	Similarity int `json:"similarity" yaml:"similarity"`

	// Company facts. Employees must be non-negative when present.
	Employees *int    `json:"employees" yaml:"employees,omitempty"`
	Funding   *string `json:"funding" yaml:"funding,omitempty"`
	Revenue   *string `json:"revenue" yaml:"revenue,omitempty"`

	// Battle-card talking points. Insertion order is display order.
	Strengths         []string `json:"strengths" yaml:"strengths,omitempty"`
	Weaknesses        []string `json:"weaknesses" yaml:"weaknesses,omitempty"`
	KillPoints        []string `json:"killPoints" yaml:"killPoints,omitempty"`
	LandmineQuestions []string `json:"landmineQuestions" yaml:"landmineQuestions,omitempty"`
	UniqueFeatures    []string `json:"uniqueFeatures" yaml:"uniqueFeatures,omitempty"`

	// Capabilities maps flag names from CapabilityFlags to coverage.
	Capabilities map[string]bool `json:"capabilities" yaml:"capabilities,omitempty"`

	// Sales positioning facts.
	Pricing            *string `json:"pricing" yaml:"pricing,omitempty"`
	TargetMarket       *string `json:"targetMarket" yaml:"targetMarket,omitempty"`
	ImplementationTime *string `json:"implementationTime" yaml:"implementationTime,omitempty"`
}

// Capability is a catalog entry describing one comparable product
// capability. Category is a free string such as "pre-season", "in-season",
// or "analytics".
type Capability struct {
	ID          int     `json:"id" yaml:"id,omitempty"`
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description" yaml:"description,omitempty"`
	Category    string  `json:"category" yaml:"category"`
}

// MarketSegment groups competitors by how directly they compete.
// Competitors lists competitor names, not ids; the names should match
// existing Competitor.Name values but this is not enforced.
type MarketSegment struct {
	ID              int      `json:"id" yaml:"id,omitempty"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Competitors     []string `json:"competitors" yaml:"competitors,omitempty"`
	Characteristics []string `json:"characteristics" yaml:"characteristics,omitempty"`
}

// Clone returns a deep copy of the competitor. The storage layer hands out
// clones so callers can never mutate stored state.
func (c Competitor) Clone() Competitor {
	out := c
	out.Employees = cloneIntPtr(c.Employees)
	out.Funding = cloneStringPtr(c.Funding)
	out.Revenue = cloneStringPtr(c.Revenue)
	out.Pricing = cloneStringPtr(c.Pricing)
	out.TargetMarket = cloneStringPtr(c.TargetMarket)
	out.ImplementationTime = cloneStringPtr(c.ImplementationTime)
	out.Strengths = cloneStrings(c.Strengths)
	out.Weaknesses = cloneStrings(c.Weaknesses)
	out.KillPoints = cloneStrings(c.KillPoints)
	out.LandmineQuestions = cloneStrings(c.LandmineQuestions)
	out.UniqueFeatures = cloneStrings(c.UniqueFeatures)
	if c.Capabilities != nil {
		out.Capabilities = make(map[string]bool, len(c.Capabilities))
		for k, v := range c.Capabilities {
			out.Capabilities[k] = v
		}
	}
	return out
}

// Clone returns a deep copy of the capability.
func (c Capability) Clone() Capability {
	out := c
	out.Description = cloneStringPtr(c.Description)
	return out
}

// Clone returns a deep copy of the market segment.
func (s MarketSegment) Clone() MarketSegment {
	out := s
	out.Competitors = cloneStrings(s.Competitors)
	out.Characteristics = cloneStrings(s.Characteristics)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringPtr(in *string) *string {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneIntPtr(in *int) *int {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
