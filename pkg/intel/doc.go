/*
Package intel defines the core competitive-intelligence domain model.

The model has three entity types:

  - Competitor: a battle-card record for a single competitor, including
    positioning scores, free-text talking points, and a capability flag map.
  - Capability: a catalog entry describing one of the product capabilities
    competitors are compared against.
  - MarketSegment: a named grouping of competitors with shared
    characteristics. Segment membership references competitors by name,
    not by id.

Competitor records carry a denormalized capability map keyed by the fixed
flag names in CapabilityFlags. The Capability catalog describes the same
flags for display purposes; there is no foreign-key relationship between
the two.

Entity ids are assigned by the storage layer and are immutable for the
lifetime of a record. All other fields are supplied by the caller and
validated with ValidateCompetitor before storage.
*/
package intel
