package storage

import (
	"sync"

	"onebeat/scout/pkg/intel"
)

// Store is the in-memory repository for all three entity collections.
// It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	competitors    map[int]intel.Competitor
	capabilities   map[int]intel.Capability
	marketSegments map[int]intel.MarketSegment

	// Creation order per collection. Ids are monotonic so this stays
	// sorted, but keeping the slice explicit makes deletion cheap to
	// reason about.
	competitorOrder []int
	capabilityOrder []int
	segmentOrder    []int

	nextCompetitorID int
	nextCapabilityID int
	nextSegmentID    int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		competitors:      make(map[int]intel.Competitor),
		capabilities:     make(map[int]intel.Capability),
		marketSegments:   make(map[int]intel.MarketSegment),
		nextCompetitorID: 1,
		nextCapabilityID: 1,
		nextSegmentID:    1,
	}
}

// ListCompetitors returns all competitors in creation order.
func (s *Store) ListCompetitors() []intel.Competitor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intel.Competitor, 0, len(s.competitorOrder))
	for _, id := range s.competitorOrder {
		out = append(out, s.competitors[id].Clone())
	}
	return out
}

// GetCompetitor returns the competitor with the given id, or false if no
// such record exists.
func (s *Store) GetCompetitor(id int) (intel.Competitor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.competitors[id]
	if !ok {
		return intel.Competitor{}, false
	}
	return c.Clone(), true
}

// ListCompetitorsByCategory returns competitors whose category matches
// exactly (case-sensitive), in creation order.
func (s *Store) ListCompetitorsByCategory(category string) []intel.Competitor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intel.Competitor, 0)
	for _, id := range s.competitorOrder {
		if c := s.competitors[id]; c.Category == category {
			out = append(out, c.Clone())
		}
	}
	return out
}

// CreateCompetitor stores a new competitor, assigns the next id, and
// returns the stored copy. A nil capabilities map is normalized to an
// empty map; absent optional fields stay null.
func (s *Store) CreateCompetitor(c intel.Competitor) intel.Competitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	c = normalizeCompetitor(c)
	c.ID = s.nextCompetitorID
	s.nextCompetitorID++

	s.competitors[c.ID] = c
	s.competitorOrder = append(s.competitorOrder, c.ID)
	return c.Clone()
}

// UpdateCompetitor replaces the record with the given id entirely. It
// returns false and leaves the store untouched when the id is unknown.
// Partial patches are not supported; callers supply the full field set.
func (s *Store) UpdateCompetitor(id int, c intel.Competitor) (intel.Competitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.competitors[id]; !ok {
		return intel.Competitor{}, false
	}

	c = normalizeCompetitor(c)
	c.ID = id
	s.competitors[id] = c
	return c.Clone(), true
}

// DeleteCompetitor removes the record with the given id. It returns true
// if a record existed and was removed, false otherwise. The id is not
// reused for later creations.
func (s *Store) DeleteCompetitor(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.competitors[id]; !ok {
		return false
	}
	delete(s.competitors, id)
	s.competitorOrder = removeID(s.competitorOrder, id)
	return true
}

// ListCapabilities returns the capability catalog in creation order.
func (s *Store) ListCapabilities() []intel.Capability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intel.Capability, 0, len(s.capabilityOrder))
	for _, id := range s.capabilityOrder {
		out = append(out, s.capabilities[id].Clone())
	}
	return out
}

// CreateCapability stores a new capability catalog entry and returns the
// stored copy.
func (s *Store) CreateCapability(c intel.Capability) intel.Capability {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCapabilityID
	s.nextCapabilityID++

	s.capabilities[c.ID] = c.Clone()
	s.capabilityOrder = append(s.capabilityOrder, c.ID)
	return c.Clone()
}

// ListMarketSegments returns the market segments in creation order.
func (s *Store) ListMarketSegments() []intel.MarketSegment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intel.MarketSegment, 0, len(s.segmentOrder))
	for _, id := range s.segmentOrder {
		out = append(out, s.marketSegments[id].Clone())
	}
	return out
}

// CreateMarketSegment stores a new market segment and returns the stored
// copy.
func (s *Store) CreateMarketSegment(seg intel.MarketSegment) intel.MarketSegment {
	s.mu.Lock()
	defer s.mu.Unlock()

	seg.ID = s.nextSegmentID
	s.nextSegmentID++

	s.marketSegments[seg.ID] = seg.Clone()
	s.segmentOrder = append(s.segmentOrder, seg.ID)
	return seg.Clone()
}

// Counts returns the number of records in each collection.
func (s *Store) Counts() (competitors, capabilities, segments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.competitors), len(s.capabilities), len(s.marketSegments)
}

// Replace atomically swaps the entire store contents for the given
// dataset, re-assigning ids from 1 in dataset order. It is used by the
// seed loader and the dataset watcher.
func (s *Store) Replace(ds *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.competitors = make(map[int]intel.Competitor, len(ds.Competitors))
	s.capabilities = make(map[int]intel.Capability, len(ds.Capabilities))
	s.marketSegments = make(map[int]intel.MarketSegment, len(ds.MarketSegments))
	s.competitorOrder = nil
	s.capabilityOrder = nil
	s.segmentOrder = nil
	s.nextCompetitorID = 1
	s.nextCapabilityID = 1
	s.nextSegmentID = 1

	for _, c := range ds.Competitors {
		c = normalizeCompetitor(c.Clone())
		c.ID = s.nextCompetitorID
		s.nextCompetitorID++
		s.competitors[c.ID] = c
		s.competitorOrder = append(s.competitorOrder, c.ID)
	}
	for _, c := range ds.Capabilities {
		c = c.Clone()
		c.ID = s.nextCapabilityID
		s.nextCapabilityID++
		s.capabilities[c.ID] = c
		s.capabilityOrder = append(s.capabilityOrder, c.ID)
	}
	for _, seg := range ds.MarketSegments {
		seg = seg.Clone()
		seg.ID = s.nextSegmentID
		s.nextSegmentID++
		s.marketSegments[seg.ID] = seg
		s.segmentOrder = append(s.segmentOrder, seg.ID)
	}
}

// normalizeCompetitor fills the defaults the store guarantees on every
// stored record: the capabilities map is never nil. Nil list fields stay
// nil so they serialize as null, matching the create contract.
func normalizeCompetitor(c intel.Competitor) intel.Competitor {
	if c.Capabilities == nil {
		c.Capabilities = make(map[string]bool)
	}
	return c
}

func removeID(order []int, id int) []int {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
