package storage

import (
	"testing"

	"onebeat/scout/pkg/intel"
)

func testCompetitor(name, category string) intel.Competitor {
	return intel.Competitor{
		Name:        name,
		Category:    category,
		Location:    "NY",
		Description: "d",
		Similarity:  5,
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	first := s.CreateCompetitor(testCompetitor("Acme", "direct"))
	second := s.CreateCompetitor(testCompetitor("Globex", "indirect"))

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}
}

func TestCreateNormalizesCapabilities(t *testing.T) {
	s := NewStore()

	created := s.CreateCompetitor(testCompetitor("Acme", "direct"))
	if created.Capabilities == nil {
		t.Error("capabilities should be an empty map, not nil")
	}
	if created.Strengths != nil {
		t.Error("absent strengths should stay nil")
	}
}

func TestGetRoundTrip(t *testing.T) {
	s := NewStore()
	created := s.CreateCompetitor(testCompetitor("Acme", "direct"))

	got, ok := s.GetCompetitor(created.ID)
	if !ok {
		t.Fatal("competitor not found")
	}
	if got.Name != "Acme" || got.ID != created.ID {
		t.Errorf("got %+v", got)
	}

	if _, ok := s.GetCompetitor(99); ok {
		t.Error("unknown id should not be found")
	}
}

func TestListPreservesCreationOrder(t *testing.T) {
	s := NewStore()
	s.CreateCompetitor(testCompetitor("Zeta", "direct"))
	s.CreateCompetitor(testCompetitor("Alpha", "direct"))

	list := s.ListCompetitors()
	if len(list) != 2 || list[0].Name != "Zeta" || list[1].Name != "Alpha" {
		t.Errorf("list = %+v", list)
	}
}

func TestListByCategoryIsExactMatch(t *testing.T) {
	s := NewStore()
	s.CreateCompetitor(testCompetitor("Acme", "direct"))
	s.CreateCompetitor(testCompetitor("Globex", "indirect"))
	s.CreateCompetitor(testCompetitor("Initech", "Direct"))

	direct := s.ListCompetitorsByCategory("direct")
	if len(direct) != 1 || direct[0].Name != "Acme" {
		t.Errorf("direct = %+v", direct)
	}

	if unknown := s.ListCompetitorsByCategory("nope"); len(unknown) != 0 {
		t.Errorf("unknown category = %+v, want empty", unknown)
	}
}

func TestUpdateUnknownIDLeavesStoreUntouched(t *testing.T) {
	s := NewStore()
	s.CreateCompetitor(testCompetitor("Acme", "direct"))

	if _, ok := s.UpdateCompetitor(42, testCompetitor("Ghost", "direct")); ok {
		t.Error("updating an unknown id should fail")
	}
	if n, _, _ := s.Counts(); n != 1 {
		t.Errorf("competitor count = %d, want 1", n)
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	s := NewStore()
	c := testCompetitor("Acme", "direct")
	c.Strengths = []string{"fast"}
	created := s.CreateCompetitor(c)

	updated, ok := s.UpdateCompetitor(created.ID, testCompetitor("Acme Corp", "indirect"))
	if !ok {
		t.Fatal("update failed")
	}
	if updated.ID != created.ID {
		t.Errorf("id = %d, want %d", updated.ID, created.ID)
	}
	if updated.Name != "Acme Corp" || updated.Category != "indirect" {
		t.Errorf("updated = %+v", updated)
	}
	// Full replacement, not a patch.
	if updated.Strengths != nil {
		t.Errorf("strengths = %v, want nil", updated.Strengths)
	}
}

func TestDeleteIsIdempotentlyReported(t *testing.T) {
	s := NewStore()
	created := s.CreateCompetitor(testCompetitor("Acme", "direct"))

	if !s.DeleteCompetitor(created.ID) {
		t.Error("first delete should succeed")
	}
	if s.DeleteCompetitor(created.ID) {
		t.Error("second delete should report not found")
	}
}

func TestDeletedIDIsNotReused(t *testing.T) {
	s := NewStore()
	first := s.CreateCompetitor(testCompetitor("Acme", "direct"))
	s.DeleteCompetitor(first.ID)

	second := s.CreateCompetitor(testCompetitor("Globex", "indirect"))
	if second.ID != 2 {
		t.Errorf("id = %d, want 2", second.ID)
	}
}

func TestReturnedRecordsAreIsolated(t *testing.T) {
	s := NewStore()
	c := testCompetitor("Acme", "direct")
	c.Strengths = []string{"fast"}
	c.Capabilities = map[string]bool{"analytics": true}
	created := s.CreateCompetitor(c)

	created.Strengths[0] = "mutated"
	created.Capabilities["analytics"] = false

	got, _ := s.GetCompetitor(created.ID)
	if got.Strengths[0] != "fast" {
		t.Error("caller mutation leaked into the store")
	}
	if !got.Capabilities["analytics"] {
		t.Error("caller map mutation leaked into the store")
	}
}

func TestCatalogCreation(t *testing.T) {
	s := NewStore()

	cap1 := s.CreateCapability(intel.Capability{Name: "Analytics", Category: "reporting"})
	if cap1.ID != 1 {
		t.Errorf("capability id = %d, want 1", cap1.ID)
	}

	seg := s.CreateMarketSegment(intel.MarketSegment{Name: "Enterprise", Description: "Large accounts"})
	if seg.ID != 1 {
		t.Errorf("segment id = %d, want 1", seg.ID)
	}

	competitors, capabilities, segments := s.Counts()
	if competitors != 0 || capabilities != 1 || segments != 1 {
		t.Errorf("counts = %d, %d, %d", competitors, capabilities, segments)
	}
}

func TestReplaceSwapsEverything(t *testing.T) {
	s := NewStore()
	s.CreateCompetitor(testCompetitor("Old", "direct"))
	s.CreateCompetitor(testCompetitor("Older", "direct"))

	s.Replace(&Dataset{
		Competitors:  []intel.Competitor{testCompetitor("New", "indirect")},
		Capabilities: []intel.Capability{{Name: "Analytics", Category: "reporting"}},
	})

	list := s.ListCompetitors()
	if len(list) != 1 || list[0].Name != "New" || list[0].ID != 1 {
		t.Errorf("list = %+v", list)
	}

	// Id assignment restarts after a replace.
	next := s.CreateCompetitor(testCompetitor("Next", "direct"))
	if next.ID != 2 {
		t.Errorf("next id = %d, want 2", next.ID)
	}
}
