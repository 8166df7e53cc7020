package session

import (
	"testing"

	"github.com/buddywhitman/foodswipe-sub000/internal/filter"
	"github.com/buddywhitman/foodswipe-sub000/internal/gesture"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

func testCatalog() []model.CatalogItem {
	names := []string{"Dosa", "Biryani", "Momos", "Thali"}
	items := make([]model.CatalogItem, 0, len(names))
	for i, name := range names {
		items = append(items, model.CatalogItem{
			ID:           name,
			Name:         name,
			RestaurantID: "rest-1",
			Price:        100 + i*100,
			Rating:       4.0,
			DeliveryTime: "20-25 min",
		})
	}
	return items
}

func TestLikeAppendsAndAddsCartUnit(t *testing.T) {
	s := New(testCatalog(), nil)

	s.OnDecision(gesture.DecisionLike, "Dosa")
	if liked := s.Liked(); len(liked) != 1 || liked[0] != "Dosa" {
		t.Errorf("expected liked set [Dosa], got %v", liked)
	}
	if s.Cart().Units() != 1 {
		t.Errorf("like must add one cart unit, got %d", s.Cart().Units())
	}
	if cursor, _ := s.Progress(); cursor != 1 {
		t.Errorf("decision must advance the queue, cursor = %d", cursor)
	}
}

func TestPassAdvancesWithoutLiking(t *testing.T) {
	s := New(testCatalog(), nil)

	s.OnDecision(gesture.DecisionPass, "Dosa")
	if len(s.Liked()) != 0 {
		t.Error("pass must not touch the liked set")
	}
	if s.Cart().Units() != 0 {
		t.Error("pass must not touch the cart")
	}
	if cursor, _ := s.Progress(); cursor != 1 {
		t.Errorf("pass must still advance, cursor = %d", cursor)
	}
}

func TestRepeatedLikesAccumulate(t *testing.T) {
	s := New(testCatalog(), nil)
	s.OnDecision(gesture.DecisionLike, "Dosa")
	s.Restart()
	s.OnDecision(gesture.DecisionLike, "Dosa")

	if len(s.Liked()) != 2 {
		t.Errorf("repeated likes are legal, got %v", s.Liked())
	}
	if s.Cart().Units() != 2 {
		t.Errorf("each like adds one unit, got %d", s.Cart().Units())
	}
}

func TestUnknownItemDecisionIgnored(t *testing.T) {
	s := New(testCatalog(), nil)

	s.OnDecision(gesture.DecisionLike, "ghost-dish")
	if len(s.Liked()) != 0 || s.Cart().Units() != 0 {
		t.Error("decision for an unknown item must be ignored")
	}
	if cursor, _ := s.Progress(); cursor != 0 {
		t.Errorf("ignored decision must not advance, cursor = %d", cursor)
	}
}

func TestVisibleStack(t *testing.T) {
	s := New(testCatalog(), nil)
	stack := s.VisibleStack()
	if len(stack) != VisibleStackSize {
		t.Fatalf("expected %d visible cards, got %d", VisibleStackSize, len(stack))
	}
	if stack[0].ID != "Dosa" {
		t.Errorf("top card should be the first catalog item, got %s", stack[0].ID)
	}

	s.OnDecision(gesture.DecisionPass, "Dosa")
	if top, ok := s.TopCard(); !ok || top.ID != "Biryani" {
		t.Errorf("after one decision the next card is top, got %v", top.ID)
	}
}

func TestExhaustionAndRestart(t *testing.T) {
	catalog := testCatalog()
	s := New(catalog, nil)
	for _, item := range catalog {
		s.OnDecision(gesture.DecisionPass, item.ID)
	}
	if !s.Exhausted() {
		t.Error("session should be exhausted after deciding every card")
	}

	s.Restart()
	if s.Exhausted() {
		t.Error("restart should rewind the queue")
	}
	if top, ok := s.TopCard(); !ok || top.ID != catalog[0].ID {
		t.Errorf("restart should surface the original first item, got %v", top)
	}
}

func TestApplyFiltersRebuilds(t *testing.T) {
	s := New(testCatalog(), nil)
	s.OnDecision(gesture.DecisionPass, "Dosa")

	cfg := filter.Cleared()
	cfg.PriceMin = 350
	s.ApplyFilters(cfg)

	if cursor, length := s.Progress(); cursor != 0 || length != 1 {
		t.Errorf("filter change resets cursor and refilters, got cursor=%d len=%d", cursor, length)
	}
	if top, ok := s.TopCard(); !ok || top.ID != "Thali" {
		t.Errorf("expected only Thali to remain, got %v", top)
	}

	s.ClearFilters()
	if _, length := s.Progress(); length != 4 {
		t.Errorf("cleared filters restore the full queue, got %d", length)
	}
}

func TestCatalogRefreshKeepsCart(t *testing.T) {
	catalog := testCatalog()
	s := New(catalog, nil)
	s.OnDecision(gesture.DecisionLike, "Dosa")

	refreshed := append([]model.CatalogItem(nil), catalog...)
	refreshed[0].Price = 150
	s.SetCatalog(refreshed)

	if got := s.Cart().Subtotal(); got != 150 {
		t.Errorf("cart must reprice against the refreshed catalog, got %d", got)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	catalog := testCatalog()
	s := New(catalog, nil)
	cfg := filter.Cleared()
	cfg.MinRating = 3.5
	s.ApplyFilters(cfg)
	s.OnDecision(gesture.DecisionLike, "Dosa")
	s.OnDecision(gesture.DecisionPass, "Biryani")

	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	restored := New(catalog, nil)
	if err := restored.Restore(data); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if got := restored.Liked(); len(got) != 1 || got[0] != "Dosa" {
		t.Errorf("liked set lost in round trip: %v", got)
	}
	if restored.Cart().Units() != 1 {
		t.Errorf("cart lost in round trip: %d units", restored.Cart().Units())
	}
	if restored.Filters().MinRating != 3.5 {
		t.Errorf("filters lost in round trip: %+v", restored.Filters())
	}
	if cursor, _ := restored.Progress(); cursor != 2 {
		t.Errorf("cursor lost in round trip: %d", cursor)
	}
}

func TestRestoreBeforeCatalogKeepsPlace(t *testing.T) {
	catalog := testCatalog()
	s := New(catalog, nil)
	s.OnDecision(gesture.DecisionPass, "Dosa")
	s.OnDecision(gesture.DecisionPass, "Biryani")
	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	restored := New(nil, nil)
	if err := restored.Restore(data); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	restored.SetCatalog(catalog)

	if cursor, _ := restored.Progress(); cursor != 2 {
		t.Errorf("catalog load should reinstate the restored cursor, got %d", cursor)
	}
}

func TestFilterChangeAfterRestoreRewindsForGood(t *testing.T) {
	catalog := testCatalog()
	s := New(catalog, nil)
	s.OnDecision(gesture.DecisionPass, "Dosa")
	s.OnDecision(gesture.DecisionPass, "Biryani")
	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	restored := New(nil, nil)
	if err := restored.Restore(data); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	restored.ApplyFilters(filter.Cleared())
	restored.SetCatalog(catalog)

	if cursor, _ := restored.Progress(); cursor != 0 {
		t.Errorf("catalog load must not reinstate the pre-filter cursor, got %d", cursor)
	}
}

func TestRestoreGarbageFails(t *testing.T) {
	s := New(testCatalog(), nil)
	if err := s.Restore([]byte("{not json")); err == nil {
		t.Error("restoring garbage must return an error")
	}
}
