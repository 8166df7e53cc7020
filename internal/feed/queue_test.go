package feed

import (
	"testing"

	"github.com/buddywhitman/foodswipe-sub000/internal/filter"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

func testCatalog() []model.CatalogItem {
	items := make([]model.CatalogItem, 0, 5)
	names := []string{"Masala Dosa", "Butter Chicken", "Veg Biryani", "Momos", "Pav Bhaji"}
	for i, name := range names {
		items = append(items, model.CatalogItem{
			ID:           name,
			Name:         name,
			RestaurantID: "rest-1",
			Price:        100 + i*50,
			Rating:       4.0,
			DeliveryTime: "20-25 min",
		})
	}
	return items
}

func TestRebuildPreservesCatalogOrder(t *testing.T) {
	q := New()
	catalog := testCatalog()
	q.Rebuild(catalog, filter.Cleared())

	if q.Len() != len(catalog) {
		t.Fatalf("expected %d items, got %d", len(catalog), q.Len())
	}
	got := q.Peek(q.Len())
	for i, item := range got {
		if item.ID != catalog[i].ID {
			t.Errorf("position %d: expected %s, got %s", i, catalog[i].ID, item.ID)
		}
	}
}

func TestAdvanceExhaustsInExactlyLenSteps(t *testing.T) {
	q := New()
	q.Rebuild(testCatalog(), filter.Cleared())

	steps := 0
	for !q.IsExhausted() {
		q.Advance()
		steps++
		if steps > q.Len() {
			t.Fatal("advance overran the queue length")
		}
	}
	if steps != q.Len() {
		t.Errorf("expected exhaustion in %d steps, took %d", q.Len(), steps)
	}
}

func TestAdvanceSaturates(t *testing.T) {
	q := New()
	q.Rebuild(testCatalog(), filter.Cleared())
	for i := 0; i < q.Len()+10; i++ {
		q.Advance()
	}
	if q.Cursor() != q.Len() {
		t.Errorf("cursor should saturate at %d, got %d", q.Len(), q.Cursor())
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	q := New()
	q.Rebuild(testCatalog(), filter.Cleared())

	first := q.Peek(3)
	second := q.Peek(3)
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 items from Peek, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Error("repeated Peek must return the same window")
		}
	}
	if q.Cursor() != 0 {
		t.Errorf("Peek must not move the cursor, got %d", q.Cursor())
	}
}

func TestFiltersExcludingEverything(t *testing.T) {
	q := New()
	cfg := filter.Cleared()
	cfg.MinRating = 5.0
	q.Rebuild(testCatalog(), cfg)

	if !q.IsExhausted() {
		t.Error("queue with no matching items is exhausted immediately after rebuild")
	}
	if got := q.Peek(3); len(got) != 0 {
		t.Errorf("expected empty peek, got %d items", len(got))
	}
}

func TestRestartReturnsFirstItem(t *testing.T) {
	q := New()
	catalog := testCatalog()
	q.Rebuild(catalog, filter.Cleared())
	for !q.IsExhausted() {
		q.Advance()
	}

	q.Restart()
	got := q.Peek(1)
	if len(got) != 1 || got[0].ID != catalog[0].ID {
		t.Errorf("restart should return the original first item, got %v", got)
	}
}

func TestEmptyQueueOperations(t *testing.T) {
	q := New()
	if !q.IsExhausted() {
		t.Error("empty queue is exhausted")
	}
	q.Advance()
	q.Restart()
	if got := q.Peek(3); got != nil {
		t.Errorf("expected nil peek on empty queue, got %v", got)
	}
}
