package cart

import (
	"testing"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

type mapCatalog map[string]model.CatalogItem

func (m mapCatalog) Item(id string) (model.CatalogItem, bool) {
	item, ok := m[id]
	return item, ok
}

func testCatalog() mapCatalog {
	return mapCatalog{
		"dish-1": {
			ID:    "dish-1",
			Name:  "Chole Bhature",
			Price: 180,
			AddOns: []model.AddOn{
				{ID: "extra-chole", Name: "Extra Chole", Price: 40},
				{ID: "lassi", Name: "Sweet Lassi", Price: 60},
			},
		},
		"dish-2": {ID: "dish-2", Name: "Idli Sambar", Price: 90},
	}
}

func TestAddUnitIdempotentMerge(t *testing.T) {
	c := New(testCatalog(), nil)
	c.AddUnit("dish-1", nil, "")
	c.AddUnit("dish-1", nil, "")

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestAddUnitAddOnSetEqualityIsOrderIndependent(t *testing.T) {
	c := New(testCatalog(), nil)
	c.AddUnit("dish-1", []string{"extra-chole", "lassi"}, "")
	c.AddUnit("dish-1", []string{"lassi", "extra-chole"}, "")

	if c.Len() != 1 {
		t.Fatalf("same add-on set in different order must merge, got %d lines", c.Len())
	}
	if c.Lines()[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", c.Lines()[0].Quantity)
	}
}

func TestAddUnitDistinctCustomizationsAreDistinctLines(t *testing.T) {
	c := New(testCatalog(), nil)
	c.AddUnit("dish-1", nil, "")
	c.AddUnit("dish-1", []string{"lassi"}, "")
	c.AddUnit("dish-1", nil, "less spicy")

	if c.Len() != 3 {
		t.Errorf("different add-ons or instructions must create new lines, got %d", c.Len())
	}
}

func TestAddUnitUnknownItemIgnored(t *testing.T) {
	c := New(testCatalog(), nil)
	if id := c.AddUnit("no-such-dish", nil, ""); id != "" {
		t.Errorf("unknown item must be ignored, got line %q", id)
	}
	if c.Len() != 0 {
		t.Error("cart must stay empty after an ignored add")
	}
}

func TestAddUnitDropsUnknownAddOns(t *testing.T) {
	c := New(testCatalog(), nil)
	c.AddUnit("dish-1", []string{"lassi", "bogus"}, "")
	line := c.Lines()[0]
	if len(line.AddOnIDs) != 1 || line.AddOnIDs[0] != "lassi" {
		t.Errorf("unknown add-on must be dropped, got %v", line.AddOnIDs)
	}
}

func TestSetQuantity(t *testing.T) {
	c := New(testCatalog(), nil)
	id := c.AddUnit("dish-2", nil, "")

	c.SetQuantity(id, 5)
	if c.Lines()[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", c.Lines()[0].Quantity)
	}

	c.SetQuantity(id, 0)
	if c.Len() != 0 {
		t.Error("quantity 0 must remove the line")
	}

	id = c.AddUnit("dish-2", nil, "")
	c.SetQuantity(id, -3)
	if c.Len() != 0 {
		t.Error("negative quantity must remove the line")
	}
}

func TestRemoveLine(t *testing.T) {
	c := New(testCatalog(), nil)
	id := c.AddUnit("dish-1", nil, "")
	c.AddUnit("dish-2", nil, "")

	c.RemoveLine(id)
	if c.Len() != 1 || c.Lines()[0].ItemID != "dish-2" {
		t.Errorf("expected only dish-2 to remain, got %v", c.Lines())
	}
}

func TestSubtotalIncludesAddOns(t *testing.T) {
	c := New(testCatalog(), nil)
	id := c.AddUnit("dish-1", []string{"extra-chole"}, "")
	c.SetQuantity(id, 2)
	c.AddUnit("dish-2", nil, "")

	// (180+40)*2 + 90
	if got := c.Subtotal(); got != 530 {
		t.Errorf("expected subtotal 530, got %d", got)
	}
}

func TestSubtotalTracksCatalogPriceChanges(t *testing.T) {
	catalog := testCatalog()
	c := New(catalog, nil)
	c.AddUnit("dish-2", nil, "")

	item := catalog["dish-2"]
	item.Price = 120
	catalog["dish-2"] = item

	if got := c.Subtotal(); got != 120 {
		t.Errorf("subtotal must follow the live catalog price, got %d", got)
	}
}

func TestSubtotalSkipsMissingItems(t *testing.T) {
	catalog := testCatalog()
	c := New(catalog, nil)
	c.AddUnit("dish-2", nil, "")
	delete(catalog, "dish-2")

	if got := c.Subtotal(); got != 0 {
		t.Errorf("lines missing from the catalog contribute nothing, got %d", got)
	}
}

func TestLinesInsertionOrder(t *testing.T) {
	c := New(testCatalog(), nil)
	c.AddUnit("dish-2", nil, "")
	c.AddUnit("dish-1", nil, "")

	lines := c.Lines()
	if lines[0].ItemID != "dish-2" || lines[1].ItemID != "dish-1" {
		t.Errorf("lines must keep insertion order, got %v", lines)
	}
}
