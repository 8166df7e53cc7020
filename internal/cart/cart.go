// Package cart holds the order cart: a multiset of (item, add-on set,
// instructions) lines. The cart never caches prices; the subtotal is
// recomputed from the live catalog on every call.
package cart

import (
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// Catalog resolves item ids to their current catalog entries. The
// catalog is the source of truth for prices.
type Catalog interface {
	Item(id string) (model.CatalogItem, bool)
}

// Line is one distinct (item, customization) combination and its
// quantity. AddOnIDs is kept sorted so two lines with the same add-ons
// in different selection order compare equal.
type Line struct {
	ID           string   `json:"id"`
	ItemID       string   `json:"item_id"`
	Quantity     int      `json:"quantity"`
	AddOnIDs     []string `json:"add_on_ids,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// Cart aggregates lines in insertion order.
type Cart struct {
	catalog Catalog
	lines   []Line
	logger  *slog.Logger
}

// New creates an empty cart backed by the given catalog.
func New(catalog Catalog, logger *slog.Logger) *Cart {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cart{catalog: catalog, logger: logger}
}

// SetCatalog swaps the price source after a catalog refresh.
func (c *Cart) SetCatalog(catalog Catalog) {
	c.catalog = catalog
}

// AddUnit adds one unit of the item. If an existing line matches the
// same item, add-on set, and instructions, its quantity is incremented;
// otherwise a new line is appended. Add-ons the item does not offer are
// dropped. Returns the id of the affected line; an unknown item id is
// ignored and returns "".
func (c *Cart) AddUnit(itemID string, addOns []string, instructions string) string {
	item, ok := c.catalog.Item(itemID)
	if !ok {
		c.logger.Warn("add to cart ignored, item not in catalog", "item_id", itemID)
		return ""
	}

	selected := make([]string, 0, len(addOns))
	for _, id := range addOns {
		if _, ok := item.AddOnByID(id); ok {
			selected = append(selected, id)
		} else {
			c.logger.Warn("dropping unknown add-on", "item_id", itemID, "add_on_id", id)
		}
	}
	sort.Strings(selected)

	for i := range c.lines {
		if c.lines[i].ItemID == itemID &&
			c.lines[i].Instructions == instructions &&
			equalIDs(c.lines[i].AddOnIDs, selected) {
			c.lines[i].Quantity++
			return c.lines[i].ID
		}
	}

	line := Line{
		ID:           uuid.New().String(),
		ItemID:       itemID,
		Quantity:     1,
		AddOnIDs:     selected,
		Instructions: instructions,
	}
	c.lines = append(c.lines, line)
	return line.ID
}

// SetQuantity sets a line's quantity. Quantities at or below zero
// remove the line. No upper bound is enforced.
func (c *Cart) SetQuantity(lineID string, q int) {
	for i := range c.lines {
		if c.lines[i].ID != lineID {
			continue
		}
		if q <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		c.lines[i].Quantity = q
		return
	}
}

// RemoveLine removes a line unconditionally.
func (c *Cart) RemoveLine(lineID string) {
	c.SetQuantity(lineID, 0)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a snapshot of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Units is the total unit count across lines.
func (c *Cart) Units() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal sums (item price + selected add-on prices) * quantity over
// every line, reading current catalog prices. Lines whose item has left
// the catalog contribute nothing.
func (c *Cart) Subtotal() int {
	total := 0
	for _, l := range c.lines {
		item, ok := c.catalog.Item(l.ItemID)
		if !ok {
			c.logger.Warn("cart line item missing from catalog", "item_id", l.ItemID)
			continue
		}
		unit := item.Price
		for _, id := range l.AddOnIDs {
			if a, ok := item.AddOnByID(id); ok {
				unit += a.Price
			}
		}
		total += unit * l.Quantity
	}
	return total
}

// LineTotal prices a single line against the current catalog.
func (c *Cart) LineTotal(l Line) int {
	item, ok := c.catalog.Item(l.ItemID)
	if !ok {
		return 0
	}
	unit := item.Price
	for _, id := range l.AddOnIDs {
		if a, ok := item.AddOnByID(id); ok {
			unit += a.Price
		}
	}
	return unit * l.Quantity
}

// Restore replaces the cart contents from a snapshot.
func (c *Cart) Restore(lines []Line) {
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
