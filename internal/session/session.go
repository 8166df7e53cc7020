// Package session owns the per-run swipe state: the filtered queue, the
// liked set, and the cart. Every mutation goes through a named
// operation on the Controller; there is no ambient state.
package session

import (
	"io"
	"log/slog"

	"github.com/buddywhitman/foodswipe-sub000/internal/cart"
	"github.com/buddywhitman/foodswipe-sub000/internal/feed"
	"github.com/buddywhitman/foodswipe-sub000/internal/filter"
	"github.com/buddywhitman/foodswipe-sub000/internal/gesture"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// VisibleStackSize is how many cards the deck renders; only the top one
// is interactive.
const VisibleStackSize = 3

// Controller orchestrates the gesture classifier's committed decisions
// against the recommendation queue, the liked set, and the cart.
type Controller struct {
	byID    map[string]model.CatalogItem
	catalog []model.CatalogItem
	cfg     filter.Config
	queue   *feed.Queue
	liked   []string
	cart    *cart.Cart
	logger  *slog.Logger

	// resumeCursor holds a queue position restored from a snapshot
	// before the catalog arrived; SetCatalog consumes it.
	resumeCursor int
}

// New builds a session over the given catalog with cleared filters.
func New(catalog []model.CatalogItem, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Controller{
		cfg:    filter.Cleared(),
		queue:  feed.New(),
		logger: logger,
	}
	s.cart = cart.New(s, logger)
	s.SetCatalog(catalog)
	return s
}

// Item implements cart.Catalog against the current catalog.
func (s *Controller) Item(id string) (model.CatalogItem, bool) {
	item, ok := s.byID[id]
	return item, ok
}

// SetCatalog replaces the catalog after a refresh and rebuilds the
// queue under the current filters, keeping the user's place in the
// deck. Cart lines keep their item ids and reprice against the new
// catalog automatically.
func (s *Controller) SetCatalog(catalog []model.CatalogItem) {
	cursor := s.queue.Cursor()
	if s.resumeCursor > cursor {
		cursor = s.resumeCursor
	}
	s.resumeCursor = 0

	s.catalog = catalog
	s.byID = make(map[string]model.CatalogItem, len(catalog))
	for _, item := range catalog {
		s.byID[item.ID] = item
	}
	s.queue.Rebuild(s.catalog, s.cfg)
	s.queue.SetCursor(cursor)
}

// Catalog returns the full unfiltered catalog.
func (s *Controller) Catalog() []model.CatalogItem {
	return s.catalog
}

// Filters returns the active filter config.
func (s *Controller) Filters() filter.Config {
	return s.cfg
}

// ApplyFilters installs a new filter config and rebuilds the queue,
// resetting the cursor. The rewind is final: a pending restored cursor
// must not resurface on the next catalog load.
func (s *Controller) ApplyFilters(cfg filter.Config) {
	s.cfg = cfg
	s.resumeCursor = 0
	s.queue.Rebuild(s.catalog, s.cfg)
}

// ClearFilters restores the canonical cleared config.
func (s *Controller) ClearFilters() {
	s.ApplyFilters(filter.Cleared())
}

// OnDecision applies one committed swipe. A like appends the item to
// the liked set and adds one cart unit; either decision advances the
// queue. Decisions naming an item absent from the catalog are a
// stale-state race: they are logged and ignored without advancing.
func (s *Controller) OnDecision(d gesture.Decision, itemID string) {
	if _, ok := s.byID[itemID]; !ok {
		s.logger.Warn("decision for unknown item ignored", "item_id", itemID, "decision", d.String())
		return
	}
	if d == gesture.DecisionLike {
		s.liked = append(s.liked, itemID)
		s.cart.AddUnit(itemID, nil, "")
	}
	s.queue.Advance()
}

// VisibleStack returns the next cards to render, top first.
func (s *Controller) VisibleStack() []model.CatalogItem {
	return s.queue.Peek(VisibleStackSize)
}

// TopCard returns the interactive card, if any.
func (s *Controller) TopCard() (model.CatalogItem, bool) {
	stack := s.queue.Peek(1)
	if len(stack) == 0 {
		return model.CatalogItem{}, false
	}
	return stack[0], true
}

// Exhausted reports whether the queue has run out.
func (s *Controller) Exhausted() bool {
	return s.queue.IsExhausted()
}

// Restart rewinds the queue to the first filtered item.
func (s *Controller) Restart() {
	s.resumeCursor = 0
	s.queue.Restart()
}

// Progress reports the cursor position and queue length.
func (s *Controller) Progress() (cursor, length int) {
	return s.queue.Cursor(), s.queue.Len()
}

// Liked returns the ordered liked item ids for this session.
func (s *Controller) Liked() []string {
	out := make([]string, len(s.liked))
	copy(out, s.liked)
	return out
}

// Cart exposes the session cart.
func (s *Controller) Cart() *cart.Cart {
	return s.cart
}
