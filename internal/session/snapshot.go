package session

import (
	"encoding/json"
	"fmt"

	"github.com/buddywhitman/foodswipe-sub000/internal/cart"
	"github.com/buddywhitman/foodswipe-sub000/internal/filter"
)

// snapshot is the serialized session state that survives a restart:
// cart contents, filter config, liked set, and queue position.
type snapshot struct {
	Version int           `json:"version"`
	Filters filter.Config `json:"filters"`
	Liked   []string      `json:"liked"`
	Cart    []cart.Line   `json:"cart"`
	Cursor  int           `json:"cursor"`
}

const snapshotVersion = 1

// Snapshot serializes the restorable session state as JSON. The caller
// chooses where to store it.
func (s *Controller) Snapshot() ([]byte, error) {
	snap := snapshot{
		Version: snapshotVersion,
		Filters: s.cfg,
		Liked:   s.Liked(),
		Cart:    s.cart.Lines(),
		Cursor:  s.queue.Cursor(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session snapshot: %w", err)
	}
	return data, nil
}

// Restore replaces the session state from a Snapshot payload. The queue
// is rebuilt against the current catalog; cart lines whose items have
// left the catalog stay in place and simply price to zero until the
// catalog catches up.
func (s *Controller) Restore(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal session snapshot: %w", err)
	}

	s.cfg = snap.Filters
	if s.cfg.PriceMax == 0 && s.cfg.MaxDeliveryMinutes == 0 {
		// Tolerate snapshots written before filters existed.
		s.cfg = filter.Cleared()
	}
	s.liked = append([]string(nil), snap.Liked...)
	s.cart.Restore(snap.Cart)
	s.queue.Rebuild(s.catalog, s.cfg)
	s.queue.SetCursor(snap.Cursor)
	// If the catalog has not loaded yet the clamp above floors the
	// cursor at zero; remember it so SetCatalog can reinstate it.
	s.resumeCursor = snap.Cursor
	return nil
}
