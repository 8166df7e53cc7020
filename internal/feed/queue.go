// Package feed maintains the ordered, filtered view over the dish
// catalog that the swipe deck draws from.
package feed

import (
	"github.com/buddywhitman/foodswipe-sub000/internal/filter"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// Queue is an ordered sequence of catalog items passing the current
// filter config, plus a cursor. The cursor never exceeds the queue
// length; when it reaches the length the queue is exhausted. All
// operations are well-defined no-ops on an empty queue.
type Queue struct {
	items  []model.CatalogItem
	cursor int
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Rebuild recomputes the filtered list from the catalog, preserving
// catalog order, and resets the cursor to 0. Call whenever the catalog
// or filter config changes.
func (q *Queue) Rebuild(catalog []model.CatalogItem, cfg filter.Config) {
	q.items = q.items[:0]
	for _, item := range catalog {
		if filter.Matches(item, cfg) {
			q.items = append(q.items, item)
		}
	}
	q.cursor = 0
}

// Peek returns up to n items starting at the cursor without advancing.
func (q *Queue) Peek(n int) []model.CatalogItem {
	if q.cursor >= len(q.items) || n <= 0 {
		return nil
	}
	end := q.cursor + n
	if end > len(q.items) {
		end = len(q.items)
	}
	out := make([]model.CatalogItem, end-q.cursor)
	copy(out, q.items[q.cursor:end])
	return out
}

// Advance moves the cursor forward by one, saturating at the length.
func (q *Queue) Advance() {
	if q.cursor < len(q.items) {
		q.cursor++
	}
}

// IsExhausted reports whether every queued item has been consumed.
func (q *Queue) IsExhausted() bool {
	return q.cursor >= len(q.items)
}

// Restart resets the cursor to 0 without reordering.
func (q *Queue) Restart() {
	q.cursor = 0
}

// Len is the number of items passing the current filter.
func (q *Queue) Len() int {
	return len(q.items)
}

// Cursor is the current position, in [0, Len].
func (q *Queue) Cursor() int {
	return q.cursor
}

// SetCursor restores a saved cursor position, clamped to [0, Len].
func (q *Queue) SetCursor(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(q.items) {
		n = len(q.items)
	}
	q.cursor = n
}
