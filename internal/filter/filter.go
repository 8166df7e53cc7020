// Package filter decides which catalog items are visible under the
// active set of user-chosen constraints. Matches is pure and total: the
// same item and config always produce the same answer and nothing is
// mutated along the way.
package filter

import (
	"strconv"
	"strings"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// Default bounds for a cleared config. Wide enough to pass every item
// the catalog source realistically serves.
const (
	DefaultPriceMax           = 2000
	DefaultMaxDeliveryMinutes = 120
)

// Config is the active set of visibility constraints. The zero value is
// not usable; start from Cleared.
type Config struct {
	PriceMin            int      `json:"price_min"`
	PriceMax            int      `json:"price_max"`
	MinRating           float64  `json:"min_rating"`
	Cuisines            []string `json:"cuisines,omitempty"`
	Dietary             []string `json:"dietary,omitempty"`
	MaxDeliveryMinutes  int      `json:"max_delivery_minutes"`
	ExcludedRestaurants []string `json:"excluded_restaurants,omitempty"`
}

// Cleared returns the canonical no-constraints config.
func Cleared() Config {
	return Config{
		PriceMin:           0,
		PriceMax:           DefaultPriceMax,
		MinRating:          0,
		MaxDeliveryMinutes: DefaultMaxDeliveryMinutes,
	}
}

// Matches reports whether the item is visible under the config. All
// rules are ANDed; an empty cuisine or dietary set imposes no
// constraint, a non-empty one matches if the item has any of its tags.
func Matches(item model.CatalogItem, cfg Config) bool {
	if item.Price < cfg.PriceMin || item.Price > cfg.PriceMax {
		return false
	}
	if item.Rating < cfg.MinRating {
		return false
	}
	if len(cfg.Cuisines) > 0 && !hasAnyTag(item, cfg.Cuisines) {
		return false
	}
	if len(cfg.Dietary) > 0 && !hasAnyTag(item, cfg.Dietary) {
		return false
	}
	// Unparseable delivery times fail closed rather than crash.
	minutes, ok := DeliveryUpperMinutes(item.DeliveryTime)
	if !ok || minutes > cfg.MaxDeliveryMinutes {
		return false
	}
	for _, rid := range cfg.ExcludedRestaurants {
		if item.RestaurantID == rid {
			return false
		}
	}
	return true
}

// DeliveryUpperMinutes parses the upper bound of a delivery-time range
// such as "25-30 min". For a single-number string it returns that
// number. The second result is false when no number is present.
func DeliveryUpperMinutes(s string) (int, bool) {
	upper := 0
	found := false
	cur := -1
	flush := func() {
		if cur >= 0 {
			if !found || cur > upper {
				upper = cur
			}
			found = true
			cur = -1
		}
	}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			if cur < 0 {
				cur = 0
			}
			cur = cur*10 + int(r-'0')
		} else {
			flush()
		}
	}
	flush()
	return upper, found
}

// ParseMinutes parses a bare minutes value typed by the user.
func ParseMinutes(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func hasAnyTag(item model.CatalogItem, tags []string) bool {
	for _, t := range tags {
		if item.HasTag(t) {
			return true
		}
	}
	return false
}
