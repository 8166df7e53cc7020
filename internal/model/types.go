package model

import "time"

// AddOn is an optional extra a dish can be customized with.
type AddOn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// CatalogItem represents a purchasable dish. Items are immutable once
// loaded; the catalog source owns them.
type CatalogItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RestaurantID   string   `json:"restaurant_id"`
	RestaurantName string   `json:"restaurant_name"`
	Price          int      `json:"price"` // whole rupees
	Rating         float64  `json:"rating"`
	Tags           []string `json:"tags"`
	DeliveryTime   string   `json:"delivery_time"` // e.g. "25-30 min"
	DistanceKM     float64  `json:"distance_km"`
	AddOns         []AddOn  `json:"add_ons,omitempty"`
}

// AddOnByID looks up one of the item's add-ons.
func (c CatalogItem) AddOnByID(id string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

// HasTag reports whether the item carries the given tag.
func (c CatalogItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DiscountModel selects how a coupon computes its discount.
type DiscountModel int

const (
	DiscountFixed DiscountModel = iota
	DiscountPercentage
)

// Coupon is a named discount rule with validity constraints. Read-only
// reference data; codes are canonical uppercase.
type Coupon struct {
	Code        string        `json:"code"`
	Description string        `json:"description"`
	Model       DiscountModel `json:"model"`
	Amount      int           `json:"amount,omitempty"` // fixed discount, rupees
	Rate        float64       `json:"rate,omitempty"`   // percentage rate
	Cap         *int          `json:"cap,omitempty"`    // percentage cap, rupees
	MinOrder    *int          `json:"min_order,omitempty"`
	Active      bool          `json:"active"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// Position is a resolved geolocation.
type Position struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	City string  `json:"city"`
}
