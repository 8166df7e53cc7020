package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// CatalogLoadedMsg is sent when a catalog fetch resolves. Seq identifies
// the request so stale responses can be superseded.
type CatalogLoadedMsg struct {
	Seq       int
	Items     []CatalogItem
	FromCache bool
}

// CouponsLoadedMsg is sent when the coupon list is loaded.
type CouponsLoadedMsg struct {
	Seq       int
	Coupons   []Coupon
	FromCache bool
}

// LocationResolvedMsg is sent when geolocation resolves.
type LocationResolvedMsg struct {
	Seq      int
	Position Position
}

// Screen represents different app screens.
type Screen int

const (
	ScreenDeck Screen = iota
	ScreenFilters
	ScreenCart
	ScreenCheckout
	ScreenDone
)
