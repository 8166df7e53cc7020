// Package pricing derives the final payable amount from the cart
// subtotal, the applied coupon, and the fee and tax policy. Totals are
// never stored: callers recompute on every cart or coupon mutation.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/buddywhitman/foodswipe-sub000/internal/coupon"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// Policy holds the named fee and tax values. These are configuration,
// not business facts baked into the engine.
type Policy struct {
	FreeDeliveryOver int             // delivery is free when subtotal exceeds this
	DeliveryFee      int             // flat fee below the threshold
	PlatformFee      int             // flat fee on every order
	TaxRate          decimal.Decimal // applied to the discounted subtotal
}

// DefaultPolicy returns the reference fee schedule.
func DefaultPolicy() Policy {
	return Policy{
		FreeDeliveryOver: 300,
		DeliveryFee:      40,
		PlatformFee:      5,
		TaxRate:          decimal.NewFromFloat(0.05),
	}
}

// Totals is the derived order breakdown.
type Totals struct {
	Subtotal    int
	Discount    int
	DeliveryFee int
	PlatformFee int
	Tax         int
	GrandTotal  int
}

// Compute derives the totals. The applied coupon, if any, is re-checked
// against the current subtotal; the discount is clamped to the subtotal
// so the grand total can never drop below the fees. Tax is rounded
// half-up once, at the end, never per line.
func Compute(subtotal int, applied *model.Coupon, now time.Time, p Policy) Totals {
	t := Totals{Subtotal: subtotal, PlatformFee: p.PlatformFee}

	if applied != nil && applied.Active && !now.After(applied.ExpiresAt) {
		t.Discount = coupon.Discount(*applied, subtotal)
	}
	if t.Discount > subtotal {
		t.Discount = subtotal
	}

	if subtotal <= p.FreeDeliveryOver {
		t.DeliveryFee = p.DeliveryFee
	}

	taxable := decimal.NewFromInt(int64(subtotal - t.Discount))
	t.Tax = int(taxable.Mul(p.TaxRate).Round(0).IntPart())

	t.GrandTotal = subtotal - t.Discount + t.DeliveryFee + t.PlatformFee + t.Tax
	return t
}
