// Package coupon validates promo codes and computes their discounts.
// Validation and discount computation are deliberately separate steps:
// a coupon can validate against one subtotal while the cart changes
// afterwards, so Discount re-checks the minimum-order threshold on its
// own.
package coupon

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// Sentinel validation errors, surfaced to the user as banner messages.
var (
	ErrNotFound = errors.New("coupon code not found")
	ErrInactive = errors.New("coupon is not active")
	ErrExpired  = errors.New("coupon has expired")
)

// BelowMinimumError means the subtotal does not reach the coupon's
// minimum-order threshold.
type BelowMinimumError struct {
	Required int
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("order must be at least ₹%d to use this coupon", e.Required)
}

// Validate resolves a user-typed code against the coupon list. Matching
// is case-insensitive. Constraints are checked in order: existence,
// activation, expiry, then minimum order (only for coupons declaring
// one).
func Validate(code string, coupons []model.Coupon, subtotal int, now time.Time) (model.Coupon, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range coupons {
		if !strings.EqualFold(c.Code, canonical) {
			continue
		}
		if !c.Active {
			return model.Coupon{}, ErrInactive
		}
		if now.After(c.ExpiresAt) {
			return model.Coupon{}, ErrExpired
		}
		if c.MinOrder != nil && subtotal < *c.MinOrder {
			return model.Coupon{}, &BelowMinimumError{Required: *c.MinOrder}
		}
		return c, nil
	}
	return model.Coupon{}, ErrNotFound
}

// Discount computes the coupon's discount against the given subtotal.
// The minimum-order threshold is re-checked here independently of
// Validate, since the cart can shrink after a coupon is applied; a
// subtotal below the threshold yields 0.
func Discount(c model.Coupon, subtotal int) int {
	if c.MinOrder != nil && subtotal < *c.MinOrder {
		return 0
	}
	switch c.Model {
	case model.DiscountFixed:
		return c.Amount
	case model.DiscountPercentage:
		d := decimal.NewFromInt(int64(subtotal)).
			Mul(decimal.NewFromFloat(c.Rate)).
			Div(decimal.NewFromInt(100)).
			Round(0)
		amount := int(d.IntPart())
		if c.Cap != nil && amount > *c.Cap {
			amount = *c.Cap
		}
		return amount
	default:
		return 0
	}
}
