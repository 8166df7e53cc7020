package coupon

import (
	"errors"
	"testing"
	"time"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

func intPtr(n int) *int { return &n }

func testCoupons(now time.Time) []model.Coupon {
	return []model.Coupon{
		{
			Code:      "FLAT100",
			Model:     model.DiscountFixed,
			Amount:    100,
			MinOrder:  intPtr(500),
			Active:    true,
			ExpiresAt: now.Add(24 * time.Hour),
		},
		{
			Code:      "SAVE20",
			Model:     model.DiscountPercentage,
			Rate:      20,
			Cap:       intPtr(200),
			Active:    true,
			ExpiresAt: now.Add(24 * time.Hour),
		},
		{
			Code:      "OLD50",
			Model:     model.DiscountFixed,
			Amount:    50,
			Active:    true,
			ExpiresAt: now.Add(-time.Hour),
		},
		{
			Code:      "PAUSED",
			Model:     model.DiscountFixed,
			Amount:    50,
			Active:    false,
			ExpiresAt: now.Add(24 * time.Hour),
		},
	}
}

func TestValidateCaseInsensitive(t *testing.T) {
	now := time.Now()
	coupons := testCoupons(now)

	for _, code := range []string{"flat100", "FLAT100", " Flat100 "} {
		got, err := Validate(code, coupons, 600, now)
		if err != nil {
			t.Errorf("Validate(%q) unexpected error: %v", code, err)
			continue
		}
		if got.Code != "FLAT100" {
			t.Errorf("Validate(%q) matched %q", code, got.Code)
		}
	}
}

func TestValidateNotFound(t *testing.T) {
	now := time.Now()
	_, err := Validate("NOPE", testCoupons(now), 600, now)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateInactive(t *testing.T) {
	now := time.Now()
	_, err := Validate("PAUSED", testCoupons(now), 600, now)
	if !errors.Is(err, ErrInactive) {
		t.Errorf("expected ErrInactive, got %v", err)
	}
}

func TestValidateExpired(t *testing.T) {
	now := time.Now()
	_, err := Validate("OLD50", testCoupons(now), 600, now)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestValidateBelowMinimum(t *testing.T) {
	now := time.Now()
	_, err := Validate("FLAT100", testCoupons(now), 499, now)
	var minErr *BelowMinimumError
	if !errors.As(err, &minErr) {
		t.Fatalf("expected BelowMinimumError, got %v", err)
	}
	if minErr.Required != 500 {
		t.Errorf("expected required 500, got %d", minErr.Required)
	}
}

func TestDiscountFixedRechecksMinimum(t *testing.T) {
	now := time.Now()
	c, err := Validate("FLAT100", testCoupons(now), 600, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := Discount(c, 600); got != 100 {
		t.Errorf("expected discount 100, got %d", got)
	}
	// Cart shrank after the coupon was applied.
	if got := Discount(c, 400); got != 0 {
		t.Errorf("subtotal below minimum must yield 0, got %d", got)
	}
}

func TestDiscountPercentageWithCap(t *testing.T) {
	now := time.Now()
	c, err := Validate("SAVE20", testCoupons(now), 250, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := Discount(c, 250); got != 50 {
		t.Errorf("expected 20%% of 250 = 50, got %d", got)
	}
	if got := Discount(c, 5000); got != 200 {
		t.Errorf("expected cap of 200, got %d", got)
	}
}

func TestDiscountPercentageRounding(t *testing.T) {
	c := model.Coupon{
		Model:  model.DiscountPercentage,
		Rate:   15,
		Active: true,
	}
	// 15% of 103 = 15.45 -> 15; 15% of 110 = 16.5 -> 17 (half up)
	if got := Discount(c, 103); got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
	if got := Discount(c, 110); got != 17 {
		t.Errorf("expected 17, got %d", got)
	}
}
