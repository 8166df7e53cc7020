package pricing

import (
	"testing"
	"time"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

func intPtr(n int) *int { return &n }

func TestComputeFixedCouponExample(t *testing.T) {
	now := time.Now()
	c := &model.Coupon{
		Code:      "FLAT100",
		Model:     model.DiscountFixed,
		Amount:    100,
		MinOrder:  intPtr(500),
		Active:    true,
		ExpiresAt: now.Add(time.Hour),
	}

	got := Compute(600, c, now, DefaultPolicy())
	want := Totals{
		Subtotal:    600,
		Discount:    100,
		DeliveryFee: 0,
		PlatformFee: 5,
		Tax:         25,
		GrandTotal:  530,
	}
	if got != want {
		t.Errorf("Compute(600, FLAT100) = %+v, want %+v", got, want)
	}
}

func TestComputePercentageCouponExample(t *testing.T) {
	now := time.Now()
	c := &model.Coupon{
		Code:      "SAVE20",
		Model:     model.DiscountPercentage,
		Rate:      20,
		Cap:       intPtr(200),
		Active:    true,
		ExpiresAt: now.Add(time.Hour),
	}

	got := Compute(250, c, now, DefaultPolicy())
	want := Totals{
		Subtotal:    250,
		Discount:    50,
		DeliveryFee: 40,
		PlatformFee: 5,
		Tax:         10,
		GrandTotal:  255,
	}
	if got != want {
		t.Errorf("Compute(250, SAVE20) = %+v, want %+v", got, want)
	}
}

func TestComputeNoCouponBaseline(t *testing.T) {
	now := time.Now()
	withCoupon := Compute(600, &model.Coupon{
		Model:     model.DiscountFixed,
		Amount:    100,
		Active:    true,
		ExpiresAt: now.Add(time.Hour),
	}, now, DefaultPolicy())
	removed := Compute(600, nil, now, DefaultPolicy())

	if removed.Discount != 0 {
		t.Errorf("no coupon means zero discount, got %d", removed.Discount)
	}
	if withCoupon.GrandTotal == removed.GrandTotal {
		t.Error("removing the coupon should change the grand total")
	}
	// 600 + 0 + 5 + 30
	if removed.GrandTotal != 635 {
		t.Errorf("expected no-coupon grand total 635, got %d", removed.GrandTotal)
	}
}

func TestComputeDiscountClampedToSubtotal(t *testing.T) {
	now := time.Now()
	c := &model.Coupon{
		Model:     model.DiscountFixed,
		Amount:    500,
		Active:    true,
		ExpiresAt: now.Add(time.Hour),
	}

	got := Compute(200, c, now, DefaultPolicy())
	if got.Discount != 200 {
		t.Errorf("discount must be clamped to the subtotal, got %d", got.Discount)
	}
	// grand total floor: fees only
	if got.GrandTotal != got.DeliveryFee+got.PlatformFee+got.Tax {
		t.Errorf("grand total must not drop below the fees, got %+v", got)
	}
	if got.GrandTotal < 0 {
		t.Error("grand total must never be negative")
	}
}

func TestComputeStaleCouponYieldsNoDiscount(t *testing.T) {
	now := time.Now()
	expired := &model.Coupon{
		Model:     model.DiscountFixed,
		Amount:    100,
		Active:    true,
		ExpiresAt: now.Add(-time.Hour),
	}
	if got := Compute(600, expired, now, DefaultPolicy()); got.Discount != 0 {
		t.Errorf("expired coupon must re-validate to zero discount, got %d", got.Discount)
	}

	inactive := &model.Coupon{
		Model:  model.DiscountFixed,
		Amount: 100,
		Active: false,
	}
	if got := Compute(600, inactive, now, DefaultPolicy()); got.Discount != 0 {
		t.Errorf("inactive coupon must re-validate to zero discount, got %d", got.Discount)
	}
}

func TestComputeDeliveryFeeBoundary(t *testing.T) {
	now := time.Now()
	p := DefaultPolicy()

	at := Compute(300, nil, now, p)
	if at.DeliveryFee != p.DeliveryFee {
		t.Errorf("subtotal equal to the threshold still pays delivery, got %d", at.DeliveryFee)
	}
	over := Compute(301, nil, now, p)
	if over.DeliveryFee != 0 {
		t.Errorf("subtotal over the threshold ships free, got %d", over.DeliveryFee)
	}
}

func TestComputeTaxRoundsHalfUpOnce(t *testing.T) {
	now := time.Now()
	// 0.05 * 610 = 30.5 -> 31 under half-up
	got := Compute(610, nil, now, DefaultPolicy())
	if got.Tax != 31 {
		t.Errorf("expected half-up tax 31, got %d", got.Tax)
	}
}

func TestComputeEmptyCart(t *testing.T) {
	got := Compute(0, nil, time.Now(), DefaultPolicy())
	if got.Subtotal != 0 || got.Discount != 0 {
		t.Errorf("unexpected totals for empty cart: %+v", got)
	}
	// empty cart still carries the flat fees when computed
	if got.GrandTotal != got.DeliveryFee+got.PlatformFee {
		t.Errorf("expected fees-only grand total, got %+v", got)
	}
}
