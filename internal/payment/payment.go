// Package payment defines the hand-off to the external payment
// collaborator. The core passes an opaque order intent and receives a
// terminal outcome; nothing in here mutates cart or coupon state, so a
// failed or cancelled payment leaves everything intact for a retry.
package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/buddywhitman/foodswipe-sub000/internal/cart"
)

// Outcome is the terminal result of a payment attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "cancelled"
	}
}

// Intent is the opaque order payload handed to the collaborator.
type Intent struct {
	GrandTotal int         `json:"grand_total"`
	Lines      []cart.Line `json:"lines"`
	CouponCode string      `json:"coupon_code,omitempty"`
}

// Result is what the collaborator reports back.
type Result struct {
	Outcome   Outcome
	PaymentID string // set on success
	Reason    string // set on failure
}

// Collaborator collects a payment for an order intent.
type Collaborator interface {
	Collect(ctx context.Context, intent Intent) (Result, error)
}

// Simulator is a local collaborator that approves every order. It
// stands in for the real gateway during development and demos.
type Simulator struct{}

// Collect implements Collaborator.
func (Simulator) Collect(ctx context.Context, intent Intent) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{Outcome: OutcomeCancelled}, nil
	default:
	}
	return Result{
		Outcome:   OutcomeSuccess,
		PaymentID: uuid.New().String(),
	}, nil
}
