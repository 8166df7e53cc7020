package ui

import (
	"fmt"
	"strings"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
	"github.com/buddywhitman/foodswipe-sub000/internal/payment"
	"github.com/buddywhitman/foodswipe-sub000/internal/pricing"
	"github.com/buddywhitman/foodswipe-sub000/internal/session"
	"github.com/buddywhitman/foodswipe-sub000/internal/util"
)

// CheckoutModel is the order review screen and the payment outcome
// display.
type CheckoutModel struct {
	paying bool
	result *payment.Result
}

// NewCheckoutModel creates the checkout screen model.
func NewCheckoutModel() *CheckoutModel {
	return &CheckoutModel{}
}

// SetPaying marks a payment in flight, clearing any previous outcome so
// a retry renders as in-flight.
func (m *CheckoutModel) SetPaying(v bool) {
	m.paying = v
	if v {
		m.result = nil
	}
}

// Paying reports whether a payment is in flight.
func (m *CheckoutModel) Paying() bool {
	return m.paying
}

// SetResult records the collaborator's outcome.
func (m *CheckoutModel) SetResult(r payment.Result) {
	m.paying = false
	m.result = &r
}

// View renders the order summary, or the payment outcome once one is
// in.
func (m *CheckoutModel) View(sess *session.Controller, applied *model.Coupon, totals pricing.Totals, width, height int) string {
	var rows []string

	if m.result != nil {
		switch m.result.Outcome {
		case payment.OutcomeSuccess:
			rows = append(rows,
				SuccessStyle.Render("Order placed!"),
				"",
				fmt.Sprintf("Payment id: %s", m.result.PaymentID),
				fmt.Sprintf("Paid: %s", util.FormatPrice(totals.GrandTotal)),
				"",
				HelpDescStyle.Render("q to quit · r to start a new session"))
		case payment.OutcomeFailure:
			rows = append(rows,
				ErrorStyle.Render("Payment failed: "+m.result.Reason),
				"",
				"Your cart and coupon are untouched.",
				HelpDescStyle.Render("enter to retry · b to go back"))
		case payment.OutcomeCancelled:
			rows = append(rows,
				ErrorStyle.Render("Payment cancelled."),
				"",
				"Your cart and coupon are untouched.",
				HelpDescStyle.Render("enter to retry · b to go back"))
		}
		return PanelStyle.Width(width - 4).Height(height - 4).
			Render(strings.Join(rows, "\n"))
	}

	rows = append(rows, LabelStyle.Render("Review order"), "")
	for _, line := range sess.Cart().Lines() {
		item, ok := sess.Item(line.ItemID)
		name := line.ItemID
		if ok {
			name = item.Name
		}
		rows = append(rows, fmt.Sprintf("%dx %-28s %8s", line.Quantity,
			util.TruncateString(name, 28),
			util.FormatPrice(sess.Cart().LineTotal(line))))
	}
	if applied != nil {
		rows = append(rows, "", SuccessStyle.Render("Coupon "+applied.Code))
	}
	rows = append(rows, "", renderTotals(totals), "")
	if m.paying {
		rows = append(rows, BreadcrumbStyle.Render("Contacting payment provider..."))
	} else {
		rows = append(rows, HelpDescStyle.Render("enter to pay · b to go back"))
	}

	return PanelStyle.Width(width - 4).Height(height - 4).
		Render(strings.Join(rows, "\n"))
}
