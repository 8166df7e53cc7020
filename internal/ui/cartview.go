package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/buddywhitman/foodswipe-sub000/internal/cart"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
	"github.com/buddywhitman/foodswipe-sub000/internal/pricing"
	"github.com/buddywhitman/foodswipe-sub000/internal/session"
	"github.com/buddywhitman/foodswipe-sub000/internal/util"
)

// CartModel is the cart screen: line list with quantity editing plus
// the promo-code input.
type CartModel struct {
	cursor       int
	couponInput  textinput.Model
	enteringCode bool
}

// NewCartModel creates the cart screen model.
func NewCartModel() *CartModel {
	input := textinput.New()
	input.Placeholder = "promo code"
	input.CharLimit = 20
	return &CartModel{couponInput: input}
}

// SelectedLine returns the line under the cursor.
func (m *CartModel) SelectedLine(lines []cart.Line) (cart.Line, bool) {
	if m.cursor < 0 || m.cursor >= len(lines) {
		return cart.Line{}, false
	}
	return lines[m.cursor], true
}

// MoveUp moves the cursor up.
func (m *CartModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down.
func (m *CartModel) MoveDown(lineCount int) {
	if m.cursor < lineCount-1 {
		m.cursor++
	}
}

// ClampCursor keeps the cursor valid after removals.
func (m *CartModel) ClampCursor(lineCount int) {
	if m.cursor >= lineCount {
		m.cursor = lineCount - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// BeginCouponEntry focuses the promo-code input.
func (m *CartModel) BeginCouponEntry() {
	m.enteringCode = true
	m.couponInput.SetValue("")
	m.couponInput.Focus()
}

// EndCouponEntry blurs the promo-code input and returns the typed code.
func (m *CartModel) EndCouponEntry() string {
	m.enteringCode = false
	m.couponInput.Blur()
	return strings.TrimSpace(m.couponInput.Value())
}

// EnteringCode reports whether the promo input owns the keyboard.
func (m *CartModel) EnteringCode() bool {
	return m.enteringCode
}

// CouponInput exposes the input for delegated key handling.
func (m *CartModel) CouponInput() *textinput.Model {
	return &m.couponInput
}

// View renders the cart lines and the totals breakdown.
func (m *CartModel) View(sess *session.Controller, applied *model.Coupon, totals pricing.Totals, width, height int) string {
	lines := sess.Cart().Lines()
	if len(lines) == 0 {
		return EmptyStateStyle.Render(
			"Your cart is empty.\n\nSwipe right on dishes you like to fill it up.")
	}

	var rows []string
	rows = append(rows, LabelStyle.Render("Cart"))
	rows = append(rows, "")
	for i, line := range lines {
		item, ok := sess.Item(line.ItemID)
		name := line.ItemID
		if ok {
			name = item.Name
		}
		detail := ""
		if len(line.AddOnIDs) > 0 && ok {
			var addOns []string
			for _, id := range line.AddOnIDs {
				if a, found := item.AddOnByID(id); found {
					addOns = append(addOns, a.Name)
				}
			}
			detail = " + " + strings.Join(addOns, ", ")
		}
		if line.Instructions != "" {
			detail += " (" + line.Instructions + ")"
		}
		row := fmt.Sprintf("%dx %-28s %8s", line.Quantity,
			util.TruncateString(name+detail, 28),
			util.FormatPrice(sess.Cart().LineTotal(line)))
		if i == m.cursor && !m.enteringCode {
			row = SelectedRowStyle.Render(row)
		} else {
			row = NormalRowStyle.Render(row)
		}
		rows = append(rows, row)
	}

	rows = append(rows, "")
	if m.enteringCode {
		rows = append(rows, LabelStyle.Render("Promo code")+"  "+m.couponInput.View())
	} else if applied != nil {
		rows = append(rows, SuccessStyle.Render(
			fmt.Sprintf("Coupon %s applied (p to change, P to remove)", applied.Code)))
	} else {
		rows = append(rows, HelpDescStyle.Render("p to enter a promo code"))
	}

	rows = append(rows, "", renderTotals(totals))

	return PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(strings.Join(rows, "\n"))
}

func renderTotals(t pricing.Totals) string {
	line := func(label string, amount int) string {
		return fmt.Sprintf("%s %8s",
			TotalsLabelStyle.Render(fmt.Sprintf("%-14s", label)),
			TotalsValueStyle.Render(util.FormatPrice(amount)))
	}
	rows := []string{
		line("Subtotal", t.Subtotal),
	}
	if t.Discount > 0 {
		rows = append(rows, line("Discount", -t.Discount))
	}
	rows = append(rows,
		line("Delivery", t.DeliveryFee),
		line("Platform fee", t.PlatformFee),
		line("Tax", t.Tax),
		fmt.Sprintf("%s %8s",
			GrandTotalStyle.Render(fmt.Sprintf("%-14s", "To pay")),
			GrandTotalStyle.Render(util.FormatPrice(t.GrandTotal))),
	)
	return strings.Join(rows, "\n")
}
