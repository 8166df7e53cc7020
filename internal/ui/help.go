package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

type helpEntry struct {
	key  string
	desc string
}

func footerBindings(keys KeyMap, screen model.Screen) []key.Binding {
	switch screen {
	case model.ScreenDeck:
		return []key.Binding{
			keys.Pass, keys.Like, keys.Drag,
			keys.Filters, keys.Cart, keys.StartOver,
			keys.Help, keys.Quit,
		}
	case model.ScreenFilters:
		return []key.Binding{
			keys.NextField, keys.Toggle,
			keys.Apply, keys.ClearAll, keys.Cancel,
		}
	case model.ScreenCart:
		return []key.Binding{
			keys.Down, keys.Increment, keys.Delete,
			keys.Coupon, keys.Checkout, keys.Back,
		}
	case model.ScreenCheckout:
		return []key.Binding{keys.Select, keys.Back}
	case model.ScreenDone:
		return []key.Binding{keys.StartOver, keys.Quit}
	default:
		return []key.Binding{keys.Quit}
	}
}

// RenderHelp renders the one-line footer for the current screen from
// the keymap's own help text.
func RenderHelp(keys KeyMap, screen model.Screen, width int) string {
	var parts []string
	for _, b := range footerBindings(keys, screen) {
		h := b.Help()
		parts = append(parts, HelpKeyStyle.Render(h.Key)+" "+HelpDescStyle.Render(h.Desc))
	}
	footer := strings.Join(parts, HelpDescStyle.Render("  ·  "))
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(ColorMuted).
		Render(footer)
}

// RenderFullHelp renders the full-screen help overlay.
func RenderFullHelp(width, height int) string {
	sections := []struct {
		title   string
		entries []helpEntry
	}{
		{"Swiping", []helpEntry{
			{"→ / l", "like the top dish (adds it to your cart)"},
			{"← / h", "pass on the top dish"},
			{"mouse drag", "drag the card past the edge to commit"},
			{"r", "start the deck over"},
		}},
		{"Screens", []helpEntry{
			{"f", "edit filters"},
			{"c", "open the cart"},
			{"o", "checkout (from cart)"},
			{"b / esc", "back"},
		}},
		{"Cart", []helpEntry{
			{"+ / -", "change quantity"},
			{"d", "remove line"},
			{"p", "apply a promo code"},
			{"P", "remove the applied promo code"},
		}},
		{"General", []helpEntry{
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	var rows []string
	rows = append(rows, HeaderStyle.Render("foodswipe help"), "")
	for _, s := range sections {
		rows = append(rows, LabelStyle.Render(s.title))
		for _, e := range s.entries {
			rows = append(rows, "  "+HelpKeyStyle.Render(padRight(e.key, 12))+HelpDescStyle.Render(e.desc))
		}
		rows = append(rows, "")
	}
	rows = append(rows, HelpDescStyle.Render("esc or ? to close"))

	content := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
