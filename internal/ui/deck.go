package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/buddywhitman/foodswipe-sub000/internal/gesture"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
	"github.com/buddywhitman/foodswipe-sub000/internal/util"
)

// Terminal cells are not pixels; one cell of horizontal drag counts as
// this many pixels against the gesture thresholds.
const cellToPx = 10.0

// DeckModel renders the swipe deck: the interactive top card, the inert
// cards behind it, and drag feedback.
type DeckModel struct {
	dragStartX int
	dragStartY int
	dragging   bool
}

// DragOffset converts a mouse position to a pixel-space gesture sample.
func (d *DeckModel) DragOffset(x, y int) (float64, float64) {
	return float64(x-d.dragStartX) * cellToPx, float64(y-d.dragStartY) * cellToPx
}

// BeginDrag records the drag origin.
func (d *DeckModel) BeginDrag(x, y int) {
	d.dragStartX = x
	d.dragStartY = y
	d.dragging = true
}

// EndDrag clears the drag origin.
func (d *DeckModel) EndDrag() {
	d.dragging = false
}

// Dragging reports whether a mouse drag is in progress.
func (d *DeckModel) Dragging() bool {
	return d.dragging
}

// View renders the card stack. Only the first card is interactive; the
// rest are dimmed single-line previews.
func (d *DeckModel) View(stack []model.CatalogItem, cls *gesture.Classifier, cursor, length, width, height int) string {
	if len(stack) == 0 {
		return EmptyStateStyle.Render(
			"No more dishes to swipe.\n\n" +
				"r to start over · f to loosen filters · c to review your cart")
	}

	top := stack[0]
	cardWidth := width - 8
	if cardWidth > 56 {
		cardWidth = 56
	}
	if cardWidth < 24 {
		cardWidth = 24
	}

	var body strings.Builder
	body.WriteString(LabelStyle.Render(top.Name))
	body.WriteString("\n")
	body.WriteString(BreadcrumbStyle.Render(top.RestaurantName))
	body.WriteString("\n\n")
	body.WriteString(util.TruncateString(top.Description, cardWidth*2))
	body.WriteString("\n\n")
	body.WriteString(fmt.Sprintf("%s   %s   %s · %s",
		util.FormatPrice(top.Price),
		util.FormatRating(top.Rating),
		top.DeliveryTime,
		util.FormatDistance(top.DistanceKM),
	))
	if len(top.Tags) > 0 {
		body.WriteString("\n")
		body.WriteString(BreadcrumbStyle.Render(util.FormatTags(top.Tags)))
	}

	card := CardStyle.Width(cardWidth)

	// Drag feedback: tilt the border color and stamp the pending
	// decision once the drag leans far enough to read.
	var stamp string
	if cls.State() == gesture.StateDragging {
		x, _ := cls.Offset()
		switch {
		case x > gesture.CommitThreshold:
			stamp = LikeBadgeStyle.Render("LIKE")
			card = card.BorderForeground(ColorGreen)
		case x < -gesture.CommitThreshold:
			stamp = PassBadgeStyle.Render("NOPE")
			card = card.BorderForeground(ColorRed)
		case x > gesture.CommitThreshold/2:
			stamp = SuccessStyle.Render("like?")
		case x < -gesture.CommitThreshold/2:
			stamp = ErrorStyle.Render("pass?")
		}
		if op := gesture.Opacity(x); op < 0.6 {
			card = card.Foreground(ColorMuted)
		}
		body.WriteString("\n")
		body.WriteString(BreadcrumbStyle.Render(fmt.Sprintf("tilt %+.0f°", gesture.Rotation(x))))
	}

	sections := []string{card.Render(body.String())}
	if stamp != "" {
		sections = append([]string{stamp}, sections...)
	}

	// Inert cards underneath.
	for _, item := range stack[1:] {
		sections = append(sections, InertCardStyle.Width(cardWidth).Render(
			fmt.Sprintf("%s · %s", item.Name, util.FormatPrice(item.Price))))
	}

	sections = append(sections, BreadcrumbStyle.Render(
		fmt.Sprintf("card %d of %d", cursor+1, length)))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
