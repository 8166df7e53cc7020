package util

import (
	"fmt"
	"math"
	"strings"
)

// FormatPrice formats a whole-rupee amount for display.
func FormatPrice(amount int) string {
	return fmt.Sprintf("₹%d", amount)
}

// FormatRating formats a rating as "4.5 ★".
func FormatRating(rating float64) string {
	s := fmt.Sprintf("%.1f", rating)
	s = strings.TrimSuffix(s, ".0")
	return s + " ★"
}

// FormatRatingStars formats a 0-5 rating as stars (e.g., "★★★★☆").
func FormatRatingStars(rating float64) string {
	stars := int(math.Round(rating))
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	result := ""
	for i := 0; i < 5; i++ {
		if i < stars {
			result += "★"
		} else {
			result += "☆"
		}
	}
	return result
}

// FormatDistance formats a distance in kilometres.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm", km)
}

// FormatTags joins tags for a card footer.
func FormatTags(tags []string) string {
	return strings.Join(tags, " · ")
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
