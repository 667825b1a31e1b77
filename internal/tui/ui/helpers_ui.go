package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	// Iterate by runes to find cut point
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// borderTitle builds the top edge of a box with the title centered in it.
func borderTitle(b lipgloss.Border, width int, title string, borderStyle, titleStyle lipgloss.Style) string {
	if width < 2 {
		return ""
	}
	inner := width - 2

	label := ""
	if title != "" && inner >= 3 {
		label = truncateString(" "+title+" ", inner)
	}
	lw := runewidth.StringWidth(label)
	left := (inner - lw) / 2
	right := inner - lw - left

	return borderStyle.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		titleStyle.Render(label) +
		borderStyle.Render(strings.Repeat(b.Top, right)+b.TopRight)
}
