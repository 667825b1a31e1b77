package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/tudu/internal/tui/styles"
)

const popupTitle = "Create a new TuDu"

// popupSize returns the popup's outer width and height.
func (r *Renderer) popupSize() (int, int) {
	w := r.Width * r.opts.PopupWidthPercent / 100
	h := (r.Height - r.footerHeight()) * r.opts.PopupHeightPercent / 100
	w = max(w, min(runewidth.StringWidth(popupTitle)+6, r.Width))
	h = max(h, 3)
	return w, h
}

// renderPopup draws the edit buffer wrapped inside a fixed-width box with a
// caret cell after the last character.
func (r *Renderer) renderPopup() string {
	width, height := r.popupSize()
	innerWidth := max(width-2, 1)
	rows := max(height-2, 1)

	lines, caretRow, caretCol := wrapText(r.Editor.Text(), innerWidth)

	// Keep the caret row in view; it is always the last line.
	first := 0
	if len(lines) > rows {
		first = len(lines) - rows
	}

	rendered := make([]string, 0, rows)
	for i := first; i < len(lines); i++ {
		line := styles.PopupText.Render(lines[i])
		if i == caretRow && caretCol < innerWidth {
			line += styles.Caret.Render(" ")
		}
		rendered = append(rendered, line)
	}

	body := styles.Popup.
		Width(innerWidth).
		Height(rows).
		Render(strings.Join(rendered, "\n"))

	border := lipgloss.NewStyle().Foreground(styles.PopupBorderColor)
	top := borderTitle(lipgloss.NormalBorder(), width, popupTitle, border, styles.PopupTitle)
	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

// wrapText hard-wraps text into rows of at most width cells and returns the
// caret position just after the last character. When a row is exactly full
// the caret moves to the start of the next row, and removing a character
// brings it back to the end of the previous one.
func wrapText(text string, width int) (lines []string, caretRow, caretCol int) {
	if width < 1 {
		width = 1
	}

	var cur strings.Builder
	col := 0
	for _, c := range text {
		cw := runewidth.RuneWidth(c)
		if col > 0 && col+cw > width {
			lines = append(lines, cur.String())
			cur.Reset()
			col = 0
		}
		cur.WriteRune(c)
		col += cw
	}

	if col >= width {
		lines = append(lines, cur.String())
		cur.Reset()
		col = 0
	}
	lines = append(lines, cur.String())

	return lines, len(lines) - 1, col
}
