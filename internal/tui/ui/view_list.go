package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/tudu/internal/tui/styles"
)

const (
	selectedPrefix   = "➤ "
	unselectedPrefix = "  "
)

// renderList draws the visible slice inside a titled box of the given outer size.
func (r *Renderer) renderList(width, height int) string {
	innerWidth := max(width-2, 1)
	rows := max(height-2, 1)

	visible := r.List.Visible()
	selected, hasSelection := r.List.SelectedRelative()

	lines := make([]string, 0, rows)
	if len(visible) == 0 {
		lines = append(lines, styles.Empty.Render(truncateString("No TuDus yet. Press e to add one.", innerWidth)))
	}

	for i, item := range visible {
		if i >= rows {
			break
		}
		isSelected := hasSelection && i == selected

		prefix := unselectedPrefix
		if isSelected {
			prefix = selectedPrefix
		}
		text := truncateString(prefix+item.String(), innerWidth)

		style := styles.Item
		if item.Completed() {
			style = styles.ItemCompleted
		}
		if isSelected {
			style = style.Inherit(styles.ItemSelected)
		}
		lines = append(lines, style.Render(text))
	}

	body := styles.ListBox.
		Width(innerWidth).
		Height(rows).
		Render(strings.Join(lines, "\n"))

	top := borderTitle(styles.ListBorder, width, r.opts.Title, lipgloss.NewStyle(), styles.Title)
	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}
