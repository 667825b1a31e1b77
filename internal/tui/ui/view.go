// Package ui renders the TuDu state. It only reads state.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/tudu/internal/tui/state"
	"github.com/hy4ri/tudu/internal/tui/styles"
)

// Options control layout.
type Options struct {
	Title              string
	PopupWidthPercent  int
	PopupHeightPercent int
	ShowStatus         bool
}

// DefaultOptions returns the stock layout.
func DefaultOptions() Options {
	return Options{
		Title:              "TuDu",
		PopupWidthPercent:  75,
		PopupHeightPercent: 15,
		ShowStatus:         true,
	}
}

type Renderer struct {
	*state.State

	opts Options
	help help.Model
}

func NewRenderer(s *state.State, opts Options) *Renderer {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSeparator
	h.Styles.Ellipsis = styles.HelpSeparator

	return &Renderer{
		State: s,
		opts:  opts,
		help:  h,
	}
}

func (r *Renderer) View() string {
	if r.Mode == state.ModeTerminated {
		return ""
	}
	if r.Width == 0 {
		return "Loading..."
	}

	listHeight := r.Height - r.footerHeight()
	main := r.renderList(r.Width, listHeight)
	if r.Mode == state.ModeEditing {
		// The popup replaces the list area; the footer stays visible.
		main = lipgloss.Place(r.Width, listHeight, lipgloss.Center, lipgloss.Center,
			r.renderPopup())
	}

	parts := []string{main, r.renderHelp()}
	if r.opts.ShowStatus {
		parts = append(parts, r.renderStatusBar())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ListRows returns how many item rows fit for a terminal of the given height.
// The caller feeds it into List.SetViewportHeight on every resize.
func (r *Renderer) ListRows(height int) int {
	rows := height - r.footerHeight() - 2 // top and bottom border
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (r *Renderer) footerHeight() int {
	if r.opts.ShowStatus {
		return 2
	}
	return 1
}
