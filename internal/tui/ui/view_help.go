package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/tudu/internal/tui/styles"
)

// renderHelp renders the footer key hints for the current mode.
func (r *Renderer) renderHelp() string {
	entries := r.Help()
	bindings := make([]key.Binding, 0, len(entries))
	for _, e := range entries {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(e.Key),
			key.WithHelp(e.Key, e.Help),
		))
	}

	r.help.Width = r.Width
	line := r.help.ShortHelpView(bindings)
	return lipgloss.PlaceHorizontal(r.Width, lipgloss.Center, line)
}

// renderStatusBar renders the last status message.
func (r *Renderer) renderStatusBar() string {
	style := styles.StatusBar
	switch classifyStatus(r.StatusMsg) {
	case statusSuccess:
		style = styles.StatusBarSuccess
	case statusError:
		style = styles.StatusBarError
	}
	return style.Width(r.Width).Render(truncateString(r.StatusMsg, max(r.Width-2, 0)))
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

func classifyStatus(msg string) statusKind {
	switch {
	case strings.HasPrefix(msg, "Failed"):
		return statusError
	case strings.HasPrefix(msg, "Copied"):
		return statusSuccess
	default:
		return statusInfo
	}
}
