// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for titles and key hints
	Highlight = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#5FAFFF"}

	// Selected marks the row under the cursor
	Selected = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// List styles
var (
	// ListBorder is the border drawn around the item list
	ListBorder = lipgloss.RoundedBorder()

	// ListBox frames the item list. The top border is drawn separately so
	// it can carry the title.
	ListBox = lipgloss.NewStyle().
		BorderStyle(ListBorder).
		BorderTop(false).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(true)

	// Title is the list title embedded in the top border
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Item is the base style for a row
	Item = lipgloss.NewStyle()

	// ItemSelected is the style for the selected row
	ItemSelected = lipgloss.NewStyle().
			Foreground(Selected).
			Bold(true)

	// ItemCompleted is for completed rows
	ItemCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// Empty is the placeholder shown for an empty list
	Empty = lipgloss.NewStyle().
		Foreground(Subtle).
		Italic(true)
)

// Popup styles
var (
	// PopupBorderColor colors the new-item popup frame
	PopupBorderColor = lipgloss.Color("#D0473D")

	// Popup frames the new-item editor. Like ListBox, the top border is
	// drawn separately.
	Popup = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(true).
		BorderForeground(PopupBorderColor)

	// PopupTitle is the popup title embedded in the top border
	PopupTitle = lipgloss.NewStyle().
			Foreground(PopupBorderColor).
			Bold(true)

	// PopupText is the text being typed
	PopupText = lipgloss.NewStyle()

	// Caret marks the insertion point
	Caret = lipgloss.NewStyle().
		Reverse(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Padding(0, 1)

	// StatusBarSuccess is for commands that completed, e.g. a copy
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Padding(0, 1)

	// StatusBarError is for failures reported by commands
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(0, 1)
)

// Help styles
var (
	// HelpKey is for key bindings in the footer
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator sits between footer entries
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)
