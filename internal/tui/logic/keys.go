package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/tudu/internal/tui/state"
)

// KeyEvents converts a Bubble Tea key message into state key events.
// A message carrying several runes (a paste) yields one event per rune.
// Alt combinations have no binding and map to KeyOther.
func KeyEvents(msg tea.KeyMsg) []state.KeyEvent {
	if msg.Alt {
		return []state.KeyEvent{state.Key(state.KeyOther)}
	}

	switch msg.Type {
	case tea.KeyEnter:
		return []state.KeyEvent{state.Key(state.KeyEnter)}
	case tea.KeyEsc:
		return []state.KeyEvent{state.Key(state.KeyEsc)}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []state.KeyEvent{state.Key(state.KeyBackspace)}
	case tea.KeyUp:
		return []state.KeyEvent{state.Key(state.KeyUp)}
	case tea.KeyDown:
		return []state.KeyEvent{state.Key(state.KeyDown)}
	case tea.KeySpace:
		return []state.KeyEvent{state.Char(' ')}
	case tea.KeyRunes:
		events := make([]state.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, state.Char(r))
		}
		return events
	}
	return []state.KeyEvent{state.Key(state.KeyOther)}
}
