package logic

import (
	"fmt"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/tudu/internal/tui/state"
)

// HandleKey applies one key event to the state machine.
func (h *Handler) HandleKey(ev state.KeyEvent) tea.Cmd {
	prev := h.Mode

	var cmd tea.Cmd
	switch h.Mode {
	case state.ModeNormal:
		cmd = h.handleNormalKey(ev)
	case state.ModeEditing:
		cmd = h.handleEditKey(ev)
	default:
		return nil
	}

	if h.Mode != prev {
		h.log.Debug("mode changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", h.Mode),
			zap.Stringer("key", ev.Code),
		)
	}
	return cmd
}

// handleNormalKey handles list navigation and mutation.
func (h *Handler) handleNormalKey(ev state.KeyEvent) tea.Cmd {
	switch ev.Code {
	case state.KeyEsc:
		h.Quit()
		return tea.Quit
	case state.KeyUp:
		h.List.MoveUp()
	case state.KeyDown:
		h.List.MoveDown()
	case state.KeyEnter:
		h.toggleSelected()
	case state.KeyChar:
		switch ev.Rune {
		case 'q':
			h.Quit()
			return tea.Quit
		case 'e', 'E':
			h.EnterEditing()
		case 'D':
			h.deleteSelected()
		case 'y':
			return h.copySelected()
		}
	}
	return nil
}

// handleEditKey handles text entry in the new-item editor.
func (h *Handler) handleEditKey(ev state.KeyEvent) tea.Cmd {
	switch ev.Code {
	case state.KeyEsc:
		h.Cancel()
	case state.KeyEnter:
		h.submit()
	case state.KeyBackspace:
		h.Backspace()
	case state.KeyChar:
		if !unicode.IsPrint(ev.Rune) {
			return nil
		}
		if !h.InsertChar(ev.Rune) {
			h.StatusMsg = fmt.Sprintf("Limit of %d characters reached", h.Editor.Limit())
			if h.bellOnLimit {
				return h.bellCmd()
			}
		}
	}
	return nil
}

func (h *Handler) toggleSelected() {
	if !h.List.ToggleSelected() {
		return
	}
	item, _ := h.List.SelectedItem()
	h.log.Debug("item toggled",
		zap.String("description", item.Description()),
		zap.Bool("completed", item.Completed()),
	)
}

func (h *Handler) deleteSelected() {
	item, ok := h.List.DeleteSelected()
	if !ok {
		return
	}
	h.StatusMsg = "Deleted: " + item.Description()
	h.log.Debug("item deleted",
		zap.String("description", item.Description()),
		zap.Int("remaining", h.List.Len()),
	)
}

func (h *Handler) submit() {
	text := h.Editor.Text()
	if !h.Submit() {
		h.StatusMsg = "Nothing to add"
		return
	}
	h.log.Debug("item added",
		zap.String("description", text),
		zap.Int("count", h.List.Len()),
	)
}
