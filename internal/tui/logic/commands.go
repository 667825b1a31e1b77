package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// copySelected copies the selected item's description to the clipboard.
func (h *Handler) copySelected() tea.Cmd {
	item, ok := h.List.SelectedItem()
	if !ok {
		return nil
	}

	content := item.Description()
	write := h.writeClipboard
	log := h.log
	return func() tea.Msg {
		if err := write(content); err != nil {
			log.Warn("clipboard write failed", zap.Error(err))
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: "Copied to clipboard"}
	}
}

// bellCmd rings the bell off the update path.
func (h *Handler) bellCmd() tea.Cmd {
	beep := h.beep
	log := h.log
	return func() tea.Msg {
		if err := beep(); err != nil {
			log.Debug("bell failed", zap.Error(err))
		}
		return nil
	}
}
