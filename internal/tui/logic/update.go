// Package logic routes input to the TuDu state machine.
package logic

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"github.com/hy4ri/tudu/internal/tui/state"
)

// Handler applies input events to the shared state.
type Handler struct {
	*state.State

	log         *zap.Logger
	bellOnLimit bool

	// Side effects, swappable in tests.
	writeClipboard func(string) error
	beep           func() error
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithBell rings the bell when the edit buffer refuses a character.
func WithBell(enabled bool) Option {
	return func(h *Handler) {
		h.bellOnLimit = enabled
	}
}

// NewHandler creates a Handler bound to s.
func NewHandler(s *state.State, opts ...Option) *Handler {
	h := &Handler{
		State:          s,
		log:            zap.NewNop(),
		writeClipboard: clipboard.WriteAll,
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Message types
type statusMsg struct{ msg string }

// Update handles a Bubble Tea message and returns a follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil
	}
	return nil
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Pasted text is only meaningful in the editor; outside it the runes
	// would run list commands.
	if msg.Paste && h.Mode != state.ModeEditing {
		h.log.Debug("paste ignored", zap.Stringer("mode", h.Mode), zap.Int("runes", len(msg.Runes)))
		return nil
	}

	events := KeyEvents(msg)
	if len(events) > 0 {
		h.StatusMsg = ""
	}

	var cmds []tea.Cmd
	for _, ev := range events {
		if h.Mode == state.ModeTerminated {
			break
		}
		if cmd := h.HandleKey(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
