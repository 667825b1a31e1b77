// Package tui provides the terminal user interface for TuDu.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/tudu/internal/config"
	"github.com/hy4ri/tudu/internal/tui/logic"
	"github.com/hy4ri/tudu/internal/tui/state"
	"github.com/hy4ri/tudu/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
	log      *zap.Logger
}

// NewApp creates a new App instance.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	s := state.New(state.Options{
		CharLimit:        cfg.Editor.CharLimit,
		AllowEmptySubmit: cfg.Editor.AllowEmptySubmit,
	})

	// An empty title keeps the stock one.
	opts := ui.DefaultOptions()
	if cfg.UI.Title != "" {
		opts.Title = cfg.UI.Title
	}
	opts.PopupWidthPercent = cfg.UI.PopupWidthPercent
	opts.PopupHeightPercent = cfg.UI.PopupHeightPercent
	opts.ShowStatus = cfg.UI.ShowStatus

	return &App{
		state: s,
		handler: logic.NewHandler(s,
			logic.WithLogger(log),
			logic.WithBell(cfg.Editor.BellOnLimit),
		),
		renderer: ui.NewRenderer(s, opts),
		log: log,
	}
}

// State exposes the application state.
func (a *App) State() *state.State {
	return a.state
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.state.List.SetViewportHeight(a.renderer.ListRows(msg.Height))
		a.log.Debug("resized",
			zap.Int("width", msg.Width),
			zap.Int("height", msg.Height),
			zap.Int("rows", a.state.List.ViewportHeight()),
		)
		return a, nil

	case tea.KeyMsg:
		// ctrl+c always exits, whatever the mode.
		if msg.Type == tea.KeyCtrlC {
			a.state.Quit()
			return a, tea.Quit
		}
	}

	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
