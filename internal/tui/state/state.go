// Package state holds the TuDu application state and the operations that
// mutate it. Nothing here depends on the terminal library.
package state

// Mode is the top-level input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeTerminated
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEditing:
		return "editing"
	case ModeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options tune the editor behaviour.
type Options struct {
	// CharLimit caps the edit buffer; zero disables the cap.
	CharLimit int
	// AllowEmptySubmit lets a blank buffer become an item.
	AllowEmptySubmit bool
}

// DefaultOptions returns the stock editor settings.
func DefaultOptions() Options {
	return Options{CharLimit: DefaultCharLimit}
}

// State is the single application state, owned by the main loop and passed
// by pointer to the handler and the renderer.
type State struct {
	List    *List
	Editor  *Editor
	Mode    Mode
	Options Options
	Keymap  KeymapData

	// UI state
	StatusMsg string
	Width     int
	Height    int
}

// New creates an empty state in normal mode.
func New(opts Options) *State {
	return &State{
		List:    NewList(),
		Editor:  NewEditor(opts.CharLimit),
		Mode:    ModeNormal,
		Options: opts,
		Keymap:  DefaultKeymap(),
	}
}

// EnterEditing opens a fresh edit buffer.
func (s *State) EnterEditing() {
	s.Editor.Reset()
	s.Mode = ModeEditing
}

// InsertChar appends r to the edit buffer. It returns false when the buffer
// is full or the editor is not active.
func (s *State) InsertChar(r rune) bool {
	if s.Mode != ModeEditing {
		return false
	}
	return s.Editor.Insert(r)
}

// Backspace removes the last character of the edit buffer.
func (s *State) Backspace() bool {
	if s.Mode != ModeEditing {
		return false
	}
	return s.Editor.Backspace()
}

// Submit turns the edit buffer into a new item and returns to normal mode.
// A blank buffer is refused unless AllowEmptySubmit is set; the editor then
// stays open so the user can keep typing or cancel.
func (s *State) Submit() bool {
	if s.Mode != ModeEditing {
		return false
	}
	if s.Editor.Blank() && !s.Options.AllowEmptySubmit {
		return false
	}
	s.List.Append(s.Editor.Text())
	s.Editor.Reset()
	s.Mode = ModeNormal
	return true
}

// Cancel discards the edit buffer and returns to normal mode.
func (s *State) Cancel() {
	s.Editor.Reset()
	if s.Mode == ModeEditing {
		s.Mode = ModeNormal
	}
}

// Quit moves to the terminal state.
func (s *State) Quit() {
	s.Mode = ModeTerminated
}

// Help returns the help entries for the current mode.
func (s *State) Help() []Binding {
	return s.Keymap.HelpFor(s.Mode)
}
