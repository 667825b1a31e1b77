package state

// KeyCode identifies the kind of key press, independent of the terminal library.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyChar
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyUp
	KeyDown
)

// KeyEvent is a single key press. Rune is only set for KeyChar.
type KeyEvent struct {
	Code KeyCode
	Rune rune
}

// Char builds a KeyChar event.
func Char(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Rune: r}
}

// Key builds a non-character event.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

func (c KeyCode) String() string {
	switch c {
	case KeyChar:
		return "char"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "other"
	}
}
