package state

import "strings"

// DefaultCharLimit caps the edit buffer when no limit is configured.
const DefaultCharLimit = 250

// Editor is the transient buffer used while composing a new item. Text is only
// appended to or removed from the end, so the caret is always the rune length.
type Editor struct {
	buf   []rune
	limit int
}

// NewEditor creates an empty buffer. A limit of zero or less disables the cap.
func NewEditor(limit int) *Editor {
	return &Editor{limit: limit}
}

// Reset clears the buffer.
func (e *Editor) Reset() {
	e.buf = e.buf[:0]
}

// Insert appends r unless the buffer is full.
func (e *Editor) Insert(r rune) bool {
	if e.Full() {
		return false
	}
	e.buf = append(e.buf, r)
	return true
}

// Backspace removes the last rune.
func (e *Editor) Backspace() bool {
	if len(e.buf) == 0 {
		return false
	}
	e.buf = e.buf[:len(e.buf)-1]
	return true
}

// Full reports whether the buffer reached its limit.
func (e *Editor) Full() bool {
	return e.limit > 0 && len(e.buf) >= e.limit
}

// Text returns the buffer contents.
func (e *Editor) Text() string {
	return string(e.buf)
}

// Caret returns the logical caret offset in runes.
func (e *Editor) Caret() int {
	return len(e.buf)
}

// Limit returns the configured cap, zero when unbounded.
func (e *Editor) Limit() int {
	if e.limit < 0 {
		return 0
	}
	return e.limit
}

// Blank reports whether the buffer holds only whitespace.
func (e *Editor) Blank() bool {
	return strings.TrimSpace(string(e.buf)) == ""
}
