package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_SubmitRoundTrip(t *testing.T) {
	s := New(DefaultOptions())

	s.EnterEditing()
	require.Equal(t, ModeEditing, s.Mode)
	for i := 0; i < 3; i++ {
		require.True(t, s.InsertChar('a'))
	}
	assert.Equal(t, 3, s.Editor.Caret())

	require.True(t, s.Submit())

	items := s.List.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "aaa", items[0].Description())
	assert.False(t, items[0].Completed())
	assert.Equal(t, "", s.Editor.Text())
	assert.Equal(t, 0, s.Editor.Caret())
	assert.Equal(t, ModeNormal, s.Mode)

	sel, ok := s.List.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, sel)
}

func TestState_CancelDiscards(t *testing.T) {
	s := New(DefaultOptions())
	s.List.Append("existing")

	s.EnterEditing()
	s.InsertChar('x')
	s.Cancel()

	assert.Equal(t, ModeNormal, s.Mode)
	assert.Equal(t, "", s.Editor.Text())
	items := s.List.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "existing", items[0].Description())
}

func TestState_EnterClearsLeftovers(t *testing.T) {
	s := New(DefaultOptions())
	s.EnterEditing()
	s.InsertChar('z')
	s.Mode = ModeNormal

	s.EnterEditing()
	assert.Equal(t, "", s.Editor.Text())
}

func TestState_EmptySubmitPolicy(t *testing.T) {
	tests := []struct {
		name       string
		allowEmpty bool
		input      string
		wantItems  int
		wantMode   Mode
	}{
		{"empty refused", false, "", 0, ModeEditing},
		{"whitespace refused", false, "   ", 0, ModeEditing},
		{"empty allowed", true, "", 1, ModeNormal},
		{"content always accepted", false, " hi ", 1, ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{CharLimit: DefaultCharLimit, AllowEmptySubmit: tt.allowEmpty})
			s.EnterEditing()
			for _, r := range tt.input {
				s.InsertChar(r)
			}

			created := s.Submit()

			assert.Equal(t, tt.wantItems == 1, created)
			assert.Equal(t, tt.wantItems, s.List.Len())
			assert.Equal(t, tt.wantMode, s.Mode)
		})
	}
}

func TestState_CharLimit(t *testing.T) {
	s := New(DefaultOptions())
	s.EnterEditing()

	for i := 0; i < DefaultCharLimit; i++ {
		require.True(t, s.InsertChar('x'))
	}
	assert.True(t, s.Editor.Full())
	assert.False(t, s.InsertChar('y'), "insert past the cap is refused")
	assert.Equal(t, strings.Repeat("x", DefaultCharLimit), s.Editor.Text())

	require.True(t, s.Backspace())
	assert.True(t, s.InsertChar('y'))
	assert.True(t, strings.HasSuffix(s.Editor.Text(), "y"))
}

func TestState_UnlimitedBuffer(t *testing.T) {
	s := New(Options{CharLimit: 0})
	s.EnterEditing()
	for i := 0; i < DefaultCharLimit*2; i++ {
		require.True(t, s.InsertChar('x'))
	}
	assert.Equal(t, DefaultCharLimit*2, s.Editor.Caret())
	assert.Equal(t, 0, s.Editor.Limit())
}

func TestState_BackspaceCountsRunes(t *testing.T) {
	s := New(DefaultOptions())
	s.EnterEditing()
	for _, r := range "añ✓" {
		s.InsertChar(r)
	}
	require.Equal(t, 3, s.Editor.Caret())

	s.Backspace()
	assert.Equal(t, "añ", s.Editor.Text())
	s.Backspace()
	s.Backspace()
	assert.False(t, s.Backspace(), "backspace on an empty buffer is a no-op")
	assert.Equal(t, 0, s.Editor.Caret())
}

func TestState_EditingOpsIgnoredInNormal(t *testing.T) {
	s := New(DefaultOptions())

	assert.False(t, s.InsertChar('a'))
	assert.False(t, s.Backspace())
	assert.False(t, s.Submit())
	assert.Equal(t, 0, s.List.Len())
	assert.Equal(t, ModeNormal, s.Mode)
}

func TestState_HelpDependsOnMode(t *testing.T) {
	s := New(DefaultOptions())

	normal := s.Help()
	require.NotEmpty(t, normal)
	assert.Equal(t, "Exit", normal[0].Help)
	assert.Equal(t, "<Esc/q>", normal[0].Key)

	s.EnterEditing()
	editing := s.Help()
	require.Len(t, editing, 2)
	assert.Equal(t, "Go back", editing[0].Help)
	assert.Equal(t, "Add", editing[1].Help)

	s.Quit()
	assert.Empty(t, s.Help())
	assert.Equal(t, "terminated", s.Mode.String())
}

func TestKeymap_BindingsAndKeyEvents(t *testing.T) {
	km := DefaultKeymap()

	var editing []Binding = km.HelpFor(ModeEditing)
	require.Len(t, editing, 2)
	assert.Equal(t, Binding{Key: "<Enter>", Help: "Add"}, editing[1])

	ev := Key(KeyEnter)
	assert.Equal(t, KeyEnter, ev.Code)
	assert.Equal(t, rune(0), ev.Rune)
	assert.Equal(t, KeyEvent{Code: KeyChar, Rune: 'x'}, Char('x'))
}
