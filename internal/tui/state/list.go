package state

// noSelection marks an empty list.
const noSelection = -1

// List owns the items, the selection and the scroll offset of the viewport.
// Every operation is total: boundary moves and actions on an empty list are no-ops.
type List struct {
	items    []Item
	selected int
	offset   int
	height   int
}

// NewList creates an empty list with a one-row viewport.
func NewList() *List {
	return &List{
		selected: noSelection,
		height:   1,
	}
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of all items in display order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Selected returns the selected index and whether a selection exists.
func (l *List) Selected() (int, bool) {
	if l.selected == noSelection {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the item under the selection.
func (l *List) SelectedItem() (Item, bool) {
	idx, ok := l.Selected()
	if !ok {
		return Item{}, false
	}
	return l.items[idx], true
}

// Offset returns the index of the first visible item.
func (l *List) Offset() int {
	return l.offset
}

// ViewportHeight returns the number of rows available for items.
func (l *List) ViewportHeight() int {
	return l.height
}

// SetViewportHeight updates the number of visible rows and restores the
// scroll invariant. Heights below one are treated as one.
func (l *List) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	l.height = h
	l.AdjustViewport()
}

// MoveUp selects the previous item.
func (l *List) MoveUp() {
	if l.selected == noSelection || l.selected == 0 {
		return
	}
	l.selected--
	l.AdjustViewport()
}

// MoveDown selects the next item.
func (l *List) MoveDown() {
	if l.selected == noSelection || l.selected+1 >= len(l.items) {
		return
	}
	l.selected++
	l.AdjustViewport()
}

// AdjustViewport scrolls so the selection is inside
// [offset, offset+height).
func (l *List) AdjustViewport() {
	if l.selected == noSelection {
		l.offset = 0
		return
	}

	if l.selected < l.offset {
		l.offset = l.selected
	} else if l.selected >= l.offset+l.height {
		l.offset = l.selected - l.height + 1
	}

	// Pull the window back when it hangs past the end of the list, e.g.
	// after a delete or a terminal resize. The selection stays visible.
	if maxOffset := len(l.items) - l.height; l.offset > maxOffset {
		l.offset = max(maxOffset, 0)
	}
}

// ToggleSelected flips the completed flag of the selected item.
func (l *List) ToggleSelected() bool {
	if l.selected == noSelection {
		return false
	}
	l.items[l.selected].completed = !l.items[l.selected].completed
	return true
}

// DeleteSelected removes the selected item and clamps the selection into the
// shrunk list. Deleting the last remaining item clears the selection.
func (l *List) DeleteSelected() (Item, bool) {
	if l.selected == noSelection {
		return Item{}, false
	}

	removed := l.items[l.selected]
	l.items = append(l.items[:l.selected], l.items[l.selected+1:]...)

	switch {
	case len(l.items) == 0:
		l.selected = noSelection
	case l.selected >= len(l.items):
		l.selected = len(l.items) - 1
	}
	l.AdjustViewport()

	return removed, true
}

// Append adds a new incomplete item at the end. The first item of an empty
// list becomes selected.
func (l *List) Append(description string) {
	l.items = append(l.items, NewItem(description))
	if l.selected == noSelection {
		l.selected = 0
		l.AdjustViewport()
	}
}

// Visible returns the items inside the viewport.
func (l *List) Visible() []Item {
	start := min(l.offset, len(l.items))
	end := min(len(l.items), l.offset+l.height)
	out := make([]Item, end-start)
	copy(out, l.items[start:end])
	return out
}

// SelectedRelative returns the selection relative to Visible.
func (l *List) SelectedRelative() (int, bool) {
	if l.selected == noSelection {
		return 0, false
	}
	return l.selected - l.offset, true
}
