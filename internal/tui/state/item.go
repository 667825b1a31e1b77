package state

// Item is a single to-do entry.
type Item struct {
	description string
	completed   bool
}

// NewItem creates an incomplete item.
func NewItem(description string) Item {
	return Item{description: description}
}

// Description returns the item text.
func (i Item) Description() string {
	return i.description
}

// Completed reports whether the item is marked done.
func (i Item) Completed() bool {
	return i.completed
}

// String renders the item with its checkbox glyph.
func (i Item) String() string {
	if i.completed {
		return "✓ " + i.description
	}
	return "☐ " + i.description
}
