package state

// Binding is a help entry: the keys to press and what they do.
type Binding struct {
	Key  string
	Help string
}

// KeymapData holds the help entries for every binding. Bindings themselves
// are fixed; see logic.Handler.
type KeymapData struct {
	// Normal mode
	Quit     Binding
	New      Binding
	Navigate Binding
	Delete   Binding
	Complete Binding
	Copy     Binding

	// Editing mode
	Back Binding
	Add  Binding
}

// DefaultKeymap returns the help entries shown in the footer.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Quit:     Binding{Key: "<Esc/q>", Help: "Exit"},
		New:      Binding{Key: "<e/E>", Help: "New"},
		Navigate: Binding{Key: "<Up/Down>", Help: "Navigate"},
		Delete:   Binding{Key: "<D>", Help: "Delete"},
		Complete: Binding{Key: "<Enter>", Help: "Mark Completed"},
		Copy:     Binding{Key: "<y>", Help: "Copy"},

		Back: Binding{Key: "<Esc>", Help: "Go back"},
		Add:  Binding{Key: "<Enter>", Help: "Add"},
	}
}

// HelpFor returns the ordered help entries for a mode.
func (k KeymapData) HelpFor(m Mode) []Binding {
	switch m {
	case ModeEditing:
		return []Binding{k.Back, k.Add}
	case ModeNormal:
		return []Binding{k.Quit, k.New, k.Navigate, k.Delete, k.Complete, k.Copy}
	default:
		return nil
	}
}
