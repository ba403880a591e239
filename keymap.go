package hlist

import "github.com/ayn2op/hlist/keybind"

// KeyMap holds the key bindings of a [HorizontalList]. It also satisfies the
// key map expected by the help bar.
type KeyMap struct {
	ScrollLeft  keybind.Keybind
	ScrollRight keybind.Keybind
	PageLeft    keybind.Keybind
	PageRight   keybind.Keybind
	Start       keybind.Keybind
	End         keybind.Keybind
	Activate    keybind.Keybind
}

// DefaultKeyMap returns the default list bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollLeft:  keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "left")),
		ScrollRight: keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "right")),
		PageLeft:    keybind.NewKeybind(keybind.WithKeys("pgup"), keybind.WithHelp("pgup", "page left")),
		PageRight:   keybind.NewKeybind(keybind.WithKeys("pgdn"), keybind.WithHelp("pgdn", "page right")),
		Start:       keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "first")),
		End:         keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "last")),
		Activate:    keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "open")),
	}
}

// ShortHelp returns the bindings shown in the one line help.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.ScrollLeft, k.ScrollRight, k.Activate}
}

// FullHelp returns every binding, grouped in columns.
func (k KeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.ScrollLeft, k.ScrollRight},
		{k.PageLeft, k.PageRight},
		{k.Start, k.End, k.Activate},
	}
}
