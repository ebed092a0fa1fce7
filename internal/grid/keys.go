package grid

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings a focused grid reacts to
type KeyMap struct {
	Down       key.Binding
	Edit       key.Binding
	First      key.Binding
	FollowLink key.Binding
	Last       key.Binding
	Left       key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	Reset      key.Binding
	Right      key.Binding
	Up         key.Binding
}

// DefaultKeyMap returns the built-in grid bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next row")),
		Edit:       key.NewBinding(key.WithKeys("enter", "f2"), key.WithHelp("enter/f2", "edit cell")),
		First:      key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "first row")),
		FollowLink: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "follow link")),
		Last:       key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "last row")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous column")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		Reset:      key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "reset cell")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next column")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous row")),
	}
}
