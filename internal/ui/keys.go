package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/grid"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Archive     ArchiveKeys
	Editing     EditingKeys
	Navigation  NavigationKeys
	Search      SearchKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Archive:     newArchiveKeys(defaults, customKeys),
		Editing:     newEditingKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
		Search:      newSearchKeys(defaults, customKeys),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.NextPane,
		k.Editing.Edit,
		k.Editing.FollowLink,
		k.Navigation.Back,
		k.Search.FindRow,
		k.Archive.Save,
		k.Application.Help,
		k.Application.Quit,
	}
}

// GridKeyMap returns the bindings the panes react to
func (k KeyMap) GridKeyMap() grid.KeyMap {
	return grid.KeyMap{
		Down:       k.Navigation.Down,
		Edit:       k.Editing.Edit,
		First:      k.Navigation.FirstRow,
		FollowLink: k.Editing.FollowLink,
		Last:       k.Navigation.LastRow,
		Left:       k.Navigation.Left,
		PageDown:   k.Navigation.PageDown,
		PageUp:     k.Navigation.PageUp,
		Reset:      k.Editing.Reset,
		Right:      k.Navigation.Right,
		Up:         k.Navigation.Up,
	}
}
