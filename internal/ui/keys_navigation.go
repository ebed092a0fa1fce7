package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/paramdex/paramdex/internal/config"
)

// NavigationKeys defines key bindings for moving around the panes and the
// navigation history
type NavigationKeys struct {
	Back     key.Binding
	Down     key.Binding
	FirstRow key.Binding
	Forward  key.Binding
	LastRow  key.Binding
	Left     key.Binding
	NextPane key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	PrevPane key.Binding
	Right    key.Binding
	Up       key.Binding
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Back:     buildBinding("back", defaults, customKeys),
		Down:     buildBinding("down", defaults, customKeys),
		FirstRow: buildBinding("first_row", defaults, customKeys),
		Forward:  buildBinding("forward", defaults, customKeys),
		LastRow:  buildBinding("last_row", defaults, customKeys),
		Left:     buildBinding("left", defaults, customKeys),
		NextPane: buildBinding("next_pane", defaults, customKeys),
		PageDown: buildBinding("page_down", defaults, customKeys),
		PageUp:   buildBinding("page_up", defaults, customKeys),
		PrevPane: buildBinding("prev_pane", defaults, customKeys),
		Right:    buildBinding("right", defaults, customKeys),
		Up:       buildBinding("up", defaults, customKeys),
	}
}
