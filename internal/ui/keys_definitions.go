package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
}

// AllKeyDefinitions contains all configurable key bindings.
// If IsPaletteAction is true, the key appears in the command palette.
// If Msg is set, the action can be dispatched via the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"P", "ctrl+p"}, Help: "command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?", "f1"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Navigation keys
	{Name: "back", Defaults: []string{"backspace", "alt+left"}, Help: "go back", IsPaletteAction: true, Msg: GoBackMsg{}},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next row"},
	{Name: "first_row", Defaults: []string{"ctrl+home", "home"}, Help: "first row"},
	{Name: "forward", Defaults: []string{"alt+right"}, Help: "go forward", IsPaletteAction: true, Msg: GoForwardMsg{}},
	{Name: "last_row", Defaults: []string{"ctrl+end", "end"}, Help: "last row"},
	{Name: "left", Defaults: []string{"left"}, Help: "previous column"},
	{Name: "next_pane", Defaults: []string{"tab"}, Help: "next pane", Msg: NextPaneMsg{}},
	{Name: "page_down", Defaults: []string{"pgdown"}, Help: "page down"},
	{Name: "page_up", Defaults: []string{"pgup"}, Help: "page up"},
	{Name: "prev_pane", Defaults: []string{"shift+tab"}, Help: "previous pane", Msg: PrevPaneMsg{}},
	{Name: "right", Defaults: []string{"right"}, Help: "next column"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous row"},

	// Editing keys
	{Name: "delete_row", Defaults: []string{"x"}, Help: "delete row", IsPaletteAction: true, Msg: DeleteRowMsg{}},
	{Name: "duplicate_row", Defaults: []string{"d"}, Help: "duplicate row", IsPaletteAction: true, Msg: DuplicateRowMsg{}},
	{Name: "edit", Defaults: []string{"enter", "f2"}, Help: "edit cell", IsPaletteAction: true, Msg: EditCellMsg{}},
	{Name: "follow_link", Defaults: []string{"l"}, Help: "follow link", IsPaletteAction: true, Msg: FollowLinkMsg{}},
	{Name: "new_row", Defaults: []string{"a"}, Help: "new row", IsPaletteAction: true, Msg: NewRowMsg{}},
	{Name: "reset", Defaults: []string{"delete"}, Help: "reset cell to default", IsPaletteAction: true, Msg: ResetCellMsg{}},
	{Name: "yank", Defaults: []string{"y"}, Help: "copy cell text", IsPaletteAction: true, Msg: YankMsg{}},

	// Search keys
	{Name: "find_cell", Defaults: []string{"f"}, Help: "find field by name", IsPaletteAction: true, Msg: FindCellMsg{}},
	{Name: "find_next", Defaults: []string{"n"}, Help: "find next", IsPaletteAction: true, Msg: FindNextMsg{}},
	{Name: "find_row", Defaults: []string{"/"}, Help: "find row by name", IsPaletteAction: true, Msg: FindRowMsg{}},
	{Name: "goto_id", Defaults: []string{"g"}, Help: "go to row ID", IsPaletteAction: true, Msg: GotoIDMsg{}},

	// Archive keys
	{Name: "export", Defaults: []string{"E"}, Help: "export tables", IsPaletteAction: true, Msg: ExportMsg{}},
	{Name: "export_names", Defaults: []string{"O"}, Help: "export row names", IsPaletteAction: true, Msg: ExportNamesMsg{}},
	{Name: "import_names", Defaults: []string{"I"}, Help: "import row names", IsPaletteAction: true, Msg: ImportNamesMsg{}},
	{Name: "restore", Defaults: []string{"R"}, Help: "restore from backup", IsPaletteAction: true, Msg: RestoreMsg{}},
	{Name: "save", Defaults: []string{"ctrl+s"}, Help: "save archive", IsPaletteAction: true, Msg: SaveMsg{}},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
