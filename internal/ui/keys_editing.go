package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/paramdex/paramdex/internal/config"
)

// EditingKeys defines key bindings that change cells and rows
type EditingKeys struct {
	DeleteRow    key.Binding
	DuplicateRow key.Binding
	Edit         key.Binding
	FollowLink   key.Binding
	NewRow       key.Binding
	Reset        key.Binding
	Yank         key.Binding
}

func newEditingKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) EditingKeys {
	return EditingKeys{
		DeleteRow:    buildBinding("delete_row", defaults, customKeys),
		DuplicateRow: buildBinding("duplicate_row", defaults, customKeys),
		Edit:         buildBinding("edit", defaults, customKeys),
		FollowLink:   buildBinding("follow_link", defaults, customKeys),
		NewRow:       buildBinding("new_row", defaults, customKeys),
		Reset:        buildBinding("reset", defaults, customKeys),
		Yank:         buildBinding("yank", defaults, customKeys),
	}
}

// SearchKeys defines key bindings for finding rows and fields
type SearchKeys struct {
	FindCell key.Binding
	FindNext key.Binding
	FindRow  key.Binding
	GotoID   key.Binding
}

func newSearchKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) SearchKeys {
	return SearchKeys{
		FindCell: buildBinding("find_cell", defaults, customKeys),
		FindNext: buildBinding("find_next", defaults, customKeys),
		FindRow:  buildBinding("find_row", defaults, customKeys),
		GotoID:   buildBinding("goto_id", defaults, customKeys),
	}
}

// ArchiveKeys defines key bindings for archive and names file operations
type ArchiveKeys struct {
	Export      key.Binding
	ExportNames key.Binding
	ImportNames key.Binding
	Restore     key.Binding
	Save        key.Binding
}

func newArchiveKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ArchiveKeys {
	return ArchiveKeys{
		Export:      buildBinding("export", defaults, customKeys),
		ExportNames: buildBinding("export_names", defaults, customKeys),
		ImportNames: buildBinding("import_names", defaults, customKeys),
		Restore:     buildBinding("restore", defaults, customKeys),
		Save:        buildBinding("save", defaults, customKeys),
	}
}
