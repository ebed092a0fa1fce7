package ui

import tea "github.com/charmbracelet/bubbletea"

// ActionDispatcher maps key definitions to UI messages, keeping the command
// palette decoupled from specific message types.
type ActionDispatcher struct {
	hasTable bool
	hasRow   bool
}

// NewActionDispatcher creates a dispatcher for the current selection
func NewActionDispatcher(hasTable, hasRow bool) *ActionDispatcher {
	return &ActionDispatcher{hasTable: hasTable, hasRow: hasRow}
}

// Dispatch returns the message for a key definition, or nil when the action
// needs a selection that is missing.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}
	switch def.Msg.(type) {
	case DuplicateRowMsg, DeleteRowMsg:
		if !d.hasRow {
			return nil
		}
	case NewRowMsg, FindRowMsg, FindCellMsg, GotoIDMsg, ImportNamesMsg, ExportNamesMsg:
		if !d.hasTable {
			return nil
		}
	}
	return def.Msg
}
