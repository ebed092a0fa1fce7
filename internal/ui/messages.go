package ui

import "github.com/paramdex/paramdex/internal/domain"

// Action messages. Key presses and palette entries both produce these; Model
// handles them in updateWorkspace and takes the matching action.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// GoBackMsg moves to the previous history entry
type GoBackMsg struct{}

// GoForwardMsg moves to the next history entry
type GoForwardMsg struct{}

// NextPaneMsg moves focus to the next pane
type NextPaneMsg struct{}

// PrevPaneMsg moves focus to the previous pane
type PrevPaneMsg struct{}

// Editing messages

// EditCellMsg starts editing the selected cell of the focused pane
type EditCellMsg struct{}

// ResetCellMsg restores the selected cell to its default
type ResetCellMsg struct{}

// FollowLinkMsg follows the link of the selected cell
type FollowLinkMsg struct{}

// YankMsg copies the selected cell text to the clipboard
type YankMsg struct{}

// NewRowMsg requests the new row dialog
type NewRowMsg struct{}

// DuplicateRowMsg requests the duplicate row dialog
type DuplicateRowMsg struct{}

// DeleteRowMsg requests deleting the selected row
type DeleteRowMsg struct{}

// Search messages

// FindRowMsg requests the find row dialog
type FindRowMsg struct{}

// FindCellMsg requests the find field dialog
type FindCellMsg struct{}

// FindNextMsg repeats the last find
type FindNextMsg struct{}

// GotoIDMsg requests the goto dialog
type GotoIDMsg struct{}

// Archive messages

// SaveMsg writes the catalog back to the archive
type SaveMsg struct{}

// RestoreMsg requests restoring the archive from its backup
type RestoreMsg struct{}

// ExportMsg requests the export dialog
type ExportMsg struct{}

// ImportNamesMsg requests the import names dialog for the current table
type ImportNamesMsg struct{}

// ExportNamesMsg requests the export names dialog for the current table
type ExportNamesMsg struct{}

// Results of asynchronous archive operations

// savedMsg reports the outcome of a save
type savedMsg struct {
	err error
}

// restoredMsg reports the outcome of a restore
type restoredMsg struct {
	catalog *domain.Catalog
	err     error
}

// exportedMsg reports the outcome of an export
type exportedMsg struct {
	files []string
	err   error
}

// updateAvailableMsg reports a newer release
type updateAvailableMsg struct {
	version string
	url     string
}
