package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-runewidth"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/grid"
	"github.com/paramdex/paramdex/internal/linkrules"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/services"
	"github.com/paramdex/paramdex/internal/theme"
)

type uiState int

const (
	stateWorkspace uiState = iota
	stateBusy
	stateCommandPalette
	stateConfirming
	stateCreatingRow
	stateEditingCell
	stateExporting
	stateFinding
	stateGoingTo
	stateHelp
	stateNames
)

// confirmAction is what a confirmation dialog guards
type confirmAction int

const (
	confirmDeleteRow confirmAction = iota
	confirmRestore
	confirmQuit
)

const (
	titleBarHeight = 1
	footerHeight   = 3
)

// ModelOptions carries the services and settings the root model runs with
type ModelOptions struct {
	Archive         *services.ArchiveService
	DevMode         bool
	ErrorClearDelay time.Duration
	Metrics         *services.Metrics
	Names           *services.NamesService
	Rules           *linkrules.RuleSet
	Settings        *config.Settings
	Updates         *services.UpdateService
	ViewState       *services.ViewStateService
}

// Model is the root bubbletea model: the workspace plus the dialogs opened
// over it.
type Model struct {
	archive        *services.ArchiveService
	busy           string // operation running in the background
	commandPalette *CommandPalette
	confirm        confirmAction
	confirmValue   *bool // pointer so the value survives form updates
	devMode        bool
	dialog         *Dialog
	duplicating    bool
	editRequest    grid.EditRequestMsg
	errorManager   *ErrorManager
	findWhat       findTarget
	help           help.Model
	height         int
	importingNames bool
	keys           KeyMap
	names          *services.NamesService
	settings       *config.Settings
	state          uiState
	status         string
	update         *updateAvailableMsg
	updates        *services.UpdateService
	viewState      *services.ViewStateService
	width          int
	workspace      *Workspace
}

// NewModel creates the root model over the opened archive
func NewModel(opts ModelOptions) *Model {
	settings := opts.Settings
	if settings == nil {
		settings = &config.Settings{}
	}
	keys := NewKeyMap(settings.Keys)

	state := &services.ViewState{}
	if opts.ViewState != nil {
		state = opts.ViewState.Load(settings)
	}

	workspace := NewWorkspace(WorkspaceOptions{
		Catalog:         opts.Archive.Catalog(),
		Rules:           opts.Rules,
		History:         state.History,
		Anchors:         state.Anchors,
		Metrics:         opts.Metrics,
		Keys:            keys.GridKeyMap(),
		LinkClickAlways: settings.ShouldFollowLinksOnClick(),
		TooltipDelayMs:  settings.TooltipDelay(),
	})

	return &Model{
		archive:      opts.Archive,
		devMode:      opts.DevMode,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		help:         help.New(),
		keys:         keys,
		names:        opts.Names,
		settings:     settings,
		state:        stateWorkspace,
		updates:      opts.Updates,
		viewState:    opts.ViewState,
		workspace:    workspace,
	}
}

func (m *Model) Init() tea.Cmd {
	if !m.settings.ShouldCheckUpdates() {
		return nil
	}
	return checkForUpdate(m.updates)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
	}

	switch m.state {
	case stateWorkspace:
		return m.updateWorkspace(msg)
	case stateBusy:
		return m.updateBusy(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateConfirming:
		return m.updateConfirming(msg)
	case stateCreatingRow:
		return m.updateCreatingRow(msg)
	case stateEditingCell:
		return m.updateEditingCell(msg)
	case stateExporting:
		return m.updateExporting(msg)
	case stateFinding:
		return m.updateFinding(msg)
	case stateGoingTo:
		return m.updateGoingTo(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateNames:
		return m.updateNames(msg)
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.workspace.SetBounds(0, titleBarHeight, width, max(0, height-titleBarHeight-footerHeight))
}

// showError displays err in the footer until the clear delay passes
func (m *Model) showError(err error) tea.Cmd {
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

// showStatus displays an informational message in the status line
func (m *Model) showStatus(format string, args ...any) tea.Cmd {
	m.status = fmt.Sprintf(format, args...)
	return m.errorManager.ClearAfterDelay()
}

// openDialog shows content as a dialog in state
func (m *Model) openDialog(state uiState, title string, content tea.Model) tea.Cmd {
	m.dialog = NewDialog(title, content, m.devMode)
	m.state = state
	initCmd := m.dialog.Init()
	updated, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.dialog = updated.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) closeDialog() {
	m.dialog = nil
	m.state = stateWorkspace
}

// updateDialog forwards msg to the open dialog
func (m *Model) updateDialog(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.MouseMsg); ok {
		return nil
	}
	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)
	return cmd
}

func (m *Model) updateWorkspace(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		if m.archive.Dirty() {
			return m, m.openConfirm(confirmQuit, "Quit", "Discard unsaved changes?",
				"The archive has modifications that were not saved.", "Discard", "Cancel")
		}
		return m, m.quit()

	case ShowHelpMsg:
		return m, m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))

	case GoBackMsg:
		m.workspace.GoBack()
		return m, nil

	case GoForwardMsg:
		m.workspace.GoForward()
		return m, nil

	case NextPaneMsg:
		m.workspace.FocusNext(1)
		return m, nil

	case PrevPaneMsg:
		m.workspace.FocusNext(-1)
		return m, nil

	case EditCellMsg:
		return m, m.workspace.Grid(m.workspace.Focus()).TryEdit()

	case ResetCellMsg:
		return m, m.workspace.Grid(m.workspace.Focus()).TryReset()

	case FollowLinkMsg:
		m.workspace.FollowSelectedLink()
		return m, nil

	case YankMsg:
		return m, m.yank()

	case NewRowMsg:
		table := m.workspace.CurrentTable()
		if table == nil {
			return m, m.showError(domain.ErrTableNotFound)
		}
		var suggested int64
		if n := len(table.Rows); n > 0 {
			suggested = nextFreeID(table, table.Rows[n-1].ID)
		}
		m.duplicating = false
		return m, m.openDialog(stateCreatingRow, "New Row", NewRowForm(table, suggested, ""))

	case DuplicateRowMsg:
		table, row, ok := m.workspace.SelectedRowInfo()
		if !ok {
			return m, m.showError(domain.ErrRowNotFound)
		}
		m.duplicating = true
		title := fmt.Sprintf("Duplicate Row %d", row.ID)
		return m, m.openDialog(stateCreatingRow, title, NewRowForm(table, nextFreeID(table, row.ID), row.Name))

	case DeleteRowMsg:
		_, row, ok := m.workspace.SelectedRowInfo()
		if !ok {
			return m, m.showError(domain.ErrRowNotFound)
		}
		if !m.settings.ShouldVerifyRowDeletion() {
			return m, m.deleteRow()
		}
		return m, m.openConfirm(confirmDeleteRow, "Delete Row", fmt.Sprintf("Delete row %d %s?", row.ID, row.Name),
			"The row is removed from the table. Restore from backup to undo after saving.", "Delete", "Keep")

	case FindRowMsg:
		m.findWhat = findRows
		return m, m.openDialog(stateFinding, "Find Row",
			NewPromptForm("Row name", "Case-insensitive substring", m.workspace.findPattern, nil))

	case FindCellMsg:
		m.findWhat = findCells
		return m, m.openDialog(stateFinding, "Find Field",
			NewPromptForm("Field name", "Case-insensitive substring", m.workspace.findPattern, nil))

	case FindNextMsg:
		if err := m.workspace.FindNext(); err != nil {
			return m, m.showError(err)
		}
		return m, nil

	case GotoIDMsg:
		table := m.workspace.CurrentTable()
		if table == nil {
			return m, m.showError(domain.ErrTableNotFound)
		}
		validate := func(s string) error {
			_, err := parseRowID(s)
			return err
		}
		return m, m.openDialog(stateGoingTo, "Go To Row",
			NewPromptForm("Row ID", "Jump to a row of "+table.Name, "", validate))

	case SaveMsg:
		m.busy = "Saving " + m.archive.Catalog().Path + "…"
		m.state = stateBusy
		return m, saveArchive(m.archive)

	case RestoreMsg:
		if !m.archive.HasBackup() {
			return m, m.showError(domain.ErrBackupMissing)
		}
		return m, m.openConfirm(confirmRestore, "Restore", "Restore the archive from its backup?",
			"Every change since the last save is lost.", "Restore", "Cancel")

	case ExportMsg:
		var selected []string
		if table := m.workspace.CurrentTable(); table != nil {
			selected = []string{table.Name}
		}
		tables := make([]string, len(m.workspace.Catalog().Tables))
		for i, t := range m.workspace.Catalog().Tables {
			tables[i] = t.Name
		}
		return m, m.openDialog(stateExporting, "Export",
			NewExportForm(m.settings.ResolvedExportDir(), tables, selected))

	case ImportNamesMsg, ExportNamesMsg:
		table := m.workspace.CurrentTable()
		if table == nil {
			return m, m.showError(domain.ErrTableNotFound)
		}
		_, m.importingNames = msg.(ImportNamesMsg)
		title := "Export Names"
		if m.importingNames {
			title = "Import Names"
		}
		return m, m.openDialog(stateNames, title,
			NewNamesForm(table.Name, m.names.DefaultPath(table.Name), m.importingNames))

	case grid.EditRequestMsg:
		m.editRequest = msg
		label, validate := m.workspace.editContext(msg)
		return m, m.openDialog(stateEditingCell, "Edit", NewCellEditForm(label, msg, validate))

	case grid.EditFailedMsg:
		return m, m.showError(msg.Err)

	case updateAvailableMsg:
		m.update = &msg
		return m, nil

	case clearErrorMsg:
		m.errorManager.ClearError()
		m.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit) {
			return m, m.quit()
		}
		if action := m.keyAction(msg); action != nil {
			return m.updateWorkspace(action)
		}
		if key.Matches(msg, m.keys.Application.CommandPalette) {
			return m, m.openCommandPalette()
		}
	}

	return m, m.workspace.Update(msg)
}

// keyAction maps application level keys to their action message
func (m *Model) keyAction(msg tea.KeyMsg) tea.Msg {
	bindings := []struct {
		binding key.Binding
		action  tea.Msg
	}{
		{m.keys.Application.Quit, QuitMsg{}},
		{m.keys.Application.Help, ShowHelpMsg{}},
		{m.keys.Navigation.Back, GoBackMsg{}},
		{m.keys.Navigation.Forward, GoForwardMsg{}},
		{m.keys.Navigation.NextPane, NextPaneMsg{}},
		{m.keys.Navigation.PrevPane, PrevPaneMsg{}},
		{m.keys.Editing.Yank, YankMsg{}},
		{m.keys.Editing.NewRow, NewRowMsg{}},
		{m.keys.Editing.DuplicateRow, DuplicateRowMsg{}},
		{m.keys.Editing.DeleteRow, DeleteRowMsg{}},
		{m.keys.Search.FindRow, FindRowMsg{}},
		{m.keys.Search.FindCell, FindCellMsg{}},
		{m.keys.Search.FindNext, FindNextMsg{}},
		{m.keys.Search.GotoID, GotoIDMsg{}},
		{m.keys.Archive.Save, SaveMsg{}},
		{m.keys.Archive.Restore, RestoreMsg{}},
		{m.keys.Archive.Export, ExportMsg{}},
		{m.keys.Archive.ImportNames, ImportNamesMsg{}},
		{m.keys.Archive.ExportNames, ExportNamesMsg{}},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return nil
}

// quit stores the navigation state and exits
func (m *Model) quit() tea.Cmd {
	if m.viewState != nil {
		state := &services.ViewState{History: m.workspace.History(), Anchors: m.workspace.Anchors()}
		if err := m.viewState.Store(state); err != nil {
			logging.Logger.Warn("Failed to store view state", "error", err)
		}
	}
	return tea.Quit
}

func (m *Model) yank() tea.Cmd {
	text, ok := m.workspace.SelectedText()
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return m.showError(fmt.Errorf("failed to copy to clipboard: %w", err))
	}
	return m.showStatus("Copied %q", text)
}

func (m *Model) deleteRow() tea.Cmd {
	if err := m.workspace.DeleteSelectedRow(); err != nil {
		return m.showError(fmt.Errorf("failed to delete row: %w", err))
	}
	return nil
}

func (m *Model) openCommandPalette() tea.Cmd {
	var context string
	if table, row, ok := m.workspace.SelectedRowInfo(); ok {
		context = fmt.Sprintf("%s / %d", table.Name, row.ID)
	} else if table != nil {
		context = table.Name
	}
	m.commandPalette = NewCommandPalette(context, m.keys, m.settings.Keys)
	m.state = stateCommandPalette
	initCmd := m.commandPalette.Init()
	_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.MouseMsg); ok {
		return m, nil
	}
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if !m.commandPalette.Completed {
		return m, cmd
	}
	result := m.commandPalette.Result
	m.state = stateWorkspace
	m.commandPalette = nil
	if result.Cancelled || result.Action == nil {
		return m, nil
	}

	table, _, hasRow := m.workspace.SelectedRowInfo()
	action := NewActionDispatcher(table != nil, hasRow).Dispatch(*result.Action)
	if action == nil {
		return m, m.showError(fmt.Errorf("%s needs a selection", result.Action.Help))
	}
	return m.updateWorkspace(action)
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.updateDialog(msg)
	if content, ok := m.dialog.Content().(*HelpScreen); ok && content.Completed {
		m.closeDialog()
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateEditingCell(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.updateDialog(msg)
	content, ok := m.dialog.Content().(*CellEditForm)
	if !ok || !content.Completed {
		return m, cmd
	}
	m.closeDialog()
	if content.Cancelled {
		return m, nil
	}
	req := m.editRequest
	if err := req.Grid.ApplyEdit(req.Row, req.Col, content.Value()); err != nil {
		return m, m.showError(fmt.Errorf("failed to edit cell: %w", err))
	}
	m.workspace.Invalidate()
	return m, nil
}

func (m *Model) updateCreatingRow(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.updateDialog(msg)
	content, ok := m.dialog.Content().(*RowForm)
	if !ok || !content.Completed {
		return m, cmd
	}
	m.closeDialog()
	if content.Cancelled {
		return m, nil
	}

	result := content.Result()
	var err error
	if m.duplicating {
		err = m.workspace.DuplicateRow(result.ID, result.Name)
	} else {
		err = m.workspace.CreateRow(result.ID, result.Name)
	}
	if err != nil {
		return m, m.showError(fmt.Errorf("failed to create row: %w", err))
	}
	return m, nil
}

func (m *Model) updateFinding(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.updateDialog(msg)
	content, ok := m.dialog.Content().(*PromptForm)
	if !ok || !content.Completed {
		return m, cmd
	}
	m.closeDialog()
	if content.Cancelled || content.Value() == "" {
		return m, nil
	}

	var err error
	if m.findWhat == findCells {
		err = m.workspace.FindCell(content.Value())
	} else {
		err = m.workspace.FindRow(content.Value())
	}
	if err != nil {
		return m, m.showError(err)
	}
	return m, nil
}

func (m *Model) updateGoingTo(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.updateDialog(msg)
	content, ok := m.dialog.Content().(*PromptForm)
	if !ok || !content.Completed {
		return m, cmd
	}
	m.closeDialog()
	if content.Cancelled {
		return m, nil
	}

	id, err := parseRowID(content.Value())
	if err == nil {
		err = m.workspace.GotoID(id)
	}
	if err != nil {
		return m, m.showError(err)
	}
	return m, nil
}

func (m *Model) updateNames(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.updateDialog(msg)
	content, ok := m.dialog.Content().(*NamesForm)
	if !ok || !content.Completed {
		return m, cmd
	}
	m.closeDialog()
	if content.Cancelled {
		return m, nil
	}

	table := m.workspace.CurrentTable()
	result := content.Result()
	if m.importingNames {
		n, err := m.names.Import(table, result.Path, result.Replace)
		if err != nil {
			return m, m.showError(err)
		}
		m.workspace.Invalidate()
		return m, m.showStatus("Imported %d names into %s", n, table.Name)
	}
	n, err := m.names.Export(table, result.Path)
	if err != nil {
		return m, m.showError(err)
	}
	return m, m.showStatus("Exported %d names to %s", n, result.Path)
}

func (m *Model) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.updateDialog(msg)
	content, ok := m.dialog.Content().(*ExportForm)
	if !ok || !content.Completed {
		return m, cmd
	}
	m.closeDialog()
	if content.Cancelled {
		return m, nil
	}

	result := content.Result()
	m.busy = "Exporting to " + result.Destination + "…"
	m.state = stateBusy
	return m, exportTables(m.archive, result.Destination, result.Tables)
}

// openConfirm shows a yes/no dialog guarding action
func (m *Model) openConfirm(action confirmAction, title, question, description, yes, no string) tea.Cmd {
	confirmed := false
	m.confirm = action
	m.confirmValue = &confirmed
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Description(description).
				Value(m.confirmValue).
				Affirmative(yes).
				Negative(no),
		),
	)
	return m.openDialog(stateConfirming, title, form)
}

func (m *Model) updateConfirming(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc || key.Matches(keyMsg, m.keys.Application.ForceQuit) {
			m.closeDialog()
			m.confirmValue = nil
			return m, nil
		}
	}

	cmd := m.updateDialog(msg)
	form, ok := m.dialog.Content().(*huh.Form)
	if !ok || form.State != huh.StateCompleted {
		return m, cmd
	}

	confirmed := *m.confirmValue
	m.closeDialog()
	m.confirmValue = nil
	if !confirmed {
		return m, nil
	}

	switch m.confirm {
	case confirmDeleteRow:
		return m, m.deleteRow()
	case confirmRestore:
		m.busy = "Restoring from backup…"
		m.state = stateBusy
		return m, restoreArchive(m.archive)
	case confirmQuit:
		return m, m.quit()
	}
	return m, nil
}

// updateBusy waits for a background archive operation. Input is ignored so
// the catalog is not changed while it is being written.
func (m *Model) updateBusy(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.state, m.busy = stateWorkspace, ""
		if msg.err != nil {
			return m, m.showError(msg.err)
		}
		return m, m.showStatus("Saved %s", m.archive.Catalog().Path)

	case restoredMsg:
		m.state, m.busy = stateWorkspace, ""
		if msg.err != nil {
			return m, m.showError(msg.err)
		}
		m.workspace.SetCatalog(msg.catalog)
		return m, m.showStatus("Restored %s from backup", msg.catalog.Path)

	case exportedMsg:
		m.state, m.busy = stateWorkspace, ""
		if msg.err != nil {
			return m, m.showError(msg.err)
		}
		return m, m.showStatus("Exported %d files", len(msg.files))

	case updateAvailableMsg:
		m.update = &msg
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case stateWorkspace, stateBusy:
		return m.mainView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			return bottomAnchoredOverlay(m.mainView(), m.commandPalette.View(), m.width, m.height)
		}
	default:
		if m.dialog != nil {
			return m.dialog.View()
		}
	}
	return ""
}

func (m *Model) mainView() string {
	return m.titleBar() + "\n" + m.workspace.View() + "\n" + m.footer()
}

func (m *Model) titleBar() string {
	bar := theme.AppNameStyle.Render("Paramdex") + " " + theme.MutedStyle.Render(m.archive.Catalog().Path)
	if m.archive.Dirty() {
		bar += " " + theme.DirtyStyle.Render("● modified")
	}
	if m.update != nil {
		bar += "  " + theme.UpdateStyle.Render(fmt.Sprintf("%s available: %s", m.update.version, m.update.url))
	}
	return bar
}

// footer renders the status line and two lines holding the error, the
// tooltip or the short help
func (m *Model) footer() string {
	back := theme.HistoryUnavailableStyle.Render("◀")
	if m.workspace.CanGoBack() {
		back = theme.HistoryAvailableStyle.Render("◀")
	}
	forward := theme.HistoryUnavailableStyle.Render("▶")
	if m.workspace.CanGoForward() {
		forward = theme.HistoryAvailableStyle.Render("▶")
	}
	status := back + " " + forward
	switch {
	case m.busy != "":
		status += "  " + theme.UpdateStyle.Render(m.busy)
	case m.status != "":
		status += "  " + theme.NormalStyle.Render(m.status)
	}

	var body string
	if m.errorManager.HasError() {
		body = theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	} else if tip, ok := m.workspace.Tooltip(); ok {
		body = m.renderTooltip(tip)
	} else {
		body = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	if strings.Count(body, "\n") == 0 {
		body += "\n"
	}
	return status + "\n" + body
}

// renderTooltip fits a tooltip into the two footer lines
func (m *Model) renderTooltip(tip string) string {
	lines := strings.SplitN(tip, "\n", 3)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	width := max(m.width-2, 10)
	for i, line := range lines {
		lines[i] = theme.TooltipStyle.Render(runewidth.Truncate(line, width, "…"))
	}
	return strings.Join(lines, "\n")
}

// ShowStartupWarnings displays problems found while opening the archive
func (m *Model) ShowStartupWarnings(warnings []error) {
	if len(warnings) > 0 {
		m.errorManager.SetError(errors.Join(warnings...))
	}
}
