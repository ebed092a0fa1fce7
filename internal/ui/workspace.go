package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/grid"
	"github.com/paramdex/paramdex/internal/history"
	"github.com/paramdex/paramdex/internal/linkrules"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/services"
	"github.com/paramdex/paramdex/internal/theme"
)

// Pane identifies one of the three grids
type Pane int

const (
	PaneTables Pane = iota
	PaneRows
	PaneCells
)

const paneCount = 3

func (p Pane) String() string {
	switch p {
	case PaneTables:
		return "Tables"
	case PaneRows:
		return "Rows"
	}
	return "Cells"
}

// paneTitleHeight is the line above each grid holding the pane title
const paneTitleHeight = 1

// findTarget is what the last find searched
type findTarget int

const (
	findNone findTarget = iota
	findRows
	findCells
)

// Workspace coordinates the tables, rows and cells grids. Selection changes
// flow through it: a host reports a change, the workspace records it in the
// current history entry and rebinds the panes below. History moves rebind
// all three panes from the restored entry.
type Workspace struct {
	catalog  *domain.Catalog
	resolver *linkrules.Resolver
	history  *history.History
	anchors  *history.Anchors
	metrics  *services.Metrics

	linkClickAlways bool

	tables *grid.Grid
	rows   *grid.Grid
	cells  *grid.Grid

	tablesHost *TablesHost
	rowsHost   *RowsHost
	cellsHost  *CellsHost

	focus    Pane
	tableIdx int

	canBack    bool
	canForward bool

	findPattern string
	findWhat    findTarget

	x, y, width, height int
}

// WorkspaceOptions configures a Workspace
type WorkspaceOptions struct {
	Catalog         *domain.Catalog
	Rules           *linkrules.RuleSet
	History         *history.History
	Anchors         *history.Anchors
	Metrics         *services.Metrics
	Keys            grid.KeyMap
	LinkClickAlways bool
	TooltipDelayMs  int
}

// NewWorkspace builds the three panes and binds them to the current
// history entry.
func NewWorkspace(opts WorkspaceOptions) *Workspace {
	if opts.History == nil {
		opts.History = history.New()
	}
	if opts.Anchors == nil {
		opts.Anchors = history.NewAnchors()
	}
	if opts.Catalog == nil {
		opts.Catalog = domain.NewCatalog("", nil)
	}

	w := &Workspace{
		catalog:         opts.Catalog,
		resolver:        linkrules.NewResolver(opts.Rules, opts.Catalog),
		history:         opts.History,
		anchors:         opts.Anchors,
		metrics:         opts.Metrics,
		linkClickAlways: opts.LinkClickAlways,
		tables:          grid.New(opts.Keys),
		rows:            grid.New(opts.Keys),
		cells:           grid.New(opts.Keys),
		tableIdx:        -1,
	}
	w.tablesHost = &TablesHost{w: w}
	w.rowsHost = &RowsHost{w: w}
	w.cellsHost = &CellsHost{w: w}

	delay := time.Duration(opts.TooltipDelayMs) * time.Millisecond
	for _, g := range w.grids() {
		g.SetTooltipDelay(delay)
	}

	w.history.SetListener(w)
	w.canBack, w.canForward = w.history.CanGoBack(), w.history.CanGoForward()

	w.cells.SetHost(w.cellsHost)
	w.rows.SetHost(w.rowsHost)
	w.tables.SetHost(w.tablesHost)
	w.SetFocus(PaneTables)
	return w
}

func (w *Workspace) grids() [paneCount]*grid.Grid {
	return [paneCount]*grid.Grid{w.tables, w.rows, w.cells}
}

func (w *Workspace) gridFor(p Pane) *grid.Grid {
	return w.grids()[p]
}

// Catalog returns the catalog on display
func (w *Workspace) Catalog() *domain.Catalog { return w.catalog }

// History returns the navigation timeline
func (w *Workspace) History() *history.History { return w.history }

// Anchors returns the remembered scroll positions
func (w *Workspace) Anchors() *history.Anchors { return w.anchors }

// Grid returns the grid of a pane
func (w *Workspace) Grid(p Pane) *grid.Grid { return w.gridFor(p) }

// OnCurrentChanged implements history.Listener
func (w *Workspace) OnCurrentChanged() {
	logging.Logger.Debug("Restoring history entry", "index", w.history.Index())
	w.rebind()
}

// OnTimelineChanged implements history.Listener
func (w *Workspace) OnTimelineChanged() {
	w.canBack, w.canForward = w.history.CanGoBack(), w.history.CanGoForward()
}

func (w *Workspace) CanGoBack() bool    { return w.canBack }
func (w *Workspace) CanGoForward() bool { return w.canForward }

// GoBack returns to the previous history entry
func (w *Workspace) GoBack() bool { return w.history.GoBack() }

// GoForward moves to the next history entry
func (w *Workspace) GoForward() bool { return w.history.GoForward() }

// rebind re-initializes all panes from the current history entry
func (w *Workspace) rebind() {
	resume := w.anchors.Suspend()
	w.tableIdx = -1
	w.tables.InvalidateDataSource()
	resume()
	w.storeAnchors()
}

// SetCatalog swaps the catalog, for example after restoring a backup. The
// link rules are kept.
func (w *Workspace) SetCatalog(catalog *domain.Catalog) {
	w.catalog = catalog
	w.resolver = linkrules.NewResolver(w.resolver.Rules(), catalog)
	w.rebind()
}

// Invalidate must be called after the catalog was changed outside the grids
func (w *Workspace) Invalidate() {
	w.resolver.Invalidate()
	for _, g := range w.grids() {
		g.Refresh()
	}
}

// tableChanged binds the rows pane to the table at index
func (w *Workspace) tableChanged(index int) {
	if index == w.tableIdx && w.rowsHost.table == w.catalog.Table(index) {
		return
	}
	w.tableIdx = index
	table := w.catalog.Table(index)
	name := ""
	if table != nil {
		name = table.Name
	}
	logging.Logger.Debug("Table selected", "index", index, "table", name)

	w.anchors.SetTable(name)
	resume := w.anchors.Suspend()
	w.rowsHost.bind(table, index)
	w.cellsHost.bindTable(table, index)
	w.cells.InvalidateDataSource()
	w.rows.InvalidateDataSource()
	resume()
	w.storeAnchors()
}

// rowChanged binds the cells pane to the row at index of the current table
func (w *Workspace) rowChanged(index int) {
	var row *domain.Row
	if t := w.rowsHost.table; t != nil && index >= 0 && index < len(t.Rows) {
		row = t.Rows[index]
	}
	if row == w.cellsHost.row {
		return
	}
	resume := w.anchors.Suspend()
	w.cellsHost.bindRow(row)
	w.cells.InvalidateDataSource()
	resume()
	w.anchors.StoreCellTop(w.cells.ScrollTop())
}

func (w *Workspace) storeAnchors() {
	w.anchors.StoreRowTop(w.rows.ScrollTop())
	w.anchors.StoreCellTop(w.cells.ScrollTop())
}

// CurrentTable returns the table shown in the rows pane
func (w *Workspace) CurrentTable() *domain.Table { return w.rowsHost.table }

// CurrentTableIndex returns the catalog index of the current table, or -1
func (w *Workspace) CurrentTableIndex() int { return w.tableIdx }

// CurrentRow returns the row shown in the cells pane
func (w *Workspace) CurrentRow() *domain.Row { return w.cellsHost.row }

// Focus returns the focused pane
func (w *Workspace) Focus() Pane { return w.focus }

// SetFocus moves keyboard focus to a pane
func (w *Workspace) SetFocus(p Pane) {
	w.focus = p
	for i, g := range w.grids() {
		if Pane(i) == p {
			g.Focus()
		} else {
			g.Blur()
		}
	}
}

// FocusNext cycles focus forward (delta 1) or backward (delta -1)
func (w *Workspace) FocusNext(delta int) {
	w.SetFocus(Pane((int(w.focus) + delta + paneCount) % paneCount))
}

// SetBounds lays the panes out side by side
func (w *Workspace) SetBounds(x, y, width, height int) {
	w.x, w.y, w.width, w.height = x, y, width, height
	widths := w.paneWidths()
	px := x
	for i, g := range w.grids() {
		g.SetBounds(px, y+paneTitleHeight, widths[i], height-paneTitleHeight)
		px += widths[i]
	}
}

func (w *Workspace) paneWidths() [paneCount]int {
	tables := w.width / 4
	rows := w.width * 3 / 10
	return [paneCount]int{tables, rows, max(0, w.width-tables-rows)}
}

// Update routes keys to the focused grid and mouse events to all grids. A
// click focuses the pane it lands on.
func (w *Workspace) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return w.gridFor(w.focus).Update(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for i, g := range w.grids() {
				if g.Contains(msg.X, msg.Y) {
					w.SetFocus(Pane(i))
				}
			}
		}
		var cmds []tea.Cmd
		for _, g := range w.grids() {
			cmds = append(cmds, g.Update(msg))
		}
		return tea.Batch(cmds...)
	}
	var cmds []tea.Cmd
	for _, g := range w.grids() {
		cmds = append(cmds, g.Update(msg))
	}
	return tea.Batch(cmds...)
}

// Tooltip returns the tooltip shown by any pane
func (w *Workspace) Tooltip() (string, bool) {
	for _, g := range w.grids() {
		if text, ok := g.Tooltip(); ok {
			return text, true
		}
	}
	return "", false
}

// View renders the three panes with their titles
func (w *Workspace) View() string {
	widths := w.paneWidths()
	panes := make([]string, 0, paneCount)
	for i, g := range w.grids() {
		title := w.paneTitle(Pane(i))
		style := theme.PaneTitleStyle
		if Pane(i) == w.focus {
			style = theme.PaneTitleFocusedStyle
		}
		header := style.Render(runewidth.FillRight(runewidth.Truncate(" "+title, widths[i], "…"), widths[i]))
		panes = append(panes, header+"\n"+g.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func (w *Workspace) paneTitle(p Pane) string {
	switch p {
	case PaneTables:
		return fmt.Sprintf("Tables (%d)", len(w.catalog.Tables))
	case PaneRows:
		if t := w.rowsHost.table; t != nil {
			return fmt.Sprintf("%s (%d)", t.Name, len(t.Rows))
		}
	case PaneCells:
		if r := w.cellsHost.row; r != nil {
			if r.Name != "" {
				return fmt.Sprintf("%d %s", r.ID, r.Name)
			}
			return fmt.Sprintf("%d", r.ID)
		}
	}
	return p.String()
}

// followLink navigates to a resolved target. The history entry is pushed
// quietly so that the source view stays as it is until the destination is
// bound.
func (w *Workspace) followLink(target linkrules.Target) {
	w.metrics.LinkFollowed(target.Status.String())
	if target.Status != linkrules.StatusValid {
		return
	}
	logging.Logger.Debug("Following link", "table", target.TableName, "id", target.Value)

	w.history.Push(true)
	entry := w.history.Current()
	entry.Tables.Selected = target.TableIndex
	entry.Table(target.TableIndex).Rows.Selected = target.RowIndex
	w.rebind()
	w.SetFocus(PaneRows)
}

// GotoID selects the row with id in the current table and records the jump
// in history.
func (w *Workspace) GotoID(id int64) error {
	table := w.rowsHost.table
	if table == nil {
		return domain.ErrTableNotFound
	}
	index, ok := table.RowIndexByID(id)
	if !ok {
		return fmt.Errorf("%w: %d in %s", domain.ErrRowNotFound, id, table.Name)
	}
	w.history.Push(true)
	w.selectRow(index, grid.ScrollCenter)
	w.SetFocus(PaneRows)
	return nil
}

// selectRow selects a row of the current table. The cells pane is rebound
// even when the index did not change, since the row there may differ.
func (w *Workspace) selectRow(index int, mode grid.ScrollMode) {
	w.rows.Refresh()
	w.rows.Select(index, max(w.rows.SelectedColumn(), 0), mode)
	w.rowChanged(w.rows.SelectedRow())
}

// CreateRow inserts a row with default values into the current table
func (w *Workspace) CreateRow(id int64, name string) error {
	table := w.rowsHost.table
	if table == nil {
		return domain.ErrTableNotFound
	}
	index, err := table.CreateRow(id, name)
	if err != nil {
		return err
	}
	logging.Logger.Info("Row created", "table", table.Name, "id", id)
	w.metrics.RowCreated()
	w.resolver.Invalidate()
	w.selectRow(index, grid.ScrollCenter)
	return nil
}

// DuplicateRow copies the selected row under a new ID
func (w *Workspace) DuplicateRow(id int64, name string) error {
	table := w.rowsHost.table
	if table == nil {
		return domain.ErrTableNotFound
	}
	index, err := table.DuplicateRow(w.rows.SelectedRow(), id, name)
	if err != nil {
		return err
	}
	logging.Logger.Info("Row duplicated", "table", table.Name, "id", id)
	w.metrics.RowCreated()
	w.resolver.Invalidate()
	w.selectRow(index, grid.ScrollCenter)
	return nil
}

// DeleteSelectedRow removes the selected row. The selection stays on the same
// index, or moves to the previous row when the last one was removed.
func (w *Workspace) DeleteSelectedRow() error {
	table := w.rowsHost.table
	if table == nil {
		return domain.ErrTableNotFound
	}
	index := w.rows.SelectedRow()
	if index < 0 || index >= len(table.Rows) {
		return domain.ErrRowNotFound
	}
	id := table.Rows[index].ID
	if err := table.DeleteRow(index); err != nil {
		return err
	}
	logging.Logger.Info("Row deleted", "table", table.Name, "id", id)
	w.metrics.RowDeleted()
	w.resolver.Invalidate()
	w.selectRow(min(index, len(table.Rows)-1), grid.ScrollMinimal)
	return nil
}

// SelectedRowInfo returns the selected row of the current table
func (w *Workspace) SelectedRowInfo() (*domain.Table, *domain.Row, bool) {
	table := w.rowsHost.table
	index := w.rows.SelectedRow()
	if table == nil || index < 0 || index >= len(table.Rows) {
		return table, nil, false
	}
	return table, table.Rows[index], true
}

// FindRow selects the next row whose name contains pattern
func (w *Workspace) FindRow(pattern string) error {
	w.findPattern, w.findWhat = pattern, findRows
	table := w.rowsHost.table
	if table == nil {
		return domain.ErrTableNotFound
	}
	index, ok := table.FindRowByName(pattern, w.rows.SelectedRow()+1)
	if !ok {
		return fmt.Errorf("no row matching %q in %s", pattern, table.Name)
	}
	w.selectRow(index, grid.ScrollCenter)
	w.SetFocus(PaneRows)
	return nil
}

// FindCell selects the next cell whose name contains pattern
func (w *Workspace) FindCell(pattern string) error {
	w.findPattern, w.findWhat = pattern, findCells
	table := w.rowsHost.table
	if table == nil {
		return domain.ErrTableNotFound
	}
	start := 0
	if sel := w.cells.SelectedRow(); sel >= 0 {
		start = w.cellsHost.schemaIndex(sel) + 1
	}
	schemaIdx, ok := table.FindCellByName(pattern, start)
	if !ok {
		return fmt.Errorf("no field matching %q in %s", pattern, table.Name)
	}
	w.cells.Select(w.cellsHost.paneIndex(schemaIdx), max(w.cells.SelectedColumn(), 0), grid.ScrollCenter)
	w.SetFocus(PaneCells)
	return nil
}

// FindNext repeats the last find
func (w *Workspace) FindNext() error {
	switch w.findWhat {
	case findRows:
		return w.FindRow(w.findPattern)
	case findCells:
		return w.FindCell(w.findPattern)
	}
	return fmt.Errorf("nothing to find yet")
}

// SelectedText returns the display text of the focused pane's selected cell
func (w *Workspace) SelectedText() (string, bool) {
	g := w.gridFor(w.focus)
	row, col := g.SelectedRow(), g.SelectedColumn()
	if g.Host() == nil || row < 0 || col < 0 {
		return "", false
	}
	if w.focus == PaneCells && col == cellsColValue {
		// the value without the link suffix
		return w.cellsHost.valueText(row), true
	}
	return strings.TrimSpace(g.Host().CellDisplayText(row, col)), true
}

// FollowSelectedLink follows the link of the selected cell in the cells pane
func (w *Workspace) FollowSelectedLink() bool {
	row := w.cells.SelectedRow()
	if w.cellsHost.row == nil || row < 0 || !w.cellsHost.IsLinkClickable(row, cellsColValue) {
		return false
	}
	w.followLink(w.cellsHost.target(row))
	return true
}

// editContext returns the editor label for an edit request and the check
// its value must pass
func (w *Workspace) editContext(req grid.EditRequestMsg) (string, func(any) error) {
	if req.Grid == w.cells && w.cellsHost.row != nil {
		h := w.cellsHost
		label := fmt.Sprintf("%s (%s)", h.displayName(req.Row), h.cell(req.Row).Kind())
		return label, func(v any) error { return h.ValidateEdit(req.Row, req.Col, v) }
	}
	return "Row name", nil
}
