package grid

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ScrollMode selects how far the grid scrolls to reveal the selection
type ScrollMode int

const (
	// ScrollMinimal scrolls just enough for the selected row to be fully visible
	ScrollMinimal ScrollMode = iota
	// ScrollCenter centers the selected row when it is not fully visible
	ScrollCenter
)

// Visibility chooses between partially and fully visible rows
type Visibility int

const (
	VisibleAny Visibility = iota
	VisibleFull
)

const (
	headerHeight        = 1
	lineHeight          = 1
	scrollbarWidth      = 1
	wheelRows           = 3
	doubleClickInterval = 400 * time.Millisecond
	defaultTooltipDelay = 500 * time.Millisecond
)

// EditRequestMsg asks the owner to open an edit surface for a cell. The edit
// is committed with Grid.ApplyEdit.
type EditRequestMsg struct {
	Grid  *Grid
	Row   int
	Col   int
	Kind  EditKind
	Value any
	Enum  []EnumValue
}

// EditFailedMsg reports an edit the host refused
type EditFailedMsg struct {
	Err error
}

// Grid is a scrollable table bound to a Host. It is not safe for concurrent
// use; bubbletea drives it from a single goroutine.
type Grid struct {
	host   Host
	keys   KeyMap
	styles Styles

	x, y, width, height int
	rowPadding          int
	focused             bool

	top    int
	selRow int
	selCol int

	hovering     bool
	lastClickAt  time.Time
	lastClickRow int
	lastClickCol int
	now          func() time.Time

	tip          tooltipState
	tooltipDelay time.Duration
}

// New creates an unbound grid
func New(keys KeyMap) *Grid {
	return &Grid{
		keys:         keys,
		styles:       DefaultStyles(),
		selRow:       -1,
		selCol:       -1,
		lastClickRow: -1,
		now:          time.Now,
		tooltipDelay: defaultTooltipDelay,
	}
}

// SetHost binds the grid to h and lets it restore its view state
func (g *Grid) SetHost(h Host) {
	g.host = h
	g.InvalidateDataSource()
}

// Host returns the bound host, or nil
func (g *Grid) Host() Host { return g.host }

// InvalidateDataSource must be called when the host switches to different
// data. It clears the selection and scroll position, then calls
// Host.Initialize.
func (g *Grid) InvalidateDataSource() {
	g.top = 0
	g.cancelTooltip()
	g.lastClickRow = -1
	g.clearSelection()
	if g.host != nil {
		g.host.Initialize(g)
	}
}

// Refresh re-clamps the scroll and selection after rows were added or
// removed without switching data source.
func (g *Grid) Refresh() {
	g.setScrollTop(g.top)
	if g.selRow >= 0 || g.selCol >= 0 {
		g.setSelection(g.selRow, g.selCol)
	}
}

func (g *Grid) SetKeyMap(keys KeyMap) { g.keys = keys }

func (g *Grid) SetStyles(s Styles) { g.styles = s }

// SetBounds positions the grid on screen. Mouse events are translated using
// the origin.
func (g *Grid) SetBounds(x, y, width, height int) {
	g.x, g.y = x, y
	g.width, g.height = max(0, width), max(0, height)
	g.setScrollTop(g.top)
}

// Contains reports whether a screen position falls inside the grid
func (g *Grid) Contains(x, y int) bool {
	return x >= g.x && x < g.x+g.width && y >= g.y && y < g.y+g.height
}

// SetRowPadding adds blank lines below each row's text
func (g *Grid) SetRowPadding(lines int) {
	g.rowPadding = max(0, lines)
	g.setScrollTop(g.top)
}

func (g *Grid) SetTooltipDelay(d time.Duration) { g.tooltipDelay = d }

func (g *Grid) Focus()        { g.focused = true }
func (g *Grid) Blur()         { g.focused = false }
func (g *Grid) Focused() bool { return g.focused }

func (g *Grid) SelectedRow() int    { return g.selRow }
func (g *Grid) SelectedColumn() int { return g.selCol }

// HasSelection reports whether a row is selected
func (g *Grid) HasSelection() bool { return g.selRow >= 0 }

func (g *Grid) rowCount() int {
	if g.host == nil {
		return 0
	}
	return max(0, g.host.RowCount())
}

func (g *Grid) columnCount() int {
	if g.host == nil {
		return 0
	}
	return max(0, g.host.ColumnCount())
}

// RowHeight is the number of lines one row occupies
func (g *Grid) RowHeight() int { return lineHeight + g.rowPadding }

func (g *Grid) clientHeight() int { return max(0, g.height-headerHeight) }

// VisibleRowCount returns how many rows fit the viewport. With VisibleAny a
// partially visible last row is counted.
func (g *Grid) VisibleRowCount(v Visibility) int {
	rh := g.RowHeight()
	n := g.clientHeight() / rh
	if v == VisibleAny && g.clientHeight()%rh != 0 {
		n++
	}
	return n
}

// pageRows is the fully visible row count, never less than one
func (g *Grid) pageRows() int {
	return max(1, g.VisibleRowCount(VisibleFull))
}

// FirstVisibleRow returns the row drawn at the top of the viewport
func (g *Grid) FirstVisibleRow() (int, bool) {
	rc := g.rowCount()
	if rc == 0 {
		return -1, false
	}
	return min(g.top, rc-1), true
}

// LastVisibleRow returns the last row drawn in the viewport
func (g *Grid) LastVisibleRow(v Visibility) (int, bool) {
	rc := g.rowCount()
	if rc == 0 {
		return -1, false
	}
	n := g.VisibleRowCount(v)
	if v == VisibleFull {
		n = g.pageRows()
	}
	return max(0, min(rc-1, g.top+n-1)), true
}

// ScrollTop returns the index of the first visible row
func (g *Grid) ScrollTop() int { return g.top }

// SetScrollTop scrolls so that top is the first visible row, clamped to the
// valid range.
func (g *Grid) SetScrollTop(top int) {
	g.cancelTooltip()
	g.setScrollTop(top)
}

func (g *Grid) maxScrollTop() int {
	return max(0, g.rowCount()-g.pageRows())
}

func (g *Grid) setScrollTop(top int) {
	top = max(0, min(top, g.maxScrollTop()))
	if top == g.top {
		return
	}
	g.top = top
	if g.host != nil {
		g.host.OnScrollTopChanged(top)
	}
}

// ScrollToSelection brings the selected row into view
func (g *Grid) ScrollToSelection(mode ScrollMode) {
	if g.selRow < 0 || g.rowCount() == 0 {
		return
	}
	first := g.top
	last, _ := g.LastVisibleRow(VisibleFull)
	switch mode {
	case ScrollMinimal:
		if g.selRow < first {
			g.setScrollTop(g.selRow)
		} else if g.selRow > last {
			g.setScrollTop(g.selRow - g.pageRows() + 1)
		}
	case ScrollCenter:
		if g.selRow < first || g.selRow > last {
			g.setScrollTop(g.selRow - g.pageRows()/2)
		}
	}
}

// Select moves the selection and scrolls it into view
func (g *Grid) Select(row, col int, mode ScrollMode) {
	g.setSelection(row, col)
	g.ScrollToSelection(mode)
}

// SetSelectedRow moves the row selection, keeping the column
func (g *Grid) SetSelectedRow(row int) {
	g.setSelection(row, max(g.selCol, 0))
}

// SetSelectedColumn moves the column selection, keeping the row
func (g *Grid) SetSelectedColumn(col int) {
	g.setSelection(max(g.selRow, 0), col)
}

func (g *Grid) clearSelection() {
	g.selRow, g.selCol = -1, -1
	g.selectionChanged()
}

// setSelection clamps row and col to the data and notifies the host when
// anything changed. Empty data clears the selection.
func (g *Grid) setSelection(row, col int) {
	rc, cc := g.rowCount(), g.columnCount()
	if rc == 0 {
		row = -1
	} else {
		row = max(0, min(row, rc-1))
	}
	if cc == 0 {
		col = -1
	} else {
		col = max(0, min(col, cc-1))
	}
	if row == g.selRow && col == g.selCol {
		return
	}
	g.selRow, g.selCol = row, col
	g.selectionChanged()
}

func (g *Grid) selectionChanged() {
	g.cancelTooltip()
	if g.host != nil {
		g.host.OnSelectionChanged(g.selRow, g.selCol)
	}
}

// Update handles keys (when focused), mouse events and the grid's own timer
// messages.
func (g *Grid) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !g.focused || g.host == nil {
			return nil
		}
		return g.handleKey(msg)
	case tea.MouseMsg:
		return g.handleMouse(msg)
	case tooltipShowMsg:
		g.handleTooltipShow(msg)
	case tooltipCancelMsg:
		g.handleTooltipCancel(msg)
	}
	return nil
}

func (g *Grid) handleKey(msg tea.KeyMsg) tea.Cmd {
	rc := g.rowCount()
	switch {
	case key.Matches(msg, g.keys.Up):
		if g.selRow > 0 {
			g.moveTo(g.selRow - 1)
		} else if g.selRow < 0 && rc > 0 {
			g.moveTo(0)
		}
	case key.Matches(msg, g.keys.Down):
		if g.selRow < rc-1 {
			g.moveTo(g.selRow + 1)
		}
	case key.Matches(msg, g.keys.Left):
		if g.selCol > 0 {
			g.setSelection(max(g.selRow, 0), g.selCol-1)
			g.ScrollToSelection(ScrollMinimal)
		}
	case key.Matches(msg, g.keys.Right):
		if g.selCol < g.columnCount()-1 {
			g.setSelection(max(g.selRow, 0), g.selCol+1)
			g.ScrollToSelection(ScrollMinimal)
		}
	case key.Matches(msg, g.keys.PageUp):
		g.pageUp()
	case key.Matches(msg, g.keys.PageDown):
		g.pageDown()
	case key.Matches(msg, g.keys.First):
		if rc > 0 {
			g.moveTo(0)
		}
	case key.Matches(msg, g.keys.Last):
		if rc > 0 {
			g.moveTo(rc - 1)
		}
	case key.Matches(msg, g.keys.Edit):
		return g.TryEdit()
	case key.Matches(msg, g.keys.Reset):
		return g.TryReset()
	case key.Matches(msg, g.keys.FollowLink):
		g.followLink(g.selRow, g.selCol)
	}
	return nil
}

func (g *Grid) moveTo(row int) {
	g.setSelection(row, max(g.selCol, 0))
	g.ScrollToSelection(ScrollMinimal)
}

// pageUp lands on the first visible row, then pages further on repeat
func (g *Grid) pageUp() {
	first, ok := g.FirstVisibleRow()
	if !ok {
		return
	}
	if g.selRow > first {
		g.setSelection(first, max(g.selCol, 0))
		return
	}
	g.moveTo(max(0, g.selRow-max(1, g.VisibleRowCount(VisibleAny)-1)))
}

// pageDown lands on the last fully visible row, then pages further on repeat
func (g *Grid) pageDown() {
	last, ok := g.LastVisibleRow(VisibleFull)
	if !ok {
		return
	}
	if g.selRow < last {
		g.setSelection(last, max(g.selCol, 0))
		return
	}
	g.moveTo(min(g.rowCount()-1, g.selRow+max(1, g.VisibleRowCount(VisibleAny)-1)))
}

func (g *Grid) followLink(row, col int) bool {
	if g.host == nil || row < 0 || col < 0 || !g.host.IsLinkClickable(row, col) {
		return false
	}
	g.cancelTooltip()
	g.host.OnLinkClicked(row, col)
	return true
}

// TryEdit starts editing the selected cell. Boolean cells toggle in place;
// other editable cells produce an EditRequestMsg.
func (g *Grid) TryEdit() tea.Cmd {
	row, col := g.selRow, g.selCol
	if g.host == nil || row < 0 || col < 0 {
		return nil
	}
	kind := g.host.CellEditKind(row, col)
	switch kind {
	case EditNone:
		return nil
	case EditBool:
		b, _ := g.host.CellEditValue(row, col).(bool)
		return g.apply(row, col, !b)
	}
	req := EditRequestMsg{
		Grid:  g,
		Row:   row,
		Col:   col,
		Kind:  kind,
		Value: g.host.CellEditValue(row, col),
	}
	if kind == EditEnum {
		req.Enum = g.host.CellEnumValues(row, col)
	}
	return func() tea.Msg { return req }
}

// TryReset restores the selected cell to the host's reset value
func (g *Grid) TryReset() tea.Cmd {
	row, col := g.selRow, g.selCol
	if g.host == nil || row < 0 || col < 0 || g.host.CellEditKind(row, col) == EditNone {
		return nil
	}
	v, ok := g.host.CellResetValue(row, col)
	if !ok {
		return nil
	}
	return g.apply(row, col, v)
}

// ApplyEdit commits an edited value through the host
func (g *Grid) ApplyEdit(row, col int, value any) error {
	if g.host == nil {
		return ErrNotEditable
	}
	return g.host.SetCellEditValue(row, col, value)
}

func (g *Grid) apply(row, col int, value any) tea.Cmd {
	if err := g.ApplyEdit(row, col, value); err != nil {
		return func() tea.Msg { return EditFailedMsg{Err: err} }
	}
	return nil
}
