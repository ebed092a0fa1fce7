package grid

import (
	tea "github.com/charmbracelet/bubbletea"
)

// cellRect is the on-screen area of one visible cell, relative to the grid
type cellRect struct {
	row, col   int
	x, y, w, h int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// columnLayout returns the x offset and width of every column. Columns that
// do not fit are clipped to zero width.
func (g *Grid) columnLayout() (xs, ws []int) {
	cc := g.columnCount()
	avail := g.contentWidth()
	xs, ws = make([]int, cc), make([]int, cc)
	x := 0
	for c := 0; c < cc; c++ {
		w := max(0, g.host.ColumnWidth(avail, c))
		if x+w > avail {
			w = max(0, avail-x)
		}
		xs[c], ws[c] = x, w
		x += w
	}
	return xs, ws
}

func (g *Grid) scrollbarVisible() bool {
	return g.rowCount() > g.VisibleRowCount(VisibleFull) || g.top > 0
}

func (g *Grid) contentWidth() int {
	if g.scrollbarVisible() {
		return max(0, g.width-scrollbarWidth)
	}
	return g.width
}

// cellRects lays out every visible cell, including a partially visible last
// row.
func (g *Grid) cellRects() []cellRect {
	first, ok := g.FirstVisibleRow()
	if !ok || g.columnCount() == 0 {
		return nil
	}
	last, _ := g.LastVisibleRow(VisibleAny)
	xs, ws := g.columnLayout()
	rh := g.RowHeight()
	client := g.clientHeight()
	rects := make([]cellRect, 0, (last-first+1)*len(xs))
	for r := first; r <= last; r++ {
		y := (r - first) * rh
		h := min(rh, client-y)
		if h <= 0 {
			break
		}
		for c := range xs {
			if ws[c] == 0 {
				continue
			}
			rects = append(rects, cellRect{row: r, col: c, x: xs[c], y: headerHeight + y, w: ws[c], h: h})
		}
	}
	return rects
}

// HitTest maps a position relative to the grid's origin to a cell
func (g *Grid) HitTest(x, y int) (row, col int, ok bool) {
	for _, r := range g.cellRects() {
		if r.contains(x, y) {
			return r.row, r.col, true
		}
	}
	return -1, -1, false
}

func (g *Grid) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if g.host == nil {
		return nil
	}
	lx, ly := msg.X-g.x, msg.Y-g.y
	if !g.Contains(msg.X, msg.Y) {
		if g.hovering {
			g.hovering = false
			return g.scheduleTooltipCancel()
		}
		return nil
	}
	g.hovering = true

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		g.SetScrollTop(g.top - wheelRows)
		return nil
	case msg.Button == tea.MouseButtonWheelDown:
		g.SetScrollTop(g.top + wheelRows)
		return nil
	case msg.Action == tea.MouseActionMotion:
		if row, col, ok := g.HitTest(lx, ly); ok {
			return g.hoverCell(row, col)
		}
		return nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		row, col, ok := g.HitTest(lx, ly)
		if !ok {
			return nil
		}
		return g.click(row, col, msg.Ctrl)
	}
	return nil
}

func (g *Grid) click(row, col int, ctrl bool) tea.Cmd {
	if ctrl || g.host.IsClickAlwaysLink(row, col) {
		if g.followLink(row, col) {
			g.lastClickRow = -1
			return nil
		}
	}

	now := g.now()
	double := row == g.lastClickRow && col == g.lastClickCol && now.Sub(g.lastClickAt) <= doubleClickInterval
	g.setSelection(row, col)
	g.ScrollToSelection(ScrollMinimal)
	if double {
		g.lastClickRow = -1
		return g.TryEdit()
	}
	g.lastClickAt, g.lastClickRow, g.lastClickCol = now, row, col
	return nil
}
