package ui

import (
	"fmt"
	"strconv"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/grid"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/theme"
)

const (
	rowsColID = iota
	rowsColName
)

const minIDWidth = 8

// RowsHost lists the rows of the selected table. The Name column is
// editable.
type RowsHost struct {
	grid.BaseHost
	w     *Workspace
	table *domain.Table
	index int
}

func (h *RowsHost) bind(table *domain.Table, index int) {
	h.table, h.index = table, index
}

func (h *RowsHost) ColumnCount() int { return 2 }

func (h *RowsHost) RowCount() int {
	if h.table == nil {
		return 0
	}
	return len(h.table.Rows)
}

func (h *RowsHost) ColumnName(col int) string {
	if col == rowsColID {
		return "ID"
	}
	return "Name"
}

// ColumnWidth sizes the ID column for the widest ID
func (h *RowsHost) ColumnWidth(gridWidth, col int) int {
	idWidth := minIDWidth
	if n := h.RowCount(); n > 0 {
		first := len(strconv.FormatInt(h.table.Rows[0].ID, 10))
		last := len(strconv.FormatInt(h.table.Rows[n-1].ID, 10))
		idWidth = max(idWidth, first+2, last+2)
	}
	idWidth = min(idWidth, gridWidth/2)
	if col == rowsColID {
		return idWidth
	}
	return gridWidth - idWidth
}

// Initialize restores the scroll anchor and the row selection of this table
func (h *RowsHost) Initialize(g *grid.Grid) {
	if h.table == nil {
		return
	}
	if an, ok := h.w.anchors.Recall(); ok {
		g.SetScrollTop(an.RowTop)
	}
	te, _ := h.w.history.Current().Lookup(h.index)
	g.Select(te.Rows.Selected, rowsColName, grid.ScrollCenter)
}

func (h *RowsHost) OnSelectionChanged(row, _ int) {
	if row >= 0 && h.table != nil {
		h.w.history.Current().Table(h.index).Rows.Selected = row
	}
	h.w.rowChanged(row)
}

func (h *RowsHost) OnScrollTopChanged(top int) {
	h.w.anchors.StoreRowTop(top)
}

func (h *RowsHost) CellDisplayText(row, col int) string {
	r := h.table.Rows[row]
	if col == rowsColID {
		return strconv.FormatInt(r.ID, 10)
	}
	return r.Name
}

func (h *RowsHost) CellTooltipText(row, col int) string {
	if col != rowsColName {
		return ""
	}
	if n := h.table.Rows[row].ModifiedCount(); n > 0 {
		return fmt.Sprintf("%d modified fields", n)
	}
	return ""
}

// StyleCell marks the ID of rows that differ from the defaults
func (h *RowsHost) StyleCell(row, col int, style *grid.CellStyle) {
	if col == rowsColID && !style.SelectedCell && h.table.Rows[row].ModifiedCount() > 0 {
		style.Foreground = theme.ColorModified
		style.Bold = true
	}
}

func (h *RowsHost) CellEditKind(_, col int) grid.EditKind {
	if col == rowsColName {
		return grid.EditString
	}
	return grid.EditNone
}

func (h *RowsHost) CellEditValue(row, _ int) any {
	return h.table.Rows[row].Name
}

func (h *RowsHost) SetCellEditValue(row, col int, value any) error {
	name, ok := value.(string)
	if col != rowsColName || !ok {
		return grid.ErrNotEditable
	}
	r := h.table.Rows[row]
	logging.Logger.Info("Row renamed", "table", h.table.Name, "id", r.ID, "name", name)
	r.Name = name
	return nil
}
