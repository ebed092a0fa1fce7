package ui

import (
	"github.com/paramdex/paramdex/internal/grid"
	"github.com/paramdex/paramdex/internal/theme"
)

// TablesHost lists the catalog's tables
type TablesHost struct {
	grid.BaseHost
	w *Workspace
}

func (h *TablesHost) ColumnCount() int { return 1 }

func (h *TablesHost) RowCount() int { return len(h.w.catalog.Tables) }

func (h *TablesHost) ColumnName(int) string { return "Name" }

func (h *TablesHost) ColumnWidth(gridWidth, _ int) int { return gridWidth }

// Initialize restores the table selection of the current history entry
func (h *TablesHost) Initialize(g *grid.Grid) {
	g.Select(h.w.history.Current().Tables.Selected, 0, grid.ScrollCenter)
}

func (h *TablesHost) OnSelectionChanged(row, _ int) {
	if row >= 0 {
		h.w.history.Current().Tables.Selected = row
	}
	h.w.tableChanged(row)
}

func (h *TablesHost) CellDisplayText(row, _ int) string {
	return h.w.catalog.Tables[row].Name
}

func (h *TablesHost) CellTooltipText(row, _ int) string {
	t := h.w.catalog.Tables[row]
	if t.Error {
		if t.Description != "" {
			return t.Description + "\nerror: " + t.ErrorDetail
		}
		return "error: " + t.ErrorDetail
	}
	return t.Description
}

func (h *TablesHost) StyleCell(row, _ int, style *grid.CellStyle) {
	if h.w.catalog.Tables[row].Error && !style.SelectedCell {
		style.Foreground = theme.ColorLinkInvalid
		style.Background = theme.ColorLinkInvalidBg
	}
}
