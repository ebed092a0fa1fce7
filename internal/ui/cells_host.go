package ui

import (
	"fmt"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/grid"
	"github.com/paramdex/paramdex/internal/linkrules"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/theme"
)

const (
	cellsColType = iota
	cellsColName
	cellsColValue
)

const (
	typeColumnWidth = 8
	linkArrow       = " → "
)

var editKinds = map[domain.CellKind]grid.EditKind{
	domain.KindS8:     grid.EditInt8,
	domain.KindU8:     grid.EditUint8,
	domain.KindS16:    grid.EditInt16,
	domain.KindU16:    grid.EditUint16,
	domain.KindS32:    grid.EditInt32,
	domain.KindU32:    grid.EditUint32,
	domain.KindF32:    grid.EditFloat32,
	domain.KindFixed:  grid.EditFloat64,
	domain.KindB8:     grid.EditBool,
	domain.KindB16:    grid.EditBool,
	domain.KindB32:    grid.EditBool,
	domain.KindX8:     grid.EditHexUint8,
	domain.KindX16:    grid.EditHexUint16,
	domain.KindX32:    grid.EditHexUint32,
	domain.KindFixStr: grid.EditString,
}

// CellsHost lists the fields of the selected row. Padding fields are not
// shown, so pane rows map to schema indexes through visible.
type CellsHost struct {
	grid.BaseHost
	w          *Workspace
	table      *domain.Table
	tableIndex int
	row        *domain.Row
	visible    []int
}

func (h *CellsHost) bindTable(table *domain.Table, index int) {
	h.table, h.tableIndex, h.row = table, index, nil
	h.visible = h.visible[:0]
	if table == nil {
		return
	}
	for i, def := range table.Schema {
		if !def.Kind.IsPadding() {
			h.visible = append(h.visible, i)
		}
	}
}

func (h *CellsHost) bindRow(row *domain.Row) {
	h.row = row
}

// schemaIndex maps a pane row to its schema index
func (h *CellsHost) schemaIndex(paneRow int) int {
	if paneRow < 0 || paneRow >= len(h.visible) {
		return -1
	}
	return h.visible[paneRow]
}

// paneIndex maps a schema index to its pane row, or 0 for hidden cells
func (h *CellsHost) paneIndex(schemaIdx int) int {
	for i, s := range h.visible {
		if s == schemaIdx {
			return i
		}
	}
	return 0
}

func (h *CellsHost) cell(paneRow int) *domain.Cell {
	return &h.row.Cells[h.visible[paneRow]]
}

func (h *CellsHost) target(paneRow int) linkrules.Target {
	return h.w.resolver.Resolve(h.table, h.row, h.visible[paneRow])
}

func (h *CellsHost) ColumnCount() int { return 3 }

func (h *CellsHost) RowCount() int {
	if h.row == nil {
		return 0
	}
	return len(h.visible)
}

func (h *CellsHost) ColumnName(col int) string {
	switch col {
	case cellsColType:
		return "Type"
	case cellsColName:
		return "Name"
	}
	return "Value"
}

func (h *CellsHost) ColumnWidth(gridWidth, col int) int {
	typeWidth := min(typeColumnWidth, gridWidth/4)
	nameWidth := (gridWidth - typeWidth) * 45 / 100
	switch col {
	case cellsColType:
		return typeWidth
	case cellsColName:
		return nameWidth
	}
	return gridWidth - typeWidth - nameWidth
}

// Initialize restores the scroll anchor and the cell selection of this table
func (h *CellsHost) Initialize(g *grid.Grid) {
	if h.row == nil {
		return
	}
	if an, ok := h.w.anchors.Recall(); ok {
		g.SetScrollTop(an.CellTop)
	}
	te, _ := h.w.history.Current().Lookup(h.tableIndex)
	g.Select(te.Cells.Selected, cellsColValue, grid.ScrollCenter)
}

func (h *CellsHost) OnSelectionChanged(row, _ int) {
	if row >= 0 && h.table != nil {
		h.w.history.Current().Table(h.tableIndex).Cells.Selected = row
	}
}

func (h *CellsHost) OnScrollTopChanged(top int) {
	h.w.anchors.StoreCellTop(top)
}

func (h *CellsHost) displayName(paneRow int) string {
	if alias, ok := h.w.resolver.Alias(h.table, h.visible[paneRow]); ok {
		return alias
	}
	return h.cell(paneRow).Name()
}

// valueText renders the value, using the enum label when one matches
func (h *CellsHost) valueText(paneRow int) string {
	c := h.cell(paneRow)
	if n, ok := c.Value.Int64(); ok {
		for _, opt := range h.table.EnumFor(h.visible[paneRow]) {
			if opt.Value == n {
				return opt.Label
			}
		}
	}
	return c.Value.String()
}

func (h *CellsHost) CellDisplayText(row, col int) string {
	switch col {
	case cellsColType:
		return h.cell(row).Kind().String()
	case cellsColName:
		return h.displayName(row)
	}
	text := h.valueText(row)
	if t := h.target(row); t.Status == linkrules.StatusValid && t.Row.Name != "" {
		text += linkArrow + t.Row.Name
	}
	return text
}

func (h *CellsHost) CellTooltipText(row, col int) string {
	c := h.cell(row)
	switch col {
	case cellsColName:
		if _, ok := h.w.resolver.Alias(h.table, h.visible[row]); ok {
			if c.Def.Description != "" {
				return c.Name() + ": " + c.Def.Description
			}
			return c.Name()
		}
		return c.Def.Description
	case cellsColValue:
		t := h.target(row)
		switch t.Status {
		case linkrules.StatusInvalid:
			return t.Reason
		case linkrules.StatusValid:
			return fmt.Sprintf("%s %d %s", t.TableName, t.Value, t.Row.Name)
		}
		if len(h.table.EnumFor(h.visible[row])) > 0 {
			return "value " + c.Value.String()
		}
	}
	return ""
}

// StyleCell highlights modified values and link state in the Value column
func (h *CellsHost) StyleCell(row, col int, style *grid.CellStyle) {
	if col != cellsColValue {
		return
	}
	t := h.target(row)
	switch t.Status {
	case linkrules.StatusInvalid:
		style.Foreground = theme.ColorLinkInvalid
		style.Background = theme.ColorLinkInvalidBg
		return
	case linkrules.StatusValid:
		// link colour wins over the modified colours
		style.Underline = true
		style.Bold = h.cell(row).Modified()
		if !style.SelectedCell {
			style.Foreground = theme.ColorLink
		}
		return
	}
	if h.cell(row).Modified() && !style.SelectedCell {
		style.Bold = true
		style.Foreground = theme.ColorModified
		style.Background = theme.ColorModifiedBg
	}
}

func (h *CellsHost) CellEditKind(row, col int) grid.EditKind {
	if col != cellsColValue {
		return grid.EditNone
	}
	if len(h.table.EnumFor(h.visible[row])) > 0 {
		return grid.EditEnum
	}
	return editKinds[h.cell(row).Kind()]
}

func (h *CellsHost) CellEditValue(row, _ int) any {
	return editValue(h.cell(row).Value)
}

func (h *CellsHost) CellEnumValues(row, _ int) []grid.EnumValue {
	opts := h.table.EnumFor(h.visible[row])
	values := make([]grid.EnumValue, len(opts))
	for i, opt := range opts {
		values[i] = grid.EnumValue{Label: fmt.Sprintf("%d: %s", opt.Value, opt.Label), Value: opt.Value}
	}
	return values
}

// ValidateEdit checks that value can be stored in the cell without storing it
func (h *CellsHost) ValidateEdit(row, _ int, value any) error {
	_, err := toDomainValue(h.cell(row).Def, value)
	return err
}

func (h *CellsHost) SetCellEditValue(row, col int, value any) error {
	if col != cellsColValue {
		return grid.ErrNotEditable
	}
	c := h.cell(row)
	v, err := toDomainValue(c.Def, value)
	if err != nil {
		return err
	}
	if err := c.Set(v); err != nil {
		return err
	}
	logging.Logger.Debug("Cell edited", "table", h.table.Name, "id", h.row.ID, "cell", c.Name(), "value", v.String())
	h.w.metrics.CellEdited()
	h.w.resolver.Invalidate()
	return nil
}

func (h *CellsHost) CellResetValue(row, _ int) (any, bool) {
	c := h.cell(row)
	if !c.Modified() {
		return nil, false
	}
	return editValue(c.Def.Default), true
}

func (h *CellsHost) IsLinkClickable(row, col int) bool {
	return col == cellsColValue && h.target(row).Status == linkrules.StatusValid
}

func (h *CellsHost) IsClickAlwaysLink(row, col int) bool {
	return h.w.linkClickAlways && h.IsLinkClickable(row, col)
}

func (h *CellsHost) OnLinkClicked(row, _ int) {
	h.w.followLink(h.target(row))
}

// editValue converts a cell value to the normalized form the grid edits
func editValue(v domain.Value) any {
	k := v.Kind()
	switch {
	case k.IsBool():
		return v.Bool()
	case k.IsInteger():
		return v.Int()
	case k.IsFloat():
		return v.Float()
	case k.IsString():
		return v.Text()
	}
	return nil
}

func toDomainValue(def *domain.CellDef, value any) (domain.Value, error) {
	switch v := value.(type) {
	case bool:
		if !def.Kind.IsBool() {
			break
		}
		return domain.BoolValue(def.Kind, v), nil
	case int64:
		return domain.IntValue(def.Kind, v)
	case int:
		return domain.IntValue(def.Kind, int64(v))
	case float64:
		return domain.FloatValue(def.Kind, v)
	case string:
		return def.Parse(v)
	}
	return domain.Value{}, fmt.Errorf("%w: %T for %s cell %s", domain.ErrInvalidValue, value, def.Kind, def.Name)
}
