// Package grid implements a virtualized, keyboard and mouse driven table
// view. A Grid never holds per-row state: everything it draws is pulled from
// a Host for the rows currently on screen.
package grid

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// EditKind selects how a cell is edited
type EditKind int

const (
	EditNone EditKind = iota
	EditBool
	EditInt8
	EditUint8
	EditInt16
	EditUint16
	EditInt32
	EditUint32
	EditFloat32
	EditFloat64
	EditHexUint8
	EditHexUint16
	EditHexUint32
	EditString
	EditEnum
)

// ErrNotEditable is returned by hosts that do not accept edits
var ErrNotEditable = errors.New("cell is not editable")

// EnumValue is one choice offered for an enum cell
type EnumValue struct {
	Label string
	Value any
}

// CellStyle is the style a cell is drawn with. The grid fills in selection
// defaults before handing it to Host.StyleCell.
type CellStyle struct {
	SelectedRow    bool
	SelectedColumn bool
	SelectedCell   bool

	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Bold       bool
	Underline  bool
}

// Host supplies data and behaviour to a Grid
type Host interface {
	ColumnCount() int
	RowCount() int

	// Initialize is called after every bind so the host can restore its
	// saved selection and scroll position.
	Initialize(g *Grid)

	ColumnName(col int) string
	ColumnWidth(gridWidth, col int) int

	CellDisplayText(row, col int) string
	CellTooltipText(row, col int) string
	StyleCell(row, col int, style *CellStyle)

	OnSelectionChanged(row, col int)
	OnScrollTopChanged(top int)

	CellEditKind(row, col int) EditKind
	CellEditValue(row, col int) any
	SetCellEditValue(row, col int, value any) error
	// CellResetValue returns the value Delete restores, if there is one
	CellResetValue(row, col int) (any, bool)
	CellEnumValues(row, col int) []EnumValue

	IsLinkClickable(row, col int) bool
	IsClickAlwaysLink(row, col int) bool
	OnLinkClicked(row, col int)
}

// BaseHost provides no-op implementations of the optional parts of Host
type BaseHost struct{}

func (BaseHost) Initialize(*Grid)                     {}
func (BaseHost) CellTooltipText(int, int) string      { return "" }
func (BaseHost) StyleCell(int, int, *CellStyle)       {}
func (BaseHost) OnSelectionChanged(int, int)          {}
func (BaseHost) OnScrollTopChanged(int)               {}
func (BaseHost) CellEditKind(int, int) EditKind       { return EditNone }
func (BaseHost) CellEditValue(int, int) any           { return nil }
func (BaseHost) SetCellEditValue(int, int, any) error { return ErrNotEditable }
func (BaseHost) CellResetValue(int, int) (any, bool)  { return nil, false }
func (BaseHost) CellEnumValues(int, int) []EnumValue  { return nil }
func (BaseHost) IsLinkClickable(int, int) bool        { return false }
func (BaseHost) IsClickAlwaysLink(int, int) bool      { return false }
func (BaseHost) OnLinkClicked(int, int)               {}
