package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/grid"
	"github.com/paramdex/paramdex/internal/linkrules"
	"github.com/paramdex/paramdex/internal/theme"
)

const workspaceRules = `Weapons:
refId link Armor
refId alias Armor Ref
`

type workspaceFixture struct {
	w       *Workspace
	weapons *domain.Table
	armor   *domain.Table
}

// newWorkspaceFixture builds Weapons (rows 10 sword, 20 axe, 30 bow) whose
// refId links into Armor (rows 1, 5, 9). sword links to armor 5, axe to a
// missing row, bow has no link.
func newWorkspaceFixture(t *testing.T) *workspaceFixture {
	t.Helper()
	weapons := domain.NewTable("Weapons", &domain.Layout{
		Description: "Weapon params",
		Cells: []domain.CellDef{
			{Name: "refId", Kind: domain.KindS32, Description: "armor reference"},
			{Name: "pad", Kind: domain.KindDummy, Size: 2},
			{Name: "weight", Kind: domain.KindF32},
			{Name: "atk", Kind: domain.KindU16},
		},
	})
	armor := domain.NewTable("Armor", &domain.Layout{Cells: []domain.CellDef{{Name: "hp", Kind: domain.KindS32}}})
	for _, id := range []int64{1, 5, 9} {
		_, err := armor.CreateRow(id, "armor "+string(rune('a'+id)))
		require.NoError(t, err)
	}
	for i, r := range []struct {
		id   int64
		name string
		ref  int64
	}{{10, "sword", 5}, {20, "axe", 7}, {30, "bow", -1}} {
		_, err := weapons.CreateRow(r.id, r.name)
		require.NoError(t, err)
		v, err := domain.IntValue(domain.KindS32, r.ref)
		require.NoError(t, err)
		require.NoError(t, weapons.Rows[i].Cells[0].Set(v))
	}

	catalog := domain.NewCatalog("test.db", []*domain.Table{weapons, armor})
	rules, warnings := linkrules.Parse(strings.NewReader(workspaceRules), catalog)
	require.Empty(t, warnings)

	w := NewWorkspace(WorkspaceOptions{Catalog: catalog, Rules: rules})
	w.SetBounds(0, 0, 120, 20)
	return &workspaceFixture{w: w, weapons: weapons, armor: armor}
}

func (f *workspaceFixture) selectRow(t *testing.T, index int) {
	t.Helper()
	f.w.Grid(PaneRows).Select(index, rowsColName, grid.ScrollMinimal)
	require.Equal(t, f.w.CurrentTable().Rows[index], f.w.CurrentRow())
}

func TestWorkspace_BindsFirstTableAndRow(t *testing.T) {
	f := newWorkspaceFixture(t)

	assert.Same(t, f.weapons, f.w.CurrentTable())
	assert.Equal(t, 0, f.w.CurrentTableIndex())
	require.NotNil(t, f.w.CurrentRow())
	assert.Equal(t, int64(10), f.w.CurrentRow().ID)
	assert.Equal(t, PaneTables, f.w.Focus())
	assert.False(t, f.w.CanGoBack())

	// the padding cell is not listed
	assert.Equal(t, 3, f.w.Grid(PaneCells).Host().RowCount())
}

func TestWorkspace_SelectingTableRebindsPanes(t *testing.T) {
	f := newWorkspaceFixture(t)

	f.w.Grid(PaneTables).Select(1, 0, grid.ScrollMinimal)
	assert.Same(t, f.armor, f.w.CurrentTable())
	assert.Equal(t, int64(1), f.w.CurrentRow().ID)

	f.w.Grid(PaneRows).Select(2, rowsColName, grid.ScrollMinimal)
	f.w.Grid(PaneTables).Select(0, 0, grid.ScrollMinimal)
	f.w.Grid(PaneTables).Select(1, 0, grid.ScrollMinimal)
	assert.Equal(t, int64(9), f.w.CurrentRow().ID, "row selection is remembered per table")
}

func TestWorkspace_FollowLinkThenGoBack(t *testing.T) {
	f := newWorkspaceFixture(t)
	f.w.Grid(PaneCells).Select(0, cellsColValue, grid.ScrollMinimal)

	require.True(t, f.w.FollowSelectedLink())
	assert.Same(t, f.armor, f.w.CurrentTable())
	assert.Equal(t, int64(5), f.w.CurrentRow().ID)
	assert.Equal(t, PaneRows, f.w.Focus())
	assert.True(t, f.w.CanGoBack())
	assert.False(t, f.w.CanGoForward())

	require.True(t, f.w.GoBack())
	assert.Same(t, f.weapons, f.w.CurrentTable())
	assert.Equal(t, int64(10), f.w.CurrentRow().ID)
	assert.Equal(t, 0, f.w.Grid(PaneCells).SelectedRow())
	assert.True(t, f.w.CanGoForward())

	require.True(t, f.w.GoForward())
	assert.Same(t, f.armor, f.w.CurrentTable())
	assert.Equal(t, int64(5), f.w.CurrentRow().ID)
}

func TestWorkspace_FollowSelectedLinkIgnoresNonLinks(t *testing.T) {
	tests := []struct {
		name string
		row  int
		cell int
	}{
		{name: "invalid link", row: 1, cell: 0},
		{name: "unset link", row: 2, cell: 0},
		{name: "plain cell", row: 0, cell: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkspaceFixture(t)
			f.selectRow(t, tt.row)
			f.w.Grid(PaneCells).Select(tt.cell, cellsColValue, grid.ScrollMinimal)

			assert.False(t, f.w.FollowSelectedLink())
			assert.Same(t, f.weapons, f.w.CurrentTable())
			assert.False(t, f.w.CanGoBack())
		})
	}
}

func TestWorkspace_GotoID(t *testing.T) {
	f := newWorkspaceFixture(t)

	require.NoError(t, f.w.GotoID(30))
	assert.Equal(t, int64(30), f.w.CurrentRow().ID)
	assert.True(t, f.w.CanGoBack())

	err := f.w.GotoID(99)
	assert.ErrorIs(t, err, domain.ErrRowNotFound)
	assert.Equal(t, int64(30), f.w.CurrentRow().ID)

	require.True(t, f.w.GoBack())
	assert.Equal(t, int64(10), f.w.CurrentRow().ID)
}

func TestWorkspace_CreateAndDeleteRows(t *testing.T) {
	f := newWorkspaceFixture(t)

	require.NoError(t, f.w.CreateRow(15, "dagger"))
	assert.Equal(t, int64(15), f.w.CurrentRow().ID)
	assert.Equal(t, 1, f.w.Grid(PaneRows).SelectedRow())

	err := f.w.CreateRow(15, "again")
	assert.ErrorIs(t, err, domain.ErrDuplicateRowID)
	assert.Len(t, f.weapons.Rows, 4)

	require.NoError(t, f.w.DuplicateRow(40, "sword copy"))
	assert.Equal(t, int64(40), f.w.CurrentRow().ID)
	assert.Equal(t, f.weapons.Rows[1].Cells[0].Value, f.w.CurrentRow().Cells[0].Value)

	// deleting the last row moves the selection to the previous one
	require.NoError(t, f.w.DeleteSelectedRow())
	assert.Len(t, f.weapons.Rows, 4)
	assert.Equal(t, int64(30), f.w.CurrentRow().ID)

	// deleting in the middle keeps the index
	f.selectRow(t, 1)
	require.NoError(t, f.w.DeleteSelectedRow())
	assert.Equal(t, 1, f.w.Grid(PaneRows).SelectedRow())
	assert.Equal(t, int64(20), f.w.CurrentRow().ID)
}

func TestWorkspace_FindRowWrapsAndFindNextRepeats(t *testing.T) {
	f := newWorkspaceFixture(t)
	f.selectRow(t, 2)

	require.NoError(t, f.w.FindRow("SWO"))
	assert.Equal(t, int64(10), f.w.CurrentRow().ID)
	assert.Equal(t, PaneRows, f.w.Focus())

	require.NoError(t, f.w.FindNext())
	assert.Equal(t, int64(10), f.w.CurrentRow().ID, "only one match, found again after wrapping")

	assert.Error(t, f.w.FindRow("spear"))
}

func TestWorkspace_FindCell(t *testing.T) {
	f := newWorkspaceFixture(t)

	require.NoError(t, f.w.FindCell("atk"))
	assert.Equal(t, PaneCells, f.w.Focus())
	// schema index 3 is pane row 2 because padding is hidden
	assert.Equal(t, 2, f.w.Grid(PaneCells).SelectedRow())

	assert.Error(t, f.w.FindCell("pad"))
}

func TestWorkspace_FindNextWithoutPattern(t *testing.T) {
	f := newWorkspaceFixture(t)
	assert.Error(t, f.w.FindNext())
}

func TestWorkspace_SelectedText(t *testing.T) {
	f := newWorkspaceFixture(t)

	f.w.SetFocus(PaneCells)
	f.w.Grid(PaneCells).Select(0, cellsColValue, grid.ScrollMinimal)
	text, ok := f.w.SelectedText()
	require.True(t, ok)
	assert.Equal(t, "5", text, "link suffix is not copied")

	f.w.SetFocus(PaneRows)
	text, ok = f.w.SelectedText()
	require.True(t, ok)
	assert.Equal(t, "sword", text)
}

func TestCellsHost_DisplayAndTooltips(t *testing.T) {
	f := newWorkspaceFixture(t)
	h := f.w.cellsHost

	assert.Equal(t, "s32", h.CellDisplayText(0, cellsColType))
	assert.Equal(t, "Armor Ref", h.CellDisplayText(0, cellsColName))
	assert.Equal(t, "refId: armor reference", h.CellTooltipText(0, cellsColName))
	assert.Equal(t, "5"+linkArrow+f.armor.Rows[1].Name, h.CellDisplayText(0, cellsColValue))
	assert.Equal(t, "weight", h.CellDisplayText(1, cellsColName))

	f.selectRow(t, 1)
	assert.Equal(t, "7", h.CellDisplayText(0, cellsColValue))
	assert.NotEmpty(t, h.CellTooltipText(0, cellsColValue))
}

func TestCellsHost_StyleCell(t *testing.T) {
	f := newWorkspaceFixture(t)
	h := f.w.cellsHost

	t.Run("valid link", func(t *testing.T) {
		var style grid.CellStyle
		h.StyleCell(0, cellsColValue, &style)
		assert.True(t, style.Underline)
		assert.Equal(t, theme.ColorLink, style.Foreground)
	})

	t.Run("other columns untouched", func(t *testing.T) {
		var style grid.CellStyle
		h.StyleCell(0, cellsColName, &style)
		assert.Equal(t, grid.CellStyle{}, style)
	})

	t.Run("modified value", func(t *testing.T) {
		var style grid.CellStyle
		h.StyleCell(2, cellsColValue, &style)
		assert.False(t, style.Bold)

		require.NoError(t, f.w.Grid(PaneCells).ApplyEdit(2, cellsColValue, "12"))
		h.StyleCell(2, cellsColValue, &style)
		assert.True(t, style.Bold)
		assert.Equal(t, theme.ColorModified, style.Foreground)
		assert.Equal(t, theme.ColorModifiedBg, style.Background)
	})

	t.Run("invalid link", func(t *testing.T) {
		f.selectRow(t, 1)
		var style grid.CellStyle
		h.StyleCell(0, cellsColValue, &style)
		assert.Equal(t, theme.ColorLinkInvalid, style.Foreground)
		assert.Equal(t, theme.ColorLinkInvalidBg, style.Background)
		assert.False(t, style.Underline)
	})
}

func TestCellsHost_EditAndReset(t *testing.T) {
	f := newWorkspaceFixture(t)
	cells := f.w.Grid(PaneCells)

	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{name: "text", value: "300", want: "300"},
		{name: "hex text", value: "0x10", want: "16"},
		{name: "normalized int", value: int64(7), want: "7"},
		{name: "out of range", value: "70000", wantErr: true},
		{name: "garbage", value: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cells.ApplyEdit(2, cellsColValue, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.w.cellsHost.valueText(2))
		})
	}

	assert.ErrorIs(t, cells.ApplyEdit(2, cellsColName, "x"), grid.ErrNotEditable)

	reset, ok := f.w.cellsHost.CellResetValue(2, cellsColValue)
	require.True(t, ok)
	require.NoError(t, cells.ApplyEdit(2, cellsColValue, reset))
	_, ok = f.w.cellsHost.CellResetValue(2, cellsColValue)
	assert.False(t, ok, "nothing to reset once back at the default")
}

func TestCellsHost_EditingLinkRefreshesTarget(t *testing.T) {
	f := newWorkspaceFixture(t)

	require.NoError(t, f.w.Grid(PaneCells).ApplyEdit(0, cellsColValue, "9"))
	assert.Equal(t, "9"+linkArrow+f.armor.Rows[2].Name, f.w.cellsHost.CellDisplayText(0, cellsColValue))
}

func TestWorkspace_EditContext(t *testing.T) {
	f := newWorkspaceFixture(t)

	label, validate := f.w.editContext(grid.EditRequestMsg{Grid: f.w.Grid(PaneCells), Row: 2, Col: cellsColValue})
	assert.Equal(t, "atk (u16)", label)
	require.NotNil(t, validate)
	assert.NoError(t, validate(int64(5)))
	assert.Error(t, validate(int64(-5)))

	label, validate = f.w.editContext(grid.EditRequestMsg{Grid: f.w.Grid(PaneRows), Row: 0, Col: rowsColName})
	assert.Equal(t, "Row name", label)
	assert.Nil(t, validate)
}

func TestRowsHost_RenameAndModifiedStyle(t *testing.T) {
	f := newWorkspaceFixture(t)
	rows := f.w.Grid(PaneRows)

	require.NoError(t, rows.ApplyEdit(0, rowsColName, "longsword"))
	assert.Equal(t, "longsword", f.weapons.Rows[0].Name)
	assert.ErrorIs(t, rows.ApplyEdit(0, rowsColID, "1"), grid.ErrNotEditable)

	var style grid.CellStyle
	f.w.rowsHost.StyleCell(0, rowsColID, &style)
	assert.True(t, style.Bold, "refId differs from its default")
	assert.Equal(t, "1 modified fields", f.w.rowsHost.CellTooltipText(0, rowsColName))
}

func TestTablesHost_ErrorTables(t *testing.T) {
	f := newWorkspaceFixture(t)
	f.armor.MarkError("layout not found")

	var style grid.CellStyle
	f.w.tablesHost.StyleCell(1, 0, &style)
	assert.Equal(t, theme.ColorLinkInvalidBg, style.Background)
	assert.Equal(t, "error: layout not found", f.w.tablesHost.CellTooltipText(1, 0))
	assert.Equal(t, "Weapon params", f.w.tablesHost.CellTooltipText(0, 0))
}

func TestWorkspace_ViewHasPaneTitles(t *testing.T) {
	f := newWorkspaceFixture(t)
	view := f.w.View()

	assert.Contains(t, view, "Tables (2)")
	assert.Contains(t, view, "Weapons (3)")
	assert.Contains(t, view, "10 sword")
}
