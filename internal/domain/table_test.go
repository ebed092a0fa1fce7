package domain

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() *Layout {
	hp, _ := IntValue(KindS32, 100)
	return &Layout{
		Name:        "Weapons",
		Description: "Weapon parameters",
		Cells: []CellDef{
			{Name: "hp", Kind: KindS32, Default: hp},
			{Name: "pad0", Kind: KindDummy, Size: 2},
			{Name: "weight", Kind: KindF32},
			{Name: "isHeavy", Kind: KindB8},
			{Name: "upgradeId", Kind: KindS32},
		},
	}
}

func newTestTable(t *testing.T, ids ...int64) *Table {
	t.Helper()
	table := NewTable("Weapons", testLayout())
	for _, id := range ids {
		_, err := table.CreateRow(id, "")
		require.NoError(t, err)
	}
	return table
}

func rowIDs(table *Table) []int64 {
	ids := make([]int64, len(table.Rows))
	for i, r := range table.Rows {
		ids[i] = r.ID
	}
	return ids
}

func TestCreateRow_KeepsRowsSorted(t *testing.T) {
	table := newTestTable(t, 50, 10, 30, 20, 40, 0)

	ids := rowIDs(table)
	assert.True(t, sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }))
	assert.Equal(t, []int64{0, 10, 20, 30, 40, 50}, ids)

	idx, ok := table.RowIndexByID(30)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestCreateRow_ReturnsInsertPosition(t *testing.T) {
	table := newTestTable(t, 10, 30)

	idx, err := table.CreateRow(20, "middle")

	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "middle", table.Rows[1].Name)
	assert.Len(t, table.Rows[1].Cells, len(table.Schema))
	assert.Equal(t, int64(100), table.Rows[1].Cells[0].Value.Int(), "new rows start at schema defaults")
	assert.False(t, table.Rows[1].Cells[0].Modified())
}

func TestCreateRow_DuplicateIDLeavesTableUntouched(t *testing.T) {
	table := newTestTable(t, 10, 20, 30)
	table.Rows[1].Name = "original"
	before := rowIDs(table)

	idx, err := table.CreateRow(20, "dup")

	assert.ErrorIs(t, err, ErrDuplicateRowID)
	assert.Equal(t, -1, idx)
	assert.Equal(t, before, rowIDs(table))
	assert.Equal(t, "original", table.Rows[1].Name)
}

func TestDuplicateRow_CopiesValuesWithoutAliasing(t *testing.T) {
	table := newTestTable(t, 10)
	v, _ := IntValue(KindS32, 7)
	require.NoError(t, table.Rows[0].Cells[4].Set(v))

	idx, err := table.DuplicateRow(0, 11, "copy")
	require.NoError(t, err)
	assert.Equal(t, int64(7), table.Rows[idx].Cells[4].Value.Int())

	v2, _ := IntValue(KindS32, 8)
	require.NoError(t, table.Rows[idx].Cells[4].Set(v2))
	assert.Equal(t, int64(7), table.Rows[0].Cells[4].Value.Int())

	_, err = table.DuplicateRow(5, 12, "missing")
	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestDeleteRow(t *testing.T) {
	table := newTestTable(t, 1, 2, 3)

	require.NoError(t, table.DeleteRow(1))
	assert.Equal(t, []int64{1, 3}, rowIDs(table))

	assert.ErrorIs(t, table.DeleteRow(2), ErrRowNotFound)
	assert.ErrorIs(t, table.DeleteRow(-1), ErrRowNotFound)
}

func TestCell_SetRejectsWrongKind(t *testing.T) {
	table := newTestTable(t, 1)

	err := table.Rows[0].Cells[0].Set(BoolValue(KindB8, true))

	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCell_ModifiedAndReset(t *testing.T) {
	table := newTestTable(t, 1)
	cell := &table.Rows[0].Cells[0]
	v, _ := IntValue(KindS32, 5)

	require.NoError(t, cell.Set(v))
	assert.True(t, cell.Modified())
	assert.Equal(t, 1, table.Rows[0].ModifiedCount())

	cell.Reset()
	assert.False(t, cell.Modified())
}

func TestFindRowByName(t *testing.T) {
	table := newTestTable(t, 1, 2, 3, 4)
	table.Rows[0].Name = "Dagger"
	table.Rows[1].Name = "Longsword"
	table.Rows[2].Name = "Broadsword"
	table.Rows[3].Name = "Axe"

	tests := []struct {
		name    string
		pattern string
		start   int
		want    int
		found   bool
	}{
		{name: "case insensitive", pattern: "SWORD", start: 0, want: 1, found: true},
		{name: "starts at start", pattern: "sword", start: 2, want: 2, found: true},
		{name: "wraps around", pattern: "dagger", start: 1, want: 0, found: true},
		{name: "start out of range resets", pattern: "axe", start: 99, want: 3, found: true},
		{name: "not found", pattern: "bow", start: 0, want: -1, found: false},
		{name: "empty pattern", pattern: "", start: 0, want: -1, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.FindRowByName(tt.pattern, tt.start)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindCellByName_SkipsPadding(t *testing.T) {
	table := newTestTable(t)

	_, ok := table.FindCellByName("pad", 0)
	assert.False(t, ok)

	idx, ok := table.FindCellByName("ID", 0)
	assert.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestNamesImportExport(t *testing.T) {
	table := newTestTable(t, 1, 2, 3)
	table.Rows[1].Name = "Kept"

	names, err := ParseNames(strings.NewReader("1 Dagger\n\n2 Replaced\n3  Spaced name \n"))
	require.NoError(t, err)

	changed := table.ImportNames(names, false)
	assert.Equal(t, 2, changed)
	assert.Equal(t, "Kept", table.Rows[1].Name)

	changed = table.ImportNames(names, true)
	assert.Equal(t, 1, changed)
	assert.Equal(t, "Replaced", table.Rows[1].Name)

	var buf bytes.Buffer
	n, err := table.ExportNames(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "1 Dagger\n2 Replaced\n3 Spaced name\n", buf.String())
}

func TestParseNames_ReportsBadLine(t *testing.T) {
	_, err := ParseNames(strings.NewReader("1 ok\nnot a name line\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCatalog_LookupAndFingerprint(t *testing.T) {
	a := newTestTable(t, 1, 2)
	b := NewTable("Armor", nil)
	catalog := NewCatalog("/tmp/x.paramdb", []*Table{a, b})

	idx, ok := catalog.TableIndex("Armor")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Nil(t, catalog.Table(5))

	_, err := catalog.TableByName("Shields")
	assert.ErrorIs(t, err, ErrTableNotFound)

	before := catalog.Fingerprint()
	assert.Equal(t, before, catalog.Fingerprint())

	v, _ := IntValue(KindS32, 1)
	require.NoError(t, a.Rows[0].Cells[4].Set(v))
	assert.NotEqual(t, before, catalog.Fingerprint())

	a.Rows[0].Cells[4].Reset()
	assert.Equal(t, before, catalog.Fingerprint())
}
