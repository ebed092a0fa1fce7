package linkrules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/domain"
)

const testRules = `Weapons:
refId link Armor if flag == 0
refId link Goods if flag == 1
refId link Missing if flag == 2
label link Armor
`

type resolverFixture struct {
	catalog *domain.Catalog
	weapons *domain.Table
	armor   *domain.Table
	row     *domain.Row
	res     *Resolver
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()
	weapons := domain.NewTable("Weapons", &domain.Layout{Cells: []domain.CellDef{
		{Name: "refId", Kind: domain.KindS32},
		{Name: "flag", Kind: domain.KindU8},
		{Name: "label", Kind: domain.KindFixStr, Size: 8},
		{Name: "plain", Kind: domain.KindS32},
	}})
	armor := domain.NewTable("Armor", &domain.Layout{Cells: []domain.CellDef{{Name: "hp", Kind: domain.KindS32}}})
	goods := domain.NewTable("Goods", nil)
	for _, id := range []int64{1, 5, 9} {
		_, err := armor.CreateRow(id, "armor")
		require.NoError(t, err)
	}
	_, err := goods.CreateRow(5, "goods")
	require.NoError(t, err)
	_, err = weapons.CreateRow(100, "sword")
	require.NoError(t, err)

	catalog := domain.NewCatalog("test", []*domain.Table{weapons, armor, goods})
	rules, warnings := Parse(strings.NewReader(testRules), catalog)
	require.Empty(t, warnings)

	return &resolverFixture{
		catalog: catalog,
		weapons: weapons,
		armor:   armor,
		row:     weapons.Rows[0],
		res:     NewResolver(rules, catalog),
	}
}

func (f *resolverFixture) set(t *testing.T, cell int, n int64) {
	t.Helper()
	def := f.weapons.Schema[cell]
	v, err := domain.IntValue(def.Kind, n)
	require.NoError(t, err)
	require.NoError(t, f.row.Cells[cell].Set(v))
	f.res.Invalidate()
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		ref        int64
		flag       int64
		status     Status
		tableIndex int
		rowIndex   int
		targetName string
	}{
		{name: "unset sentinel", ref: -1, status: StatusNone},
		{name: "other negative", ref: -5, status: StatusInvalid},
		{name: "missing row", ref: 4, status: StatusInvalid, tableIndex: 1, rowIndex: -1, targetName: "Armor"},
		{name: "existing row", ref: 5, status: StatusValid, tableIndex: 1, rowIndex: 1, targetName: "Armor"},
		{name: "condition selects second link", ref: 5, flag: 1, status: StatusValid, tableIndex: 2, rowIndex: 0, targetName: "Goods"},
		{name: "target table absent", ref: 5, flag: 2, status: StatusInvalid, tableIndex: -1, rowIndex: -1, targetName: "Missing"},
		{name: "no link matches", ref: 5, flag: 3, status: StatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResolverFixture(t)
			f.set(t, 0, tt.ref)
			f.set(t, 1, tt.flag)

			got := f.res.Resolve(f.weapons, f.row, 0)

			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.ref, got.Value)
			if tt.status == StatusInvalid {
				assert.NotEmpty(t, got.Reason)
			}
			if tt.targetName != "" {
				assert.Equal(t, tt.targetName, got.TableName)
				assert.Equal(t, tt.tableIndex, got.TableIndex)
				assert.Equal(t, tt.rowIndex, got.RowIndex)
			}
			if tt.status == StatusValid {
				require.NotNil(t, got.Row)
				assert.Equal(t, tt.ref, got.Row.ID)
			}
		})
	}
}

func TestResolve_NotAReference(t *testing.T) {
	f := newResolverFixture(t)
	f.set(t, 0, 5)

	assert.Equal(t, StatusNone, f.res.Resolve(f.weapons, f.row, 2).Status, "fixstr cells are never links")
	assert.Equal(t, StatusNone, f.res.Resolve(f.weapons, f.row, 3).Status, "cell without a rule")
	assert.Equal(t, StatusNone, f.res.Resolve(f.weapons, f.row, 42).Status, "out of range cell")
	assert.Equal(t, StatusNone, f.res.Resolve(nil, f.row, 0).Status)
}

func TestResolve_CacheInvalidation(t *testing.T) {
	f := newResolverFixture(t)
	f.set(t, 0, 5)
	require.Equal(t, StatusValid, f.res.Resolve(f.weapons, f.row, 0).Status)

	require.NoError(t, f.armor.DeleteRow(1))
	assert.Equal(t, StatusValid, f.res.Resolve(f.weapons, f.row, 0).Status, "cached until invalidated")

	f.res.Invalidate()
	assert.Equal(t, StatusInvalid, f.res.Resolve(f.weapons, f.row, 0).Status)
}

func TestResolver_Alias(t *testing.T) {
	catalog := domain.NewCatalog("test", []*domain.Table{domain.NewTable("Weapons", &domain.Layout{
		Cells: []domain.CellDef{{Name: "refId", Kind: domain.KindS32}},
	})})
	rules, _ := Parse(strings.NewReader("Weapons:\nrefId alias Reference\n"), catalog)
	res := NewResolver(rules, catalog)

	alias, ok := res.Alias(catalog.Tables[0], 0)
	assert.True(t, ok)
	assert.Equal(t, "Reference", alias)

	_, ok = NewResolver(nil, catalog).Alias(catalog.Tables[0], 0)
	assert.False(t, ok)
}
