package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/domain"
)

func namedTable() *domain.Table {
	t := domain.NewTable("EquipParamGoods", &domain.Layout{Name: "Goods"})
	_, _ = t.CreateRow(1, "Herb")
	_, _ = t.CreateRow(2, "")
	_, _ = t.CreateRow(3, "  ")
	return t
}

func TestNamesService_Import(t *testing.T) {
	tests := []struct {
		name        string
		replace     bool
		wantChanged int
		wantNames   []string
	}{
		{name: "fill empty only", replace: false, wantChanged: 2, wantNames: []string{"Herb", "Flask", "Ring"}},
		{name: "replace all", replace: true, wantChanged: 3, wantNames: []string{"Moss", "Flask", "Ring"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "EquipParamGoods.txt"), []byte("1 Moss\n2 Flask\n\n3 Ring\n9 Unused\n"), 0644))

			table := namedTable()
			changed, err := NewNamesService(dir).Import(table, "", tt.replace)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			for i, want := range tt.wantNames {
				assert.Equal(t, want, table.Rows[i].Name)
			}
		})
	}
}

func TestNamesService_ImportErrors(t *testing.T) {
	dir := t.TempDir()
	service := NewNamesService(dir)

	_, err := service.Import(namedTable(), "", false)
	assert.Error(t, err, "missing default file")

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 Moss\nnot a name line\n"), 0644))
	table := namedTable()
	_, err = service.Import(table, bad, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "Herb", table.Rows[0].Name, "nothing applied on parse failure")
}

func TestNamesService_Export(t *testing.T) {
	dir := t.TempDir()
	service := NewNamesService(filepath.Join(dir, "names"))

	written, err := service.Export(namedTable(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	data, err := os.ReadFile(service.DefaultPath("EquipParamGoods"))
	require.NoError(t, err)
	assert.Equal(t, "1 Herb\n", string(data))
}
