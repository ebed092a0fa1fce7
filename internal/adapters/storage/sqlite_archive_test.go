package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/domain"
)

func weaponLayout(t *testing.T) *domain.Layout {
	t.Helper()
	file := LayoutFile{
		Description: "Weapons",
		Cells: []LayoutCell{
			{Name: "refId", Type: "s32", Default: "-1"},
			{Name: "flag", Type: "u8", Default: "1"},
			{Name: "weight", Type: "f32"},
			{Name: "label", Type: "fixstr", Size: 8},
			{Name: "pad", Type: "dummy", Size: 2},
			{Name: "mask", Type: "x16", Default: "00FF"},
		},
	}
	layout, err := file.toDomain("Weapon")
	require.NoError(t, err)
	return layout
}

func sampleCatalog(t *testing.T, path string) *domain.Catalog {
	t.Helper()
	weapons := domain.NewTable("EquipParamWeapon", weaponLayout(t))
	_, err := weapons.CreateRow(10, "Dagger")
	require.NoError(t, err)
	i, err := weapons.CreateRow(5, "Club")
	require.NoError(t, err)

	row := weapons.Rows[i]
	v, err := domain.IntValue(domain.KindS32, 42)
	require.NoError(t, err)
	require.NoError(t, row.Cells[0].Set(v))
	f, err := domain.FloatValue(domain.KindF32, 2.5)
	require.NoError(t, err)
	require.NoError(t, row.Cells[2].Set(f))
	require.NoError(t, row.Cells[3].Set(domain.StringValue(domain.KindFixStr, "club")))

	return domain.NewCatalog(path, []*domain.Table{weapons})
}

func layoutsFor(t *testing.T) map[string]*domain.Layout {
	return map[string]*domain.Layout{"Weapon": weaponLayout(t)}
}

func TestSQLiteArchive_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "regulation.db")
	archive := NewSQLiteArchive()

	original := sampleCatalog(t, path)
	require.NoError(t, archive.Save(ctx, path, original))

	loaded, err := archive.Load(ctx, path, layoutsFor(t))
	require.NoError(t, err)
	require.Len(t, loaded.Tables, 1)

	table := loaded.Tables[0]
	assert.False(t, table.Error)
	assert.Equal(t, "Weapon", table.LayoutName)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, int64(5), table.Rows[0].ID)
	assert.Equal(t, "Club", table.Rows[0].Name)
	assert.Equal(t, int64(42), table.Rows[0].Cells[0].Value.Int())
	assert.Equal(t, "club", table.Rows[0].Cells[3].Value.Text())
	assert.Equal(t, int64(0xFF), table.Rows[1].Cells[5].Value.Int())
	assert.Equal(t, original.Fingerprint(), loaded.Fingerprint())
}

func TestSQLiteArchive_SaveReplacesRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "regulation.db")
	archive := NewSQLiteArchive()

	catalog := sampleCatalog(t, path)
	require.NoError(t, archive.Save(ctx, path, catalog))

	table := catalog.Tables[0]
	require.NoError(t, table.DeleteRow(0))
	require.NoError(t, archive.Save(ctx, path, catalog))

	loaded, err := archive.Load(ctx, path, layoutsFor(t))
	require.NoError(t, err)
	require.Len(t, loaded.Tables[0].Rows, 1)
	assert.Equal(t, int64(10), loaded.Tables[0].Rows[0].ID)
}

func TestSQLiteArchive_LoadFlagsTables(t *testing.T) {
	ctx := context.Background()
	archive := NewSQLiteArchive()

	t.Run("missing layout", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "regulation.db")
		require.NoError(t, archive.Save(ctx, path, sampleCatalog(t, path)))

		loaded, err := archive.Load(ctx, path, map[string]*domain.Layout{})
		require.NoError(t, err)
		require.Len(t, loaded.Tables, 1)
		assert.True(t, loaded.Tables[0].Error)
		assert.Contains(t, loaded.Tables[0].ErrorDetail, "Weapon")
		assert.Empty(t, loaded.Tables[0].Rows)
	})

	t.Run("rows do not decode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "regulation.db")
		require.NoError(t, archive.Save(ctx, path, sampleCatalog(t, path)))

		db, closeFn, err := openDB(path)
		require.NoError(t, err)
		require.NoError(t, db.Model(&ParamRowModel{}).Where("id = ?", 10).Update("data", `["1"]`).Error)
		closeFn()

		loaded, err := archive.Load(ctx, path, layoutsFor(t))
		require.NoError(t, err)
		assert.True(t, loaded.Tables[0].Error)
		assert.Contains(t, loaded.Tables[0].ErrorDetail, "row 10")
		assert.Empty(t, loaded.Tables[0].Rows)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := archive.Load(ctx, filepath.Join(t.TempDir(), "none.db"), layoutsFor(t))
		assert.Error(t, err)
	})
}

func TestSQLiteArchive_SaveKeepsErrorTablesOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "regulation.db")
	archive := NewSQLiteArchive()
	require.NoError(t, archive.Save(ctx, path, sampleCatalog(t, path)))

	flagged, err := archive.Load(ctx, path, map[string]*domain.Layout{})
	require.NoError(t, err)
	require.NoError(t, archive.Save(ctx, path, flagged))

	loaded, err := archive.Load(ctx, path, layoutsFor(t))
	require.NoError(t, err)
	assert.False(t, loaded.Tables[0].Error)
	assert.Len(t, loaded.Tables[0].Rows, 2)
}

func TestSQLiteArchive_Export(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	archive := NewSQLiteArchive()

	catalog := sampleCatalog(t, filepath.Join(dir, "regulation.db"))
	broken := domain.NewTable("Broken", nil)
	broken.MarkError("no layout")
	tables := append([]*domain.Table{broken}, catalog.Tables...)

	outDir := filepath.Join(dir, "out")
	paths, err := archive.Export(ctx, outDir, tables)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(outDir, "EquipParamWeapon.paramdb")}, paths)

	exported, err := archive.Load(ctx, paths[0], layoutsFor(t))
	require.NoError(t, err)
	require.Len(t, exported.Tables, 1)
	assert.Equal(t, catalog.Fingerprint(), exported.Fingerprint())

	// exporting again overwrites
	paths, err = archive.Export(ctx, outDir, catalog.Tables)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestSQLiteArchive_BackupRestore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "regulation.db")
	archive := NewSQLiteArchive()

	err := archive.Restore(ctx, path)
	assert.ErrorIs(t, err, domain.ErrBackupMissing)

	bak, made, err := archive.Backup(ctx, path)
	require.NoError(t, err)
	assert.False(t, made, "nothing to back up before the first save")
	assert.Empty(t, bak)

	catalog := sampleCatalog(t, path)
	require.NoError(t, archive.Save(ctx, path, catalog))

	bak, made, err = archive.Backup(ctx, path)
	require.NoError(t, err)
	assert.True(t, made)
	assert.Equal(t, path+".bak", bak)
	assert.True(t, archive.HasBackup(path))

	_, made, err = archive.Backup(ctx, path)
	require.NoError(t, err)
	assert.False(t, made, "an existing backup is never overwritten")

	require.NoError(t, catalog.Tables[0].DeleteRow(0))
	require.NoError(t, archive.Save(ctx, path, catalog))

	require.NoError(t, archive.Restore(ctx, path))
	restored, err := archive.Load(ctx, path, layoutsFor(t))
	require.NoError(t, err)
	assert.Len(t, restored.Tables[0].Rows, 2)

	_, err = os.Stat(bak)
	assert.NoError(t, err, "restore keeps the backup")
}
