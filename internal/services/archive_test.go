package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/domain"
	portsmocks "github.com/paramdex/paramdex/internal/ports/mocks"
)

func testCatalog(path string) *domain.Catalog {
	layout := &domain.Layout{
		Name:  "Goods",
		Cells: []domain.CellDef{{Name: "price", Kind: domain.KindS32}},
	}
	goods := domain.NewTable("EquipParamGoods", layout)
	_, _ = goods.CreateRow(1, "Herb")
	armor := domain.NewTable("EquipParamProtector", layout)
	return domain.NewCatalog(path, []*domain.Table{goods, armor})
}

func openedService(t *testing.T) (*ArchiveService, *portsmocks.MockTableArchive, *portsmocks.MockExportUploader) {
	t.Helper()
	archive := portsmocks.NewMockTableArchive(t)
	layouts := portsmocks.NewMockLayoutSource(t)
	uploader := portsmocks.NewMockExportUploader(t)

	layoutSet := map[string]*domain.Layout{}
	layouts.EXPECT().LoadLayouts(mock.Anything, "/layouts").Return(layoutSet, nil)
	archive.EXPECT().Load(mock.Anything, "/data/regulation.db", layoutSet).Return(testCatalog("/data/regulation.db"), nil).Once()

	service := NewArchiveService(archive, layouts, uploader, NewMetrics())
	_, err := service.Open(context.Background(), "/data/regulation.db", "/layouts")
	require.NoError(t, err)
	return service, archive, uploader
}

func TestArchiveService_Open(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, _, _ := openedService(t)
		require.NotNil(t, service.Catalog())
		assert.False(t, service.Dirty())
	})

	t.Run("layout failure", func(t *testing.T) {
		archive := portsmocks.NewMockTableArchive(t)
		layouts := portsmocks.NewMockLayoutSource(t)
		layouts.EXPECT().LoadLayouts(mock.Anything, "/layouts").Return(nil, errors.New("denied"))

		service := NewArchiveService(archive, layouts, nil, nil)
		_, err := service.Open(context.Background(), "/data/regulation.db", "/layouts")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load layouts")
		assert.Nil(t, service.Catalog())
	})

	t.Run("archive failure", func(t *testing.T) {
		archive := portsmocks.NewMockTableArchive(t)
		layouts := portsmocks.NewMockLayoutSource(t)
		layouts.EXPECT().LoadLayouts(mock.Anything, mock.Anything).Return(map[string]*domain.Layout{}, nil)
		archive.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).Return(nil, os.ErrNotExist)

		service := NewArchiveService(archive, layouts, nil, nil)
		_, err := service.Open(context.Background(), "/missing.db", "/layouts")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestArchiveService_DirtyAndSave(t *testing.T) {
	service, archive, _ := openedService(t)

	table := service.Catalog().Tables[0]
	table.Rows[0].Name = "Flask"
	assert.True(t, service.Dirty())

	archive.EXPECT().Backup(mock.Anything, "/data/regulation.db").Return("/data/regulation.db.bak", true, nil)
	archive.EXPECT().Save(mock.Anything, "/data/regulation.db", service.Catalog()).Return(nil)

	require.NoError(t, service.Save(context.Background()))
	assert.False(t, service.Dirty())

	// renaming back is a change against the saved state
	table.Rows[0].Name = "Herb"
	assert.True(t, service.Dirty())
}

func TestArchiveService_SaveFailureKeepsDirty(t *testing.T) {
	service, archive, _ := openedService(t)
	service.Catalog().Tables[0].Rows[0].Name = "Flask"

	archive.EXPECT().Backup(mock.Anything, mock.Anything).Return("", false, nil)
	archive.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := service.Save(context.Background())
	require.Error(t, err)
	assert.True(t, service.Dirty())
}

func TestArchiveService_WithoutArchive(t *testing.T) {
	service := NewArchiveService(portsmocks.NewMockTableArchive(t), portsmocks.NewMockLayoutSource(t), nil, nil)

	assert.ErrorIs(t, service.Save(context.Background()), domain.ErrNoArchive)
	_, err := service.Restore(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoArchive)
	_, err = service.Export(context.Background(), "/out", nil)
	assert.ErrorIs(t, err, domain.ErrNoArchive)
	assert.False(t, service.Dirty())
	assert.False(t, service.HasBackup())
}

func TestArchiveService_Restore(t *testing.T) {
	t.Run("reloads", func(t *testing.T) {
		service, archive, _ := openedService(t)
		restored := testCatalog("/data/regulation.db")
		restored.Tables[0].Rows[0].Name = "Restored"

		archive.EXPECT().Restore(mock.Anything, "/data/regulation.db").Return(nil)
		archive.EXPECT().Load(mock.Anything, "/data/regulation.db", mock.Anything).Return(restored, nil).Once()

		catalog, err := service.Restore(context.Background())
		require.NoError(t, err)
		assert.Same(t, restored, catalog)
		assert.Same(t, restored, service.Catalog())
		assert.False(t, service.Dirty())
	})

	t.Run("missing backup keeps catalog", func(t *testing.T) {
		service, archive, _ := openedService(t)
		before := service.Catalog()

		archive.EXPECT().Restore(mock.Anything, mock.Anything).Return(domain.ErrBackupMissing)

		_, err := service.Restore(context.Background())
		assert.ErrorIs(t, err, domain.ErrBackupMissing)
		assert.Same(t, before, service.Catalog())
	})
}

func TestArchiveService_Export(t *testing.T) {
	t.Run("local directory with selected tables", func(t *testing.T) {
		service, archive, _ := openedService(t)
		goods := service.Catalog().Tables[0]

		archive.EXPECT().Export(mock.Anything, "/out", []*domain.Table{goods}).
			Return([]string{"/out/EquipParamGoods.paramdb"}, nil)

		files, err := service.Export(context.Background(), "/out", []string{"EquipParamGoods"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/out/EquipParamGoods.paramdb"}, files)
	})

	t.Run("unknown table", func(t *testing.T) {
		service, _, _ := openedService(t)
		_, err := service.Export(context.Background(), "/out", []string{"Nope"})
		assert.ErrorIs(t, err, domain.ErrTableNotFound)
	})

	t.Run("s3 destination uploads from a temp dir", func(t *testing.T) {
		service, archive, uploader := openedService(t)
		tmp := filepath.Join(t.TempDir(), "staging")
		require.NoError(t, os.Mkdir(tmp, 0755))
		service.temporaryDir = func() (string, error) { return tmp, nil }

		files := []string{filepath.Join(tmp, "EquipParamGoods.paramdb"), filepath.Join(tmp, "EquipParamProtector.paramdb")}
		archive.EXPECT().Export(mock.Anything, tmp, service.Catalog().Tables).Return(files, nil)
		uploader.EXPECT().Upload(mock.Anything, "s3://bucket/params", files).
			Return([]string{"s3://bucket/params/b/EquipParamGoods.paramdb", "s3://bucket/params/b/EquipParamProtector.paramdb"}, nil)

		urls, err := service.Export(context.Background(), "s3://bucket/params", nil)
		require.NoError(t, err)
		assert.Len(t, urls, 2)

		_, err = os.Stat(tmp)
		assert.True(t, os.IsNotExist(err), "staging directory is removed")
	})

	t.Run("upload failure", func(t *testing.T) {
		service, archive, uploader := openedService(t)
		service.temporaryDir = func() (string, error) { return t.TempDir(), nil }

		archive.EXPECT().Export(mock.Anything, mock.Anything, mock.Anything).Return([]string{"a"}, nil)
		uploader.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("forbidden"))

		_, err := service.Export(context.Background(), "s3://bucket", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload export")
	})
}
