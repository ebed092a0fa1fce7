package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/config"
)

func TestViewStateService_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, config.SaveSettingsTo(path, &config.Settings{ArchivePath: "/data/regulation.db"}))
	service := NewViewStateService(path)

	state := service.Load(nil)
	state.History.Current().Tables.Selected = 3
	state.History.Current().Table(3).Rows.Selected = 12
	state.History.Push(true)
	state.History.Current().Table(3).Cells.Selected = 4
	state.Anchors.SetTable("EquipParamWeapon")
	state.Anchors.StoreRowTop(40)
	require.NoError(t, service.Store(state))

	settings, err := config.LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/regulation.db", settings.ArchivePath, "other settings survive")

	loaded := service.Load(settings)
	assert.Equal(t, 2, loaded.History.Len())
	assert.Equal(t, 1, loaded.History.Index())
	assert.True(t, loaded.History.Current().Equal(state.History.Current()))

	loaded.Anchors.SetTable("EquipParamWeapon")
	anchor, ok := loaded.Anchors.Recall()
	require.True(t, ok)
	assert.Equal(t, 40, anchor.RowTop)
}

func TestViewStateService_CorruptStateResets(t *testing.T) {
	service := NewViewStateService(filepath.Join(t.TempDir(), "settings.json"))

	state := service.Load(&config.Settings{History: "v1|9|garbage", Anchors: "no-colons"})
	assert.Equal(t, 1, state.History.Len())
	assert.Equal(t, 0, state.History.Index())

	state.Anchors.SetTable("EquipParamWeapon")
	_, ok := state.Anchors.Recall()
	assert.False(t, ok)
}
