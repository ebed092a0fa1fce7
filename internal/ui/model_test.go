package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/grid"
	"github.com/paramdex/paramdex/internal/linkrules"
	portsmocks "github.com/paramdex/paramdex/internal/ports/mocks"
	"github.com/paramdex/paramdex/internal/services"
	"github.com/paramdex/paramdex/internal/theme"
)

// newTestModel opens the workspace fixture catalog through a mocked archive
func newTestModel(t *testing.T, settings *config.Settings) (*Model, *portsmocks.MockTableArchive) {
	t.Helper()
	catalog := newWorkspaceFixture(t).w.Catalog()

	archive := portsmocks.NewMockTableArchive(t)
	layouts := portsmocks.NewMockLayoutSource(t)
	layoutSet := map[string]*domain.Layout{}
	layouts.EXPECT().LoadLayouts(mock.Anything, "/layouts").Return(layoutSet, nil)
	archive.EXPECT().Load(mock.Anything, "test.db", layoutSet).Return(catalog, nil).Once()

	service := services.NewArchiveService(archive, layouts, nil, nil)
	_, err := service.Open(context.Background(), "test.db", "/layouts")
	require.NoError(t, err)

	rules, warnings := linkrules.Parse(strings.NewReader(workspaceRules), catalog)
	require.Empty(t, warnings)

	m := NewModel(ModelOptions{
		Archive:         service,
		ErrorClearDelay: time.Second,
		Rules:           rules,
		Settings:        settings,
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, archive
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestModel_QuitWhenClean(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(QuitMsg{})

	assert.IsType(t, tea.QuitMsg{}, runCmd(t, cmd))
}

func TestModel_QuitWhenDirtyAsksFirst(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.workspace.CurrentTable().Rows[0].Name = "great sword"
	require.True(t, m.archive.Dirty())

	m.Update(QuitMsg{})
	assert.Equal(t, stateConfirming, m.state)
	assert.Equal(t, confirmQuit, m.confirm)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateWorkspace, m.state)
}

func TestModel_ForceQuitSkipsConfirmation(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.workspace.CurrentTable().Rows[0].Name = "great sword"

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.IsType(t, tea.QuitMsg{}, runCmd(t, cmd))
}

func TestModel_Save(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m, archive := newTestModel(t, nil)
		m.workspace.CurrentTable().Rows[0].Name = "great sword"
		archive.EXPECT().Backup(mock.Anything, "test.db").Return("test.db.bak", true, nil)
		archive.EXPECT().Save(mock.Anything, "test.db", m.archive.Catalog()).Return(nil)

		_, cmd := m.Update(SaveMsg{})
		require.Equal(t, stateBusy, m.state)

		// input is ignored while saving
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		require.Equal(t, stateBusy, m.state)

		m.Update(runCmd(t, cmd))
		assert.Equal(t, stateWorkspace, m.state)
		assert.False(t, m.archive.Dirty())
		assert.Equal(t, "Saved test.db", m.status)
		assert.False(t, m.errorManager.HasError())
	})

	t.Run("failure", func(t *testing.T) {
		m, archive := newTestModel(t, nil)
		archive.EXPECT().Backup(mock.Anything, "test.db").Return("", false, errors.New("disk full"))

		_, cmd := m.Update(SaveMsg{})
		m.Update(runCmd(t, cmd))

		assert.Equal(t, stateWorkspace, m.state)
		require.True(t, m.errorManager.HasError())
		assert.Contains(t, m.errorManager.GetError().Error(), "disk full")
	})
}

func TestModel_RestoreWithoutBackup(t *testing.T) {
	m, archive := newTestModel(t, nil)
	archive.EXPECT().HasBackup("test.db").Return(false)

	m.Update(RestoreMsg{})

	assert.Equal(t, stateWorkspace, m.state)
	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrBackupMissing)
}

func TestModel_DeleteRow(t *testing.T) {
	t.Run("asks by default", func(t *testing.T) {
		m, _ := newTestModel(t, nil)

		m.Update(DeleteRowMsg{})

		assert.Equal(t, stateConfirming, m.state)
		assert.Equal(t, confirmDeleteRow, m.confirm)
		assert.Len(t, m.workspace.CurrentTable().Rows, 3)
	})

	t.Run("deletes directly when verification is off", func(t *testing.T) {
		verify := false
		m, _ := newTestModel(t, &config.Settings{VerifyRowDeletion: &verify})

		m.Update(DeleteRowMsg{})

		assert.Equal(t, stateWorkspace, m.state)
		rows := m.workspace.CurrentTable().Rows
		require.Len(t, rows, 2)
		assert.Equal(t, int64(20), rows[0].ID)
		assert.True(t, m.archive.Dirty())
	})
}

func TestModel_CommandPalette(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	require.Equal(t, stateCommandPalette, m.state)
	assert.Contains(t, m.View(), "Command Palette")
	assert.Contains(t, m.commandPalette.context, "Weapons / 10")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateWorkspace, m.state)
	assert.Nil(t, m.commandPalette)
}

func TestModel_ErrorIsClearedAfterDelay(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.ShowStartupWarnings([]error{errors.New("table Broken: unknown layout")})
	require.True(t, m.errorManager.HasError())
	assert.Contains(t, m.View(), "unknown layout")

	m.Update(clearErrorMsg{})

	assert.False(t, m.errorManager.HasError())
}

func TestModel_TitleBar(t *testing.T) {
	m, _ := newTestModel(t, nil)
	assert.NotContains(t, m.titleBar(), "modified")

	m.workspace.CurrentTable().Rows[0].Name = "great sword"
	assert.Contains(t, m.titleBar(), "● modified")

	m.Update(updateAvailableMsg{version: "v1.2.0", url: "https://example.com"})
	assert.Contains(t, m.titleBar(), "v1.2.0 available")
}

func TestModel_HistoryArrows(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.workspace.Grid(PaneCells).Select(0, cellsColValue, grid.ScrollMinimal)
	require.True(t, m.workspace.FollowSelectedLink())
	assert.Contains(t, m.footer(), theme.HistoryAvailableStyle.Render("◀"))

	m.Update(GoBackMsg{})
	assert.Equal(t, "Weapons", m.workspace.CurrentTable().Name)
	assert.True(t, m.workspace.CanGoForward())

	m.Update(GoForwardMsg{})
	assert.Equal(t, "Armor", m.workspace.CurrentTable().Name)
}

func TestModel_CtrlHomeEndJumpToFirstAndLastRow(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyType
		wantID int64
	}{
		{name: "ctrl+end", keys: []tea.KeyType{tea.KeyCtrlEnd}, wantID: 30},
		{name: "ctrl+end then ctrl+home", keys: []tea.KeyType{tea.KeyCtrlEnd, tea.KeyCtrlHome}, wantID: 10},
		{name: "end", keys: []tea.KeyType{tea.KeyEnd}, wantID: 30},
		{name: "end then home", keys: []tea.KeyType{tea.KeyEnd, tea.KeyHome}, wantID: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, nil)
			m.workspace.SetFocus(PaneRows)

			for _, k := range tt.keys {
				m.Update(tea.KeyMsg{Type: k})
			}

			require.NotNil(t, m.workspace.CurrentRow())
			assert.Equal(t, tt.wantID, m.workspace.CurrentRow().ID)
		})
	}
}
