package services

import (
	"fmt"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/history"
	"github.com/paramdex/paramdex/internal/logging"
)

// ViewState is the navigation state carried between sessions
type ViewState struct {
	History *history.History
	Anchors *history.Anchors
}

// ViewStateService reads and writes ViewState through settings.json
type ViewStateService struct {
	settingsPath string
}

// NewViewStateService creates a new ViewStateService for the settings file at path
func NewViewStateService(settingsPath string) *ViewStateService {
	return &ViewStateService{settingsPath: settingsPath}
}

// Load restores the saved state. Corrupt or missing payloads yield a fresh
// timeline and an empty anchor store.
func (s *ViewStateService) Load(settings *config.Settings) *ViewState {
	state := &ViewState{History: history.New(), Anchors: history.NewAnchors()}
	if settings == nil {
		return state
	}
	state.History.Load(settings.History)
	state.Anchors.Load(settings.Anchors)
	logging.Logger.Debug("View state loaded", "entries", state.History.Len(), "index", state.History.Index())
	return state
}

// Store writes the state back, keeping every other setting as it is on disk
func (s *ViewStateService) Store(state *ViewState) error {
	settings, err := config.LoadSettingsFrom(s.settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.History = state.History.Save()
	settings.Anchors = state.Anchors.Save()
	if err := config.SaveSettingsTo(s.settingsPath, settings); err != nil {
		logging.Logger.Error("Failed to store view state", "error", err)
		return fmt.Errorf("failed to store view state: %w", err)
	}
	logging.Logger.Debug("View state stored", "entries", state.History.Len())
	return nil
}
