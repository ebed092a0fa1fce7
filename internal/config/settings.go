package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "save", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		if len(keys) == 0 {
			continue
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Defaults used when settings.json leaves a value unset
const (
	DefaultErrorClearDelay = 10
	DefaultTooltipDelayMs  = 500
)

// Settings represents the structure of ~/.paramdex/settings.json
type Settings struct {
	Anchors           string            `json:"anchors,omitempty"`
	ArchivePath       string            `json:"archive_path,omitempty"`
	CheckUpdates      *bool             `json:"check_updates,omitempty"`
	Debug             *bool             `json:"debug,omitempty"`
	ErrorClearDelay   *int              `json:"error_clear_delay,omitempty"`
	ExportDir         string            `json:"export_dir,omitempty"`
	History           string            `json:"history,omitempty"`
	Keys              KeyBindingsConfig `json:"keys,omitempty"`
	LayoutsDir        string            `json:"layouts_dir,omitempty"`
	LinkClickAlways   *bool             `json:"link_click_always,omitempty"`
	MaxLogFiles       *int              `json:"max_log_files,omitempty"`
	NamesDir          string            `json:"names_dir,omitempty"`
	RulesFile         string            `json:"rules_file,omitempty"`
	TooltipDelayMs    *int              `json:"tooltip_delay_ms,omitempty"`
	VerifyRowDeletion *bool             `json:"verify_row_deletion,omitempty"`
}

// ShouldCheckUpdates reports whether the startup update check is enabled (default true)
func (s *Settings) ShouldCheckUpdates() bool {
	return s.CheckUpdates == nil || *s.CheckUpdates
}

// ShouldVerifyRowDeletion reports whether row deletion asks for confirmation (default true)
func (s *Settings) ShouldVerifyRowDeletion() bool {
	return s.VerifyRowDeletion == nil || *s.VerifyRowDeletion
}

// ShouldFollowLinksOnClick reports whether a plain click on a link cell follows it
func (s *Settings) ShouldFollowLinksOnClick() bool {
	return s.LinkClickAlways != nil && *s.LinkClickAlways
}

// TooltipDelay returns the configured tooltip debounce in milliseconds
func (s *Settings) TooltipDelay() int {
	if s.TooltipDelayMs != nil && *s.TooltipDelayMs >= 0 {
		return *s.TooltipDelayMs
	}
	return DefaultTooltipDelayMs
}

// ResolvedLayoutsDir returns the layouts directory, falling back to the default
func (s *Settings) ResolvedLayoutsDir() string {
	if s.LayoutsDir != "" {
		return ExpandPath(s.LayoutsDir)
	}
	return GetDefaultLayoutsDir()
}

// ResolvedNamesDir returns the names directory, falling back to the default
func (s *Settings) ResolvedNamesDir() string {
	if s.NamesDir != "" {
		return ExpandPath(s.NamesDir)
	}
	return GetDefaultNamesDir()
}

// ResolvedRulesFile returns the link rules file, falling back to the default
func (s *Settings) ResolvedRulesFile() string {
	if s.RulesFile != "" {
		return ExpandPath(s.RulesFile)
	}
	return GetDefaultRulesFile()
}

// ResolvedExportDir returns the export directory, falling back to the default
func (s *Settings) ResolvedExportDir() string {
	if s.ExportDir != "" {
		return ExpandPath(s.ExportDir)
	}
	return GetDefaultExportDir()
}

// LoadSettings loads settings from $PARAMDEX_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.ArchivePath != "" {
		settings.ArchivePath = ExpandPath(settings.ArchivePath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PARAMDEX_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to an explicit path
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
