package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Drop a custom binding and go back to the default"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g. follow_link, save, quit)"`
	Value string `arg:"" help:"Key binding (e.g. l, ctrl+s, or comma-separated for multiple: up,k)"`
}

// SettingsKeysResetCmd removes a custom binding
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Key name"`
}

type keyEntry struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Help    string   `json:"help"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	names := ui.GetValidKeyNames()
	customKeys := cli.settings.Keys

	entries := make(map[string]keyEntry, len(names))
	for _, name := range names {
		def := ui.GetKeyDefinition(name)
		entries[name] = keyEntry{Custom: customKeys[name], Default: def.Defaults, Help: def.Help}
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(w, "────\t───────\t──────\t──────")
	for _, name := range names {
		e := entries[name]
		custom := "-"
		if len(e.Custom) > 0 {
			custom = strings.Join(e.Custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, strings.Join(e.Default, ", "), custom, e.Help)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'paramdex settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}
	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	return updateKeys(func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	}, fmt.Sprintf("Set '%s' to: %s", s.Key, strings.Join(values, ", ")))
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'", s.Key)
	}
	return updateKeys(func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	}, fmt.Sprintf("Reset '%s' to: %s", s.Key, strings.Join(ui.GetKeyDefinition(s.Key).Defaults, ", ")))
}

// updateKeys applies change to the stored bindings, validates and saves them
func updateKeys(change func(config.KeyBindingsConfig), done string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	change(settings.Keys)
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println(done)
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
