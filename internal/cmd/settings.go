package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys       SettingsKeysCmd       `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta       SettingsMetaCmd       `cmd:"meta" help:"Show settings file location and available options"`
	SetArchive SettingsSetArchiveCmd `cmd:"set-archive" help:"Remember the archive opened by default"`
	Show       SettingsShowCmd       `cmd:"show" help:"Print the current settings.json" default:"1"`
}

// SettingsShowCmd prints the settings file
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()
	settings, err := config.LoadSettingsFrom(path)
	if err != nil {
		return err
	}
	// view state is noise for humans
	settings.History, settings.Anchors = "", ""

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Printf("Settings file: %s\n\n%s\n", path, data)
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for k := range example {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// SettingsSetArchiveCmd stores archive_path
type SettingsSetArchiveCmd struct {
	Path string `arg:"" help:"Archive path" type:"existingfile"`
}

// Run executes the set-archive command
func (s *SettingsSetArchiveCmd) Run(cli *CLI) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.ArchivePath = s.Path
	logging.Logger.Debug("Setting archive path", "path", s.Path)

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Default archive: %s\n", s.Path)
	return nil
}
