package config

import (
	"os"
	"path/filepath"
)

// GetHome returns PARAMDEX_HOME or the ~/.paramdex default
func GetHome() string {
	home := os.Getenv("PARAMDEX_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".paramdex"
		}
		return filepath.Join(homeDir, ".paramdex")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $PARAMDEX_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetDefaultLayoutsDir returns $PARAMDEX_HOME/layouts
func GetDefaultLayoutsDir() string {
	return filepath.Join(GetHome(), "layouts")
}

// GetDefaultNamesDir returns $PARAMDEX_HOME/names
func GetDefaultNamesDir() string {
	return filepath.Join(GetHome(), "names")
}

// GetDefaultRulesFile returns $PARAMDEX_HOME/links.txt
func GetDefaultRulesFile() string {
	return filepath.Join(GetHome(), "links.txt")
}

// GetDefaultExportDir returns $PARAMDEX_HOME/export
func GetDefaultExportDir() string {
	return filepath.Join(GetHome(), "export")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
