package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"save": "ctrl+s",
			"help": []string{"?", "f1"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			switch fieldName {
			case "check_updates", "verify_row_deletion":
				return true
			}
			return false
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 200
			case "tooltip_delay_ms":
				return DefaultTooltipDelayMs
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "archive_path":
			return "~/mods/regulation.paramdb"
		case "layouts_dir":
			return "~/.paramdex/layouts"
		case "names_dir":
			return "~/.paramdex/names"
		case "rules_file":
			return "~/.paramdex/links.txt"
		case "export_dir":
			return "~/.paramdex/export"
		case "history", "anchors":
			return ""
		default:
			return "example"
		}
	}

	return nil
}
