package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/ports"
)

// LayoutFile is the JSON form of one layout, stored as <dir>/<name>.json
type LayoutFile struct {
	Cells       []LayoutCell                  `json:"cells"`
	Description string                        `json:"description,omitempty"`
	Enums       map[string][]LayoutEnumOption `json:"enums,omitempty"`
}

// LayoutCell is one schema entry of a LayoutFile
type LayoutCell struct {
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        string `json:"enum,omitempty"`
	Name        string `json:"name"`
	Size        int    `json:"size,omitempty"`
	Type        string `json:"type"`
}

// LayoutEnumOption is one labelled enum value
type LayoutEnumOption struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// JSONLayoutSource implements ports.LayoutSource over a directory of JSON files
type JSONLayoutSource struct{}

// Verify interface compliance at compile time
var _ ports.LayoutSource = (*JSONLayoutSource)(nil)

// NewJSONLayoutSource creates a new JSONLayoutSource
func NewJSONLayoutSource() *JSONLayoutSource {
	return &JSONLayoutSource{}
}

// LoadLayouts reads every *.json file in dir. A file that fails to parse is
// skipped with a warning, so the tables using it load flagged as errors.
func (s *JSONLayoutSource) LoadLayouts(ctx context.Context, dir string) (map[string]*domain.Layout, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	sort.Strings(matches)

	layouts := make(map[string]*domain.Layout, len(matches))
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		layout, err := readLayout(path, name)
		if err != nil {
			logging.Logger.Warn("Skipping layout", "path", path, "error", err)
			continue
		}
		layouts[name] = layout
	}

	logging.Logger.Info("Layouts loaded", "dir", dir, "count", len(layouts))
	return layouts, nil
}

func readLayout(path, name string) (*domain.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file LayoutFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid layout json: %w", err)
	}
	return file.toDomain(name)
}

func (f LayoutFile) toDomain(name string) (*domain.Layout, error) {
	layout := &domain.Layout{
		Name:        name,
		Description: f.Description,
		Cells:       make([]domain.CellDef, 0, len(f.Cells)),
	}

	for i, c := range f.Cells {
		kind, err := domain.ParseKind(c.Type)
		if err != nil {
			return nil, fmt.Errorf("cell %d (%s): %w", i, c.Name, err)
		}
		def := domain.CellDef{
			Name:        c.Name,
			Kind:        kind,
			Size:        c.Size,
			Description: c.Description,
			Enum:        c.Enum,
		}
		switch {
		case kind.IsPadding():
			def.Default = domain.RawValue(kind, make([]byte, c.Size))
		case c.Default != "":
			v, err := def.Parse(c.Default)
			if err != nil {
				return nil, fmt.Errorf("cell %d (%s) default: %w", i, c.Name, err)
			}
			def.Default = v
		default:
			def.Default = domain.ZeroValue(kind)
		}
		layout.Cells = append(layout.Cells, def)
	}

	if len(f.Enums) > 0 {
		layout.Enums = make(map[string][]domain.EnumOption, len(f.Enums))
		for enumName, opts := range f.Enums {
			options := make([]domain.EnumOption, len(opts))
			for i, o := range opts {
				options[i] = domain.EnumOption{Label: o.Label, Value: o.Value}
			}
			layout.Enums[enumName] = options
		}
	}
	return layout, nil
}

// WriteLayout stores a layout as <dir>/<name>.json
func WriteLayout(dir string, layout *domain.Layout) error {
	file := LayoutFile{Description: layout.Description}
	for _, def := range layout.Cells {
		cell := LayoutCell{
			Description: def.Description,
			Enum:        def.Enum,
			Name:        def.Name,
			Size:        def.Size,
			Type:        def.Kind.String(),
		}
		if !def.Kind.IsPadding() && def.Default.Kind() == def.Kind {
			cell.Default = def.Default.String()
		}
		file.Cells = append(file.Cells, cell)
	}
	if len(layout.Enums) > 0 {
		file.Enums = make(map[string][]LayoutEnumOption, len(layout.Enums))
		for name, opts := range layout.Enums {
			for _, o := range opts {
				file.Enums[name] = append(file.Enums[name], LayoutEnumOption{Label: o.Label, Value: o.Value})
			}
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create layouts directory: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, layout.Name+".json"), data, 0644)
}
