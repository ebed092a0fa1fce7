package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/logging"
)

// NamesService imports and exports row name lists
type NamesService struct {
	namesDir string
}

// NewNamesService creates a new NamesService reading defaults from namesDir
func NewNamesService(namesDir string) *NamesService {
	return &NamesService{namesDir: namesDir}
}

// DefaultPath returns <names dir>/<table>.txt
func (s *NamesService) DefaultPath(table string) string {
	return filepath.Join(s.namesDir, table+".txt")
}

// Import applies the names in path (the default file when empty) to table.
// With replace unset only empty names are filled.
func (s *NamesService) Import(table *domain.Table, path string, replace bool) (int, error) {
	if path == "" {
		path = s.DefaultPath(table.Name)
	}
	logging.Logger.Info("Importing row names", "table", table.Name, "path", path, "replace", replace)

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open names file: %w", err)
	}
	defer f.Close()

	names, err := domain.ParseNames(f)
	if err != nil {
		logging.Logger.Warn("Names file is malformed", "path", path, "error", err)
		return 0, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	changed := table.ImportNames(names, replace)
	logging.Logger.Info("Row names imported", "table", table.Name, "changed", changed)
	return changed, nil
}

// Export writes the named rows of table to path (the default file when empty)
func (s *NamesService) Export(table *domain.Table, path string) (int, error) {
	if path == "" {
		path = s.DefaultPath(table.Name)
	}
	logging.Logger.Info("Exporting row names", "table", table.Name, "path", path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create names directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create names file: %w", err)
	}

	written, err := table.ExportNames(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		logging.Logger.Error("Failed to export row names", "path", path, "error", err)
		return 0, fmt.Errorf("failed to write names: %w", err)
	}
	logging.Logger.Info("Row names exported", "table", table.Name, "rows", written)
	return written, nil
}
