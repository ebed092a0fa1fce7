package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/ports"
)

// RemoteScheme prefixes export destinations that are uploaded instead of
// written to a local directory
const RemoteScheme = "s3://"

// ArchiveService owns the open catalog and its lifecycle
type ArchiveService struct {
	archive  ports.TableArchive
	layouts  ports.LayoutSource
	uploader ports.ExportUploader
	metrics  *Metrics

	catalog      *domain.Catalog
	layoutSet    map[string]*domain.Layout
	savedPrint   uint64
	temporaryDir func() (string, error)
}

// NewArchiveService creates a new ArchiveService. uploader and metrics may be nil.
func NewArchiveService(
	archive ports.TableArchive,
	layouts ports.LayoutSource,
	uploader ports.ExportUploader,
	metrics *Metrics,
) *ArchiveService {
	return &ArchiveService{
		archive:  archive,
		layouts:  layouts,
		uploader: uploader,
		metrics:  metrics,
		temporaryDir: func() (string, error) {
			return os.MkdirTemp("", "paramdex-export-")
		},
	}
}

// Open loads the layouts from layoutsDir and then the archive at path
func (s *ArchiveService) Open(ctx context.Context, path, layoutsDir string) (*domain.Catalog, error) {
	logging.Logger.Info("Opening archive", "path", path, "layouts", layoutsDir)
	start := time.Now()

	layouts, err := s.layouts.LoadLayouts(ctx, layoutsDir)
	if err != nil {
		logging.Logger.Error("Failed to load layouts", "dir", layoutsDir, "error", err)
		return nil, fmt.Errorf("failed to load layouts: %w", err)
	}

	catalog, err := s.archive.Load(ctx, path, layouts)
	if err != nil {
		logging.Logger.Error("Failed to load archive", "path", path, "error", err)
		return nil, fmt.Errorf("failed to load archive: %w", err)
	}

	s.catalog = catalog
	s.layoutSet = layouts
	s.savedPrint = catalog.Fingerprint()
	s.metrics.ObserveArchiveLoad(time.Since(start))

	errorTables := 0
	for _, t := range catalog.Tables {
		if t.Error {
			errorTables++
		}
	}
	logging.Logger.Info("Archive opened", "path", path, "tables", len(catalog.Tables), "error_tables", errorTables)
	return catalog, nil
}

// Catalog returns the open catalog, or nil
func (s *ArchiveService) Catalog() *domain.Catalog {
	return s.catalog
}

// Dirty reports whether the catalog changed since it was loaded or saved
func (s *ArchiveService) Dirty() bool {
	return s.catalog != nil && s.catalog.Fingerprint() != s.savedPrint
}

// HasBackup reports whether a backup exists for the open archive
func (s *ArchiveService) HasBackup() bool {
	return s.catalog != nil && s.archive.HasBackup(s.catalog.Path)
}

// Save backs the archive up once and writes the catalog
func (s *ArchiveService) Save(ctx context.Context) error {
	if s.catalog == nil {
		return domain.ErrNoArchive
	}
	path := s.catalog.Path
	logging.Logger.Info("Saving archive", "path", path)

	backup, created, err := s.archive.Backup(ctx, path)
	if err != nil {
		logging.Logger.Error("Failed to back up archive", "path", path, "error", err)
		return fmt.Errorf("failed to back up archive: %w", err)
	}
	if created {
		logging.Logger.Info("Backup created", "backup", backup)
	}

	if err := s.archive.Save(ctx, path, s.catalog); err != nil {
		logging.Logger.Error("Failed to save archive", "path", path, "error", err)
		return fmt.Errorf("failed to save archive: %w", err)
	}

	s.savedPrint = s.catalog.Fingerprint()
	logging.Logger.Info("Archive saved successfully", "path", path)
	return nil
}

// Restore copies the backup over the archive and reloads it. The open
// catalog is replaced only when the reload succeeds.
func (s *ArchiveService) Restore(ctx context.Context) (*domain.Catalog, error) {
	if s.catalog == nil {
		return nil, domain.ErrNoArchive
	}
	path := s.catalog.Path
	logging.Logger.Info("Restoring archive from backup", "path", path)

	if err := s.archive.Restore(ctx, path); err != nil {
		logging.Logger.Error("Failed to restore archive", "path", path, "error", err)
		return nil, fmt.Errorf("failed to restore archive: %w", err)
	}

	catalog, err := s.archive.Load(ctx, path, s.layoutSet)
	if err != nil {
		logging.Logger.Error("Failed to reload restored archive", "path", path, "error", err)
		return nil, fmt.Errorf("failed to reload archive: %w", err)
	}

	s.catalog = catalog
	s.savedPrint = catalog.Fingerprint()
	logging.Logger.Info("Archive restored successfully", "path", path)
	return catalog, nil
}

// Export writes the named tables (all when names is empty) to dest. A dest
// starting with s3:// is exported to a temporary directory and uploaded.
// It returns the written files or remote locations.
func (s *ArchiveService) Export(ctx context.Context, dest string, names []string) ([]string, error) {
	if s.catalog == nil {
		return nil, domain.ErrNoArchive
	}
	tables, err := s.selectTables(names)
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Exporting tables", "dest", dest, "tables", len(tables))

	if !strings.HasPrefix(dest, RemoteScheme) {
		files, err := s.archive.Export(ctx, dest, tables)
		if err != nil {
			logging.Logger.Error("Failed to export tables", "dest", dest, "error", err)
			return nil, fmt.Errorf("failed to export tables: %w", err)
		}
		return files, nil
	}

	if s.uploader == nil {
		return nil, fmt.Errorf("no uploader configured for %s", dest)
	}
	dir, err := s.temporaryDir()
	if err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	defer os.RemoveAll(dir)

	files, err := s.archive.Export(ctx, dir, tables)
	if err != nil {
		logging.Logger.Error("Failed to export tables", "dest", dest, "error", err)
		return nil, fmt.Errorf("failed to export tables: %w", err)
	}
	urls, err := s.uploader.Upload(ctx, dest, files)
	if err != nil {
		logging.Logger.Error("Failed to upload export", "dest", dest, "error", err)
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}
	logging.Logger.Info("Export uploaded", "dest", dest, "files", len(urls))
	return urls, nil
}

func (s *ArchiveService) selectTables(names []string) ([]*domain.Table, error) {
	if len(names) == 0 {
		return s.catalog.Tables, nil
	}
	tables := make([]*domain.Table, 0, len(names))
	for _, name := range names {
		t, err := s.catalog.TableByName(name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
