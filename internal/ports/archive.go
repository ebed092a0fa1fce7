package ports

import (
	"context"

	"github.com/paramdex/paramdex/internal/domain"
)

// ArchiveReader loads a catalog from an archive file
type ArchiveReader interface {
	// Load reads every table of the archive at path. Tables whose layout is
	// missing or whose rows do not decode are returned flagged with an error.
	Load(ctx context.Context, path string, layouts map[string]*domain.Layout) (*domain.Catalog, error)
}

// ArchiveWriter persists tables
type ArchiveWriter interface {
	// Save writes all tables of the catalog to path in one transaction.
	// Tables flagged with an error are left as they are on disk.
	Save(ctx context.Context, path string, catalog *domain.Catalog) error
	// Export writes each table to its own archive under dir and returns the
	// written file paths
	Export(ctx context.Context, dir string, tables []*domain.Table) ([]string, error)
}

// BackupManager keeps a single backup copy next to an archive
type BackupManager interface {
	// Backup copies path to its backup location unless a backup exists.
	// It returns the backup path and whether a copy was made.
	Backup(ctx context.Context, path string) (string, bool, error)
	HasBackup(path string) bool
	// Restore copies the backup over the archive
	Restore(ctx context.Context, path string) error
}

// TableArchive is the composite interface
type TableArchive interface {
	ArchiveReader
	ArchiveWriter
	BackupManager
}

// LayoutSource loads table schemas
type LayoutSource interface {
	LoadLayouts(ctx context.Context, dir string) (map[string]*domain.Layout, error)
}
