package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/ports"
)

const (
	// ArchiveFormat is written to the meta table of every saved archive
	ArchiveFormat = "1"
	// ExportExtension is the file extension of per-table exports
	ExportExtension = ".paramdb"

	backupSuffix   = ".bak"
	insertBatch    = 500
	exportParallel = 4
)

// SQLiteArchive implements ports.TableArchive on SQLite files using GORM.
// Every call opens and closes its own connection, so the archive file is
// complete on disk whenever no call is running.
type SQLiteArchive struct{}

// Verify interface compliance at compile time
var _ ports.TableArchive = (*SQLiteArchive)(nil)

// NewSQLiteArchive creates a new SQLiteArchive
func NewSQLiteArchive() *SQLiteArchive {
	return &SQLiteArchive{}
}

// gormLogger wraps the paramdex logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PARAMDEX_DEBUG_SQL") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// openDB opens (creating if needed) the archive at path and migrates its
// schema. The returned func closes the connection.
func openDB(path string) (*gorm.DB, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&MetaModel{}, &ParamTableModel{}, &ParamRowModel{}); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to migrate archive schema: %w", err)
	}
	return db, closeFn, nil
}

// Load reads every table of the archive at path
func (a *SQLiteArchive) Load(ctx context.Context, path string, layouts map[string]*domain.Layout) (*domain.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	db, closeFn, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var tableModels []ParamTableModel
	var rowModels []ParamRowModel
	err = withRetry(func() error {
		if err := db.WithContext(ctx).Order("position, name").Find(&tableModels).Error; err != nil {
			return err
		}
		return db.WithContext(ctx).Order("table_name, id").Find(&rowModels).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	rowsByTable := make(map[string][]ParamRowModel, len(tableModels))
	for _, m := range rowModels {
		rowsByTable[m.Table] = append(rowsByTable[m.Table], m)
	}

	tables := make([]*domain.Table, 0, len(tableModels))
	for _, tm := range tableModels {
		tables = append(tables, buildTable(tm, rowsByTable[tm.Name], layouts))
	}

	logging.Logger.Info("Archive loaded", "path", path, "tables", len(tables), "rows", len(rowModels))
	return domain.NewCatalog(path, tables), nil
}

// buildTable decodes one stored table. Problems flag the table instead of
// failing the load, and a table that fails to decode keeps no rows.
func buildTable(tm ParamTableModel, rows []ParamRowModel, layouts map[string]*domain.Layout) *domain.Table {
	layoutName := tm.LayoutName
	if layoutName == "" {
		layoutName = tm.Name
	}

	layout, ok := layouts[layoutName]
	if !ok || layout == nil {
		t := domain.NewTable(tm.Name, nil)
		t.Description = tm.Description
		t.LayoutName = layoutName
		t.MarkError(fmt.Sprintf("%v: %s", domain.ErrLayoutMissing, layoutName))
		logging.Logger.Warn("Table has no layout", "table", tm.Name, "layout", layoutName)
		return t
	}

	t := domain.NewTable(tm.Name, layout)
	if tm.Description != "" {
		t.Description = tm.Description
	}
	t.Rows = make([]*domain.Row, 0, len(rows))
	for _, m := range rows {
		row, err := rowModelToDomain(m, t)
		if err != nil {
			t.Rows = nil
			t.MarkError(err.Error())
			logging.Logger.Warn("Table rows do not decode", "table", tm.Name, "error", err)
			return t
		}
		t.Rows = append(t.Rows, row)
	}
	t.SortRows()
	return t
}

// Save writes all tables of the catalog in one transaction
func (a *SQLiteArchive) Save(ctx context.Context, path string, catalog *domain.Catalog) error {
	db, closeFn, err := openDB(path)
	if err != nil {
		return err
	}
	defer closeFn()

	saved, skipped := 0, 0
	err = withRetry(func() error {
		saved, skipped = 0, 0
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i, t := range catalog.Tables {
				if t.Error {
					skipped++
					continue
				}
				if err := saveTable(tx, t, i); err != nil {
					return err
				}
				saved++
			}
			return saveMeta(tx, map[string]string{
				"format":   ArchiveFormat,
				"saved_at": strconv.FormatInt(time.Now().UTC().Unix(), 10),
			})
		})
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save archive: %w", err)
	}

	logging.Logger.Info("Archive saved", "path", path, "tables", saved, "skipped", skipped)
	return nil
}

func saveTable(tx *gorm.DB, t *domain.Table, position int) error {
	layoutName := t.LayoutName
	if layoutName == "" {
		layoutName = t.Name
	}
	tm := domainToTableModel(t, position, layoutName)
	if err := tx.Save(&tm).Error; err != nil {
		return fmt.Errorf("failed to save table %s: %w", t.Name, err)
	}

	if err := tx.Where("table_name = ?", t.Name).Delete(&ParamRowModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear rows of %s: %w", t.Name, err)
	}
	if len(t.Rows) == 0 {
		return nil
	}

	models := make([]ParamRowModel, 0, len(t.Rows))
	for _, r := range t.Rows {
		m, err := domainToRowModel(t.Name, r)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", t.Name, err)
		}
		models = append(models, m)
	}
	if err := tx.CreateInBatches(models, insertBatch).Error; err != nil {
		return fmt.Errorf("failed to write rows of %s: %w", t.Name, err)
	}
	return nil
}

func saveMeta(tx *gorm.DB, values map[string]string) error {
	for k, v := range values {
		m := MetaModel{Key: k, Value: v}
		if err := tx.Save(&m).Error; err != nil {
			return fmt.Errorf("failed to save meta %s: %w", k, err)
		}
	}
	return nil
}

// Export writes each table to <dir>/<table>.paramdb. Tables flagged with an
// error are skipped. Paths are returned in table order.
func (a *SQLiteArchive) Export(ctx context.Context, dir string, tables []*domain.Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	paths := make([]string, len(tables))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(exportParallel)

	for i, t := range tables {
		if t.Error {
			logging.Logger.Warn("Skipping table with errors", "table", t.Name, "detail", t.ErrorDetail)
			continue
		}
		path := filepath.Join(dir, t.Name+ExportExtension)
		g.Go(func() error {
			if err := removeArchive(path); err != nil {
				return err
			}
			if err := a.Save(ctx, path, domain.NewCatalog(path, []*domain.Table{t})); err != nil {
				return fmt.Errorf("failed to export %s: %w", t.Name, err)
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			written = append(written, p)
		}
	}
	logging.Logger.Info("Tables exported", "dir", dir, "files", len(written))
	return written, nil
}

// Backup copies the archive to <path>.bak unless that file exists. A
// missing archive has nothing to back up.
func (a *SQLiteArchive) Backup(ctx context.Context, path string) (string, bool, error) {
	bak := path + backupSuffix
	if a.HasBackup(path) {
		return bak, false, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", false, nil
	}
	if err := copyFile(path, bak); err != nil {
		return "", false, fmt.Errorf("failed to back up archive: %w", err)
	}
	logging.Logger.Info("Archive backed up", "path", path, "backup", bak)
	return bak, true, nil
}

// HasBackup reports whether <path>.bak exists
func (a *SQLiteArchive) HasBackup(path string) bool {
	info, err := os.Stat(path + backupSuffix)
	return err == nil && !info.IsDir()
}

// Restore copies <path>.bak over the archive
func (a *SQLiteArchive) Restore(ctx context.Context, path string) error {
	if !a.HasBackup(path) {
		return fmt.Errorf("%w: %s", domain.ErrBackupMissing, path+backupSuffix)
	}
	if err := removeArchive(path); err != nil {
		return err
	}
	if err := copyFile(path+backupSuffix, path); err != nil {
		return fmt.Errorf("failed to restore archive: %w", err)
	}
	logging.Logger.Info("Archive restored from backup", "path", path)
	return nil
}

// removeArchive deletes an archive together with its WAL side files
func removeArchive(path string) error {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}

// copyFile writes src to a temp file next to dst and renames it into place
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
