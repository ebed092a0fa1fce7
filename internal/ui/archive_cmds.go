package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/services"
)

const (
	archiveTimeout = 2 * time.Minute
	updateTimeout  = 5 * time.Second
)

// saveArchive writes the catalog back to the archive in the background
func saveArchive(archive *services.ArchiveService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()
		return savedMsg{err: archive.Save(ctx)}
	}
}

// restoreArchive replaces the archive with its backup and reloads it
func restoreArchive(archive *services.ArchiveService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()
		catalog, err := archive.Restore(ctx)
		return restoredMsg{catalog: catalog, err: err}
	}
}

// exportTables writes the named tables to dest, a directory or an s3:// URL
func exportTables(archive *services.ArchiveService, dest string, tables []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()
		files, err := archive.Export(ctx, dest, tables)
		return exportedMsg{files: files, err: err}
	}
}

// checkForUpdate reports a newer release. Failures are logged and dropped.
func checkForUpdate(updates *services.UpdateService) tea.Cmd {
	if updates == nil || !updates.Enabled() {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
		defer cancel()
		release, newer, err := updates.Check(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to check for updates", "error", err)
			return nil
		}
		if !newer {
			return nil
		}
		return updateAvailableMsg{version: release.Version, url: release.URL}
	}
}
