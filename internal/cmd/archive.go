package cmd

import (
	"context"
	"fmt"

	"github.com/paramdex/paramdex/internal/domain"
)

// ExportCmd writes tables to a directory or an s3:// location
type ExportCmd struct {
	Dest   string   `arg:"" help:"Destination directory or s3://bucket/prefix"`
	Tables []string `arg:"" optional:"" help:"Tables to export (default: all)"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	ctx := context.Background()
	if _, err := cli.openArchive(ctx); err != nil {
		return err
	}

	files, err := cli.Container.ArchiveService.Export(ctx, e.Dest, e.Tables)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	fmt.Printf("Exported %d tables\n", len(files))
	return nil
}

// RestoreCmd copies the backup written by the first save over the archive
type RestoreCmd struct{}

// Run executes the restore command
func (r *RestoreCmd) Run(cli *CLI) error {
	ctx := context.Background()
	if _, err := cli.openArchive(ctx); err != nil {
		return err
	}

	archive := cli.Container.ArchiveService
	if !archive.HasBackup() {
		return domain.ErrBackupMissing
	}
	catalog, err := archive.Restore(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Restored %s (%d tables)\n", catalog.Path, len(catalog.Tables))
	return nil
}
