package cmd

import (
	"context"
	"fmt"
)

// NamesCmd imports and exports row name lists
type NamesCmd struct {
	Export NamesExportCmd `cmd:"export" help:"Write '<id> <name>' lines for the named rows of a table"`
	Import NamesImportCmd `cmd:"import" help:"Apply a names file to a table and save the archive"`
}

// NamesExportCmd writes the names of a table
type NamesExportCmd struct {
	Table string `arg:"" help:"Table name"`
	File  string `arg:"" optional:"" help:"Output file (default: <names dir>/<table>.txt)" type:"path"`
}

// NamesImportCmd applies a names file to a table
type NamesImportCmd struct {
	Table   string `arg:"" help:"Table name"`
	File    string `arg:"" optional:"" help:"Names file (default: <names dir>/<table>.txt)" type:"path"`
	Replace bool   `help:"Replace every name instead of only filling empty ones"`
}

// Run executes the export command
func (n *NamesExportCmd) Run(cli *CLI) error {
	catalog, err := cli.openArchive(context.Background())
	if err != nil {
		return err
	}
	table, err := catalog.TableByName(n.Table)
	if err != nil {
		return err
	}

	path := n.File
	if path == "" {
		path = cli.Container.NamesService.DefaultPath(table.Name)
	}
	count, err := cli.Container.NamesService.Export(table, path)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d names to %s\n", count, path)
	return nil
}

// Run executes the import command
func (n *NamesImportCmd) Run(cli *CLI) error {
	ctx := context.Background()
	catalog, err := cli.openArchive(ctx)
	if err != nil {
		return err
	}
	table, err := catalog.TableByName(n.Table)
	if err != nil {
		return err
	}

	count, err := cli.Container.NamesService.Import(table, n.File, n.Replace)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println("No names changed")
		return nil
	}
	if err := cli.Container.ArchiveService.Save(ctx); err != nil {
		return err
	}
	fmt.Printf("Imported %d names into %s\n", count, table.Name)
	return nil
}
