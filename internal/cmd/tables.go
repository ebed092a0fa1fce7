package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/paramdex/paramdex/internal/domain"
)

// TablesCmd lists the tables of the archive
type TablesCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json" short:"f"`
}

type tableSummary struct {
	Error       string `json:"error,omitempty"`
	Modified    int    `json:"modified_rows"`
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	Description string `json:"description,omitempty"`
}

// Run executes the tables command
func (t *TablesCmd) Run(cli *CLI) error {
	catalog, err := cli.openArchive(context.Background())
	if err != nil {
		return err
	}

	summaries := make([]tableSummary, len(catalog.Tables))
	for i, table := range catalog.Tables {
		summaries[i] = summarizeTable(table)
	}

	if t.Format == "json" {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tRows\tModified\tError")
	fmt.Fprintln(w, "────\t────\t────────\t─────")
	for _, s := range summaries {
		errText := "-"
		if s.Error != "" {
			errText = s.Error
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", s.Name, s.Rows, s.Modified, errText)
	}
	return w.Flush()
}

func summarizeTable(table *domain.Table) tableSummary {
	s := tableSummary{Name: table.Name, Rows: len(table.Rows), Description: table.Description}
	if table.Error {
		s.Error = table.ErrorDetail
	}
	for _, r := range table.Rows {
		if r.ModifiedCount() > 0 {
			s.Modified++
		}
	}
	return s
}

// RowsCmd lists the rows of one table
type RowsCmd struct {
	Table    string `arg:"" help:"Table name"`
	Format   string `help:"Output format (table or json)" default:"table" enum:"table,json" short:"f"`
	Modified bool   `help:"Only list rows that differ from the defaults" short:"m"`
}

type rowSummary struct {
	ID       int64  `json:"id"`
	Modified int    `json:"modified_fields"`
	Name     string `json:"name"`
}

// Run executes the rows command
func (r *RowsCmd) Run(cli *CLI) error {
	catalog, err := cli.openArchive(context.Background())
	if err != nil {
		return err
	}
	table, err := catalog.TableByName(r.Table)
	if err != nil {
		return err
	}

	var rows []rowSummary
	for _, row := range table.Rows {
		n := row.ModifiedCount()
		if r.Modified && n == 0 {
			continue
		}
		rows = append(rows, rowSummary{ID: row.ID, Modified: n, Name: row.Name})
	}

	if r.Format == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tModified")
	fmt.Fprintln(w, "──\t────\t────────")
	for _, row := range rows {
		modified := "-"
		if row.Modified > 0 {
			modified = strconv.Itoa(row.Modified)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", row.ID, row.Name, modified)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d of %d rows\n", len(rows), len(table.Rows))
	return nil
}
