package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ExportFormResult contains the export destination and the tables to export.
// An empty table list exports every table.
type ExportFormResult struct {
	Destination string
	Tables      []string
}

// ExportForm asks for an export destination, a directory or an s3:// URL,
// and the tables to write
type ExportForm struct {
	formModel
	result ExportFormResult
}

// NewExportForm creates the form with selected pre-checked
func NewExportForm(destination string, tables, selected []string) *ExportForm {
	f := &ExportForm{result: ExportFormResult{Destination: destination, Tables: selected}}

	options := make([]huh.Option[string], len(tables))
	for i, name := range tables {
		options[i] = huh.NewOption(name, name)
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination").
				Description("Directory or s3://bucket/prefix").
				Value(&f.result.Destination).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("destination required")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Tables").
				Description("None selected exports all tables").
				Options(options...).
				Height(min(len(options)+2, 12)).
				Value(&f.result.Tables),
		),
	)
	return f
}

func (f *ExportForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, submitted := f.update(msg)
	if submitted {
		f.result.Destination = strings.TrimSpace(f.result.Destination)
	}
	return f, cmd
}

// Result returns the form result
func (f *ExportForm) Result() ExportFormResult {
	return f.result
}
