package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// NamesFormResult contains the names file path and, for imports, whether
// existing names are overwritten
type NamesFormResult struct {
	Path    string
	Replace bool
}

// NamesForm asks where to import row names from or export them to
type NamesForm struct {
	formModel
	result NamesFormResult
}

// NewNamesForm creates the form. The replace question is only asked for
// imports.
func NewNamesForm(table, defaultPath string, importing bool) *NamesForm {
	f := &NamesForm{result: NamesFormResult{Path: defaultPath}}

	verb := "Export"
	if importing {
		verb = "Import"
	}
	fields := []huh.Field{
		huh.NewInput().
			Title("Names file").
			Description(fmt.Sprintf("%s row names of %s", verb, table)).
			Value(&f.result.Path).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("path required")
				}
				return nil
			}),
	}
	if importing {
		fields = append(fields, huh.NewConfirm().
			Title("Replace existing names?").
			Description("Keep only fills rows that have no name yet.").
			Value(&f.result.Replace).
			Affirmative("Replace").
			Negative("Keep"))
	}
	f.form = huh.NewForm(huh.NewGroup(fields...))
	return f
}

func (f *NamesForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, submitted := f.update(msg)
	if submitted {
		f.result.Path = strings.TrimSpace(f.result.Path)
	}
	return f, cmd
}

// Result returns the form result
func (f *NamesForm) Result() NamesFormResult {
	return f.result
}
