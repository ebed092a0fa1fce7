package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/paramdex/paramdex/internal/domain"
)

// RowFormResult contains the ID and name entered for a new row
type RowFormResult struct {
	ID   int64
	Name string
}

// RowForm asks for the ID and name of a new or duplicated row
type RowForm struct {
	formModel
	idText string
	result RowFormResult
}

// NewRowForm creates the form. suggestedID is pre-filled and name is the
// initial row name.
func NewRowForm(table *domain.Table, suggestedID int64, name string) *RowForm {
	f := &RowForm{
		idText: strconv.FormatInt(suggestedID, 10),
		result: RowFormResult{Name: name},
	}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Row ID").
				Description(fmt.Sprintf("Table: %s", table.Name)).
				Value(&f.idText).
				Validate(func(s string) error {
					id, err := parseRowID(s)
					if err != nil {
						return err
					}
					if _, exists := table.RowIndexByID(id); exists {
						return fmt.Errorf("row %d already exists", id)
					}
					return nil
				}),
			huh.NewInput().
				Title("Name (optional)").
				Value(&f.result.Name),
		),
	)
	return f
}

func parseRowID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("row ID must be a 32-bit integer")
	}
	return id, nil
}

func (f *RowForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, submitted := f.update(msg)
	if submitted {
		f.result.ID, _ = parseRowID(f.idText)
	}
	return f, cmd
}

// Result returns the form result
func (f *RowForm) Result() RowFormResult {
	return f.result
}

// nextFreeID returns the first ID after from that no row of table uses
func nextFreeID(table *domain.Table, from int64) int64 {
	id := from + 1
	for {
		if _, exists := table.RowIndexByID(id); !exists {
			return id
		}
		id++
	}
}
