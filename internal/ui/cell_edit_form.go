package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/paramdex/paramdex/internal/grid"
)

// CellEditForm edits one grid cell. Enum cells get a select, everything else
// a text input parsed according to the edit kind.
type CellEditForm struct {
	formModel
	choice   int64
	kind     grid.EditKind
	text     string
	validate func(any) error
	value    any
}

// NewCellEditForm builds the editor for req. validate, when set, runs on the
// parsed value before the form can be submitted.
func NewCellEditForm(label string, req grid.EditRequestMsg, validate func(any) error) *CellEditForm {
	f := &CellEditForm{kind: req.Kind, validate: validate}

	var field huh.Field
	if req.Kind == grid.EditEnum {
		f.choice, _ = req.Value.(int64)
		field = huh.NewSelect[int64]().
			Title(label).
			Options(enumOptions(req.Enum, f.choice)...).
			Value(&f.choice)
	} else {
		f.text = grid.FormatEditValue(req.Kind, req.Value)
		field = huh.NewInput().
			Title(label).
			Description(editHint(req.Kind)).
			Value(&f.text).
			Validate(f.check)
	}
	f.form = huh.NewForm(huh.NewGroup(field))
	return f
}

// enumOptions lists the enum values. A current value outside the enum is
// kept selectable.
func enumOptions(values []grid.EnumValue, current int64) []huh.Option[int64] {
	opts := make([]huh.Option[int64], 0, len(values)+1)
	found := false
	for _, ev := range values {
		n, ok := ev.Value.(int64)
		if !ok {
			continue
		}
		found = found || n == current
		opts = append(opts, huh.NewOption(ev.Label, n))
	}
	if !found {
		opts = append([]huh.Option[int64]{huh.NewOption(fmt.Sprintf("%d (current)", current), current)}, opts...)
	}
	return opts
}

func editHint(kind grid.EditKind) string {
	switch {
	case kind == grid.EditString:
		return "text"
	case kind.IsHex():
		return "hexadecimal, 0x prefix optional"
	case kind == grid.EditFloat32 || kind == grid.EditFloat64:
		return "decimal number"
	}
	return "integer"
}

func (f *CellEditForm) check(text string) error {
	v, err := grid.ParseEditText(f.kind, text)
	if err != nil {
		return err
	}
	if f.validate != nil {
		return f.validate(v)
	}
	return nil
}

func (f *CellEditForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, submitted := f.update(msg)
	if !submitted {
		return f, cmd
	}
	if f.kind == grid.EditEnum {
		f.value = f.choice
		return f, nil
	}
	v, err := grid.ParseEditText(f.kind, f.text)
	if err != nil {
		// validation ran on submit, so this only happens for kinds without a codec
		f.Cancelled = true
		return f, nil
	}
	f.value = v
	return f, nil
}

// Value returns the edited value once the form completed without cancelling
func (f *CellEditForm) Value() any {
	return f.value
}
