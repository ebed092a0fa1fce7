package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// PromptForm asks for a single line of text. Find and goto dialogs use it.
type PromptForm struct {
	formModel
	value string
}

// NewPromptForm creates a prompt. validate may be nil.
func NewPromptForm(title, description, initial string, validate func(string) error) *PromptForm {
	f := &PromptForm{value: initial}
	input := huh.NewInput().
		Title(title).
		Description(description).
		Value(&f.value)
	if validate != nil {
		input = input.Validate(validate)
	}
	f.form = huh.NewForm(huh.NewGroup(input))
	return f
}

func (f *PromptForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, _ := f.update(msg)
	return f, cmd
}

// Value returns the entered text
func (f *PromptForm) Value() string {
	return f.value
}
