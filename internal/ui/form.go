package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formModel is the part shared by the huh-backed dialogs: esc or ctrl+c
// cancels, submitting the last field completes.
type formModel struct {
	Completed bool
	Cancelled bool
	form      *huh.Form
}

func (f *formModel) Init() tea.Cmd {
	return f.form.Init()
}

func (f *formModel) View() string {
	if f.form != nil {
		return f.form.View()
	}
	return ""
}

// update forwards msg to the form and reports whether it was just submitted
func (f *formModel) update(msg tea.Msg) (tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.Cancelled = true
			f.Completed = true
			return nil, false
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}
	if f.form.State == huh.StateCompleted {
		f.Completed = true
		return nil, true
	}
	return cmd, false
}
