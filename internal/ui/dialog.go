package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps a form or screen and prepends the application header with the
// dialog title to its view.
//
// Usage:
//
//	form := NewRowForm(...)
//	dialog := NewDialog("New Row", form, devMode)
//	if content, ok := dialog.Content().(*RowForm); ok && content.Completed {
//		result := content.Result()
//	}
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a dialog around content
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the content and returns the dialog itself
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

func (d *Dialog) View() string {
	return renderDialogHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}
