package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paramdex/paramdex/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func renderGroup(b *strings.Builder, title string, bindings ...key.Binding) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(theme.HelpGroupStyle.Render(title) + "\n")
	for _, binding := range bindings {
		b.WriteString(renderBinding(binding))
	}
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder
	nav, edit, search, archive, app := keys.Navigation, keys.Editing, keys.Search, keys.Archive, keys.Application

	renderGroup(&b, "Navigation",
		nav.Up, nav.Down, nav.Left, nav.Right, nav.PageUp, nav.PageDown,
		nav.FirstRow, nav.LastRow, nav.NextPane, nav.PrevPane, nav.Back, nav.Forward)
	renderGroup(&b, "Editing",
		edit.Edit, edit.Reset, edit.FollowLink, edit.Yank, edit.NewRow, edit.DuplicateRow, edit.DeleteRow)
	renderGroup(&b, "Search", search.FindRow, search.FindCell, search.FindNext, search.GotoID)
	renderGroup(&b, "Archive", archive.Save, archive.Restore, archive.Export, archive.ImportNames, archive.ExportNames)
	renderGroup(&b, "Application", app.CommandPalette, app.Help, app.Quit, app.ForceQuit)

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Mouse") + "\n")
	b.WriteString(renderShortcut("click", "select cell, focus pane"))
	b.WriteString(renderShortcut("double click", "edit cell"))
	b.WriteString(renderShortcut("ctrl+click", "follow link"))
	b.WriteString(renderShortcut("wheel", "scroll"))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Value Colors (read-only)") + "\n")
	b.WriteString(renderShortcut(theme.LinkLegendStyle.Render("underlined"), "link to another row"))
	b.WriteString(renderShortcut(theme.LinkInvalidLegendStyle.Render("highlighted"), "link to a missing row"))
	b.WriteString(renderShortcut(theme.ModifiedLegendStyle.Render("bold"), "differs from the default"))
	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// dialog header takes 5 lines, footer 2
		h.viewport.Width = msg.Width
		h.viewport.Height = max(5, msg.Height-7)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	closeKeys := "esc, " + h.keys.Application.Quit.Help().Key + ", " + h.keys.Application.Help.Help().Key
	footer := theme.HelpStyle.Render("Press " + closeKeys + " to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
