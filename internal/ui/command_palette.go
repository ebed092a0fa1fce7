package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/theme"
)

// maxVisibleItems is the number of palette entries shown at once
const maxVisibleItems = 6

// paletteSource adapts the action list to fuzzy.Source
type paletteSource []KeyDefinition

func (s paletteSource) String(i int) string { return s[i].Help }

func (s paletteSource) Len() int { return len(s) }

// CommandPalette is a searchable action palette overlay.
type CommandPalette struct {
	actions       []KeyDefinition // Filtered actions, best match first
	allActions    []KeyDefinition
	Completed     bool
	context       string // Selection shown in the header
	customKeys    config.KeyBindingsConfig
	filterInput   textinput.Model
	height        int
	keys          KeyMap
	lastQuery     string
	Result        CommandPaletteResult
	selectedIndex int
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette creates a palette. context describes the current
// selection, for example "EquipParamWeapon / 1000"; it may be empty.
func NewCommandPalette(context string, keys KeyMap, customKeys config.KeyBindingsConfig) *CommandPalette {
	actions := GetPaletteActions()

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		context:     context,
		customKeys:  customKeys,
		filterInput: ti,
		keys:        keys,
	}
}

func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		cp.height = msg.Height
		return cp, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc || key.Matches(msg, cp.keys.Application.ForceQuit):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case msg.Type == tea.KeyEnter:
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()
	return cp, cmd
}

// View renders the command palette as a full-width bottom panel.
func (cp *CommandPalette) View() string {
	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.context != "" {
		header += " " + theme.DimmedStyle.Render("("+cp.context+")")
	}

	var items []string
	helpWidth := cp.maxHelpLen()
	start, end := cp.visibleRange()
	moreAbove, moreBelow := start > 0, end < len(cp.actions)

	for i := start; i < end; i++ {
		def := cp.actions[i]
		prefix := "  "
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && moreAbove:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && moreBelow:
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		}
		items = append(items, prefix+
			theme.PaletteItemStyle.Render(padRight(capitalizeFirst(def.Help), helpWidth))+
			theme.PaletteShortcutStyle.Render("  "+cp.shortcut(def)))
	}
	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	inner := header + "\n\n" + cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")
	return theme.PaletteBorderStyle.Width(cp.paletteWidth() - 2).Render(inner)
}

// shortcut returns the first key bound to an action, honoring overrides
func (cp *CommandPalette) shortcut(def KeyDefinition) string {
	if custom := cp.customKeys[def.Name]; len(custom) > 0 {
		return custom[0]
	}
	if len(def.Defaults) > 0 {
		return def.Defaults[0]
	}
	return ""
}

// filterActions ranks the actions against the filter with fuzzy matching
func (cp *CommandPalette) filterActions() {
	query := cp.filterInput.Value()
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query
	cp.selectedIndex = 0

	if query == "" {
		cp.actions = cp.allActions
		return
	}

	matches := fuzzy.FindFrom(query, paletteSource(cp.allActions))
	filtered := make([]KeyDefinition, len(matches))
	for i, m := range matches {
		filtered[i] = cp.allActions[m.Index]
	}
	cp.actions = filtered
}

// maxHelpLen uses allActions to keep alignment stable during filtering
func (cp *CommandPalette) maxHelpLen() int {
	maxLen := 0
	for _, def := range cp.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return cp.width
	}
	return 80
}

// visibleRange keeps the selected item in view with some context
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}
	start := max(0, cp.selectedIndex-maxVisibleItems/2)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
