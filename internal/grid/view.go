package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/paramdex/paramdex/internal/theme"
)

const ellipsis = "…"

// Styles are the grid's base colors. Hosts adjust them per cell.
type Styles struct {
	Header                lipgloss.Style
	Foreground            lipgloss.TerminalColor
	Background            lipgloss.TerminalColor
	SelectedRowFg         lipgloss.TerminalColor
	SelectedRowBg         lipgloss.TerminalColor
	SelectedCellFg        lipgloss.TerminalColor
	SelectedCellBg        lipgloss.TerminalColor
	FocusedSelectedCellBg lipgloss.TerminalColor
	ScrollTrack           lipgloss.Style
	ScrollThumb           lipgloss.Style
}

// DefaultStyles uses the application theme
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(theme.ColorGridHeader).
			Background(theme.ColorGridHeaderBg).
			Bold(true),
		Foreground:            theme.ColorNormal,
		Background:            lipgloss.NoColor{},
		SelectedRowFg:         theme.ColorNormal,
		SelectedRowBg:         theme.ColorGridRowBg,
		SelectedCellFg:        theme.ColorGridSelected,
		SelectedCellBg:        theme.ColorGridInactiveBg,
		FocusedSelectedCellBg: theme.ColorGridSelectedBg,
		ScrollTrack:           lipgloss.NewStyle().Foreground(theme.ColorGridScrollTrack),
		ScrollThumb:           lipgloss.NewStyle().Foreground(theme.ColorGridScrollThumb),
	}
}

// View renders exactly height lines of width columns
func (g *Grid) View() string {
	if g.width <= 0 || g.height <= 0 {
		return ""
	}
	lines := make([]string, 0, g.height)
	blank := strings.Repeat(" ", g.width)
	if g.host == nil {
		for len(lines) < g.height {
			lines = append(lines, blank)
		}
		return strings.Join(lines, "\n")
	}

	xs, ws := g.columnLayout()
	content := g.contentWidth()
	sb := g.scrollbarColumn()

	lines = append(lines, g.renderHeader(ws, content)+g.scrollbarCell(sb, 0))

	first, ok := g.FirstVisibleRow()
	if ok {
		last, _ := g.LastVisibleRow(VisibleAny)
		rh := g.RowHeight()
		for r := first; r <= last && len(lines) < g.height; r++ {
			text, pad := g.renderRow(r, xs, ws, content)
			for l := 0; l < rh && len(lines) < g.height; l++ {
				line := pad
				if l == 0 {
					line = text
				}
				lines = append(lines, line+g.scrollbarCell(sb, len(lines)))
			}
		}
	}
	for len(lines) < g.height {
		lines = append(lines, strings.Repeat(" ", content)+g.scrollbarCell(sb, len(lines)))
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) renderHeader(ws []int, content int) string {
	var b strings.Builder
	used := 0
	for c, w := range ws {
		if w == 0 {
			continue
		}
		b.WriteString(g.styles.Header.Render(fitText(" "+g.host.ColumnName(c), w)))
		used += w
	}
	if used < content {
		b.WriteString(g.styles.Header.Render(strings.Repeat(" ", content-used)))
	}
	return b.String()
}

// renderRow returns the text line of a row and the blank padding line drawn
// below it when rows are taller than one line.
func (g *Grid) renderRow(row int, xs, ws []int, content int) (string, string) {
	var text, pad strings.Builder
	used := 0
	for c := range xs {
		w := ws[c]
		if w == 0 {
			continue
		}
		style := g.baseStyle(row, c)
		g.host.StyleCell(row, c, &style)
		if style.Foreground == nil {
			style.Foreground = lipgloss.NoColor{}
		}
		if style.Background == nil {
			style.Background = lipgloss.NoColor{}
		}
		ls := lipgloss.NewStyle().
			Foreground(style.Foreground).
			Background(style.Background).
			Bold(style.Bold).
			Underline(style.Underline)
		text.WriteString(ls.Render(fitText(" "+g.host.CellDisplayText(row, c), w)))
		if g.rowPadding > 0 {
			pad.WriteString(lipgloss.NewStyle().Background(style.Background).Render(strings.Repeat(" ", w)))
		}
		used += w
	}
	if used < content {
		fill := strings.Repeat(" ", content-used)
		text.WriteString(fill)
		pad.WriteString(fill)
	}
	return text.String(), pad.String()
}

func (g *Grid) baseStyle(row, col int) CellStyle {
	s := CellStyle{
		SelectedRow:    row == g.selRow,
		SelectedColumn: col == g.selCol,
		Foreground:     g.styles.Foreground,
		Background:     g.styles.Background,
	}
	s.SelectedCell = s.SelectedRow && s.SelectedColumn
	switch {
	case s.SelectedCell:
		s.Foreground = g.styles.SelectedCellFg
		s.Background = g.styles.SelectedCellBg
		if g.focused {
			s.Background = g.styles.FocusedSelectedCellBg
		}
	case s.SelectedRow:
		s.Foreground = g.styles.SelectedRowFg
		s.Background = g.styles.SelectedRowBg
	}
	return s
}

// scrollbar is the thumb's first and last track line. ok is false when no
// scrollbar is drawn.
type scrollbar struct {
	ok         bool
	start, end int
}

func (g *Grid) scrollbarColumn() scrollbar {
	if !g.scrollbarVisible() {
		return scrollbar{}
	}
	track := g.clientHeight()
	rc := g.rowCount()
	if track <= 0 || rc == 0 {
		return scrollbar{ok: true, start: 0, end: -1}
	}
	page := g.pageRows()
	thumb := max(1, track*page/max(rc, page))
	maxTop := g.maxScrollTop()
	start := 0
	if maxTop > 0 {
		start = (track - thumb) * g.top / maxTop
	}
	return scrollbar{ok: true, start: start, end: start + thumb - 1}
}

// scrollbarCell draws the scrollbar for screen line y (header is line 0)
func (g *Grid) scrollbarCell(sb scrollbar, y int) string {
	if !sb.ok {
		return ""
	}
	if y < headerHeight {
		return g.styles.Header.Render(" ")
	}
	ty := y - headerHeight
	if ty >= sb.start && ty <= sb.end {
		return g.styles.ScrollThumb.Render("█")
	}
	return g.styles.ScrollTrack.Render("│")
}

// fitText truncates or pads s to exactly w terminal columns
func fitText(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, ellipsis)
	}
	return runewidth.FillRight(s, w)
}
