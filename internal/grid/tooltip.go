package grid

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tooltipShowMsg struct {
	grid *Grid
	seq  int
}

type tooltipCancelMsg struct {
	grid *Grid
	seq  int
}

// tooltipState tracks the hovered cell's tooltip. Once a tooltip has been
// shown the grid is "hot" and later cells show theirs without waiting.
// Timers are never stopped; a tick whose sequence number is stale is ignored.
type tooltipState struct {
	row, col  int
	text      string
	pending   bool
	visible   bool
	showSeq   int
	cancelSeq int
}

// Tooltip returns the tooltip currently shown, if any
func (g *Grid) Tooltip() (string, bool) {
	if !g.tip.visible {
		return "", false
	}
	return g.tip.text, true
}

func (g *Grid) hoverCell(row, col int) tea.Cmd {
	if (g.tip.visible || g.tip.pending) && g.tip.row == row && g.tip.col == col {
		g.tip.cancelSeq++
		return nil
	}
	text := g.host.CellTooltipText(row, col)
	if text == "" {
		g.cancelTooltip()
		return nil
	}

	g.tip.cancelSeq++
	g.tip.row, g.tip.col, g.tip.text = row, col, text
	if g.tip.visible {
		return nil
	}

	g.tip.pending = true
	g.tip.showSeq++
	seq := g.tip.showSeq
	return tea.Tick(g.tooltipDelay, func(time.Time) tea.Msg {
		return tooltipShowMsg{grid: g, seq: seq}
	})
}

func (g *Grid) handleTooltipShow(msg tooltipShowMsg) {
	if msg.grid != g || msg.seq != g.tip.showSeq || !g.tip.pending {
		return
	}
	g.tip.pending = false
	g.tip.visible = true
}

// scheduleTooltipCancel hides the tooltip unless another cell shows one
// before the delay expires.
func (g *Grid) scheduleTooltipCancel() tea.Cmd {
	if !g.tip.visible && !g.tip.pending {
		return nil
	}
	g.tip.cancelSeq++
	seq := g.tip.cancelSeq
	return tea.Tick(g.tooltipDelay, func(time.Time) tea.Msg {
		return tooltipCancelMsg{grid: g, seq: seq}
	})
}

func (g *Grid) handleTooltipCancel(msg tooltipCancelMsg) {
	if msg.grid != g || msg.seq != g.tip.cancelSeq {
		return
	}
	g.cancelTooltip()
}

func (g *Grid) cancelTooltip() {
	g.tip.visible = false
	g.tip.pending = false
	g.tip.text = ""
	g.tip.row, g.tip.col = -1, -1
	g.tip.showSeq++
}
