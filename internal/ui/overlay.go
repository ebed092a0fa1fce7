package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/paramdex/paramdex/internal/theme"
)

// dimmedLines strips the styling of background, renders it dimmed and pads
// it to width x height.
func dimmedLines(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		dimmed := theme.DimmedStyle.Render(ansi.Strip(line))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// bottomAnchoredOverlay renders overlay over the last lines of a dimmed
// background.
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	lines := dimmedLines(background, width, height)
	overlayLines := strings.Split(overlay, "\n")
	start := max(0, height-len(overlayLines))
	for i, line := range overlayLines {
		y := start + i
		if y >= len(lines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		lines[y] = line
	}
	return strings.Join(lines, "\n")
}
