package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const (
	maxErrorLines  = 2
	minErrorWidth  = 10
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// clearErrorMsg is sent once the error clear delay has passed
type clearErrorMsg struct{}

// ErrorManager holds the error shown in the footer and clears it after a delay
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates an ErrorManager with the given auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

func (em *ErrorManager) SetError(err error) { em.currentError = err }

func (em *ErrorManager) ClearError() { em.currentError = nil }

func (em *ErrorManager) GetError() error { return em.currentError }

func (em *ErrorManager) HasError() bool { return em.currentError != nil }

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the configured delay
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth cells. The first line carries the "Error: " prefix; text that does
// not fit ends with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}
	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	otherWidth := max(maxWidth, minErrorWidth)
	width := max(maxWidth-runewidth.StringWidth(errorPrefix), minErrorWidth)

	var lines []string
	var line strings.Builder
	truncated := false
	for _, word := range words {
		lineWidth := runewidth.StringWidth(line.String())
		if lineWidth > 0 && lineWidth+1+runewidth.StringWidth(word) > width {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
			width = otherWidth
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if !truncated && line.Len() > 0 {
		lines = append(lines, line.String())
	}

	if truncated {
		last := lines[maxErrorLines-1]
		markWidth := runewidth.StringWidth(truncationMark)
		if runewidth.StringWidth(last)+markWidth > otherWidth {
			last = runewidth.Truncate(last, otherWidth-markWidth, "")
		}
		lines[maxErrorLines-1] = last + truncationMark
	}
	return errorPrefix + strings.Join(lines, "\n")
}
