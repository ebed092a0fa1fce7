package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		width     int
		want      string
		wantLines int
		truncated bool
	}{
		{name: "nil", err: nil, width: 40, want: ""},
		{name: "empty message", err: errors.New(""), width: 40, want: "Error: unknown error"},
		{name: "fits on one line", err: errors.New("row not found"), width: 40, want: "Error: row not found", wantLines: 1},
		{name: "wraps to two lines", err: errors.New("failed to save archive: database is locked"), width: 30, wantLines: 2},
		{
			name:      "long text is truncated",
			err:       errors.New(strings.Repeat("word ", 40)),
			width:     30,
			wantLines: 2,
			truncated: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorForDisplay(tt.err, tt.width)
			if tt.want != "" || tt.err == nil {
				assert.Equal(t, tt.want, got)
			}
			if tt.wantLines == 0 {
				return
			}
			lines := strings.Split(got, "\n")
			assert.Len(t, lines, tt.wantLines)
			for _, line := range lines {
				assert.LessOrEqual(t, runewidth.StringWidth(line), tt.width)
			}
			assert.True(t, strings.HasPrefix(got, "Error: "))
			assert.Equal(t, tt.truncated, strings.HasSuffix(got, "..."))
		})
	}
}

func TestErrorManager(t *testing.T) {
	em := NewErrorManager(time.Millisecond)
	assert.False(t, em.HasError())

	em.SetError(errors.New("boom"))
	require.True(t, em.HasError())
	assert.EqualError(t, em.GetError(), "boom")

	cmd := em.ClearAfterDelay()
	require.NotNil(t, cmd)
	assert.IsType(t, clearErrorMsg{}, cmd())

	em.ClearError()
	assert.False(t, em.HasError())
}
