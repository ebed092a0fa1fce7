package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingListener struct {
	current  int
	timeline int
}

func (c *countingListener) OnCurrentChanged()  { c.current++ }
func (c *countingListener) OnTimelineChanged() { c.timeline++ }

func TestNew_SingleEmptyEntry(t *testing.T) {
	h := New()

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Index())
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())
	assert.True(t, h.Current().Equal(NewEntry()))
}

func TestPush_ThenGoBackRestoresSnapshot(t *testing.T) {
	h := New()
	h.Current().Tables.Selected = 3
	h.Current().Table(3).Rows.Selected = 42
	h.Current().Table(3).Cells.Selected = 7
	before := h.Current().Clone()

	h.Push(false)
	h.Current().Tables.Selected = 1
	h.Current().Table(3).Rows.Selected = 99
	h.Current().Table(1).Rows.Selected = 5

	require.True(t, h.GoBack())
	assert.True(t, h.Current().Equal(before), "pushed entry must not alias its source")
	assert.Equal(t, 42, h.Current().Table(3).Rows.Selected)
}

func TestGoForward_ClampedAtEnd(t *testing.T) {
	h := New()
	h.Push(false)
	h.Push(false)

	assert.False(t, h.GoForward())
	assert.Equal(t, 2, h.Index())

	require.True(t, h.GoBack())
	require.True(t, h.GoBack())
	assert.False(t, h.GoBack())
	assert.Equal(t, 0, h.Index())

	require.True(t, h.GoForward())
	assert.Equal(t, 1, h.Index())
}

func TestPush_DiscardsForwardEntries(t *testing.T) {
	h := New()
	h.Current().Tables.Selected = 1
	h.Push(false)
	h.Current().Tables.Selected = 2
	h.Push(false)
	h.Current().Tables.Selected = 3
	h.GoBack()
	h.GoBack()

	h.Push(false)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Index())
	assert.False(t, h.CanGoForward())
	assert.Equal(t, 1, h.Current().Tables.Selected)
}

func TestNotifications(t *testing.T) {
	tests := []struct {
		name         string
		run          func(h *History)
		wantCurrent  int
		wantTimeline int
	}{
		{name: "push", run: func(h *History) { h.Push(false) }, wantCurrent: 1, wantTimeline: 1},
		{name: "quiet push", run: func(h *History) { h.Push(true) }, wantCurrent: 0, wantTimeline: 1},
		{name: "back", run: func(h *History) { h.Push(true); h.GoBack() }, wantCurrent: 1, wantTimeline: 2},
		{name: "back at start", run: func(h *History) { h.GoBack() }, wantCurrent: 0, wantTimeline: 0},
		{name: "load", run: func(h *History) { h.Load("garbage") }, wantCurrent: 1, wantTimeline: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			l := &countingListener{}
			h.SetListener(l)

			tt.run(h)

			assert.Equal(t, tt.wantCurrent, l.current)
			assert.Equal(t, tt.wantTimeline, l.timeline)
		})
	}
}

func TestClean_PrunesDefaultTableStates(t *testing.T) {
	h := New()
	h.Current().Table(0)
	h.Current().Table(1).Rows.Selected = 4
	h.Current().Table(2).Cells.Selected = 1

	h.Clean()

	assert.Equal(t, []int{1, 2}, h.Current().TableIndexes())
}

func TestClean_CapsTimeline(t *testing.T) {
	h := New()
	for i := 1; i <= MaxEntries+5; i++ {
		h.Current().Tables.Selected = i
		h.Push(false)
	}

	assert.Equal(t, MaxEntries, h.Len())
	assert.Equal(t, MaxEntries-1, h.Index())
	require.True(t, h.GoBack())
	assert.Equal(t, MaxEntries+5, h.Current().Tables.Selected)
}

func TestClean_KeepsEntriesWhenCursorAtStart(t *testing.T) {
	h := New()
	for i := 0; i < MaxEntries+2; i++ {
		h.entries = append(h.entries, NewEntry())
	}
	h.index = 0

	h.Clean()

	assert.Equal(t, MaxEntries+3, h.Len())
	assert.Equal(t, 0, h.Index())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	h := New()
	for i := 1; i <= 5; i++ {
		h.Current().Tables.Selected = i
		h.Current().Table(i).Rows.Selected = i * 10
		h.Current().Table(i).Cells.Selected = i + 1
		h.Push(false)
	}
	h.GoBack()
	h.GoBack()
	saved := h.Save()

	loaded := New()
	require.True(t, loaded.Load(saved))

	assert.Equal(t, h.Len(), loaded.Len())
	assert.Equal(t, h.Index(), loaded.Index())
	for i := range h.entries {
		assert.True(t, h.entries[i].Equal(loaded.entries[i]), "entry %d", i)
	}
	assert.Equal(t, saved, loaded.Save())
}

func TestLoad_CorruptResets(t *testing.T) {
	tests := []string{
		"",
		"garbage",
		"v2|0|0",
		"v1|x|0",
		"v1|3|0|1",
		"v1|-1|0",
		"v1|0|a",
		"v1|0|0;1:2",
		"v1|0|0;1:2:x",
		"v1|0|0;1:2:3;1:4:5",
		"v1|0|0;1:-2:3",
	}

	for _, saved := range tests {
		t.Run(saved, func(t *testing.T) {
			h := New()
			h.Current().Tables.Selected = 9
			h.Push(false)

			assert.False(t, h.Load(saved))
			assert.Equal(t, 1, h.Len())
			assert.Equal(t, 0, h.Index())
			assert.True(t, h.Current().Equal(NewEntry()))
		})
	}
}
