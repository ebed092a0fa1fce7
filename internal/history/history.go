package history

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paramdex/paramdex/internal/logging"
)

// MaxEntries caps the timeline length kept by Clean
const MaxEntries = 16

const formatVersion = "v1"

var errCorrupt = errors.New("corrupt history")

// Listener receives history notifications. OnCurrentChanged fires when the
// current entry is replaced; OnTimelineChanged fires whenever back/forward
// availability may have changed.
type Listener interface {
	OnCurrentChanged()
	OnTimelineChanged()
}

// History is a bounded timeline of selection snapshots with a cursor
type History struct {
	entries  []*Entry
	index    int
	listener Listener
}

// New returns a history holding a single empty entry
func New() *History {
	h := &History{}
	h.reset()
	return h
}

// SetListener installs the receiver of notifications. nil disables them.
func (h *History) SetListener(l Listener) {
	h.listener = l
}

// Current returns the live entry. Mutating it does not affect other entries.
func (h *History) Current() *Entry {
	return h.entries[h.index]
}

func (h *History) Len() int   { return len(h.entries) }
func (h *History) Index() int { return h.index }

func (h *History) CanGoBack() bool    { return h.index > 0 }
func (h *History) CanGoForward() bool { return h.index < len(h.entries)-1 }

// Push snapshots the current entry, discards any forward entries and makes
// the copy current. With quiet set only OnTimelineChanged fires.
func (h *History) Push(quiet bool) {
	h.entries = append(h.entries[:h.index+1], h.Current().Clone())
	h.index++
	h.Clean()
	logging.Logger.Debug("History pushed", "index", h.index, "len", len(h.entries), "quiet", quiet)
	if !quiet {
		h.notifyCurrent()
	}
	h.notifyTimeline()
}

// GoBack moves the cursor one entry back, if possible
func (h *History) GoBack() bool {
	if !h.CanGoBack() {
		return false
	}
	h.index--
	h.notifyCurrent()
	h.notifyTimeline()
	return true
}

// GoForward moves the cursor one entry forward, if possible
func (h *History) GoForward() bool {
	if !h.CanGoForward() {
		return false
	}
	h.index++
	h.notifyCurrent()
	h.notifyTimeline()
	return true
}

// Clean prunes default table states from every entry, then drops the oldest
// entries while the timeline is longer than MaxEntries.
func (h *History) Clean() {
	pruned := 0
	for _, e := range h.entries {
		pruned += e.prune()
	}
	dropped := 0
	for len(h.entries) > MaxEntries && len(h.entries) > 1 && h.index > 0 {
		h.entries[0] = nil
		h.entries = h.entries[1:]
		h.index--
		dropped++
	}
	if pruned > 0 || dropped > 0 {
		logging.Logger.Debug("History cleaned", "pruned", pruned, "dropped", dropped)
	}
}

// Save serializes the timeline and cursor:
//
//	v1|<index>|<entry>|<entry>...
//
// where an entry is <tableSel>;<table>:<row>:<cell>;...
func (h *History) Save() string {
	var b strings.Builder
	b.WriteString(formatVersion)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(h.index))
	for _, e := range h.entries {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(e.Tables.Selected))
		for _, i := range e.TableIndexes() {
			te := e.byIdx[i]
			fmt.Fprintf(&b, ";%d:%d:%d", i, te.Rows.Selected, te.Cells.Selected)
		}
	}
	return b.String()
}

// Load replaces the timeline with a saved one. A payload that does not
// parse resets to a single empty entry; it reports whether parsing succeeded.
// Both notifications fire either way.
func (h *History) Load(saved string) bool {
	entries, index, err := decode(saved)
	if err != nil {
		if saved != "" {
			logging.Logger.Warn("Discarding saved history", "error", err)
		}
		h.reset()
	} else {
		h.entries = entries
		h.index = index
	}
	h.notifyCurrent()
	h.notifyTimeline()
	return err == nil
}

func (h *History) reset() {
	h.entries = []*Entry{NewEntry()}
	h.index = 0
}

func (h *History) notifyCurrent() {
	if h.listener != nil {
		h.listener.OnCurrentChanged()
	}
}

func (h *History) notifyTimeline() {
	if h.listener != nil {
		h.listener.OnTimelineChanged()
	}
}

func decode(saved string) ([]*Entry, int, error) {
	parts := strings.Split(saved, "|")
	if len(parts) < 3 || parts[0] != formatVersion {
		return nil, 0, errCorrupt
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: index %q", errCorrupt, parts[1])
	}
	entries := make([]*Entry, 0, len(parts)-2)
	for _, raw := range parts[2:] {
		e, err := decodeEntry(raw)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if index < 0 || index >= len(entries) {
		return nil, 0, fmt.Errorf("%w: index %d out of %d entries", errCorrupt, index, len(entries))
	}
	return entries, index, nil
}

func decodeEntry(raw string) (*Entry, error) {
	fields := strings.Split(raw, ";")
	e := NewEntry()
	sel, err := strconv.Atoi(fields[0])
	if err != nil || sel < 0 {
		return nil, fmt.Errorf("%w: table selection %q", errCorrupt, fields[0])
	}
	e.Tables.Selected = sel
	for _, f := range fields[1:] {
		nums := strings.Split(f, ":")
		if len(nums) != 3 {
			return nil, fmt.Errorf("%w: table state %q", errCorrupt, f)
		}
		var vals [3]int
		for i, n := range nums {
			v, err := strconv.Atoi(n)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: table state %q", errCorrupt, f)
			}
			vals[i] = v
		}
		if _, dup := e.byIdx[vals[0]]; dup {
			return nil, fmt.Errorf("%w: table %d repeated", errCorrupt, vals[0])
		}
		e.byIdx[vals[0]] = &TableEntry{Rows: Position{vals[1]}, Cells: Position{vals[2]}}
	}
	return e, nil
}
