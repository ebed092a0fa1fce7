package history

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/paramdex/paramdex/internal/logging"
)

// Anchor is the scroll position of the row and cell panes for one table
type Anchor struct {
	RowTop  int
	CellTop int
}

// Anchors remembers scroll positions per table name so that revisiting a
// table restores its viewport. Storing can be suspended while panes are
// being rebound.
type Anchors struct {
	byName   map[string]Anchor
	current  string
	disabled int
}

// NewAnchors returns an empty anchor store
func NewAnchors() *Anchors {
	return &Anchors{byName: make(map[string]Anchor)}
}

// SetTable selects the table subsequent Store calls apply to
func (a *Anchors) SetTable(name string) {
	a.current = name
}

// StoreRowTop records the row pane scroll top of the current table
func (a *Anchors) StoreRowTop(top int) {
	a.store(func(an *Anchor) { an.RowTop = top })
}

// StoreCellTop records the cell pane scroll top of the current table
func (a *Anchors) StoreCellTop(top int) {
	a.store(func(an *Anchor) { an.CellTop = top })
}

func (a *Anchors) store(set func(*Anchor)) {
	if a.disabled > 0 || a.current == "" {
		return
	}
	an := a.byName[a.current]
	set(&an)
	a.byName[a.current] = an
}

// Recall returns the anchor of the current table
func (a *Anchors) Recall() (Anchor, bool) {
	if a.current == "" {
		return Anchor{}, false
	}
	an, ok := a.byName[a.current]
	return an, ok
}

// Suspend stops storing until the returned func is called. Calls nest.
func (a *Anchors) Suspend() (resume func()) {
	a.disabled++
	done := false
	return func() {
		if !done {
			done = true
			a.disabled--
		}
	}
}

// Save serializes the anchors as name:rowTop:cellTop,... with names
// query-escaped and sorted.
func (a *Anchors) Save() string {
	names := make([]string, 0, len(a.byName))
	for name := range a.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		an := a.byName[name]
		parts[i] = fmt.Sprintf("%s:%d:%d", url.QueryEscape(name), an.RowTop, an.CellTop)
	}
	return strings.Join(parts, ",")
}

// Load replaces the stored anchors. A payload that does not parse leaves the
// store empty; it reports whether parsing succeeded.
func (a *Anchors) Load(saved string) bool {
	a.byName = make(map[string]Anchor)
	if saved == "" {
		return true
	}
	parsed := make(map[string]Anchor)
	for _, part := range strings.Split(saved, ",") {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			logging.Logger.Warn("Discarding saved anchors", "entry", part)
			return false
		}
		name, err := url.QueryUnescape(fields[0])
		if err != nil || name == "" {
			logging.Logger.Warn("Discarding saved anchors", "entry", part)
			return false
		}
		rowTop, err1 := strconv.Atoi(fields[1])
		cellTop, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || rowTop < 0 || cellTop < 0 {
			logging.Logger.Warn("Discarding saved anchors", "entry", part)
			return false
		}
		parsed[name] = Anchor{RowTop: rowTop, CellTop: cellTop}
	}
	a.byName = parsed
	return true
}
