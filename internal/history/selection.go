// Package history records where the user is looking across the three panes
// and lets cross-table navigation be undone like browser history.
package history

import "sort"

// Position is a remembered cursor within one pane
type Position struct {
	Selected int
}

// TableEntry holds the row and cell cursors of one table
type TableEntry struct {
	Rows  Position
	Cells Position
}

// IsDefault reports whether both cursors are at their initial position
func (e *TableEntry) IsDefault() bool {
	return e.Rows.Selected == 0 && e.Cells.Selected == 0
}

// Entry is one snapshot of the selection in every pane
type Entry struct {
	Tables Position
	byIdx  map[int]*TableEntry
}

// NewEntry returns an entry with every cursor at its default
func NewEntry() *Entry {
	return &Entry{byIdx: make(map[int]*TableEntry)}
}

// Table returns the state for a table index, creating it on first use
func (e *Entry) Table(index int) *TableEntry {
	if e.byIdx == nil {
		e.byIdx = make(map[int]*TableEntry)
	}
	te, ok := e.byIdx[index]
	if !ok {
		te = &TableEntry{}
		e.byIdx[index] = te
	}
	return te
}

// Lookup returns the state for a table without creating it
func (e *Entry) Lookup(index int) (TableEntry, bool) {
	te, ok := e.byIdx[index]
	if !ok {
		return TableEntry{}, false
	}
	return *te, true
}

// TableIndexes returns the indexes with recorded state in ascending order
func (e *Entry) TableIndexes() []int {
	idx := make([]int, 0, len(e.byIdx))
	for i := range e.byIdx {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Clone deep-copies the entry
func (e *Entry) Clone() *Entry {
	c := &Entry{Tables: e.Tables, byIdx: make(map[int]*TableEntry, len(e.byIdx))}
	for i, te := range e.byIdx {
		copied := *te
		c.byIdx[i] = &copied
	}
	return c
}

// Equal compares two entries by value. A missing table state equals a
// default one.
func (e *Entry) Equal(o *Entry) bool {
	if e.Tables != o.Tables {
		return false
	}
	for i, te := range e.byIdx {
		ot, _ := o.Lookup(i)
		if ot != *te {
			return false
		}
	}
	for i, ot := range o.byIdx {
		te, _ := e.Lookup(i)
		if te != *ot {
			return false
		}
	}
	return true
}

// prune drops table states that hold only defaults
func (e *Entry) prune() int {
	removed := 0
	for i, te := range e.byIdx {
		if te.IsDefault() {
			delete(e.byIdx, i)
			removed++
		}
	}
	return removed
}
