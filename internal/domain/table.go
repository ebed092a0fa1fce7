package domain

import (
	"fmt"
	"sort"
	"strings"
)

// EnumOption is one labelled value of a layout enum
type EnumOption struct {
	Label string
	Value int64
}

// CellDef describes one column of a table's schema
type CellDef struct {
	Name        string
	Kind        CellKind
	Size        int // byte length for fixstr and dummy kinds
	Default     Value
	Description string
	Enum        string // optional enum name, resolved through Table.Enums
}

// Parse parses user input for this cell, enforcing the fixstr size limit
func (d *CellDef) Parse(text string) (Value, error) {
	v, err := ParseValue(d.Kind, text)
	if err != nil {
		return Value{}, err
	}
	if d.Kind.IsString() && d.Size > 0 && len(v.Text()) > d.Size {
		return Value{}, fmt.Errorf("%w: %d bytes exceeds %d for %s", ErrValueOutOfRange, len(v.Text()), d.Size, d.Name)
	}
	return v, nil
}

// Layout is the schema of a table as loaded from a layout definition
type Layout struct {
	Name        string
	Description string
	Cells       []CellDef
	Enums       map[string][]EnumOption
}

// Cell is one typed field of a row
type Cell struct {
	Def   *CellDef
	Value Value
}

func (c *Cell) Name() string { return c.Def.Name }

func (c *Cell) Kind() CellKind { return c.Def.Kind }

// Modified reports whether the value differs from the schema default
func (c *Cell) Modified() bool { return !c.Value.Equal(c.Def.Default) }

// Set replaces the value. The kind must match the schema.
func (c *Cell) Set(v Value) error {
	if v.Kind() != c.Def.Kind {
		return fmt.Errorf("%w: %s value for %s cell %s", ErrInvalidValue, v.Kind(), c.Def.Kind, c.Def.Name)
	}
	c.Value = v.Clone()
	return nil
}

// Reset restores the schema default
func (c *Cell) Reset() {
	c.Value = c.Def.Default.Clone()
}

// Row is one record of a table
type Row struct {
	ID    int64
	Name  string
	Cells []Cell
}

// Table is a named, schema-typed collection of rows kept sorted by ID
type Table struct {
	Name        string
	Description string
	LayoutName  string
	Schema      []CellDef
	Enums       map[string][]EnumOption
	Rows        []*Row
	Error       bool
	ErrorDetail string

	cellIndex map[string]int
}

// NewTable creates an empty table using layout as its schema.
// A nil layout yields a table with no cells.
func NewTable(name string, layout *Layout) *Table {
	t := &Table{Name: name}
	if layout != nil {
		t.Description = layout.Description
		t.LayoutName = layout.Name
		t.Schema = make([]CellDef, len(layout.Cells))
		for i, def := range layout.Cells {
			if def.Default.Kind() != def.Kind {
				def.Default = ZeroValue(def.Kind)
			}
			def.Default = def.Default.Clone()
			t.Schema[i] = def
		}
		t.Enums = layout.Enums
	}
	t.cellIndex = make(map[string]int, len(t.Schema))
	for i, def := range t.Schema {
		if _, exists := t.cellIndex[def.Name]; !exists {
			t.cellIndex[def.Name] = i
		}
	}
	return t
}

// MarkError flags the table as not fully loaded
func (t *Table) MarkError(detail string) {
	t.Error = true
	t.ErrorDetail = detail
}

// CellIndex returns the schema position of a cell name
func (t *Table) CellIndex(name string) (int, bool) {
	i, ok := t.cellIndex[name]
	return i, ok
}

// EnumFor returns the enum options bound to a schema cell, if any
func (t *Table) EnumFor(cellIndex int) []EnumOption {
	if cellIndex < 0 || cellIndex >= len(t.Schema) {
		return nil
	}
	name := t.Schema[cellIndex].Enum
	if name == "" {
		return nil
	}
	return t.Enums[name]
}

// NewRow builds a detached row with default cell values
func (t *Table) NewRow(id int64, name string) *Row {
	row := &Row{ID: id, Name: name, Cells: make([]Cell, len(t.Schema))}
	for i := range t.Schema {
		row.Cells[i] = Cell{Def: &t.Schema[i], Value: t.Schema[i].Default.Clone()}
	}
	return row
}

// RowIndexByID binary-searches the sorted rows for id
func (t *Table) RowIndexByID(id int64) (int, bool) {
	i := sort.Search(len(t.Rows), func(i int) bool { return t.Rows[i].ID >= id })
	if i < len(t.Rows) && t.Rows[i].ID == id {
		return i, true
	}
	return i, false
}

// RowByID returns the row with the given ID
func (t *Table) RowByID(id int64) (*Row, bool) {
	i, ok := t.RowIndexByID(id)
	if !ok {
		return nil, false
	}
	return t.Rows[i], true
}

// SortRows restores ID order after bulk loading
func (t *Table) SortRows() {
	sort.SliceStable(t.Rows, func(i, j int) bool { return t.Rows[i].ID < t.Rows[j].ID })
}

// CreateRow inserts a new row with default values at its sorted position and
// returns that position. The table is untouched when id already exists.
func (t *Table) CreateRow(id int64, name string) (int, error) {
	i, exists := t.RowIndexByID(id)
	if exists {
		return -1, fmt.Errorf("%w: %d in %s", ErrDuplicateRowID, id, t.Name)
	}
	t.Rows = append(t.Rows, nil)
	copy(t.Rows[i+1:], t.Rows[i:])
	t.Rows[i] = t.NewRow(id, name)
	return i, nil
}

// DuplicateRow creates a row with id and name holding a copy of the values of
// the row at src.
func (t *Table) DuplicateRow(src int, id int64, name string) (int, error) {
	if src < 0 || src >= len(t.Rows) {
		return -1, fmt.Errorf("%w: index %d in %s", ErrRowNotFound, src, t.Name)
	}
	source := t.Rows[src]
	i, err := t.CreateRow(id, name)
	if err != nil {
		return -1, err
	}
	for c := range source.Cells {
		t.Rows[i].Cells[c].Value = source.Cells[c].Value.Clone()
	}
	return i, nil
}

// DeleteRow removes the row at index
func (t *Table) DeleteRow(index int) error {
	if index < 0 || index >= len(t.Rows) {
		return fmt.Errorf("%w: index %d in %s", ErrRowNotFound, index, t.Name)
	}
	copy(t.Rows[index:], t.Rows[index+1:])
	t.Rows[len(t.Rows)-1] = nil
	t.Rows = t.Rows[:len(t.Rows)-1]
	return nil
}

// FindRowByName searches row names for a case-insensitive substring,
// starting at start and wrapping around once.
func (t *Table) FindRowByName(pattern string, start int) (int, bool) {
	return findWrapping(len(t.Rows), pattern, start, func(i int) (string, bool) {
		return t.Rows[i].Name, true
	})
}

// FindCellByName searches schema names the same way, skipping padding cells.
// The result is a schema index.
func (t *Table) FindCellByName(pattern string, start int) (int, bool) {
	return findWrapping(len(t.Schema), pattern, start, func(i int) (string, bool) {
		return t.Schema[i].Name, !t.Schema[i].Kind.IsPadding()
	})
}

func findWrapping(n int, pattern string, start int, name func(int) (string, bool)) (int, bool) {
	if n == 0 || pattern == "" {
		return -1, false
	}
	needle := strings.ToLower(pattern)
	if start < 0 || start >= n {
		start = 0
	}
	for step := 0; step < n; step++ {
		i := (start + step) % n
		candidate, ok := name(i)
		if ok && strings.Contains(strings.ToLower(candidate), needle) {
			return i, true
		}
	}
	return -1, false
}

// ModifiedCount returns the number of non-default cells in a row
func (r *Row) ModifiedCount() int {
	n := 0
	for i := range r.Cells {
		if r.Cells[i].Modified() {
			n++
		}
	}
	return n
}

// Catalog is the ordered list of tables loaded from one archive
type Catalog struct {
	Path   string
	Tables []*Table

	byName map[string]int
}

// NewCatalog indexes tables by name
func NewCatalog(path string, tables []*Table) *Catalog {
	c := &Catalog{Path: path, Tables: tables, byName: make(map[string]int, len(tables))}
	for i, t := range tables {
		c.byName[t.Name] = i
	}
	return c
}

// TableIndex resolves a table name to its position
func (c *Catalog) TableIndex(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// Table returns the table at index, or nil when out of range
func (c *Catalog) Table(index int) *Table {
	if index < 0 || index >= len(c.Tables) {
		return nil
	}
	return c.Tables[index]
}

// TableByName returns the named table
func (c *Catalog) TableByName(name string) (*Table, error) {
	i, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return c.Tables[i], nil
}

// CellNames returns the ordered schema names of a table
func (c *Catalog) CellNames(table string) ([]string, bool) {
	i, ok := c.byName[table]
	if !ok {
		return nil, false
	}
	names := make([]string, len(c.Tables[i].Schema))
	for j, def := range c.Tables[i].Schema {
		names[j] = def.Name
	}
	return names, true
}
