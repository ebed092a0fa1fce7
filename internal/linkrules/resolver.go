package linkrules

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/paramdex/paramdex/internal/domain"
)

// Status is the outcome of resolving a cell
type Status int

const (
	// StatusNone means the cell is not a reference under the current row
	StatusNone Status = iota
	// StatusValid means the value names an existing row of the target table
	StatusValid
	// StatusInvalid means a rule applies but the value does not resolve
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	}
	return "none"
}

// unsetReference marks a reference cell that deliberately points nowhere
const unsetReference = -1

const defaultCacheSize = 4096

// Target is the resolution of one cell
type Target struct {
	Status     Status
	Value      int64
	TableName  string
	TableIndex int
	RowIndex   int
	Table      *domain.Table
	Row        *domain.Row
	Reason     string // set for invalid results
}

// Tables is the part of a catalog the resolver needs
type Tables interface {
	TableIndex(name string) (int, bool)
	Table(index int) *domain.Table
}

type resolveKey struct {
	table *domain.Table
	row   *domain.Row
	cell  int
}

// Resolver turns cell values into cross-table targets using a rule set.
// Results are cached per cell; call Invalidate after any mutation of the
// catalog.
type Resolver struct {
	rules  *RuleSet
	tables Tables
	cache  *lru.Cache[resolveKey, Target]
}

// NewResolver creates a resolver over tables
func NewResolver(rules *RuleSet, tables Tables) *Resolver {
	if rules == nil {
		rules = Empty()
	}
	cache, _ := lru.New[resolveKey, Target](defaultCacheSize)
	return &Resolver{rules: rules, tables: tables, cache: cache}
}

// Rules returns the rule set in use
func (r *Resolver) Rules() *RuleSet {
	return r.rules
}

// Alias returns the display name declared for a schema cell
func (r *Resolver) Alias(table *domain.Table, cellIndex int) (string, bool) {
	return r.rules.Alias(table.Name, cellIndex)
}

// Invalidate drops every cached resolution
func (r *Resolver) Invalidate() {
	r.cache.Purge()
}

// Resolve decides whether the cell at cellIndex of row is a reference and
// where it points. Conditions are evaluated against row.
func (r *Resolver) Resolve(table *domain.Table, row *domain.Row, cellIndex int) Target {
	if table == nil || row == nil || cellIndex < 0 || cellIndex >= len(row.Cells) {
		return Target{}
	}
	key := resolveKey{table: table, row: row, cell: cellIndex}
	if t, ok := r.cache.Get(key); ok {
		return t
	}
	t := r.resolve(table, row, cellIndex)
	r.cache.Add(key, t)
	return t
}

func (r *Resolver) resolve(table *domain.Table, row *domain.Row, cellIndex int) Target {
	cell := &row.Cells[cellIndex]
	if !cell.Kind().Indexable() {
		return Target{}
	}
	rule, ok := r.rules.Rule(table.Name, cellIndex)
	if !ok || len(rule.Links) == 0 {
		return Target{}
	}
	value, ok := cell.Value.Int64()
	if !ok {
		return Target{}
	}
	if value == unsetReference {
		return Target{Value: value}
	}
	if value < 0 {
		return Target{Status: StatusInvalid, Value: value, Reason: fmt.Sprintf("negative reference %d", value)}
	}

	link, ok := rule.FirstMatch(table, row)
	if !ok {
		return Target{Value: value}
	}

	target := Target{Value: value, TableName: link.Target, TableIndex: -1, RowIndex: -1}
	ti, ok := r.tables.TableIndex(link.Target)
	if !ok {
		target.Status = StatusInvalid
		target.Reason = fmt.Sprintf("table %s is not loaded", link.Target)
		return target
	}
	target.TableIndex = ti
	target.Table = r.tables.Table(ti)

	ri, ok := target.Table.RowIndexByID(value)
	if !ok {
		target.Status = StatusInvalid
		target.Reason = fmt.Sprintf("%s has no row %d", link.Target, value)
		return target
	}
	target.Status = StatusValid
	target.RowIndex = ri
	target.Row = target.Table.Rows[ri]
	return target
}
