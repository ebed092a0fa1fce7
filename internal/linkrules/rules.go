// Package linkrules parses declarative cross-reference rules and resolves
// cell values into rows of other tables.
package linkrules

import (
	"fmt"

	"github.com/paramdex/paramdex/internal/domain"
)

// Operator compares a cell value with a condition literal
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpGreater
)

var operatorSymbols = map[string]Operator{
	"==": OpEqual,
	"=":  OpEqual,
	"!=": OpNotEqual,
	"<>": OpNotEqual,
	"≠":  OpNotEqual,
	"<":  OpLess,
	">":  OpGreater,
}

func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	}
	return "?"
}

// Condition is a fully resolved test against another cell of the same row
type Condition struct {
	CellKey string
	Op      Operator
	Literal int64
}

// Evaluate reports whether the condition holds for row. A missing or
// non-numeric cell never satisfies a condition.
func (c Condition) Evaluate(table *domain.Table, row *domain.Row) bool {
	i, ok := table.CellIndex(c.CellKey)
	if !ok || i >= len(row.Cells) {
		return false
	}
	v, ok := row.Cells[i].Value.Int64()
	if !ok {
		return false
	}
	switch c.Op {
	case OpEqual:
		return v == c.Literal
	case OpNotEqual:
		return v != c.Literal
	case OpLess:
		return v < c.Literal
	case OpGreater:
		return v > c.Literal
	}
	return false
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %d", c.CellKey, c.Op, c.Literal)
}

// Link points a cell at a target table when all its conditions hold
type Link struct {
	Target     string
	Conditions []Condition
}

// Matches reports whether every condition holds for row
func (l Link) Matches(table *domain.Table, row *domain.Row) bool {
	for _, c := range l.Conditions {
		if !c.Evaluate(table, row) {
			return false
		}
	}
	return true
}

// Rule is the extra information attached to one schema cell
type Rule struct {
	Alias string
	Links []Link
}

// FirstMatch returns the first link, in declaration order, valid for row
func (r *Rule) FirstMatch(table *domain.Table, row *domain.Row) (Link, bool) {
	for _, l := range r.Links {
		if l.Matches(table, row) {
			return l, true
		}
	}
	return Link{}, false
}

// RuleSet holds the rules of every table, keyed by table name and schema index
type RuleSet struct {
	tables map[string]map[int]*Rule
}

// Empty returns a rule set without rules
func Empty() *RuleSet {
	return &RuleSet{tables: make(map[string]map[int]*Rule)}
}

// Rule returns the rule for a schema cell of a table
func (rs *RuleSet) Rule(table string, cellIndex int) (*Rule, bool) {
	if rs == nil {
		return nil, false
	}
	r, ok := rs.tables[table][cellIndex]
	return r, ok
}

// Alias returns the display alias for a schema cell, if one is declared
func (rs *RuleSet) Alias(table string, cellIndex int) (string, bool) {
	r, ok := rs.Rule(table, cellIndex)
	if !ok || r.Alias == "" {
		return "", false
	}
	return r.Alias, true
}

// Stats returns the number of tables with rules and the total rule count
func (rs *RuleSet) Stats() (tables, rules int) {
	for _, byIndex := range rs.tables {
		tables++
		rules += len(byIndex)
	}
	return tables, rules
}

func (rs *RuleSet) entry(table string, cellIndex int) *Rule {
	byIndex, ok := rs.tables[table]
	if !ok {
		byIndex = make(map[int]*Rule)
		rs.tables[table] = byIndex
	}
	r, ok := byIndex[cellIndex]
	if !ok {
		r = &Rule{}
		byIndex[cellIndex] = r
	}
	return r
}
