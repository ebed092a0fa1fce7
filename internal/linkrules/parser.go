package linkrules

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/logging"
)

// SchemaLookup returns the ordered cell names of a table
type SchemaLookup interface {
	CellNames(table string) ([]string, bool)
}

// Warning describes a rule line that was skipped or partly ignored
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

var captureRef = regexp.MustCompile(`\$([1-9])`)

// LoadFile parses the rule file at path. A missing or unreadable file yields
// an empty rule set; warnings are logged.
func LoadFile(path string, schemas SchemaLookup) *RuleSet {
	f, err := os.Open(path)
	if err != nil {
		logging.Logger.Warn("Link rules not loaded", "path", path, "error", err)
		return Empty()
	}
	defer f.Close()

	rules, warnings := Parse(f, schemas)
	for _, w := range warnings {
		logging.Logger.Warn("Skipped link rule", "path", path, "line", w.Line, "reason", w.Message)
	}
	tables, count := rules.Stats()
	logging.Logger.Info("Link rules loaded", "path", path, "tables", tables, "rules", count)
	return rules
}

// Parse reads the line-oriented rule format:
//
//	TableName:
//	<key> alias <display text>
//	<key> link <target> [if <cellKey> <op> <literal> [and ...]]
//
// A key is an exact cell name, #<index>, or an unanchored regular expression.
// $1..$9 in condition keys are replaced with the key's capture groups.
func Parse(r io.Reader, schemas SchemaLookup) (*RuleSet, []Warning) {
	p := &parser{rules: Empty(), schemas: schemas}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p.parseLine(line)
	}
	if err := scanner.Err(); err != nil {
		p.warn("read failed: %v", err)
	}
	return p.rules, p.warnings
}

type parser struct {
	rules    *RuleSet
	schemas  SchemaLookup
	warnings []Warning
	lineNo   int

	table string
	cells []string
	valid bool
}

func (p *parser) warn(format string, args ...any) {
	p.warnings = append(p.warnings, Warning{Line: p.lineNo, Message: fmt.Sprintf(format, args...)})
}

// cellMatch is a schema cell selected by a rule key
type cellMatch struct {
	index    int
	captures []string
}

func (p *parser) parseLine(line string) {
	parts := strings.Fields(line)
	key := parts[0]

	if strings.HasSuffix(key, ":") && len(parts) == 1 {
		p.switchTable(strings.TrimSuffix(key, ":"))
		return
	}
	if !p.valid {
		if p.table == "" {
			p.warn("rule before any table header")
		}
		return
	}
	if len(parts) < 2 {
		p.warn("missing alias or link after %q", key)
		return
	}

	matches, ok := p.matchCells(key)
	if !ok {
		return
	}
	if len(matches) == 0 {
		p.warn("no cell of %s matches %q", p.table, key)
		return
	}

	switch strings.ToLower(parts[1]) {
	case "alias":
		alias := strings.Join(parts[2:], " ")
		if alias == "" {
			p.warn("empty alias for %q", key)
			return
		}
		for _, m := range matches {
			p.rules.entry(p.table, m.index).Alias = alias
		}
	case "link":
		tmpl, ok := p.parseLink(parts[2:])
		if !ok {
			return
		}
		for _, m := range matches {
			r := p.rules.entry(p.table, m.index)
			r.Links = append(r.Links, tmpl.instantiate(m.captures))
		}
	default:
		p.warn("unknown rule type %q", parts[1])
	}
}

func (p *parser) switchTable(name string) {
	p.table = name
	cells, ok := p.schemas.CellNames(name)
	p.valid = ok
	p.cells = cells
	if !ok {
		p.warn("unknown table %q, skipping its rules", name)
	}
}

func (p *parser) matchCells(key string) ([]cellMatch, bool) {
	if strings.HasPrefix(key, "#") {
		idx, err := strconv.Atoi(key[1:])
		if err != nil || idx < 0 || idx >= len(p.cells) {
			p.warn("cell index %q out of range", key)
			return nil, false
		}
		return []cellMatch{{index: idx}}, true
	}

	for i, name := range p.cells {
		if name == key {
			return []cellMatch{{index: i}}, true
		}
	}

	re, err := regexp.Compile(key)
	if err != nil {
		p.warn("invalid pattern %q: %v", key, err)
		return nil, false
	}
	var matches []cellMatch
	for i, name := range p.cells {
		if sub := re.FindStringSubmatch(name); sub != nil {
			matches = append(matches, cellMatch{index: i, captures: sub[1:]})
		}
	}
	return matches, true
}

// linkTemplate is a parsed link whose condition keys may still hold $n
type linkTemplate struct {
	target     string
	conditions []Condition
}

func (t linkTemplate) instantiate(captures []string) Link {
	link := Link{Target: t.target}
	if len(t.conditions) > 0 {
		link.Conditions = make([]Condition, len(t.conditions))
	}
	for i, c := range t.conditions {
		c.CellKey = captureRef.ReplaceAllStringFunc(c.CellKey, func(ref string) string {
			n := int(ref[1] - '1')
			if n < len(captures) {
				return captures[n]
			}
			return ref
		})
		link.Conditions[i] = c
	}
	return link
}

func (p *parser) parseLink(args []string) (linkTemplate, bool) {
	if len(args) == 0 {
		p.warn("link without target table")
		return linkTemplate{}, false
	}
	tmpl := linkTemplate{target: args[0]}
	rest := args[1:]
	if len(rest) == 0 {
		return tmpl, true
	}
	if !strings.EqualFold(rest[0], "if") {
		p.warn("expected 'if' after link target, got %q", rest[0])
		return linkTemplate{}, false
	}
	rest = rest[1:]
	for {
		if len(rest) < 3 {
			p.warn("incomplete condition %q", strings.Join(rest, " "))
			return linkTemplate{}, false
		}
		op, ok := operatorSymbols[rest[1]]
		if !ok {
			p.warn("unknown operator %q", rest[1])
			return linkTemplate{}, false
		}
		lit, err := domain.ParseInteger(rest[2], false)
		if err != nil {
			p.warn("literal %q is not an integer", rest[2])
			return linkTemplate{}, false
		}
		tmpl.conditions = append(tmpl.conditions, Condition{CellKey: rest[0], Op: op, Literal: lit})
		rest = rest[3:]
		if len(rest) == 0 {
			return tmpl, true
		}
		if !strings.EqualFold(rest[0], "and") {
			p.warn("expected 'and' between conditions, got %q", rest[0])
			return linkTemplate{}, false
		}
		rest = rest[1:]
	}
}
