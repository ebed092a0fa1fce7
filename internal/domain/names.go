package domain

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var nameLinePattern = regexp.MustCompile(`^(\d+) (.+)$`)

// ParseNames reads "<id> <name>" lines. Blank lines are skipped; any other
// line that does not match is an error naming its line number.
func ParseNames(r io.Reader) (map[int64]string, error) {
	names := make(map[int64]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m := nameLinePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: expected \"<id> <name>\", got %q", lineNo, line)
		}
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		names[id] = m[2]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}
	return names, nil
}

// ImportNames applies names to matching rows. With replace unset only rows
// whose name is empty are filled. Returns the number of rows changed.
func (t *Table) ImportNames(names map[int64]string, replace bool) int {
	changed := 0
	for _, row := range t.Rows {
		name, ok := names[row.ID]
		if !ok {
			continue
		}
		if !replace && strings.TrimSpace(row.Name) != "" {
			continue
		}
		if row.Name != name {
			row.Name = name
			changed++
		}
	}
	return changed
}

// ExportNames writes "<id> <name>" for every row with a non-blank name
func (t *Table) ExportNames(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	written := 0
	for _, row := range t.Rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %s\n", row.ID, name); err != nil {
			return written, err
		}
		written++
	}
	return written, bw.Flush()
}
