package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/paramdex/paramdex/internal/linkrules"
)

// RulesCmd inspects link rule files
type RulesCmd struct {
	Check RulesCheckCmd `cmd:"check" help:"Parse a rules file and report skipped lines" default:"1"`
}

// RulesCheckCmd parses a rules file against the archive's schemas
type RulesCheckCmd struct {
	File   string `arg:"" optional:"" help:"Rules file (default: settings rules_file)" type:"path"`
	Strict bool   `help:"Exit with an error when any line was skipped"`
}

// Run executes the check command
func (r *RulesCheckCmd) Run(cli *CLI) error {
	catalog, err := cli.openArchive(context.Background())
	if err != nil {
		return err
	}

	path := r.File
	if path == "" {
		path = cli.settings.ResolvedRulesFile()
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open rules file: %w", err)
	}
	defer f.Close()

	rules, warnings := linkrules.Parse(f, catalog)
	for _, w := range warnings {
		fmt.Printf("%s: %s\n", path, w)
	}

	tables, count := rules.Stats()
	fmt.Printf("%d rules in %d tables, %d warnings\n", count, tables, len(warnings))
	if r.Strict && len(warnings) > 0 {
		return fmt.Errorf("%d rule lines skipped", len(warnings))
	}
	return nil
}
