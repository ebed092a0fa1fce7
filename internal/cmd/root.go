package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paramdex/paramdex/internal/config"
	"github.com/paramdex/paramdex/internal/domain"
	"github.com/paramdex/paramdex/internal/linkrules"
	"github.com/paramdex/paramdex/internal/logging"
	"github.com/paramdex/paramdex/internal/ui"
)

const defaultMaxLogFiles = logging.DefaultMaxLogFiles

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"200"`

	Archive string `help:"Path of the param archive (overrides $PARAMDEX_ARCHIVE and settings.json)" short:"a" type:"path"`
	Layouts string `help:"Directory of table layouts (overrides settings.json)" type:"path"`

	Run      RunCmd      `cmd:"" help:"Start the paramdex TUI (default)" default:"1"`
	Tables   TablesCmd   `cmd:"tables" help:"List the tables of the archive"`
	Rows     RowsCmd     `cmd:"rows" help:"List the rows of a table"`
	Names    NamesCmd    `cmd:"names" help:"Import or export row names"`
	Rules    RulesCmd    `cmd:"rules" help:"Inspect link rules"`
	Export   ExportCmd   `cmd:"export" help:"Export tables to a directory or s3:// location"`
	Restore  RestoreCmd  `cmd:"restore" help:"Restore the archive from its backup"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == defaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PARAMDEX_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PARAMDEX_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	} else {
		c.settings = &config.Settings{}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PARAMDEX_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PARAMDEX_DEBUG_FILE", logFilePath)
		}
	}

	if c.settings.Keys != nil {
		if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
	}

	// Container is created after logging so adapters log to the right place
	c.Container = NewContainer(c.settings)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// archivePath resolves the archive with flag > env > settings precedence
func (c *CLI) archivePath() (string, error) {
	path := c.Archive
	if path == "" {
		path = os.Getenv("PARAMDEX_ARCHIVE")
	}
	if path == "" && c.settings != nil {
		path = c.settings.ArchivePath
	}
	if path == "" {
		return "", fmt.Errorf("%w: pass --archive or run 'paramdex settings set-archive <path>'", domain.ErrNoArchive)
	}
	return config.ExpandPath(path), nil
}

func (c *CLI) layoutsDir() string {
	if c.Layouts != "" {
		return c.Layouts
	}
	return c.settings.ResolvedLayoutsDir()
}

// openArchive loads the archive for commands that need one
func (c *CLI) openArchive(ctx context.Context) (*domain.Catalog, error) {
	path, err := c.archivePath()
	if err != nil {
		return nil, err
	}
	return c.Container.ArchiveService.Open(ctx, path, c.layoutsDir())
}

// loadRules parses the link rules for the open catalog
func (c *CLI) loadRules(path string, catalog *domain.Catalog) *linkrules.RuleSet {
	if path == "" {
		path = c.settings.ResolvedRulesFile()
	}
	return linkrules.LoadFile(path, catalog)
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	MetricsAddr     string `help:"Serve Prometheus metrics on this address (e.g. :9090)"`
	Rules           string `help:"Link rules file (overrides settings.json)" type:"path"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if r.ErrorClearDelay == config.DefaultErrorClearDelay && cli.settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *cli.settings.ErrorClearDelay
	}

	logging.Logger.Info("Starting paramdex TUI")

	ctx := context.Background()
	catalog, err := cli.openArchive(ctx)
	if err != nil {
		return err
	}
	rules := cli.loadRules(r.Rules, catalog)

	if r.MetricsAddr != "" {
		stop := r.serveMetrics(cli.Container)
		defer stop()
	}

	model := ui.NewModel(ui.ModelOptions{
		Archive:         cli.Container.ArchiveService,
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		Metrics:         cli.Container.Metrics,
		Names:           cli.Container.NamesService,
		Rules:           rules,
		Settings:        cli.settings,
		Updates:         cli.Container.UpdateService,
		ViewState:       cli.Container.ViewStateService,
	})
	model.ShowStartupWarnings(tableWarnings(catalog))

	p := tea.NewProgram(model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// serveMetrics exposes the metrics registry until the returned func is called
func (r *RunCmd) serveMetrics(c *Container) func() {
	srv := &http.Server{
		Addr:              r.MetricsAddr,
		Handler:           c.Metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logging.Logger.Info("Serving metrics", "addr", r.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Error("Metrics server failed", "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logging.Logger.Warn("Failed to stop metrics server", "error", err)
		}
	}
}

// tableWarnings collects the tables that could not be decoded
func tableWarnings(catalog *domain.Catalog) []error {
	var warnings []error
	for _, t := range catalog.Tables {
		if t.Error {
			warnings = append(warnings, fmt.Errorf("%s: %s", t.Name, t.ErrorDetail))
		}
	}
	return warnings
}
