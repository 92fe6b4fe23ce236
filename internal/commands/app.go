package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/config"
	"github.com/cleared-dev/smsledger/internal/ledger"
	"github.com/cleared-dev/smsledger/internal/logging"
	"github.com/cleared-dev/smsledger/internal/scanlog"
)

// app carries the state shared by every subcommand after flag parsing.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool
	now        func() time.Time

	cfg    *config.Config
	root   string // directory holding the config file
	logger *slog.Logger
}

// load reads the config (defaults when the file is missing), applies
// environment overrides and installs the logger.
func (a *app) load(cmd *cobra.Command) error {
	path, err := filepath.Abs(a.configPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	a.root = filepath.Dir(path)

	cfg, err := config.Load(path)
	missing := errors.Is(err, fs.ErrNotExist)
	switch {
	case missing:
		cfg = config.Default()
	case err != nil:
		return err
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	a.cfg = cfg

	logCfg := logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		JSON:   cfg.Log.JSON || a.logJSON,
		Output: cmd.ErrOrStderr(),
	}
	if a.logLevel != "" {
		logCfg.Level = logging.ParseLevel(a.logLevel)
	}
	a.logger = logging.Setup(logCfg)

	if missing {
		a.logger.Debug("config file not found, using defaults", "path", path)
	}
	return nil
}

// resolve makes p absolute relative to the config directory.
func (a *app) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.root, p)
}

// openStore opens the configured ledger backend.
func (a *app) openStore() (ledger.Store, error) {
	opts := ledger.Options{
		Backend:    ledger.Backend(a.cfg.Ledger.Backend),
		Dir:        a.resolve(a.cfg.Ledger.Dir),
		SQLitePath: a.resolve(a.cfg.Ledger.SQLitePath),
	}
	if opts.Backend == ledger.BackendSQLite {
		if err := os.MkdirAll(filepath.Dir(opts.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger dir: %w", err)
		}
	}

	store, err := ledger.Open(opts, a.logger)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	return store, nil
}

// audit appends e to the scan log. Failures are logged, never returned.
func (a *app) audit(e scanlog.Entry) {
	if e.Timestamp.IsZero() {
		e.Timestamp = a.now()
	}
	if err := scanlog.Append(a.root, []scanlog.Entry{e}); err != nil {
		a.logger.Warn("failed to write scan log", "err", err)
	}
}

// today returns the current calendar day at midnight UTC.
func (a *app) today() time.Time {
	y, m, d := a.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
