package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/gitexplore/internal/config"
	"github.com/VoxDroid/gitexplore/internal/db"
	"github.com/VoxDroid/gitexplore/internal/history"
	"github.com/VoxDroid/gitexplore/internal/match"
	"github.com/VoxDroid/gitexplore/internal/options"
)

// app carries what a command needs once settings and flags are merged.
type app struct {
	settings config.Settings
	mode     match.Mode
	logger   *slog.Logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	s, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		s.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("data") {
		s.Data, _ = flags.GetString("data")
	}
	if off, _ := flags.GetBool("no-history"); off {
		s.History = false
	}
	if off, _ := flags.GetBool("no-color"); off {
		s.Color = false
	}
	mode, err := match.ParseMode(s.Mode)
	if err != nil {
		return nil, usageError{err}
	}

	level := slog.LevelWarn
	if debug, _ := flags.GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return &app{settings: s, mode: mode, logger: logger}, nil
}

// loadTree builds the reference tree, from the configured file when there is
// one and from the bundled data otherwise.
func (a *app) loadTree() (*options.Tree, error) {
	var (
		tree *options.Tree
		err  error
	)
	if a.settings.Data != "" {
		tree, err = options.ReadFile(a.settings.Data)
	} else {
		tree, err = options.Default()
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("reference data loaded", "source", a.dataSource(), "nodes", tree.Len(), "digest", tree.Digest)
	return tree, nil
}

func (a *app) dataSource() string {
	if a.settings.Data != "" {
		return a.settings.Data
	}
	return "bundled"
}

// record logs a query in the history database. Failures are logged and
// otherwise ignored: the answer has already been printed.
func (a *app) record(raw, tokens []string, out match.Outcome, digest string) {
	if !a.settings.History {
		return
	}
	conn, err := db.InitDB()
	if err != nil {
		a.logger.Warn("history unavailable", "err", err)
		return
	}
	repo := history.NewRepository(conn)
	defer func() { _ = repo.Close() }()
	if _, err := repo.Record(history.NewEntry(raw, tokens, out, a.mode, digest)); err != nil {
		a.logger.Warn("could not record query", "err", err)
	}
}
