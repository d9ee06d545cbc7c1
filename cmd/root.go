package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/db"
	"github.com/marcus/folio/internal/locale"
	folog "github.com/marcus/folio/internal/log"
	"github.com/marcus/folio/internal/prefs"
	"github.com/marcus/folio/pkg/page"
)

var (
	version = "dev"
	cfgFile string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Terminal portfolio",
	Long: `folio - a personal portfolio for the terminal.

Run without arguments to open the page. Sections open as panels over the
home view; the theme and language you pick are remembered between runs.`,
	SilenceUsage: true,
	RunE:         runPage,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default "+config.Dir()+"/config.yaml)")
	f.String("content", "", "content file (default: built-in)")
	f.String("data-dir", "", "directory for preferences and logs (default ~/.folio)")
	f.String("log-level", "", "log level: debug, info, warn, error")
	f.String("log-file", "", "log file (default <data-dir>/folio.log)")
}

// app is everything a command needs after startup.
type app struct {
	cfg   *config.Config
	doc   *content.Document
	db    *db.DB
	prefs *prefs.Prefs
	log   *slog.Logger

	logCloser io.Closer
}

// loadApp reads config, then loads content and opens the preference
// database in parallel. Only config and content errors are fatal; without a
// database preferences live in memory for this run.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger, closer := folog.New(folog.Options{Level: cfg.Log.Level, File: cfg.LogPath()})
	a := &app{cfg: cfg, log: logger, logCloser: closer}

	var g errgroup.Group
	g.Go(func() error {
		doc, err := content.Load(cfg.Content)
		if err != nil {
			return err
		}
		a.doc = doc
		return nil
	})
	g.Go(func() error {
		database, err := db.Open(cfg.DataDir)
		if err != nil {
			logger.Error("open preferences", "dir", cfg.DataDir, "err", err)
			return nil
		}
		a.db = database
		return nil
	})
	if err := g.Wait(); err != nil {
		a.Close()
		return nil, err
	}

	var store prefs.Store = prefs.MemStore{}
	if a.db != nil {
		store = a.db
	}
	a.prefs = prefs.Load(store, logger)
	logger.Debug("started", "version", version, "content", cfg.Content,
		"data_dir", cfg.DataDir, "mobile_cols", cfg.Columns())
	return a, nil
}

// requireDB fails when preferences cannot be persisted.
func (a *app) requireDB() error {
	if a.db == nil {
		return errors.New("preferences database unavailable (see log for details)")
	}
	return nil
}

// Close releases the database and flushes the log.
func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("close database", "err", err)
		}
	}
	a.logCloser.Close()
}

func runPage(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	m := page.New(page.Options{
		Doc:           a.doc,
		Prefs:         a.prefs,
		Catalog:       locale.NewCatalog(),
		Breakpoint:    a.cfg.Breakpoint,
		CellWidth:     a.cfg.CellWidth,
		FeedbackDelay: a.cfg.FeedbackDelay,
		Logger:        a.log,
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
