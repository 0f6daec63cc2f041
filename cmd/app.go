package cmd

import (
	"log/slog"
	"os"

	"github.com/dotcommander/floatscore/internal/config"
	"github.com/dotcommander/floatscore/internal/controller"
	"github.com/dotcommander/floatscore/internal/history"
	"github.com/dotcommander/floatscore/internal/logging"
	"github.com/dotcommander/floatscore/internal/outputters"
	"github.com/dotcommander/floatscore/internal/prefs"
)

// app wires configuration, stores and the controller for one invocation.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	prefs   prefs.Store
	history *history.Store
	ctrl    *controller.Controller
	out     *outputters.Outputter
}

// newApp loads configuration and the persisted state. Store read failures
// are logged and the run continues with empty state.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}

	log := logging.New(os.Stderr, cfg.Quiet, cfg.Verbose)

	var store prefs.Store = prefs.NewFileStore(cfg.PrefsFile)
	if cfg.NoPrefs {
		store = prefs.NewMemoryStore()
	}

	hs := history.NewStore(cfg.HistoryFile)
	h, err := hs.Load()
	if err != nil {
		log.Warn("could not load history, starting empty", slog.String("path", hs.Path()), slog.Any("error", err))
	}

	ctrl := controller.New(controller.Options{
		Defaults: cfg.FormDefaults(),
		Prefs:    store,
		History:  h,
		Logger:   log,
	})

	return &app{
		cfg:     cfg,
		log:     log,
		prefs:   store,
		history: hs,
		ctrl:    ctrl,
		out:     outputters.NewOutputter(cfg),
	}, nil
}

// saveHistory writes the controller's history back to disk, best effort.
func (a *app) saveHistory() {
	if err := a.history.Save(a.ctrl.HistoryStore()); err != nil {
		a.log.Warn("could not save history", slog.String("path", a.history.Path()), slog.Any("error", err))
	}
}
