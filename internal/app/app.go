// Package app wires the cipher domain, search engine, run store and
// plan watcher into the tool's use cases: crack once, watch a plan, and
// browse run history.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/corey/gromark/internal/adapters/bbolt"
	"github.com/corey/gromark/internal/domain/score"
	"github.com/corey/gromark/internal/domain/search"
	"github.com/corey/gromark/internal/logger"
)

// Config holds initialization parameters for the App.
type Config struct {
	DataDir   string      // default: GROMARK_DATA_DIR or ~/.gromark
	LogFormat string      // "console" or "json"
	LogLevel  string      // overrides the info default
	Logger    *zap.Logger // optional: overrides LogFormat/LogLevel (tests)
}

// App is the top-level container wiring all components together.
type App struct {
	Log    *zap.Logger
	Store  *bbolt.Store
	Engine *search.Engine
	Paths  *Paths
}

// New creates an App with all dependencies wired.
func New(cfg Config) (*App, error) {
	log := cfg.Logger
	if log == nil {
		var err error
		log, err = logger.New(cfg.LogFormat, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
	}

	paths, err := NewPaths(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return nil, fmt.Errorf("open run store: %w", err)
	}

	return &App{
		Log:    log,
		Store:  store,
		Engine: search.New(score.Score),
		Paths:  paths,
	}, nil
}

// Close releases the run store. The logger is flushed best-effort;
// stderr sync failures are expected on some platforms and ignored.
func (a *App) Close() error {
	_ = a.Log.Sync()
	return a.Store.Close()
}
