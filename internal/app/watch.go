package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	fsw "github.com/corey/gromark/internal/adapters/fsnotify"
	"github.com/corey/gromark/internal/config"
	"github.com/corey/gromark/internal/ports"
)

// Watch cracks the plan at planPath once, then recracks every time the
// file is saved, until ctx is cancelled. Each completed run is handed
// to onRun. A plan that fails to load or a search that fails is logged
// and skipped; the watch stays alive so the next save gets a fresh try.
func (a *App) Watch(ctx context.Context, planPath string, onRun func(*ports.RunRecord)) error {
	runOnce := func() {
		plan, err := config.Load(planPath)
		if err != nil {
			a.Log.Warn("plan not runnable", zap.String("path", planPath), zap.Error(err))
			return
		}
		record, err := a.Crack(ctx, plan)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			a.Log.Error("crack failed", zap.Error(err))
			if record == nil {
				return
			}
			// Save failed but the search completed: still show results.
		}
		if onRun != nil {
			onRun(record)
		}
	}

	// The initial crack finishes before the watcher starts and event
	// callbacks fire sequentially, so runs never overlap.
	runOnce()

	watcher, err := fsw.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Watch(planPath, func(string) { runOnce() }); err != nil {
		return fmt.Errorf("watch %s: %w", planPath, err)
	}
	a.Log.Info("watching plan", zap.String("path", planPath))

	<-ctx.Done()
	return nil
}
