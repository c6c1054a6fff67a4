// Package scheduler runs the monthly archival check from a background
// goroutine. The engine itself stays synchronous; the worker only decides
// when to poke it.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Runner is the engine entry point the worker drives. It is expected to be
// idempotent per period, so firing it more often than needed is harmless.
type Runner interface {
	CheckAndGenerate(ctx context.Context) error
}

type Worker struct {
	runner   Runner
	interval time.Duration
}

func New(runner Runner, interval time.Duration) *Worker {
	return &Worker{runner: runner, interval: interval}
}

// Run checks once immediately and then on every tick until ctx is
// cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	if err := w.runner.CheckAndGenerate(ctx); err != nil {
		slog.Error("scheduled extrato run failed", "error", err)
	}
}
