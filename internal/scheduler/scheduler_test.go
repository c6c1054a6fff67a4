package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/diediegodie/inkledger/internal/scheduler"
)

type countingRunner struct {
	calls atomic.Int64
	err   error
}

func (r *countingRunner) CheckAndGenerate(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestWorker_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	runner := &countingRunner{}
	worker := scheduler.New(runner, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	// The first check fires before the first tick.
	assert.Eventually(t, func() bool {
		return runner.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestWorker_TicksRepeatedly(t *testing.T) {
	runner := &countingRunner{}
	worker := scheduler.New(runner, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.Run(ctx)

	assert.Eventually(t, func() bool {
		return runner.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestWorker_KeepsRunningAfterFailure(t *testing.T) {
	runner := &countingRunner{err: errors.New("backup missing")}
	worker := scheduler.New(runner, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.Run(ctx)

	// Errors are logged, not fatal: the worker keeps ticking.
	assert.Eventually(t, func() bool {
		return runner.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}
