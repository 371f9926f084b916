package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4, 8)
	results := pool.Run(context.Background())

	var ran atomic.Int64
	for i := 0; i < 20; i++ {
		pool.Submit(func(context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	pool.Close()

	var got int
	for r := range results {
		if r.Err != nil {
			t.Fatalf("unexpected task error: %v", r.Err)
		}
		got++
	}
	if got != 20 || ran.Load() != 20 {
		t.Fatalf("expected 20 results and 20 runs, got %d and %d", got, ran.Load())
	}
}

func TestWorkerPool_PropagatesTaskErrors(t *testing.T) {
	pool := NewWorkerPool(2, 2)
	results := pool.Run(context.Background())

	boom := errors.New("boom")
	pool.Submit(func(context.Context) error { return boom })
	pool.Submit(func(context.Context) error { return nil })
	pool.Close()

	var failed int
	for r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed task, got %d", failed)
	}
}

func TestWorkerPool_CancelStopsWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(1, 0)
	results := pool.Run(ctx)

	cancel()
	// Workers observe cancellation and exit; the results channel closes.
	for range results {
	}
}
