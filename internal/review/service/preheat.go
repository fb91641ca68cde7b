package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"bulwark/internal/review/metrics"
)

const defaultPreheatConcurrency = 5

// Warmer builds and caches the account feeds of one task.
type Warmer interface {
	Warm(ctx context.Context, taskID string) error
}

// Preheater warms the feed cache of every unfinished task with a bounded
// pool of workers.
type Preheater struct {
	tasks       TaskStore
	warmer      Warmer
	concurrency int
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

func NewPreheater(tasks TaskStore, warmer Warmer, concurrency int, opts ...Option) *Preheater {
	o := newOptions(opts)
	if concurrency <= 0 {
		concurrency = defaultPreheatConcurrency
	}
	return &Preheater{
		tasks:       tasks,
		warmer:      warmer,
		concurrency: concurrency,
		logger:      o.logger,
		metrics:     o.metrics,
	}
}

// Run warms every unfinished task. A failing task does not stop the others;
// all failures are joined once the pool drains.
func (p *Preheater) Run(ctx context.Context) (int, error) {
	tasks, err := p.tasks.ListUnfinished(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("list unfinished tasks: %w", err)
	}
	p.logger.InfoContext(ctx, "[CACHE_PREHEAT] begin", "tasks", len(tasks), "concurrency", p.concurrency)

	var (
		mu   sync.Mutex
		errs []error
		done int
	)
	g := new(errgroup.Group)
	g.SetLimit(p.concurrency)
	for _, t := range tasks {
		g.Go(func() error {
			err := p.warmer.Warm(ctx, t.ID)
			p.metrics.IncPreheat(err)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("task %s: %w", t.ID, err))
				p.logger.WarnContext(ctx, "[CACHE_PREHEAT] task failed", "task_id", t.ID, "error", err)
				return nil
			}
			done++
			return nil
		})
	}
	_ = g.Wait()
	p.logger.InfoContext(ctx, "[CACHE_PREHEAT] finished", "warmed", done, "failed", len(errs))
	return done, errors.Join(errs...)
}
