package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	catalog "bulwark/internal/catalog/models"
)

const defaultConcurrency = 4

// SystemLister enumerates audit systems.
type SystemLister interface {
	Systems(ctx context.Context) ([]*catalog.AuditSystem, error)
}

// Runner applies a fixed handler chain to audit systems. Handlers of one
// system run in order; systems run concurrently.
type Runner struct {
	deps
	systems     SystemLister
	handlers    []Handler
	concurrency int
	tracer      trace.Tracer
}

func NewRunner(systems SystemLister, handlers []Handler, concurrency int, opts ...Option) *Runner {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Runner{
		deps:        newDeps(opts),
		systems:     systems,
		handlers:    handlers,
		concurrency: concurrency,
		tracer:      otel.Tracer("bulwark/risk"),
	}
}

// RunSystem runs every handler for one system. A failing handler does not
// stop the ones after it; all failures are joined.
func (r *Runner) RunSystem(ctx context.Context, systemID string) error {
	var errs []error
	for _, h := range r.handlers {
		if err := r.runOne(ctx, h, systemID); err != nil {
			errs = append(errs, fmt.Errorf("%s on %s: %w", h.Name(), systemID, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) runOne(ctx context.Context, h Handler, systemID string) error {
	ctx, span := r.tracer.Start(ctx, "risk."+h.Name(), trace.WithAttributes(
		attribute.String("system_id", systemID),
	))
	defer span.End()

	start := time.Now()
	err := h.Validate(ctx, systemID)
	r.metrics.ObserveRun(h.Name(), err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "rule handler failed",
			"handler", h.Name(),
			"system_id", systemID,
			"error", err,
		)
	}
	return err
}

// Run applies the chain to every audit system.
func (r *Runner) Run(ctx context.Context) error {
	systems, err := r.systems.Systems(ctx)
	if err != nil {
		return err
	}
	var (
		mu   sync.Mutex
		errs []error
	)
	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for _, sys := range systems {
		g.Go(func() error {
			if err := r.RunSystem(ctx, sys.ID); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	r.logger.InfoContext(ctx, "rule run finished",
		"systems", len(systems),
		"failed", len(errs),
	)
	return errors.Join(errs...)
}
