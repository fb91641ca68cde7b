package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bulwark/internal/period"
	"bulwark/internal/task/metrics"
	"bulwark/internal/task/models"
	"bulwark/pkg/platform/sentinel"
)

// Generator mints the task of the current period for every online task
// manager.
type Generator struct {
	tasks   Store
	catalog Catalog
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewGenerator(tasks Store, cat Catalog, opts ...Option) *Generator {
	s := &Service{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return &Generator{
		tasks:   tasks,
		catalog: cat,
		logger:  s.logger,
		metrics: s.metrics,
		now:     s.now,
	}
}

// GenerateResult counts what one run did.
type GenerateResult struct {
	Created  int
	Existing int
	Skipped  int
}

// Run looks up or creates each manager's task for the period containing now.
// Managers whose cadence does not start today are skipped unless force is
// set. One manager failing does not stop the others; the failures are
// joined.
func (g *Generator) Run(ctx context.Context, force bool) (GenerateResult, error) {
	var res GenerateResult
	managers, err := g.catalog.OnlineTaskManagers(ctx)
	if err != nil {
		return res, err
	}
	now := g.now()
	var errs []error
	for _, m := range managers {
		cadence, err := g.catalog.Cadence(ctx, m.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("task manager %s: %w", m.ID, err))
			continue
		}
		if !force && !period.IsTriggerDay(cadence, now) {
			res.Skipped++
			continue
		}
		tag := period.Tag(cadence, now)
		created, err := g.ensure(ctx, m.ID, tag, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("task manager %s: %w", m.ID, err))
			continue
		}
		if created {
			res.Created++
			g.metrics.IncCreated()
			g.logger.InfoContext(ctx, "[TASK_GEN] task created",
				"task_manager", m.ID,
				"period", tag,
			)
		} else {
			res.Existing++
		}
	}
	return res, errors.Join(errs...)
}

func (g *Generator) ensure(ctx context.Context, managerID, tag string, now time.Time) (bool, error) {
	_, err := g.tasks.FindByManagerPeriod(ctx, managerID, tag)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return false, err
	}
	t := &models.Task{
		ID:            uuid.NewString(),
		TaskManagerID: managerID,
		Period:        tag,
		Status:        models.StatusNotStarted,
		CreatedAt:     now,
	}
	if err := g.tasks.Create(ctx, t); err != nil {
		// another run created it first
		if errors.Is(err, sentinel.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
