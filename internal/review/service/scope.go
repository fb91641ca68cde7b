package service

import (
	"context"
	"errors"
	"time"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/period"
	taskmodels "bulwark/internal/task/models"
	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/platform/sentinel"
)

// taskView is everything a review page derives from its task.
type taskView struct {
	task    *taskmodels.Task
	manager *catalog.TaskManager
	system  *catalog.AuditSystem
	// reviews read [periodStart, until)
	periodStart time.Time
	lastDate    time.Time
	until       time.Time
}

func loadTaskView(ctx context.Context, tasks TaskStore, cat Catalog, taskID string, now time.Time) (*taskView, error) {
	if taskID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "task id is required")
	}
	t, err := tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "task not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load task")
	}
	m, err := cat.TaskManager(ctx, t.TaskManagerID)
	if err != nil {
		return nil, err
	}
	sys, err := cat.System(ctx, m.SystemID)
	if err != nil {
		return nil, err
	}
	cadence, err := cat.Cadence(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	start, _ := period.Range(cadence, t.CreatedAt)
	last := t.LastDate(now)
	return &taskView{
		task:        t,
		manager:     m,
		system:      sys,
		periodStart: start,
		lastDate:    last,
		until:       last.AddDate(0, 0, 1),
	}, nil
}
