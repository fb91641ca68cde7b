// Package store persists audit tasks.
package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"bulwark/internal/task/models"
	"bulwark/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded task store for tests and local runs.
type InMemory struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
}

func NewInMemory() *InMemory {
	return &InMemory{tasks: make(map[string]*models.Task)}
}

func clone(t *models.Task) *models.Task {
	cp := *t
	return &cp
}

// Create inserts a task; a second task for the same manager and period
// yields sentinel.ErrConflict.
func (s *InMemory) Create(_ context.Context, t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.tasks {
		if existing.TaskManagerID == t.TaskManagerID && existing.Period == t.Period {
			return sentinel.ErrConflict
		}
	}
	s.tasks[t.ID] = clone(t)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(t), nil
}

func (s *InMemory) FindByManagerPeriod(_ context.Context, managerID, period string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.TaskManagerID == managerID && t.Period == period {
			return clone(t), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// ListUnfinished returns tasks not FINISHED. An empty managerIDs lists every manager.
func (s *InMemory) ListUnfinished(_ context.Context, managerIDs []string) ([]*models.Task, error) {
	return s.list(func(t *models.Task) bool {
		return !t.IsFinished() && (len(managerIDs) == 0 || slices.Contains(managerIDs, t.TaskManagerID))
	}), nil
}

// ListByPeriod returns the tasks of a period other than excludeID.
func (s *InMemory) ListByPeriod(_ context.Context, period, excludeID string) ([]*models.Task, error) {
	return s.list(func(t *models.Task) bool {
		return t.Period == period && t.ID != excludeID
	}), nil
}

func (s *InMemory) list(keep func(*models.Task) bool) []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Task
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, clone(t))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// UpdateStatus moves a task from one status to another. It fails with
// sentinel.ErrConflict when the stored status is no longer from. Non-nil
// timestamps are written alongside.
func (s *InMemory) UpdateStatus(_ context.Context, id string, from, to models.Status, startTime, finishedTime *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if t.Status != from {
		return sentinel.ErrConflict
	}
	t.Status = to
	if startTime != nil {
		st := *startTime
		t.StartTime = &st
	}
	if finishedTime != nil {
		ft := *finishedTime
		t.FinishedTime = &ft
	}
	return nil
}
