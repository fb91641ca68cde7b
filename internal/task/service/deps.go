package service

import (
	"context"
	"time"

	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/period"
	review "bulwark/internal/review/models"
	"bulwark/internal/task/models"
)

// Store persists tasks. UpdateStatus is a compare-and-set on the status.
type Store interface {
	Create(ctx context.Context, t *models.Task) error
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindByManagerPeriod(ctx context.Context, managerID, period string) (*models.Task, error)
	ListByPeriod(ctx context.Context, period, excludeID string) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, id string, from, to models.Status, startTime, finishedTime *time.Time) error
}

// Catalog resolves a task's manager, system and cadence.
type Catalog interface {
	TaskManager(ctx context.Context, id string) (*catalog.TaskManager, error)
	OnlineTaskManagers(ctx context.Context) ([]*catalog.TaskManager, error)
	System(ctx context.Context, id string) (*catalog.AuditSystem, error)
	Cadence(ctx context.Context, managerID string) (period.Cadence, error)
}

// CommentStore answers review progress and clears a task on recovery.
type CommentStore interface {
	ReviewStatus(ctx context.Context, taskID, ticketDept, period string) (review.ReviewStatus, error)
	PurgeTask(ctx context.Context, taskID string) (int, error)
}

// BoardStore clears a task's message board on recovery.
type BoardStore interface {
	PurgeTask(ctx context.Context, taskID string) (int, error)
}

// Notifier queues push messages.
type Notifier interface {
	Enqueue(ctx context.Context, kind notifymodels.Kind, content string, recipients []string) error
	EnqueueOnce(ctx context.Context, key string, ttl time.Duration, kind notifymodels.Kind, content string, recipients []string) (bool, error)
}

// ProfileLookup names the audit users in the pause tip.
type ProfileLookup interface {
	Profiles(ctx context.Context, tags []string) map[string]identity.Profile
}

// StoreTx runs a unit of work atomically.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
