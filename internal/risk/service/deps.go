package service

import (
	"context"
	"time"

	assetmodels "bulwark/internal/asset/models"
	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	catalogservice "bulwark/internal/catalog/service"
	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/period"
	"bulwark/internal/risk/models"
	taskmodels "bulwark/internal/task/models"
)

// Handler validates one audit system against one rule family.
type Handler interface {
	Name() string
	Validate(ctx context.Context, systemID string) error
}

// AnnotationStore persists per-account risk reasons.
type AnnotationStore interface {
	Upsert(ctx context.Context, systemID, account string, day time.Time, f models.Fields) error
	SystemsWithMatrixRisk(ctx context.Context, day time.Time) ([]string, error)
	MarkReminded(ctx context.Context, systemIDs []string, day, at time.Time) error
}

// SnapshotStore persists job-transfer snapshots per task.
type SnapshotStore interface {
	Replace(ctx context.Context, taskID string, accountIDs, emails []string, now time.Time) error
}

// Catalog answers the rule and asset questions the handlers ask.
type Catalog interface {
	System(ctx context.Context, id string) (*catalog.AuditSystem, error)
	Systems(ctx context.Context) ([]*catalog.AuditSystem, error)
	TaskManagersBySystem(ctx context.Context, systemID string) ([]*catalog.TaskManager, error)
	Cadence(ctx context.Context, managerID string) (period.Cadence, error)
	SystemHasRule(ctx context.Context, systemID string, ruleType catalog.RuleType) (bool, error)
	SystemRegexAtoms(ctx context.Context, systemID string) ([]catalogservice.RegexAtom, error)
	AssetNames(ctx context.Context, systemID string, kind catalog.Domain) ([]string, error)
	DBScope(ctx context.Context, systemID string) (catalog.DBScope, error)
}

// ActivityStore reads application snapshots and logs, and flags command logs.
type ActivityStore interface {
	AppRoles(ctx context.Context, q assetstore.SnapshotQuery) ([]*assetmodels.AppRole, error)
	MarkAppRisk(ctx context.Context, q assetstore.SnapshotQuery, systemID string, risky bool) (int, error)
	LastAccess(ctx context.Context, user string, bgNames []string) (time.Time, error)
	UnscannedCommandLogs(ctx context.Context, start, end time.Time, limit int) ([]*assetmodels.CommandLog, error)
	TagCommandLog(ctx context.Context, id string, patternIDs, atomIDs []string) error
}

// EmploymentChecker reports whether an account is still employed.
type EmploymentChecker interface {
	IsEmployed(ctx context.Context, accountID string) (bool, error)
}

// AccountLookup resolves account ids to mail prefixes and system alias names.
type AccountLookup interface {
	EmailPrefixes(ctx context.Context, accountIDs []string) ([]string, error)
	AliasNames(ctx context.Context, systemID string, accountIDs []string) ([]string, error)
}

// TransferLog lists accounts with a position change in a window.
type TransferLog interface {
	AccountIDsBetween(ctx context.Context, start, end time.Time) ([]string, error)
}

// TaskLister lists review tasks that are not finished.
type TaskLister interface {
	ListUnfinished(ctx context.Context, managerIDs []string) ([]*taskmodels.Task, error)
}

// Notifier queues a push message for a list of recipients.
type Notifier interface {
	Enqueue(ctx context.Context, kind notifymodels.Kind, content string, recipients []string) error
}
