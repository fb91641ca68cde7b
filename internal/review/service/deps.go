package service

import (
	"context"
	"time"

	assetmodels "bulwark/internal/asset/models"
	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/period"
	"bulwark/internal/review/models"
	riskmodels "bulwark/internal/risk/models"
	taskmodels "bulwark/internal/task/models"
	ticketmodels "bulwark/internal/ticket/models"
	ticketstore "bulwark/internal/ticket/store"
)

// TaskStore reads review tasks.
type TaskStore interface {
	FindByID(ctx context.Context, id string) (*taskmodels.Task, error)
	ListUnfinished(ctx context.Context, managerIDs []string) ([]*taskmodels.Task, error)
}

// Catalog resolves a task's configuration and asset scope.
type Catalog interface {
	TaskManager(ctx context.Context, id string) (*catalog.TaskManager, error)
	System(ctx context.Context, id string) (*catalog.AuditSystem, error)
	Cadence(ctx context.Context, managerID string) (period.Cadence, error)
	ActiveAtoms(ctx context.Context, managerID string) ([]*catalog.RuleAtom, error)
	AtomNames(ctx context.Context, ids []string) (map[string]string, error)
	AssetNames(ctx context.Context, systemID string, kind catalog.Domain) ([]string, error)
	DBScope(ctx context.Context, systemID string) (catalog.DBScope, error)
	AppKeys(ctx context.Context, sys *catalog.AuditSystem) ([]string, error)
}

// Assets reads account snapshots and operation logs.
type Assets interface {
	AppRoles(ctx context.Context, q assetstore.SnapshotQuery) ([]*assetmodels.AppRole, error)
	OSAccounts(ctx context.Context, q assetstore.SnapshotQuery) ([]*assetmodels.OSAccount, error)
	DBRoles(ctx context.Context, q assetstore.SnapshotQuery) ([]*assetmodels.DBRole, error)
	AccessLogs(ctx context.Context, q assetstore.AccessQuery) ([]*assetmodels.AccessLog, error)
	CommandLogs(ctx context.Context, q assetstore.CommandQuery) ([]*assetmodels.CommandLog, error)
}

// Annotations reads the daily risk findings.
type Annotations interface {
	ForAccounts(ctx context.Context, systemID string, day time.Time, accounts []string) (map[string]*riskmodels.Annotation, error)
}

// Snapshots reads a task's job-transfer snapshot.
type Snapshots interface {
	Get(ctx context.Context, taskID string) (*riskmodels.JobTransferSnapshot, error)
}

// Positions reads HR position changes, oldest first.
type Positions interface {
	ChangesFor(ctx context.Context, accountID string, after, until time.Time) ([]*identity.PositionChange, error)
}

// Identities resolves aliases and directory profiles.
type Identities interface {
	ResolveToCanonical(ctx context.Context, tags []string, systemID string, domain catalog.Domain) (map[string][]string, error)
	Profiles(ctx context.Context, tags []string) map[string]identity.Profile
}

// Tickets reads deploy records and online tickets.
type Tickets interface {
	Deploys(ctx context.Context, q ticketstore.DeployQuery) ([]*ticketmodels.DeployRecord, error)
	TicketsByIDs(ctx context.Context, ids, statuses []string) ([]*ticketmodels.OnlineTicket, error)
}

// CommentStore persists review comments.
type CommentStore interface {
	Add(ctx context.Context, c *models.Comment) error
	HasWhole(ctx context.Context, scope models.Scope, reviewer string) (bool, error)
	SingleContents(ctx context.Context, scope models.Scope, singleIDs []string) (map[string]string, error)
	List(ctx context.Context, scopes ...models.Scope) ([]*models.Comment, error)
}

// BoardStore persists message-board entries.
type BoardStore interface {
	Add(ctx context.Context, e *models.BoardEntry) error
	List(ctx context.Context, scope models.Scope) ([]*models.BoardEntry, error)
}

// StatusChecker recomputes a task's derived status after a whole review.
type StatusChecker interface {
	CheckReviewStatus(ctx context.Context, taskID string) (*taskmodels.Task, error)
}

// Notifier queues push messages.
type Notifier interface {
	Enqueue(ctx context.Context, kind notifymodels.Kind, content string, recipients []string) error
}

// FeedCache stores assembled feeds between requests. A miss returns false.
type FeedCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}
