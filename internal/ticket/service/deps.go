package service

import (
	"context"
	"time"

	"bulwark/internal/ticket/models"
	"bulwark/internal/ticket/store"
)

// Store is the ticket persistence the verifier needs.
type Store interface {
	Depts(ctx context.Context, from, to time.Time) ([]string, error)
	Deploys(ctx context.Context, q store.DeployQuery) ([]*models.DeployRecord, error)
	DeploysByCommit(ctx context.Context, commitIDs []string) ([]*models.DeployRecord, error)
	TicketsMatching(ctx context.Context, prefix string) ([]*models.OnlineTicket, error)
	ClosureCovering(ctx context.Context, projects []string, at time.Time) (*models.Closure, error)
	UpdateVerdict(ctx context.Context, commitIDs []string, v models.Verdict) (int, error)
}
