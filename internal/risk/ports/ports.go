package ports

import (
	"context"
	"time"

	catalog "bulwark/internal/catalog/models"
)

// Domain is one asset domain of an audit system as the rule handlers see
// it. User lists are account ids; implementations remember how each id was
// derived so UpdateRiskTag can write back to the stored tags.
type Domain interface {
	Kind() catalog.Domain
	AllUsers(ctx context.Context) ([]string, error)
	AdminUsers(ctx context.Context) ([]string, error)
	UpdateRiskTag(ctx context.Context, accountIDs []string, validated bool) error
}

// DomainSet builds the application, OS and database domains of a system
// for one snapshot day. Each call returns fresh instances.
type DomainSet interface {
	For(systemID string, day time.Time) []Domain
}
