package ports

import (
	"context"

	"bulwark/internal/identity/models"
)

// Resolver looks people up in the corporate directory. Unknown keys produce
// no entry rather than an error.
type Resolver interface {
	ByAccountIDs(ctx context.Context, ids []string) (map[string]models.Profile, error)
	ByEmails(ctx context.Context, emails []string) (map[string]models.Profile, error)
	IsEmployed(ctx context.Context, accountID string) (bool, error)
}
