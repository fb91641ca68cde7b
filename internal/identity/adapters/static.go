package adapters

import (
	"context"
	"sync"

	"bulwark/internal/identity/models"
)

// StaticResolver serves profiles from memory. Used for local runs without a
// directory and as a test double.
type StaticResolver struct {
	mu       sync.RWMutex
	byID     map[string]models.Profile
	byEmail  map[string]models.Profile
	resigned map[string]bool
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		byID:     make(map[string]models.Profile),
		byEmail:  make(map[string]models.Profile),
		resigned: make(map[string]bool),
	}
}

// Add registers a profile under its account id, its email and its email prefix.
func (r *StaticResolver) Add(p models.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.AccountID] = p
	if p.Email != "" {
		r.byEmail[p.Email] = p
		r.byEmail[p.EmailPrefix()] = p
	}
}

func (r *StaticResolver) Resign(accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resigned[accountID] = true
}

func (r *StaticResolver) ByAccountIDs(_ context.Context, ids []string) (map[string]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]models.Profile)
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *StaticResolver) ByEmails(_ context.Context, emails []string) (map[string]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]models.Profile)
	for _, e := range emails {
		if p, ok := r.byEmail[e]; ok {
			out[e] = p
		}
	}
	return out, nil
}

// IsEmployed treats unknown accounts as not employed.
func (r *StaticResolver) IsEmployed(_ context.Context, accountID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, known := r.byID[accountID]
	return known && !r.resigned[accountID], nil
}
