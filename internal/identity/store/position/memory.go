// Package position persists HR position changes.
package position

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"bulwark/internal/identity/models"
)

type InMemory struct {
	mu      sync.RWMutex
	changes []*models.PositionChange
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Save(_ context.Context, c *models.PositionChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.changes = append(s.changes, &cp)
	return nil
}

// AccountIDsBetween returns the distinct accounts with a change in [start, end).
func (s *InMemory) AccountIDsBetween(_ context.Context, start, end time.Time) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, c := range s.changes {
		if c.ModifiedAt.Before(start) || !c.ModifiedAt.Before(end) {
			continue
		}
		if !slices.Contains(out, c.AccountID) {
			out = append(out, c.AccountID)
		}
	}
	return out, nil
}

// ChangesFor returns an account's changes in (after, until], oldest first.
func (s *InMemory) ChangesFor(_ context.Context, accountID string, after, until time.Time) ([]*models.PositionChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PositionChange
	for _, c := range s.changes {
		if c.AccountID != accountID || !c.ModifiedAt.After(after) || c.ModifiedAt.After(until) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ModifiedAt.Before(out[j].ModifiedAt) })
	return out, nil
}
