// Package alias persists non-standard account names and the people they map to.
package alias

import (
	"context"
	"sync"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/identity/models"
	"bulwark/pkg/platform/sentinel"
)

type InMemory struct {
	mu      sync.RWMutex
	aliases map[string]*models.Alias
	order   []string
}

func NewInMemory() *InMemory {
	return &InMemory{aliases: make(map[string]*models.Alias)}
}

func (s *InMemory) Save(_ context.Context, a *models.Alias) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.aliases[a.ID]; !ok {
		s.order = append(s.order, a.ID)
	}
	cp := *a
	s.aliases[a.ID] = &cp
	return nil
}

// Delete soft-deletes an alias.
func (s *InMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.aliases[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	a.Deleted = true
	return nil
}

// ListBySystem returns live aliases of a system. An empty domain matches every domain.
func (s *InMemory) ListBySystem(_ context.Context, systemID string, domain catalog.Domain) ([]*models.Alias, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Alias
	for _, id := range s.order {
		a := s.aliases[id]
		if a.Deleted || a.SystemID != systemID {
			continue
		}
		if domain != "" && a.Domain != domain {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}
