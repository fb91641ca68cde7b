// Package store persists the audit catalog.
package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"bulwark/internal/catalog/models"
	"bulwark/pkg/platform/sentinel"
)

// InMemory is a catalog store for tests and local runs.
type InMemory struct {
	mu         sync.RWMutex
	systems    map[string]*models.AuditSystem
	servers    []*models.Server
	dbNodes    map[string][]string
	projects   []*models.Project
	patterns   map[string]*models.RegexPattern
	atoms      map[string]*models.RuleAtom
	groups     map[string]*models.RuleGroup
	managers   map[string]*models.TaskManager
	managerIDs []string
}

func NewInMemory() *InMemory {
	return &InMemory{
		systems:  make(map[string]*models.AuditSystem),
		dbNodes:  make(map[string][]string),
		patterns: make(map[string]*models.RegexPattern),
		atoms:    make(map[string]*models.RuleAtom),
		groups:   make(map[string]*models.RuleGroup),
		managers: make(map[string]*models.TaskManager),
	}
}

func (s *InMemory) PutSystem(sys *models.AuditSystem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sys
	s.systems[sys.ID] = &cp
}

func (s *InMemory) PutServer(srv *models.Server) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *srv
	s.servers = append(s.servers, &cp)
}

func (s *InMemory) PutDBNode(serverName, node string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dbNodes[serverName] = append(s.dbNodes[serverName], node)
}

func (s *InMemory) PutProject(p *models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.projects = append(s.projects, &cp)
}

func (s *InMemory) PutPattern(p *models.RegexPattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.patterns[p.ID] = &cp
}

func (s *InMemory) PutAtom(a *models.RuleAtom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.atoms[a.ID] = &cp
}

func (s *InMemory) PutGroup(g *models.RuleGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *g
	s.groups[g.ID] = &cp
}

func (s *InMemory) PutTaskManager(m *models.TaskManager) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.managers[m.ID]; !ok {
		s.managerIDs = append(s.managerIDs, m.ID)
	}
	cp := *m
	s.managers[m.ID] = &cp
}

func (s *InMemory) System(_ context.Context, id string) (*models.AuditSystem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sys, ok := s.systems[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *sys
	return &cp, nil
}

func (s *InMemory) Systems(_ context.Context) ([]*models.AuditSystem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AuditSystem, 0, len(s.systems))
	for _, sys := range s.systems {
		cp := *sys
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemory) Servers(_ context.Context, systemID string, kinds ...models.Domain) ([]*models.Server, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Server
	for _, srv := range s.servers {
		if srv.SystemID != systemID {
			continue
		}
		if len(kinds) > 0 && !slices.Contains(kinds, srv.Kind) {
			continue
		}
		cp := *srv
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemory) DBNodes(_ context.Context, serverNames []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, name := range serverNames {
		out = append(out, s.dbNodes[name]...)
	}
	return out, nil
}

func (s *InMemory) AppKeys(_ context.Context, systemConfigID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, p := range s.projects {
		if p.SystemConfigID == systemConfigID && !slices.Contains(out, p.AppKey) {
			out = append(out, p.AppKey)
		}
	}
	return out, nil
}

func (s *InMemory) TaskManager(_ context.Context, id string) (*models.TaskManager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.managers[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

// TaskManagers lists managers in insertion order, filtered by status unless empty.
func (s *InMemory) TaskManagers(_ context.Context, status models.Status) ([]*models.TaskManager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TaskManager
	for _, id := range s.managerIDs {
		m := s.managers[id]
		if status != "" && m.Status != status {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemory) TaskManagersBySystem(_ context.Context, systemID string) ([]*models.TaskManager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TaskManager
	for _, id := range s.managerIDs {
		m := s.managers[id]
		if m.SystemID == systemID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemory) RuleGroup(_ context.Context, id string) (*models.RuleGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *InMemory) RuleAtoms(_ context.Context, ids []string) ([]*models.RuleAtom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.RuleAtom
	for _, id := range ids {
		if a, ok := s.atoms[id]; ok {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemory) Patterns(_ context.Context, ids []string) ([]*models.RegexPattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.RegexPattern
	for _, id := range ids {
		if p, ok := s.patterns[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
