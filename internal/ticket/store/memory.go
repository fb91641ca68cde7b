package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bulwark/internal/ticket/models"
)

// InMemory keeps the three ticket collections behind one mutex.
type InMemory struct {
	mu       sync.RWMutex
	deploys  map[string]*models.DeployRecord
	tickets  map[string]*models.OnlineTicket
	closures []*models.Closure
}

func NewInMemory() *InMemory {
	return &InMemory{
		deploys: make(map[string]*models.DeployRecord),
		tickets: make(map[string]*models.OnlineTicket),
	}
}

func (s *InMemory) PutDeploy(d *models.DeployRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *d
	s.deploys[d.SourceID] = &cp
}

func (s *InMemory) PutTicket(t *models.OnlineTicket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.tickets[t.TicketID] = &cp
}

func (s *InMemory) PutClosure(c *models.Closure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.closures = append(s.closures, &cp)
}

func (s *InMemory) Depts(_ context.Context, from, to time.Time) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, d := range s.deploys {
		if d.DeployTime.Before(from) || !d.DeployTime.Before(to) {
			continue
		}
		if _, ok := seen[d.Dept]; ok {
			continue
		}
		seen[d.Dept] = struct{}{}
		out = append(out, d.Dept)
	}
	sort.Strings(out)
	return out, nil
}

func (s *InMemory) Deploys(_ context.Context, q DeployQuery) ([]*models.DeployRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.DeployRecord
	for _, d := range s.deploys {
		if q.matches(d) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sortDeploys(out)
	return out, nil
}

func (s *InMemory) DeploysByCommit(_ context.Context, commitIDs []string) ([]*models.DeployRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.DeployRecord
	for _, d := range s.deploys {
		if contains(commitIDs, d.CommitID) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sortDeploys(out)
	return out, nil
}

// TicketsMatching returns tickets whose commit id field contains prefix,
// oldest submission first. Callers still apply the prefix-of check.
func (s *InMemory) TicketsMatching(_ context.Context, prefix string) ([]*models.OnlineTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.OnlineTicket
	for _, t := range s.tickets {
		if strings.Contains(t.CommitID, prefix) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sortTickets(out)
	return out, nil
}

func (s *InMemory) TicketsByIDs(_ context.Context, ids, statuses []string) ([]*models.OnlineTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.OnlineTicket
	for _, id := range ids {
		t, ok := s.tickets[id]
		if !ok || (len(statuses) > 0 && !contains(statuses, t.Status)) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sortTickets(out)
	return out, nil
}

// ClosureCovering returns the earliest-starting closure covering at for one
// of the projects, nil when none does.
func (s *InMemory) ClosureCovering(_ context.Context, projects []string, at time.Time) (*models.Closure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *models.Closure
	for _, c := range s.closures {
		if !c.Covers(projects, at) {
			continue
		}
		if best == nil || c.Start.Before(best.Start) {
			best = c
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (s *InMemory) UpdateVerdict(_ context.Context, commitIDs []string, v models.Verdict) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, d := range s.deploys {
		if !contains(commitIDs, d.CommitID) {
			continue
		}
		risk := v.Risk
		d.Risk = &risk
		d.RiskReason = v.RiskReason
		d.TicketID = v.TicketID
		d.WosURL = v.WosURL
		n++
	}
	return n, nil
}

func sortDeploys(ds []*models.DeployRecord) {
	sort.Slice(ds, func(i, j int) bool {
		if !ds[i].DeployTime.Equal(ds[j].DeployTime) {
			return ds[i].DeployTime.Before(ds[j].DeployTime)
		}
		return ds[i].SourceID < ds[j].SourceID
	})
}

func sortTickets(ts []*models.OnlineTicket) {
	sort.Slice(ts, func(i, j int) bool {
		if !ts[i].SubmittedAt.Equal(ts[j].SubmittedAt) {
			return ts[i].SubmittedAt.Before(ts[j].SubmittedAt)
		}
		return ts[i].TicketID < ts[j].TicketID
	})
}
