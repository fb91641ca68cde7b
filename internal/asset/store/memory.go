package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"bulwark/internal/asset/models"
	"bulwark/pkg/platform/sentinel"
)

// InMemory keeps snapshots and logs in process. Used by tests and local runs.
type InMemory struct {
	mu       sync.RWMutex
	appRoles []*models.AppRole
	osUsers  []*models.OSAccount
	dbRoles  []*models.DBRole
	access   []*models.AccessLog
	commands []*models.CommandLog
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) SaveAppRole(_ context.Context, r *models.AppRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.appRoles = append(s.appRoles, &cp)
	return nil
}

func (s *InMemory) SaveOSAccount(_ context.Context, a *models.OSAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.osUsers = append(s.osUsers, &cp)
	return nil
}

func (s *InMemory) SaveDBRole(_ context.Context, r *models.DBRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	cp.ID = int64(len(s.dbRoles) + 1)
	s.dbRoles = append(s.dbRoles, &cp)
	return nil
}

func (s *InMemory) SaveAccessLog(_ context.Context, l *models.AccessLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.access = append(s.access, &cp)
	return nil
}

func (s *InMemory) SaveCommandLog(_ context.Context, l *models.CommandLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.commands = append(s.commands, &cp)
	return nil
}

func (s *InMemory) AppRoles(_ context.Context, q SnapshotQuery) ([]*models.AppRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.AppRole
	for _, r := range s.appRoles {
		if s.matchApp(q, r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemory) matchApp(q SnapshotQuery, r *models.AppRole) bool {
	return sameDay(r.RecordDate, q.Day) && slices.Contains(q.BGNames, r.BGName) &&
		q.matchUser(r.User) && q.matchRole(r.Role)
}

func (s *InMemory) OSAccounts(_ context.Context, q SnapshotQuery) ([]*models.OSAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.OSAccount
	for _, a := range s.osUsers {
		if s.matchOS(q, a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemory) matchOS(q SnapshotQuery, a *models.OSAccount) bool {
	return sameDay(a.RecordDate, q.Day) && slices.Contains(q.Servers, a.ServerName) && q.matchUser(a.User)
}

func (s *InMemory) DBRoles(_ context.Context, q SnapshotQuery) ([]*models.DBRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.DBRole
	for _, r := range s.dbRoles {
		if s.matchDB(q, r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemory) matchDB(q SnapshotQuery, r *models.DBRole) bool {
	return sameDay(r.RecordDate, q.Day) && q.Scope.Contains(r.ServerName, r.DBNode, r.DBName) &&
		q.matchUser(r.User) && q.matchRole(r.Role)
}

// MarkAppRisk applies systemID's verdict to the matched rows.
func (s *InMemory) MarkAppRisk(_ context.Context, q SnapshotQuery, systemID string, risky bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.appRoles {
		if len(q.Users) > 0 && s.matchApp(q, r) {
			r.RiskSystems, r.RiskFlag = models.ApplyRiskVerdict(r.RiskSystems, systemID, risky)
			n++
		}
	}
	return n, nil
}

func (s *InMemory) MarkOSRisk(_ context.Context, q SnapshotQuery, systemID string, risky bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.osUsers {
		if len(q.Users) > 0 && s.matchOS(q, a) {
			a.RiskSystems, a.RiskFlag = models.ApplyRiskVerdict(a.RiskSystems, systemID, risky)
			n++
		}
	}
	return n, nil
}

func (s *InMemory) MarkDBRisk(_ context.Context, q SnapshotQuery, systemID string, risky bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.dbRoles {
		if len(q.Users) > 0 && s.matchDB(q, r) {
			r.RiskSystems, r.RiskFlag = models.ApplyRiskVerdict(r.RiskSystems, systemID, risky)
			n++
		}
	}
	return n, nil
}

// LastAccess returns the user's latest request against any of bgNames.
func (s *InMemory) LastAccess(_ context.Context, user string, bgNames []string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var last time.Time
	for _, l := range s.access {
		if l.User == user && slices.Contains(bgNames, l.BGName) && l.AccessedAt.After(last) {
			last = l.AccessedAt
		}
	}
	if last.IsZero() {
		return time.Time{}, sentinel.ErrNotFound
	}
	return last, nil
}

// AccessLogs returns matching logs, newest first.
func (s *InMemory) AccessLogs(_ context.Context, q AccessQuery) ([]*models.AccessLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.AccessLog
	for _, l := range s.access {
		if q.match(l) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AccessedAt.After(out[j].AccessedAt) })
	return out, nil
}

// CommandLogs returns matching logs, newest first.
func (s *InMemory) CommandLogs(_ context.Context, q CommandQuery) ([]*models.CommandLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.CommandLog
	for _, l := range s.commands {
		if q.match(l) {
			cp := *l
			cp.HitPatterns = slices.Clone(l.HitPatterns)
			cp.HitRuleAtoms = slices.Clone(l.HitRuleAtoms)
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExecutedAt.After(out[j].ExecutedAt) })
	return out, nil
}

// UnscannedCommandLogs returns logs in [start, end) no scan has looked at yet.
func (s *InMemory) UnscannedCommandLogs(_ context.Context, start, end time.Time, limit int) ([]*models.CommandLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.CommandLog
	for _, l := range s.commands {
		if l.Scanned || l.ExecutedAt.Before(start) || !l.ExecutedAt.Before(end) {
			continue
		}
		cp := *l
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// TagCommandLog records the scan result and marks the log scanned.
func (s *InMemory) TagCommandLog(_ context.Context, id string, patternIDs, atomIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.commands {
		if l.ID == id {
			l.HitPatterns = append([]string{}, patternIDs...)
			l.HitRuleAtoms = append([]string{}, atomIDs...)
			l.RiskFlag = len(atomIDs) > 0
			l.Scanned = true
			return nil
		}
	}
	return sentinel.ErrNotFound
}
