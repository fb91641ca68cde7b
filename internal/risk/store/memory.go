// Package store persists risk annotations and job-transfer snapshots.
package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"bulwark/internal/risk/models"
	"bulwark/pkg/platform/sentinel"
)

type annotationKey struct {
	system  string
	account string
	day     string
}

func keyOf(systemID, account string, day time.Time) annotationKey {
	return annotationKey{system: systemID, account: account, day: day.Format(time.DateOnly)}
}

// InMemoryAnnotations merges annotation columns under a mutex, one row per
// (system, account, day).
type InMemoryAnnotations struct {
	mu   sync.Mutex
	rows map[annotationKey]*models.Annotation
	now  func() time.Time
}

func NewInMemoryAnnotations() *InMemoryAnnotations {
	return &InMemoryAnnotations{rows: make(map[annotationKey]*models.Annotation), now: time.Now}
}

// Upsert replaces the set columns of the row, inserting it when missing.
// Empty fields are ignored.
func (s *InMemoryAnnotations) Upsert(_ context.Context, systemID, account string, day time.Time, f models.Fields) error {
	if f.IsEmpty() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := keyOf(systemID, account, day)
	a, ok := s.rows[k]
	if !ok {
		a = &models.Annotation{SystemID: systemID, Account: account, RecordDate: day}
		s.rows[k] = a
	}
	a.Merge(f)
	a.UpdatedAt = s.now()
	return nil
}

// ForAccounts returns the day's annotations keyed by account. An empty
// accounts list returns every annotation of the system.
func (s *InMemoryAnnotations) ForAccounts(_ context.Context, systemID string, day time.Time, accounts []string) (map[string]*models.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := day.Format(time.DateOnly)
	out := make(map[string]*models.Annotation)
	for k, a := range s.rows {
		if k.system != systemID || k.day != d {
			continue
		}
		if len(accounts) > 0 && !slices.Contains(accounts, k.account) {
			continue
		}
		cp := *a
		out[k.account] = &cp
	}
	return out, nil
}

// SystemsWithMatrixRisk lists the systems with a non-empty matrix risk on day.
func (s *InMemoryAnnotations) SystemsWithMatrixRisk(_ context.Context, day time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := day.Format(time.DateOnly)
	var out []string
	for k, a := range s.rows {
		if k.day == d && a.MatrixRisk != "" && !slices.Contains(out, k.system) {
			out = append(out, k.system)
		}
	}
	sort.Strings(out)
	return out, nil
}

// MarkReminded stamps last_remind on the system's matrix-risk rows of day.
func (s *InMemoryAnnotations) MarkReminded(_ context.Context, systemIDs []string, day, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := day.Format(time.DateOnly)
	for k, a := range s.rows {
		if k.day == d && a.MatrixRisk != "" && slices.Contains(systemIDs, k.system) {
			t := at
			a.LastRemind = &t
		}
	}
	return nil
}

// InMemorySnapshots keeps one job-transfer snapshot per task.
type InMemorySnapshots struct {
	mu    sync.RWMutex
	items map[string]*models.JobTransferSnapshot
}

func NewInMemorySnapshots() *InMemorySnapshots {
	return &InMemorySnapshots{items: make(map[string]*models.JobTransferSnapshot)}
}

// Replace overwrites the task's snapshot, keeping its creation time.
func (s *InMemorySnapshots) Replace(_ context.Context, taskID string, accountIDs, emails []string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := now
	if existing, ok := s.items[taskID]; ok {
		created = existing.CreatedAt
	}
	s.items[taskID] = &models.JobTransferSnapshot{
		TaskID:     taskID,
		AccountIDs: slices.Clone(accountIDs),
		Emails:     slices.Clone(emails),
		CreatedAt:  created,
		UpdatedAt:  now,
	}
	return nil
}

func (s *InMemorySnapshots) Get(_ context.Context, taskID string) (*models.JobTransferSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.items[taskID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *snap
	return &cp, nil
}
