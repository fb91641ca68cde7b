// Package store persists review comments and message-board entries.
package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/review/models"
	"bulwark/pkg/platform/sentinel"
)

// InMemoryComments keeps comments in insertion order.
type InMemoryComments struct {
	mu       sync.RWMutex
	comments []*models.Comment
}

func NewInMemoryComments() *InMemoryComments {
	return &InMemoryComments{}
}

func (s *InMemoryComments) Add(_ context.Context, c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.comments {
		if existing.ID == c.ID {
			return sentinel.ErrConflict
		}
	}
	cp := *c
	s.comments = append(s.comments, &cp)
	return nil
}

// ReviewStatus reports which whole review types carry a whole comment,
// either on the task or on the ticket department for the period. A system
// without a ticket department matches on the task only.
func (s *InMemoryComments) ReviewStatus(_ context.Context, taskID, ticketDept, period string) (models.ReviewStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := make(models.ReviewStatus, len(catalog.WholeReviewTypes))
	for _, rt := range catalog.WholeReviewTypes {
		status[rt] = false
	}
	for _, c := range s.comments {
		if c.Legacy || !c.IsWhole() || !slices.Contains(catalog.WholeReviewTypes, c.ReviewType) {
			continue
		}
		if (taskID != "" && c.TaskID == taskID) || (ticketDept != "" && c.Dept == ticketDept && c.Period == period && period != "") {
			status[c.ReviewType] = true
		}
	}
	return status, nil
}

// HasWhole reports whether reviewer left a whole comment under scope.
func (s *InMemoryComments) HasWhole(_ context.Context, scope models.Scope, reviewer string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.comments {
		if !c.Legacy && c.IsWhole() && c.Reviewer == reviewer && scope.Matches(c) {
			return true, nil
		}
	}
	return false, nil
}

// SingleContents maps single ids to their comment content. Later comments
// win.
func (s *InMemoryComments) SingleContents(_ context.Context, scope models.Scope, singleIDs []string) (map[string]string, error) {
	out := make(map[string]string)
	if len(singleIDs) == 0 {
		return out, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.comments {
		if c.Legacy || c.IsWhole() || !scope.Matches(c) || !slices.Contains(singleIDs, c.SingleID) {
			continue
		}
		out[c.SingleID] = c.Content
	}
	return out, nil
}

// List returns the comments stored under any of scopes, oldest first.
func (s *InMemoryComments) List(_ context.Context, scopes ...models.Scope) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Comment
	for _, c := range s.comments {
		if c.Legacy {
			continue
		}
		if slices.ContainsFunc(scopes, func(sc models.Scope) bool { return sc.Matches(c) }) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// PurgeTask deletes every comment of the task, legacy ones included.
func (s *InMemoryComments) PurgeTask(_ context.Context, taskID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.comments)
	s.comments = slices.DeleteFunc(s.comments, func(c *models.Comment) bool {
		return c.TaskID == taskID
	})
	return before - len(s.comments), nil
}

// InMemoryBoard keeps message-board entries in insertion order.
type InMemoryBoard struct {
	mu      sync.RWMutex
	entries []*models.BoardEntry
}

func NewInMemoryBoard() *InMemoryBoard {
	return &InMemoryBoard{}
}

func (s *InMemoryBoard) Add(_ context.Context, e *models.BoardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	s.entries = append(s.entries, &cp)
	return nil
}

func (s *InMemoryBoard) List(_ context.Context, scope models.Scope) ([]*models.BoardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.BoardEntry
	for _, e := range s.entries {
		if e.ReviewType != scope.ReviewType {
			continue
		}
		if scope.TaskID != "" && e.TaskID != scope.TaskID {
			continue
		}
		if scope.TaskID == "" && (e.Dept != scope.Dept || e.Period != scope.Period) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemoryBoard) PurgeTask(_ context.Context, taskID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(e *models.BoardEntry) bool {
		return e.TaskID == taskID
	})
	return before - len(s.entries), nil
}
