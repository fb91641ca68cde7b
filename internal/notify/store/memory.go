package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"bulwark/internal/notify/models"
	"bulwark/pkg/platform/sentinel"
)

// InMemory is an outbox held in process memory.
type InMemory struct {
	mu       sync.RWMutex
	messages map[string]*models.Message
}

func NewInMemory() *InMemory {
	return &InMemory{messages: make(map[string]*models.Message)}
}

func (s *InMemory) Append(_ context.Context, m *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[m.ID]; ok {
		return sentinel.ErrConflict
	}
	cp := *m
	cp.Recipients = slices.Clone(m.Recipients)
	s.messages[m.ID] = &cp
	return nil
}

// Pending returns unsent messages with fewer than maxAttempts failed sends,
// oldest first. maxAttempts <= 0 disables the attempt filter.
func (s *InMemory) Pending(_ context.Context, limit, maxAttempts int) ([]*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Message
	for _, m := range s.messages {
		if !m.IsSent() && (maxAttempts <= 0 || m.Attempts < maxAttempts) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemory) MarkSent(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	t := at
	m.SentAt = &t
	m.Attempts++
	m.LastError = ""
	return nil
}

func (s *InMemory) MarkFailed(_ context.Context, id string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	m.Attempts++
	m.LastError = reason
	return nil
}

// All returns every message, oldest first.
func (s *InMemory) All() []*models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
