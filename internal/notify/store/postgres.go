package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/lib/pq"

	"bulwark/internal/notify/models"
	"bulwark/internal/platform/database"
	"bulwark/pkg/platform/sentinel"
	"bulwark/pkg/platform/tx"
)

// PostgresStore keeps the outbox in notify_outbox. Append joins a
// transaction carried by ctx so a push commits together with the change
// that triggered it.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, m *models.Message) error {
	_, err := tx.Use(ctx, s.db).ExecContext(ctx, `
		INSERT INTO notify_outbox (id, event, content, recipients, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, m.ID, string(m.Kind), m.Content, pq.Array(m.Recipients), m.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert outbox message: %w", err)
	}
	return nil
}

func (s *PostgresStore) Pending(ctx context.Context, limit, maxAttempts int) ([]*models.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	if maxAttempts <= 0 {
		maxAttempts = math.MaxInt32
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event, content, recipients, created_at, attempts, last_error
		FROM notify_outbox
		WHERE sent_at IS NULL AND attempts < $2
		ORDER BY created_at, id
		LIMIT $1
	`, limit, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("query pending messages: %w", err)
	}
	defer rows.Close()

	var out []*models.Message
	for rows.Next() {
		var (
			m    models.Message
			kind string
		)
		if err := rows.Scan(&m.ID, &kind, &m.Content, pq.Array(&m.Recipients), &m.CreatedAt, &m.Attempts, &m.LastError); err != nil {
			return nil, fmt.Errorf("scan outbox message: %w", err)
		}
		m.Kind = models.Kind(kind)
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox messages: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) MarkSent(ctx context.Context, id string, at time.Time) error {
	return s.update(ctx, `
		UPDATE notify_outbox SET sent_at = $2, attempts = attempts + 1, last_error = ''
		WHERE id = $1
	`, id, at)
}

func (s *PostgresStore) MarkFailed(ctx context.Context, id string, reason string) error {
	return s.update(ctx, `
		UPDATE notify_outbox SET attempts = attempts + 1, last_error = $2
		WHERE id = $1
	`, id, reason)
}

func (s *PostgresStore) update(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update outbox message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update outbox message: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
