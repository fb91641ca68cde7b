package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"bulwark/internal/platform/database"
	"bulwark/internal/task/models"
	"bulwark/pkg/platform/sentinel"
	"bulwark/pkg/platform/tx"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const taskColumns = `id, task_manager_id, period, status, created_at, start_time, finished_time`

func (s *PostgresStore) Create(ctx context.Context, t *models.Task) error {
	query := `INSERT INTO audit_tasks (` + taskColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := tx.Use(ctx, s.db).ExecContext(ctx, query,
		t.ID, t.TaskManagerID, t.Period, string(t.Status), t.CreatedAt, t.StartTime, t.FinishedTime)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM audit_tasks WHERE id = $1`
	t, err := scanTask(tx.Use(ctx, s.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) FindByManagerPeriod(ctx context.Context, managerID, period string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM audit_tasks WHERE task_manager_id = $1 AND period = $2`
	t, err := scanTask(s.db.QueryRowContext(ctx, query, managerID, period))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find task by period: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) ListUnfinished(ctx context.Context, managerIDs []string) ([]*models.Task, error) {
	query := `
		SELECT ` + taskColumns + ` FROM audit_tasks
		WHERE status <> $1 AND (cardinality($2::text[]) = 0 OR task_manager_id = ANY($2))
		ORDER BY created_at, id
	`
	return s.list(ctx, query, string(models.StatusFinished), pq.Array(managerIDs))
}

func (s *PostgresStore) ListByPeriod(ctx context.Context, period, excludeID string) ([]*models.Task, error) {
	query := `
		SELECT ` + taskColumns + ` FROM audit_tasks
		WHERE period = $1 AND id <> $2
		ORDER BY created_at, id
	`
	return s.list(ctx, query, period, excludeID)
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var out []*models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateStatus is a compare-and-set on the status column.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, from, to models.Status, startTime, finishedTime *time.Time) error {
	query := `
		UPDATE audit_tasks SET
			status = $3,
			start_time = COALESCE($4, start_time),
			finished_time = COALESCE($5, finished_time)
		WHERE id = $1 AND status = $2
	`
	res, err := tx.Use(ctx, s.db).ExecContext(ctx, query, id, string(from), string(to), startTime, finishedTime)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if n == 0 {
		if _, err := s.FindByID(ctx, id); err != nil {
			return err
		}
		return sentinel.ErrConflict
	}
	return nil
}

type row interface {
	Scan(dest ...any) error
}

func scanTask(r row) (*models.Task, error) {
	var t models.Task
	var status string
	var start, finished sql.NullTime
	if err := r.Scan(&t.ID, &t.TaskManagerID, &t.Period, &status, &t.CreatedAt, &start, &finished); err != nil {
		return nil, err
	}
	t.Status = models.Status(status)
	if start.Valid {
		t.StartTime = &start.Time
	}
	if finished.Valid {
		t.FinishedTime = &finished.Time
	}
	return &t, nil
}
