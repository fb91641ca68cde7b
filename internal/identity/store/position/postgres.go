package position

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bulwark/internal/identity/models"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, c *models.PositionChange) error {
	query := `
		INSERT INTO position_changes (id, employee_id, account_id, name, title_before, title_after,
			department_before, department_after, modified_at, action)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query, c.ID, c.EmployeeID, c.AccountID, c.Name, c.TitleBefore, c.TitleAfter,
		c.DepartmentBefore, c.DepartmentAfter, c.ModifiedAt, string(c.Action))
	if err != nil {
		return fmt.Errorf("save position change: %w", err)
	}
	return nil
}

func (s *PostgresStore) AccountIDsBetween(ctx context.Context, start, end time.Time) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT account_id FROM position_changes
		WHERE modified_at >= $1 AND modified_at < $2`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list transferred accounts: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan account id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ChangesFor(ctx context.Context, accountID string, after, until time.Time) ([]*models.PositionChange, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, account_id, name, title_before, title_after,
			department_before, department_after, modified_at, action
		FROM position_changes
		WHERE account_id = $1 AND modified_at > $2 AND modified_at <= $3
		ORDER BY modified_at`, accountID, after, until)
	if err != nil {
		return nil, fmt.Errorf("list position changes: %w", err)
	}
	defer rows.Close()
	var out []*models.PositionChange
	for rows.Next() {
		var c models.PositionChange
		var action string
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.AccountID, &c.Name, &c.TitleBefore, &c.TitleAfter,
			&c.DepartmentBefore, &c.DepartmentAfter, &c.ModifiedAt, &action); err != nil {
			return nil, fmt.Errorf("scan position change: %w", err)
		}
		c.Action = models.TransferAction(action)
		out = append(out, &c)
	}
	return out, rows.Err()
}
