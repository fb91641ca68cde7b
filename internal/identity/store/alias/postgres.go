package alias

import (
	"context"
	"database/sql"
	"fmt"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/identity/models"
	"bulwark/pkg/platform/sentinel"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, a *models.Alias) error {
	query := `
		INSERT INTO non_normal_users (id, name, system_id, domain, account_id, email, user_name, dept, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			system_id = EXCLUDED.system_id,
			domain = EXCLUDED.domain,
			account_id = EXCLUDED.account_id,
			email = EXCLUDED.email,
			user_name = EXCLUDED.user_name,
			dept = EXCLUDED.dept,
			deleted = EXCLUDED.deleted
	`
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Name, a.SystemID, string(a.Domain), a.AccountID, a.Email, a.UserName, a.Dept, a.Deleted)
	if err != nil {
		return fmt.Errorf("save alias: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE non_normal_users SET deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alias: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete alias: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListBySystem(ctx context.Context, systemID string, domain catalog.Domain) ([]*models.Alias, error) {
	query := `
		SELECT id, name, system_id, domain, account_id, email, user_name, dept, deleted
		FROM non_normal_users
		WHERE system_id = $1 AND ($2 = '' OR domain = $2) AND NOT deleted
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, systemID, string(domain))
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	defer rows.Close()

	var out []*models.Alias
	for rows.Next() {
		var a models.Alias
		var d string
		if err := rows.Scan(&a.ID, &a.Name, &a.SystemID, &d, &a.AccountID, &a.Email, &a.UserName, &a.Dept, &a.Deleted); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		a.Domain = catalog.Domain(d)
		out = append(out, &a)
	}
	return out, rows.Err()
}
