package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"bulwark/internal/risk/models"
	"bulwark/pkg/platform/sentinel"
)

// PostgresAnnotations stores annotations in risk_annotations. The upsert
// keeps columns the caller did not set.
type PostgresAnnotations struct {
	db *sql.DB
}

func NewPostgresAnnotations(db *sql.DB) *PostgresAnnotations {
	return &PostgresAnnotations{db: db}
}

func (s *PostgresAnnotations) Upsert(ctx context.Context, systemID, account string, day time.Time, f models.Fields) error {
	if f.IsEmpty() {
		return nil
	}
	query := `
		INSERT INTO risk_annotations (system_id, account, record_date, matrix_risk, staff_risk, no_use_risk, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (system_id, account, record_date) DO UPDATE SET
			matrix_risk = COALESCE(EXCLUDED.matrix_risk, risk_annotations.matrix_risk),
			staff_risk = COALESCE(EXCLUDED.staff_risk, risk_annotations.staff_risk),
			no_use_risk = COALESCE(EXCLUDED.no_use_risk, risk_annotations.no_use_risk),
			updated_at = NOW()
	`
	_, err := s.db.ExecContext(ctx, query, systemID, account, day,
		nullString(f.MatrixRisk), nullString(f.StaffRisk), nullString(f.NoUseRisk))
	if err != nil {
		return fmt.Errorf("upsert risk annotation: %w", err)
	}
	return nil
}

func (s *PostgresAnnotations) ForAccounts(ctx context.Context, systemID string, day time.Time, accounts []string) (map[string]*models.Annotation, error) {
	query := `
		SELECT system_id, account, record_date, COALESCE(matrix_risk, ''), COALESCE(staff_risk, ''),
			COALESCE(no_use_risk, ''), last_remind, updated_at
		FROM risk_annotations
		WHERE system_id = $1 AND record_date = $2
			AND (cardinality($3::text[]) = 0 OR account = ANY($3))
	`
	rows, err := s.db.QueryContext(ctx, query, systemID, day, pq.Array(accounts))
	if err != nil {
		return nil, fmt.Errorf("list risk annotations: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*models.Annotation)
	for rows.Next() {
		var a models.Annotation
		var remind sql.NullTime
		if err := rows.Scan(&a.SystemID, &a.Account, &a.RecordDate, &a.MatrixRisk, &a.StaffRisk,
			&a.NoUseRisk, &remind, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan risk annotation: %w", err)
		}
		if remind.Valid {
			a.LastRemind = &remind.Time
		}
		out[a.Account] = &a
	}
	return out, rows.Err()
}

func (s *PostgresAnnotations) SystemsWithMatrixRisk(ctx context.Context, day time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT system_id FROM risk_annotations
		WHERE record_date = $1 AND COALESCE(matrix_risk, '') <> ''
		ORDER BY system_id
	`
	rows, err := s.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("list risky systems: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan risky system: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *PostgresAnnotations) MarkReminded(ctx context.Context, systemIDs []string, day, at time.Time) error {
	if len(systemIDs) == 0 {
		return nil
	}
	query := `
		UPDATE risk_annotations SET last_remind = $3
		WHERE system_id = ANY($1) AND record_date = $2 AND COALESCE(matrix_risk, '') <> ''
	`
	if _, err := s.db.ExecContext(ctx, query, pq.Array(systemIDs), day, at); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}
	return nil
}

type PostgresSnapshots struct {
	db *sql.DB
}

func NewPostgresSnapshots(db *sql.DB) *PostgresSnapshots {
	return &PostgresSnapshots{db: db}
}

func (s *PostgresSnapshots) Replace(ctx context.Context, taskID string, accountIDs, emails []string, now time.Time) error {
	query := `
		INSERT INTO job_transfer_snapshots (task_id, account_ids, emails, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (task_id) DO UPDATE SET
			account_ids = EXCLUDED.account_ids,
			emails = EXCLUDED.emails,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, taskID, pq.Array(accountIDs), pq.Array(emails), now); err != nil {
		return fmt.Errorf("replace job transfer snapshot: %w", err)
	}
	return nil
}

func (s *PostgresSnapshots) Get(ctx context.Context, taskID string) (*models.JobTransferSnapshot, error) {
	query := `
		SELECT task_id, account_ids, emails, created_at, updated_at
		FROM job_transfer_snapshots WHERE task_id = $1
	`
	var snap models.JobTransferSnapshot
	err := s.db.QueryRowContext(ctx, query, taskID).Scan(&snap.TaskID, pq.Array(&snap.AccountIDs),
		pq.Array(&snap.Emails), &snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find job transfer snapshot: %w", err)
	}
	return &snap, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
