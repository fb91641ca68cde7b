package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/platform/database"
	"bulwark/internal/review/models"
	"bulwark/pkg/platform/sentinel"
	"bulwark/pkg/platform/tx"
)

// PostgresComments stores both comment variants in review_comments; legacy
// rows are only ever purged.
type PostgresComments struct {
	db *sql.DB
}

func NewPostgresComments(db *sql.DB) *PostgresComments {
	return &PostgresComments{db: db}
}

const commentColumns = `id, task_id, dept, period, reviewer, review_type, content, single_id, single_desc, created_at`

func (s *PostgresComments) Add(ctx context.Context, c *models.Comment) error {
	query := `INSERT INTO review_comments (` + commentColumns + `, legacy) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := tx.Use(ctx, s.db).ExecContext(ctx, query,
		c.ID, nullable(c.TaskID), c.Dept, c.Period, c.Reviewer, string(c.ReviewType),
		c.Content, nullable(c.SingleID), c.SingleDesc, c.CreatedAt, c.Legacy)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("add review comment: %w", err)
	}
	return nil
}

func (s *PostgresComments) ReviewStatus(ctx context.Context, taskID, ticketDept, period string) (models.ReviewStatus, error) {
	query := `
		SELECT DISTINCT review_type FROM review_comments
		WHERE NOT legacy AND single_id IS NULL AND review_type = ANY($1)
		  AND (task_id = $2 OR ($3 <> '' AND dept = $3 AND period = $4 AND period <> ''))
	`
	whole := make([]string, 0, len(catalog.WholeReviewTypes))
	status := make(models.ReviewStatus, len(catalog.WholeReviewTypes))
	for _, rt := range catalog.WholeReviewTypes {
		whole = append(whole, string(rt))
		status[rt] = false
	}
	rows, err := tx.Use(ctx, s.db).QueryContext(ctx, query, pq.Array(whole), taskID, ticketDept, period)
	if err != nil {
		return nil, fmt.Errorf("read review status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rt string
		if err := rows.Scan(&rt); err != nil {
			return nil, fmt.Errorf("scan review status: %w", err)
		}
		status[catalog.ReviewType(rt)] = true
	}
	return status, rows.Err()
}

func (s *PostgresComments) HasWhole(ctx context.Context, scope models.Scope, reviewer string) (bool, error) {
	where, args := scopeClause(scope, 2)
	query := `SELECT EXISTS (SELECT 1 FROM review_comments WHERE NOT legacy AND single_id IS NULL AND reviewer = $1 AND ` + where + `)`
	var ok bool
	err := s.db.QueryRowContext(ctx, query, append([]any{reviewer}, args...)...).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check whole review: %w", err)
	}
	return ok, nil
}

func (s *PostgresComments) SingleContents(ctx context.Context, scope models.Scope, singleIDs []string) (map[string]string, error) {
	out := make(map[string]string)
	if len(singleIDs) == 0 {
		return out, nil
	}
	where, args := scopeClause(scope, 2)
	query := `
		SELECT single_id, content FROM review_comments
		WHERE NOT legacy AND single_id = ANY($1) AND ` + where + `
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, append([]any{pq.Array(singleIDs)}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list single reviews: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, content string
		if err := rows.Scan(&id, &content); err != nil {
			return nil, fmt.Errorf("scan single review: %w", err)
		}
		out[id] = content
	}
	return out, rows.Err()
}

func (s *PostgresComments) List(ctx context.Context, scopes ...models.Scope) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, sc := range scopes {
		where, args := scopeClause(sc, 1)
		query := `SELECT ` + commentColumns + ` FROM review_comments WHERE NOT legacy AND ` + where + ` ORDER BY created_at`
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("list review comments: %w", err)
		}
		comments, err := scanComments(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, comments...)
	}
	return out, nil
}

// PurgeTask deletes the task's comments of both variants.
func (s *PostgresComments) PurgeTask(ctx context.Context, taskID string) (int, error) {
	res, err := tx.Use(ctx, s.db).ExecContext(ctx, `DELETE FROM review_comments WHERE task_id = $1`, taskID)
	if err != nil {
		return 0, fmt.Errorf("purge review comments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge review comments: %w", err)
	}
	return int(n), nil
}

// PostgresBoard stores message-board entries.
type PostgresBoard struct {
	db *sql.DB
}

func NewPostgresBoard(db *sql.DB) *PostgresBoard {
	return &PostgresBoard{db: db}
}

func (s *PostgresBoard) Add(ctx context.Context, e *models.BoardEntry) error {
	query := `
		INSERT INTO message_board (id, task_id, dept, period, author, review_type, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := tx.Use(ctx, s.db).ExecContext(ctx, query,
		e.ID, nullable(e.TaskID), e.Dept, e.Period, e.Author, string(e.ReviewType), e.Content, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("add board entry: %w", err)
	}
	return nil
}

func (s *PostgresBoard) List(ctx context.Context, scope models.Scope) ([]*models.BoardEntry, error) {
	where, args := scopeClause(scope, 1)
	query := `
		SELECT id, COALESCE(task_id, ''), dept, period, author, review_type, content, created_at
		FROM message_board WHERE ` + where + ` ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list board entries: %w", err)
	}
	defer rows.Close()
	var out []*models.BoardEntry
	for rows.Next() {
		var e models.BoardEntry
		var rt string
		if err := rows.Scan(&e.ID, &e.TaskID, &e.Dept, &e.Period, &e.Author, &rt, &e.Content, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan board entry: %w", err)
		}
		e.ReviewType = catalog.ReviewType(rt)
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (s *PostgresBoard) PurgeTask(ctx context.Context, taskID string) (int, error) {
	res, err := tx.Use(ctx, s.db).ExecContext(ctx, `DELETE FROM message_board WHERE task_id = $1`, taskID)
	if err != nil {
		return 0, fmt.Errorf("purge board entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge board entries: %w", err)
	}
	return int(n), nil
}

// scopeClause renders the scope keys as placeholders starting at $first.
func scopeClause(sc models.Scope, first int) (string, []any) {
	if sc.TaskID != "" {
		return fmt.Sprintf("review_type = $%d AND task_id = $%d", first, first+1),
			[]any{string(sc.ReviewType), sc.TaskID}
	}
	return fmt.Sprintf("review_type = $%d AND dept = $%d AND period = $%d", first, first+1, first+2),
		[]any{string(sc.ReviewType), sc.Dept, sc.Period}
}

func scanComments(rows *sql.Rows) ([]*models.Comment, error) {
	defer rows.Close()
	var out []*models.Comment
	for rows.Next() {
		var c models.Comment
		var taskID, singleID sql.NullString
		var rt string
		if err := rows.Scan(&c.ID, &taskID, &c.Dept, &c.Period, &c.Reviewer, &rt,
			&c.Content, &singleID, &c.SingleDesc, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review comment: %w", err)
		}
		c.TaskID = taskID.String
		c.SingleID = singleID.String
		c.ReviewType = catalog.ReviewType(rt)
		out = append(out, &c)
	}
	return out, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
