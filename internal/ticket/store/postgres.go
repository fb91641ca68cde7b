package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"bulwark/internal/ticket/models"
)

// Postgres reads deploy_records, online_tickets and ticket_closures.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const deployColumns = `source_id, commit_id, deployer, project, deploy_time, dept, appkey, risk, risk_reason, ticket_id, wos_url`

const ticketColumns = `ticket_id, ticket_type, commit_id, submitted_at, project, submitter_email, submitter_name, status, dept_id`

func (s *Postgres) Depts(ctx context.Context, from, to time.Time) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT dept FROM deploy_records WHERE deploy_time >= $1 AND deploy_time < $2 ORDER BY dept`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("list deploy depts: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan deploy dept: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Postgres) Deploys(ctx context.Context, q DeployQuery) ([]*models.DeployRecord, error) {
	query := `
		SELECT ` + deployColumns + ` FROM deploy_records
		WHERE dept = $1 AND deploy_time >= $2 AND deploy_time < $3
			AND (cardinality($4::text[]) = 0 OR appkey = ANY($4))
			AND (NOT $5 OR risk)
		ORDER BY deploy_time, source_id
	`
	rows, err := s.db.QueryContext(ctx, query, q.Dept, q.From, q.To, pq.Array(q.AppKeys), q.RiskyOnly)
	if err != nil {
		return nil, fmt.Errorf("list deploy records: %w", err)
	}
	return scanDeploys(rows)
}

func (s *Postgres) DeploysByCommit(ctx context.Context, commitIDs []string) ([]*models.DeployRecord, error) {
	query := `SELECT ` + deployColumns + ` FROM deploy_records WHERE commit_id = ANY($1) ORDER BY deploy_time, source_id`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(commitIDs))
	if err != nil {
		return nil, fmt.Errorf("list deploys by commit: %w", err)
	}
	return scanDeploys(rows)
}

func (s *Postgres) TicketsMatching(ctx context.Context, prefix string) ([]*models.OnlineTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM online_tickets WHERE strpos(commit_id, $1) > 0 ORDER BY submitted_at, ticket_id`
	rows, err := s.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("match online tickets: %w", err)
	}
	return scanTickets(rows)
}

func (s *Postgres) TicketsByIDs(ctx context.Context, ids, statuses []string) ([]*models.OnlineTicket, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + ticketColumns + ` FROM online_tickets
		WHERE ticket_id = ANY($1) AND (cardinality($2::text[]) = 0 OR status = ANY($2))
		ORDER BY submitted_at, ticket_id
	`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids), pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list online tickets: %w", err)
	}
	return scanTickets(rows)
}

func (s *Postgres) ClosureCovering(ctx context.Context, projects []string, at time.Time) (*models.Closure, error) {
	query := `
		SELECT id, projects, reason, start_time, end_time, wos_url FROM ticket_closures
		WHERE projects && $1 AND start_time <= $2 AND end_time >= $2
		ORDER BY start_time
		LIMIT 1
	`
	var c models.Closure
	err := s.db.QueryRowContext(ctx, query, pq.Array(projects), at).
		Scan(&c.ID, pq.Array(&c.Projects), &c.Reason, &c.Start, &c.End, &c.WosURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find ticket closure: %w", err)
	}
	return &c, nil
}

func (s *Postgres) UpdateVerdict(ctx context.Context, commitIDs []string, v models.Verdict) (int, error) {
	query := `
		UPDATE deploy_records SET risk = $2, risk_reason = $3, ticket_id = $4, wos_url = $5
		WHERE commit_id = ANY($1)
	`
	res, err := s.db.ExecContext(ctx, query, pq.Array(commitIDs), v.Risk, v.RiskReason, v.TicketID, v.WosURL)
	if err != nil {
		return 0, fmt.Errorf("update deploy verdict: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update deploy verdict: %w", err)
	}
	return int(n), nil
}

func scanDeploys(rows *sql.Rows) ([]*models.DeployRecord, error) {
	defer rows.Close()
	var out []*models.DeployRecord
	for rows.Next() {
		var d models.DeployRecord
		var risk sql.NullBool
		if err := rows.Scan(&d.SourceID, &d.CommitID, &d.Deployer, &d.Project, &d.DeployTime, &d.Dept,
			&d.AppKey, &risk, &d.RiskReason, &d.TicketID, &d.WosURL); err != nil {
			return nil, fmt.Errorf("scan deploy record: %w", err)
		}
		if risk.Valid {
			r := risk.Bool
			d.Risk = &r
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func scanTickets(rows *sql.Rows) ([]*models.OnlineTicket, error) {
	defer rows.Close()
	var out []*models.OnlineTicket
	for rows.Next() {
		var t models.OnlineTicket
		if err := rows.Scan(&t.TicketID, &t.Type, &t.CommitID, &t.SubmittedAt, &t.Project,
			&t.SubmitterEmail, &t.SubmitterName, &t.Status, &t.DeptID); err != nil {
			return nil, fmt.Errorf("scan online ticket: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
