package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"bulwark/internal/asset/models"
	"bulwark/pkg/platform/sentinel"
)

// PostgresStore reads snapshots and logs from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// dbScopeClause binds server names, nodes and schemas to $2, $3 and $4.
const dbScopeClause = `(server_name = ANY($2) OR db_node = ANY($3))
	AND (cardinality($4::text[]) = 0 OR db_name = '' OR db_name = ANY($4))`

func (s *PostgresStore) SaveAppRole(ctx context.Context, r *models.AppRole) error {
	query := `
		INSERT INTO app_roles (bg_name, role, user_tag, record_date, first_seen, risk_flag, risk_systems, dept_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (bg_name, user_tag, role, record_date) DO UPDATE SET
			first_seen = EXCLUDED.first_seen,
			dept_name = EXCLUDED.dept_name
	`
	_, err := s.db.ExecContext(ctx, query, r.BGName, r.Role, r.User, r.RecordDate, nullTime(r.FirstSeen),
		r.RiskFlag, pq.Array(r.RiskSystems), r.DeptName)
	if err != nil {
		return fmt.Errorf("save app role: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveOSAccount(ctx context.Context, a *models.OSAccount) error {
	query := `
		INSERT INTO os_accounts (server_name, root_user, record_date, first_seen, risk_flag, risk_systems, dept_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (server_name, root_user, record_date) DO UPDATE SET
			first_seen = EXCLUDED.first_seen,
			dept_name = EXCLUDED.dept_name
	`
	_, err := s.db.ExecContext(ctx, query, a.ServerName, a.User, a.RecordDate, nullTime(a.FirstSeen),
		a.RiskFlag, pq.Array(a.RiskSystems), a.DeptName)
	if err != nil {
		return fmt.Errorf("save os account: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveDBRole(ctx context.Context, r *models.DBRole) error {
	query := `
		INSERT INTO db_roles (user_tag, role, db_node, server_name, db_name, record_date, first_seen, risk_flag, risk_systems, dept_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query, r.User, r.Role, r.DBNode, r.ServerName, r.DBName, r.RecordDate,
		nullTime(r.FirstSeen), r.RiskFlag, pq.Array(r.RiskSystems), r.DeptName)
	if err != nil {
		return fmt.Errorf("save db role: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveAccessLog(ctx context.Context, l *models.AccessLog) error {
	query := `
		INSERT INTO access_logs (id, bg_name, user_tag, accessed_at, host, url, method, params, risk_flag)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query, l.ID, l.BGName, l.User, l.AccessedAt, l.Host, l.URL, l.Method, l.Params, l.RiskFlag)
	if err != nil {
		return fmt.Errorf("save access log: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveCommandLog(ctx context.Context, l *models.CommandLog) error {
	query := `
		INSERT INTO command_logs (id, source, server_name, db_node, db_name, user_tag, command, executed_at,
			hit_patterns, hit_rule_atoms, risk_flag, scanned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query, l.ID, string(l.Source), l.ServerName, l.DBNode, l.DBName, l.User,
		l.Command, l.ExecutedAt, pq.Array(l.HitPatterns), pq.Array(l.HitRuleAtoms), l.RiskFlag, l.Scanned)
	if err != nil {
		return fmt.Errorf("save command log: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppRoles(ctx context.Context, q SnapshotQuery) ([]*models.AppRole, error) {
	query := `
		SELECT bg_name, role, user_tag, record_date, first_seen, risk_flag, risk_systems, dept_name
		FROM app_roles
		WHERE record_date = $1 AND bg_name = ANY($2)
			AND (cardinality($3::text[]) = 0 OR user_tag = ANY($3))
			AND (cardinality($4::text[]) = 0 OR role = ANY($4))
	`
	if len(q.BGNames) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, query, q.Day, pq.Array(q.BGNames), pq.Array(q.Users), pq.Array(q.Roles))
	if err != nil {
		return nil, fmt.Errorf("list app roles: %w", err)
	}
	defer rows.Close()

	var out []*models.AppRole
	for rows.Next() {
		var r models.AppRole
		var firstSeen sql.NullTime
		if err := rows.Scan(&r.BGName, &r.Role, &r.User, &r.RecordDate, &firstSeen, &r.RiskFlag,
			pq.Array(&r.RiskSystems), &r.DeptName); err != nil {
			return nil, fmt.Errorf("scan app role: %w", err)
		}
		r.FirstSeen = firstSeen.Time
		out = append(out, &r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) OSAccounts(ctx context.Context, q SnapshotQuery) ([]*models.OSAccount, error) {
	query := `
		SELECT server_name, root_user, record_date, first_seen, risk_flag, risk_systems, dept_name
		FROM os_accounts
		WHERE record_date = $1 AND server_name = ANY($2)
			AND (cardinality($3::text[]) = 0 OR root_user = ANY($3))
	`
	if len(q.Servers) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, query, q.Day, pq.Array(q.Servers), pq.Array(q.Users))
	if err != nil {
		return nil, fmt.Errorf("list os accounts: %w", err)
	}
	defer rows.Close()

	var out []*models.OSAccount
	for rows.Next() {
		var a models.OSAccount
		var firstSeen sql.NullTime
		if err := rows.Scan(&a.ServerName, &a.User, &a.RecordDate, &firstSeen, &a.RiskFlag,
			pq.Array(&a.RiskSystems), &a.DeptName); err != nil {
			return nil, fmt.Errorf("scan os account: %w", err)
		}
		a.FirstSeen = firstSeen.Time
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DBRoles(ctx context.Context, q SnapshotQuery) ([]*models.DBRole, error) {
	query := `
		SELECT id, user_tag, role, db_node, server_name, db_name, record_date, first_seen, risk_flag, risk_systems, dept_name
		FROM db_roles
		WHERE record_date = $1 AND ` + dbScopeClause + `
			AND (cardinality($5::text[]) = 0 OR user_tag = ANY($5))
			AND (cardinality($6::text[]) = 0 OR role = ANY($6))
	`
	if q.Scope.IsEmpty() {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, query, q.Day,
		pq.Array(q.Scope.ServerNames), pq.Array(q.Scope.Nodes), pq.Array(q.Scope.DBNames),
		pq.Array(q.Users), pq.Array(q.Roles))
	if err != nil {
		return nil, fmt.Errorf("list db roles: %w", err)
	}
	defer rows.Close()

	var out []*models.DBRole
	for rows.Next() {
		var r models.DBRole
		var firstSeen sql.NullTime
		if err := rows.Scan(&r.ID, &r.User, &r.Role, &r.DBNode, &r.ServerName, &r.DBName, &r.RecordDate,
			&firstSeen, &r.RiskFlag, pq.Array(&r.RiskSystems), &r.DeptName); err != nil {
			return nil, fmt.Errorf("scan db role: %w", err)
		}
		r.FirstSeen = firstSeen.Time
		out = append(out, &r)
	}
	return out, rows.Err()
}

// riskUpdate applies one system's verdict: a risky verdict adds the system
// once, a compliant one removes it, and the flag stays set while any system
// remains. Both SET expressions read the row before the update.
const riskUpdate = `risk_flag = $%[1]d OR cardinality(array_remove(risk_systems, $%[2]d::text)) > 0,
	risk_systems = CASE
		WHEN NOT $%[1]d THEN array_remove(risk_systems, $%[2]d::text)
		WHEN $%[2]d::text = ANY(risk_systems) THEN risk_systems
		ELSE array_append(risk_systems, $%[2]d::text)
	END`

func (s *PostgresStore) MarkAppRisk(ctx context.Context, q SnapshotQuery, systemID string, risky bool) (int, error) {
	if len(q.Users) == 0 || len(q.BGNames) == 0 {
		return 0, nil
	}
	query := `UPDATE app_roles SET ` + fmt.Sprintf(riskUpdate, 4, 5) + `
		WHERE record_date = $1 AND bg_name = ANY($2) AND user_tag = ANY($3)`
	return s.exec(ctx, "mark app risk", query, q.Day, pq.Array(q.BGNames), pq.Array(q.Users), risky, systemID)
}

func (s *PostgresStore) MarkOSRisk(ctx context.Context, q SnapshotQuery, systemID string, risky bool) (int, error) {
	if len(q.Users) == 0 || len(q.Servers) == 0 {
		return 0, nil
	}
	query := `UPDATE os_accounts SET ` + fmt.Sprintf(riskUpdate, 4, 5) + `
		WHERE record_date = $1 AND server_name = ANY($2) AND root_user = ANY($3)`
	return s.exec(ctx, "mark os risk", query, q.Day, pq.Array(q.Servers), pq.Array(q.Users), risky, systemID)
}

func (s *PostgresStore) MarkDBRisk(ctx context.Context, q SnapshotQuery, systemID string, risky bool) (int, error) {
	if len(q.Users) == 0 || q.Scope.IsEmpty() {
		return 0, nil
	}
	query := `UPDATE db_roles SET ` + fmt.Sprintf(riskUpdate, 6, 7) + `
		WHERE record_date = $1 AND ` + dbScopeClause + ` AND user_tag = ANY($5)`
	return s.exec(ctx, "mark db risk", query, q.Day,
		pq.Array(q.Scope.ServerNames), pq.Array(q.Scope.Nodes), pq.Array(q.Scope.DBNames),
		pq.Array(q.Users), risky, systemID)
}

func (s *PostgresStore) exec(ctx context.Context, op, query string, args ...any) (int, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(n), nil
}

func (s *PostgresStore) LastAccess(ctx context.Context, user string, bgNames []string) (time.Time, error) {
	query := `SELECT MAX(accessed_at) FROM access_logs WHERE user_tag = $1 AND bg_name = ANY($2)`
	var last sql.NullTime
	if err := s.db.QueryRowContext(ctx, query, user, pq.Array(bgNames)).Scan(&last); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, sentinel.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("find last access: %w", err)
	}
	if !last.Valid {
		return time.Time{}, sentinel.ErrNotFound
	}
	return last.Time, nil
}

func (s *PostgresStore) AccessLogs(ctx context.Context, q AccessQuery) ([]*models.AccessLog, error) {
	const columns = `SELECT id, bg_name, user_tag, accessed_at, host, url, method, params, risk_flag FROM access_logs`
	var (
		rows *sql.Rows
		err  error
	)
	if q.ID != "" {
		rows, err = s.db.QueryContext(ctx, columns+` WHERE id = $1 AND ($2 = '' OR user_tag = $2)`, q.ID, q.User)
	} else {
		query := columns + `
			WHERE accessed_at >= $1 AND accessed_at < $2 AND bg_name = ANY($3)
				AND ($4 = '' OR user_tag = $4)
				AND (NOT $5 OR (method = ANY($6) AND params NOT IN ('', '{}')))
			ORDER BY accessed_at DESC`
		rows, err = s.db.QueryContext(ctx, query, q.Start, q.End, pq.Array(q.BGNames), q.User,
			q.WriteOnly, pq.Array(models.WriteMethods))
	}
	if err != nil {
		return nil, fmt.Errorf("list access logs: %w", err)
	}
	defer rows.Close()

	var out []*models.AccessLog
	for rows.Next() {
		var l models.AccessLog
		if err := rows.Scan(&l.ID, &l.BGName, &l.User, &l.AccessedAt, &l.Host, &l.URL, &l.Method, &l.Params, &l.RiskFlag); err != nil {
			return nil, fmt.Errorf("scan access log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

const commandColumns = `SELECT id, source, server_name, db_node, db_name, user_tag, command, executed_at,
	hit_patterns, hit_rule_atoms, risk_flag, scanned FROM command_logs`

func (s *PostgresStore) CommandLogs(ctx context.Context, q CommandQuery) ([]*models.CommandLog, error) {
	var (
		rows *sql.Rows
		err  error
	)
	switch {
	case q.ID != "":
		rows, err = s.db.QueryContext(ctx, commandColumns+` WHERE source = $1 AND id = $2 AND ($3 = '' OR user_tag = $3)`,
			string(q.Source), q.ID, q.User)
	case q.Source == models.SourceDB:
		query := commandColumns + `
			WHERE source = $5 AND executed_at >= $6 AND executed_at < $7 AND ` + dbScopeClause + `
				AND ($1 = '' OR user_tag = $1)
				AND (cardinality($8::text[]) = 0 OR hit_patterns && $8)
			ORDER BY executed_at DESC`
		rows, err = s.db.QueryContext(ctx, query, q.User,
			pq.Array(q.Scope.ServerNames), pq.Array(q.Scope.Nodes), pq.Array(q.Scope.DBNames),
			string(q.Source), q.Start, q.End, pq.Array(q.PatternIDs))
	default:
		query := commandColumns + `
			WHERE source = $1 AND executed_at >= $2 AND executed_at < $3 AND server_name = ANY($4)
				AND ($5 = '' OR user_tag = $5)
				AND (cardinality($6::text[]) = 0 OR hit_patterns && $6)
			ORDER BY executed_at DESC`
		rows, err = s.db.QueryContext(ctx, query, string(q.Source), q.Start, q.End, pq.Array(q.Servers),
			q.User, pq.Array(q.PatternIDs))
	}
	if err != nil {
		return nil, fmt.Errorf("list command logs: %w", err)
	}
	defer rows.Close()
	return scanCommandLogs(rows)
}

func (s *PostgresStore) UnscannedCommandLogs(ctx context.Context, start, end time.Time, limit int) ([]*models.CommandLog, error) {
	query := commandColumns + `
		WHERE NOT scanned AND executed_at >= $1 AND executed_at < $2
		ORDER BY executed_at
		LIMIT $3`
	if limit <= 0 {
		limit = 1000
	}
	rows, err := s.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("list unscanned command logs: %w", err)
	}
	defer rows.Close()
	return scanCommandLogs(rows)
}

func (s *PostgresStore) TagCommandLog(ctx context.Context, id string, patternIDs, atomIDs []string) error {
	query := `
		UPDATE command_logs
		SET hit_patterns = $2, hit_rule_atoms = $3, risk_flag = $4, scanned = TRUE
		WHERE id = $1
	`
	if patternIDs == nil {
		patternIDs = []string{}
	}
	if atomIDs == nil {
		atomIDs = []string{}
	}
	n, err := s.exec(ctx, "tag command log", query, id, pq.Array(patternIDs), pq.Array(atomIDs), len(atomIDs) > 0)
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func scanCommandLogs(rows *sql.Rows) ([]*models.CommandLog, error) {
	var out []*models.CommandLog
	for rows.Next() {
		var l models.CommandLog
		var source string
		if err := rows.Scan(&l.ID, &source, &l.ServerName, &l.DBNode, &l.DBName, &l.User, &l.Command, &l.ExecutedAt,
			pq.Array(&l.HitPatterns), pq.Array(&l.HitRuleAtoms), &l.RiskFlag, &l.Scanned); err != nil {
			return nil, fmt.Errorf("scan command log: %w", err)
		}
		l.Source = models.LogSource(source)
		out = append(out, &l)
	}
	return out, rows.Err()
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
