package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"bulwark/internal/catalog/models"
	"bulwark/internal/period"
	"bulwark/pkg/platform/sentinel"
)

// PostgresStore reads the audit catalog from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const systemColumns = `id, name, config_id, dept_name, db_names, online_ticket_dept, deploy_ticket_dept,
	leaders, app_auditors, sys_db_auditors, ticket_auditors`

func (s *PostgresStore) System(ctx context.Context, id string) (*models.AuditSystem, error) {
	query := `SELECT ` + systemColumns + ` FROM audit_systems WHERE id = $1`
	sys, err := scanSystem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find audit system: %w", err)
	}
	return sys, nil
}

func (s *PostgresStore) Systems(ctx context.Context) ([]*models.AuditSystem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+systemColumns+` FROM audit_systems ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list audit systems: %w", err)
	}
	defer rows.Close()

	var out []*models.AuditSystem
	for rows.Next() {
		sys, err := scanSystem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit system: %w", err)
		}
		out = append(out, sys)
	}
	return out, rows.Err()
}

// UpsertSystem writes an audit system. Used by seeding and tests.
func (s *PostgresStore) UpsertSystem(ctx context.Context, sys *models.AuditSystem) error {
	query := `
		INSERT INTO audit_systems (` + systemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			config_id = EXCLUDED.config_id,
			dept_name = EXCLUDED.dept_name,
			db_names = EXCLUDED.db_names,
			online_ticket_dept = EXCLUDED.online_ticket_dept,
			deploy_ticket_dept = EXCLUDED.deploy_ticket_dept,
			leaders = EXCLUDED.leaders,
			app_auditors = EXCLUDED.app_auditors,
			sys_db_auditors = EXCLUDED.sys_db_auditors,
			ticket_auditors = EXCLUDED.ticket_auditors
	`
	_, err := s.db.ExecContext(ctx, query,
		sys.ID, sys.Name, sys.ConfigID, sys.DeptName, pq.Array(sys.DBNames),
		sys.OnlineTicketDept, sys.DeployTicketDept,
		pq.Array(sys.Leaders), pq.Array(sys.AppAuditors), pq.Array(sys.SysDBAuditors), pq.Array(sys.TicketAuditors),
	)
	if err != nil {
		return fmt.Errorf("upsert audit system: %w", err)
	}
	return nil
}

func (s *PostgresStore) Servers(ctx context.Context, systemID string, kinds ...models.Domain) ([]*models.Server, error) {
	kindNames := make([]string, len(kinds))
	for i, k := range kinds {
		kindNames[i] = string(k)
	}
	query := `
		SELECT server_name, system_id, kind, server_type, bg_alias
		FROM audit_servers
		WHERE system_id = $1 AND (cardinality($2::text[]) = 0 OR kind = ANY($2))
		ORDER BY server_name
	`
	rows, err := s.db.QueryContext(ctx, query, systemID, pq.Array(kindNames))
	if err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	defer rows.Close()

	var out []*models.Server
	for rows.Next() {
		var srv models.Server
		var kind string
		if err := rows.Scan(&srv.Name, &srv.SystemID, &kind, &srv.Type, &srv.BGAlias); err != nil {
			return nil, fmt.Errorf("scan server: %w", err)
		}
		srv.Kind = models.Domain(kind)
		out = append(out, &srv)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DBNodes(ctx context.Context, serverNames []string) ([]string, error) {
	if len(serverNames) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT db_node FROM db_nodes WHERE server_name = ANY($1)`, pq.Array(serverNames))
	if err != nil {
		return nil, fmt.Errorf("list db nodes: %w", err)
	}
	return scanStrings(rows)
}

func (s *PostgresStore) AppKeys(ctx context.Context, systemConfigID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT appkey FROM sys_projects WHERE system_config_id = $1`, systemConfigID)
	if err != nil {
		return nil, fmt.Errorf("list appkeys: %w", err)
	}
	return scanStrings(rows)
}

const managerColumns = `id, name, description, system_id, rule_group_id, follow_up_person, status`

func (s *PostgresStore) TaskManager(ctx context.Context, id string) (*models.TaskManager, error) {
	m, err := scanManager(s.db.QueryRowContext(ctx, `SELECT `+managerColumns+` FROM task_managers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find task manager: %w", err)
	}
	return m, nil
}

func (s *PostgresStore) TaskManagers(ctx context.Context, status models.Status) ([]*models.TaskManager, error) {
	query := `SELECT ` + managerColumns + ` FROM task_managers WHERE ($1 = '' OR status = $1) ORDER BY created_at, id`
	return s.queryManagers(ctx, query, string(status))
}

func (s *PostgresStore) TaskManagersBySystem(ctx context.Context, systemID string) ([]*models.TaskManager, error) {
	query := `SELECT ` + managerColumns + ` FROM task_managers WHERE system_id = $1 ORDER BY created_at, id`
	return s.queryManagers(ctx, query, systemID)
}

func (s *PostgresStore) queryManagers(ctx context.Context, query string, arg string) ([]*models.TaskManager, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list task managers: %w", err)
	}
	defer rows.Close()

	var out []*models.TaskManager
	for rows.Next() {
		m, err := scanManager(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task manager: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *PostgresStore) RuleGroup(ctx context.Context, id string) (*models.RuleGroup, error) {
	var g models.RuleGroup
	var cadence, status string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, atom_ids, cadence, status FROM rule_groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, pq.Array(&g.AtomIDs), &cadence, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find rule group: %w", err)
	}
	g.Cadence = period.Cadence(cadence)
	g.Status = models.Status(status)
	return &g, nil
}

func (s *PostgresStore) RuleAtoms(ctx context.Context, ids []string) ([]*models.RuleAtom, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, status, rule_type, description, pattern_ids
		FROM rule_atoms WHERE id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list rule atoms: %w", err)
	}
	defer rows.Close()

	var out []*models.RuleAtom
	for rows.Next() {
		var a models.RuleAtom
		var status, ruleType string
		if err := rows.Scan(&a.ID, &a.Name, &status, &ruleType, &a.Description, pq.Array(&a.PatternIDs)); err != nil {
			return nil, fmt.Errorf("scan rule atom: %w", err)
		}
		a.Status = models.Status(status)
		a.Type = models.RuleType(ruleType)
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Patterns(ctx context.Context, ids []string) ([]*models.RegexPattern, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, regex, description FROM regex_patterns WHERE id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list regex patterns: %w", err)
	}
	defer rows.Close()

	var out []*models.RegexPattern
	for rows.Next() {
		var p models.RegexPattern
		if err := rows.Scan(&p.ID, &p.Name, &p.Regex, &p.Description); err != nil {
			return nil, fmt.Errorf("scan regex pattern: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

type row interface {
	Scan(dest ...any) error
}

func scanSystem(r row) (*models.AuditSystem, error) {
	var sys models.AuditSystem
	err := r.Scan(&sys.ID, &sys.Name, &sys.ConfigID, &sys.DeptName, pq.Array(&sys.DBNames),
		&sys.OnlineTicketDept, &sys.DeployTicketDept,
		pq.Array(&sys.Leaders), pq.Array(&sys.AppAuditors), pq.Array(&sys.SysDBAuditors), pq.Array(&sys.TicketAuditors))
	if err != nil {
		return nil, err
	}
	return &sys, nil
}

func scanManager(r row) (*models.TaskManager, error) {
	var m models.TaskManager
	var status string
	if err := r.Scan(&m.ID, &m.Name, &m.Description, &m.SystemID, &m.RuleGroupID, &m.FollowUpPerson, &status); err != nil {
		return nil, err
	}
	m.Status = models.Status(status)
	return &m, nil
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
