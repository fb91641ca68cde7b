package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulwark/internal/catalog/models"
	"bulwark/internal/period"
	"bulwark/pkg/platform/sentinel"
)

func TestPostgresSystem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	st := NewPostgres(db)

	cols := []string{"id", "name", "config_id", "dept_name", "db_names", "online_ticket_dept", "deploy_ticket_dept",
		"leaders", "app_auditors", "sys_db_auditors", "ticket_auditors"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_systems WHERE id = $1")).
		WithArgs("sys-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("sys-1", "Payments", "cfg-1", "Finance", "{pay,ledger}", "42", "deploy", "{}", "{1001,1002}", "{1003}", "{}"))

	sys, err := st.System(context.Background(), "sys-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"pay", "ledger"}, sys.DBNames)
	assert.Equal(t, []string{"1001", "1002"}, sys.AppAuditors)
	assert.Equal(t, "42", sys.OnlineTicketDept)

	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_systems WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(cols))
	_, err = st.System(context.Background(), "missing")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRuleGroupAndAtoms(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	st := NewPostgres(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rule_groups WHERE id = $1")).
		WithArgs("g-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "atom_ids", "cadence", "status"}).
			AddRow("g-1", "core", "{a-1,a-2}", "QUARTER", "ONLINE"))
	g, err := st.RuleGroup(context.Background(), "g-1")
	require.NoError(t, err)
	assert.Equal(t, period.Quarter, g.Cadence)
	assert.Equal(t, []string{"a-1", "a-2"}, g.AtomIDs)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rule_atoms WHERE id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "rule_type", "description", "pattern_ids"}).
			AddRow("a-1", "matrix", "ONLINE", "PERM", "", "{}").
			AddRow("a-2", "danger", "ONLINE", "REGEX", "", "{p-1}"))
	atoms, err := st.RuleAtoms(context.Background(), g.AtomIDs)
	require.NoError(t, err)
	require.Len(t, atoms, 2)
	assert.Equal(t, models.RuleRegex, atoms[1].Type)
	assert.Equal(t, []string{"p-1"}, atoms[1].PatternIDs)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEmptyInputsSkipQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	st := NewPostgres(db)

	atoms, err := st.RuleAtoms(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, atoms)
	nodes, err := st.DBNodes(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, nodes)

	require.NoError(t, mock.ExpectationsWereMet())
}
