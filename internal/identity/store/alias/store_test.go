package alias

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/identity/models"
	"bulwark/pkg/platform/sentinel"
)

func TestInMemorySoftDelete(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	require.NoError(t, s.Save(ctx, &models.Alias{ID: "1", Name: "deploy", SystemID: "sys-1", Domain: catalog.DomainSA}))
	require.NoError(t, s.Save(ctx, &models.Alias{ID: "2", Name: "svc", SystemID: "sys-1", Domain: catalog.DomainApp}))

	all, err := s.ListBySystem(ctx, "sys-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.Delete(ctx, "1"))
	os, err := s.ListBySystem(ctx, "sys-1", catalog.DomainSA)
	require.NoError(t, err)
	assert.Empty(t, os)

	assert.ErrorIs(t, s.Delete(ctx, "missing"), sentinel.ErrNotFound)
}

func TestPostgresListBySystem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := NewPostgres(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM non_normal_users")).
		WithArgs("sys-1", "SA").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "system_id", "domain", "account_id", "email", "user_name", "dept", "deleted"}).
			AddRow("1", "deploy", "sys-1", "SA", "1001", "alice@example.com", "Alice", "Tech", false))

	got, err := s.ListBySystem(context.Background(), "sys-1", catalog.DomainSA)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, catalog.DomainSA, got[0].Domain)
	assert.Equal(t, "alice", got[0].Canonical())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := NewPostgres(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE non_normal_users SET deleted = TRUE")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.Delete(context.Background(), "missing"), sentinel.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
