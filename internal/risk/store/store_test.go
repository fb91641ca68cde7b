package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulwark/internal/risk/models"
	"bulwark/pkg/platform/sentinel"
)

func TestInMemoryAnnotationsMergeColumns(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryAnnotations()
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	require.NoError(t, st.Upsert(ctx, "sys-1", "10001", day, models.Matrix("兼具应用管理员、系统管理员")))
	require.NoError(t, st.Upsert(ctx, "sys-1", "10001", day, models.Staff(models.ReasonResigned)))
	require.NoError(t, st.Upsert(ctx, "sys-1", "10002", day, models.Matrix("")))

	got, err := st.ForAccounts(ctx, "sys-1", day, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "兼具应用管理员、系统管理员", got["10001"].MatrixRisk)
	assert.Equal(t, models.ReasonResigned, got["10001"].StaffRisk)

	systems, err := st.SystemsWithMatrixRisk(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []string{"sys-1"}, systems)

	at := day.Add(10 * time.Hour)
	require.NoError(t, st.MarkReminded(ctx, systems, day, at))
	got, err = st.ForAccounts(ctx, "sys-1", day, []string{"10001"})
	require.NoError(t, err)
	require.NotNil(t, got["10001"].LastRemind)
	assert.Equal(t, at, *got["10001"].LastRemind)
}

func TestInMemorySnapshotsReplace(t *testing.T) {
	ctx := context.Background()
	st := NewInMemorySnapshots()
	first := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := st.Get(ctx, "task-1")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, st.Replace(ctx, "task-1", []string{"10001", "10002"}, []string{"alice", "bob"}, first))
	require.NoError(t, st.Replace(ctx, "task-1", []string{"10003"}, []string{"carol"}, first.AddDate(0, 0, 1)))

	snap, err := st.Get(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"10003"}, snap.AccountIDs)
	assert.Equal(t, []string{"carol"}, snap.Emails)
	assert.Equal(t, first, snap.CreatedAt)
}

func TestPostgresAnnotationsUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	st := NewPostgresAnnotations(db)
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (system_id, account, record_date) DO UPDATE SET")).
		WithArgs("sys-1", "alice", day, nil, models.ReasonResigned, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, st.Upsert(context.Background(), "sys-1", "alice", day, models.Staff(models.ReasonResigned)))
	require.NoError(t, st.Upsert(context.Background(), "sys-1", "alice", day, models.Fields{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSnapshotsGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	st := NewPostgresSnapshots(db)
	now := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM job_transfer_snapshots WHERE task_id = $1")).
		WithArgs("task-1").
		WillReturnRows(sqlmock.NewRows([]string{"task_id", "account_ids", "emails", "created_at", "updated_at"}).
			AddRow("task-1", "{10001}", "{alice}", now, now))
	snap, err := st.Get(context.Background(), "task-1")
	require.NoError(t, err)
	assert.True(t, snap.Contains("alice"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM job_transfer_snapshots WHERE task_id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"task_id", "account_ids", "emails", "created_at", "updated_at"}))
	_, err = st.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
