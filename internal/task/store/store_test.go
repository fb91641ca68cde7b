package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulwark/internal/task/models"
	"bulwark/pkg/platform/sentinel"
)

func TestInMemoryStatusIsCompareAndSet(t *testing.T) {
	ctx := context.Background()
	st := NewInMemory()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.Create(ctx, &models.Task{ID: "t-1", TaskManagerID: "tm-1", Period: "2024年Q1", Status: models.StatusNotStarted, CreatedAt: created}))
	assert.ErrorIs(t, st.Create(ctx, &models.Task{ID: "t-9", TaskManagerID: "tm-1", Period: "2024年Q1"}), sentinel.ErrConflict)

	started := created.AddDate(0, 3, 1)
	require.NoError(t, st.UpdateStatus(ctx, "t-1", models.StatusNotStarted, models.StatusStarted, &started, nil))
	assert.ErrorIs(t, st.UpdateStatus(ctx, "t-1", models.StatusNotStarted, models.StatusStarted, &started, nil), sentinel.ErrConflict)
	assert.ErrorIs(t, st.UpdateStatus(ctx, "nope", models.StatusNotStarted, models.StatusStarted, nil, nil), sentinel.ErrNotFound)

	got, err := st.FindByID(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusStarted, got.Status)
	require.NotNil(t, got.StartTime)
	assert.True(t, got.StartTime.Equal(started))
	assert.Nil(t, got.FinishedTime)
}

func TestInMemoryListings(t *testing.T) {
	ctx := context.Background()
	st := NewInMemory()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.Create(ctx, &models.Task{ID: "a", TaskManagerID: "tm-1", Period: "2024年Q1", Status: models.StatusStarted, CreatedAt: base}))
	require.NoError(t, st.Create(ctx, &models.Task{ID: "b", TaskManagerID: "tm-2", Period: "2024年Q1", Status: models.StatusFinished, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, st.Create(ctx, &models.Task{ID: "c", TaskManagerID: "tm-2", Period: "2024年Q2", Status: models.StatusNotStarted, CreatedAt: base.Add(2 * time.Hour)}))

	open, err := st.ListUnfinished(ctx, nil)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "a", open[0].ID)

	open, err = st.ListUnfinished(ctx, []string{"tm-2"})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "c", open[0].ID)

	siblings, err := st.ListByPeriod(ctx, "2024年Q1", "a")
	require.NoError(t, err)
	require.Len(t, siblings, 1)
	assert.Equal(t, "b", siblings[0].ID)

	_, err = st.FindByManagerPeriod(ctx, "tm-1", "2024年Q2")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestPostgresUpdateStatusConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	st := NewPostgres(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE audit_tasks SET")).
		WithArgs("t-1", "UNDER_REVIEW", "NOT_AUDITED", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_tasks WHERE id = $1")).
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "task_manager_id", "period", "status", "created_at", "start_time", "finished_time"}).
			AddRow("t-1", "tm-1", "2024年Q1", "STARTED", time.Now(), nil, nil))

	err = st.UpdateStatus(context.Background(), "t-1", models.StatusUnderReview, models.StatusNotAudited, nil, nil)
	assert.ErrorIs(t, err, sentinel.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
