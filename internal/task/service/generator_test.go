package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/period"
	"bulwark/internal/task/models"
	"bulwark/internal/task/service/mocks"
	taskstore "bulwark/internal/task/store"
)

func TestGeneratorRun(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	tasks := taskstore.NewInMemory()
	now := time.Date(2024, 4, 1, 3, 0, 0, 0, time.Local)

	cat.EXPECT().OnlineTaskManagers(gomock.Any()).Return([]*catalog.TaskManager{
		{ID: "tm-q"}, {ID: "tm-h"}, {ID: "tm-m"}, {ID: "tm-broken"},
	}, nil).Times(2)
	cat.EXPECT().Cadence(gomock.Any(), "tm-q").Return(period.Quarter, nil).Times(2)
	cat.EXPECT().Cadence(gomock.Any(), "tm-h").Return(period.HalfYear, nil).Times(2)
	cat.EXPECT().Cadence(gomock.Any(), "tm-m").Return(period.Month, nil).Times(2)
	cat.EXPECT().Cadence(gomock.Any(), "tm-broken").Return(period.Cadence(""), errors.New("no rule group")).Times(2)

	gen := NewGenerator(tasks, cat,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return now }),
	)

	res, err := gen.Run(ctx, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "tm-broken")
	assert.Equal(t, GenerateResult{Created: 2, Skipped: 1}, res)

	q, err := tasks.FindByManagerPeriod(ctx, "tm-q", "2024年Q2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotStarted, q.Status)
	_, err = tasks.FindByManagerPeriod(ctx, "tm-m", "2024年4月")
	require.NoError(t, err)

	// forced rerun mints the half-year task and finds the others
	res, _ = gen.Run(ctx, true)
	assert.Equal(t, GenerateResult{Created: 1, Existing: 2}, res)
	_, err = tasks.FindByManagerPeriod(ctx, "tm-h", "2024年上")
	require.NoError(t, err)
}
