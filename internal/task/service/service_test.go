package service

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks Store,Catalog,CommentStore,BoardStore,Notifier,ProfileLookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/period"
	review "bulwark/internal/review/models"
	reviewstore "bulwark/internal/review/store"
	"bulwark/internal/task/models"
	"bulwark/internal/task/service/mocks"
	taskstore "bulwark/internal/task/store"
	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ctx      context.Context
	now      time.Time
	tasks    *taskstore.InMemory
	comments *reviewstore.InMemoryComments
	board    *reviewstore.InMemoryBoard
	catalog  *mocks.MockCatalog
	notifier *mocks.MockNotifier
	profiles *mocks.MockProfileLookup
	sys      *catalog.AuditSystem
	service  *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 4, 2, 9, 0, 0, 0, time.Local)
	s.tasks = taskstore.NewInMemory()
	s.comments = reviewstore.NewInMemoryComments()
	s.board = reviewstore.NewInMemoryBoard()
	s.catalog = mocks.NewMockCatalog(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.profiles = mocks.NewMockProfileLookup(s.ctrl)
	s.sys = &catalog.AuditSystem{
		ID:               "sys-1",
		Name:             "CRM",
		OnlineTicketDept: "dept-7",
		AppAuditors:      []string{"20001"},
		SysDBAuditors:    []string{"20002"},
		TicketAuditors:   []string{"20002", "20003"},
	}
	s.catalog.EXPECT().TaskManager(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*catalog.TaskManager, error) {
			return &catalog.TaskManager{ID: id, SystemID: "sys-1"}, nil
		}).AnyTimes()
	s.catalog.EXPECT().System(gomock.Any(), "sys-1").Return(s.sys, nil).AnyTimes()
	s.catalog.EXPECT().Cadence(gomock.Any(), gomock.Any()).Return(period.Quarter, nil).AnyTimes()
	s.service = New(s.tasks, s.catalog, s.comments, s.board, s.notifier, s.profiles,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return s.now }),
		WithAuditUsers([]string{"10001", "10002"}),
		WithReportHost("https://bulwark.test/"),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// seed stores a task of 2024年Q1 under its own manager, so tasks seeded in
// one test are siblings and never collide on (manager, period).
func (s *ServiceSuite) seed(id string, status models.Status) *models.Task {
	t := &models.Task{
		ID:            id,
		TaskManagerID: "tm-" + id,
		Period:        "2024年Q1",
		Status:        status,
		CreatedAt:     time.Date(2024, 1, 1, 2, 0, 0, 0, time.Local),
	}
	s.Require().NoError(s.tasks.Create(s.ctx, t))
	return t
}

func (s *ServiceSuite) status(id string) models.Status {
	t, err := s.tasks.FindByID(s.ctx, id)
	s.Require().NoError(err)
	return t.Status
}

func (s *ServiceSuite) whole(id, taskID string, rt catalog.ReviewType) {
	s.Require().NoError(s.comments.Add(s.ctx, &review.Comment{
		ID: id, TaskID: taskID, Reviewer: "alice", ReviewType: rt, Content: "ok", CreatedAt: s.now,
	}))
}

func (s *ServiceSuite) TestTransitionRules() {
	s.Run("same status is a no-op without pushes", func() {
		s.seed("t-same", models.StatusStarted)
		got, err := s.service.Transition(s.ctx, "t-same", models.StatusStarted)
		s.Require().NoError(err)
		s.Equal(models.StatusStarted, got.Status)
		s.Nil(got.StartTime)
	})

	s.Run("not started cannot jump to finished", func() {
		s.seed("t-skip", models.StatusNotStarted)
		_, err := s.service.Transition(s.ctx, "t-skip", models.StatusFinished)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidRequest))
		s.Equal("状态变更非法: 待启动->已完成", dErrors.MessageOf(err))
		s.Equal(models.StatusNotStarted, s.status("t-skip"))
	})

	s.Run("finished cannot be paused", func() {
		s.seed("t-fin", models.StatusFinished)
		_, err := s.service.Transition(s.ctx, "t-fin", models.StatusPause)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidRequest))
	})

	s.Run("rank cannot go down", func() {
		s.seed("t-down", models.StatusUnderReview)
		_, err := s.service.Transition(s.ctx, "t-down", models.StatusStarted)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidRequest))
	})

	s.Run("unknown task", func() {
		_, err := s.service.Transition(s.ctx, "missing", models.StatusStarted)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("finishing stamps finished time", func() {
		s.seed("t-done", models.StatusNotAudited)
		got, err := s.service.Transition(s.ctx, "t-done", models.StatusFinished)
		s.Require().NoError(err)
		s.Require().NotNil(got.FinishedTime)
		s.True(got.FinishedTime.Equal(s.now))
	})
}

func (s *ServiceSuite) TestStartPushesAuditorsAndTicketAuditors() {
	s.seed("t-1", models.StatusNotStarted)

	s.notifier.EXPECT().Enqueue(gomock.Any(), notifymodels.KindTaskStarted,
		"您好，合规审阅已开始，请登录 https://bulwark.test/report/newreview/t-1 进行审阅",
		[]string{"20001", "20002"}).Return(nil)
	s.notifier.EXPECT().EnqueueOnce(gomock.Any(), "tic:dept-7:2024年Q1", defaultTicketMarkerTTL,
		notifymodels.KindTicketStarted,
		"您好，合规审阅(上线工单)已开始，请登录 https://bulwark.test/report/newreview/t-1 进行审阅",
		[]string{"20003"}).Return(true, nil)

	got, err := s.service.Transition(s.ctx, "t-1", models.StatusStarted)
	s.Require().NoError(err)
	s.Equal(models.StatusStarted, got.Status)
	s.Require().NotNil(got.StartTime)
	s.True(got.StartTime.Equal(s.now))
}

func (s *ServiceSuite) TestStartSkipsTicketPushWhenSiblingStarted() {
	first := s.seed("t-1", models.StatusNotStarted)
	second := s.seed("t-2", models.StatusNotStarted)
	s.Require().NotEqual(first.TaskManagerID, second.TaskManagerID)
	sibs, err := s.tasks.ListByPeriod(s.ctx, "2024年Q1", "t-1")
	s.Require().NoError(err)
	s.Require().Len(sibs, 1)
	s.Require().NoError(s.tasks.UpdateStatus(s.ctx, "t-2", models.StatusNotStarted, models.StatusUnderReview, nil, nil))

	s.notifier.EXPECT().Enqueue(gomock.Any(), notifymodels.KindTaskStarted, gomock.Any(), gomock.Any()).Return(nil)

	_, err = s.service.Transition(s.ctx, "t-1", models.StatusStarted)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestSeedsInOneTestDoNotCollide() {
	for _, id := range []string{"t-a", "t-b", "t-c"} {
		s.seed(id, models.StatusNotStarted)
	}
	dup := &models.Task{ID: "t-dup", TaskManagerID: "tm-t-a", Period: "2024年Q1", Status: models.StatusNotStarted}
	s.ErrorIs(s.tasks.Create(s.ctx, dup), sentinel.ErrConflict)
}

func (s *ServiceSuite) TestPushFailureDoesNotFailTransition() {
	s.seed("t-1", models.StatusNotStarted)
	s.notifier.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("outbox down"))

	got, err := s.service.Transition(s.ctx, "t-1", models.StatusStarted)
	s.Require().NoError(err)
	s.Equal(models.StatusStarted, got.Status)
	s.Equal(models.StatusStarted, s.status("t-1"))
}

func (s *ServiceSuite) TestEarlyStartRejected() {
	s.now = time.Date(2024, 3, 20, 9, 0, 0, 0, time.Local)
	s.seed("t-1", models.StatusNotStarted)

	_, err := s.service.Transition(s.ctx, "t-1", models.StatusStarted)
	s.Require().Error(err)
	s.Equal(models.EarlyStart, dErrors.MessageOf(err))
	s.Equal(models.StatusNotStarted, s.status("t-1"))

	s.Run("debug mode lets it through", func() {
		s.service.debug = true
		defer func() { s.service.debug = false }()
		s.notifier.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().EnqueueOnce(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		_, err := s.service.Transition(s.ctx, "t-1", models.StatusStarted)
		s.Require().NoError(err)
	})
}

func (s *ServiceSuite) TestRecoveryPurgesTaskComments() {
	s.seed("t-1", models.StatusPause)
	s.whole("c1", "t-1", catalog.ReviewApp)
	s.whole("c2", "t-other", catalog.ReviewApp)
	s.Require().NoError(s.comments.Add(s.ctx, &review.Comment{
		ID: "c3", Dept: "dept-7", Period: "2024年Q1", Reviewer: "bob",
		ReviewType: catalog.ReviewTicket, Content: "ok",
	}))
	s.Require().NoError(s.board.Add(s.ctx, &review.BoardEntry{ID: "b1", TaskID: "t-1", ReviewType: catalog.ReviewApp}))

	got, err := s.service.Transition(s.ctx, "t-1", models.StatusNotStarted)
	s.Require().NoError(err)
	s.Equal(models.StatusNotStarted, got.Status)

	left, err := s.comments.List(s.ctx,
		review.Scope{TaskID: "t-1", ReviewType: catalog.ReviewApp},
		review.Scope{TaskID: "t-other", ReviewType: catalog.ReviewApp},
		review.Scope{Dept: "dept-7", Period: "2024年Q1", ReviewType: catalog.ReviewTicket},
	)
	s.Require().NoError(err)
	ids := make([]string, 0, len(left))
	for _, c := range left {
		ids = append(ids, c.ID)
	}
	s.ElementsMatch([]string{"c2", "c3"}, ids)
	entries, err := s.board.List(s.ctx, review.Scope{TaskID: "t-1", ReviewType: catalog.ReviewApp})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *ServiceSuite) TestCheckReviewStatus() {
	s.Run("partial review stays under review", func() {
		s.seed("t-part", models.StatusUnderReview)
		s.whole("p1", "t-part", catalog.ReviewApp)
		s.whole("p2", "t-part", catalog.ReviewSysDB)

		got, err := s.service.CheckReviewStatus(s.ctx, "t-part")
		s.Require().NoError(err)
		s.Equal(models.StatusUnderReview, got.Status)
	})

	s.Run("first review moves started to under review", func() {
		s.seed("t-first", models.StatusStarted)
		s.whole("f1", "t-first", catalog.ReviewSysDB)

		got, err := s.service.CheckReviewStatus(s.ctx, "t-first")
		s.Require().NoError(err)
		s.Equal(models.StatusUnderReview, got.Status)
	})

	s.Run("no reviews fall back to started", func() {
		s.seed("t-none", models.StatusUnderReview)
		got, err := s.service.CheckReviewStatus(s.ctx, "t-none")
		s.Require().NoError(err)
		s.Equal(models.StatusStarted, got.Status)
	})

	s.Run("paused tasks are left alone", func() {
		s.seed("t-pause", models.StatusPause)
		got, err := s.service.CheckReviewStatus(s.ctx, "t-pause")
		s.Require().NoError(err)
		s.Equal(models.StatusPause, got.Status)
	})
}

func (s *ServiceSuite) TestCheckReviewStatusCompletesWithTicketDeptComment() {
	s.seed("t-1", models.StatusUnderReview)
	s.whole("c1", "t-1", catalog.ReviewApp)
	s.whole("c2", "t-1", catalog.ReviewSysDB)
	s.Require().NoError(s.comments.Add(s.ctx, &review.Comment{
		ID: "c3", Dept: "dept-7", Period: "2024年Q1", Reviewer: "carol",
		ReviewType: catalog.ReviewTicket, Content: "ok",
	}))

	s.notifier.EXPECT().Enqueue(gomock.Any(), notifymodels.KindTaskReviewed,
		"CRM2024年Q1审阅报告已审阅，请登录 https://bulwark.test/report/newreview/t-1 确认",
		[]string{"10001", "10002"}).Return(nil)

	got, err := s.service.CheckReviewStatus(s.ctx, "t-1")
	s.Require().NoError(err)
	s.Equal(models.StatusNotAudited, got.Status)
	s.Equal(models.StatusNotAudited, s.status("t-1"))

	// idempotent: a second check changes nothing and pushes nothing
	got, err = s.service.CheckReviewStatus(s.ctx, "t-1")
	s.Require().NoError(err)
	s.Equal(models.StatusNotAudited, got.Status)
}

func (s *ServiceSuite) TestDetail() {
	s.Run("under review renders progress", func() {
		s.seed("t-1", models.StatusUnderReview)
		s.whole("c1", "t-1", catalog.ReviewApp)

		d, err := s.service.Detail(s.ctx, "t-1")
		s.Require().NoError(err)
		s.Equal(map[string]bool{"APP": true, "SYS_DB": false, "TICKET": false}, d.ReviewStatus)
		s.Equal("应用已审阅;数据库/操作系统、工单未审阅", d.StatusDesc)
		s.Equal("CRM2024年Q1审阅报告", d.Title)
		s.Equal("https://bulwark.test/report/newreview/t-1", d.ReportURL)
		s.False(d.IsPause)
		s.Empty(d.PauseTip)
	})

	s.Run("paused task names the audit users", func() {
		s.seed("t-2", models.StatusPause)
		s.profiles.EXPECT().Profiles(gomock.Any(), []string{"10001", "10002"}).Return(map[string]identity.Profile{
			"10001": {AccountID: "10001", Name: "张三"},
			"10002": {AccountID: "10002", Name: "李四"},
		})

		d, err := s.service.Detail(s.ctx, "t-2")
		s.Require().NoError(err)
		s.True(d.IsPause)
		s.Equal("该任务已被暂停, 详请咨询张三、李四", d.PauseTip)
		s.Equal("暂停", d.StatusDesc)
	})

	s.Run("pause tip falls back when the directory is silent", func() {
		s.seed("t-3", models.StatusPause)
		s.profiles.EXPECT().Profiles(gomock.Any(), gomock.Any()).Return(map[string]identity.Profile{})

		d, err := s.service.Detail(s.ctx, "t-3")
		s.Require().NoError(err)
		s.Equal("该任务已被暂停, 详请咨询合规同事", d.PauseTip)
	})
}

func (s *ServiceSuite) TestConcurrentUpdateIsConflict() {
	store := mocks.NewMockStore(s.ctrl)
	svc := New(store, s.catalog, s.comments, s.board, s.notifier, s.profiles,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return s.now }),
	)
	store.EXPECT().FindByID(gomock.Any(), "t-1").Return(&models.Task{
		ID: "t-1", TaskManagerID: "tm-1", Period: "2024年Q1", Status: models.StatusNotAudited,
	}, nil)
	store.EXPECT().UpdateStatus(gomock.Any(), "t-1", models.StatusNotAudited, models.StatusFinished, nil, gomock.Not(gomock.Nil())).
		Return(sentinel.ErrConflict)

	_, err := svc.Transition(s.ctx, "t-1", models.StatusFinished)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}
