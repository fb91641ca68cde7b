package service

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks Catalog,AnnotationStore,SnapshotStore,ActivityStore,EmploymentChecker,AccountLookup,TransferLog,TaskLister,Notifier

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	assetmodels "bulwark/internal/asset/models"
	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	catalogservice "bulwark/internal/catalog/service"
	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/period"
	"bulwark/internal/risk/models"
	"bulwark/internal/risk/ports"
	portmocks "bulwark/internal/risk/ports/mocks"
	"bulwark/internal/risk/service/mocks"
	riskstore "bulwark/internal/risk/store"
	taskmodels "bulwark/internal/task/models"
	taskstore "bulwark/internal/task/store"
)

type HandlersSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ctx         context.Context
	now         time.Time
	day         time.Time
	catalog     *mocks.MockCatalog
	annotations *mocks.MockAnnotationStore
	domainSet   *portmocks.MockDomainSet
	app         *portmocks.MockDomain
	os          *portmocks.MockDomain
	db          *portmocks.MockDomain
	opts        []Option
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	s.day = period.Yesterday(s.now)
	s.catalog = mocks.NewMockCatalog(s.ctrl)
	s.annotations = mocks.NewMockAnnotationStore(s.ctrl)
	s.domainSet = portmocks.NewMockDomainSet(s.ctrl)
	s.app = portmocks.NewMockDomain(s.ctrl)
	s.os = portmocks.NewMockDomain(s.ctrl)
	s.db = portmocks.NewMockDomain(s.ctrl)
	s.app.EXPECT().Kind().Return(catalog.DomainApp).AnyTimes()
	s.os.EXPECT().Kind().Return(catalog.DomainSA).AnyTimes()
	s.db.EXPECT().Kind().Return(catalog.DomainDBA).AnyTimes()
	s.opts = []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return s.now }),
	}
}

func (s *HandlersSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlersSuite) expectDomains() {
	s.domainSet.EXPECT().For("sys-1", s.day).Return([]ports.Domain{s.app, s.os, s.db})
}

func (s *HandlersSuite) expectRiskTag(ids []string, validated bool) {
	for _, d := range []*portmocks.MockDomain{s.app, s.os, s.db} {
		d.EXPECT().UpdateRiskTag(gomock.Any(), ids, validated).Return(nil)
	}
}

func (s *HandlersSuite) TestMatrix() {
	s.Run("overlapping admins are judged pairwise", func() {
		s.expectDomains()
		s.app.EXPECT().AdminUsers(gomock.Any()).Return([]string{"1001", "1002"}, nil)
		s.os.EXPECT().AdminUsers(gomock.Any()).Return([]string{"1001", "1003"}, nil)
		s.db.EXPECT().AdminUsers(gomock.Any()).Return([]string{"1003", "1004"}, nil)

		s.annotations.EXPECT().Upsert(gomock.Any(), "sys-1", "1001", s.day, models.Matrix("兼具应用管理员、系统管理员")).Return(nil)
		s.annotations.EXPECT().Upsert(gomock.Any(), "sys-1", "1003", s.day, models.Matrix("")).Return(nil)
		s.expectRiskTag([]string{"1003"}, true)
		s.expectRiskTag([]string{"1001"}, false)

		h := NewMatrixHandler(s.domainSet, s.annotations, s.opts...)
		s.Require().NoError(h.Validate(s.ctx, "sys-1"))
	})

	s.Run("holder of all three is a violation", func() {
		s.expectDomains()
		for _, d := range []*portmocks.MockDomain{s.app, s.os, s.db} {
			d.EXPECT().AdminUsers(gomock.Any()).Return([]string{"1001"}, nil)
		}
		s.annotations.EXPECT().Upsert(gomock.Any(), "sys-1", "1001", s.day,
			models.Matrix("兼具应用管理员、系统管理员、数据库管理员")).Return(nil)
		s.expectRiskTag([]string{"1001"}, false)

		s.Require().NoError(NewMatrixHandler(s.domainSet, s.annotations, s.opts...).Validate(s.ctx, "sys-1"))
	})

	s.Run("admin lookup failure aborts", func() {
		s.expectDomains()
		s.app.EXPECT().AdminUsers(gomock.Any()).Return(nil, errors.New("boom"))

		err := NewMatrixHandler(s.domainSet, s.annotations, s.opts...).Validate(s.ctx, "sys-1")
		s.ErrorContains(err, "boom")
	})
}

func (s *HandlersSuite) TestMatrixRerunOnSameDayKeepsOneRow() {
	annotations := riskstore.NewInMemoryAnnotations()
	h := NewMatrixHandler(s.domainSet, annotations, s.opts...)

	var snapshots []map[string]*models.Annotation
	for range 2 {
		s.expectDomains()
		s.app.EXPECT().AdminUsers(gomock.Any()).Return([]string{"1001"}, nil)
		s.os.EXPECT().AdminUsers(gomock.Any()).Return([]string{"1001", "1003"}, nil)
		s.db.EXPECT().AdminUsers(gomock.Any()).Return([]string{"1003"}, nil)
		s.expectRiskTag([]string{"1003"}, true)
		s.expectRiskTag([]string{"1001"}, false)
		s.Require().NoError(h.Validate(s.ctx, "sys-1"))

		got, err := annotations.ForAccounts(s.ctx, "sys-1", s.day, nil)
		s.Require().NoError(err)
		snapshots = append(snapshots, got)
	}

	// the sanctioned OS and DB overlap writes nothing, so one row per run
	first, second := snapshots[0], snapshots[1]
	s.Require().Len(first, 1)
	s.Require().Len(second, 1)
	s.Require().Contains(second, "1001")
	s.Equal(first["1001"].MatrixRisk, second["1001"].MatrixRisk)
	s.Equal(first["1001"].StaffRisk, second["1001"].StaffRisk)
	s.Equal(first["1001"].NoUseRisk, second["1001"].NoUseRisk)
	s.True(first["1001"].RecordDate.Equal(second["1001"].RecordDate))
	s.Equal("兼具应用管理员、系统管理员", second["1001"].MatrixRisk)

	systems, err := annotations.SystemsWithMatrixRisk(s.ctx, s.day)
	s.Require().NoError(err)
	s.Equal([]string{"sys-1"}, systems)
}

func (s *HandlersSuite) TestResign() {
	directory := mocks.NewMockEmploymentChecker(s.ctrl)
	s.expectDomains()
	s.app.EXPECT().AllUsers(gomock.Any()).Return([]string{"1001", "1002"}, nil)
	s.os.EXPECT().AllUsers(gomock.Any()).Return([]string{"1002", "1003"}, nil)
	s.db.EXPECT().AllUsers(gomock.Any()).Return(nil, nil)

	directory.EXPECT().IsEmployed(gomock.Any(), "1001").Return(true, nil)
	directory.EXPECT().IsEmployed(gomock.Any(), "1002").Return(false, nil)
	directory.EXPECT().IsEmployed(gomock.Any(), "1003").Return(false, errors.New("directory down"))

	s.expectRiskTag([]string{"1002"}, false)
	s.annotations.EXPECT().Upsert(gomock.Any(), "sys-1", "1002", s.day, models.Staff(models.ReasonResigned)).Return(nil)

	h := NewResignHandler(s.domainSet, s.annotations, directory, s.opts...)
	s.Require().NoError(h.Validate(s.ctx, "sys-1"))
}

func (s *HandlersSuite) TestDormancy() {
	s.Run("skipped without a NO_USE atom", func() {
		s.catalog.EXPECT().SystemHasRule(gomock.Any(), "sys-1", catalog.RuleNoUse).Return(false, nil)
		h := NewDormancyHandler(s.catalog, assetstore.NewInMemory(), riskstore.NewInMemoryAnnotations(), s.opts)
		s.Require().NoError(h.Validate(s.ctx, "sys-1"))
	})

	s.Run("idle accounts are annotated and flagged", func() {
		assets := assetstore.NewInMemory()
		annotations := riskstore.NewInMemoryAnnotations()
		for _, u := range []string{"idle@example.com", "busy@example.com", "never@example.com", "white@example.com"} {
			s.Require().NoError(assets.SaveAppRole(s.ctx, &assetmodels.AppRole{BGName: "pay", Role: "viewer", User: u, RecordDate: s.day}))
		}
		today := period.Day(s.now)
		for _, l := range []*assetmodels.AccessLog{
			{ID: "l1", BGName: "pay", User: "idle@example.com", AccessedAt: today.Add(-45*24*time.Hour + time.Minute).Add(-time.Hour)},
			{ID: "l2", BGName: "pay", User: "busy@example.com", AccessedAt: today.Add(-44*24*time.Hour - time.Hour)},
			{ID: "l3", BGName: "pay", User: "white@example.com", AccessedAt: today.AddDate(0, 0, -100)},
		} {
			s.Require().NoError(assets.SaveAccessLog(s.ctx, l))
		}
		s.catalog.EXPECT().SystemHasRule(gomock.Any(), "sys-1", catalog.RuleNoUse).Return(true, nil)
		s.catalog.EXPECT().AssetNames(gomock.Any(), "sys-1", catalog.DomainApp).Return([]string{"pay"}, nil)

		h := NewDormancyHandler(s.catalog, assets, annotations, s.opts, WithWhiteUsers([]string{"white@example.com"}))
		s.Require().NoError(h.Validate(s.ctx, "sys-1"))

		got, err := annotations.ForAccounts(s.ctx, "sys-1", s.day, nil)
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal("已有45天未操作", got["idle@example.com"].NoUseRisk)

		rows, err := assets.AppRoles(s.ctx, assetstore.SnapshotQuery{Day: s.day, BGNames: []string{"pay"}, Users: []string{"idle@example.com"}})
		s.Require().NoError(err)
		s.Require().Len(rows, 1)
		s.True(rows[0].RiskFlag)
		s.Equal([]string{"sys-1"}, rows[0].RiskSystems)

		rows, err = assets.AppRoles(s.ctx, assetstore.SnapshotQuery{Day: s.day, BGNames: []string{"pay"}, Users: []string{"never@example.com"}})
		s.Require().NoError(err)
		s.False(rows[0].RiskFlag)

		// a second run of the same day rewrites the same row
		s.catalog.EXPECT().SystemHasRule(gomock.Any(), "sys-1", catalog.RuleNoUse).Return(true, nil)
		s.catalog.EXPECT().AssetNames(gomock.Any(), "sys-1", catalog.DomainApp).Return([]string{"pay"}, nil)
		s.Require().NoError(h.Validate(s.ctx, "sys-1"))

		again, err := annotations.ForAccounts(s.ctx, "sys-1", s.day, nil)
		s.Require().NoError(err)
		s.Require().Len(again, 1)
		s.Equal(got["idle@example.com"].NoUseRisk, again["idle@example.com"].NoUseRisk)

		rows, err = assets.AppRoles(s.ctx, assetstore.SnapshotQuery{Day: s.day, BGNames: []string{"pay"}, Users: []string{"idle@example.com"}})
		s.Require().NoError(err)
		s.Equal([]string{"sys-1"}, rows[0].RiskSystems)
	})
}

func (s *HandlersSuite) TestJobTransfer() {
	tasks := mocks.NewMockTaskLister(s.ctrl)
	transfers := mocks.NewMockTransferLog(s.ctrl)
	accounts := mocks.NewMockAccountLookup(s.ctrl)
	snapshots := mocks.NewMockSnapshotStore(s.ctrl)
	h := NewJobTransferHandler(s.catalog, s.domainSet, tasks, transfers, accounts, snapshots, s.opts...)

	s.Run("no managers means nothing to do", func() {
		s.catalog.EXPECT().TaskManagersBySystem(gomock.Any(), "sys-1").Return(nil, nil)
		s.Require().NoError(h.Validate(s.ctx, "sys-1"))
	})

	s.Run("transfers in the task window are snapshotted", func() {
		created := time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)
		s.catalog.EXPECT().TaskManagersBySystem(gomock.Any(), "sys-1").Return([]*catalog.TaskManager{{ID: "m-1"}}, nil)
		tasks.EXPECT().ListUnfinished(gomock.Any(), []string{"m-1"}).Return([]*taskmodels.Task{
			{ID: "t-1", TaskManagerID: "m-1", CreatedAt: created},
			{ID: "t-2", TaskManagerID: "m-1", CreatedAt: created},
		}, nil)
		s.expectDomains()
		s.app.EXPECT().AllUsers(gomock.Any()).Return([]string{"1001", "1002"}, nil)
		s.os.EXPECT().AllUsers(gomock.Any()).Return(nil, nil)
		s.db.EXPECT().AllUsers(gomock.Any()).Return([]string{"1003"}, nil)

		quarterStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
		s.catalog.EXPECT().Cadence(gomock.Any(), "m-1").Return(period.Quarter, nil).Times(2)
		gomock.InOrder(
			transfers.EXPECT().AccountIDsBetween(gomock.Any(), quarterStart, s.now).Return([]string{"1003", "9999"}, nil),
			transfers.EXPECT().AccountIDsBetween(gomock.Any(), quarterStart, s.now).Return([]string{"8888"}, nil),
		)
		accounts.EXPECT().EmailPrefixes(gomock.Any(), []string{"1003"}).Return([]string{"carol"}, nil)
		accounts.EXPECT().AliasNames(gomock.Any(), "sys-1", []string{"1003"}).Return([]string{"ops"}, nil)
		snapshots.EXPECT().Replace(gomock.Any(), "t-1", []string{"1003", "ops"}, []string{"carol", "ops"}, s.now).Return(nil)

		s.Require().NoError(h.Validate(s.ctx, "sys-1"))
	})
}

type stubHandler struct {
	name  string
	err   error
	calls *[]string
}

func (h stubHandler) Name() string { return h.name }

func (h stubHandler) Validate(_ context.Context, systemID string) error {
	*h.calls = append(*h.calls, h.name+":"+systemID)
	return h.err
}

func (s *HandlersSuite) TestRunnerOrderAndErrors() {
	var calls []string
	r := NewRunner(s.catalog, []Handler{
		stubHandler{name: "matrix", calls: &calls},
		stubHandler{name: "resign", err: errors.New("directory down"), calls: &calls},
		stubHandler{name: "dormancy", calls: &calls},
	}, 1, s.opts...)

	s.catalog.EXPECT().Systems(gomock.Any()).Return([]*catalog.AuditSystem{{ID: "sys-1"}, {ID: "sys-2"}}, nil)

	err := r.Run(s.ctx)
	s.Require().Error(err)
	s.ErrorContains(err, "resign on sys-1")
	s.ErrorContains(err, "resign on sys-2")
	s.Equal([]string{
		"matrix:sys-1", "resign:sys-1", "dormancy:sys-1",
		"matrix:sys-2", "resign:sys-2", "dormancy:sys-2",
	}, calls)
}

func (s *HandlersSuite) TestReminder() {
	annotations := riskstore.NewInMemoryAnnotations()
	tasks := taskstore.NewInMemory()
	notifier := mocks.NewMockNotifier(s.ctrl)

	s.Require().NoError(annotations.Upsert(s.ctx, "sys-1", "1001", s.day, models.Matrix("兼具应用管理员、系统管理员")))
	s.Require().NoError(annotations.Upsert(s.ctx, "sys-2", "1002", s.day, models.Matrix("兼具应用管理员、数据库管理员")))
	s.Require().NoError(tasks.Create(s.ctx, &taskmodels.Task{
		ID: "t-1", TaskManagerID: "m-1", Period: "2024年3月", Status: taskmodels.StatusStarted,
		CreatedAt: time.Date(2024, 3, 1, 0, 5, 0, 0, time.Local),
	}))
	s.Require().NoError(tasks.Create(s.ctx, &taskmodels.Task{
		ID: "t-old", TaskManagerID: "m-1", Period: "2024年2月", Status: taskmodels.StatusStarted,
		CreatedAt: time.Date(2024, 2, 1, 0, 5, 0, 0, time.Local),
	}))

	s.catalog.EXPECT().System(gomock.Any(), "sys-1").Return(&catalog.AuditSystem{ID: "sys-1", Name: "支付"}, nil)
	s.catalog.EXPECT().System(gomock.Any(), "sys-2").Return(&catalog.AuditSystem{ID: "sys-2", Name: "清结算"}, nil)
	s.catalog.EXPECT().TaskManagersBySystem(gomock.Any(), "sys-1").Return([]*catalog.TaskManager{{ID: "m-1"}}, nil)
	s.catalog.EXPECT().TaskManagersBySystem(gomock.Any(), "sys-2").Return(nil, nil)
	s.catalog.EXPECT().Cadence(gomock.Any(), "m-1").Return(period.Month, nil).AnyTimes()

	want := "### 请注意 ###\n以下业务线存在权限不相容情况, 请在合规平台中查看详情:\n" +
		"支付【 https://audit.example.com/report/newreview/t-1 】\n日期:2024-03-15"
	notifier.EXPECT().Enqueue(gomock.Any(), notifymodels.KindRiskReminder, want, []string{"auditor@example.com"}).Return(nil)

	r := NewReminder(annotations, s.catalog, tasks, notifier, []string{"auditor@example.com"}, "https://audit.example.com/", s.opts...)
	content, err := r.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(want, content)

	got, err := annotations.ForAccounts(s.ctx, "sys-1", s.day, nil)
	s.Require().NoError(err)
	s.Require().NotNil(got["1001"].LastRemind)
	got, err = annotations.ForAccounts(s.ctx, "sys-2", s.day, nil)
	s.Require().NoError(err)
	s.Nil(got["1002"].LastRemind)
}

func (s *HandlersSuite) TestLogScanner() {
	assets := assetstore.NewInMemory()
	exec := s.now.Add(-time.Hour)
	for _, l := range []*assetmodels.CommandLog{
		{ID: "c1", Source: assetmodels.SourceOS, ServerName: "web-01", User: "alice", Command: "sudo RM -rf /tmp/x", ExecutedAt: exec},
		{ID: "c2", Source: assetmodels.SourceOS, ServerName: "web-01", User: "alice", Command: "ls -la", ExecutedAt: exec},
		{ID: "c3", Source: assetmodels.SourceDB, ServerName: "db-01", DBName: "orders", User: "bob", Command: "DROP TABLE t", ExecutedAt: exec},
		{ID: "c4", Source: assetmodels.SourceOS, ServerName: "other-01", User: "eve", Command: "rm -rf /", ExecutedAt: exec},
	} {
		s.Require().NoError(assets.SaveCommandLog(s.ctx, l))
	}
	m, err := catalogservice.NewMatcher([]*catalog.RegexPattern{
		{ID: "p-rm", Name: "rm", Regex: `rm\s+-rf`},
		{ID: "p-drop", Name: "drop", Regex: `drop\s+table`},
	})
	s.Require().NoError(err)

	s.catalog.EXPECT().Systems(gomock.Any()).Return([]*catalog.AuditSystem{{ID: "sys-1"}, {ID: "sys-2"}}, nil)
	s.catalog.EXPECT().SystemRegexAtoms(gomock.Any(), "sys-1").Return([]catalogservice.RegexAtom{
		{Atom: &catalog.RuleAtom{ID: "a-danger"}, Matcher: m},
	}, nil)
	s.catalog.EXPECT().SystemRegexAtoms(gomock.Any(), "sys-2").Return(nil, nil)
	s.catalog.EXPECT().AssetNames(gomock.Any(), "sys-1", catalog.DomainSA).Return([]string{"web-01"}, nil)
	s.catalog.EXPECT().DBScope(gomock.Any(), "sys-1").Return(catalog.DBScope{ServerNames: []string{"db-01"}}, nil)

	scanner := NewLogScanner(s.catalog, assets, 2, s.opts...)
	n, err := scanner.Run(s.ctx, period.Day(s.now), s.now)
	s.Require().NoError(err)
	s.Equal(4, n)

	logs, err := assets.CommandLogs(s.ctx, assetstore.CommandQuery{Source: assetmodels.SourceOS, Servers: []string{"web-01"}, Start: period.Day(s.now), End: s.now})
	s.Require().NoError(err)
	s.Require().Len(logs, 2)
	byID := map[string]*assetmodels.CommandLog{}
	for _, l := range logs {
		byID[l.ID] = l
	}
	s.Equal([]string{"p-rm"}, byID["c1"].HitPatterns)
	s.Equal([]string{"a-danger"}, byID["c1"].HitRuleAtoms)
	s.True(byID["c1"].RiskFlag)
	s.False(byID["c2"].RiskFlag)

	rest, err := assets.UnscannedCommandLogs(s.ctx, period.Day(s.now), s.now, 0)
	s.Require().NoError(err)
	s.Empty(rest)
}
