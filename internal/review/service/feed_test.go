package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	assetmodels "bulwark/internal/asset/models"
	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
	"bulwark/internal/review/models"
	"bulwark/internal/review/service/mocks"
	riskmodels "bulwark/internal/risk/models"
	dErrors "bulwark/pkg/domain-errors"
)

type FeedSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	f    *fixture
	ctx  context.Context
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedSuite))
}

func (s *FeedSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newFixture(s.T(), s.ctrl)
	s.ctx = context.Background()
	s.f.directory(
		map[string][]string{"alice": {"10001"}, "bob": {"10002"}},
		map[string]identity.Profile{
			"10001": {AccountID: "10001", Name: "Alice", DeptName: "技术部-支付组-后端", Email: "alice@x.com"},
			"10002": {AccountID: "10002", Name: "Bob", DeptName: "运营部", Email: "bob@x.com"},
			"dave":  {AccountID: "dave", Name: "Dave", DeptName: "运维部", Email: "dave@x.com"},
		},
	)
	s.seedApp()
}

func (s *FeedSuite) seedApp() {
	row := func(user, role string, firstSeen time.Time, risky bool) {
		r := &assetmodels.AppRole{BGName: "pay-bg", User: user, Role: role, RecordDate: lastDay, FirstSeen: firstSeen, RiskFlag: risky}
		if risky {
			r.RiskSystems = []string{"sys-1"}
		}
		s.Require().NoError(s.f.assets.SaveAppRole(s.ctx, r))
	}
	row("alice", "admin", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true)
	row("alice", "viewer", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false)
	row("bob", "viewer", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false)
	row("carol", "viewer", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), false)
	row("svc-bot", "admin", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), true)

	s.Require().NoError(s.f.annotations.Upsert(s.ctx, "sys-1", "10001", lastDay, riskmodels.Matrix("兼任开发与运维")))
	// no permission risk on bob's rows, so this stays hidden
	s.Require().NoError(s.f.annotations.Upsert(s.ctx, "sys-1", "10002", lastDay, riskmodels.NoUse("超过45天未登录")))
	s.Require().NoError(s.f.positions.Save(s.ctx, &identity.PositionChange{
		ID: "pc-1", AccountID: "10002", Action: identity.ActionRehire,
		ModifiedAt: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	}))
	s.Require().NoError(s.f.assets.SaveAccessLog(s.ctx, &assetmodels.AccessLog{
		ID: "acc-1", BGName: "pay-bg", User: "alice", Method: "POST", Params: `{"amount":1}`,
		URL: "/refund", Host: "pay.example.com", AccessedAt: time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC),
	}))
}

func (s *FeedSuite) TestAppAccounts() {
	feed, err := s.f.feedService().AppAccounts(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)

	s.Require().Len(feed.Results, 3)
	s.Equal(3, feed.UserCount)
	s.Equal([]string{"", "技术部-支付组", "运营部"}, feed.DeptNames)
	s.Equal([]string{"admin", "viewer"}, feed.AllRoles)

	alice, bob, carol := feed.Results[0], feed.Results[1], feed.Results[2]
	s.Equal("alice", alice.OriginName)
	s.Equal("Alice", alice.Name)
	s.Equal("技术部-支付组", alice.DeptName)
	s.Equal("admin,viewer", alice.RolesText)
	s.Equal("兼任开发与运维", alice.RiskReason)
	s.Equal(models.LevelMatrix, alice.RiskLevel)
	s.True(alice.HasLogs)
	s.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), alice.Created)

	s.Equal("bob", bob.OriginName)
	s.Equal("该员工为返聘", bob.RiskReason)
	s.Equal(models.LevelTransfer, bob.RiskLevel)
	s.False(bob.HasLogs)

	s.Equal("carol", carol.OriginName)
	s.Empty(carol.Name)
	s.Equal(models.NoRiskLevel, carol.RiskLevel)
}

func (s *FeedSuite) TestAppAccountFilters() {
	s.Require().NoError(s.f.comments.Add(s.ctx, &models.Comment{
		ID: "c1", TaskID: "task-1", ReviewType: catalog.ReviewApp, Reviewer: "amy", SingleID: "bob", Content: "已确认",
	}))
	svc := s.f.feedService()

	s.Run("role subset narrows roles", func() {
		feed, err := svc.AppAccounts(s.ctx, "task-1", models.Filter{Roles: []string{"admin"}})
		s.Require().NoError(err)
		s.Require().Len(feed.Results, 1)
		s.Equal("alice", feed.Results[0].OriginName)
		s.Equal("admin", feed.Results[0].RolesText)
		s.Equal([]string{"admin", "viewer"}, feed.AllRoles)
	})
	s.Run("department", func() {
		feed, err := svc.AppAccounts(s.ctx, "task-1", models.Filter{Dept: "运营部"})
		s.Require().NoError(err)
		s.Require().Len(feed.Results, 1)
		s.Equal("bob", feed.Results[0].OriginName)
		s.Equal("已确认", feed.Results[0].ReviewContent)
		s.Equal([]string{"", "技术部-支付组", "运营部"}, feed.DeptNames)
	})
	s.Run("not reviewed", func() {
		feed, err := svc.AppAccounts(s.ctx, "task-1", models.Filter{NotReviewed: true})
		s.Require().NoError(err)
		s.Equal(2, feed.UserCount)
		for _, a := range feed.Results {
			s.NotEqual("bob", a.OriginName)
		}
	})
}

func (s *FeedSuite) TestAccountsMergePerCanonicalIdentity() {
	ctrl := gomock.NewController(s.T())
	f := newFixture(s.T(), ctrl)
	f.directory(
		map[string][]string{"alice": {"10001"}, "ops": {"10002", "10001"}},
		map[string]identity.Profile{
			"10001": {AccountID: "10001", Name: "Alice", DeptName: "技术部", Email: "alice@x.com"},
			"10002": {AccountID: "10002", Name: "Bob", DeptName: "运营部", Email: "bob@x.com"},
		},
	)
	row := func(user, role string, firstSeen time.Time, risky bool) {
		r := &assetmodels.AppRole{BGName: "pay-bg", User: user, Role: role, RecordDate: lastDay, FirstSeen: firstSeen, RiskFlag: risky}
		if risky {
			r.RiskSystems = []string{"sys-1"}
		}
		s.Require().NoError(f.assets.SaveAppRole(s.ctx, r))
	}
	row("10001", "admin", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), false)
	row("alice", "viewer", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), false)
	row("ops", "viewer", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true)
	s.Require().NoError(f.annotations.Upsert(s.ctx, "sys-1", "10002", lastDay, riskmodels.Staff("已离职")))
	s.Require().NoError(f.comments.Add(s.ctx, &models.Comment{
		ID: "c1", TaskID: "task-1", ReviewType: catalog.ReviewApp, Reviewer: "amy", SingleID: "alice", Content: "保留",
	}))

	feed, err := f.feedService().AppAccounts(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)
	s.Require().Len(feed.Results, 1)

	a := feed.Results[0]
	s.Equal("10001,10002", a.CanonicalID)
	s.Equal([]string{"10001", "alice", "ops"}, a.OriginTags)
	s.Equal("admin,viewer", a.RolesText)
	s.Equal(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), a.Created)
	s.Equal("已离职", a.RiskReason)
	s.Equal(models.LevelResigned, a.RiskLevel)
	s.Equal("Alice", a.Name)
	s.Equal("保留", a.ReviewContent)
}

func (s *FeedSuite) TestSysDbAccounts() {
	s.Require().NoError(s.f.assets.SaveOSAccount(s.ctx, &assetmodels.OSAccount{
		ServerName: "web-01", User: "dave", RecordDate: lastDay, RiskFlag: true, RiskSystems: []string{"sys-1"},
	}))
	s.Require().NoError(s.f.assets.SaveDBRole(s.ctx, &assetmodels.DBRole{
		ID: 1, ServerName: "db-01", User: "dave", Role: assetmodels.RoleDBQuery, RecordDate: lastDay,
	}))
	s.Require().NoError(s.f.assets.SaveDBRole(s.ctx, &assetmodels.DBRole{
		ID: 2, ServerName: "db-01", User: "erin", Role: "读写", RecordDate: lastDay,
	}))
	s.Require().NoError(s.f.annotations.Upsert(s.ctx, "sys-1", "dave", lastDay, riskmodels.NoUse("超过45天未使用")))
	s.Require().NoError(s.f.annotations.Upsert(s.ctx, "sys-1", "dave", lastDay, riskmodels.Staff("已离职")))

	feed, err := s.f.feedService().SysDbAccounts(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)
	s.Require().Len(feed.Results, 2)

	dave := feed.Results[0]
	s.Equal("dave", dave.OriginName)
	s.Equal("操作系统管理员,查询权限", dave.RolesText)
	// dormancy is only shown on application reviews
	s.Equal("已离职", dave.RiskReason)
	s.Equal(models.LevelResigned, dave.RiskLevel)

	s.Equal("erin", feed.Results[1].OriginName)
	s.Equal(models.NoRiskLevel, feed.Results[1].RiskLevel)
}

func (s *FeedSuite) TestUnknownTask() {
	_, err := s.f.feedService().AppAccounts(s.ctx, "missing", models.Filter{})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.f.feedService().AppAccounts(s.ctx, "", models.Filter{})
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *FeedSuite) TestFormatErrorDropsAccount() {
	positions := mocks.NewMockPositions(s.ctrl)
	positions.EXPECT().ChangesFor(gomock.Any(), "10002", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("hr unavailable"))
	positions.EXPECT().ChangesFor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()
	svc := s.f.feedService()
	svc.Positions = positions

	feed, err := svc.AppAccounts(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)
	s.Require().Len(feed.Results, 2)
	s.Equal("alice", feed.Results[0].OriginName)
	s.Equal("carol", feed.Results[1].OriginName)
}

func (s *FeedSuite) TestCacheMissStoresAccounts() {
	cache := mocks.NewMockFeedCache(s.ctrl)
	cache.EXPECT().Get(gomock.Any(), "APP:task-1:2024-04-01", gomock.Any()).Return(false, nil)
	cache.EXPECT().Set(gomock.Any(), "APP:task-1:2024-04-01", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, v any) error {
			s.Len(v.([]*models.Account), 3)
			return nil
		})

	feed, err := s.f.feedService(WithCache(cache)).AppAccounts(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)
	s.Len(feed.Results, 3)
}

func (s *FeedSuite) TestCacheHitSkipsAssembly() {
	cache := mocks.NewMockFeedCache(s.ctrl)
	cache.EXPECT().Get(gomock.Any(), "APP:task-1:2024-04-01", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
			*(dst.(*[]*models.Account)) = []*models.Account{
				{OriginName: "zed", Roles: []string{"admin"}, RiskLevel: models.NoRiskLevel},
			}
			return true, nil
		})

	feed, err := s.f.feedService(WithCache(cache)).AppAccounts(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)
	s.Require().Len(feed.Results, 1)
	s.Equal("zed", feed.Results[0].OriginName)
	s.Equal("admin", feed.Results[0].RolesText)
}

func (s *FeedSuite) TestCacheErrorFallsBackToAssembly() {
	cache := mocks.NewMockFeedCache(s.ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	feed, err := s.f.feedService(WithCache(cache)).AppAccounts(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)
	s.Len(feed.Results, 3)
}

func TestAssessRisk(t *testing.T) {
	ann := &riskmodels.Annotation{MatrixRisk: "m", StaffRisk: "s", NoUseRisk: "n"}
	tests := []struct {
		name      string
		perm      bool
		anns      []*riskmodels.Annotation
		transfer  string
		dormancy  bool
		known     bool
		wantText  string
		wantLevel int
	}{
		{"unknown profile", true, []*riskmodels.Annotation{ann}, "t", true, false, "", models.NoRiskLevel},
		{"all reasons in order", true, []*riskmodels.Annotation{ann}, "t", true, true, "m;s;n;t", models.LevelMatrix},
		{"dormancy hidden", true, []*riskmodels.Annotation{{NoUseRisk: "n"}}, "", false, true, "", models.NoRiskLevel},
		{"no permission risk keeps transfer", false, []*riskmodels.Annotation{ann}, "t", true, true, "t", models.LevelTransfer},
		{"staff and dormancy", true, []*riskmodels.Annotation{{StaffRisk: "s", NoUseRisk: "n"}}, "", true, true, "s;n", models.LevelResigned},
		{"union across ids", true, []*riskmodels.Annotation{{NoUseRisk: "n"}, {StaffRisk: "s", NoUseRisk: "n"}}, "", true, true, "s;n", models.LevelResigned},
		{"no annotations", true, nil, "", true, true, "", models.NoRiskLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, level := assessRisk(tt.perm, tt.anns, tt.transfer, tt.dormancy, tt.known)
			if text != tt.wantText || level != tt.wantLevel {
				t.Fatalf("assessRisk() = %q, %d; want %q, %d", text, level, tt.wantText, tt.wantLevel)
			}
		})
	}
}

func TestGroupByIdentity(t *testing.T) {
	canonical := map[string][]string{
		"alice": {"10001"},
		"ops":   {"10001", "10002"},
		"bob":   {"10002"},
		"zed":   {"20001"},
	}
	idsOf := func(tag string) []string {
		if ids, ok := canonical[tag]; ok {
			return ids
		}
		return []string{tag}
	}

	got := groupByIdentity([]string{"10001", "alice", "bob", "carol", "ops", "zed"}, idsOf)
	if len(got) != 3 {
		t.Fatalf("groupByIdentity() returned %d groups, want 3: %+v", len(got), got)
	}
	want := []identityGroup{
		{ids: []string{"10001", "10002"}, tags: []string{"10001", "alice", "bob", "ops"}},
		{ids: []string{"carol"}, tags: []string{"carol"}},
		{ids: []string{"20001"}, tags: []string{"zed"}},
	}
	for i := range want {
		if !slices.Equal(got[i].ids, want[i].ids) || !slices.Equal(got[i].tags, want[i].tags) {
			t.Fatalf("group %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
