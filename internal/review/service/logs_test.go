package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	assetmodels "bulwark/internal/asset/models"
	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
	"bulwark/internal/review/models"
	dErrors "bulwark/pkg/domain-errors"
)

type LogFeedSuite struct {
	suite.Suite
	f   *fixture
	svc *FeedService
	ctx context.Context
}

func TestLogFeedSuite(t *testing.T) {
	suite.Run(t, new(LogFeedSuite))
}

func (s *LogFeedSuite) SetupTest() {
	s.f = newFixture(s.T(), gomock.NewController(s.T()))
	s.ctx = context.Background()
	s.f.directory(nil, map[string]identity.Profile{
		"dave":  {AccountID: "dave", Name: "Dave", Email: "dave@x.com"},
		"alice": {AccountID: "10001", Name: "Alice", Email: "alice@x.com"},
	})
	s.svc = s.f.feedService()

	at := func(day, hour int) time.Time { return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC) }
	logs := []*assetmodels.CommandLog{
		{ID: "os-1", Source: assetmodels.SourceOS, ServerName: "web-01", User: "dave", Command: "rm -rf /data",
			ExecutedAt: at(5, 10), HitPatterns: []string{"p-1"}, HitRuleAtoms: []string{"a-regex"}, RiskFlag: true},
		{ID: "os-2", Source: assetmodels.SourceOS, ServerName: "web-01", User: "dave", Command: "chmod 777 /etc",
			ExecutedAt: at(6, 10), HitPatterns: []string{"p-1"}, HitRuleAtoms: []string{"a-regex"}},
		{ID: "os-3", Source: assetmodels.SourceOS, ServerName: "web-01", User: "dave", Command: "ls",
			ExecutedAt: at(7, 10)},
		{ID: "db-1", Source: assetmodels.SourceDB, ServerName: "db-01", DBName: "pay", User: "erin", Command: "drop table t",
			ExecutedAt: at(8, 10), HitPatterns: []string{"p-1"}, HitRuleAtoms: []string{"a-regex"}},
		{ID: "os-bot", Source: assetmodels.SourceOS, ServerName: "web-01", User: "svc-bot", Command: "rm -rf /tmp/x",
			ExecutedAt: at(9, 10), HitPatterns: []string{"p-1"}, HitRuleAtoms: []string{"a-regex"}},
		{ID: "os-old", Source: assetmodels.SourceOS, ServerName: "web-01", User: "dave", Command: "rm -rf /",
			ExecutedAt: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), HitPatterns: []string{"p-1"}, HitRuleAtoms: []string{"a-regex"}},
	}
	for _, l := range logs {
		s.Require().NoError(s.f.assets.SaveCommandLog(s.ctx, l))
	}
	s.Require().NoError(s.f.assets.SaveAccessLog(s.ctx, &assetmodels.AccessLog{
		ID: "acc-1", BGName: "pay-bg", User: "alice", Method: "POST", Params: `{"a":1}`,
		Host: "pay.example.com", URL: "/refund", AccessedAt: at(3, 12),
	}))
	s.Require().NoError(s.f.assets.SaveAccessLog(s.ctx, &assetmodels.AccessLog{
		ID: "acc-2", BGName: "pay-bg", User: "alice", Method: "GET", Params: `{"a":1}`,
		Host: "pay.example.com", URL: "/orders", AccessedAt: at(4, 12),
	}))
	s.Require().NoError(s.f.snapshots.Replace(s.ctx, "task-1", nil, []string{"erin"}, fixedNow))
}

func (s *LogFeedSuite) TestSysDbSummary() {
	sum, err := s.svc.LogSummary(s.ctx, "task-1", catalog.DomainSysDB)
	s.Require().NoError(err)
	s.Require().Equal(2, sum.Count)

	dave, erin := sum.Results[0], sum.Results[1]
	s.Equal("dave", dave.OriginName)
	s.Equal("Dave", dave.Name)
	s.Equal("高危命令", dave.RuleAtomName)
	s.Equal(2, dave.Count)
	s.True(dave.PermRisk)
	s.Empty(dave.Risk)

	s.Equal("erin", erin.OriginName)
	s.Equal(1, erin.Count)
	s.True(erin.TransferRisk)
	s.Equal(models.UnknownProfile, erin.Risk)
}

func (s *LogFeedSuite) TestDomainSplitsSources() {
	sum, err := s.svc.LogSummary(s.ctx, "task-1", catalog.DomainDBA)
	s.Require().NoError(err)
	s.Require().Len(sum.Results, 1)
	s.Equal("erin", sum.Results[0].OriginName)

	sum, err = s.svc.LogSummary(s.ctx, "task-1", catalog.DomainSA)
	s.Require().NoError(err)
	s.Require().Len(sum.Results, 1)
	s.Equal("dave", sum.Results[0].OriginName)
}

func (s *LogFeedSuite) TestAppSummary() {
	sum, err := s.svc.LogSummary(s.ctx, "task-1", catalog.DomainApp)
	s.Require().NoError(err)
	s.Require().Len(sum.Results, 1)
	s.Equal(models.AppLogRule, sum.Results[0].RuleAtomName)
	s.Equal("Alice", sum.Results[0].Name)
	s.Equal(1, sum.Results[0].Count)
}

func (s *LogFeedSuite) TestUnsupportedDomain() {
	_, err := s.svc.LogSummary(s.ctx, "task-1", catalog.DomainTicket)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *LogFeedSuite) TestDetailPagesNewestFirst() {
	s.Require().NoError(s.f.comments.Add(s.ctx, &models.Comment{
		ID: "c1", TaskID: "task-1", ReviewType: catalog.ReviewSysDBLog, Reviewer: "bo", SingleID: "os-1", Content: "已核实",
	}))

	page1, err := s.svc.LogDetail(s.ctx, "task-1", catalog.DomainSysDB, "dave", "", 1, 1)
	s.Require().NoError(err)
	s.Equal(2, page1.Count)
	s.Require().Len(page1.Results, 1)
	s.Equal("os-2", page1.Results[0].ID)
	s.Empty(page1.Results[0].ReviewContent)
	s.Equal(models.SysDBLogColumns, page1.ShowColumns)

	page2, err := s.svc.LogDetail(s.ctx, "task-1", catalog.DomainSysDB, "dave", "", 2, 1)
	s.Require().NoError(err)
	s.Require().Len(page2.Results, 1)
	s.Equal("os-1", page2.Results[0].ID)
	s.Equal("已核实", page2.Results[0].ReviewContent)

	beyond, err := s.svc.LogDetail(s.ctx, "task-1", catalog.DomainSysDB, "dave", "", 5, 1)
	s.Require().NoError(err)
	s.Equal(2, beyond.Count)
	s.Empty(beyond.Results)
}

func (s *LogFeedSuite) TestDetailLookups() {
	s.Run("by log id", func() {
		d, err := s.svc.LogDetail(s.ctx, "task-1", catalog.DomainSysDB, "", "db-1", 0, 0)
		s.Require().NoError(err)
		s.Require().Len(d.Results, 1)
		s.Equal("pay", d.Results[0].DBName)
		s.Equal(string(assetmodels.SourceDB), d.Results[0].Type)
	})
	s.Run("neither user nor id", func() {
		d, err := s.svc.LogDetail(s.ctx, "task-1", catalog.DomainSysDB, "", "", 1, 10)
		s.Require().NoError(err)
		s.Zero(d.Count)
		s.Empty(d.Results)
	})
	s.Run("application writes only", func() {
		d, err := s.svc.LogDetail(s.ctx, "task-1", catalog.DomainApp, "alice", "", 1, 10)
		s.Require().NoError(err)
		s.Require().Len(d.Results, 1)
		s.Equal("/refund", d.Results[0].URL)
		s.Equal(models.AppLogColumns, d.ShowColumns)
	})
}
