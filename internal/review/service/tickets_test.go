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
	ticketmodels "bulwark/internal/ticket/models"
	dErrors "bulwark/pkg/domain-errors"
)

type TicketFeedSuite struct {
	suite.Suite
	f   *fixture
	svc *FeedService
	ctx context.Context
}

func TestTicketFeedSuite(t *testing.T) {
	suite.Run(t, new(TicketFeedSuite))
}

func (s *TicketFeedSuite) SetupTest() {
	s.f = newFixture(s.T(), gomock.NewController(s.T()))
	s.ctx = context.Background()
	s.f.directory(nil, map[string]identity.Profile{
		"sam@x.com": {AccountID: "20001", Name: "Sam", DeptName: "研发部-支付-核心", Email: "sam@x.com"},
		"dan@x.com": {AccountID: "20002", Name: "Dan", Email: "dan@x.com"},
	})
	s.svc = s.f.feedService()

	risky, safe := true, false
	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	deploys := []*ticketmodels.DeployRecord{
		{SourceID: "d1", CommitID: "c1", Deployer: "dan@x.com", TicketID: "T1", Risk: &risky},
		{SourceID: "d2", CommitID: "c2", Deployer: "eve@x.com", TicketID: "T1", Risk: &risky},
		{SourceID: "d3", CommitID: "c3", Deployer: "dan@x.com", TicketID: "T2", Risk: &safe},
		{SourceID: "d4", CommitID: "c4", Deployer: "frank@x.com", Risk: &risky},
		{SourceID: "d5", CommitID: "c5", Deployer: "dan@x.com", TicketID: "T3", Risk: &risky},
		{SourceID: "d6", CommitID: "c6", Deployer: "gil@x.com", Risk: &risky, AppKey: "other-api"},
	}
	for _, d := range deploys {
		d.Dept = "dp-1"
		d.DeployTime = at
		if d.AppKey == "" {
			d.AppKey = "pay-api"
		}
		s.f.tickets.PutDeploy(d)
	}
	s.f.tickets.PutTicket(&ticketmodels.OnlineTicket{TicketID: "T1", SubmitterEmail: "sam@x.com", Project: "pay, pay-web", Status: ticketmodels.StatusDone})
	s.f.tickets.PutTicket(&ticketmodels.OnlineTicket{TicketID: "T2", SubmitterEmail: "sam@x.com", Project: "pay", Status: ticketmodels.StatusReady})
	s.f.tickets.PutTicket(&ticketmodels.OnlineTicket{TicketID: "T3", SubmitterEmail: "zoe@x.com", Project: "pay", Status: "rejected"})
}

func (s *TicketFeedSuite) TestAggregatesPerPerson() {
	feed, err := s.svc.Tickets(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)
	s.Require().Len(feed.Results, 2)
	s.Equal([]string{"", "研发部-支付"}, feed.DeptNames)

	sam := feed.Results[0]
	s.Equal("sam@x.com", sam.Email)
	s.Equal("Sam", sam.Name)
	s.Equal("submitter", sam.Role)
	s.Equal("pay, pay-web", sam.Projects)
	s.Equal(2, sam.RiskDeployCount)
	s.Equal("Dan,eve@x.com", sam.Deployers)
	s.Equal([]string{"T1", "T2"}, sam.TicketIDs)

	frank := feed.Results[1]
	s.Equal("frank@x.com", frank.Email)
	s.Equal("deployer", frank.Role)
	s.Equal(1, frank.RiskDeployCount)
	s.Equal("frank@x.com", frank.Deployers)
}

func (s *TicketFeedSuite) TestReviewedFilter() {
	s.Require().NoError(s.f.comments.Add(s.ctx, &models.Comment{
		ID: "c1", Dept: "ot-1", Period: "2024年Q1", ReviewType: catalog.ReviewTicket,
		Reviewer: "tom", SingleID: "frank@x.com", Content: "已处理",
	}))

	feed, err := s.svc.Tickets(s.ctx, "task-1", models.Filter{NotReviewed: true})
	s.Require().NoError(err)
	s.Require().Len(feed.Results, 1)
	s.Equal("sam@x.com", feed.Results[0].Email)

	feed, err = s.svc.Tickets(s.ctx, "task-1", models.Filter{})
	s.Require().NoError(err)
	s.Equal("已处理", feed.Results[1].ReviewContent)
}

func (s *TicketFeedSuite) TestServerRoles() {
	s.Require().NoError(s.f.assets.SaveOSAccount(s.ctx, &assetmodels.OSAccount{ServerName: "web-01", User: "dave", RecordDate: lastDay}))
	s.Require().NoError(s.f.assets.SaveDBRole(s.ctx, &assetmodels.DBRole{ID: 1, ServerName: "db-01", User: "dave", Role: assetmodels.RoleDBHostOSAdmin, RecordDate: lastDay}))
	s.Require().NoError(s.f.assets.SaveDBRole(s.ctx, &assetmodels.DBRole{ID: 2, ServerName: "db-01", User: "dave", Role: assetmodels.RoleDBQuery, RecordDate: lastDay}))
	s.Require().NoError(s.f.assets.SaveDBRole(s.ctx, &assetmodels.DBRole{ID: 3, ServerName: "db-01", User: "erin", Role: "读写", RecordDate: lastDay}))

	s.Run("admin with query permission", func() {
		got, err := s.svc.ServerRoles(s.ctx, "task-1", "dave")
		s.Require().NoError(err)
		s.Equal(map[string]string{
			"web-01": assetmodels.RoleOSAdmin,
			"db-01":  "数据库主机操作系统管理员,查询权限",
		}, got.Results)
		s.Equal(map[string]int{assetmodels.RoleOSAdmin: 1, assetmodels.RoleDBHostOSAdmin: 1}, got.Stats)
		s.True(got.HasSearchPerm)
	})
	s.Run("plain grant", func() {
		got, err := s.svc.ServerRoles(s.ctx, "task-1", "erin")
		s.Require().NoError(err)
		s.Equal(map[string]string{"db-01": "读写"}, got.Results)
		s.Equal(0, got.Stats[assetmodels.RoleOSAdmin])
		s.False(got.HasSearchPerm)
	})
	s.Run("user required", func() {
		_, err := s.svc.ServerRoles(s.ctx, "task-1", "")
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}
