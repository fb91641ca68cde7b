package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalog "bulwark/internal/catalog/models"
	identity "bulwark/internal/identity/models"
	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/review/service/mocks"
	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/requestcontext"
)

type CommentSuite struct {
	suite.Suite
	f        *fixture
	status   *mocks.MockStatusChecker
	notifier *mocks.MockNotifier
	svc      *CommentService
}

func TestCommentSuite(t *testing.T) {
	suite.Run(t, new(CommentSuite))
}

func (s *CommentSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.f = newFixture(s.T(), ctrl)
	s.f.directory(nil, map[string]identity.Profile{
		"20001": {AccountID: "20001", Name: "Nina", Email: "nina@x.com"},
	})
	s.status = mocks.NewMockStatusChecker(ctrl)
	s.notifier = mocks.NewMockNotifier(ctrl)
	s.svc = NewCommentService(CommentDeps{
		Tasks:      s.f.tasks,
		Catalog:    s.f.catalogService(),
		Identities: s.f.identities,
		Comments:   s.f.comments,
		Board:      s.f.board,
		Status:     s.status,
		Notifier:   s.notifier,
	},
		WithLogger(discard),
		WithClock(func() time.Time { return fixedNow }),
		WithAuditUsers([]string{"audit01"}),
	)
}

func as(accountID, email, name string) context.Context {
	return requestcontext.WithReviewer(context.Background(), requestcontext.ReviewerIdentity{
		AccountID: accountID, Email: email, Name: name,
	})
}

func (s *CommentSuite) TestRejections() {
	amy := as("10001", "amy@x.com", "Amy")
	tests := []struct {
		name string
		ctx  context.Context
		rt   catalog.ReviewType
		code dErrors.Code
		msg  string
	}{
		{"signed out", context.Background(), catalog.ReviewApp, dErrors.CodeUnauthorized, "请重新登录"},
		{"unknown review type", amy, catalog.ReviewType("NOPE"), dErrors.CodeBadRequest, "审阅类型错误"},
		{"not an auditor of the type", amy, catalog.ReviewSysDBLog, dErrors.CodeForbidden, "非该类型审阅人"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.AddSingle(tt.ctx, "task-1", tt.rt, "x", "", "ok")
			s.True(dErrors.HasCode(err, tt.code), "got %v", err)
			s.Equal(tt.msg, dErrors.MessageOf(err))
		})
	}

	_, err := s.svc.AddSingle(amy, "task-1", catalog.ReviewApp, "alice", "", "  ")
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *CommentSuite) TestSingleThenWholeClosesReview() {
	amy := as("10001", "amy@x.com", "Amy")

	c, err := s.svc.AddSingle(amy, "task-1", catalog.ReviewAppLog, "acc-1", "POST /refund", "正常操作")
	s.Require().NoError(err)
	s.Equal("amy", c.Reviewer)
	s.Equal("task-1", c.TaskID)
	s.Equal(catalog.ReviewAppLog, c.ReviewType)
	s.Equal(fixedNow, c.CreatedAt)

	s.status.EXPECT().CheckReviewStatus(gomock.Any(), "task-1").Return(nil, nil)
	whole, err := s.svc.AddWhole(amy, "task-1", catalog.ReviewApp, "权限合理")
	s.Require().NoError(err)
	s.True(whole.IsWhole())

	_, err = s.svc.AddSingle(amy, "task-1", catalog.ReviewApp, "bob", "", "再补一条")
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Equal("审阅人该审阅已完成", dErrors.MessageOf(err))

	listed, err := s.svc.ListComments(amy, "task-1", catalog.ReviewAppLog)
	s.Require().NoError(err)
	s.Len(listed, 1)
}

func (s *CommentSuite) TestWholeReportsStatusFailure() {
	s.status.EXPECT().CheckReviewStatus(gomock.Any(), "task-1").Return(nil, errors.New("db down"))
	_, err := s.svc.AddWhole(as("10002", "bo@x.com", "Bo"), "task-1", catalog.ReviewSysDB, "ok")
	s.Error(err)
}

func (s *CommentSuite) TestTicketCommentsKeyedByDeptAndPeriod() {
	tom := as("10003", "tom@x.com", "Tom")
	c, err := s.svc.AddSingle(tom, "task-1", catalog.ReviewOnlineTicket, "sam@x.com", "", "已核对")
	s.Require().NoError(err)
	s.Empty(c.TaskID)
	s.Equal("ot-1", c.Dept)
	s.Equal("2024年Q1", c.Period)

	c, err = s.svc.AddSingle(tom, "task-1", catalog.ReviewDeployTicket, "d-1", "", "已核对")
	s.Require().NoError(err)
	s.Equal("dp-1", c.Dept)
}

func (s *CommentSuite) TestMessageBoard() {
	_, err := s.svc.AddMessage(context.Background(), "task-1", catalog.ReviewApp, "hi")
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	anyone := as("30001", "", "Visitor")
	e, err := s.svc.AddMessage(anyone, "task-1", catalog.ReviewApp, "请补充说明")
	s.Require().NoError(err)
	s.Equal("30001", e.Author)

	got, err := s.svc.Messages(anyone, "task-1", catalog.ReviewApp)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("请补充说明", got[0].Content)

	got, err = s.svc.Messages(anyone, "task-1", catalog.ReviewSysDB)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *CommentSuite) TestRequestReviewerGrant() {
	amy := as("10001", "amy@x.com", "Amy")

	s.Run("pushes to audit users", func() {
		s.notifier.EXPECT().Enqueue(gomock.Any(), notifymodels.KindReviewerGrant,
			"您好，审阅人（Amy）申请增加业务线(支付)-应用系统审阅人：Nina(20001），请处理！",
			[]string{"audit01"}).Return(nil)
		s.NoError(s.svc.RequestReviewerGrant(amy, "task-1", catalog.DomainApp, "20001"))
	})

	tests := []struct {
		name    string
		ctx     context.Context
		domain  catalog.Domain
		account string
		code    dErrors.Code
		msg     string
	}{
		{"missing target", amy, catalog.DomainApp, "", dErrors.CodeBadRequest, "权限类型及待授权人不能为空"},
		{"signed out", context.Background(), catalog.DomainApp, "20001", dErrors.CodeUnauthorized, "请登录后再试"},
		{"applicant not auditor", amy, catalog.DomainSysDB, "20001", dErrors.CodeForbidden, "抱歉，您不是该权限类型审阅人，无权进行此操作"},
		{"already auditor", amy, catalog.DomainApp, "10001", dErrors.CodeConflict, "该申请人已经为审阅人，请刷新页面"},
		{"unknown target", amy, catalog.DomainApp, "99999", dErrors.CodeNotFound, "待授权人(99999)不存在"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.svc.RequestReviewerGrant(tt.ctx, "task-1", tt.domain, tt.account)
			s.True(dErrors.HasCode(err, tt.code), "got %v", err)
			s.Equal(tt.msg, dErrors.MessageOf(err))
		})
	}
}
