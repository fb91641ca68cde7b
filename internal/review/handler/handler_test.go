package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Feeds,Comments

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/review/handler/mocks"
	"bulwark/internal/review/models"
	dErrors "bulwark/pkg/domain-errors"
)

type HandlerSuite struct {
	suite.Suite
	feeds    *mocks.MockFeeds
	comments *mocks.MockComments
	router   chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.feeds = mocks.NewMockFeeds(ctrl)
	s.comments = mocks.NewMockComments(ctrl)
	s.router = chi.NewRouter()
	New(s.feeds, s.comments, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestAccountFeedFilters() {
	want := models.Filter{Dept: "研发部-支付", NotReviewed: true, Roles: []string{"admin", "ops"}}
	s.feeds.EXPECT().AppAccounts(gomock.Any(), "task-1", want).Return(&models.Feed{
		UserCount: 1,
		Results:   []*models.Account{{OriginName: "alice", Name: "Alice"}},
	}, nil)

	rec := s.do(http.MethodGet, "/reviews/task-1/accounts/app?dept_name=%E7%A0%94%E5%8F%91%E9%83%A8-%E6%94%AF%E4%BB%98&is_reviewed=true&roles=admin,ops", "")
	s.Equal(http.StatusOK, rec.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.EqualValues(1, body["user_count"])
}

func (s *HandlerSuite) TestSysDbFeedNotFound() {
	s.feeds.EXPECT().SysDbAccounts(gomock.Any(), "nope", models.Filter{}).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "task not found"))

	rec := s.do(http.MethodGet, "/reviews/nope/accounts/sys-db", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "task not found")
}

func (s *HandlerSuite) TestLogDetailPaging() {
	s.Run("passes page parameters", func() {
		s.feeds.EXPECT().LogDetail(gomock.Any(), "task-1", catalog.DomainSysDB, "dave", "", 2, 5).
			Return(&models.LogDetail{Count: 7}, nil)
		rec := s.do(http.MethodGet, "/reviews/task-1/logs/SYS_DB/detail?user=dave&page=2&page_size=5", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"count":7`)
	})
	s.Run("rejects non numeric page", func() {
		rec := s.do(http.MethodGet, "/reviews/task-1/logs/SYS_DB/detail?user=dave&page=two", "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestLogSummaryUnsupportedDomain() {
	s.feeds.EXPECT().LogSummary(gomock.Any(), "task-1", catalog.Domain("TICKET")).
		Return(nil, dErrors.New(dErrors.CodeBadRequest, "unsupported log domain"))
	rec := s.do(http.MethodGet, "/reviews/task-1/logs/TICKET", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestAddComment() {
	s.Run("whole comment without single id", func() {
		s.comments.EXPECT().AddWhole(gomock.Any(), "task-1", catalog.ReviewApp, "权限合理").
			Return(&models.Comment{ID: "c-1", TaskID: "task-1", ReviewType: catalog.ReviewApp, Content: "权限合理"}, nil)
		rec := s.do(http.MethodPost, "/reviews/task-1/comments", `{"review_type":"APP","content":"权限合理"}`)
		s.Equal(http.StatusCreated, rec.Code)
	})
	s.Run("single comment", func() {
		s.comments.EXPECT().AddSingle(gomock.Any(), "task-1", catalog.ReviewApp, "alice", "Alice", "ok").
			Return(&models.Comment{ID: "c-2"}, nil)
		rec := s.do(http.MethodPost, "/reviews/task-1/comments", `{"review_type":"APP","content":"ok","single_id":"alice","single_desc":"Alice"}`)
		s.Equal(http.StatusCreated, rec.Code)
	})
	s.Run("closed review is a conflict", func() {
		s.comments.EXPECT().AddWhole(gomock.Any(), "task-1", catalog.ReviewApp, "again").
			Return(nil, dErrors.New(dErrors.CodeConflict, "审阅人该审阅已完成"))
		rec := s.do(http.MethodPost, "/reviews/task-1/comments", `{"review_type":"APP","content":"again"}`)
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "审阅人该审阅已完成")
	})
	s.Run("unknown fields are rejected", func() {
		rec := s.do(http.MethodPost, "/reviews/task-1/comments", `{"review_type":"APP","bogus":1}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestMessages() {
	s.comments.EXPECT().Messages(gomock.Any(), "task-1", catalog.ReviewSysDB).
		Return([]*models.BoardEntry{{Content: "请补充说明"}}, nil)
	rec := s.do(http.MethodGet, "/reviews/task-1/messages?review_type=SYS_DB", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "请补充说明")
}

func (s *HandlerSuite) TestReviewerGrant() {
	s.comments.EXPECT().RequestReviewerGrant(gomock.Any(), "task-1", catalog.DomainApp, "20001").Return(nil)
	rec := s.do(http.MethodPost, "/reviews/task-1/reviewer-grants", `{"server_kind":"APP","user":"20001"}`)
	s.Equal(http.StatusAccepted, rec.Code)
}

func (s *HandlerSuite) TestTemplates() {
	rec := s.do(http.MethodGet, "/rules/templates", "")
	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Results []map[string]any `json:"results"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Results, len(catalog.RuleTypes))
}
