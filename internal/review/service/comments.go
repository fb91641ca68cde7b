package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	catalog "bulwark/internal/catalog/models"
	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/review/models"
	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/requestcontext"
)

// CommentDeps are the collaborators of a CommentService.
type CommentDeps struct {
	Tasks      TaskStore
	Catalog    Catalog
	Identities Identities
	Comments   CommentStore
	Board      BoardStore
	Status     StatusChecker
	Notifier   Notifier
}

// CommentService records reviewer judgements and board messages.
type CommentService struct {
	CommentDeps
	options
}

func NewCommentService(d CommentDeps, opts ...Option) *CommentService {
	return &CommentService{CommentDeps: d, options: newOptions(opts)}
}

// AddWhole records the reviewer's judgement of a whole review type and
// recomputes the task's review status.
func (s *CommentService) AddWhole(ctx context.Context, taskID string, rt catalog.ReviewType, content string) (*models.Comment, error) {
	c, err := s.add(ctx, taskID, rt, "", "", content)
	if err != nil {
		return nil, err
	}
	if _, err := s.Status.CheckReviewStatus(ctx, taskID); err != nil {
		return nil, err
	}
	return c, nil
}

// AddSingle records a judgement of one account, log or ticket user.
func (s *CommentService) AddSingle(ctx context.Context, taskID string, rt catalog.ReviewType, singleID, singleDesc, content string) (*models.Comment, error) {
	if singleID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "single id is required")
	}
	return s.add(ctx, taskID, rt, singleID, singleDesc, content)
}

func (s *CommentService) add(ctx context.Context, taskID string, rt catalog.ReviewType, singleID, singleDesc, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "审阅意见不能为空")
	}
	view, reviewer, err := s.authorize(ctx, taskID, rt)
	if err != nil {
		return nil, err
	}
	c := &models.Comment{
		ID:         uuid.NewString(),
		Reviewer:   reviewer,
		Content:    content,
		SingleID:   singleID,
		SingleDesc: singleDesc,
		CreatedAt:  s.now(),
	}
	models.ScopeFor(view.task.ID, view.task.Period, view.system, rt).Apply(c)
	if err := s.Comments.Add(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save comment")
	}
	kind := "single"
	if c.IsWhole() {
		kind = "whole"
	}
	s.metrics.IncComment(string(rt), kind)
	s.logger.InfoContext(ctx, "review comment added",
		"task_id", taskID,
		"review_type", rt,
		"reviewer", reviewer,
		"single_id", singleID,
	)
	return c, nil
}

// authorize checks the caller reviews rt for the task's system and has not
// closed that review yet. It returns the stored reviewer name.
func (s *CommentService) authorize(ctx context.Context, taskID string, rt catalog.ReviewType) (*taskView, string, error) {
	who := requestcontext.Reviewer(ctx)
	if who.AccountID == "" {
		return nil, "", dErrors.New(dErrors.CodeUnauthorized, "请重新登录")
	}
	if !rt.IsValid() {
		return nil, "", dErrors.New(dErrors.CodeBadRequest, "审阅类型错误")
	}
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, "", err
	}
	group := rt.Group()
	if !view.system.IsAuditor(group, who.AccountID) {
		return nil, "", dErrors.New(dErrors.CodeForbidden, "非该类型审阅人")
	}
	reviewer := reviewerName(who)
	done, err := s.Comments.HasWhole(ctx, models.ScopeFor(view.task.ID, view.task.Period, view.system, group), reviewer)
	if err != nil {
		return nil, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read comments")
	}
	if done {
		return nil, "", dErrors.New(dErrors.CodeConflict, "审阅人该审阅已完成")
	}
	return view, reviewer, nil
}

func reviewerName(who requestcontext.ReviewerIdentity) string {
	if i := strings.Index(who.Email, "@"); i > 0 {
		return who.Email[:i]
	}
	if who.Email != "" {
		return who.Email
	}
	return who.AccountID
}

// ListComments lists the comments of a review type on a task.
func (s *CommentService) ListComments(ctx context.Context, taskID string, rt catalog.ReviewType) ([]*models.Comment, error) {
	if !rt.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "审阅类型错误")
	}
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, err
	}
	return s.Comments.List(ctx, models.ScopeFor(view.task.ID, view.task.Period, view.system, rt))
}

// AddMessage leaves a board message. Any signed-in user may write.
func (s *CommentService) AddMessage(ctx context.Context, taskID string, rt catalog.ReviewType, content string) (*models.BoardEntry, error) {
	who := requestcontext.Reviewer(ctx)
	if who.AccountID == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "请重新登录")
	}
	if !rt.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "审阅类型错误")
	}
	if strings.TrimSpace(content) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "留言内容不能为空")
	}
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, err
	}
	scope := models.ScopeFor(view.task.ID, view.task.Period, view.system, rt)
	e := &models.BoardEntry{
		ID:         uuid.NewString(),
		TaskID:     scope.TaskID,
		Dept:       scope.Dept,
		Period:     scope.Period,
		Author:     reviewerName(who),
		ReviewType: rt,
		Content:    content,
		CreatedAt:  s.now(),
	}
	if err := s.Board.Add(ctx, e); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save message")
	}
	return e, nil
}

// Messages lists a review type's board entries.
func (s *CommentService) Messages(ctx context.Context, taskID string, rt catalog.ReviewType) ([]*models.BoardEntry, error) {
	if !rt.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "审阅类型错误")
	}
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return nil, err
	}
	return s.Board.List(ctx, models.ScopeFor(view.task.ID, view.task.Period, view.system, rt))
}

// RequestReviewerGrant asks the audit users to make accountID a reviewer of
// domain for the task's system. Only an existing reviewer of that domain may
// ask.
func (s *CommentService) RequestReviewerGrant(ctx context.Context, taskID string, domain catalog.Domain, accountID string) error {
	if taskID == "" || domain == "" || accountID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "权限类型及待授权人不能为空")
	}
	rt := catalog.ReviewType(domain)
	if !domain.IsValid() || !rt.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "审阅类型错误")
	}
	who := requestcontext.Reviewer(ctx)
	if who.AccountID == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "请登录后再试")
	}
	view, err := loadTaskView(ctx, s.Tasks, s.Catalog, taskID, s.now())
	if err != nil {
		return err
	}
	if !view.system.IsAuditor(rt, who.AccountID) {
		return dErrors.New(dErrors.CodeForbidden, "抱歉，您不是该权限类型审阅人，无权进行此操作")
	}
	if view.system.IsAuditor(rt, accountID) {
		return dErrors.New(dErrors.CodeConflict, "该申请人已经为审阅人，请刷新页面")
	}
	target := s.Identities.Profiles(ctx, []string{accountID})[accountID]
	if target.IsZero() {
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("待授权人(%s)不存在", accountID))
	}
	applicant := who.Name
	if applicant == "" {
		applicant = reviewerName(who)
	}
	content := fmt.Sprintf("您好，审阅人（%s）申请增加业务线(%s)-%s审阅人：%s(%s），请处理！",
		applicant, view.system.Name, domain.Description(), target.Name, accountID)
	if err := s.Notifier.Enqueue(ctx, notifymodels.KindReviewerGrant, content, s.auditUsers); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to queue notification")
	}
	s.logger.InfoContext(ctx, "reviewer grant requested",
		"task_id", taskID,
		"domain", domain,
		"applicant", who.AccountID,
		"account_id", accountID,
	)
	return nil
}
