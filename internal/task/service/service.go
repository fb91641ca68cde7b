// Package service drives audit tasks through their lifecycle and announces
// the transitions reviewers care about.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	catalog "bulwark/internal/catalog/models"
	notifymodels "bulwark/internal/notify/models"
	"bulwark/internal/period"
	review "bulwark/internal/review/models"
	"bulwark/internal/task/metrics"
	"bulwark/internal/task/models"
	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/platform/sentinel"
	"bulwark/pkg/platform/tx"
)

const defaultTicketMarkerTTL = 190 * 24 * time.Hour

// Service applies status changes to tasks.
type Service struct {
	tasks      Store
	catalog    Catalog
	comments   CommentStore
	board      BoardStore
	notifier   Notifier
	profiles   ProfileLookup
	tx         StoreTx
	logger     *slog.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
	debug      bool
	auditUsers []string
	reportHost string
	markerTTL  time.Duration
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithTx(t StoreTx) Option {
	return func(s *Service) {
		if t != nil {
			s.tx = t
		}
	}
}

// WithDebug lets tasks start before their period ends.
func WithDebug(debug bool) Option {
	return func(s *Service) {
		s.debug = debug
	}
}

// WithAuditUsers sets the compliance staff that confirm reviewed tasks.
func WithAuditUsers(ids []string) Option {
	return func(s *Service) {
		s.auditUsers = ids
	}
}

// WithReportHost sets the prefix of report links.
func WithReportHost(host string) Option {
	return func(s *Service) {
		s.reportHost = host
	}
}

func WithTicketMarkerTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.markerTTL = ttl
		}
	}
}

func New(
	tasks Store,
	cat Catalog,
	comments CommentStore,
	board BoardStore,
	notifier Notifier,
	profiles ProfileLookup,
	opts ...Option,
) *Service {
	s := &Service{
		tasks:     tasks,
		catalog:   cat,
		comments:  comments,
		board:     board,
		notifier:  notifier,
		profiles:  profiles,
		logger:    slog.Default(),
		now:       time.Now,
		markerTTL: defaultTicketMarkerTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = tx.NewManager(nil)
	}
	return s
}

// Transition moves a task to status to. Side effects are applied in the same
// unit of work as the status change; notifications are queued once it
// commits and never fail the transition.
func (s *Service) Transition(ctx context.Context, taskID string, to models.Status) (*models.Task, error) {
	var (
		task *models.Task
		from models.Status
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.load(txCtx, taskID)
		if err != nil {
			return err
		}
		from = t.Status
		if from == to {
			task = t
			return nil
		}
		if err := models.ValidateTransition(from, to); err != nil {
			s.metrics.IncRejected("illegal")
			return err
		}
		if to == models.StatusStarted && !s.debug {
			if err := s.ensurePeriodOver(txCtx, t); err != nil {
				return err
			}
		}

		now := s.now()
		var startTime, finishedTime *time.Time
		switch {
		case models.IsRecovery(from, to):
			if err := s.purge(txCtx, t.ID); err != nil {
				return err
			}
		case from == models.StatusNotStarted && to == models.StatusStarted:
			startTime = &now
		case to == models.StatusFinished:
			finishedTime = &now
		}
		if err := s.tasks.UpdateStatus(txCtx, t.ID, from, to, startTime, finishedTime); err != nil {
			return translateUpdate(err)
		}
		t.Status = to
		if startTime != nil {
			t.StartTime = startTime
		}
		if finishedTime != nil {
			t.FinishedTime = finishedTime
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	if from == to {
		return task, nil
	}

	s.metrics.IncTransition(string(from), string(to))
	s.logger.InfoContext(ctx, "task status changed",
		"task_id", task.ID,
		"from", from,
		"to", to,
	)
	s.announce(ctx, task, from, to)
	return task, nil
}

// CheckReviewStatus derives a task's status from its whole review comments:
// every whole type reviewed gives NOT_AUDITED, some give UNDER_REVIEW, none
// give STARTED. Tasks outside that range are left alone.
func (s *Service) CheckReviewStatus(ctx context.Context, taskID string) (*models.Task, error) {
	if taskID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "task id is required")
	}
	var (
		task *models.Task
		from models.Status
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.load(txCtx, taskID)
		if err != nil {
			return err
		}
		task, from = t, t.Status
		if !derivable(t.Status) {
			return nil
		}
		status, err := s.reviewStatus(txCtx, t)
		if err != nil {
			return err
		}
		target := models.StatusStarted
		if status.Any() {
			target = models.StatusUnderReview
		}
		if status.All() {
			target = models.StatusNotAudited
		}
		s.metrics.IncRecomputed(string(target))
		if target == t.Status {
			return nil
		}
		if err := s.tasks.UpdateStatus(txCtx, t.ID, t.Status, target, nil, nil); err != nil {
			return translateUpdate(err)
		}
		t.Status = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	if task.Status != from {
		s.logger.InfoContext(ctx, "task review status recomputed",
			"task_id", task.ID,
			"from", from,
			"to", task.Status,
		)
		if task.Status == models.StatusNotAudited {
			s.announce(ctx, task, models.StatusUnderReview, models.StatusNotAudited)
		}
	}
	return task, nil
}

func derivable(st models.Status) bool {
	return st == models.StatusStarted || st == models.StatusUnderReview || st == models.StatusNotAudited
}

// Detail renders the task header of a review page.
func (s *Service) Detail(ctx context.Context, taskID string) (*models.Detail, error) {
	t, err := s.load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	_, sys, err := s.owner(ctx, t)
	if err != nil {
		return nil, err
	}
	status, err := s.comments.ReviewStatus(ctx, t.ID, sys.OnlineTicketDept, t.Period)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read review status")
	}

	d := &models.Detail{
		ID:               t.ID,
		Status:           t.Status,
		StatusDesc:       t.Status.Description(),
		ReviewStatus:     make(map[string]bool, len(status)),
		ReviewStatusDesc: status.Render(),
		IsPause:          t.Status == models.StatusPause,
		Title:            models.Title(sys.Name, t.Period),
		Period:           t.Period,
		CreatedTime:      t.CreatedAt.Format(time.DateTime),
		ReportURL:        models.ReportURL(s.reportHost, t.ID),
	}
	for rt, ok := range status {
		d.ReviewStatus[string(rt)] = ok
	}
	if t.Status == models.StatusUnderReview {
		d.StatusDesc = status.Render()
	}
	if d.IsPause {
		d.PauseTip = s.pauseTip(ctx)
	}
	return d, nil
}

func (s *Service) pauseTip(ctx context.Context) string {
	var names []string
	if s.profiles != nil && len(s.auditUsers) > 0 {
		profiles := s.profiles.Profiles(ctx, s.auditUsers)
		for _, id := range s.auditUsers {
			if name := profiles[id].Name; name != "" {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return models.PauseTip + models.PauseFallback
	}
	return models.PauseTip + strings.Join(names, "、")
}

func (s *Service) load(ctx context.Context, taskID string) (*models.Task, error) {
	t, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "task not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load task")
	}
	return t, nil
}

func (s *Service) owner(ctx context.Context, t *models.Task) (*catalog.TaskManager, *catalog.AuditSystem, error) {
	m, err := s.catalog.TaskManager(ctx, t.TaskManagerID)
	if err != nil {
		return nil, nil, err
	}
	sys, err := s.catalog.System(ctx, m.SystemID)
	if err != nil {
		return nil, nil, err
	}
	return m, sys, nil
}

func (s *Service) reviewStatus(ctx context.Context, t *models.Task) (review.ReviewStatus, error) {
	_, sys, err := s.owner(ctx, t)
	if err != nil {
		return nil, err
	}
	status, err := s.comments.ReviewStatus(ctx, t.ID, sys.OnlineTicketDept, t.Period)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read review status")
	}
	return status, nil
}

func (s *Service) ensurePeriodOver(ctx context.Context, t *models.Task) error {
	cadence, err := s.catalog.Cadence(ctx, t.TaskManagerID)
	if err != nil {
		return err
	}
	_, end := period.Range(cadence, t.CreatedAt)
	if s.now().Before(end) {
		s.metrics.IncRejected("early_start")
		return dErrors.New(dErrors.CodeInvalidRequest, models.EarlyStart)
	}
	return nil
}

func (s *Service) purge(ctx context.Context, taskID string) error {
	comments, err := s.comments.PurgeTask(ctx, taskID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to purge review comments")
	}
	entries, err := s.board.PurgeTask(ctx, taskID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to purge message board")
	}
	s.logger.InfoContext(ctx, "task recovered",
		"task_id", taskID,
		"comments_purged", comments,
		"board_entries_purged", entries,
	)
	return nil
}

func translateUpdate(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, "task status changed concurrently, reload and retry")
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "task not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update task status")
}

// announce queues the push of a transition. Failures are logged only.
func (s *Service) announce(ctx context.Context, t *models.Task, from, to models.Status) {
	event, ok := models.EventFor(from, to)
	if !ok {
		return
	}
	if err := s.push(ctx, t, event); err != nil {
		s.logger.WarnContext(ctx, "task push failed",
			"task_id", t.ID,
			"event", event.Description(),
			"error", err,
		)
	}
}

func (s *Service) push(ctx context.Context, t *models.Task, event models.Event) error {
	_, sys, err := s.owner(ctx, t)
	if err != nil {
		return err
	}
	url := models.ReportURL(s.reportHost, t.ID)

	switch event {
	case models.EventReviewed:
		content := fmt.Sprintf(models.ReviewedContent, models.Title(sys.Name, t.Period), url)
		return s.notifier.Enqueue(ctx, notifymodels.KindTaskReviewed, content, s.auditUsers)
	case models.EventStarted:
		auditors := sys.AllAuditors()
		if err := s.notifier.Enqueue(ctx, notifymodels.KindTaskStarted, fmt.Sprintf(models.StartedContent, url), auditors); err != nil {
			return err
		}
		return s.pushTicketStart(ctx, t, sys, auditors, url)
	}
	return nil
}

// pushTicketStart tells ticket-only auditors once per ticket department and
// period.
func (s *Service) pushTicketStart(ctx context.Context, t *models.Task, sys *catalog.AuditSystem, auditors []string, url string) error {
	var ticketOnly []string
	for _, a := range sys.TicketAuditors {
		if !slices.Contains(auditors, a) && !slices.Contains(ticketOnly, a) {
			ticketOnly = append(ticketOnly, a)
		}
	}
	if len(ticketOnly) == 0 {
		return nil
	}
	pushed, err := s.ticketPushed(ctx, t, sys.OnlineTicketDept)
	if err != nil {
		return err
	}
	if pushed {
		return nil
	}
	key := "tic:" + sys.OnlineTicketDept + ":" + t.Period
	sent, err := s.notifier.EnqueueOnce(ctx, key, s.markerTTL, notifymodels.KindTicketStarted,
		fmt.Sprintf(models.TicketContent, url), ticketOnly)
	if err != nil {
		return err
	}
	if !sent {
		s.logger.InfoContext(ctx, "ticket start push already sent", "task_id", t.ID, "key", key)
	}
	return nil
}

// ticketPushed reports whether a started sibling task of the period shares
// the ticket department.
func (s *Service) ticketPushed(ctx context.Context, t *models.Task, dept string) (bool, error) {
	siblings, err := s.tasks.ListByPeriod(ctx, t.Period, t.ID)
	if err != nil {
		return false, fmt.Errorf("list sibling tasks: %w", err)
	}
	for _, sib := range siblings {
		if sib.Status == models.StatusNotStarted || sib.Status == models.StatusPause {
			continue
		}
		_, sys, err := s.owner(ctx, sib)
		if err != nil {
			return false, err
		}
		if sys.OnlineTicketDept == dept {
			return true, nil
		}
	}
	return false, nil
}
