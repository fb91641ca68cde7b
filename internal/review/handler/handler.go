package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalog "bulwark/internal/catalog/models"
	catalogservice "bulwark/internal/catalog/service"
	"bulwark/internal/review/models"
	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/platform/httputil"
	strutil "bulwark/pkg/platform/strings"
	"bulwark/pkg/requestcontext"
)

// Feeds builds the review pages of a task.
type Feeds interface {
	AppAccounts(ctx context.Context, taskID string, f models.Filter) (*models.Feed, error)
	SysDbAccounts(ctx context.Context, taskID string, f models.Filter) (*models.Feed, error)
	Tickets(ctx context.Context, taskID string, f models.Filter) (*models.TicketFeed, error)
	ServerRoles(ctx context.Context, taskID, user string) (*models.ServerRoles, error)
	LogSummary(ctx context.Context, taskID string, domain catalog.Domain) (*models.LogSummary, error)
	LogDetail(ctx context.Context, taskID string, domain catalog.Domain, user, logID string, page, size int) (*models.LogDetail, error)
}

// Comments records reviewer judgements and board messages.
type Comments interface {
	AddWhole(ctx context.Context, taskID string, rt catalog.ReviewType, content string) (*models.Comment, error)
	AddSingle(ctx context.Context, taskID string, rt catalog.ReviewType, singleID, singleDesc, content string) (*models.Comment, error)
	ListComments(ctx context.Context, taskID string, rt catalog.ReviewType) ([]*models.Comment, error)
	AddMessage(ctx context.Context, taskID string, rt catalog.ReviewType, content string) (*models.BoardEntry, error)
	Messages(ctx context.Context, taskID string, rt catalog.ReviewType) ([]*models.BoardEntry, error)
	RequestReviewerGrant(ctx context.Context, taskID string, domain catalog.Domain, accountID string) error
}

// Handler serves the review endpoints.
type Handler struct {
	feeds    Feeds
	comments Comments
	logger   *slog.Logger
}

func New(feeds Feeds, comments Comments, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{feeds: feeds, comments: comments, logger: logger}
}

// Register mounts the review routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/reviews/{id}", func(r chi.Router) {
		r.Get("/accounts/app", h.handleAppAccounts)
		r.Get("/accounts/sys-db", h.handleSysDbAccounts)
		r.Get("/tickets", h.handleTickets)
		r.Get("/servers", h.handleServerRoles)
		r.Get("/logs/{domain}", h.handleLogSummary)
		r.Get("/logs/{domain}/detail", h.handleLogDetail)
		r.Get("/comments", h.handleListComments)
		r.Post("/comments", h.handleAddComment)
		r.Get("/messages", h.handleMessages)
		r.Post("/messages", h.handleAddMessage)
		r.Post("/reviewer-grants", h.handleReviewerGrant)
	})
	r.Get("/rules/templates", h.handleTemplates)
}

func filterFrom(r *http.Request) models.Filter {
	q := r.URL.Query()
	return models.Filter{
		Dept:        q.Get("dept_name"),
		NotReviewed: q.Get("is_reviewed") == "true",
		Roles:       strutil.SplitList(q.Get("roles")),
	}
}

func (h *Handler) handleAppAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	feed, err := h.feeds.AppAccounts(ctx, chi.URLParam(r, "id"), filterFrom(r))
	if err != nil {
		h.fail(ctx, w, "failed to build app account feed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, feed)
}

func (h *Handler) handleSysDbAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	feed, err := h.feeds.SysDbAccounts(ctx, chi.URLParam(r, "id"), filterFrom(r))
	if err != nil {
		h.fail(ctx, w, "failed to build sys-db account feed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, feed)
}

func (h *Handler) handleTickets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	feed, err := h.feeds.Tickets(ctx, chi.URLParam(r, "id"), filterFrom(r))
	if err != nil {
		h.fail(ctx, w, "failed to build ticket feed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, feed)
}

func (h *Handler) handleServerRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roles, err := h.feeds.ServerRoles(ctx, chi.URLParam(r, "id"), r.URL.Query().Get("user"))
	if err != nil {
		h.fail(ctx, w, "failed to list server roles", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, roles)
}

func (h *Handler) handleLogSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sum, err := h.feeds.LogSummary(ctx, chi.URLParam(r, "id"), catalog.Domain(chi.URLParam(r, "domain")))
	if err != nil {
		h.fail(ctx, w, "failed to summarize logs", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sum)
}

func (h *Handler) handleLogDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	page, err := intParam(q.Get("page"))
	if err != nil {
		h.fail(ctx, w, "invalid log detail request", err)
		return
	}
	size, err := intParam(q.Get("page_size"))
	if err != nil {
		h.fail(ctx, w, "invalid log detail request", err)
		return
	}
	detail, err := h.feeds.LogDetail(ctx, chi.URLParam(r, "id"), catalog.Domain(chi.URLParam(r, "domain")),
		q.Get("user"), q.Get("log_id"), page, size)
	if err != nil {
		h.fail(ctx, w, "failed to load log detail", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "page parameters must be integers")
	}
	return n, nil
}

type commentRequest struct {
	ReviewType string `json:"review_type"`
	Content    string `json:"content"`
	SingleID   string `json:"single_id"`
	SingleDesc string `json:"single_desc"`
}

func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := httputil.DecodeJSON[commentRequest](r)
	if err != nil {
		h.fail(ctx, w, "invalid comment request", err)
		return
	}
	taskID, rt := chi.URLParam(r, "id"), catalog.ReviewType(req.ReviewType)
	var c *models.Comment
	if req.SingleID == "" {
		c, err = h.comments.AddWhole(ctx, taskID, rt, req.Content)
	} else {
		c, err = h.comments.AddSingle(ctx, taskID, rt, req.SingleID, req.SingleDesc, req.Content)
	}
	if err != nil {
		h.fail(ctx, w, "comment rejected", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.comments.ListComments(ctx, chi.URLParam(r, "id"), catalog.ReviewType(r.URL.Query().Get("review_type")))
	if err != nil {
		h.fail(ctx, w, "failed to list comments", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"results": list})
}

type messageRequest struct {
	ReviewType string `json:"review_type"`
	Content    string `json:"content"`
}

func (h *Handler) handleAddMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := httputil.DecodeJSON[messageRequest](r)
	if err != nil {
		h.fail(ctx, w, "invalid message request", err)
		return
	}
	e, err := h.comments.AddMessage(ctx, chi.URLParam(r, "id"), catalog.ReviewType(req.ReviewType), req.Content)
	if err != nil {
		h.fail(ctx, w, "message rejected", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) handleMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.comments.Messages(ctx, chi.URLParam(r, "id"), catalog.ReviewType(r.URL.Query().Get("review_type")))
	if err != nil {
		h.fail(ctx, w, "failed to list messages", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"results": list})
}

type grantRequest struct {
	ServerKind string `json:"server_kind"`
	User       string `json:"user"`
}

func (h *Handler) handleReviewerGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := httputil.DecodeJSON[grantRequest](r)
	if err != nil {
		h.fail(ctx, w, "invalid reviewer grant request", err)
		return
	}
	if err := h.comments.RequestReviewerGrant(ctx, chi.URLParam(r, "id"), catalog.Domain(req.ServerKind), req.User); err != nil {
		h.fail(ctx, w, "reviewer grant rejected", err)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, map[string]any{})
}

func (h *Handler) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"results": catalogservice.Templates()})
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
