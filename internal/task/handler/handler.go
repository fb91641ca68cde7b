package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bulwark/internal/task/models"
	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/platform/httputil"
	"bulwark/pkg/requestcontext"
)

// Service defines the task operations exposed over HTTP.
type Service interface {
	Transition(ctx context.Context, taskID string, to models.Status) (*models.Task, error)
	CheckReviewStatus(ctx context.Context, taskID string) (*models.Task, error)
	Detail(ctx context.Context, taskID string) (*models.Detail, error)
}

// Handler serves the task endpoints.
type Handler struct {
	tasks  Service
	logger *slog.Logger
}

func New(tasks Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{tasks: tasks, logger: logger}
}

// Register mounts the task routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/tasks/{id}", h.handleDetail)
	r.Post("/tasks/{id}/status", h.handleTransition)
	r.Post("/tasks/{id}/review-status", h.handleCheckReviewStatus)
}

type transitionRequest struct {
	Status string `json:"status"`
}

type taskResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	StatusDesc string `json:"status_desc"`
}

func toResponse(t *models.Task) taskResponse {
	return taskResponse{ID: t.ID, Status: string(t.Status), StatusDesc: t.Status.Description()}
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	detail, err := h.tasks.Detail(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, "failed to load task detail", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := httputil.DecodeJSON[transitionRequest](r)
	if err != nil {
		h.fail(ctx, w, "invalid transition request", err)
		return
	}
	to, err := models.ParseStatus(req.Status)
	if err != nil {
		h.fail(ctx, w, "invalid transition request", err)
		return
	}
	task, err := h.tasks.Transition(ctx, chi.URLParam(r, "id"), to)
	if err != nil {
		h.fail(ctx, w, "task transition rejected", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResponse(task))
}

func (h *Handler) handleCheckReviewStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	task, err := h.tasks.CheckReviewStatus(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(ctx, w, "review status check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResponse(task))
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
