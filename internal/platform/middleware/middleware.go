package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/platform/httputil"
	"bulwark/pkg/requestcontext"
)

// Headers asserted by the SSO gateway in front of the service.
const (
	HeaderRequestID     = "X-Request-Id"
	HeaderReviewerID    = "X-Reviewer-Accountid"
	HeaderReviewerEmail = "X-Reviewer-Email"
	HeaderReviewerName  = "X-Reviewer-Name"
)

// RequestID propagates or mints a request id.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		ctx = requestcontext.WithTime(ctx, time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logger logs one line per request.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.InfoContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestcontext.RequestID(r.Context()),
			)
		})
	}
}

// RequireReviewer rejects requests without a gateway-asserted reviewer.
func RequireReviewer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID := r.Header.Get(HeaderReviewerID)
			if accountID == "" {
				logger.WarnContext(r.Context(), "missing reviewer identity",
					"request_id", requestcontext.RequestID(r.Context()),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "请登录后再试"))
				return
			}
			ctx := requestcontext.WithReviewer(r.Context(), requestcontext.ReviewerIdentity{
				AccountID: accountID,
				Email:     r.Header.Get(HeaderReviewerEmail),
				Name:      r.Header.Get(HeaderReviewerName),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Recovery turns a handler panic into a 500 and logs it.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"request_id", requestcontext.RequestID(r.Context()),
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout bounds the request context.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
