// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets the values; services read them without importing net/http.
//
//	reviewer := requestcontext.Reviewer(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject a fixed clock with WithTime.
package requestcontext

import (
	"context"
	"time"
)

type (
	reviewerKey    struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// ReviewerIdentity is the authenticated reviewer as asserted by the SSO gateway.
type ReviewerIdentity struct {
	AccountID string
	Email     string
	Name      string
}

// Reviewer returns the reviewer carried by ctx, or the zero value.
func Reviewer(ctx context.Context) ReviewerIdentity {
	if r, ok := ctx.Value(reviewerKey{}).(ReviewerIdentity); ok {
		return r
	}
	return ReviewerIdentity{}
}

// WithReviewer injects the reviewer identity.
func WithReviewer(ctx context.Context, r ReviewerIdentity) context.Context {
	return context.WithValue(ctx, reviewerKey{}, r)
}

// RequestID returns the request id or the empty string.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Now returns the request time if one was injected, else time.Now().
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime pins the clock seen by services, for request-scoped consistency and tests.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
