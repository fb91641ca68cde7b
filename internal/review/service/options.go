// Package service assembles review feeds and records reviewer judgements.
package service

import (
	"log/slog"
	"time"

	"bulwark/internal/review/metrics"
)

type options struct {
	logger          *slog.Logger
	metrics         *metrics.Metrics
	now             func() time.Time
	cache           FeedCache
	serviceAccounts []string
	auditUsers      []string
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures the feed and comment services.
type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithCache keeps assembled account feeds between requests.
func WithCache(c FeedCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithServiceAccounts excludes machine accounts from every feed.
func WithServiceAccounts(accounts []string) Option {
	return func(o *options) {
		o.serviceAccounts = accounts
	}
}

// WithAuditUsers sets who handles reviewer grant requests.
func WithAuditUsers(users []string) Option {
	return func(o *options) {
		o.auditUsers = users
	}
}
