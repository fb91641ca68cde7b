// Package service runs the permission rule handlers over audit systems and
// writes their findings as risk annotations and asset risk tags.
package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"bulwark/internal/risk/metrics"
	"bulwark/internal/risk/ports"
	pkgstrings "bulwark/pkg/platform/strings"
)

type deps struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func newDeps(opts []Option) deps {
	d := deps{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Option configures a handler, the runner or the reminder.
type Option func(*deps)

func WithLogger(logger *slog.Logger) Option {
	return func(d *deps) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *deps) {
		d.metrics = m
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *deps) {
		if now != nil {
			d.now = now
		}
	}
}

// allUsers is the sorted union of every domain's accounts.
func allUsers(ctx context.Context, domains []ports.Domain) ([]string, error) {
	var out []string
	for _, d := range domains {
		users, err := d.AllUsers(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, users...)
	}
	out = pkgstrings.DedupeAndTrim(out)
	slices.Sort(out)
	return out, nil
}

// markRisk applies one verdict to the accounts in every domain.
func markRisk(ctx context.Context, domains []ports.Domain, accountIDs []string, validated bool) error {
	if len(accountIDs) == 0 {
		return nil
	}
	for _, d := range domains {
		if err := d.UpdateRiskTag(ctx, accountIDs, validated); err != nil {
			return err
		}
	}
	return nil
}
