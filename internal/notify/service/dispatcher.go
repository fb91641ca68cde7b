// Package service queues push messages in the outbox and relays them to the
// configured sender.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bulwark/internal/notify/metrics"
	"bulwark/internal/notify/models"
	dErrors "bulwark/pkg/domain-errors"
	pkgstrings "bulwark/pkg/platform/strings"
)

// Outbox stores messages until the relay delivers them.
type Outbox interface {
	Append(ctx context.Context, m *models.Message) error
}

// Marker claims one-off push keys.
type Marker interface {
	Mark(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Dispatcher turns push requests into outbox messages.
type Dispatcher struct {
	outbox  Outbox
	marker  Marker
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*Dispatcher)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDispatcher builds a dispatcher. marker may be nil, in which case
// EnqueueOnce never suppresses.
func NewDispatcher(outbox Outbox, marker Marker, opts ...Option) *Dispatcher {
	d := &Dispatcher{outbox: outbox, marker: marker, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Enqueue queues one push. A push without recipients is dropped.
func (d *Dispatcher) Enqueue(ctx context.Context, kind models.Kind, content string, recipients []string) error {
	recipients = pkgstrings.DedupeAndTrim(recipients)
	if len(recipients) == 0 {
		d.logger.DebugContext(ctx, "push without recipients dropped", "kind", kind)
		return nil
	}
	msg := &models.Message{
		ID:         uuid.NewString(),
		Kind:       kind,
		Content:    content,
		Recipients: recipients,
		CreatedAt:  d.now(),
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := d.outbox.Append(ctx, msg); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to queue push message")
	}
	d.metrics.IncEnqueued(string(kind))
	d.logger.InfoContext(ctx, "push queued",
		"kind", kind,
		"message_id", msg.ID,
		"recipients", len(recipients),
	)
	return nil
}

// EnqueueOnce queues a push unless key was claimed within ttl. It reports
// whether the push was queued.
func (d *Dispatcher) EnqueueOnce(ctx context.Context, key string, ttl time.Duration, kind models.Kind, content string, recipients []string) (bool, error) {
	if d.marker != nil {
		first, err := d.marker.Mark(ctx, key, ttl)
		if err != nil {
			return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to claim push key")
		}
		if !first {
			d.metrics.IncSuppressed(string(kind))
			return false, nil
		}
	}
	if err := d.Enqueue(ctx, kind, content, recipients); err != nil {
		if d.marker != nil {
			if rerr := d.marker.Release(ctx, key); rerr != nil {
				d.logger.WarnContext(ctx, "failed to release push key", "key", key, "error", rerr)
			}
		}
		return false, err
	}
	return true, nil
}
