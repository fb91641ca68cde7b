package service

import (
	"context"
	"log/slog"
	"time"

	"bulwark/internal/notify/metrics"
	"bulwark/internal/notify/models"
	"bulwark/pkg/platform/circuit"
)

const (
	defaultRelayBatch    = 50
	defaultRelayInterval = 5 * time.Second
	defaultMaxAttempts   = 5
)

// Sender delivers a message to its recipients.
type Sender interface {
	Send(ctx context.Context, msg *models.Message) error
}

// Queue is the relay's view of the outbox.
type Queue interface {
	Pending(ctx context.Context, limit, maxAttempts int) ([]*models.Message, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// Relay drains the outbox into a sender.
type Relay struct {
	queue       Queue
	sender      Sender
	breaker     *circuit.Breaker
	batch       int
	interval    time.Duration
	maxAttempts int
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type RelayOption func(*Relay)

func WithRelayLogger(logger *slog.Logger) RelayOption {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithRelayMetrics(m *metrics.Metrics) RelayOption {
	return func(r *Relay) {
		r.metrics = m
	}
}

func WithBreaker(b *circuit.Breaker) RelayOption {
	return func(r *Relay) {
		r.breaker = b
	}
}

func WithInterval(d time.Duration) RelayOption {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithBatch(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.batch = n
		}
	}
}

func WithMaxAttempts(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

func NewRelay(queue Queue, sender Sender, opts ...RelayOption) *Relay {
	r := &Relay{
		queue:       queue,
		sender:      sender,
		batch:       defaultRelayBatch,
		interval:    defaultRelayInterval,
		maxAttempts: defaultMaxAttempts,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunOnce delivers one batch and returns how many messages were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	if r.breaker != nil && !r.breaker.Allow() {
		return 0, nil
	}
	msgs, err := r.queue.Pending(ctx, r.batch, r.maxAttempts)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, m := range msgs {
		if err := r.sender.Send(ctx, m); err != nil {
			r.metrics.IncFailure()
			r.logger.WarnContext(ctx, "push delivery failed",
				"message_id", m.ID,
				"kind", m.Kind,
				"attempt", m.Attempts+1,
				"error", err,
			)
			if merr := r.queue.MarkFailed(ctx, m.ID, err.Error()); merr != nil {
				return sent, merr
			}
			if r.breaker != nil {
				if open, change := r.breaker.RecordFailure(); open {
					if change.Opened {
						r.logger.ErrorContext(ctx, "push sender circuit opened", "error", err)
					}
					return sent, nil
				}
			}
			continue
		}
		if r.breaker != nil {
			r.breaker.RecordSuccess()
		}
		if err := r.queue.MarkSent(ctx, m.ID, time.Now()); err != nil {
			return sent, err
		}
		sent++
		r.metrics.IncDelivered()
	}
	return sent, nil
}

// Run polls the outbox until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		if _, err := r.RunOnce(ctx); err != nil {
			r.logger.ErrorContext(ctx, "outbox relay pass failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
