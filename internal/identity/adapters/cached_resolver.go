// Package adapters implements the identity ports.
package adapters

import (
	"context"
	"log/slog"

	"bulwark/internal/identity/cache"
	"bulwark/internal/identity/metrics"
	"bulwark/internal/identity/models"
	"bulwark/internal/identity/ports"
)

const (
	idKeyPrefix    = "id:"
	emailKeyPrefix = "email:"
)

// CachedResolver fronts a Resolver with the in-process LRU and, when
// configured, the Redis tier. Only hits are cached; unknown keys always go
// back to the directory.
type CachedResolver struct {
	next    ports.Resolver
	local   *cache.ProfileCache
	shared  *cache.RedisCache
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*CachedResolver)

func WithRedis(shared *cache.RedisCache) Option {
	return func(r *CachedResolver) {
		r.shared = shared
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *CachedResolver) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *CachedResolver) {
		r.metrics = m
	}
}

func NewCachedResolver(next ports.Resolver, local *cache.ProfileCache, opts ...Option) *CachedResolver {
	r := &CachedResolver{next: next, local: local, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CachedResolver) ByAccountIDs(ctx context.Context, ids []string) (map[string]models.Profile, error) {
	return r.lookup(ctx, idKeyPrefix, ids, r.next.ByAccountIDs)
}

func (r *CachedResolver) ByEmails(ctx context.Context, emails []string) (map[string]models.Profile, error) {
	return r.lookup(ctx, emailKeyPrefix, emails, r.next.ByEmails)
}

// IsEmployed is never cached: a resignation must show up on the next run.
func (r *CachedResolver) IsEmployed(ctx context.Context, accountID string) (bool, error) {
	return r.next.IsEmployed(ctx, accountID)
}

// Invalidate drops an account from both tiers.
func (r *CachedResolver) Invalidate(ctx context.Context, accountID string) {
	r.local.Invalidate(idKeyPrefix + accountID)
	if r.shared != nil {
		if err := r.shared.Invalidate(ctx, idKeyPrefix+accountID); err != nil {
			r.logger.WarnContext(ctx, "failed to invalidate shared profile", "error", err)
		}
	}
}

func (r *CachedResolver) lookup(
	ctx context.Context,
	prefix string,
	keys []string,
	fetch func(context.Context, []string) (map[string]models.Profile, error),
) (map[string]models.Profile, error) {
	out := make(map[string]models.Profile, len(keys))
	var misses []string
	for _, k := range keys {
		if p, ok := r.local.Get(prefix + k); ok {
			out[k] = p
			r.metrics.IncCacheHit("local")
			continue
		}
		misses = append(misses, k)
	}

	if len(misses) > 0 && r.shared != nil {
		sharedKeys := make([]string, len(misses))
		for i, k := range misses {
			sharedKeys[i] = prefix + k
		}
		found, err := r.shared.GetMany(ctx, sharedKeys)
		if err != nil {
			r.logger.WarnContext(ctx, "shared profile cache unavailable", "error", err)
		} else {
			remaining := misses[:0]
			for _, k := range misses {
				if p, ok := found[prefix+k]; ok {
					out[k] = p
					r.local.Set(prefix+k, p)
					r.metrics.IncCacheHit("redis")
					continue
				}
				remaining = append(remaining, k)
			}
			misses = remaining
		}
	}

	if len(misses) == 0 {
		return out, nil
	}
	r.metrics.AddCacheMisses(len(misses))
	fetched, err := fetch(ctx, misses)
	if err != nil {
		return nil, err
	}
	toShare := make(map[string]models.Profile, len(fetched))
	for k, p := range fetched {
		out[k] = p
		r.local.Set(prefix+k, p)
		toShare[prefix+k] = p
	}
	if r.shared != nil {
		if err := r.shared.SetMany(ctx, toShare); err != nil {
			r.logger.WarnContext(ctx, "failed to populate shared profile cache", "error", err)
		}
	}
	return out, nil
}
