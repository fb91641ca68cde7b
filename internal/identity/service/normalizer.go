// Package service maps the many spellings of a person onto one canonical
// identifier and back.
package service

import (
	"context"
	"log/slog"
	"slices"
	"sort"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/identity/metrics"
	"bulwark/internal/identity/models"
	"bulwark/internal/identity/ports"
	dErrors "bulwark/pkg/domain-errors"
	pkgstrings "bulwark/pkg/platform/strings"
)

// DefaultBatchSize bounds every directory batch call.
const DefaultBatchSize = 50

// AliasStore lists the live aliases of a system. An empty domain lists every domain.
type AliasStore interface {
	ListBySystem(ctx context.Context, systemID string, domain catalog.Domain) ([]*models.Alias, error)
}

type Normalizer struct {
	aliases   AliasStore
	resolver  ports.Resolver
	batchSize int
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Normalizer)

func WithBatchSize(n int) Option {
	return func(s *Normalizer) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Normalizer) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Normalizer) {
		s.metrics = m
	}
}

func New(aliases AliasStore, resolver ports.Resolver, opts ...Option) *Normalizer {
	n := &Normalizer{
		aliases:   aliases,
		resolver:  resolver,
		batchSize: DefaultBatchSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Resolver exposes the directory port for callers that need employment checks.
func (n *Normalizer) Resolver() ports.Resolver {
	return n.resolver
}

// ResolveToCanonical maps each aliased tag to the set of canonical ids it
// stands for. Tags without an alias are absent from the result.
func (n *Normalizer) ResolveToCanonical(ctx context.Context, tags []string, systemID string, domain catalog.Domain) (map[string][]string, error) {
	return n.aliasMap(ctx, tags, systemID, domain, false)
}

// ResolveFromCanonical is the reverse lookup: canonical id to alias names.
func (n *Normalizer) ResolveFromCanonical(ctx context.Context, ids []string, systemID string, domain catalog.Domain) (map[string][]string, error) {
	return n.aliasMap(ctx, ids, systemID, domain, true)
}

// Canonicalize replaces aliased tags by the union of their targets. Tags
// without an alias pass through. One hop only.
func (n *Normalizer) Canonicalize(ctx context.Context, tags []string, systemID string, domain catalog.Domain) ([]string, error) {
	m, err := n.ResolveToCanonical(ctx, tags, systemID, domain)
	if err != nil {
		return nil, err
	}
	return substitute(tags, m), nil
}

// Originals reverses Canonicalize: canonical ids with aliases are replaced by
// the alias names, others pass through.
func (n *Normalizer) Originals(ctx context.Context, ids []string, systemID string, domain catalog.Domain) ([]string, error) {
	m, err := n.ResolveFromCanonical(ctx, ids, systemID, domain)
	if err != nil {
		return nil, err
	}
	return substitute(ids, m), nil
}

func substitute(keys []string, m map[string][]string) []string {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if targets, ok := m[k]; ok {
			for _, t := range targets {
				set[t] = struct{}{}
			}
			continue
		}
		set[k] = struct{}{}
	}
	return sortedKeys(set)
}

func (n *Normalizer) aliasMap(ctx context.Context, keys []string, systemID string, domain catalog.Domain, reverse bool) (map[string][]string, error) {
	out := make(map[string][]string)
	if len(keys) == 0 {
		return out, nil
	}
	aliases, err := n.aliases.ListBySystem(ctx, systemID, domain)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load aliases")
	}
	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}
	sets := make(map[string]map[string]struct{})
	for _, a := range aliases {
		from, to := a.Name, a.Canonical()
		if reverse {
			from, to = to, from
		}
		if _, ok := wanted[from]; !ok || to == "" {
			continue
		}
		if sets[from] == nil {
			sets[from] = make(map[string]struct{})
		}
		sets[from][to] = struct{}{}
	}
	for k, set := range sets {
		out[k] = sortedKeys(set)
	}
	return out, nil
}

// ToAccountIDs converts tags to account ids for cross-domain comparison.
// Numeric tags are account ids already; the rest are looked up by email.
// Unresolvable tags are dropped, including those of a failed lookup batch.
// Only a cancelled context fails the call. The returned map sends each
// looked-up account id back to the tag it came from.
func (n *Normalizer) ToAccountIDs(ctx context.Context, tags []string) ([]string, map[string]string, error) {
	ids := make([]string, 0, len(tags))
	reverse := make(map[string]string)
	var emails []string
	for _, t := range pkgstrings.DedupeAndTrim(tags) {
		if models.IsAccountID(t) {
			ids = append(ids, t)
			continue
		}
		emails = append(emails, t)
	}
	for _, batch := range chunk(emails, n.batchSize) {
		found, err := n.resolver.ByEmails(ctx, batch)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, dErrors.Wrap(ctxErr, dErrors.CodeTimeout, "failed to resolve account ids")
			}
			n.batchFailed(ctx, "email", batch, err)
			continue
		}
		for _, email := range batch {
			p, ok := found[email]
			if !ok || p.AccountID == "" {
				continue
			}
			ids = append(ids, p.AccountID)
			reverse[p.AccountID] = email
		}
	}
	return pkgstrings.DedupeAndTrim(ids), reverse, nil
}

// FromAccountIDs maps account ids back to their stored tags through a
// reverse map produced by ToAccountIDs. Ids without an entry pass through.
func FromAccountIDs(ids []string, reverse map[string]string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if tag, ok := reverse[id]; ok {
			if tag != "" {
				out = append(out, tag)
			}
			continue
		}
		out = append(out, id)
	}
	return out
}

// Profiles looks up display profiles for tags. A failed batch leaves its
// tags with an empty profile; the call itself never fails.
func (n *Normalizer) Profiles(ctx context.Context, tags []string) map[string]models.Profile {
	out := make(map[string]models.Profile, len(tags))
	var ids, emails []string
	for _, t := range pkgstrings.DedupeAndTrim(tags) {
		out[t] = models.Profile{}
		if models.IsAccountID(t) {
			ids = append(ids, t)
		} else {
			emails = append(emails, t)
		}
	}
	n.fillProfiles(ctx, out, ids, "account_id", n.resolver.ByAccountIDs)
	n.fillProfiles(ctx, out, emails, "email", n.resolver.ByEmails)
	return out
}

func (n *Normalizer) fillProfiles(
	ctx context.Context,
	out map[string]models.Profile,
	keys []string,
	kind string,
	fetch func(context.Context, []string) (map[string]models.Profile, error),
) {
	for _, batch := range chunk(keys, n.batchSize) {
		found, err := fetch(ctx, batch)
		if err != nil {
			n.batchFailed(ctx, kind, batch, err)
			continue
		}
		for k, p := range found {
			out[k] = p
		}
	}
}

// EmailPrefixes resolves account ids to email prefixes in bounded batches.
// Unknown ids and the ids of a failed batch are skipped.
func (n *Normalizer) EmailPrefixes(ctx context.Context, accountIDs []string) ([]string, error) {
	var out []string
	for _, batch := range chunk(accountIDs, n.batchSize) {
		found, err := n.resolver.ByAccountIDs(ctx, batch)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, dErrors.Wrap(ctxErr, dErrors.CodeTimeout, "failed to resolve emails")
			}
			n.batchFailed(ctx, "account_id", batch, err)
			continue
		}
		for _, id := range batch {
			if p, ok := found[id]; ok && p.Email != "" {
				out = append(out, p.EmailPrefix())
			}
		}
	}
	return out, nil
}

// AliasNames lists the alias names of a system, across domains, that belong
// to any of the account ids.
func (n *Normalizer) AliasNames(ctx context.Context, systemID string, accountIDs []string) ([]string, error) {
	aliases, err := n.aliases.ListBySystem(ctx, systemID, "")
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load aliases")
	}
	set := make(map[string]struct{})
	for _, a := range aliases {
		if a.AccountID != "" && slices.Contains(accountIDs, a.AccountID) {
			set[a.Name] = struct{}{}
		}
	}
	return sortedKeys(set), nil
}

func chunk(items []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][]string
	for len(items) > 0 {
		n := min(size, len(items))
		out = append(out, items[:n])
		items = items[n:]
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// batchFailed records a directory batch that could not be resolved. Its
// tags stay unresolved and the caller moves on to the next batch.
func (n *Normalizer) batchFailed(ctx context.Context, kind string, batch []string, err error) {
	n.metrics.IncProfileFailure()
	n.logger.WarnContext(ctx, "directory batch lookup failed",
		"kind", kind,
		"batch_size", len(batch),
		"error", err,
	)
}
