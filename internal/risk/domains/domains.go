// Package domains adapts the asset snapshots of the application, operating
// system and database domains to the rule handlers' view of accounts.
package domains

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	assetmodels "bulwark/internal/asset/models"
	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	idservice "bulwark/internal/identity/service"
	"bulwark/internal/risk/ports"
	pkgstrings "bulwark/pkg/platform/strings"
)

// Catalog resolves the assets of a system.
type Catalog interface {
	AssetNames(ctx context.Context, systemID string, kind catalog.Domain) ([]string, error)
	DBScope(ctx context.Context, systemID string) (catalog.DBScope, error)
}

// Assets reads and flags daily snapshots.
type Assets interface {
	AppRoles(ctx context.Context, q assetstore.SnapshotQuery) ([]*assetmodels.AppRole, error)
	OSAccounts(ctx context.Context, q assetstore.SnapshotQuery) ([]*assetmodels.OSAccount, error)
	DBRoles(ctx context.Context, q assetstore.SnapshotQuery) ([]*assetmodels.DBRole, error)
	MarkAppRisk(ctx context.Context, q assetstore.SnapshotQuery, systemID string, risky bool) (int, error)
	MarkOSRisk(ctx context.Context, q assetstore.SnapshotQuery, systemID string, risky bool) (int, error)
	MarkDBRisk(ctx context.Context, q assetstore.SnapshotQuery, systemID string, risky bool) (int, error)
}

// Normalizer maps stored tags to account ids and back.
type Normalizer interface {
	Canonicalize(ctx context.Context, tags []string, systemID string, domain catalog.Domain) ([]string, error)
	Originals(ctx context.Context, ids []string, systemID string, domain catalog.Domain) ([]string, error)
	ToAccountIDs(ctx context.Context, tags []string) ([]string, map[string]string, error)
}

// Policy names who counts as an admin in each domain.
type Policy struct {
	// BGAdminRoles maps a business group to its admin role.
	BGAdminRoles map[string]string
	// SelfOperatedHostTags mark servers whose root users are not OS admins.
	SelfOperatedHostTags []string
	// DBAAdmins is the database admin allowlist.
	DBAAdmins []string
}

// Set builds per-run domain instances from shared collaborators.
type Set struct {
	catalog      Catalog
	assets       Assets
	normalizer   Normalizer
	policy       Policy
	selfOperated *regexp.Regexp
}

var _ ports.DomainSet = (*Set)(nil)

func NewSet(cat Catalog, assets Assets, normalizer Normalizer, policy Policy) (*Set, error) {
	s := &Set{catalog: cat, assets: assets, normalizer: normalizer, policy: policy}
	tags := pkgstrings.DedupeAndTrim(policy.SelfOperatedHostTags)
	if len(tags) > 0 {
		re, err := regexp.Compile(strings.Join(tags, "|"))
		if err != nil {
			return nil, fmt.Errorf("compile self-operated host pattern: %w", err)
		}
		s.selfOperated = re
	}
	return s, nil
}

// For returns the application, OS and database domains, in that order.
func (s *Set) For(systemID string, day time.Time) []ports.Domain {
	return []ports.Domain{
		&AppDomain{base: s.newBase(systemID, day, catalog.DomainApp)},
		&OSDomain{base: s.newBase(systemID, day, catalog.DomainSA)},
		&DBDomain{base: s.newBase(systemID, day, catalog.DomainDBA)},
	}
}

func (s *Set) newBase(systemID string, day time.Time, kind catalog.Domain) base {
	return base{set: s, systemID: systemID, day: day, kind: kind, id2user: make(map[string]string)}
}

// base carries the id-to-tag memory of one domain instance.
type base struct {
	set      *Set
	systemID string
	day      time.Time
	kind     catalog.Domain

	mu      sync.Mutex
	id2user map[string]string
}

func (b *base) Kind() catalog.Domain {
	return b.kind
}

// accountIDs normalizes stored tags: aliases are replaced by their targets,
// then every tag is converted to an account id.
func (b *base) accountIDs(ctx context.Context, tags []string) ([]string, error) {
	tags = pkgstrings.DedupeAndTrim(tags)
	if len(tags) == 0 {
		return nil, nil
	}
	normal, err := b.set.normalizer.Canonicalize(ctx, tags, b.systemID, b.kind)
	if err != nil {
		return nil, err
	}
	ids, reverse, err := b.set.normalizer.ToAccountIDs(ctx, normal)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	for id, tag := range reverse {
		b.id2user[id] = tag
	}
	b.mu.Unlock()
	return ids, nil
}

// storedTags reverses accountIDs: ids go back to the tags they came from,
// then canonical tags go back to the aliases that point at them.
func (b *base) storedTags(ctx context.Context, accountIDs []string) ([]string, error) {
	b.mu.Lock()
	tags := idservice.FromAccountIDs(accountIDs, b.id2user)
	b.mu.Unlock()
	if len(tags) == 0 {
		return nil, nil
	}
	return b.set.normalizer.Originals(ctx, tags, b.systemID, b.kind)
}

func (b *base) assetNames(ctx context.Context) ([]string, error) {
	return b.set.catalog.AssetNames(ctx, b.systemID, b.kind)
}
