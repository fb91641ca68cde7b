package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	assetmodels "bulwark/internal/asset/models"
	catalog "bulwark/internal/catalog/models"
	catalogservice "bulwark/internal/catalog/service"
	pkgstrings "bulwark/pkg/platform/strings"
)

const defaultScanBatch = 500

// LogScanner tags command logs with the regex patterns and rule atoms they
// hit, for every system whose assets the log was recorded on.
type LogScanner struct {
	deps
	catalog Catalog
	logs    ActivityStore
	batch   int
}

func NewLogScanner(cat Catalog, logs ActivityStore, batch int, opts ...Option) *LogScanner {
	if batch <= 0 {
		batch = defaultScanBatch
	}
	return &LogScanner{deps: newDeps(opts), catalog: cat, logs: logs, batch: batch}
}

type scanTarget struct {
	systemID string
	servers  []string
	scope    catalog.DBScope
	atoms    []catalogservice.RegexAtom
}

func (t scanTarget) owns(l *assetmodels.CommandLog) bool {
	if l.Source == assetmodels.SourceDB {
		return t.scope.Contains(l.ServerName, l.DBNode, l.DBName)
	}
	return slices.Contains(t.servers, l.ServerName)
}

func (s *LogScanner) targets(ctx context.Context) ([]scanTarget, error) {
	systems, err := s.catalog.Systems(ctx)
	if err != nil {
		return nil, err
	}
	var out []scanTarget
	for _, sys := range systems {
		atoms, err := s.catalog.SystemRegexAtoms(ctx, sys.ID)
		if err != nil {
			return nil, err
		}
		if len(atoms) == 0 {
			continue
		}
		servers, err := s.catalog.AssetNames(ctx, sys.ID, catalog.DomainSA)
		if err != nil {
			return nil, err
		}
		scope, err := s.catalog.DBScope(ctx, sys.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, scanTarget{systemID: sys.ID, servers: servers, scope: scope, atoms: atoms})
	}
	return out, nil
}

// Run scans logs executed in [start, end) until none are left unscanned.
// It returns how many logs were scanned.
func (s *LogScanner) Run(ctx context.Context, start, end time.Time) (int, error) {
	targets, err := s.targets(ctx)
	if err != nil {
		return 0, fmt.Errorf("load regex rules: %w", err)
	}
	scanned, hit := 0, 0
	for {
		logs, err := s.logs.UnscannedCommandLogs(ctx, start, end, s.batch)
		if err != nil {
			return scanned, fmt.Errorf("list unscanned logs: %w", err)
		}
		for _, l := range logs {
			patterns, atoms := match(targets, l)
			if err := s.logs.TagCommandLog(ctx, l.ID, patterns, atoms); err != nil {
				return scanned, fmt.Errorf("tag command log %s: %w", l.ID, err)
			}
			scanned++
			if len(atoms) > 0 {
				hit++
			}
		}
		if len(logs) < s.batch {
			break
		}
	}
	s.metrics.AddScanned(scanned, hit)
	s.logger.InfoContext(ctx, "command logs scanned",
		"scanned", scanned,
		"hit", hit,
	)
	return scanned, nil
}

func match(targets []scanTarget, l *assetmodels.CommandLog) (patternIDs, atomIDs []string) {
	for _, t := range targets {
		if !t.owns(l) {
			continue
		}
		for _, a := range t.atoms {
			ids := a.Matcher.Match(l.Command)
			if len(ids) == 0 {
				continue
			}
			patternIDs = append(patternIDs, ids...)
			atomIDs = append(atomIDs, a.Atom.ID)
		}
	}
	return pkgstrings.DedupeAndTrim(patternIDs), pkgstrings.DedupeAndTrim(atomIDs)
}
