// Package service verifies deploy records against online change tickets.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"bulwark/internal/ticket/metrics"
	"bulwark/internal/ticket/models"
	"bulwark/internal/ticket/store"
)

type Verifier struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Verifier)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Verifier) {
		v.metrics = m
	}
}

func NewVerifier(st Store, opts ...Option) *Verifier {
	v := &Verifier{store: st, logger: slog.Default()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Summary counts the commits one run classified.
type Summary struct {
	Commits int
	Risky   int
	Excused int
	Updated int
}

func (s *Summary) add(o Summary) {
	s.Commits += o.Commits
	s.Risky += o.Risky
	s.Excused += o.Excused
	s.Updated += o.Updated
}

// commitGroup is every full commit id deployed under one short prefix.
type commitGroup struct {
	prefix    string
	commitIDs []string
}

func groupByPrefix(deploys []*models.DeployRecord) []commitGroup {
	var groups []commitGroup
	index := make(map[string]int)
	for _, d := range deploys {
		p := d.Prefix()
		i, ok := index[p]
		if !ok {
			i = len(groups)
			index[p] = i
			groups = append(groups, commitGroup{prefix: p})
		}
		if !slices.Contains(groups[i].commitIDs, d.CommitID) {
			groups[i].commitIDs = append(groups[i].commitIDs, d.CommitID)
		}
	}
	return groups
}

// VerifyDept classifies every commit deployed by dept in [start, end) and
// writes the verdict to all deploy records of that commit. A failing commit
// does not stop the others.
func (v *Verifier) VerifyDept(ctx context.Context, dept string, start, end time.Time) (Summary, error) {
	var sum Summary
	deploys, err := v.store.Deploys(ctx, store.DeployQuery{Dept: dept, From: start, To: end})
	if err != nil {
		return sum, err
	}
	var errs []error
	for _, g := range groupByPrefix(deploys) {
		res, err := v.verifyCommit(ctx, g)
		if err != nil {
			errs = append(errs, fmt.Errorf("commit %s: %w", g.prefix, err))
			continue
		}
		sum.add(res)
	}
	v.logger.InfoContext(ctx, "[TICKET_VERIFY] dept verified",
		"dept", dept,
		"commits", sum.Commits,
		"risky", sum.Risky,
		"excused", sum.Excused,
		"updated", sum.Updated,
	)
	return sum, errors.Join(errs...)
}

// VerifyAll runs VerifyDept for every department that deployed in the window.
func (v *Verifier) VerifyAll(ctx context.Context, start, end time.Time) (Summary, error) {
	var sum Summary
	depts, err := v.store.Depts(ctx, start, end)
	if err != nil {
		return sum, err
	}
	var errs []error
	for _, dept := range depts {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		v.logger.InfoContext(ctx, "[TICKET_VERIFY] begin verify deploy ticket", "dept", dept)
		res, err := v.VerifyDept(ctx, dept, start, end)
		sum.add(res)
		if err != nil {
			errs = append(errs, fmt.Errorf("dept %s: %w", dept, err))
		}
	}
	return sum, errors.Join(errs...)
}

func (v *Verifier) verifyCommit(ctx context.Context, g commitGroup) (Summary, error) {
	var sum Summary
	ticket, err := v.matchTicket(ctx, g.prefix)
	if err != nil {
		return sum, err
	}
	verdict := models.Classify(ticket)
	if verdict.Unauthorized() {
		closure, err := v.closureFor(ctx, g.commitIDs)
		if err != nil {
			return sum, err
		}
		if closure != nil {
			verdict = verdict.Excuse(closure)
			sum.Excused++
		}
	}
	n, err := v.store.UpdateVerdict(ctx, g.commitIDs, verdict)
	if err != nil {
		return sum, err
	}
	sum.Commits = 1
	sum.Updated = n
	if verdict.Risk {
		sum.Risky = 1
	}
	v.metrics.IncVerdict(verdict.RiskReason)
	v.metrics.AddUpdated(n)
	return sum, nil
}

// matchTicket returns the oldest ticket one of whose commit ids starts with
// prefix.
func (v *Verifier) matchTicket(ctx context.Context, prefix string) (*models.OnlineTicket, error) {
	candidates, err := v.store.TicketsMatching(ctx, prefix)
	if err != nil {
		return nil, err
	}
	for _, t := range candidates {
		if t.Hits(prefix) {
			return t, nil
		}
	}
	return nil, nil
}

// closureFor looks for a closure covering the earliest deploy of the
// commits, over every project they were deployed to.
func (v *Verifier) closureFor(ctx context.Context, commitIDs []string) (*models.Closure, error) {
	deploys, err := v.store.DeploysByCommit(ctx, commitIDs)
	if err != nil {
		return nil, err
	}
	if len(deploys) == 0 {
		return nil, nil
	}
	earliest := deploys[0].DeployTime
	var projects []string
	for _, d := range deploys {
		if d.DeployTime.Before(earliest) {
			earliest = d.DeployTime
		}
		if !slices.Contains(projects, d.Project) {
			projects = append(projects, d.Project)
		}
	}
	return v.store.ClosureCovering(ctx, projects, earliest)
}
