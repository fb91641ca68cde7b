// Package service answers rule and asset scope questions on top of the
// catalog store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"bulwark/internal/catalog/models"
	"bulwark/internal/period"
	dErrors "bulwark/pkg/domain-errors"
	"bulwark/pkg/platform/sentinel"
	pkgstrings "bulwark/pkg/platform/strings"
)

// Store is the catalog read surface.
type Store interface {
	System(ctx context.Context, id string) (*models.AuditSystem, error)
	Systems(ctx context.Context) ([]*models.AuditSystem, error)
	Servers(ctx context.Context, systemID string, kinds ...models.Domain) ([]*models.Server, error)
	DBNodes(ctx context.Context, serverNames []string) ([]string, error)
	AppKeys(ctx context.Context, systemConfigID string) ([]string, error)
	TaskManager(ctx context.Context, id string) (*models.TaskManager, error)
	TaskManagers(ctx context.Context, status models.Status) ([]*models.TaskManager, error)
	TaskManagersBySystem(ctx context.Context, systemID string) ([]*models.TaskManager, error)
	RuleGroup(ctx context.Context, id string) (*models.RuleGroup, error)
	RuleAtoms(ctx context.Context, ids []string) ([]*models.RuleAtom, error)
	Patterns(ctx context.Context, ids []string) ([]*models.RegexPattern, error)
}

type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) System(ctx context.Context, id string) (*models.AuditSystem, error) {
	sys, err := s.store.System(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "audit system not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit system")
	}
	return sys, nil
}

func (s *Service) Systems(ctx context.Context) ([]*models.AuditSystem, error) {
	systems, err := s.store.Systems(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit systems")
	}
	return systems, nil
}

func (s *Service) TaskManager(ctx context.Context, id string) (*models.TaskManager, error) {
	m, err := s.store.TaskManager(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "task manager not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load task manager")
	}
	return m, nil
}

// OnlineTaskManagers lists the managers that mint tasks.
func (s *Service) OnlineTaskManagers(ctx context.Context) ([]*models.TaskManager, error) {
	managers, err := s.store.TaskManagers(ctx, models.StatusOnline)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list task managers")
	}
	return managers, nil
}

func (s *Service) TaskManagersBySystem(ctx context.Context, systemID string) ([]*models.TaskManager, error) {
	managers, err := s.store.TaskManagersBySystem(ctx, systemID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list task managers")
	}
	return managers, nil
}

// Cadence returns the review cadence of a manager's rule group.
func (s *Service) Cadence(ctx context.Context, managerID string) (period.Cadence, error) {
	m, err := s.TaskManager(ctx, managerID)
	if err != nil {
		return "", err
	}
	group, err := s.store.RuleGroup(ctx, m.RuleGroupID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeNotFound, "rule group not found")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rule group")
	}
	return period.ParseCadence(string(group.Cadence))
}

// ActiveAtoms returns the online atoms of a manager's rule group. An offline
// group contributes nothing.
func (s *Service) ActiveAtoms(ctx context.Context, managerID string) ([]*models.RuleAtom, error) {
	m, err := s.TaskManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return s.activeAtoms(ctx, m)
}

func (s *Service) activeAtoms(ctx context.Context, m *models.TaskManager) ([]*models.RuleAtom, error) {
	group, err := s.store.RuleGroup(ctx, m.RuleGroupID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "task manager references missing rule group",
				"task_manager_id", m.ID,
				"rule_group_id", m.RuleGroupID,
			)
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rule group")
	}
	if !group.IsOnline() {
		return nil, nil
	}
	atoms, err := s.store.RuleAtoms(ctx, group.AtomIDs)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rule atoms")
	}
	out := atoms[:0]
	for _, a := range atoms {
		if a.IsOnline() {
			out = append(out, a)
		}
	}
	return out, nil
}

// ActiveAtomsBySystem unions the online atoms of every online manager of a system.
func (s *Service) ActiveAtomsBySystem(ctx context.Context, systemID string) ([]*models.RuleAtom, error) {
	managers, err := s.TaskManagersBySystem(ctx, systemID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var out []*models.RuleAtom
	for _, m := range managers {
		if !m.IsOnline() {
			continue
		}
		atoms, err := s.activeAtoms(ctx, m)
		if err != nil {
			return nil, err
		}
		for _, a := range atoms {
			if _, ok := seen[a.ID]; ok {
				continue
			}
			seen[a.ID] = struct{}{}
			out = append(out, a)
		}
	}
	return out, nil
}

// SystemHasRule reports whether an online atom of the given type applies to the system.
func (s *Service) SystemHasRule(ctx context.Context, systemID string, ruleType models.RuleType) (bool, error) {
	atoms, err := s.ActiveAtomsBySystem(ctx, systemID)
	if err != nil {
		return false, err
	}
	return hasType(atoms, ruleType), nil
}

// ManagerHasRule reports whether a manager's rule group configures an online atom of the type.
func (s *Service) ManagerHasRule(ctx context.Context, managerID string, ruleType models.RuleType) (bool, error) {
	atoms, err := s.ActiveAtoms(ctx, managerID)
	if err != nil {
		return false, err
	}
	return hasType(atoms, ruleType), nil
}

func hasType(atoms []*models.RuleAtom, ruleType models.RuleType) bool {
	return slices.ContainsFunc(atoms, func(a *models.RuleAtom) bool { return a.Type == ruleType })
}

// RegexAtom pairs a REGEX rule atom with its compiled matcher.
type RegexAtom struct {
	Atom    *models.RuleAtom
	Matcher *Matcher
}

// RegexAtoms returns the manager's online REGEX atoms with their patterns compiled.
func (s *Service) RegexAtoms(ctx context.Context, managerID string) ([]RegexAtom, error) {
	atoms, err := s.ActiveAtoms(ctx, managerID)
	if err != nil {
		return nil, err
	}
	var out []RegexAtom
	for _, a := range atoms {
		if a.Type != models.RuleRegex {
			continue
		}
		patterns, err := s.store.Patterns(ctx, a.PatternIDs)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load regex patterns")
		}
		m, err := NewMatcher(patterns)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("rule atom %s has an invalid pattern", a.Name))
		}
		out = append(out, RegexAtom{Atom: a, Matcher: m})
	}
	return out, nil
}

// RegexPatternIDs is the set of pattern ids a command log must hit to count
// for the manager's REGEX atoms.
func (s *Service) RegexPatternIDs(ctx context.Context, managerID string) ([]string, error) {
	atoms, err := s.RegexAtoms(ctx, managerID)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, a := range atoms {
		ids = append(ids, a.Matcher.IDs()...)
	}
	return pkgstrings.DedupeAndTrim(ids), nil
}

// SystemRegexAtoms compiles the REGEX atoms of every online manager of a system.
func (s *Service) SystemRegexAtoms(ctx context.Context, systemID string) ([]RegexAtom, error) {
	managers, err := s.TaskManagersBySystem(ctx, systemID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var out []RegexAtom
	for _, m := range managers {
		if !m.IsOnline() {
			continue
		}
		atoms, err := s.RegexAtoms(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range atoms {
			if _, ok := seen[a.Atom.ID]; ok {
				continue
			}
			seen[a.Atom.ID] = struct{}{}
			out = append(out, a)
		}
	}
	return out, nil
}

// AtomNames maps rule atom ids to display names.
func (s *Service) AtomNames(ctx context.Context, ids []string) (map[string]string, error) {
	atoms, err := s.store.RuleAtoms(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rule atoms")
	}
	out := make(map[string]string, len(atoms))
	for _, a := range atoms {
		out[a.ID] = a.Name
	}
	return out, nil
}

// AssetNames returns the names records of the system's assets of one kind are stored under.
func (s *Service) AssetNames(ctx context.Context, systemID string, kind models.Domain) ([]string, error) {
	servers, err := s.store.Servers(ctx, systemID, kind)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list servers")
	}
	var names []string
	for _, srv := range servers {
		names = append(names, srv.AssetNames()...)
	}
	return pkgstrings.DedupeAndTrim(names), nil
}

// DBScope resolves the database assets of a system.
func (s *Service) DBScope(ctx context.Context, systemID string) (models.DBScope, error) {
	sys, err := s.System(ctx, systemID)
	if err != nil {
		return models.DBScope{}, err
	}
	names, err := s.AssetNames(ctx, systemID, models.DomainDBA)
	if err != nil {
		return models.DBScope{}, err
	}
	nodes, err := s.store.DBNodes(ctx, names)
	if err != nil {
		return models.DBScope{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list db nodes")
	}
	return models.DBScope{ServerNames: names, Nodes: pkgstrings.DedupeAndTrim(nodes), DBNames: sys.DBNames}, nil
}

// AppKeys lists the deploy appkeys bound to a system.
func (s *Service) AppKeys(ctx context.Context, sys *models.AuditSystem) ([]string, error) {
	keys, err := s.store.AppKeys(ctx, sys.ConfigID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list appkeys")
	}
	return keys, nil
}
