package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"bulwark/internal/catalog/models"
	"bulwark/internal/catalog/store"
	"bulwark/internal/period"
	dErrors "bulwark/pkg/domain-errors"
)

type CatalogServiceSuite struct {
	suite.Suite
	store   *store.InMemory
	service *Service
	ctx     context.Context
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = store.NewInMemory()
	s.service = New(s.store)

	s.store.PutSystem(&models.AuditSystem{ID: "sys-1", Name: "Payments", ConfigID: "cfg-1", DBNames: []string{"pay"}})
	s.store.PutServer(&models.Server{Name: "pay-app", SystemID: "sys-1", Kind: models.DomainApp, BGAlias: "pay-bg, pay-admin"})
	s.store.PutServer(&models.Server{Name: "pay-os-1", SystemID: "sys-1", Kind: models.DomainSA})
	s.store.PutServer(&models.Server{Name: "pay-db-1", SystemID: "sys-1", Kind: models.DomainDBA})
	s.store.PutDBNode("pay-db-1", "node-a")
	s.store.PutProject(&models.Project{SystemConfigID: "cfg-1", Name: "pay-api", AppKey: "pay.api"})

	s.store.PutPattern(&models.RegexPattern{ID: "p-1", Name: "drop", Regex: `drop\s+table`})
	s.store.PutPattern(&models.RegexPattern{ID: "p-2", Name: "rm", Regex: `rm\s+-rf`})
	s.store.PutAtom(&models.RuleAtom{ID: "a-perm", Name: "matrix", Status: models.StatusOnline, Type: models.RulePerm})
	s.store.PutAtom(&models.RuleAtom{ID: "a-regex", Name: "danger", Status: models.StatusOnline, Type: models.RuleRegex, PatternIDs: []string{"p-1", "p-2"}})
	s.store.PutAtom(&models.RuleAtom{ID: "a-nouse", Name: "idle", Status: models.StatusOffline, Type: models.RuleNoUse})
	s.store.PutAtom(&models.RuleAtom{ID: "a-job", Name: "transfer", Status: models.StatusOnline, Type: models.RuleJobTrans})
	s.store.PutGroup(&models.RuleGroup{ID: "g-1", AtomIDs: []string{"a-perm", "a-regex", "a-nouse"}, Cadence: period.Quarter, Status: models.StatusOnline})
	s.store.PutGroup(&models.RuleGroup{ID: "g-2", AtomIDs: []string{"a-job"}, Cadence: period.Month, Status: models.StatusOffline})
	s.store.PutTaskManager(&models.TaskManager{ID: "m-1", SystemID: "sys-1", RuleGroupID: "g-1", Status: models.StatusOnline})
	s.store.PutTaskManager(&models.TaskManager{ID: "m-2", SystemID: "sys-1", RuleGroupID: "g-2", Status: models.StatusOnline})
}

func (s *CatalogServiceSuite) TestSystem() {
	s.Run("missing system is not found", func() {
		_, err := s.service.System(s.ctx, "nope")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
	s.Run("existing system", func() {
		sys, err := s.service.System(s.ctx, "sys-1")
		s.Require().NoError(err)
		s.Equal("Payments", sys.Name)
	})
}

func (s *CatalogServiceSuite) TestActiveAtoms() {
	s.Run("offline atoms are skipped", func() {
		atoms, err := s.service.ActiveAtoms(s.ctx, "m-1")
		s.Require().NoError(err)
		s.Len(atoms, 2)
	})
	s.Run("offline group contributes nothing", func() {
		atoms, err := s.service.ActiveAtoms(s.ctx, "m-2")
		s.Require().NoError(err)
		s.Empty(atoms)
	})
	s.Run("system union", func() {
		has, err := s.service.SystemHasRule(s.ctx, "sys-1", models.RulePerm)
		s.Require().NoError(err)
		s.True(has)

		has, err = s.service.SystemHasRule(s.ctx, "sys-1", models.RuleNoUse)
		s.Require().NoError(err)
		s.False(has)

		has, err = s.service.ManagerHasRule(s.ctx, "m-2", models.RuleJobTrans)
		s.Require().NoError(err)
		s.False(has)
	})
}

func (s *CatalogServiceSuite) TestCadence() {
	c, err := s.service.Cadence(s.ctx, "m-1")
	s.Require().NoError(err)
	s.Equal(period.Quarter, c)

	_, err = s.service.Cadence(s.ctx, "missing")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogServiceSuite) TestRegexAtoms() {
	ids, err := s.service.RegexPatternIDs(s.ctx, "m-1")
	s.Require().NoError(err)
	s.Equal([]string{"p-1", "p-2"}, ids)

	atoms, err := s.service.SystemRegexAtoms(s.ctx, "sys-1")
	s.Require().NoError(err)
	s.Require().Len(atoms, 1)
	s.Equal("a-regex", atoms[0].Atom.ID)
	s.Equal([]string{"p-2"}, atoms[0].Matcher.Match("sudo RM -rf /tmp/x"))

	names, err := s.service.AtomNames(s.ctx, []string{"a-regex", "a-perm"})
	s.Require().NoError(err)
	s.Equal(map[string]string{"a-regex": "danger", "a-perm": "matrix"}, names)
}

func (s *CatalogServiceSuite) TestAssetScope() {
	s.Run("application assets expand business groups", func() {
		names, err := s.service.AssetNames(s.ctx, "sys-1", models.DomainApp)
		s.Require().NoError(err)
		s.Equal([]string{"pay-bg", "pay-admin"}, names)
	})
	s.Run("db scope", func() {
		scope, err := s.service.DBScope(s.ctx, "sys-1")
		s.Require().NoError(err)
		s.True(scope.Contains("pay-db-1", "", "pay"))
		s.True(scope.Contains("other", "node-a", ""))
		s.False(scope.Contains("pay-db-1", "", "hr"))
		s.False(scope.Contains("other", "node-z", "pay"))
	})
	s.Run("appkeys", func() {
		sys, err := s.service.System(s.ctx, "sys-1")
		s.Require().NoError(err)
		keys, err := s.service.AppKeys(s.ctx, sys)
		s.Require().NoError(err)
		s.Equal([]string{"pay.api"}, keys)
	})
}
