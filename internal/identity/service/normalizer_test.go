package service

//go:generate mockgen -source=normalizer.go -destination=mocks/mocks.go -package=mocks AliasStore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalog "bulwark/internal/catalog/models"
	"bulwark/internal/identity/models"
	portmocks "bulwark/internal/identity/ports/mocks"
	"bulwark/internal/identity/service/mocks"
)

type NormalizerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	aliases  *mocks.MockAliasStore
	resolver *portmocks.MockResolver
	service  *Normalizer
	ctx      context.Context
}

func TestNormalizerSuite(t *testing.T) {
	suite.Run(t, new(NormalizerSuite))
}

func (s *NormalizerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.aliases = mocks.NewMockAliasStore(s.ctrl)
	s.resolver = portmocks.NewMockResolver(s.ctrl)
	s.service = New(s.aliases, s.resolver,
		WithBatchSize(2),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.ctx = context.Background()
}

func (s *NormalizerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NormalizerSuite) osAliases() []*models.Alias {
	return []*models.Alias{
		{ID: "1", Name: "deploy", SystemID: "sys-1", Domain: catalog.DomainSA, AccountID: "1001", Email: "alice@example.com"},
		{ID: "2", Name: "deploy", SystemID: "sys-1", Domain: catalog.DomainSA, AccountID: "1002", Email: "bob@example.com"},
		{ID: "3", Name: "ops", SystemID: "sys-1", Domain: catalog.DomainSA, AccountID: "1001", Email: "alice@example.com"},
	}
}

func (s *NormalizerSuite) TestCanonicalize() {
	s.Run("aliased tags become the union of their targets", func() {
		s.aliases.EXPECT().ListBySystem(gomock.Any(), "sys-1", catalog.DomainSA).Return(s.osAliases(), nil)

		got, err := s.service.Canonicalize(s.ctx, []string{"deploy", "carol"}, "sys-1", catalog.DomainSA)
		s.Require().NoError(err)
		s.Equal([]string{"alice", "bob", "carol"}, got)
	})

	s.Run("reverse lookup returns alias names", func() {
		s.aliases.EXPECT().ListBySystem(gomock.Any(), "sys-1", catalog.DomainSA).Return(s.osAliases(), nil)

		got, err := s.service.ResolveFromCanonical(s.ctx, []string{"alice"}, "sys-1", catalog.DomainSA)
		s.Require().NoError(err)
		s.Equal(map[string][]string{"alice": {"deploy", "ops"}}, got)
	})

	s.Run("application aliases resolve to account ids", func() {
		s.aliases.EXPECT().ListBySystem(gomock.Any(), "sys-1", catalog.DomainApp).Return([]*models.Alias{
			{Name: "svc_pay", Domain: catalog.DomainApp, AccountID: "2001", Email: "dave@example.com"},
		}, nil)

		got, err := s.service.ResolveToCanonical(s.ctx, []string{"svc_pay"}, "sys-1", catalog.DomainApp)
		s.Require().NoError(err)
		s.Equal(map[string][]string{"svc_pay": {"2001"}}, got)
	})

	s.Run("store failure is internal", func() {
		s.aliases.EXPECT().ListBySystem(gomock.Any(), "sys-1", catalog.DomainSA).Return(nil, errors.New("db down"))

		_, err := s.service.Canonicalize(s.ctx, []string{"deploy"}, "sys-1", catalog.DomainSA)
		s.Error(err)
	})
}

func (s *NormalizerSuite) TestToAccountIDs() {
	s.resolver.EXPECT().ByEmails(gomock.Any(), []string{"alice", "bob"}).Return(map[string]models.Profile{
		"alice": {AccountID: "1001", Email: "alice@example.com"},
	}, nil)
	s.resolver.EXPECT().ByEmails(gomock.Any(), []string{"carol"}).Return(map[string]models.Profile{
		"carol": {AccountID: "1003", Email: "carol@example.com"},
	}, nil)

	ids, reverse, err := s.service.ToAccountIDs(s.ctx, []string{"42", "alice", "bob", "carol", "42"})
	s.Require().NoError(err)
	s.Equal([]string{"42", "1001", "1003"}, ids)
	s.Equal(map[string]string{"1001": "alice", "1003": "carol"}, reverse)
	s.Equal([]string{"42", "alice"}, FromAccountIDs([]string{"42", "1001"}, reverse))
}

func (s *NormalizerSuite) TestDirectoryOutageIsolatesBatches() {
	s.Run("account ids keep numeric tags and later batches", func() {
		s.resolver.EXPECT().ByEmails(gomock.Any(), []string{"alice", "bob"}).Return(nil, errors.New("directory unreachable"))
		s.resolver.EXPECT().ByEmails(gomock.Any(), []string{"carol"}).Return(map[string]models.Profile{
			"carol": {AccountID: "1003", Email: "carol@example.com"},
		}, nil)

		ids, reverse, err := s.service.ToAccountIDs(s.ctx, []string{"40008", "alice", "bob", "carol"})
		s.Require().NoError(err)
		s.Equal([]string{"40008", "1003"}, ids)
		s.Equal(map[string]string{"1003": "carol"}, reverse)
	})

	s.Run("email prefixes skip the failed batch", func() {
		s.resolver.EXPECT().ByAccountIDs(gomock.Any(), []string{"1001", "1002"}).Return(nil, errors.New("directory unreachable"))
		s.resolver.EXPECT().ByAccountIDs(gomock.Any(), []string{"1003"}).Return(map[string]models.Profile{
			"1003": {AccountID: "1003", Email: "carol@example.com"},
		}, nil)

		prefixes, err := s.service.EmailPrefixes(s.ctx, []string{"1001", "1002", "1003"})
		s.Require().NoError(err)
		s.Equal([]string{"carol"}, prefixes)
	})

	s.Run("cancelled context still fails", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		s.resolver.EXPECT().ByEmails(gomock.Any(), []string{"alice"}).Return(nil, context.Canceled)

		_, _, err := s.service.ToAccountIDs(ctx, []string{"alice"})
		s.Error(err)
	})
}

func (s *NormalizerSuite) TestProfilesIsolatesFailedBatches() {
	s.resolver.EXPECT().ByAccountIDs(gomock.Any(), []string{"1001", "1002"}).Return(nil, errors.New("timeout"))
	s.resolver.EXPECT().ByAccountIDs(gomock.Any(), []string{"1003"}).Return(map[string]models.Profile{
		"1003": {AccountID: "1003", Name: "Carol", DeptName: "Tech-Platform-Infra"},
	}, nil)
	s.resolver.EXPECT().ByEmails(gomock.Any(), []string{"erin"}).Return(map[string]models.Profile{}, nil)

	got := s.service.Profiles(s.ctx, []string{"1001", "1002", "1003", "erin"})
	s.Len(got, 4)
	s.True(got["1001"].IsZero())
	s.Equal("Carol", got["1003"].Name)
	s.True(got["erin"].IsZero())
}

func (s *NormalizerSuite) TestEmailPrefixesAndAliasNames() {
	s.resolver.EXPECT().ByAccountIDs(gomock.Any(), []string{"1001", "1002"}).Return(map[string]models.Profile{
		"1001": {AccountID: "1001", Email: "alice@example.com"},
		"1002": {AccountID: "1002", Email: "bob@example.com"},
	}, nil)
	prefixes, err := s.service.EmailPrefixes(s.ctx, []string{"1001", "1002"})
	s.Require().NoError(err)
	s.Equal([]string{"alice", "bob"}, prefixes)

	s.aliases.EXPECT().ListBySystem(gomock.Any(), "sys-1", catalog.Domain("")).Return(s.osAliases(), nil)
	names, err := s.service.AliasNames(s.ctx, "sys-1", []string{"1001"})
	s.Require().NoError(err)
	s.Equal([]string{"deploy", "ops"}, names)
}
