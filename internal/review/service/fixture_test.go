package service

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks TaskStore,Catalog,Assets,Annotations,Snapshots,Positions,Identities,Tickets,CommentStore,BoardStore,StatusChecker,Notifier,FeedCache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	assetstore "bulwark/internal/asset/store"
	catalog "bulwark/internal/catalog/models"
	catalogservice "bulwark/internal/catalog/service"
	catalogstore "bulwark/internal/catalog/store"
	identity "bulwark/internal/identity/models"
	"bulwark/internal/identity/store/position"
	"bulwark/internal/period"
	"bulwark/internal/review/service/mocks"
	reviewstore "bulwark/internal/review/store"
	riskstore "bulwark/internal/risk/store"
	taskmodels "bulwark/internal/task/models"
	taskstore "bulwark/internal/task/store"
	ticketstore "bulwark/internal/ticket/store"
)

var (
	fixedNow = time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	lastDay  = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	discard  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// fixture wires the in-memory stores around one quarterly task of system
// sys-1: app backend pay-bg, host web-01 and database server db-01.
type fixture struct {
	catalog     *catalogstore.InMemory
	tasks       *taskstore.InMemory
	assets      *assetstore.InMemory
	annotations *riskstore.InMemoryAnnotations
	snapshots   *riskstore.InMemorySnapshots
	positions   *position.InMemory
	tickets     *ticketstore.InMemory
	comments    *reviewstore.InMemoryComments
	board       *reviewstore.InMemoryBoard
	identities  *mocks.MockIdentities
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	f := &fixture{
		catalog:     catalogstore.NewInMemory(),
		tasks:       taskstore.NewInMemory(),
		assets:      assetstore.NewInMemory(),
		annotations: riskstore.NewInMemoryAnnotations(),
		snapshots:   riskstore.NewInMemorySnapshots(),
		positions:   position.NewInMemory(),
		tickets:     ticketstore.NewInMemory(),
		comments:    reviewstore.NewInMemoryComments(),
		board:       reviewstore.NewInMemoryBoard(),
		identities:  mocks.NewMockIdentities(ctrl),
	}
	f.catalog.PutSystem(&catalog.AuditSystem{
		ID:               "sys-1",
		Name:             "支付",
		ConfigID:         "cfg-1",
		OnlineTicketDept: "ot-1",
		DeployTicketDept: "dp-1",
		AppAuditors:      []string{"10001"},
		SysDBAuditors:    []string{"10002"},
		TicketAuditors:   []string{"10003"},
	})
	f.catalog.PutServer(&catalog.Server{Name: "pay-app", SystemID: "sys-1", Kind: catalog.DomainApp, BGAlias: "pay-bg"})
	f.catalog.PutServer(&catalog.Server{Name: "web-01", SystemID: "sys-1", Kind: catalog.DomainSA})
	f.catalog.PutServer(&catalog.Server{Name: "db-01", SystemID: "sys-1", Kind: catalog.DomainDBA})
	f.catalog.PutProject(&catalog.Project{SystemConfigID: "cfg-1", Name: "pay", AppKey: "pay-api"})
	f.catalog.PutAtom(&catalog.RuleAtom{ID: "a-job", Name: "转岗", Status: catalog.StatusOnline, Type: catalog.RuleJobTrans})
	f.catalog.PutAtom(&catalog.RuleAtom{ID: "a-regex", Name: "高危命令", Status: catalog.StatusOnline, Type: catalog.RuleRegex, PatternIDs: []string{"p-1"}})
	f.catalog.PutGroup(&catalog.RuleGroup{ID: "rg-1", AtomIDs: []string{"a-job", "a-regex"}, Cadence: period.Quarter, Status: catalog.StatusOnline})
	f.catalog.PutTaskManager(&catalog.TaskManager{ID: "tm-1", SystemID: "sys-1", RuleGroupID: "rg-1", Status: catalog.StatusOnline})

	require.NoError(t, f.tasks.Create(context.Background(), &taskmodels.Task{
		ID:            "task-1",
		TaskManagerID: "tm-1",
		Period:        "2024年Q1",
		Status:        taskmodels.StatusStarted,
		CreatedAt:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}))
	return f
}

// directory answers identity lookups from fixed alias and profile tables.
func (f *fixture) directory(aliases map[string][]string, profiles map[string]identity.Profile) {
	f.identities.EXPECT().ResolveToCanonical(gomock.Any(), gomock.Any(), "sys-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, tags []string, _ string, _ catalog.Domain) (map[string][]string, error) {
			out := map[string][]string{}
			for _, t := range tags {
				if ids, ok := aliases[t]; ok {
					out[t] = ids
				}
			}
			return out, nil
		}).AnyTimes()
	f.identities.EXPECT().Profiles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tags []string) map[string]identity.Profile {
			out := make(map[string]identity.Profile, len(tags))
			for _, t := range tags {
				out[t] = profiles[t]
			}
			return out
		}).AnyTimes()
}

func (f *fixture) catalogService() *catalogservice.Service {
	return catalogservice.New(f.catalog, catalogservice.WithLogger(discard))
}

func (f *fixture) feedService(opts ...Option) *FeedService {
	base := []Option{
		WithLogger(discard),
		WithClock(func() time.Time { return fixedNow }),
		WithServiceAccounts([]string{"svc-bot"}),
	}
	return NewFeedService(FeedDeps{
		Tasks:       f.tasks,
		Catalog:     f.catalogService(),
		Assets:      f.assets,
		Annotations: f.annotations,
		Snapshots:   f.snapshots,
		Positions:   f.positions,
		Identities:  f.identities,
		TicketData:  f.tickets,
		Comments:    f.comments,
	}, append(base, opts...)...)
}
