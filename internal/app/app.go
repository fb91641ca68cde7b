// Package app assembles the stores and services shared by the server and the
// batch jobs. Postgres, Redis and Kafka are optional; without them the
// in-memory stores and the log sender are used.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/time/rate"

	assetstore "bulwark/internal/asset/store"
	catalogservice "bulwark/internal/catalog/service"
	catalogstore "bulwark/internal/catalog/store"
	"bulwark/internal/identity/adapters"
	"bulwark/internal/identity/adapters/directory"
	"bulwark/internal/identity/cache"
	idmetrics "bulwark/internal/identity/metrics"
	"bulwark/internal/identity/ports"
	idservice "bulwark/internal/identity/service"
	"bulwark/internal/identity/store/alias"
	"bulwark/internal/identity/store/position"
	notifyadapters "bulwark/internal/notify/adapters"
	notifymetrics "bulwark/internal/notify/metrics"
	notifyservice "bulwark/internal/notify/service"
	notifystore "bulwark/internal/notify/store"
	"bulwark/internal/platform/config"
	"bulwark/internal/platform/database"
	"bulwark/internal/platform/kafka"
	platformmetrics "bulwark/internal/platform/metrics"
	platformredis "bulwark/internal/platform/redis"
	reviewmetrics "bulwark/internal/review/metrics"
	reviewservice "bulwark/internal/review/service"
	reviewstore "bulwark/internal/review/store"
	"bulwark/internal/risk/domains"
	riskmetrics "bulwark/internal/risk/metrics"
	riskservice "bulwark/internal/risk/service"
	riskstore "bulwark/internal/risk/store"
	taskmetrics "bulwark/internal/task/metrics"
	taskservice "bulwark/internal/task/service"
	taskstore "bulwark/internal/task/store"
	ticketmetrics "bulwark/internal/ticket/metrics"
	ticketservice "bulwark/internal/ticket/service"
	ticketstore "bulwark/internal/ticket/store"
	"bulwark/pkg/platform/circuit"
	"bulwark/pkg/platform/tx"
)

type assetStore interface {
	reviewservice.Assets
	riskservice.ActivityStore
	domains.Assets
}

type annotationStore interface {
	riskservice.AnnotationStore
	reviewservice.Annotations
}

type snapshotStore interface {
	riskservice.SnapshotStore
	reviewservice.Snapshots
}

type positionStore interface {
	riskservice.TransferLog
	reviewservice.Positions
}

type taskStore interface {
	taskservice.Store
	reviewservice.TaskStore
}

type ticketStore interface {
	ticketservice.Store
	reviewservice.Tickets
}

type commentStore interface {
	reviewservice.CommentStore
	taskservice.CommentStore
}

type boardStore interface {
	reviewservice.BoardStore
	taskservice.BoardStore
}

type outbox interface {
	notifyservice.Outbox
	notifyservice.Queue
}

// App holds the wired services of one process.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	DB    *sql.DB
	Redis *platformredis.Client
	Kafka *kgo.Client

	Catalog    *catalogservice.Service
	Normalizer *idservice.Normalizer
	Dispatcher *notifyservice.Dispatcher
	Relay      *notifyservice.Relay
	Tasks      *taskservice.Service
	Generator  *taskservice.Generator
	Feeds      *reviewservice.FeedService
	Comments   *reviewservice.CommentService
	Preheater  *reviewservice.Preheater
	Verifier   *ticketservice.Verifier

	RiskRunner  *riskservice.Runner
	JobTransfer *riskservice.Runner
	Reminder    *riskservice.Reminder
	LogScanner  *riskservice.LogScanner

	Metrics *platformmetrics.Metrics

	tasks      taskStore
	reviewOpts []reviewservice.Option
}

// New connects to the configured backends and builds every service.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger, Metrics: platformmetrics.New()}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	a.DB = db
	if db != nil {
		if err := database.Migrate(ctx, db); err != nil {
			a.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	rc, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Redis = rc

	if len(cfg.Kafka.Brokers) > 0 {
		kc, err := kafka.NewClient(cfg.Kafka)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Kafka = kc
		if err := kafka.EnsureTopic(ctx, kc, cfg.Kafka.NotifyTopic, 1, 1); err != nil {
			logger.WarnContext(ctx, "ensure notify topic failed", "topic", cfg.Kafka.NotifyTopic, "error", err)
		}
	}

	a.wire()
	return a, nil
}

func (a *App) wire() {
	cfg, logger := a.Config, a.Logger

	var (
		catalogStore catalogservice.Store
		assets       assetStore
		annotations  annotationStore
		snapshots    snapshotStore
		positions    positionStore
		aliases      idservice.AliasStore
		tasks        taskStore
		tickets      ticketStore
		comments     commentStore
		board        boardStore
		messages     outbox
		txm          taskservice.StoreTx
	)
	if a.DB != nil {
		catalogStore = catalogstore.NewPostgres(a.DB)
		assets = assetstore.NewPostgres(a.DB)
		annotations = riskstore.NewPostgresAnnotations(a.DB)
		snapshots = riskstore.NewPostgresSnapshots(a.DB)
		positions = position.NewPostgres(a.DB)
		aliases = alias.NewPostgres(a.DB)
		tasks = taskstore.NewPostgres(a.DB)
		tickets = ticketstore.NewPostgres(a.DB)
		comments = reviewstore.NewPostgresComments(a.DB)
		board = reviewstore.NewPostgresBoard(a.DB)
		messages = notifystore.NewPostgres(a.DB)
		txm = tx.NewManager(a.DB)
	} else {
		logger.Warn("no database configured, using in-memory stores")
		catalogStore = catalogstore.NewInMemory()
		assets = assetstore.NewInMemory()
		annotations = riskstore.NewInMemoryAnnotations()
		snapshots = riskstore.NewInMemorySnapshots()
		positions = position.NewInMemory()
		aliases = alias.NewInMemory()
		tasks = taskstore.NewInMemory()
		tickets = ticketstore.NewInMemory()
		comments = reviewstore.NewInMemoryComments()
		board = reviewstore.NewInMemoryBoard()
		messages = notifystore.NewInMemory()
		txm = tx.NewManager(nil)
	}

	a.Catalog = catalogservice.New(catalogStore, catalogservice.WithLogger(logger))
	im := idmetrics.New()
	a.Normalizer = idservice.New(aliases, a.resolver(im),
		idservice.WithBatchSize(cfg.Identity.EmailBatchSize),
		idservice.WithLogger(logger),
		idservice.WithMetrics(im),
	)

	var marker notifyservice.Marker = notifystore.NewInMemoryMarker()
	if a.Redis != nil {
		marker = notifystore.NewRedisMarker(a.Redis.Client)
	}
	nm := notifymetrics.New()
	a.Dispatcher = notifyservice.NewDispatcher(messages, marker,
		notifyservice.WithLogger(logger),
		notifyservice.WithMetrics(nm),
	)
	var sender notifyservice.Sender = notifyadapters.NewLogSender(logger)
	if a.Kafka != nil {
		sender = notifyadapters.NewKafkaSender(a.Kafka, cfg.Kafka.NotifyTopic)
	}
	a.Relay = notifyservice.NewRelay(messages, sender,
		notifyservice.WithRelayLogger(logger),
		notifyservice.WithRelayMetrics(nm),
		notifyservice.WithBreaker(circuit.New("notify-relay")),
		notifyservice.WithInterval(cfg.Notify.RelayInterval),
		notifyservice.WithBatch(cfg.Notify.RelayBatch),
		notifyservice.WithMaxAttempts(cfg.Notify.MaxAttempts),
	)

	tm := taskmetrics.New()
	a.Tasks = taskservice.New(tasks, a.Catalog, comments, board, a.Dispatcher, a.Normalizer,
		taskservice.WithLogger(logger),
		taskservice.WithMetrics(tm),
		taskservice.WithTx(txm),
		taskservice.WithDebug(cfg.Audit.Debug),
		taskservice.WithAuditUsers(cfg.Audit.Users),
		taskservice.WithReportHost(cfg.Audit.HTTPSHost),
		taskservice.WithTicketMarkerTTL(cfg.Notify.TicketMarkerTTL),
	)
	a.Generator = taskservice.NewGenerator(tasks, a.Catalog,
		taskservice.WithLogger(logger),
		taskservice.WithMetrics(tm),
	)

	reviewOpts := []reviewservice.Option{
		reviewservice.WithLogger(logger),
		reviewservice.WithMetrics(reviewmetrics.New()),
		reviewservice.WithServiceAccounts(cfg.Audit.ServiceAccounts),
		reviewservice.WithAuditUsers(cfg.Audit.Users),
	}
	if a.Redis != nil {
		reviewOpts = append(reviewOpts, reviewservice.WithCache(reviewstore.NewRedisFeedCache(a.Redis.Client, cfg.Audit.FeedCacheTTL)))
	}
	a.Feeds = reviewservice.NewFeedService(reviewservice.FeedDeps{
		Tasks:       tasks,
		Catalog:     a.Catalog,
		Assets:      assets,
		Annotations: annotations,
		Snapshots:   snapshots,
		Positions:   positions,
		Identities:  a.Normalizer,
		TicketData:  tickets,
		Comments:    comments,
	}, reviewOpts...)
	a.Comments = reviewservice.NewCommentService(reviewservice.CommentDeps{
		Tasks:      tasks,
		Catalog:    a.Catalog,
		Identities: a.Normalizer,
		Comments:   comments,
		Board:      board,
		Status:     a.Tasks,
		Notifier:   a.Dispatcher,
	}, reviewOpts...)
	a.tasks, a.reviewOpts = tasks, reviewOpts
	a.Preheater = a.NewPreheater(cfg.Audit.PreheatConcurrency)

	a.Verifier = ticketservice.NewVerifier(tickets,
		ticketservice.WithLogger(logger),
		ticketservice.WithMetrics(ticketmetrics.New()),
	)

	a.wireRisk(assets, annotations, snapshots, positions, tasks)
}

func (a *App) wireRisk(assets assetStore, annotations annotationStore, snapshots snapshotStore, positions positionStore, tasks taskStore) {
	cfg, logger := a.Config, a.Logger
	opts := []riskservice.Option{
		riskservice.WithLogger(logger),
		riskservice.WithMetrics(riskmetrics.New()),
	}
	set, err := domains.NewSet(a.Catalog, assets, a.Normalizer, domains.Policy{
		BGAdminRoles:         cfg.Audit.BGAdminRoles,
		SelfOperatedHostTags: cfg.Audit.SelfOperatedHostTags,
		DBAAdmins:            cfg.Audit.DBAAdmins,
	})
	if err != nil {
		// A bad host pattern disables only the self-operated exemption.
		logger.Error("invalid self-operated host tags, exemption disabled", "error", err)
		set, _ = domains.NewSet(a.Catalog, assets, a.Normalizer, domains.Policy{
			BGAdminRoles: cfg.Audit.BGAdminRoles,
			DBAAdmins:    cfg.Audit.DBAAdmins,
		})
	}

	a.RiskRunner = riskservice.NewRunner(a.Catalog, []riskservice.Handler{
		riskservice.NewMatrixHandler(set, annotations, opts...),
		riskservice.NewResignHandler(set, annotations, a.Normalizer.Resolver(), opts...),
		riskservice.NewDormancyHandler(a.Catalog, assets, annotations, opts,
			riskservice.WithIdleDays(cfg.Audit.DormancyDays),
			riskservice.WithWhiteUsers(cfg.Audit.DormancyWhiteUsers),
		),
	}, 0, opts...)
	a.JobTransfer = riskservice.NewRunner(a.Catalog, []riskservice.Handler{
		riskservice.NewJobTransferHandler(a.Catalog, set, tasks, positions, a.Normalizer, snapshots, opts...),
	}, 0, opts...)
	a.Reminder = riskservice.NewReminder(annotations, a.Catalog, tasks, a.Dispatcher,
		cfg.Audit.Users, cfg.Audit.HTTPSHost, opts...)
	a.LogScanner = riskservice.NewLogScanner(a.Catalog, assets, 0, opts...)
}

// NewPreheater warms the feed cache of unfinished tasks with the given
// parallelism.
func (a *App) NewPreheater(concurrency int) *reviewservice.Preheater {
	return reviewservice.NewPreheater(a.tasks, a.Feeds, concurrency, a.reviewOpts...)
}

// resolver builds the directory port: the HTTP client behind a rate limiter
// and a breaker, fronted by the in-process LRU and the shared Redis cache.
func (a *App) resolver(m *idmetrics.Metrics) ports.Resolver {
	cfg := a.Config.Identity
	var next ports.Resolver
	if cfg.DirectoryURL == "" {
		a.Logger.Warn("no directory configured, using the static resolver")
		next = adapters.NewStaticResolver()
	} else {
		next = directory.New(cfg.DirectoryURL,
			directory.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
			directory.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.Burst)),
			directory.WithBreaker(circuit.New("directory",
				circuit.WithFailureThreshold(cfg.BreakerFailures),
				circuit.WithCooldown(cfg.BreakerCooldown),
			)),
			directory.WithLogger(a.Logger),
			directory.WithMetrics(m),
		)
	}
	opts := []adapters.Option{
		adapters.WithLogger(a.Logger),
		adapters.WithMetrics(m),
	}
	if a.Redis != nil {
		opts = append(opts, adapters.WithRedis(cache.NewRedisCache(a.Redis.Client, cfg.RedisCacheTTL)))
	}
	return adapters.NewCachedResolver(next, cache.NewProfileCache(cfg.CacheCapacity, cfg.CacheTTL), opts...)
}

// Health pings the configured backends.
func (a *App) Health(ctx context.Context) error {
	var errs []error
	if a.DB != nil {
		if err := a.DB.PingContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Health(ctx); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Close releases the backend connections.
func (a *App) Close() {
	if a.Kafka != nil {
		a.Kafka.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
