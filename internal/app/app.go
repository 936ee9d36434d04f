package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Grpc "github.com/DRSN-tech/storefront/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront/internal/infrastructure/minio"
	"github.com/DRSN-tech/storefront/internal/infrastructure/restapi"
	repoConv "github.com/DRSN-tech/storefront/internal/repository/converter"
	memRepo "github.com/DRSN-tech/storefront/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/storefront/internal/repository/minio"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	redisRepo "github.com/DRSN-tech/storefront/internal/repository/redis"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthCheckInterval = 15 * time.Second
	cartJanitorInterval = time.Hour
	imageResolveLimit   = 8
)

// App собирает зависимости витрины и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	worker  *kafka.OutboxWorker
	janitor *pgdb.CartRepo
	checks  map[string]v1Grpc.Check
}

// storage: хранилища корзин, сессий и журнала заказов для выбранного драйвера.
type storage struct {
	carts    usecase.CartRepository
	sessions usecase.SessionRepository
	tx       usecase.Transactor
	placed   usecase.PlacedOrderRepository
	outbox   usecase.OutboxEventRepository
	store    kafka.OutboxStore
	dsn      string
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0),
		checks: make(map[string]v1Grpc.Check),
	}

	st, err := a.initStorage()
	if err != nil {
		a.closeOnError()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	producer, err := a.initKafka(st)
	if err != nil {
		a.closeOnError()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	images, err := a.initImages()
	if err != nil {
		a.closeOnError()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	api := restapi.NewClient(cfg.Api, log)
	guard := usecase.NewSessionGuard(st.sessions, log)
	hoursUC := usecase.NewHoursUC(api, time.Now, cfg.Store.Location, log)

	uc := &v1Http.Usecases{
		Catalog: usecase.NewCatalogUC(api, api, hoursUC, images, log),
		Hours:   hoursUC,
		Cart:    usecase.NewCartUC(st.carts, api, guard, log),
		Checkout: usecase.NewCheckoutUC(usecase.CheckoutDeps{
			CartRepo:    st.carts,
			OrderAPI:    api,
			ScheduleAPI: api,
			LocationAPI: api,
			Hours:       hoursUC,
			Sessions:    guard,
			Tx:          st.tx,
			PlacedRepo:  st.placed,
			OutboxRepo:  st.outbox,
			MinLead:     cfg.Store.MinLead,
			Logger:      log,
		}),
		Auth: usecase.NewAuthUC(api, guard, log),
		Admin: usecase.NewAdminUC(usecase.AdminDeps{
			ProductAPI:  api,
			CategoryAPI: api,
			OrderAPI:    api,
			UserAPI:     api,
			LocationAPI: api,
			ScheduleAPI: api,
			Sessions:    guard,
			Logger:      log,
		}),
	}

	if producer != nil {
		a.worker = kafka.NewOutboxWorker(st.store, log, producer, kafka.OutboxWorkerOpts{
			DBConnStr: st.dsn,
			BatchSize: cfg.Store.OutboxPollSize,
		})
		a.closer.Add("outbox worker", a.worker.Close)
	}

	r := chi.NewRouter()
	v1Http.NewRouter(r, log).Init(uc, cfg.Http, cfg.Store)
	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
	a.grpcSrv.RegisterServices()

	return a, nil
}

func (a *App) initStorage() (*storage, error) {
	st := &storage{}

	var db *postgres.PgDatabase
	if a.cfg.Storage == config.StoragePostgres || a.cfg.Db.Enabled() {
		var err error
		db, err = initPGDB(a.logger, a.cfg)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("postgres", db.Close)
		a.checks["postgres"] = db.Ping
	}

	conv := repoConv.NewCartConverter()

	switch a.cfg.Storage {
	case config.StorageRedis:
		redisClient := clients.NewRedisClient(a.cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx); err != nil {
			a.logger.Errorf(err, "failed to connect to redis")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("redis", redisClient.Close)
		a.checks["redis"] = redisClient.Ping

		st.carts = redisRepo.NewCartRepo(redisClient, conv, a.cfg.Store.CartTTL, a.logger)
		st.sessions = redisRepo.NewSessionRepo(redisClient, a.cfg.Store.SessionTTL)
	case config.StoragePostgres:
		carts := pgdb.NewCartRepo(db.Pool, conv, a.cfg.Store.CartTTL, a.logger)
		a.janitor = carts
		st.carts = carts
		st.sessions = pgdb.NewSessionRepo(db.Pool, a.cfg.Store.SessionTTL)
	case config.StorageMemory:
		a.logger.Warnf("Using in-memory storage: carts and sessions are lost on restart")
		st.carts = memRepo.NewCartRepo()
		st.sessions = memRepo.NewSessionRepo()
	default:
		return nil, e.Wrap(a.cfg.Storage, e.ErrUnknownStorageDriver)
	}

	if db != nil {
		outbox := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverter{})
		st.tx = tr.NewManager(db.Pool)
		st.placed = pgdb.NewPlacedOrderRepo(db.Pool, pgdbConv.PlacedOrderConverter{})
		st.outbox = outbox
		st.store = outbox
		st.dsn = a.cfg.Db.DSN()
		return st, nil
	}

	// Без Postgres журнал заказов живет в памяти; события пишутся только для Kafka.
	orderLog := memRepo.NewOrderLogRepo()
	st.tx = memRepo.Transactor{}
	st.placed = orderLog
	if a.cfg.Kafka.Enabled() {
		outbox := orderLog.Outbox()
		st.outbox = outbox
		st.store = outbox
	}

	return st, nil
}

func (a *App) initKafka(st *storage) (*kafka.Producer, error) {
	if !a.cfg.Kafka.Enabled() {
		a.logger.Infof("Kafka brokers are not configured, order events are disabled")
		return nil, nil
	}

	producer, err := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("kafka producer", func(context.Context) error { return producer.Close() })

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		a.logger.Warnf("Failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}

	if st.store == nil {
		return nil, e.Wrap("outbox store", e.ErrInternalServerError)
	}

	return producer, nil
}

func (a *App) initImages() (usecase.ImageRepository, error) {
	if !a.cfg.Minio.Enabled() {
		return s3Repo.NewStaticImageRepo(a.cfg.Api.BaseURL + a.cfg.Api.UploadsPrefix), nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := clients.CheckBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Warnf("MinIO bucket %s is not available: %v", a.cfg.Minio.BucketName, err)
	}

	a.checks["minio"] = func(ctx context.Context) error {
		return clients.CheckBucket(ctx, minioClient, a.cfg.Minio.BucketName)
	}

	images := s3Repo.NewImageRepo(minioClient, a.cfg.Minio)
	return minioInfra.NewImageResolver(images, a.cfg.Minio.ImageURLTTL/2, imageResolveLimit, a.logger), nil
}

// Run запускает серверы и фоновые задачи и ждет сигнала завершения или ошибки сервера.
func (a *App) Run() error {
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	if a.worker != nil {
		a.worker.Start(bgCtx)
	}
	if a.janitor != nil {
		go a.cleanExpiredCarts(bgCtx)
	}
	go a.grpcSrv.Watch(bgCtx, healthCheckInterval, a.checks)

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	bgCancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.grpcSrv.Stop(shutdownCtx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			a.logger.Errorf(err, "gRPC server shutdown error")
		} else {
			a.logger.Warnf("gRPC server shutdown timeout")
		}
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "resources shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func (a *App) cleanExpiredCarts(ctx context.Context) {
	ticker := time.NewTicker(cartJanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := a.janitor.DeleteExpired(ctx)
			if err != nil {
				a.logger.Warnf("Failed to delete expired carts: %v", err)
				continue
			}
			if n > 0 {
				a.logger.Debugf("Deleted %d expired carts", n)
			}
		}
	}
}

func (a *App) closeOnError() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "failed to release resources")
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Pool.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(ctx); err != nil {
		logger.Errorf(err, "failed to ping database")
		db.Pool.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
