package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/storefront/db"
	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Grpc "github.com/DRSN-tech/storefront/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/events"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	"github.com/DRSN-tech/storefront/internal/repository/static"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"golang.org/x/sync/errgroup"
)

const (
	initTimeout        = 30 * time.Second
	ensureTopicTimeout = 10 * time.Second
	maxJanitorInterval = 10 * time.Minute
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer

	// фоновые задачи, живут до остановки приложения
	background []func(ctx context.Context)
}

// NewApp поднимает зависимости: каталог, хранилище корзин, публикацию событий и серверы.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(cfg.ShutdownTimeout/2, log),
	}

	catalogUC, err := a.initCatalog(ctx)
	if err != nil {
		return nil, a.abort(e.Wrap(whereami.WhereAmI(), err))
	}

	carts, err := a.initCartStore(ctx)
	if err != nil {
		return nil, a.abort(e.Wrap(whereami.WhereAmI(), err))
	}

	publisher := a.initPublisher()
	cartUC := usecase.NewCartUC(catalogUC, carts, publisher, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, cfg.Catalog, cfg.Cart)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	a.closer.Add("http server", a.httpSrv.Stop)

	return a, nil
}

// Run обслуживает HTTP и gRPC до сигнала SIGINT/SIGTERM или падения одного из серверов.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			return e.Wrap("http server", err)
		}
		return nil
	})

	g.Go(func() error {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			return e.Wrap("grpc server", err)
		}
		return nil
	})

	for _, task := range a.background {
		g.Go(func() error {
			task(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Infof("Stopping gracefully...")
		a.grpcSrv.MarkNotServing()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()

		if err := a.closer.Close(shutdownCtx); err != nil {
			a.logger.Errorf(err, "shutdown finished with errors")
			return nil
		}

		a.logger.Infof("Application shutdown complete")
		return nil
	})

	a.grpcSrv.MarkServing()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// initCatalog загружает каталог один раз. Подключение к Postgres нужно только на время загрузки.
func (a *App) initCatalog(ctx context.Context) (*usecase.CatalogUseCase, error) {
	if a.cfg.Catalog.Source != config.CatalogSourcePostgres {
		return usecase.NewCatalogUC(ctx, static.NewCatalogRepo(), a.cfg.Catalog.FeaturedLimit, a.logger)
	}

	pg, err := initPGDB(ctx, a.logger, a.cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer pg.Close()

	snapshot, err := pgdb.NewCatalogSource(pg.Pool).Snapshot(ctx)
	if err != nil {
		a.logger.Errorf(err, "failed to read catalog from database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewCatalogUC(ctx, snapshot, a.cfg.Catalog.FeaturedLimit, a.logger)
}

func (a *App) initCartStore(ctx context.Context) (usecase.CartRepository, error) {
	if a.cfg.Cart.Store != config.CartStoreRedis {
		repo := memory.NewCartRepo(a.cfg.Cart.SessionTTL, a.logger)
		interval := min(a.cfg.Cart.SessionTTL, maxJanitorInterval)
		a.background = append(a.background, func(ctx context.Context) {
			repo.RunJanitor(ctx, interval)
		})
		a.logger.Infof("cart store: memory, session ttl %s", a.cfg.Cart.SessionTTL)
		return repo, nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", redisClient.Close)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	a.logger.Infof("cart store: redis %s, session ttl %s", a.cfg.Redis.Addr, a.cfg.Cart.SessionTTL)
	return redis.NewCartRepo(redisClient, a.cfg.Cart, a.logger), nil
}

// initPublisher выбирает Kafka, если заданы брокеры, иначе события пишутся в лог.
func (a *App) initPublisher() usecase.EventPublisher {
	if a.cfg.Kafka == nil {
		a.logger.Infof("KAFKA_BROKERS not set, cart events go to log")
		return events.NewLogPublisher(a.logger)
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		a.logger.Warnf("failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}
	a.closer.Add("kafka producer", producer.Close)

	return producer
}

// abort освобождает уже поднятые ресурсы, если инициализация не удалась.
func (a *App) abort(err error) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if closeErr := a.closer.Close(ctx); closeErr != nil {
		a.logger.Warnf("cleanup after failed start: %v", closeErr)
	}

	return err
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	pg, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := pg.RunMigrations(logger, db.Migrations, db.MigrationsDir); err != nil {
		logger.Errorf(err, "failed to run migrations")
		pg.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return pg, nil
}
