package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/vinylcrate/go-backend/internal/cfg"
	v1Http "github.com/vinylcrate/go-backend/internal/delivery/v1/http"
	"github.com/vinylcrate/go-backend/internal/infrastructure/kafka"
	"github.com/vinylcrate/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/vinylcrate/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/vinylcrate/go-backend/internal/repository/redis"
	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/clients"
	"github.com/vinylcrate/go-backend/pkg/closer"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
	"github.com/vinylcrate/go-backend/pkg/postgres"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	cl := closer.NewCloser(0)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()

	healthRepo := pgdb.NewHealthRepo(db.Pool)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	cartRepo := pgdb.NewCartRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	sessionRepo := redis.NewSessionRepo(redisClient, cfg.Session, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	worker.Start(workerCtx)
	cl.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})

	healthUC := usecase.NewHealthUC(healthRepo)
	catalogUC := usecase.NewCatalogUC(productRepo, logger)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, sessionRepo, db.Pool, logger)
	orderUC := usecase.NewOrderUC(orderRepo, outboxRepo, sessionRepo, db.Pool, logger)

	r := chi.NewRouter()
	session := v1Http.NewSessionManager(cfg.Session)
	router := v1Http.NewRouter(r, session, logger)
	router.Init(healthUC, catalogUC, cartUC, orderUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown: ресурсы закрываются в порядке, обратном запуску ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Errorf(err, "shutdown finished with errors")
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
