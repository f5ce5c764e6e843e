package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/pokegrid-backend/internal/config"
	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
	"github.com/rocketscienceinc/pokegrid-backend/internal/gridgame"
	"github.com/rocketscienceinc/pokegrid-backend/internal/repository"
	"github.com/rocketscienceinc/pokegrid-backend/internal/repository/storage"
	"github.com/rocketscienceinc/pokegrid-backend/internal/service"
	"github.com/rocketscienceinc/pokegrid-backend/internal/telemetry"
	"github.com/rocketscienceinc/pokegrid-backend/internal/usecase"
	"github.com/rocketscienceinc/pokegrid-backend/transport/rest"
)

const serviceName = "pokegrid-backend"

var (
	ErrAddrNotFound     = errors.New("redis address string is empty")
	ErrUnknownPickStore = errors.New("unknown pick store")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, conf.OTel.Endpoint, conf.OTel.Enabled)
	if err != nil {
		return fmt.Errorf("could not set up tracing: %w", err)
	}

	defer func() {
		if err = shutdownTracing(context.Background()); err != nil {
			log.Error("could not shut down tracing", "error", err)
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	counter, closeCounter, err := newPickCounter(ctx, conf, redisStorage)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeCounter(); err != nil {
			log.Error("could not close pick count storage", "error", err)
		}
	}()

	scoringMode, err := gridgame.ParseScoringMode(conf.Game.ScoringMode)
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	sessionRepo := repository.NewSessionRepository(redisStorage, conf.SessionTTL)
	sessionService := service.NewSessionService(sessionRepo, nil)
	generator := gridgame.NewGenerator(entity.LoadCatalog(), entity.DefaultRegistry())

	gameUseCase := usecase.NewGameManager(logger, sessionService, generator, counter, usecase.Options{
		ScoringMode: scoringMode,
		Submitter: gridgame.Submitter{
			AllowOverwrite:    conf.Game.AllowOverwrite,
			ScoreOnPriorCount: conf.Game.ScoreOnPriorCount,
		},
	})

	router := rest.NewRouter(
		rest.NewHandlers(logger, gameUseCase),
		func(ctx context.Context) error { return redisStorage.Ping(ctx).Err() },
	)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "pick_store", conf.PickStore, "scoring_mode", scoringMode)
		if httpErr := rest.Start(ctx, conf.HTTPPort, router); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newPickCounter - picks the global count store. The returned func releases it.
func newPickCounter(ctx context.Context, conf *config.Config, redisStorage *redis.Client) (gridgame.PickCounter, func() error, error) {
	noop := func() error { return nil }

	switch conf.PickStore {
	case config.PickStoreMemory:
		return repository.NewMemoryPickCounter(), noop, nil
	case config.PickStoreRedis, "":
		return repository.NewRedisPickCounter(redisStorage), noop, nil
	case config.PickStoreSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, noop, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, noop, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLitePickCounter(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownPickStore, conf.PickStore)
	}
}
