package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apihttp "github.com/KoshiiX/Layanan-1/internal/api/http"
	"github.com/KoshiiX/Layanan-1/internal/api/http/handlers"
	"github.com/KoshiiX/Layanan-1/internal/auth"
	"github.com/KoshiiX/Layanan-1/internal/config"
	"github.com/KoshiiX/Layanan-1/internal/events"
	"github.com/KoshiiX/Layanan-1/internal/observability"
	"github.com/KoshiiX/Layanan-1/internal/persistence"
	"github.com/KoshiiX/Layanan-1/internal/repository"
	"github.com/KoshiiX/Layanan-1/internal/seed"
	"github.com/KoshiiX/Layanan-1/internal/service"
	"github.com/KoshiiX/Layanan-1/internal/store"
	"github.com/KoshiiX/Layanan-1/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pg.Close()

	if pg.Available() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
	}

	redisConn := persistence.NewRedis(cfg.Redis, logger)
	defer redisConn.Close()

	repos, err := buildRepositories(ctx, cfg, pg, redisConn, logger)
	if err != nil {
		logger.Fatal("repository setup failed", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	revocations := auth.NewRevocationListFor(ctx, redisConn.Client, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:       repos.users,
		RevocationList: revocations,
	})
	submissionService := service.NewSubmissionService(service.SubmissionDependencies{
		SubmissionRepo: repos.submissions,
		HistoryRepo:    repos.history,
		Dispatcher:     dispatcher,
		StatsCache:     service.NewDashboardCache(redisConn.Client, cfg.Auth.StatsCacheTTL()),
	})
	newsService := service.NewNewsService(repos.news, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	apihttp.RegisterMiddlewares(app, cfg, logger, metrics)

	authMW := auth.NewMiddleware(authService.TokenManager(), repos.users, revocations, cfg.Auth.CookieName)
	apihttp.RegisterRoutes(app, apihttp.Handlers{
		Health:           handlers.NewHealthHandler(pg, redisConn),
		Auth:             handlers.NewAuthHandler(authService, cfg.Auth),
		Submissions:      handlers.NewSubmissionsHandler(submissionService),
		AdminSubmissions: handlers.NewAdminSubmissionsHandler(submissionService),
		News:             handlers.NewNewsHandler(newsService),
		Users:            handlers.NewUsersHandler(authService),
		Metrics:          handlers.NewMetricsHandler(metrics),
	}, authMW)

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

type repositories struct {
	users       repository.UserRepository
	submissions repository.SubmissionRepository
	news        repository.NewsRepository
	history     repository.StatusChangeRepository
}

// buildRepositories picks the backing store: pgx repositories when a DSN
// is configured, otherwise snapshot repositories over the configured
// engine, seeded with the demo accounts on first run.
func buildRepositories(ctx context.Context, cfg *config.Config, pg *persistence.Postgres, redisConn *persistence.Redis, logger *zap.Logger) (*repositories, error) {
	if pg.Available() {
		pool := pg.PoolHandle()
		return &repositories{
			users:       repository.NewUserRepository(pool),
			submissions: repository.NewSubmissionRepository(pool),
			news:        repository.NewNewsRepository(pool),
			history:     repository.NewStatusChangeRepository(pool),
		}, nil
	}

	snapshots, err := buildSnapshotStore(cfg, redisConn, logger)
	if err != nil {
		return nil, err
	}

	seedUsers, err := seed.Users(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	users, err := repository.NewSnapshotUserRepository(ctx, snapshots, seedUsers)
	if err != nil {
		return nil, err
	}
	submissions, err := repository.NewSnapshotSubmissionRepository(ctx, snapshots, seed.Submissions())
	if err != nil {
		return nil, err
	}
	news, err := repository.NewSnapshotNewsRepository(ctx, snapshots, seed.News())
	if err != nil {
		return nil, err
	}
	history, err := repository.NewSnapshotStatusChangeRepository(ctx, snapshots)
	if err != nil {
		return nil, err
	}

	return &repositories{
		users:       users,
		submissions: submissions,
		news:        news,
		history:     history,
	}, nil
}

func buildSnapshotStore(cfg *config.Config, redisConn *persistence.Redis, logger *zap.Logger) (store.Store, error) {
	switch cfg.Snapshot.Engine {
	case "redis":
		logger.Info("using redis snapshot store")
		return store.NewRedisStore(redisConn.Client), nil
	case "memory":
		logger.Warn("using volatile in-memory snapshot store")
		return store.NewMemoryStore(), nil
	default:
		logger.Info("using file snapshot store", zap.String("dir", cfg.Snapshot.Dir))
		return store.NewFileStore(cfg.Snapshot.Dir)
	}
}
