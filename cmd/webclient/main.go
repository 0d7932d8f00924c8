package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/config"
	"github.com/revaissue/webclient/internal/credstore"
	"github.com/revaissue/webclient/internal/events"
	"github.com/revaissue/webclient/internal/guard"
	"github.com/revaissue/webclient/internal/observability"
	"github.com/revaissue/webclient/internal/persistence"
	"github.com/revaissue/webclient/internal/repository"
	"github.com/revaissue/webclient/internal/session"
	"github.com/revaissue/webclient/internal/web"
	"github.com/revaissue/webclient/internal/web/handlers"
	"github.com/revaissue/webclient/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	store, redisConn, err := buildStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to init credential store", zap.Error(err))
	}
	if redisConn != nil {
		defer redisConn.Close()
	}

	client := backend.NewClient(cfg.Backend, store, logger)
	authClient := backend.NewAuthClient(client, cfg.Backend)
	issueClient := backend.NewIssueClient(client)
	projectClient := backend.NewProjectClient(client)
	commentClient := backend.NewCommentClient(client)
	userClient := backend.NewUserClient(client)
	auditClient := backend.NewAuditClient(client)

	oracle := session.NewOracle(store, authClient, logger)
	authorizer := guard.NewAuthorizer(store, authClient, logger)

	dispatcher := events.NewInMemoryDispatcher()
	var trail repository.SessionEventRepository
	if pool := pg.PoolHandle(); pool != nil {
		trail = repository.NewSessionEventRepository(pool)
		worker.StartSessionTrailWorker(dispatcher, trail, logger)
	}

	app := fiber.New()
	web.RegisterMiddlewares(app, logger, cfg.App.RequestTimeout())

	web.RegisterRoutes(app, web.RouteConfig{
		Health:     handlers.NewHealthHandler(),
		Auth:       handlers.NewAuthHandler(oracle, authClient, dispatcher),
		Dashboard:  handlers.NewDashboardHandler(oracle, issueClient, projectClient),
		Issues:     handlers.NewIssuesHandler(oracle, issueClient, commentClient),
		Projects:   handlers.NewProjectsHandler(oracle, projectClient, userClient),
		Users:      handlers.NewUsersHandler(userClient),
		Audit:      handlers.NewAuditHandler(auditClient, trail),
		Oracle:     oracle,
		Authorizer: authorizer,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func buildStore(cfg *config.Config, logger *zap.Logger) (credstore.Store, *persistence.Redis, error) {
	switch cfg.Session.StorageBackend {
	case "redis":
		redisConn := persistence.NewRedis(cfg.Redis, logger)
		return credstore.NewRedisStore(redisConn.Client, cfg.Session.StorageKey), redisConn, nil
	case "memory":
		return credstore.NewMemoryStore(), nil, nil
	default:
		store, err := credstore.NewFileStore(cfg.Session.FilePath, cfg.Session.StorageKey)
		return store, nil, err
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
