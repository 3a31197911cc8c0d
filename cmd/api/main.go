package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/mangostorage/inventory-service/internal/api/http"
	"github.com/mangostorage/inventory-service/internal/api/http/handlers"
	"github.com/mangostorage/inventory-service/internal/auth"
	"github.com/mangostorage/inventory-service/internal/config"
	"github.com/mangostorage/inventory-service/internal/events"
	"github.com/mangostorage/inventory-service/internal/observability"
	"github.com/mangostorage/inventory-service/internal/persistence"
	"github.com/mangostorage/inventory-service/internal/repository"
	"github.com/mangostorage/inventory-service/internal/service"
	"github.com/mangostorage/inventory-service/internal/worker"
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	// Revocations live in redis so logout survives restarts and is visible
	// across instances; fall back to process memory when redis is down.
	var revocations auth.RevocationSet
	if err := redis.Ping(ctx); err != nil {
		logger.Warn("redis unreachable; revocation set is process-local", zap.Error(err))
		revocations = auth.NewMemoryRevocationSet()
	} else {
		revocations = auth.NewRedisRevocationSet(redis.Client)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, revocations)

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	serialRepo := repository.NewSerialRepository(pool)
	storageRepo := repository.NewStorageRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	authService := service.NewAuthService(service.AuthDependencies{
		AccountRepo: accountRepo,
		Tokens:      tokens,
		Dispatcher:  dispatcher,
		BcryptCost:  cfg.Auth.BcryptCost,
	})
	inventoryService := service.NewInventoryService(service.InventoryDependencies{
		ProductRepo: productRepo,
		SerialRepo:  serialRepo,
		StorageRepo: storageRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	orderService := service.NewOrderService(orderRepo)

	authMiddleware := auth.NewAuthMiddleware(tokens)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Accounts:       handlers.NewAccountsHandler(authService),
		Products:       handlers.NewProductsHandler(inventoryService),
		Serials:        handlers.NewSerialsHandler(inventoryService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Storage:        handlers.NewStorageHandler(inventoryService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
