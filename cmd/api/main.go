package main

// @title Proximity Service API
// @version 1.0.0
// @description Сервис близости для travel-приложения. Ранжирует сущности каталогов
// @description (госпитали, полицейские участки, такси, прокат велосипедов, места)
// @description по расстоянию от позиции пользователя.
// @description
// @description Основные возможности:
// @description - Ранжированная выдача сущностей вокруг точки с фильтрацией и сортировкой
// @description - Каталоги сущностей с текстовым фильтром
// @description - Приём и чтение живой позиции пользователя
// @description - Избранное с сохранением полного снапшота сущности

// @contact.name API Support
// @contact.email support@proximity-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/proximity-service/docs"
	"github.com/proximity-service/internal/config"
	httpDelivery "github.com/proximity-service/internal/delivery/http"
	"github.com/proximity-service/internal/delivery/http/handler"
	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/pkg/logger"
	"github.com/proximity-service/internal/repository/cache"
	"github.com/proximity-service/internal/repository/memory"
	"github.com/proximity-service/internal/repository/postgres"
	redisRepo "github.com/proximity-service/internal/repository/redis"
	"github.com/proximity-service/internal/tracker"
	"github.com/proximity-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Proximity Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	catalogRepo := memory.NewCatalogRepository(log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	favoriteRepo, err := postgres.NewFavoriteRepository(db, log)
	if err != nil {
		log.Fatal("Failed to initialize favorites repository", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 7. Initialize tracker with push source fed by HTTP position updates
	pushSource := tracker.NewPushSource()
	positionTracker := tracker.NewTracker(pushSource, log)

	trackerCtx, trackerCancel := context.WithCancel(context.Background())
	defer trackerCancel()

	watchOpts := domain.WatchOptions{
		HighAccuracy: cfg.Tracker.HighAccuracy,
		Timeout:      cfg.Tracker.Timeout,
		MaxAge:       cfg.Tracker.MaxAge,
	}
	if err := positionTracker.Start(trackerCtx, watchOpts); err != nil {
		log.Fatal("Failed to start position tracker", zap.Error(err))
	}

	// 8. Initialize Use Cases
	proximityUC := usecase.NewProximityUseCase(
		catalogRepo,
		cacheRepo,
		log,
		cfg.Cache.ProximityCacheTTL,
	)

	catalogUC := usecase.NewCatalogUseCase(
		catalogRepo,
		cfg.Catalog,
		log,
	)

	positionUC := usecase.NewPositionUseCase(
		positionTracker,
		pushSource,
		streamRepo,
		log,
	)

	favoriteUC := usecase.NewFavoriteUseCase(
		favoriteRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 9. Load catalog fixtures
	if err := catalogUC.LoadFromDir(context.Background(), cfg.Catalog.DataDir); err != nil {
		log.Fatal("Failed to load catalog fixtures", zap.Error(err))
	}

	// 10. Initialize HTTP Handlers
	proximityHandler := handler.NewProximityHandler(proximityUC, log)
	catalogHandler := handler.NewCatalogHandler(catalogUC, log)
	positionHandler := handler.NewPositionHandler(positionUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, log)

	log.Info("HTTP handlers initialized")

	// 11. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		proximityHandler,
		catalogHandler,
		positionHandler,
		favoriteHandler,
	)

	log.Info("HTTP server initialized")

	// 12. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 13. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Stop position tracker
	positionTracker.Stop()

	log.Info("Server stopped successfully")
}
