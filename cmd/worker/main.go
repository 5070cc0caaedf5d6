package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/proximity-service/internal/config"
	"github.com/proximity-service/internal/pkg/logger"
	"github.com/proximity-service/internal/repository/cache"
	"github.com/proximity-service/internal/repository/memory"
	redisRepo "github.com/proximity-service/internal/repository/redis"
	"github.com/proximity-service/internal/usecase"
	"github.com/proximity-service/internal/worker"
	"github.com/proximity-service/internal/worker/proximity"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Proximity Refresh Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Strings("kinds", cfg.Worker.Kinds),
		zap.Float64("radius_km", cfg.Worker.RadiusKm),
		zap.Int("limit", cfg.Worker.Limit))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	catalogRepo := memory.NewCatalogRepository(log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 5. Initialize use cases
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, cfg.Catalog, log)

	proximityUC := usecase.NewProximityUseCase(
		catalogRepo,
		cacheRepo,
		log,
		cfg.Cache.ProximityCacheTTL,
	)

	// 6. Load catalog fixtures (воркер держит свой снапшот каталога)
	if err := catalogUC.LoadFromDir(context.Background(), cfg.Catalog.DataDir); err != nil {
		log.Fatal("Failed to load catalog fixtures", zap.Error(err))
	}

	// 7. Initialize workers
	refreshWorker := proximity.NewRefreshWorker(
		streamRepo,
		proximityUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.Kinds,
		cfg.Worker.RadiusKm,
		cfg.Worker.Limit,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewManager(log)
	workerManager.Register(refreshWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
