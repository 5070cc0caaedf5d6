package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/config"
	"github.com/proximity-service/internal/delivery/http/handler"
	"github.com/proximity-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	proximityHandler *handler.ProximityHandler
	catalogHandler   *handler.CatalogHandler
	positionHandler  *handler.PositionHandler
	favoriteHandler  *handler.FavoriteHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	proximityHandler *handler.ProximityHandler,
	catalogHandler *handler.CatalogHandler,
	positionHandler *handler.PositionHandler,
	favoriteHandler *handler.FavoriteHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Proximity Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		proximityHandler: proximityHandler,
		catalogHandler:   catalogHandler,
		positionHandler:  positionHandler,
		favoriteHandler:  favoriteHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Proximity routes
	api.Post("/proximity/search", s.proximityHandler.Search)

	// Catalog routes
	api.Get("/catalog/kinds", s.catalogHandler.GetKinds)
	api.Get("/catalog/:kind/entities", s.catalogHandler.GetEntities)

	// Position routes
	api.Post("/position", s.positionHandler.Update)
	api.Get("/position", s.positionHandler.GetCurrent)
	api.Get("/position/once", s.positionHandler.GetOnce)

	// Favorite routes
	api.Get("/favorites", s.favoriteHandler.List)
	api.Post("/favorites", s.favoriteHandler.Add)
	api.Delete("/favorites/:id", s.favoriteHandler.Remove)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
