package http

import (
	"context"
	"time"

	"github.com/geomark-service/internal/config"
	"github.com/geomark-service/internal/delivery/http/handler"
	"github.com/geomark-service/internal/delivery/http/middleware"
	"github.com/geomark-service/internal/pkg/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server hosts the REST API on Fiber.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	tokens *auth.TokenManager

	// Handlers
	authHandler     *handler.AuthHandler
	markerHandler   *handler.MarkerHandler
	polylineHandler *handler.PolylineHandler
	polygonHandler  *handler.PolygonHandler
	circleHandler   *handler.CircleHandler
	geocodeHandler  *handler.GeocodeHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *auth.TokenManager,
	authHandler *handler.AuthHandler,
	markerHandler *handler.MarkerHandler,
	polylineHandler *handler.PolylineHandler,
	polygonHandler *handler.PolygonHandler,
	circleHandler *handler.CircleHandler,
	geocodeHandler *handler.GeocodeHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "GeoMark Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		tokens:          tokens,
		authHandler:     authHandler,
		markerHandler:   markerHandler,
		polylineHandler: polylineHandler,
		polygonHandler:  polygonHandler,
		circleHandler:   circleHandler,
		geocodeHandler:  geocodeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public auth routes
	authGroup := s.app.Group("/auth")
	authGroup.Post("/register", s.authHandler.Register)
	authGroup.Post("/login", s.authHandler.Login)

	// Everything below requires a valid bearer token.
	authRequired := middleware.Auth(s.tokens)

	markers := s.app.Group("/markers", authRequired)
	markers.Get("/", s.markerHandler.List)
	markers.Post("/", s.markerHandler.Create)
	markers.Put("/:id", s.markerHandler.Update)
	markers.Delete("/:id", s.markerHandler.Delete)
	markers.Delete("/", s.markerHandler.DeleteAll)

	polylines := s.app.Group("/polylines", authRequired)
	polylines.Get("/", s.polylineHandler.List)
	polylines.Post("/", s.polylineHandler.Create)
	polylines.Put("/:id", s.polylineHandler.Update)
	polylines.Delete("/:id", s.polylineHandler.Delete)
	polylines.Delete("/", s.polylineHandler.DeleteAll)

	polygons := s.app.Group("/polygons", authRequired)
	polygons.Get("/", s.polygonHandler.List)
	polygons.Post("/", s.polygonHandler.Create)
	polygons.Put("/:id", s.polygonHandler.Update)
	polygons.Delete("/:id", s.polygonHandler.Delete)
	polygons.Delete("/", s.polygonHandler.DeleteAll)

	circles := s.app.Group("/circles", authRequired)
	circles.Get("/", s.circleHandler.List)
	circles.Post("/", s.circleHandler.Create)
	circles.Put("/:id", s.circleHandler.Update)
	circles.Delete("/:id", s.circleHandler.Delete)
	circles.Delete("/", s.circleHandler.DeleteAll)

	geocode := s.app.Group("/geocode", authRequired)
	geocode.Get("/reverse", s.geocodeHandler.Reverse)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

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
