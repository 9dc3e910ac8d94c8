package main

// @title GeoMark Service API
// @version 1.0.0
// @description REST backend for a personal map annotation service. Users register,
// @description log in and manage their own markers, polylines, polygons and circles.
// @description Marker addresses are resolved through reverse geocoding.

// @contact.name API Support
// @contact.email support@geomark-service.com

// @host localhost:5000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token, prefixed with "Bearer "

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/geomark-service/docs/swagger"
	"github.com/geomark-service/internal/config"
	httpDelivery "github.com/geomark-service/internal/delivery/http"
	"github.com/geomark-service/internal/delivery/http/handler"
	"github.com/geomark-service/internal/infrastructure/nominatim"
	"github.com/geomark-service/internal/pkg/auth"
	"github.com/geomark-service/internal/pkg/logger"
	"github.com/geomark-service/internal/repository/cache"
	"github.com/geomark-service/internal/repository/postgres"
	redisRepo "github.com/geomark-service/internal/repository/redis"
	"github.com/geomark-service/internal/usecase"
	"go.uber.org/zap"
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

	log.Info("Starting GeoMark Service")
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
	log.Info("PostgreSQL connected")

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
	log.Info("Redis connected")

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

	// 6. Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	markerRepo := postgres.NewMarkerRepository(db)
	polylineRepo := postgres.NewPolylineRepository(db)
	polygonRepo := postgres.NewPolygonRepository(db)
	circleRepo := postgres.NewCircleRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
	geocodeRepo := nominatim.NewClient(&cfg.Nominatim, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal("Failed to initialize token manager", zap.Error(err))
	}

	authUC := usecase.NewAuthUseCase(userRepo, tokens, cfg.Auth.BcryptCost, log)
	markerUC := usecase.NewMarkerUseCase(markerRepo, streamRepo, log)
	polylineUC := usecase.NewPolylineUseCase(polylineRepo, log)
	polygonUC := usecase.NewPolygonUseCase(polygonRepo, log)
	circleUC := usecase.NewCircleUseCase(circleRepo, log)
	geocodeUC := usecase.NewGeocodeUseCase(geocodeRepo, cacheRepo, cfg.Cache.GeocodeCacheTTL, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	markerHandler := handler.NewMarkerHandler(markerUC, log)
	polylineHandler := handler.NewPolylineHandler(polylineUC, log)
	polygonHandler := handler.NewPolygonHandler(polygonUC, log)
	circleHandler := handler.NewCircleHandler(circleUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tokens,
		authHandler,
		markerHandler,
		polylineHandler,
		polygonHandler,
		circleHandler,
		geocodeHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
