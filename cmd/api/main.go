package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/pavilion/backend/config"
	"github.com/pageza/pavilion/backend/internal/database"
	"github.com/pageza/pavilion/backend/internal/logging"
	"github.com/pageza/pavilion/backend/internal/middleware"
	"github.com/pageza/pavilion/backend/internal/router"
	"github.com/pageza/pavilion/backend/internal/server"
	"github.com/pageza/pavilion/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("invalid timezone", zap.Error(err))
	}

	gin.SetMode(config.GetEnvironment().GinMode())

	// Continue without rate limiting if Redis is not available
	redisClient, err := database.NewRedisClient(context.Background(), cfg, logger)
	if err != nil {
		logger.Warn("rate limiting disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}
	limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window: cfg.RateLimitWindow,
		Limit:  cfg.RateLimitRequests,
	}, logger)

	menus := service.NewFromConfig(cfg, logger)
	handler := router.SetupRouter(menus, router.Options{
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
		Limiter:     limiter,
		Clock:       func() time.Time { return time.Now().In(loc) },
	})

	srv := server.New(cfg.Addr(), handler, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
