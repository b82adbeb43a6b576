package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Alamin4D/battle-server-website/internal/cache"
	"github.com/Alamin4D/battle-server-website/internal/config"
	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/handlers"
	"github.com/Alamin4D/battle-server-website/internal/payment"
	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
	"github.com/Alamin4D/battle-server-website/internal/validator"
	"github.com/Alamin4D/battle-server-website/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize repositories; the server does not start without its store
	repoManager, err := pkg.NewRepositoryManager(cfg)
	if err != nil {
		log.Fatalf("Failed to create repository manager: %v", err)
	}
	initCtx, initCancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	err = repoManager.Initialize(initCtx)
	initCancel()
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	logger.Info("Store connected", "driver", cfg.StoreDriver)

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Failed to initialize Redis, continuing without cache", "error", err)
			redisClient = nil
		}
	}

	publisher, err := events.NewWatermillPublisher(events.PublisherConfig{
		Brokers:     cfg.KafkaBrokers,
		TopicPrefix: cfg.EventsTopicPrefix,
	}, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}

	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, payment intents are unavailable")
	}

	// Initialize services
	serviceManager := services.NewServiceManager(services.Dependencies{
		RepoManager:     repoManager,
		Cache:           cache.NewCacheManager(redisClient),
		EventPublisher:  publisher,
		PaymentProvider: payment.NewStripeProvider(cfg.StripeSecretKey),
		Logger:          slogLogger,
		Validator:       validator.New(),
	}, services.ServiceManagerConfig{
		TokenSecret:      cfg.TokenSecret,
		TokenTTL:         cfg.TokenTTL,
		// store calls time out after StoreTimeout, so no read outlives it
		CacheSettleDelay: cfg.StoreTimeout,
	})
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(
		serviceManager,
		cache.NewFixedWindowLimiter(redisClient),
		logger,
		handlers.RouterConfig{RateLimitPerMinute: cfg.RateLimitPerMinute},
	)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger, cfg.CORSAllowedOrigins)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Closes the event publisher and the store
	if err := serviceManager.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown services", "error", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis", "error", err)
		}
	}

	logger.Info("Server exited")
}
