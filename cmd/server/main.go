package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/di"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/events"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/config"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/database"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/logger"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/middleware"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:       logLevel(cfg),
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	db, err := database.NewPostgres(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	defer func() { _ = redisClient.Close() }()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.ClientID, log)
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
		publisher = kafkaPublisher
	}
	defer publisher.Close()

	container := di.NewContainer(&di.ContainerConfig{
		DB:        db,
		Redis:     redisClient,
		Publisher: publisher,
		Config:    cfg,
		Logger:    log,
	})

	router := buildRouter(cfg, container)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func buildRouter(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", c.HealthHandler.Check)

	api := router.Group("/api/v1")

	// Public booking-state endpoints
	events := api.Group("/events")
	{
		events.GET("/:id/mode", c.EventHandler.GetMode)
		events.GET("/:id/cta", c.EventHandler.GetPrimaryCTA)
		events.GET("/:id/ctas", c.EventHandler.GetAllCTAs)
		events.GET("/:id/availability", c.EventHandler.GetAvailability)
		events.GET("/:id/display", c.EventHandler.GetDisplay)
	}

	// Vendor configuration endpoints
	vendor := api.Group("/vendor")
	vendor.Use(middleware.JWTMiddleware(&middleware.JWTConfig{Secret: cfg.JWT.Secret}))
	vendor.Use(middleware.RequireRole(middleware.RoleVendor, middleware.RoleAdmin))
	{
		vendor.POST("/rsvp-products", c.VendorHandler.CreateRSVPProduct)
		vendor.POST("/events/:id/tickets/sync", c.VendorHandler.SyncTicketTypes)
		vendor.PUT("/events/:id/ticket-types", c.VendorHandler.ReplaceTicketTypes)
		vendor.POST("/events/:id/rsvp-product", c.VendorHandler.EnsureRSVPProduct)
		vendor.POST("/events/:id/product-sync", c.VendorHandler.SyncProduct)
		vendor.GET("/events/:id/configuration", c.VendorHandler.GetConfiguration)
	}

	return router
}

func logLevel(cfg *config.Config) string {
	if cfg.App.Debug {
		return "debug"
	}
	return "info"
}
