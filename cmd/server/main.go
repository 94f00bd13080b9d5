package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/enerscope/enerscope/internal/adapter/analytics"
	"github.com/enerscope/enerscope/internal/adapter/cache"
	"github.com/enerscope/enerscope/internal/adapter/http/fiber/handlers"
	"github.com/enerscope/enerscope/internal/adapter/http/fiber/middleware"
	wsAdapter "github.com/enerscope/enerscope/internal/adapter/websocket"
	"github.com/enerscope/enerscope/internal/infrastructure/circuitbreaker"
	"github.com/enerscope/enerscope/internal/ports"
	"github.com/enerscope/enerscope/internal/service/render"
	"github.com/enerscope/enerscope/internal/service/report"
	"github.com/enerscope/enerscope/internal/observability/telemetry"
	"github.com/enerscope/enerscope/pkg/config"
)

const (
	serviceName    = "enerscope"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting EnerScope",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, serviceVersion, cfg.OpenTelemetry.Jaeger.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Initialize Report Cache (Redis with in-memory fallback)
	var reportCache ports.Cache
	if cfg.Redis.URL != "" {
		reportCache, err = cache.NewRedisCache(cfg.Redis.URL, logger)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to local cache", zap.Error(err))
			reportCache = cache.NewLocalCache(time.Minute, logger)
		}
	} else {
		reportCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer reportCache.Close()

	// 5. Initialize Analytics Backend Client (outbound circuit breaker)
	httpSettings := circuitbreaker.DefaultHTTPClientSettings("analytics-backend")
	if cfg.Analytics.Timeout > 0 {
		httpSettings.Timeout = cfg.Analytics.Timeout
	}
	if cfg.CircuitBreaker.FailureThreshold > 0 {
		httpSettings.FailureThreshold = uint32(cfg.CircuitBreaker.FailureThreshold)
	}
	httpClient := circuitbreaker.NewHTTPClientWithSettings(httpSettings, logger)
	gateway := analytics.NewClient(cfg.Analytics.BaseURL, httpClient, logger)

	// 6. Initialize Renderer
	formatter, err := render.NewFormatter(cfg.Render.Locale, cfg.Render.Currency)
	if err != nil {
		logger.Fatal("Failed to initialize formatter", zap.Error(err))
	}
	renderer := render.NewRenderer(formatter)

	// 7. Initialize WebSocket Hub (report fan-out)
	wsHub := wsAdapter.NewHub(logger)
	go wsHub.Run()

	// 8. Initialize Report Service
	reportService := report.NewService(gateway, renderer, reportCache, wsHub, cfg.Cache.ReportTTL, logger)

	// 9. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	if cfg.CORS.Enabled {
		app.Use(middleware.NewCORS(cfg.CORS))
	} else {
		app.Use(middleware.DefaultCORS())
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := reportCache.Ping(); err != nil {
			return c.Status(503).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API v1 Routes
	v1 := app.Group("/api/v1")

	reportHandler := handlers.NewReportHandler(reportService, logger)
	v1.Post("/reports", reportHandler.Generate)
	v1.Get("/reports/latest", reportHandler.Latest)

	// WebSocket routes
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// Real-time rendered-report stream
	app.Get("/ws/reports", websocket.New(func(c *websocket.Conn) {
		wsHub.AddClient(c)
	}))

	// 10. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 11. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
