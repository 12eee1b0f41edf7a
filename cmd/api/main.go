package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"radar/docs"
	"radar/internal/config"
	handlers "radar/internal/http/handler"
	"radar/internal/http/middleware"
	"radar/internal/logging"
	"radar/internal/otel"
	"radar/internal/repository/memory"
	"radar/internal/seed"
	"radar/internal/service"
	"radar/internal/storage"
)

// @title RADAR API
// @version 1.0
// @description Document review dashboard: search, status filters and activity feed.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	level, err := logging.ParseLevel(cfg.LogLevel)
	log := logging.New(os.Stdout, loc, level)
	defer func() { _ = log.Sync() }()
	if err != nil {
		log.Warn("falling back to info level", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log, "radar")
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.Fatal("failed to load records", zap.String("seed_file", cfg.SeedFile), zap.Error(err))
	}
	store, err := memory.New(data)
	if err != nil {
		log.Fatal("failed to build record store", zap.Error(err))
	}
	log.Info("records_loaded",
		zap.Int("documents", len(data.Documents)),
		zap.Int("activities", len(data.Activities)),
		zap.String("seed_file", cfg.SeedFile),
	)

	assets, err := newAssetStore(cfg)
	if err != nil {
		log.Fatal("failed to initialize asset storage", zap.String("backend", cfg.Assets.Backend), zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatal("failed to register service metrics", zap.Error(err))
	}

	svc := service.NewDashboardService(store, store, store, metrics)

	app := fiber.New(fiber.Config{
		Views:                 handlers.NewViews(),
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID first so every later middleware can read it.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Logger(log.Named("http")))

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, assets, svc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", zap.String("addr", addr), zap.String("assets_backend", cfg.Assets.Backend))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server_shutdown_failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", zap.Error(err))
	}
	log.Info("server_stopped")
}

func newAssetStore(cfg *config.AppConfig) (storage.AssetStore, error) {
	switch cfg.Assets.Backend {
	case config.AssetsEmbedded:
		return storage.NewEmbedded(), nil
	case config.AssetsMinIO:
		return storage.NewMinIO(cfg.MinIO, cfg.Assets.PresignTTL())
	default:
		return nil, fmt.Errorf("unknown assets backend: %s", cfg.Assets.Backend)
	}
}
