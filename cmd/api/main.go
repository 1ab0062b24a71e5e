package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"receiptapi/internal/config"
	"receiptapi/internal/database"
	"receiptapi/internal/database/migration"
	handlers "receiptapi/internal/http/handler"
	"receiptapi/internal/http/middleware"
	"receiptapi/internal/logger"
	tracing "receiptapi/internal/otel"
	"receiptapi/internal/render"
	"receiptapi/internal/repository/postgres"
	"receiptapi/internal/service"
	"receiptapi/internal/storage"
)

const (
	bodyLimit       = 64 * 1024
	shutdownTimeout = 10 * time.Second
)

// @title Receipt API
// @version 1.0
// @description Generates, stores and serves vehicle sale receipts.
// @BasePath /
func main() {
	cfg := config.Load()
	loc := cfg.Location()

	log := logger.NewStdout(loc)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}
	receiptMetrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatal("failed to register receipt metrics", zap.Error(err))
	}

	receiptSvc := service.NewReceiptService(
		objStore,
		postgres.NewReceiptPostgres(db),
		render.NewMaroto(),
		service.Options{
			Filename:      cfg.Receipt.Filename,
			PresignExpiry: cfg.Receipt.PresignExpiry,
			Creator:       cfg.Receipt.Creator,
			Location:      loc,
			Metrics:       receiptMetrics,
		},
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    bodyLimit,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(httpMetrics.Handler())
	app.Use(middleware.AccessLog(log))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       db,
		Store:    objStore,
		Receipts: receiptSvc,
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Log:      log,
	})

	go func() {
		<-ctx.Done()
		log.Info("server_shutdown")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("server_shutdown_failed", zap.Error(err))
		}
	}()

	log.Info("server_start", zap.String("addr", ":"+cfg.Port), zap.String("timezone", loc.String()))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("failed to start server", zap.Error(err))
	}
}
