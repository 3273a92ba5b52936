package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/config"
	appHTTP "github.com/cmlabs-hris/pos-attendance-go/internal/handler/http"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/cache"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/clock"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/storage"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/tracing"
	"github.com/cmlabs-hris/pos-attendance-go/internal/repository/postgresql"
	faceService "github.com/cmlabs-hris/pos-attendance-go/internal/service/face"
	"github.com/cmlabs-hris/pos-attendance-go/internal/service/file"
	reportService "github.com/cmlabs-hris/pos-attendance-go/internal/service/report"
	shiftService "github.com/cmlabs-hris/pos-attendance-go/internal/service/shift"
	subscriptionService "github.com/cmlabs-hris/pos-attendance-go/internal/service/subscription"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := appHTTP.NewLogger(cfg.App)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load attendance timezone:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, cfg.App)
	if err != nil {
		log.Fatal("Failed to initialize tracing:", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("failed to flush traces", slog.Any("error", err))
		}
	}()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	redisClient, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis:", err)
	}
	var accessCache subscriptionService.AccessCache
	if redisClient != nil {
		defer redisClient.Close()
		accessCache = redisClient
	} else {
		logger.Warn("REDIS_URL not set, subscription access is read from the database on every request")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	clk := clock.New(loc)

	localStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}
	photoService := file.NewPhotoService(localStorage, clk)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	transactor := postgresql.NewTransactor(db, pgx.ReadCommitted, cfg.Attendance.TxMaxAttempts)
	shiftRepo := postgresql.NewShiftRepository(db)
	outletRepo := postgresql.NewOutletRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	faceRepo := postgresql.NewFaceRepository(db)
	subscriptionRepo := postgresql.NewSubscriptionRepository(db)

	accessGate := subscriptionService.NewAccessGate(subscriptionRepo, accessCache, cfg.Attendance.AccessCacheTTL, clk, m, logger)
	shiftSvc := shiftService.NewShiftService(transactor, shiftRepo, outletRepo, photoService, clk, loc, m, logger)
	reportSvc := reportService.NewReportService(shiftRepo, employeeRepo, outletRepo, clk, loc, m, logger)
	faceSvc := faceService.NewFaceService(faceRepo, photoService, logger)

	checks := map[string]appHTTP.HealthCheck{
		"postgres": db.Ping,
	}
	if redisClient != nil {
		checks["redis"] = redisClient.Health
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			StoragePath:    cfg.Storage.BasePath,
			ReportTimeout:  cfg.Attendance.ReportTimeout,
		},
		logger,
		JWTService,
		accessGate,
		outletRepo,
		registry,
		appHTTP.NewHealthHandler(checks),
		appHTTP.NewAttendanceHandler(shiftSvc, reportSvc),
		appHTTP.NewFaceHandler(faceSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", slog.String("addr", server.Addr), slog.String("timezone", loc.String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Attendance.ShutdownGrace)
		defer cancel()
		logger.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
