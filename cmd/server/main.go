package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storewatch/internal/auth"
	"storewatch/internal/cache"
	"storewatch/internal/config"
	"storewatch/internal/db"
	"storewatch/internal/handler"
	"storewatch/internal/logger"
	"storewatch/internal/repository"
	"storewatch/internal/router"
	"storewatch/internal/service"
)

// @title Storewatch API
// @version 1.0
// @description Retail store monitoring: footfall, attendance and violation dashboards behind cookie sessions.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name sessionToken
func main() {
	cfg := config.Load()

	lg, err := logger.New(logger.Config{Level: cfg.LogLevel, Dev: cfg.LogDev, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer lg.Sync()

	if err := cfg.Validate(); err != nil {
		lg.Fatal("invalid configuration", zap.String("env", cfg.Env), zap.Error(err))
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		lg.Fatal("database init", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		lg.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			lg.Warn("drop tables", zap.Error(err))
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		lg.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		lg.Warn("redis unreachable, caching and sign-out revocation disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)
	footfallRepo := repository.NewFootfallRepository(gormDB)
	violationRepo := repository.NewViolationRepository(gormDB)

	// Initialize auth components
	codec := auth.NewCodec(cfg.SessionCodec, cfg.SessionSecret)
	sessions := auth.NewSessionStore(codec, cfg.IsProduction())
	revocations := auth.NewRevocationStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, revocations, lg.Named("auth"))
	storeService := service.NewStoreService(storeRepo, cacheClient)
	settingsService := service.NewSettingsService(storeRepo)
	dashboardService := service.NewDashboardService(footfallRepo, violationRepo, cacheClient, cfg.CacheTTL, lg.Named("dashboard"))
	reportService := service.NewReportService(footfallRepo)
	importService := service.NewImportService(repository.NewTransactor(gormDB), lg.Named("import"))

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, lg, sessions, revocations, router.Handlers{
		Auth:      handler.NewAuthHandler(authService, sessions),
		Store:     handler.NewStoreHandler(storeService),
		Dashboard: handler.NewDashboardHandler(storeService, dashboardService),
		Report:    handler.NewReportHandler(storeService, reportService),
		Settings:  handler.NewSettingsHandler(storeService, settingsService),
		Import:    handler.NewImportHandler(importService),
		Page:      handler.NewPageHandler(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	go func() {
		lg.Info("server listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("codec", cfg.SessionCodec))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("server shutdown", zap.Error(err))
	}
}
