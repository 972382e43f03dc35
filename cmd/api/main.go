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

	_ "fbr-invoice-backend/docs" // swagger docs
	"fbr-invoice-backend/internal/config"
	"fbr-invoice-backend/internal/database"
	"fbr-invoice-backend/internal/fbr"
	"fbr-invoice-backend/internal/handler"
	"fbr-invoice-backend/internal/logger"
	"fbr-invoice-backend/internal/metrics"
	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/repository"
	"fbr-invoice-backend/internal/router"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// @title           FBR Invoice Backend API
// @version         1.0
// @description     Multi-tenant FBR digital invoicing: sellers, buyers, HS codes, scenarios, invoices and print layouts.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(logger.Config{
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.NewConnection(cfg.DB, logger.NewGormLogger(zl))
	if err != nil {
		zl.Fatal("Database connection failed", zap.Error(err))
	}
	zl.Info("Connected to database", zap.String("driver", cfg.DB.Driver))

	validation.Register()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry, metrics.Config{ServiceName: cfg.App.Name, Environment: cfg.App.Env})

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	buyerRepo := repository.NewBuyerRepository(db)
	hsCodeRepo := repository.NewHSCodeRepository(db)
	globalScenarioRepo := repository.NewGlobalScenarioRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	customFieldRepo := repository.NewCustomFieldRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	printSettingsRepo := repository.NewPrintSettingsRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	gateway := fbr.NewClient(cfg.FBR, fbr.WithMetrics(appMetrics))

	userService := service.NewUserService(userRepo, txManager, cfg.JWT)
	buyerService := service.NewBuyerService(buyerRepo)
	hsCodeService := service.NewHSCodeService(hsCodeRepo)
	scenarioService := service.NewScenarioService(globalScenarioRepo, scenarioRepo, userRepo, auditRepo, txManager)
	customFieldService := service.NewCustomFieldService(customFieldRepo, auditRepo, txManager)
	printSettingsService := service.NewPrintSettingsService(printSettingsRepo, customFieldRepo)
	auditService := service.NewAuditService(auditRepo)
	invoiceService := service.NewInvoiceService(service.InvoiceDeps{
		Invoices:      invoiceRepo,
		Users:         userRepo,
		Buyers:        buyerRepo,
		Scenarios:     scenarioRepo,
		HSCodes:       hsCodeRepo,
		CustomFields:  customFieldRepo,
		Audit:         auditRepo,
		PrintSettings: printSettingsService,
		Gateway:       gateway,
		TxManager:     txManager,
	})

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := userService.EnsureAdmin(seedCtx, cfg.Admin); err != nil {
		zl.Fatal("Admin seeding failed", zap.Error(err))
	}
	cancelSeed()

	engine := router.New(router.Options{
		Logger:         zl,
		Metrics:        appMetrics,
		Gatherer:       registry,
		Auth:           middleware.NewAuth(cfg.JWT.Secret),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Production:     cfg.App.IsProduction(),
		EnableSwagger:  !cfg.App.IsProduction(),
		Handlers: []router.RouteRegistrar{
			handler.NewUserHandler(userService, handler.CookieConfig{Secure: cfg.App.IsProduction(), MaxAge: cfg.JWT.ExpiresIn}),
			handler.NewBuyerHandler(buyerService),
			handler.NewHSCodeHandler(hsCodeService),
			handler.NewScenarioHandler(scenarioService),
			handler.NewCustomFieldHandler(customFieldService),
			handler.NewInvoiceHandler(invoiceService),
			handler.NewPrintSettingsHandler(printSettingsService),
			handler.NewAuditHandler(auditService),
		},
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("Server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("Graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
