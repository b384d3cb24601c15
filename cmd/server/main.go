package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aims/backend/internal/application/dashboard"
	identityapp "github.com/aims/backend/internal/application/identity"
	inventoryapp "github.com/aims/backend/internal/application/inventory"
	"github.com/aims/backend/internal/application/support"
	"github.com/aims/backend/internal/infrastructure/auth"
	"github.com/aims/backend/internal/infrastructure/cache"
	"github.com/aims/backend/internal/infrastructure/config"
	"github.com/aims/backend/internal/infrastructure/event"
	"github.com/aims/backend/internal/infrastructure/logger"
	"github.com/aims/backend/internal/infrastructure/persistence"
	"github.com/aims/backend/internal/infrastructure/telemetry"
	"github.com/aims/backend/internal/interfaces/http/handler"
	"github.com/aims/backend/internal/interfaces/http/middleware"
	"github.com/aims/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/aims/backend/docs"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			AIMS Backend API
//	@version		1.0
//	@description	IT asset inventory management: categories, manufacturers, locations, assets and users.

//	@contact.name	API Support
//	@contact.email	support@aims.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()
	providers, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	// Mirror application logs to the OTLP exporter once it is running.
	if providers.Enabled() {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		log = log.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, providers.ZapCore(level))
		}))
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting AIMS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLog := logger.NewGormLogger(log, cfg.Log.GormLevel, cfg.Log.SlowThreshold)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.InstrumentGorm(db.DB, cfg.Database.DBName, log); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	meter := providers.Meter(cfg.Telemetry.ServiceName)
	if sqlDB, err := db.DB.DB(); err == nil {
		if err := telemetry.RegisterDBPoolMetrics(meter, sqlDB.Stats); err != nil {
			log.Warn("Failed to register database pool metrics", zap.Error(err))
		}
	}
	metrics, err := telemetry.NewInventoryMetrics(meter)
	if err != nil {
		log.Warn("Failed to create inventory metrics", zap.Error(err))
	}

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	manufacturerRepo := persistence.NewGormManufacturerRepository(db.DB)
	locationRepo := persistence.NewGormLocationRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	statsRepo := persistence.NewGormStatsRepository(db.DB)

	// Dashboard cache, invalidated by every record write
	store := cache.NewStore(cfg.Redis, log)
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing cache", zap.Error(err))
		}
	}()
	statsService := dashboard.NewService(statsRepo, store, cfg.Redis.DashboardTTL, log)

	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(statsService)
	changes := support.NewChanges(eventBus, metrics)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	categoryService := inventoryapp.NewCategoryService(categoryRepo, assetRepo, db, changes)
	manufacturerService := inventoryapp.NewManufacturerService(manufacturerRepo, assetRepo, db, changes)
	locationService := inventoryapp.NewLocationService(locationRepo, assetRepo, db, changes)
	assetService := inventoryapp.NewAssetService(
		assetRepo, categoryRepo, manufacturerRepo, locationRepo, userRepo, db, changes)
	userService := identityapp.NewUserService(userRepo, assetRepo, db, changes)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	loginLimiter := middleware.NewRateLimiter(cfg.HTTP.LoginRateLimit, cfg.HTTP.LoginRateWindow)
	defer loginLimiter.Close()

	middleware.SetupValidator()

	engine := router.New(router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Dashboard:    handler.NewDashboardHandler(statsService),
		System:       handler.NewSystemHandler(db, cfg.App.Name, version),
		Category:     handler.NewCategoryHandler(categoryService),
		Manufacturer: handler.NewManufacturerHandler(manufacturerService),
		Location:     handler.NewLocationHandler(locationService),
		Asset:        handler.NewAssetHandler(assetService),
		User:         handler.NewUserHandler(userService),
	}, router.Options{
		HTTP:         cfg.HTTP,
		JWT:          jwtService,
		Logger:       log,
		Meter:        meter,
		ServiceName:  cfg.Telemetry.ServiceName,
		Tracing:      providers.Enabled(),
		LoginLimiter: loginLimiter,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
