package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/myvegiz/backend/internal/application/catalog"
	contentapp "github.com/myvegiz/backend/internal/application/content"
	geoapp "github.com/myvegiz/backend/internal/application/geo"
	identityapp "github.com/myvegiz/backend/internal/application/identity"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/infrastructure/auth"
	"github.com/myvegiz/backend/internal/infrastructure/config"
	"github.com/myvegiz/backend/internal/infrastructure/logger"
	"github.com/myvegiz/backend/internal/infrastructure/mailer"
	"github.com/myvegiz/backend/internal/infrastructure/persistence"
	"github.com/myvegiz/backend/internal/infrastructure/storage"
	"github.com/myvegiz/backend/internal/infrastructure/telemetry"
	"github.com/myvegiz/backend/internal/interfaces/http/handler"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
	"github.com/myvegiz/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting MyVegiz backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Observability: traces, exported logs and continuous profiling.
	// Everything stays no-op unless enabled in config.
	telemetryCtx := context.Background()
	tracerProvider, err := telemetry.NewTracerProvider(telemetryCtx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.App.Name,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(telemetryCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilingServer,
		ApplicationName: cfg.App.Name,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	logsProvider, err := telemetry.NewLoggerProvider(telemetryCtx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.App.Name,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	defer func() {
		if err := logsProvider.Shutdown(telemetryCtx); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()
	log = telemetry.BridgeLogger(log, logsProvider, cfg.App.Name)

	// Database with GORM logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:            cfg.Telemetry.Enabled && cfg.Telemetry.DBTracingEnabled,
		LogFullSQL:         cfg.Telemetry.LogFullSQL,
		SlowQueryThreshold: telemetry.DefaultDBTracingConfig().SlowQueryThreshold,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Token blacklist: Redis when configured, in-memory otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis not configured, using in-memory token blacklist")
	}

	// Image storage
	var imageStorage uploads.ImageStorage
	switch cfg.Storage.Provider {
	case "s3":
		s3Storage, err := storage.NewS3ImageStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
		imageStorage = s3Storage
		log.Info("S3 image storage initialized", zap.String("bucket", cfg.Storage.Bucket))
	default:
		imageStorage = storage.NewStubImageStorage()
		log.Warn("Using stub image storage, uploads are kept in memory")
	}
	uploader := uploads.NewService(imageStorage, cfg.Upload, log)

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	mainCategoryRepo := persistence.NewGormMainCategoryRepository(db.DB)
	subCategoryRepo := persistence.NewGormSubCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	variantRepo := persistence.NewGormProductVariantRepository(db.DB)
	uomRepo := persistence.NewGormUOMRepository(db.DB)
	zoneRepo := persistence.NewGormZoneRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	sliderRepo := persistence.NewGormSliderRepository(db.DB)
	emailSettingRepo := persistence.NewGormEmailSettingRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, uploader, log)
	profileService := identityapp.NewProfileService(userRepo, uploader, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, uploader, log)
	mainCategoryService := catalogapp.NewMainCategoryService(mainCategoryRepo, uploader, log)
	subCategoryService := catalogapp.NewSubCategoryService(subCategoryRepo, categoryRepo, uploader, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, subCategoryRepo, uploader, log)
	variantService := catalogapp.NewProductVariantService(variantRepo, productRepo, uomRepo, zoneRepo, log)
	uomService := catalogapp.NewUOMService(uomRepo, log)
	zoneService := geoapp.NewZoneService(zoneRepo, log)
	sliderService := contentapp.NewSliderService(sliderRepo, uploader, log)
	emailSettingService := contentapp.NewEmailSettingService(emailSettingRepo, mailer.NewSMTPMailer(log), log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	if tracerProvider.IsEnabled() {
		engine.Use(middleware.Tracing(cfg.App.Name))
		engine.Use(middleware.SpanEnrichment())
	}
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", healthHandler(db))

	authMW := middleware.NewAuthMiddleware(jwtService, blacklist, userRepo, log)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewAuthHandler(authService, authMW)).
		Register(handler.NewUserHandler(userService, authMW)).
		Register(handler.NewProfileHandler(profileService, authMW)).
		Register(handler.NewCategoryHandler(categoryService, subCategoryService, authMW)).
		Register(handler.NewMainCategoryHandler(mainCategoryService, authMW)).
		Register(handler.NewSubCategoryHandler(subCategoryService, authMW)).
		Register(handler.NewProductHandler(productService, variantService, authMW)).
		Register(handler.NewProductVariantHandler(variantService, authMW)).
		Register(handler.NewUOMHandler(uomService, authMW)).
		Register(handler.NewZoneHandler(zoneService, authMW)).
		Register(handler.NewSliderHandler(sliderService, authMW)).
		Register(handler.NewEmailSettingHandler(emailSettingService, authMW)).
		Register(handler.NewWebHandler(categoryService, subCategoryService, productService, sliderService)).
		Setup()

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
