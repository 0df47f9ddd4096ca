package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skynet-news/internal/classify"
	"skynet-news/internal/config"
	"skynet-news/internal/handler"
	"skynet-news/internal/infrastructure/database"
	"skynet-news/internal/logger"
	"skynet-news/internal/metrics"
	"skynet-news/internal/middleware"
	"skynet-news/internal/repository"
	"skynet-news/internal/seed"
	"skynet-news/internal/service"
	"skynet-news/internal/store"
	"skynet-news/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.SetLevel(cfg.LogLevel)

	vocab, err := config.LoadVocabulary(cfg.TopicsFile)
	if err != nil {
		logger.Fatal("Failed to load topic vocabulary",
			slog.String("error", err.Error()))
	}

	ctx := context.Background()

	// Open the store backend
	var (
		blobStore    store.Store
		storeChecker handler.StoreChecker
	)
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		poolCfg := database.PoolConfig{
			Host:              cfg.DBHost,
			Port:              cfg.DBPort,
			User:              cfg.DBUser,
			Password:          cfg.DBPassword,
			Database:          cfg.DBName,
			SSLMode:           cfg.DBSSLMode,
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		}
		if err := database.Migrate(poolCfg, "migrations"); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
		pool, err := database.NewPostgres(ctx, poolCfg)
		if err != nil {
			logger.Fatal("Failed to connect to database",
				slog.String("error", err.Error()))
		}
		defer pool.Close()

		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()

		blobStore = store.NewPostgresStore(pool)
		storeChecker = func(ctx context.Context) error {
			return database.HealthCheck(ctx, pool)
		}
	case config.StoreBackendRedis:
		redisStore, err := store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("Failed to connect to redis",
				slog.String("error", err.Error()))
		}
		defer redisStore.Close()
		blobStore = redisStore
		storeChecker = redisStore.Ping
	default:
		blobStore = store.NewMemoryStore()
	}

	// Seed sample data on a fresh store
	if cfg.SeedData {
		if err := seed.Run(ctx, blobStore); err != nil {
			logger.Fatal("Failed to seed store",
				slog.String("error", err.Error()))
		}
	}

	// Initialize repositories
	userRepo := repository.NewStoreUserRepository(blobStore)
	uploaderRepo := repository.NewStoreUploaderRepository(blobStore)
	articleRepo := repository.NewStoreArticleRepository(blobStore)
	sessionRepo := repository.NewStoreSessionRepository(blobStore)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize the classifier; without an API key all classifications
	// use the random fallback.
	var fallback *classify.FallbackClassifier
	if cfg.FallbackSeed != 0 {
		fallback = classify.NewSeededFallbackClassifier(vocab, cfg.FallbackSeed)
	} else {
		fallback = classify.NewFallbackClassifier(vocab)
	}

	var classifier classify.Classifier = fallback
	if cfg.GeminiAPIKey != "" {
		gemini, err := classify.NewGeminiClassifier(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, vocab, fallback)
		if err != nil {
			logger.Fatal("Failed to create classifier",
				slog.String("error", err.Error()))
		}
		classifier = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, classification will use random fallback topics")
	}

	// Initialize services
	identityService := service.NewIdentityService(userRepo, uploaderRepo, sessionRepo)
	catalogService := service.NewCatalogService(articleRepo)
	publishService := service.NewPublishService(catalogService, sessionRepo, classifier, vocab, v)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(catalogService)
	identityHandler := handler.NewIdentityHandler(identityService, v)
	publishHandler := handler.NewPublishHandler(publishService)
	healthHandler := handler.NewHealthHandler(cfg.StoreBackend, storeChecker)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/export", articleHandler.ExportArticles)
			articles.GET("/:id", articleHandler.GetArticle)
		}

		users := v1.Group("/users")
		{
			users.POST("/register", identityHandler.RegisterUser)
			users.POST("/login", identityHandler.LoginUser)
			users.POST("/logout", identityHandler.LogoutUser)
		}

		uploaders := v1.Group("/uploaders")
		{
			uploaders.POST("/register", identityHandler.RegisterUploader)
			uploaders.POST("/login", identityHandler.LoginUploader)
			uploaders.POST("/logout", identityHandler.LogoutUploader)
		}

		v1.GET("/session", identityHandler.CurrentSession)

		publish := v1.Group("/publish")
		{
			publish.POST("/submit", publishHandler.SubmitDraft)
			publish.POST("/:draftID/confirm", publishHandler.ConfirmDraft)
			publish.DELETE("/:draftID", publishHandler.AbandonDraft)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
