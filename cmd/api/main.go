package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cacheadapter "shoplist/internal/adapter/cache"
	dbadapter "shoplist/internal/adapter/db"
	httpadapter "shoplist/internal/adapter/http"
	"shoplist/internal/adapter/http/handlers"
	httpmiddleware "shoplist/internal/adapter/http/middleware"
	"shoplist/internal/app/service"
	"shoplist/internal/config"
	"shoplist/internal/core/domain"
	"shoplist/internal/core/ports"
	"shoplist/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguagePt},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.AutoMigrate {
		if err := dbadapter.Migrate(ctx, db); err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	categoryCache, cachePinger, closeCache := newCategoryCache(ctx, cfg, logger)
	defer closeCache()

	itemRepository := dbadapter.NewItemRepository(db)
	categoryRepository := dbadapter.NewCategoryRepository(db)
	itemService := service.NewItemService(itemRepository, categoryRepository, categoryCache)
	categoryService := service.NewCategoryService(categoryRepository, categoryCache)

	if cfg.SeedCategories {
		created, err := categoryService.SeedCategories(ctx, domain.DefaultCategories)
		if err != nil {
			logger.Fatal("failed to seed categories", zap.Error(err))
		}
		logger.Info("seeded categories", zap.Int("created", created))
	}

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.CORSMiddleware(cfg.CorsAllowedOrigins),
	)
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	var extra []gin.HandlerFunc
	if cfg.RateLimitRPS > 0 {
		extra = append(extra, httpmiddleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(db, cachePinger),
		Items:      handlers.NewItemHandler(itemService),
		Categories: handlers.NewCategoryHandler(categoryService),
	}, extra...)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.AppEnv == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		zapCfg.Level = level
	}
	return zapCfg.Build()
}

// newCategoryCache returns a nil cache for "none". The pinger is only set for
// caches that live outside the process.
func newCategoryCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.CategoryCache, handlers.Pinger, func()) {
	switch cfg.CacheDriver {
	case config.CacheNone:
		return nil, nil, func() {}
	case config.CacheRedis:
		redisCache, err := cacheadapter.NewRedisCategoryCache(ctx, cacheadapter.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		return redisCache, redisCache, func() {
			if err := redisCache.Close(); err != nil {
				logger.Warn("failed to close redis client", zap.Error(err))
			}
		}
	default:
		return cacheadapter.NewMemoryCategoryCache(cfg.CacheSize, cfg.CacheTTL), nil, func() {}
	}
}
