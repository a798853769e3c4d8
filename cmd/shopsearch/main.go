package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/config"
	"github.com/kailas-cloud/shopsearch/internal/db"
	dbRedis "github.com/kailas-cloud/shopsearch/internal/db/redis"
	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	logpkg "github.com/kailas-cloud/shopsearch/internal/logger"
	"github.com/kailas-cloud/shopsearch/internal/metrics"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalogcache"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalogfile"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalogkv"
	chiTransport "github.com/kailas-cloud/shopsearch/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/shopsearch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/shopsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
	"github.com/kailas-cloud/shopsearch/internal/version"
)

// catalogSource is what every catalog backend offers the services.
type catalogSource interface {
	List(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id string) (product.Product, error)
	Ping(ctx context.Context) error
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic("failed to load .env: " + err.Error())
	}

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, logpkg.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting shopsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	// Register metrics explicitly (no init())
	metrics.Register(prometheus.DefaultRegisterer)

	ctx := context.Background()

	var source catalogSource
	switch cfg.Catalog.Source {
	case config.SourceRedis:
		store, err := openStore(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		defer store.Close()
		logger.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.Strings("addrs", cfg.Database.Addrs),
		)
		source = catalogkv.New(store, cfg.Storage.KeyPrefix)
	default:
		source = catalogfile.New(cfg.Catalog.File, logger)
		logger.Info("Serving catalog from file", zap.String("path", cfg.Catalog.File))
	}

	if cfg.Catalog.CacheTTLSec > 0 {
		source = catalogcache.New(
			source,
			time.Duration(cfg.Catalog.CacheTTLSec)*time.Second,
			metrics.CatalogCacheTotal,
			metrics.CatalogProducts,
			logger,
		)
	}

	// Fail fast on a broken catalog instead of on the first request.
	products, err := source.List(ctx)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	metrics.CatalogProducts.Set(float64(len(products)))
	logger.Info("Catalog loaded", zap.Int("products", len(products)))

	searchSvc := searchuc.New(source, searchuc.NewEngine())
	catalogSvc := cataloguc.New(source)
	healthSvc := healthuc.New(source)

	server := chiTransport.NewServer(searchSvc, catalogSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore connects to Redis or Valkey; both speak RESP and share one client.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (db.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("wait for %s: %w", cfg.Driver, err)
	}
	return store, nil
}
