package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobsearch/internal/config"
	dbElastic "github.com/kailas-cloud/jobsearch/internal/db/elastic"
	dbRedis "github.com/kailas-cloud/jobsearch/internal/db/redis"
	"github.com/kailas-cloud/jobsearch/internal/domain"
	logpkg "github.com/kailas-cloud/jobsearch/internal/logger"
	"github.com/kailas-cloud/jobsearch/internal/metrics"
	"github.com/kailas-cloud/jobsearch/internal/repository/dummy"
	"github.com/kailas-cloud/jobsearch/internal/repository/facetcache"
	searchrepo "github.com/kailas-cloud/jobsearch/internal/repository/search"
	chiTransport "github.com/kailas-cloud/jobsearch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/jobsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/jobsearch/internal/usecase/search"
	sitemapuc "github.com/kailas-cloud/jobsearch/internal/usecase/sitemap"
	"github.com/kailas-cloud/jobsearch/internal/version"
)

// backend is everything a search driver serves.
type backend interface {
	searchuc.JobRepository
	searchuc.CandidateRepository
	searchuc.FacetRepository
	sitemapuc.Scanner
}

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting jobsearch API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("engine_driver", cfg.Engine.Driver),
		zap.Strings("engine_addrs", cfg.Engine.Addrs),
		zap.Bool("facet_cache", cfg.Cache.Enabled),
	)

	defaultBrand, err := domain.ParseBrand(cfg.Search.DefaultBrand, domain.BrandStandard)
	if err != nil {
		logger.Fatal("Invalid default brand", zap.Error(err))
	}

	credentials, err := chiTransport.ParseCredentials(cfg.Auth.APIKeys)
	if err != nil {
		logger.Fatal("Invalid auth.api_keys", zap.Error(err))
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	ctx := context.Background()

	// Pass nil interfaces (not typed nil pointers!) to health when a
	// component is absent. Go gotcha: (*Store)(nil) wrapped in Pinger != nil.
	var enginePinger, cachePinger healthuc.Pinger

	// Create search backend based on driver
	var repo backend
	switch cfg.Engine.Driver {
	case config.DriverElastic:
		store, err := dbElastic.NewStore(dbElastic.Config{
			Addrs:    cfg.Engine.Addrs,
			Username: cfg.Engine.Username,
			Password: cfg.Engine.Password,
			APIKey:   cfg.Engine.APIKey,
		})
		if err != nil {
			logger.Fatal("Failed to create engine store", zap.Error(err))
		}
		if err := store.WaitForReady(ctx, time.Duration(cfg.Engine.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Search engine not ready", zap.Error(err))
		}
		logger.Info("Connected to search engine")
		enginePinger = store
		repo = searchrepo.New(store, searchrepo.Indexes{
			Jobs:       cfg.Engine.JobIndex,
			Candidates: cfg.Engine.CandidateIndex,
		})
	case config.DriverDummy:
		d, err := dummy.New()
		if err != nil {
			logger.Fatal("Failed to load fixtures", zap.Error(err))
		}
		logger.Warn("Serving embedded fixtures, not a search engine")
		repo = d
	default:
		logger.Fatal("Unknown engine driver", zap.String("driver", cfg.Engine.Driver))
	}

	// Facet cache decorates the facet repository only
	var facets searchuc.FacetRepository = repo
	if cfg.Cache.Enabled {
		kv, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer kv.Close()
		cachePinger = kv
		facets = facetcache.New(
			repo, kv, time.Duration(cfg.Cache.TTLSec)*time.Second, metrics.FacetCacheTotal, logger,
		)
	}

	// Create use case services
	searchSvc := searchuc.New(repo, repo, facets)
	walker := sitemapuc.New(repo, sitemapuc.Config{
		PageSize:     cfg.Sitemap.PageSize,
		FullPageSize: cfg.Sitemap.FullPageSize,
	})
	healthSvc := healthuc.New(enginePinger, cachePinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, walker, healthSvc, defaultBrand, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(credentials))
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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			brand := r.Header.Get(chiTransport.BrandHeader)
			if brand == "" {
				brand = r.URL.Query().Get("brand")
			}

			// Canonical log line: one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.String("brand", brand),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
