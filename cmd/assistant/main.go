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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kiranakella1981-design/ecom-assistant/internal/config"
	"github.com/kiranakella1981-design/ecom-assistant/internal/db"
	dbMemory "github.com/kiranakella1981-design/ecom-assistant/internal/db/memory"
	dbRedis "github.com/kiranakella1981-design/ecom-assistant/internal/db/redis"
	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
	logpkg "github.com/kiranakella1981-design/ecom-assistant/internal/logger"
	"github.com/kiranakella1981-design/ecom-assistant/internal/metrics"
	"github.com/kiranakella1981-design/ecom-assistant/internal/repository/embcache"
	"github.com/kiranakella1981-design/ecom-assistant/internal/repository/faq"
	"github.com/kiranakella1981-design/ecom-assistant/internal/repository/ledger"
	"github.com/kiranakella1981-design/ecom-assistant/internal/repository/mockdata"
	"github.com/kiranakella1981-design/ecom-assistant/internal/taxonomy"
	chiTransport "github.com/kiranakella1981-design/ecom-assistant/internal/transport/chi"
	openaiTransport "github.com/kiranakella1981-design/ecom-assistant/internal/transport/openai"
	answeruc "github.com/kiranakella1981-design/ecom-assistant/internal/usecase/answer"
	chatuc "github.com/kiranakella1981-design/ecom-assistant/internal/usecase/chat"
	classifyuc "github.com/kiranakella1981-design/ecom-assistant/internal/usecase/classify"
	healthuc "github.com/kiranakella1981-design/ecom-assistant/internal/usecase/health"
	recordsuc "github.com/kiranakella1981-design/ecom-assistant/internal/usecase/records"
	retrievaluc "github.com/kiranakella1981-design/ecom-assistant/internal/usecase/retrieval"
	"github.com/kiranakella1981-design/ecom-assistant/internal/version"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

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

	logger.Info("Starting assistant API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("store_driver", cfg.Store.Driver),
	)

	// Create the key-value store based on driver
	var store db.Store
	switch cfg.Store.Driver {
	case "memory":
		store = dbMemory.NewStore()
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Store.Addrs,
			Password: cfg.Store.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create redis store", zap.Error(err))
		}
	default:
		logger.Fatal("Unknown store driver", zap.String("driver", cfg.Store.Driver))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Store.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Store not ready", zap.Error(err))
	}

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPipelineMetrics()

	// Embedder chain: OpenAI-compatible provider wrapped in the KV cache
	baseEmbedder := openaiTransport.NewEmbedder(&openaiTransport.EmbedderConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Timeout:    time.Duration(cfg.Embedding.TimeoutSec) * time.Second,
		Provider:   "openai",
		Logger:     logger,
	})
	var embedder domain.Embedder = embcache.New(baseEmbedder, store, metrics.EmbeddingCacheTotal, logger)

	generator := openaiTransport.NewGenerator(&openaiTransport.GeneratorConfig{
		APIKey:   cfg.Generation.APIKey,
		BaseURL:  cfg.Generation.BaseURL,
		Model:    cfg.Generation.Model,
		Timeout:  time.Duration(cfg.Generation.TimeoutSec) * time.Second,
		Provider: "openai",
		Logger:   logger,
	})

	// Phrase taxonomy: compiled-in default unless a YAML override is configured
	tax := taxonomy.Default()
	if cfg.Data.TaxonomyPath != "" {
		tax, err = taxonomy.Load(cfg.Data.TaxonomyPath)
		if err != nil {
			logger.Fatal("Failed to load taxonomy", zap.Error(err))
		}
	}

	// Repositories
	faqSource := faq.NewSource(cfg.Data.FAQPath)
	records, err := mockdata.NewStore(cfg.Data.MockPath)
	if err != nil {
		logger.Fatal("Failed to load mock dataset", zap.Error(err))
	}
	dedup := ledger.New(store)

	// Use case services
	classifier := classifyuc.New(tax)
	retriever := retrievaluc.New(faqSource, embedder, logger)
	answerer := answeruc.New(generator, cfg.Generation.MaxTokens)
	responder := recordsuc.New(records, dedup)
	chat := chatuc.New(classifier, retriever, answerer, responder, chatuc.Config{
		TopK:              cfg.Retrieval.TopK,
		DistanceThreshold: cfg.Retrieval.DistanceThreshold,
	})
	health := healthuc.New(store, baseEmbedder, retriever)

	// Initial corpus index. A failure here is not fatal: the service comes
	// up degraded and POST /reload_faq can recover it once the provider is
	// reachable.
	if indexed, err := retriever.Reload(ctx); err != nil {
		logger.Error("Initial corpus load failed", zap.Error(err))
	} else {
		logger.Info("Corpus indexed", zap.Int("entries", indexed))
	}

	server := chiTransport.NewServer(chat, retriever, health, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
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
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
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

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
