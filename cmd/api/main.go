package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dejobratic/ledger/internal/config"
	"github.com/dejobratic/ledger/internal/database"
	idemmemory "github.com/dejobratic/ledger/internal/idempotency/memory"
	idempostgres "github.com/dejobratic/ledger/internal/idempotency/postgres"
	"github.com/dejobratic/ledger/internal/kafka"
	"github.com/dejobratic/ledger/internal/ledger/adapters"
	httpadapter "github.com/dejobratic/ledger/internal/ledger/adapters/http"
	"github.com/dejobratic/ledger/internal/ledger/adapters/jsonfile"
	ledgermemory "github.com/dejobratic/ledger/internal/ledger/adapters/memory"
	ledgerpostgres "github.com/dejobratic/ledger/internal/ledger/adapters/postgres"
	ledgerapp "github.com/dejobratic/ledger/internal/ledger/app"
	ledgermetrics "github.com/dejobratic/ledger/internal/ledger/metrics"
	"github.com/dejobratic/ledger/internal/ledger/ports"
	"github.com/dejobratic/ledger/internal/telemetry"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
)

const meterName = "github.com/dejobratic/ledger"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := telemetry.NewLogger(parseLogLevel(cfg.Telemetry.LogLevel))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.OTelEndpoint != "" {
		tel, err := telemetry.Initialize(ctx, telemetry.Config{
			ServiceName:    cfg.Service.Name,
			ServiceVersion: cfg.Service.Version,
			Environment:    cfg.Service.Environment,
			OTLPEndpoint:   cfg.Telemetry.OTelEndpoint,
			EnableTracing:  cfg.Telemetry.EnableTracing,
			EnableMetrics:  cfg.Telemetry.EnableMetrics,
			SampleRate:     cfg.Telemetry.SampleRate,
		})
		if err != nil {
			logger.Error("failed to initialize telemetry", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tel.Shutdown(shutdownCtx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	meter := otel.Meter(meterName)

	storeMetrics, err := database.NewMetrics(meter)
	if err != nil {
		logger.Error("failed to create store metrics", "error", err)
		os.Exit(1)
	}
	notifierMetrics, err := kafka.NewMetrics(meter)
	if err != nil {
		logger.Error("failed to create notifier metrics", "error", err)
		os.Exit(1)
	}
	bookingMetrics, err := ledgermetrics.NewMetrics(meter)
	if err != nil {
		logger.Error("failed to create booking metrics", "error", err)
		os.Exit(1)
	}
	httpMetrics, err := httpadapter.NewMetrics(meter)
	if err != nil {
		logger.Error("failed to create http metrics", "error", err)
		os.Exit(1)
	}

	var pool *pgxpool.Pool
	var store ports.Store
	var idemStore ports.IdempotencyStore

	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err = database.NewPool(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Database.AutoMigrate {
			logger.Info("running database migrations", "path", cfg.Database.MigrationsPath)
			if err := database.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
				logger.Error("failed to run migrations", "error", err)
				os.Exit(1)
			}
			logger.Info("migrations completed successfully")
		}

		store = ledgerpostgres.NewStore(pool)
		idemStore = idempostgres.NewStore(pool)
	case config.BackendMemory:
		store = ledgermemory.NewStore()
		idemStore = idemmemory.NewStore()
	default:
		logger.Info("using file-backed ledger", "path", cfg.Store.Path)
		store = jsonfile.NewStore(cfg.Store.Path)
		idemStore = idemmemory.NewStore()
	}

	observableStore := adapters.NewObservableStore(store, storeMetrics)

	var notifier ports.Notifier
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrdersTopic)
		if err != nil {
			logger.Error("failed to create kafka publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("failed to close kafka publisher", "error", err)
			}
		}()
		notifier = publisher
	} else {
		notifier = kafka.NewNoopNotifier()
	}
	observableNotifier := adapters.NewObservableNotifier(notifier, notifierMetrics)

	if cfg.Admin.APIKey == "" {
		logger.Warn("ADMIN_API_KEY not set; status updates are disabled")
	}

	service := ledgerapp.NewService(
		observableStore,
		observableNotifier,
		idemStore,
		cfg.Admin.APIKey,
		logger,
		bookingMetrics,
	)
	ledgerHandler := httpadapter.NewHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if pool != nil {
			if err := database.CheckHealth(r.Context(), pool); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready", "error": err.Error()})
				return
			}
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	mux.HandleFunc(cfg.HTTP.MetricsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("# metrics are exported over OTLP\n"))
	})

	ledgerHandler.Register(mux)

	handler := withRecovery(withLogging(httpadapter.WithMetrics(mux, httpMetrics)))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "port", cfg.HTTP.Port, "store_backend", cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownGrace)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	} else {
		logger.Info("http server stopped")
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		slog.Info("http request", "method", r.Method, "path", r.URL.Path, "status", rw.status, "duration", time.Since(start))
	})
}

func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "error", rec)
				respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
