package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"marina/internal/api"
	"marina/internal/booking"
	"marina/internal/cache"
	"marina/internal/config"
	"marina/internal/database"
	"marina/internal/events"
	"marina/internal/metrics"
	"marina/internal/notify"
	"marina/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg, err := config.Load(os.Getenv("MARINA_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.NewDB(cfg.Database.Path, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open db error")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewBus()

	var rdb *redis.Client
	var calendarCache *cache.Cache
	if cfg.Redis.Enabled && cfg.Redis.Address != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		calendarCache = cache.New(rdb, cfg.CacheTTL(), &logger)
		calendarCache.SubscribeInvalidation(bus)
		logger.Info().Str("addr", cfg.Redis.Address).Msg("Calendar cache enabled")
	}

	var notifier *notify.Notifier
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		notifier, err = notify.New(cfg.Telegram.BotToken, cfg.Telegram.Debug, cfg.Telegram.Managers, &logger)
		if err != nil {
			logger.Error().Err(err).Msg("telegram notifier disabled")
			notifier = nil
		}
	}

	var sheetsService *sheets.SheetsService
	if cfg.Sheets.Enabled && cfg.Sheets.CredentialsFile != "" {
		sheetsService, err = sheets.NewSheetsService(ctx, cfg.Sheets.CredentialsFile,
			cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName, &logger)
		if err != nil {
			logger.Error().Err(err).Msg("sheets mirror disabled")
			sheetsService = nil
		}
	}

	controller := booking.NewController(db, cfg.Marina.Docks, bus, &logger)
	go sessionCleanupLoop(ctx, controller, cfg.SessionTimeout(), &logger)

	ratePerSecond, burst := cfg.RateLimit()
	server := api.NewHTTPServer(
		fmt.Sprintf(":%d", cfg.Server.Port),
		db,
		controller,
		bus,
		cfg.Server.APIKey,
		ratePerSecond,
		burst,
		api.Options{Cache: calendarCache, Notifier: notifier, Sheets: sheetsService},
		&logger,
	)

	if cfg.Monitoring.HealthCheckPort == 0 {
		cfg.Monitoring.HealthCheckPort = 8090
	}
	go startHealthServer(ctx, cfg.Monitoring.HealthCheckPort, db, rdb, &logger)

	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		metrics.Register()
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	if cfg.Backup.Enabled {
		backup := database.NewBackupService(cfg.Database.Path, cfg, &logger)
		go backup.Start(ctx)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}()

	logger.Info().Msg("Marina management server started")
	if err := server.Start(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func sessionCleanupLoop(ctx context.Context, controller *booking.Controller, timeout time.Duration, logger *zerolog.Logger) {
	ticker := time.NewTicker(timeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := controller.Sessions().Cleanup(); removed > 0 {
				logger.Info().Int("removed", removed).Msg("expired booking sessions cleaned up")
			}
		}
	}
}

func startHealthServer(ctx context.Context, port int, db *database.DB, rdb *redis.Client, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		ctxPing, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := db.PingContext(ctxPing); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		if rdb != nil {
			if err := rdb.Ping(ctxPing).Err(); err != nil {
				http.Error(w, "redis not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("health server error")
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
