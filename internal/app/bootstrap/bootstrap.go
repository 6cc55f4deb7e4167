package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	queueengine "vigil/contexts/moderation-safety/queue-engine"
	postgresadapter "vigil/contexts/moderation-safety/queue-engine/adapters/postgres"
	redisadapter "vigil/contexts/moderation-safety/queue-engine/adapters/redis"
	workerapp "vigil/contexts/moderation-safety/queue-engine/application/workers"
	"vigil/contexts/moderation-safety/queue-engine/ports"
	"vigil/internal/platform/cache"
	"vigil/internal/platform/config"
	"vigil/internal/platform/db"
	"vigil/internal/platform/httpserver"
	"vigil/internal/platform/messaging"
	"vigil/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *cache.Redis
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	kafka        *messaging.KafkaPublisher
	outboxRelay  workerapp.OutboxRelay
	staleClaims  workerapp.StaleClaimReleaser
	statsProbe   workerapp.StatsProbe
	relayEnabled bool
	sweepEnabled bool
	statsEnabled bool
	pollInterval time.Duration
	metricsAddr  string
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	var redisConn *cache.Redis
	var violationCache ports.ViolationCountCache
	if cfg.EnableViolationCache && strings.TrimSpace(cfg.RedisAddr) != "" {
		redisConn, err = cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			_ = pg.Close()
			return nil, err
		}
		violationCache = redisadapter.NewViolationCache(redisConn.Client, logger)
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	module := queueengine.NewModule(queueengine.Dependencies{
		Queue:             repo,
		Violations:        repo,
		Notes:             repo,
		Idempotency:       repo,
		ViolationCache:    violationCache,
		Clock:             postgresadapter.SystemClock{},
		IDGenerator:       postgresadapter.UUIDGenerator{},
		IdempotencyTTL:    7 * 24 * time.Hour,
		ViolationCacheTTL: 5 * time.Minute,
		NextMaxAttempts:   3,
		NextRetryDelay:    25 * time.Millisecond,
		Logger:            logger,
	})

	server := httpserver.New(module, metrics.NewMetrics(), logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		redis:    redisConn,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	m := metrics.NewMetrics()

	var kafka *messaging.KafkaPublisher
	var publisher ports.EventPublisher
	if cfg.EnableKafkaPublisher {
		kafka = messaging.NewKafkaPublisher(cfg.KafkaBrokers, m, logger)
		publisher = kafka
	} else {
		publisher = messaging.NewLocalBus(logger)
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		kafka:    kafka,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    repo,
			Publisher: publisher,
			Clock:     postgresadapter.SystemClock{},
			Topic:     cfg.QueueTopic,
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		},
		staleClaims: workerapp.StaleClaimReleaser{
			Queue:    repo,
			Clock:    postgresadapter.SystemClock{},
			ClaimSLA: cfg.ClaimSLA,
			Logger:   logger,
		},
		statsProbe: workerapp.StatsProbe{
			Queue:    repo,
			Clock:    postgresadapter.SystemClock{},
			Recorder: m,
			Logger:   logger,
		},
		relayEnabled: cfg.EnableOutboxRelay,
		sweepEnabled: cfg.EnableStaleClaimSweep,
		statsEnabled: cfg.EnableStatsProbe,
		pollInterval: cfg.WorkerPollInterval,
		metricsAddr:  normalizeAddr(cfg.HTTPPort),
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	// The worker has no API surface; its stats probe still needs a scrape
	// endpoint for the gauges it maintains.
	go func() {
		mux := http.NewServeMux()
		mux.Handle("GET /metrics", promhttp.Handler())
		if err := http.ListenAndServe(w.metricsAddr, mux); err != nil {
			w.logger.Error("worker metrics listener stopped",
				"event", "bootstrap_metrics_listener_stopped",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if w.sweepEnabled {
			if err := w.staleClaims.RunOnce(ctx); err != nil {
				return err
			}
		}
		if w.relayEnabled {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		if w.statsEnabled {
			if err := w.statsProbe.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.kafka != nil {
		_ = w.kafka.Close()
	}
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
