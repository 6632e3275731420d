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

	"reward-indexer/config"
	"reward-indexer/internal/adapter/chain"
	httpHandler "reward-indexer/internal/adapter/http/handler"
	"reward-indexer/internal/adapter/http/middleware"
	"reward-indexer/internal/adapter/seed"
	pgStorage "reward-indexer/internal/adapter/storage/postgres"
	redisStorage "reward-indexer/internal/adapter/storage/redis"
	"reward-indexer/internal/core/ports"
	"reward-indexer/internal/observability"
	"reward-indexer/internal/service"
	"reward-indexer/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reward-indexer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(os.Getenv("RWD_CONFIG_FILE"))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("token", cfg.Chain.TokenAddress).
		Str("distributor", cfg.Chain.DistributorAddress).
		Int("port", cfg.Server.Port).
		Msg("Starting reward indexer")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seed the ledger before anything subscribes
	records, err := seed.NewLoader(cfg.Chain.TokenDecimals, logger.Component(log, "seed")).LoadFile(cfg.Seed.Path)
	if err != nil {
		return err
	}
	ledger := service.NewLedgerService()
	if err := ledger.Seed(records); err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	metrics.LedgerSize(ledger.Len())
	tracker := service.NewSubscriptionTracker(metrics, logger.Component(log, "subscription"))

	// Optional storage
	var (
		checkers  []ports.HealthChecker
		journal   ports.PayoutJournal
		publisher ports.LeaderboardPublisher
		limiter   ports.RateLimiter
	)

	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		journal = pgStorage.NewPayoutJournal(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return err
		}
		defer rdb.Close()

		limiter = redisStorage.NewRateLimitStore(rdb)
		publisher = redisStorage.NewLeaderboardMirror(rdb, cfg.Redis.MirrorKey, cfg.Chain.TokenDecimals)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	// Subscription pipeline
	source, err := chain.NewLogSource(cfg.Chain.RPCURL, chain.Config{
		ReconnectDelay:       cfg.Chain.ReconnectDelay,
		MaxReconnectDelay:    cfg.Chain.MaxReconnectDelay,
		MaxReconnectAttempts: cfg.Chain.MaxReconnectAttempts,
		PollInterval:         cfg.Chain.PollInterval,
	}, tracker, logger.Component(log, "chain"))
	if err != nil {
		return err
	}

	var recorder *service.PayoutRecorder
	if journal != nil {
		recorder = service.NewPayoutRecorder(journal, 0, logger.Component(log, "journal"))
	}

	ingest := service.NewIngestService(service.IngestConfig{
		Source:    source,
		Filter:    service.NewTransferFilter(cfg.Chain.TokenAddress, cfg.Chain.DistributorAddress, metrics),
		Ledger:    ledger,
		Recorder:  recorder,
		Tracker:   tracker,
		Metrics:   metrics,
		Query:     service.TransferQuery(cfg.Chain.TokenAddress),
		Decimals:  cfg.Chain.TokenDecimals,
		QueueSize: cfg.Ingest.QueueSize,
	}, logger.Component(log, "ingest"))

	// Read API
	reportingSvc := service.NewReportingService(ledger, ingest, cfg.Chain.TokenDecimals, checkers...)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ReportingSvc: reportingSvc,
		RateLimiter:  limiter,
		RateLimit: middleware.RateLimitRule{
			Limit:  int64(cfg.Redis.RateLimit),
			Window: cfg.Redis.RateWindow,
		},
		Logger: logger.Component(log, "http"),
	})
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	var metricsSrv *observability.Server
	if cfg.Metrics.Addr != "" {
		metricsSrv = observability.NewServer(cfg.Metrics.Addr, metrics, log)
		metricsSrv.Start()
	}

	// A failing member cancels the rest: a lost subscription stops the API.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ingest.Run(gctx)
	})

	if recorder != nil {
		g.Go(func() error {
			recorder.Run(gctx)
			return nil
		})
	}

	if publisher != nil {
		mirror := service.NewMirrorService(ledger, publisher, cfg.Redis.MirrorInterval, logger.Component(log, "mirror"))
		g.Go(func() error {
			mirror.Run(gctx)
			return nil
		})
	}

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
		}
		if metricsSrv != nil {
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Metrics server forced to shutdown")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Indexer stopped")
		return err
	}

	snap := ledger.Snapshot()
	log.Info().
		Int("recipients", snap.Count).
		Str("total", reportingSvc.Total().String()).
		Msg("Indexer exited")
	return nil
}
