package service

import (
	"context"
	"errors"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"
	"reward-indexer/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// ErrLedgerNotSeeded is returned by Run when the snapshot has not been loaded.
var ErrLedgerNotSeeded = errors.New("ingest: ledger has not been seeded")

const defaultQueueSize = 1024

// IngestService drives the live subscription: it subscribes through a
// LogSource and folds reward transfers into the ledger. Batches are
// consumed by a single goroutine in delivery order.
type IngestService struct {
	source    ports.LogSource
	filter    ports.EventFilter
	ledger    ports.Ledger
	recorder  *PayoutRecorder
	tracker   *SubscriptionTracker
	metrics   ports.IngestMetrics
	query     ethereum.FilterQuery
	decimals  int32
	queueSize int
	log       zerolog.Logger
}

// IngestConfig carries the pipeline wiring for NewIngestService.
type IngestConfig struct {
	Source    ports.LogSource
	Filter    ports.EventFilter
	Ledger    ports.Ledger
	Recorder  *PayoutRecorder // optional
	Tracker   *SubscriptionTracker
	Metrics   ports.IngestMetrics // optional
	Query     ethereum.FilterQuery
	Decimals  int32
	QueueSize int
}

// NewIngestService creates the subscription driver.
func NewIngestService(cfg IngestConfig, log zerolog.Logger) *IngestService {
	if cfg.Metrics == nil {
		cfg.Metrics = noopMetrics{}
	}
	if cfg.Tracker == nil {
		cfg.Tracker = NewSubscriptionTracker(cfg.Metrics, log)
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	return &IngestService{
		source:    cfg.Source,
		filter:    cfg.Filter,
		ledger:    cfg.Ledger,
		recorder:  cfg.Recorder,
		tracker:   cfg.Tracker,
		metrics:   cfg.Metrics,
		query:     cfg.Query,
		decimals:  cfg.Decimals,
		queueSize: cfg.QueueSize,
		log:       log,
	}
}

// Run subscribes and processes batches until ctx is cancelled (returns nil)
// or the source fails permanently (returns a subscription error).
func (s *IngestService) Run(ctx context.Context) error {
	if !s.ledger.Seeded() {
		return ErrLedgerNotSeeded
	}

	batches := make(chan []types.Log, s.queueSize)
	sub, err := s.source.SubscribeLogs(ctx, s.query, batches)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return asSubscriptionError("subscribing to transfer logs", err)
	}
	defer sub.Unsubscribe()

	s.log.Info().Int("queue_size", s.queueSize).Msg("Listening for new rewards")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("Ingest stopped")
			return nil
		case err, ok := <-sub.Err():
			if ctx.Err() != nil {
				return nil
			}
			if !ok || err == nil {
				return apperror.ErrSubscription("log subscription closed", nil)
			}
			return asSubscriptionError("log subscription failed", err)
		case batch := <-batches:
			s.processBatch(batch)
		}
	}
}

// processBatch filters, dedups within the batch and credits. A log repeated
// in a later batch is credited again.
func (s *IngestService) processBatch(batch []types.Log) {
	s.metrics.BatchReceived(len(batch))

	seen := make(map[domain.EventKey]struct{}, len(batch))
	for _, lg := range batch {
		ev, err := s.filter.Accept(lg)
		if err != nil {
			s.metrics.DecodeFailed()
			s.log.Warn().Err(err).
				Str("tx_hash", lg.TxHash.Hex()).
				Uint("log_index", lg.Index).
				Msg("Skipping undecodable transfer log")
			continue
		}
		if ev == nil {
			continue
		}

		key := ev.Key()
		if _, dup := seen[key]; dup {
			s.metrics.EventRejected(RejectDuplicate)
			continue
		}
		seen[key] = struct{}{}

		s.ledger.Credit(ev.To, ev.Value)
		s.metrics.EventCredited()
		s.recorder.Record(ev)

		s.log.Info().
			Str("recipient", ev.To.String()).
			Str("amount", domain.FormatDisplay(ev.Value, s.decimals)).
			Str("tx_hash", ev.TxHash.Hex()).
			Uint64("block", ev.BlockNumber).
			Msg("New reward")
	}

	s.metrics.LedgerSize(s.ledger.Len())
}

// State returns the current subscription state.
func (s *IngestService) State() domain.SubscriptionState {
	return s.tracker.State()
}

// Ready reports whether the subscription has been established at least once.
func (s *IngestService) Ready() bool {
	return s.tracker.Ready()
}

func asSubscriptionError(msg string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Kind == apperror.KindSubscription {
		return err
	}
	return apperror.ErrSubscription(msg, err)
}
