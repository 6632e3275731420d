package service

import (
	"context"
	"time"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"

	"github.com/rs/zerolog"
)

const drainTimeout = 5 * time.Second

// PayoutRecorder writes credited payouts to the journal off the ingest path.
// Record never blocks: when the buffer is full the entry is dropped and
// logged. A recorder without a journal only logs at debug.
type PayoutRecorder struct {
	journal ports.PayoutJournal
	queue   chan *domain.PayoutEntry
	log     zerolog.Logger
	now     func() time.Time
}

// NewPayoutRecorder creates a recorder. journal may be nil.
func NewPayoutRecorder(journal ports.PayoutJournal, buffer int, log zerolog.Logger) *PayoutRecorder {
	if buffer <= 0 {
		buffer = 256
	}
	return &PayoutRecorder{
		journal: journal,
		queue:   make(chan *domain.PayoutEntry, buffer),
		log:     log,
		now:     time.Now,
	}
}

// Record enqueues a journal entry for a credited event.
func (r *PayoutRecorder) Record(ev *domain.TransferEvent) {
	if r == nil || r.journal == nil {
		return
	}

	entry := domain.NewPayoutEntry(ev, r.now())
	select {
	case r.queue <- entry:
	default:
		r.log.Warn().
			Str("tx_hash", entry.TxHash).
			Uint("log_index", entry.LogIndex).
			Msg("payout journal buffer full, entry dropped")
	}
}

// Run persists queued entries until ctx is cancelled, then drains what is
// left with a bounded timeout.
func (r *PayoutRecorder) Run(ctx context.Context) {
	if r == nil || r.journal == nil {
		return
	}

	for {
		select {
		case entry := <-r.queue:
			r.persist(ctx, entry)
		case <-ctx.Done():
			r.drain()
			return
		}
	}
}

func (r *PayoutRecorder) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case entry := <-r.queue:
			r.persist(ctx, entry)
		default:
			return
		}
	}
}

func (r *PayoutRecorder) persist(ctx context.Context, entry *domain.PayoutEntry) {
	if err := r.journal.Record(ctx, entry); err != nil {
		r.log.Warn().Err(err).
			Str("tx_hash", entry.TxHash).
			Uint("log_index", entry.LogIndex).
			Msg("failed to persist payout entry")
		return
	}
	r.log.Debug().Str("tx_hash", entry.TxHash).Msg("payout journaled")
}
