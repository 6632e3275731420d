package service

import (
	"context"
	"time"

	"reward-indexer/internal/core/ports"

	"github.com/rs/zerolog"
)

// MirrorService periodically publishes ledger snapshots to an external
// store so other consumers can read the leaderboard without this API.
type MirrorService struct {
	ledger    ports.Ledger
	publisher ports.LeaderboardPublisher
	interval  time.Duration
	log       zerolog.Logger
}

// NewMirrorService creates a mirror publishing every interval.
func NewMirrorService(ledger ports.Ledger, publisher ports.LeaderboardPublisher, interval time.Duration, log zerolog.Logger) *MirrorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &MirrorService{
		ledger:    ledger,
		publisher: publisher,
		interval:  interval,
		log:       log,
	}
}

// Run publishes immediately, then on every tick, and once more on shutdown.
func (m *MirrorService) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.publish(ctx)
	for {
		select {
		case <-ticker.C:
			m.publish(ctx)
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.Background(), drainTimeout)
			m.publish(final)
			cancel()
			return
		}
	}
}

func (m *MirrorService) publish(ctx context.Context) {
	snap := m.ledger.Snapshot()
	if err := m.publisher.Publish(ctx, snap); err != nil {
		m.log.Warn().Err(err).Int("recipients", snap.Count).Msg("leaderboard mirror publish failed")
		return
	}
	m.log.Debug().Int("recipients", snap.Count).Msg("leaderboard mirrored")
}
