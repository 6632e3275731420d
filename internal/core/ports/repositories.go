package ports

import (
	"context"
	"time"

	"reward-indexer/internal/core/domain"
)

// PayoutJournal persists credited payouts for audit. Write-only.
type PayoutJournal interface {
	Record(ctx context.Context, entry *domain.PayoutEntry) error
}

// LeaderboardPublisher mirrors ledger snapshots to an external store.
type LeaderboardPublisher interface {
	Publish(ctx context.Context, snap domain.LedgerSnapshot) error
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
