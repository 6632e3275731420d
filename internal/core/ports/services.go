package ports

import (
	"context"
	"math/big"

	"reward-indexer/internal/core/domain"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
)

// --- Core Ports (Business Logic) ---

// Ledger is the in-memory balance table. One instance per process.
type Ledger interface {
	// Seed loads the historical snapshot. Allowed once, before any credit.
	Seed(records []domain.SeedRecord) error
	// Credit adds amount to addr's balance, creating the entry if needed.
	Credit(addr domain.Address, amount *big.Int)
	Snapshot() domain.LedgerSnapshot
	TotalCredited() *big.Int
	Balance(addr domain.Address) *big.Int
	// Len returns the number of distinct recipients.
	Len() int
	Seeded() bool
}

// EventFilter decides whether a raw log is a reward payout.
// A nil event with a nil error means "not a reward".
type EventFilter interface {
	Accept(log types.Log) (*domain.TransferEvent, error)
}

// ReadinessProbe reports whether the ingest pipeline has come up.
type ReadinessProbe interface {
	Ready() bool
	State() domain.SubscriptionState
}

// ReportingService defines the read API business logic.
type ReportingService interface {
	Leaderboard() []LeaderboardEntry
	Total() decimal.Decimal
	Health(ctx context.Context) HealthReport
}

// LeaderboardEntry is one row of the leaderboard in display units.
type LeaderboardEntry struct {
	Address domain.Address
	Amount  decimal.Decimal
}

// HealthReport is the aggregated service health.
type HealthReport struct {
	Status       domain.HealthStatus
	Subscription domain.SubscriptionState
	Checks       map[string]string // dependency name -> "ok" or error text
}

// IngestMetrics receives pipeline counters. Implementations must be safe
// for concurrent use.
type IngestMetrics interface {
	BatchReceived(size int)
	EventCredited()
	EventRejected(reason string)
	DecodeFailed()
	SubscriptionState(state domain.SubscriptionState)
	LedgerSize(recipients int)
}
