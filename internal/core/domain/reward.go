package domain

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// TransferEvent is a decoded ERC-20 Transfer log that passed the reward filter.
type TransferEvent struct {
	From        Address
	To          Address
	Value       *big.Int
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// Key identifies the on-chain log an event was decoded from.
func (e *TransferEvent) Key() EventKey {
	return EventKey{TxHash: e.TxHash, LogIndex: e.LogIndex}
}

// EventKey is the (transaction, log index) pair that uniquely names a log.
type EventKey struct {
	TxHash   common.Hash
	LogIndex uint
}

// SeedRecord is one row of the historical snapshot.
type SeedRecord struct {
	Address Address
	Amount  *big.Int // base units
	Line    int      // 1-based source line
}

// Balance is a single recipient's cumulative payout in base units.
type Balance struct {
	Address Address
	Amount  *big.Int
}

// LedgerSnapshot is an immutable point-in-time copy of the ledger.
// Entries are in order of first credit.
type LedgerSnapshot struct {
	Entries []Balance
	Total   *big.Int
	Count   int
}

// Sorted returns the entries ordered by amount descending. Ties keep the
// order of first credit.
func (s LedgerSnapshot) Sorted() []Balance {
	out := make([]Balance, len(s.Entries))
	copy(out, s.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Cmp(out[j].Amount) > 0
	})
	return out
}
