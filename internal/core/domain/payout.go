package domain

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// PayoutEntry records a credited reward transfer in the payout journal.
// The journal is write-only: it is never read back to rebuild the ledger.
type PayoutEntry struct {
	ID          uuid.UUID `json:"id"`
	TxHash      string    `json:"tx_hash"`
	LogIndex    uint      `json:"log_index"`
	BlockNumber uint64    `json:"block_number"`
	Recipient   Address   `json:"recipient"`
	Amount      *big.Int  `json:"amount"` // base units
	CreditedAt  time.Time `json:"credited_at"`
}

// NewPayoutEntry builds a journal entry for a credited event.
func NewPayoutEntry(ev *TransferEvent, at time.Time) *PayoutEntry {
	return &PayoutEntry{
		ID:          uuid.New(),
		TxHash:      ev.TxHash.Hex(),
		LogIndex:    ev.LogIndex,
		BlockNumber: ev.BlockNumber,
		Recipient:   ev.To,
		Amount:      new(big.Int).Set(ev.Value),
		CreditedAt:  at,
	}
}
