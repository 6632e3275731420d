package postgres

import (
	"context"
	"fmt"
	"math/big"

	"reward-indexer/internal/core/domain"

	"github.com/jackc/pgx/v5/pgtype"
)

// PayoutJournal appends every credited transfer to payout_journal.
// The table is an audit trail; the indexer never reads it back.
type PayoutJournal struct {
	pool Pool
}

func NewPayoutJournal(pool Pool) *PayoutJournal {
	return &PayoutJournal{pool: pool}
}

func (j *PayoutJournal) Record(ctx context.Context, entry *domain.PayoutEntry) error {
	amount := entry.Amount
	if amount == nil {
		amount = new(big.Int)
	}

	_, err := j.pool.Exec(ctx,
		`INSERT INTO payout_journal (id, tx_hash, log_index, block_number, recipient, amount, credited_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.TxHash, int64(entry.LogIndex), int64(entry.BlockNumber),
		entry.Recipient.String(), pgtype.Numeric{Int: amount, Valid: true}, entry.CreditedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting payout %s:%d: %w", entry.TxHash, entry.LogIndex, err)
	}
	return nil
}
