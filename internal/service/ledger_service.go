package service

import (
	"math/big"
	"sync"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"
	"reward-indexer/pkg/apperror"
)

// ledgerService implements ports.Ledger: an in-memory balance table with a
// single writer and many readers.
type ledgerService struct {
	mu       sync.RWMutex
	balances map[domain.Address]*big.Int
	order    []domain.Address // first-credit order, for stable ties
	seeded   bool
	credited bool
}

// NewLedgerService creates an empty ledger.
func NewLedgerService() ports.Ledger {
	return &ledgerService{
		balances: make(map[domain.Address]*big.Int),
	}
}

// Seed loads the historical snapshot. Duplicate addresses are summed.
// It may run once, and only before the first live credit.
func (s *ledgerService) Seed(records []domain.SeedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded {
		return apperror.ErrParse("ledger already seeded", nil)
	}
	if s.credited {
		return apperror.ErrParse("ledger received live credits before seeding", nil)
	}

	for _, r := range records {
		s.add(r.Address, r.Amount)
	}
	s.seeded = true
	return nil
}

// Credit adds amount to addr. Nil or negative amounts are ignored.
func (s *ledgerService) Credit(addr domain.Address, amount *big.Int) {
	if amount == nil || amount.Sign() < 0 {
		return
	}

	s.mu.Lock()
	s.add(addr, amount)
	s.credited = true
	s.mu.Unlock()
}

// add must be called with the write lock held.
func (s *ledgerService) add(addr domain.Address, amount *big.Int) {
	if amount == nil {
		return
	}
	bal, ok := s.balances[addr]
	if !ok {
		s.balances[addr] = new(big.Int).Set(amount)
		s.order = append(s.order, addr)
		return
	}
	bal.Add(bal, amount)
}

// Snapshot returns a deep copy of the ledger in first-credit order.
func (s *ledgerService) Snapshot() domain.LedgerSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.Balance, 0, len(s.order))
	total := new(big.Int)
	for _, addr := range s.order {
		amount := new(big.Int).Set(s.balances[addr])
		total.Add(total, amount)
		entries = append(entries, domain.Balance{Address: addr, Amount: amount})
	}

	return domain.LedgerSnapshot{
		Entries: entries,
		Total:   total,
		Count:   len(entries),
	}
}

func (s *ledgerService) TotalCredited() *big.Int {
	return s.Snapshot().Total
}

// Balance returns a copy of addr's balance, zero when unknown.
func (s *ledgerService) Balance(addr domain.Address) *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if bal, ok := s.balances[addr]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

func (s *ledgerService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *ledgerService) Seeded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeded
}
