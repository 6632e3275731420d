package service

import (
	"io"
	"math/big"
	"sync"

	"reward-indexer/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

const (
	testToken       = "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"
	testDistributor = "0x1111111111111111111111111111111111111111"
	testRecipientA  = "0x000000000000000000000000000000000000000a"
	testRecipientB  = "0x000000000000000000000000000000000000000b"
	testStranger    = "0x9999999999999999999999999999999999999999"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func addrTopic(addr string) common.Hash {
	return common.BytesToHash(common.HexToAddress(addr).Bytes())
}

// transferLog builds a well-formed ERC-20 Transfer log.
func transferLog(token, from, to string, value int64, tx byte, index uint) types.Log {
	return types.Log{
		Address:     common.HexToAddress(token),
		Topics:      []common.Hash{TransferTopic, addrTopic(from), addrTopic(to)},
		Data:        common.LeftPadBytes(big.NewInt(value).Bytes(), 32),
		BlockNumber: 1000 + uint64(tx),
		TxHash:      common.BytesToHash([]byte{tx}),
		Index:       index,
	}
}

func seedRecords(pairs ...interface{}) []domain.SeedRecord {
	var out []domain.SeedRecord
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.SeedRecord{
			Address: domain.NormalizeAddress(pairs[i].(string)),
			Amount:  big.NewInt(int64(pairs[i+1].(int))),
			Line:    i/2 + 2,
		})
	}
	return out
}

// fakeSubscription is a controllable ethereum.Subscription.
type fakeSubscription struct {
	errCh        chan error
	once         sync.Once
	unsubscribed chan struct{}
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{
		errCh:        make(chan error, 1),
		unsubscribed: make(chan struct{}),
	}
}

func (f *fakeSubscription) Err() <-chan error { return f.errCh }

func (f *fakeSubscription) Unsubscribe() {
	f.once.Do(func() { close(f.unsubscribed) })
}
