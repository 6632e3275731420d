package chain

import (
	"io"
	"math/big"
	"sync"
	"time"

	"reward-indexer/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

var (
	testToken     = common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
)

func testQuery() ethereum.FilterQuery {
	return ethereum.FilterQuery{
		Addresses: []common.Address{testToken},
		Topics:    [][]common.Hash{{transferTopic}},
	}
}

func testConfig() Config {
	return Config{
		ReconnectDelay:       10 * time.Millisecond,
		MaxReconnectDelay:    40 * time.Millisecond,
		MaxReconnectAttempts: 3,
		PollInterval:         10 * time.Millisecond,
		PingInterval:         time.Second,
		ReadTimeout:          5 * time.Second,
		RequestTimeout:       2 * time.Second,
	}
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testLog(tx byte, index uint) types.Log {
	return types.Log{
		Address: testToken,
		Topics: []common.Hash{
			transferTopic,
			common.BytesToHash(common.HexToAddress("0x1111111111111111111111111111111111111111").Bytes()),
			common.BytesToHash(common.HexToAddress("0x000000000000000000000000000000000000000a").Bytes()),
		},
		Data:        common.LeftPadBytes(big.NewInt(2_500_000).Bytes(), 32),
		BlockNumber: 100,
		TxHash:      common.BytesToHash([]byte{tx}),
		Index:       index,
	}
}

// stateRecorder collects subscription state transitions.
type stateRecorder struct {
	mu     sync.Mutex
	states []domain.SubscriptionState
}

func (r *stateRecorder) SubscriptionStateChanged(s domain.SubscriptionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *stateRecorder) all() []domain.SubscriptionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SubscriptionState, len(r.states))
	copy(out, r.states)
	return out
}

func (r *stateRecorder) has(s domain.SubscriptionState) bool {
	for _, st := range r.all() {
		if st == s {
			return true
		}
	}
	return false
}
