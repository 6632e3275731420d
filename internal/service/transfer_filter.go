package service

import (
	"fmt"
	"math/big"
	"strings"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"
	"reward-indexer/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// TransferTopic is topic0 of ERC-20 Transfer(address,address,uint256).
var TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// Rejection reasons reported to metrics.
const (
	RejectRemoved        = "removed"
	RejectForeignToken   = "foreign_token"
	RejectForeignEvent   = "foreign_event"
	RejectNotDistributor = "not_distributor"
	RejectDuplicate      = "duplicate"
)

// transferFilter implements ports.EventFilter for reward payouts: Transfer
// logs of one token contract sent by one distributor.
type transferFilter struct {
	token       common.Address
	distributor domain.Address
	metrics     ports.IngestMetrics
}

// NewTransferFilter creates a filter. Addresses are compared case-insensitively.
// metrics may be nil.
func NewTransferFilter(token, distributor string, metrics ports.IngestMetrics) ports.EventFilter {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &transferFilter{
		token:       common.HexToAddress(token),
		distributor: domain.NormalizeAddress(distributor),
		metrics:     metrics,
	}
}

// Accept returns the decoded event when the log is a reward payout, nil when
// it is not, and a decode error when it claims to be a Transfer but is malformed.
func (f *transferFilter) Accept(log types.Log) (*domain.TransferEvent, error) {
	if log.Removed {
		f.metrics.EventRejected(RejectRemoved)
		return nil, nil
	}
	if log.Address != f.token {
		f.metrics.EventRejected(RejectForeignToken)
		return nil, nil
	}
	if len(log.Topics) == 0 || log.Topics[0] != TransferTopic {
		f.metrics.EventRejected(RejectForeignEvent)
		return nil, nil
	}
	if len(log.Topics) < 3 {
		return nil, apperror.ErrDecode(fmt.Sprintf("transfer log has %d topics, want 3", len(log.Topics)), nil)
	}
	if len(log.Data) != 32 {
		return nil, apperror.ErrDecode(fmt.Sprintf("transfer log data is %d bytes, want 32", len(log.Data)), nil)
	}

	from := domain.AddressFromTopic(log.Topics[1])
	if !strings.EqualFold(from.String(), f.distributor.String()) {
		f.metrics.EventRejected(RejectNotDistributor)
		return nil, nil
	}

	return &domain.TransferEvent{
		From:        from,
		To:          domain.AddressFromTopic(log.Topics[2]),
		Value:       new(big.Int).SetBytes(log.Data),
		BlockNumber: log.BlockNumber,
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
	}, nil
}

// TransferQuery is the provider-side log filter for Transfer events of token.
func TransferQuery(token string) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		Addresses: []common.Address{common.HexToAddress(token)},
		Topics:    [][]common.Hash{{TransferTopic}},
	}
}
