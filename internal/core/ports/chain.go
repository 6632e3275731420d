package ports

import (
	"context"

	"reward-indexer/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

// LogSource streams contract logs from an RPC provider. Each value sent on
// sink is one delivery batch. Reconnects happen inside the source; fatal
// failures arrive on the returned subscription's Err channel.
type LogSource interface {
	SubscribeLogs(ctx context.Context, q ethereum.FilterQuery, sink chan<- []types.Log) (ethereum.Subscription, error)
}

// StateListener is notified of subscription lifecycle transitions.
type StateListener interface {
	SubscriptionStateChanged(state domain.SubscriptionState)
}

// StateListenerFunc adapts a function to StateListener.
type StateListenerFunc func(state domain.SubscriptionState)

func (f StateListenerFunc) SubscriptionStateChanged(state domain.SubscriptionState) {
	f(state)
}
