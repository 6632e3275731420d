package service

import (
	"sync"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"

	"github.com/rs/zerolog"
)

// SubscriptionTracker records the chain subscription lifecycle. It is the
// StateListener handed to chain adapters and the ReadinessProbe behind
// /health.
type SubscriptionTracker struct {
	mu      sync.RWMutex
	state   domain.SubscriptionState
	ready   bool // reached subscribed at least once
	metrics ports.IngestMetrics
	log     zerolog.Logger
}

// NewSubscriptionTracker creates a tracker in the disconnected state.
func NewSubscriptionTracker(metrics ports.IngestMetrics, log zerolog.Logger) *SubscriptionTracker {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	metrics.SubscriptionState(domain.SubscriptionDisconnected)
	return &SubscriptionTracker{
		state:   domain.SubscriptionDisconnected,
		metrics: metrics,
		log:     log,
	}
}

// SubscriptionStateChanged implements ports.StateListener.
func (t *SubscriptionTracker) SubscriptionStateChanged(state domain.SubscriptionState) {
	t.mu.Lock()
	prev := t.state
	t.state = state
	if state == domain.SubscriptionSubscribed {
		t.ready = true
	}
	t.mu.Unlock()

	if prev == state {
		return
	}
	t.metrics.SubscriptionState(state)

	evt := t.log.Info()
	switch {
	case state.IsTerminal():
		evt = t.log.Error()
	case state == domain.SubscriptionReconnecting:
		evt = t.log.Warn()
	}
	evt.Str("from", string(prev)).Str("to", string(state)).Msg("Subscription state changed")
}

// State returns the current subscription state.
func (t *SubscriptionTracker) State() domain.SubscriptionState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Ready reports whether the subscription has been established at least once.
func (t *SubscriptionTracker) Ready() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ready
}
