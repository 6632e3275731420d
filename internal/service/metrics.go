package service

import "reward-indexer/internal/core/domain"

// noopMetrics discards pipeline counters when no metrics sink is wired.
type noopMetrics struct{}

func (noopMetrics) BatchReceived(int)                          {}
func (noopMetrics) EventCredited()                             {}
func (noopMetrics) EventRejected(string)                       {}
func (noopMetrics) DecodeFailed()                              {}
func (noopMetrics) SubscriptionState(domain.SubscriptionState) {}
func (noopMetrics) LedgerSize(int)                             {}
