package domain

// SubscriptionState is the lifecycle state of the chain log subscription.
type SubscriptionState string

const (
	SubscriptionDisconnected SubscriptionState = "disconnected"
	SubscriptionConnecting   SubscriptionState = "connecting"
	SubscriptionSubscribed   SubscriptionState = "subscribed"
	SubscriptionReconnecting SubscriptionState = "reconnecting"
	SubscriptionFailed       SubscriptionState = "failed"
)

// IsTerminal returns true when no further transitions will happen.
func (s SubscriptionState) IsTerminal() bool {
	return s == SubscriptionFailed
}

// HealthStatus is the value reported by the health endpoint.
type HealthStatus string

const (
	HealthOK       HealthStatus = "ok"
	HealthStarting HealthStatus = "starting"
	HealthDegraded HealthStatus = "degraded"
)
