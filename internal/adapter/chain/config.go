package chain

import "time"

// Config controls connection, polling and reconnect behaviour shared by the
// WebSocket and HTTP log sources.
type Config struct {
	// ReconnectDelay is the initial delay before a reconnect attempt.
	ReconnectDelay time.Duration
	// MaxReconnectDelay caps the exponential backoff.
	MaxReconnectDelay time.Duration
	// MaxReconnectAttempts is the number of consecutive failed reconnects
	// before giving up. 0 retries forever.
	MaxReconnectAttempts int
	// PollInterval is the eth_getFilterChanges cadence (HTTP only).
	PollInterval time.Duration
	// PingInterval is the WebSocket keepalive cadence.
	PingInterval time.Duration
	// ReadTimeout is how long a WebSocket may stay silent, pongs included.
	ReadTimeout time.Duration
	// RequestTimeout bounds a single RPC round trip.
	RequestTimeout time.Duration
}

// DefaultConfig returns default source configuration.
func DefaultConfig() Config {
	return Config{
		ReconnectDelay:       1 * time.Second,
		MaxReconnectDelay:    30 * time.Second,
		MaxReconnectAttempts: 10,
		PollInterval:         2 * time.Second,
		PingInterval:         30 * time.Second,
		ReadTimeout:          90 * time.Second,
		RequestTimeout:       10 * time.Second,
	}
}

// withDefaults fills zero durations from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ReconnectDelay <= 0 {
		c.ReconnectDelay = d.ReconnectDelay
	}
	if c.MaxReconnectDelay < c.ReconnectDelay {
		c.MaxReconnectDelay = c.ReconnectDelay
	}
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.PingInterval <= 0 {
		c.PingInterval = d.PingInterval
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = d.RequestTimeout
	}
	return c
}

// backoff doubles the delay on every call up to max.
type backoff struct {
	max  time.Duration
	next time.Duration
}

func newBackoff(initial, max time.Duration) *backoff {
	return &backoff{max: max, next: initial}
}

func (b *backoff) Next() time.Duration {
	d := b.next
	b.next *= 2
	if b.next > b.max {
		b.next = b.max
	}
	return d
}
