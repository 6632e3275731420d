package chain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"reward-indexer/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogSource_PicksTransportByScheme(t *testing.T) {
	tests := []struct {
		url  string
		want interface{}
	}{
		{"ws://localhost:8546", &WSClient{}},
		{"wss://base.example/ws", &WSClient{}},
		{"http://localhost:8545", &HTTPPoller{}},
		{"https://mainnet.base.org", &HTTPPoller{}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			src, err := NewLogSource(tt.url, DefaultConfig(), nil, testLogger())
			require.NoError(t, err)
			assert.IsType(t, tt.want, src)
		})
	}
}

func TestNewLogSource_UnsupportedScheme(t *testing.T) {
	_, err := NewLogSource("ipc:///tmp/geth.ipc", DefaultConfig(), nil, testLogger())

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConfig))
}

func TestBackoff_DoublesUpToMax(t *testing.T) {
	b := newBackoff(time.Second, 5*time.Second)

	got := []time.Duration{b.Next(), b.Next(), b.Next(), b.Next(), b.Next()}
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second}, got)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{ReconnectDelay: 50 * time.Millisecond}.withDefaults()

	assert.Equal(t, 50*time.Millisecond, cfg.ReconnectDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.MaxReconnectDelay)
	assert.Equal(t, DefaultConfig().PollInterval, cfg.PollInterval)
	assert.Equal(t, DefaultConfig().PingInterval, cfg.PingInterval)
	assert.Equal(t, 0, cfg.MaxReconnectAttempts)
}

func TestRPCError_Classification(t *testing.T) {
	tests := []struct {
		err      error
		fatal    bool
		notFound bool
	}{
		{&RPCError{Code: codeInvalidParams, Message: "invalid params"}, true, false},
		{&RPCError{Code: codeMethodNotFound, Message: "method not found"}, true, false},
		{&RPCError{Code: -32000, Message: "filter not found"}, false, true},
		{fmt.Errorf("poll: %w", &RPCError{Code: -32000, Message: "Filter Not Found"}), false, true},
		{errors.New("connection reset"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.fatal, isFatalRPC(tt.err))
			assert.Equal(t, tt.notFound, isFilterNotFound(tt.err))
		})
	}
}

func TestSubscribeError_KeepsSubscriptionErrors(t *testing.T) {
	orig := apperror.ErrSubscription("already classified", nil)
	assert.Same(t, orig, subscribeError(orig))

	wrapped := subscribeError(errors.New("dial failed"))
	assert.True(t, apperror.Is(wrapped, apperror.KindSubscription))
}
