package service

import (
	"bytes"
	"testing"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionTracker_Lifecycle(t *testing.T) {
	tracker := NewSubscriptionTracker(nil, newTestLogger())

	assert.Equal(t, domain.SubscriptionDisconnected, tracker.State())
	assert.False(t, tracker.Ready())

	tracker.SubscriptionStateChanged(domain.SubscriptionConnecting)
	assert.False(t, tracker.Ready())

	tracker.SubscriptionStateChanged(domain.SubscriptionSubscribed)
	assert.True(t, tracker.Ready())

	tracker.SubscriptionStateChanged(domain.SubscriptionReconnecting)
	assert.Equal(t, domain.SubscriptionReconnecting, tracker.State())
	assert.True(t, tracker.Ready(), "readiness is sticky once subscribed")
}

func TestSubscriptionTracker_ReportsTransitionsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockIngestMetrics(ctrl)

	gomock.InOrder(
		metrics.EXPECT().SubscriptionState(domain.SubscriptionDisconnected),
		metrics.EXPECT().SubscriptionState(domain.SubscriptionConnecting),
		metrics.EXPECT().SubscriptionState(domain.SubscriptionSubscribed),
	)

	tracker := NewSubscriptionTracker(metrics, newTestLogger())
	tracker.SubscriptionStateChanged(domain.SubscriptionConnecting)
	tracker.SubscriptionStateChanged(domain.SubscriptionSubscribed)
	tracker.SubscriptionStateChanged(domain.SubscriptionSubscribed)
}

func TestSubscriptionTracker_WarnsOnReconnect(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewSubscriptionTracker(nil, zerolog.New(&buf))

	tracker.SubscriptionStateChanged(domain.SubscriptionReconnecting)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"to":"reconnecting"`)
}

func TestSubscriptionTracker_FailedLogsError(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewSubscriptionTracker(nil, zerolog.New(&buf))

	tracker.SubscriptionStateChanged(domain.SubscriptionFailed)

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"to":"failed"`)
}
