package service

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMirrorService_PublishesSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockLeaderboardPublisher(ctrl)

	ledger := NewLedgerService()
	require.NoError(t, ledger.Seed(seedRecords("0xa", 10)))

	published := make(chan domain.LedgerSnapshot, 16)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap domain.LedgerSnapshot) error {
			select {
			case published <- snap:
			default:
			}
			return nil
		}).MinTimes(2)

	mirror := NewMirrorService(ledger, publisher, 10*time.Millisecond, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		mirror.Run(ctx)
		close(done)
	}()

	first := <-published
	assert.Equal(t, big.NewInt(10), first.Total)

	ledger.Credit("0xb", big.NewInt(5))
	deadline := time.After(2 * time.Second)
	for seen := false; !seen; {
		select {
		case snap := <-published:
			seen = snap.Total.Cmp(big.NewInt(15)) == 0
		case <-deadline:
			t.Fatal("credit never mirrored")
		}
	}

	cancel()
	<-done
}

func TestMirrorService_PublishErrorKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockLeaderboardPublisher(ctrl)

	ledger := NewLedgerService()
	require.NoError(t, ledger.Seed(nil))

	calls := make(chan struct{}, 16)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.LedgerSnapshot) error {
			select {
			case calls <- struct{}{}:
			default:
			}
			return errors.New("redis unavailable")
		}).MinTimes(2)

	mirror := NewMirrorService(ledger, publisher, 5*time.Millisecond, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		mirror.Run(ctx)
		close(done)
	}()

	<-calls
	<-calls
	cancel()
	<-done
}
