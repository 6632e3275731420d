package redis

import (
	"context"
	"fmt"
	"time"

	"reward-indexer/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// LeaderboardMirror implements ports.LeaderboardPublisher. Each publish
// replaces, in one MULTI/EXEC:
//
//	<key>             ZSET  address -> display amount (ranking only)
//	<key>:amounts     HASH  address -> exact base-unit amount
//	<key>:total       STRING exact base-unit total
//	<key>:updated_at  STRING unix seconds
//
// Consumers needing exact values read the hash, not the scores.
type LeaderboardMirror struct {
	client   goredis.UniversalClient
	key      string
	decimals int32
	now      func() time.Time
}

func NewLeaderboardMirror(client goredis.UniversalClient, key string, decimals int32) *LeaderboardMirror {
	return &LeaderboardMirror{
		client:   client,
		key:      key,
		decimals: decimals,
		now:      time.Now,
	}
}

func (m *LeaderboardMirror) amountsKey() string   { return m.key + ":amounts" }
func (m *LeaderboardMirror) totalKey() string     { return m.key + ":total" }
func (m *LeaderboardMirror) updatedAtKey() string { return m.key + ":updated_at" }

// Publish writes the snapshot. An empty snapshot clears the ranking.
func (m *LeaderboardMirror) Publish(ctx context.Context, snap domain.LedgerSnapshot) error {
	members := make([]goredis.Z, 0, len(snap.Entries))
	amounts := make(map[string]interface{}, len(snap.Entries))
	for _, b := range snap.Entries {
		score, _ := domain.ToDisplay(b.Amount, m.decimals).Float64()
		members = append(members, goredis.Z{Score: score, Member: b.Address.String()})
		amounts[b.Address.String()] = b.Amount.String()
	}

	total := "0"
	if snap.Total != nil {
		total = snap.Total.String()
	}

	_, err := m.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, m.key, m.amountsKey())
		if len(members) > 0 {
			pipe.ZAdd(ctx, m.key, members...)
			pipe.HSet(ctx, m.amountsKey(), amounts)
		}
		pipe.Set(ctx, m.totalKey(), total, 0)
		pipe.Set(ctx, m.updatedAtKey(), m.now().Unix(), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publishing leaderboard to redis: %w", err)
	}
	return nil
}
