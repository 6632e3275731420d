package redis

import (
	"context"
	"fmt"

	"reward-indexer/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient creates the Redis client shared by the leaderboard mirror and the
// rate limiter, and verifies connectivity. The client is closed when the
// first ping fails.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("mirror_key", cfg.MirrorKey).
		Dur("mirror_interval", cfg.MirrorInterval).
		Msg("Redis connection established")

	return client, nil
}
