package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"reward-indexer/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken       = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	testDistributor = "0x1111111111111111111111111111111111111111"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8787},
		Chain: ChainConfig{
			RPCURL:               "wss://base.example/ws",
			TokenAddress:         "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913",
			DistributorAddress:   testDistributor,
			TokenDecimals:        6,
			PollInterval:         2 * time.Second,
			ReconnectDelay:       time.Second,
			MaxReconnectDelay:    30 * time.Second,
			MaxReconnectAttempts: 10,
		},
		Seed:   SeedConfig{Path: "seed.csv"},
		Ingest: IngestConfig{QueueSize: 1024},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8787, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "0.0.0.0:8787", cfg.Server.Addr())

	assert.Equal(t, int32(6), cfg.Chain.TokenDecimals)
	assert.Equal(t, 2*time.Second, cfg.Chain.PollInterval)
	assert.Equal(t, time.Second, cfg.Chain.ReconnectDelay)
	assert.Equal(t, 30*time.Second, cfg.Chain.MaxReconnectDelay)
	assert.Equal(t, 10, cfg.Chain.MaxReconnectAttempts)

	assert.Equal(t, "seed.csv", cfg.Seed.Path)
	assert.Equal(t, 1024, cfg.Ingest.QueueSize)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "reward_indexer", cfg.Database.DBName)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 30*time.Second, cfg.Redis.MirrorInterval)
	assert.Equal(t, "rewards:leaderboard", cfg.Redis.MirrorKey)
	assert.Equal(t, 120, cfg.Redis.RateLimit)
	assert.Equal(t, time.Minute, cfg.Redis.RateWindow)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  port: 8080
  mode: "debug"
chain:
  rpc_url: "https://mainnet.base.org"
  token_address: "` + testToken + `"
  distributor_address: "` + testDistributor + `"
  poll_interval: "4s"
  max_reconnect_attempts: 0
seed:
  path: "/data/seed.csv"
redis:
  enabled: true
  host: "redis.example.com"
  mirror_interval: "10s"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "https://mainnet.base.org", cfg.Chain.RPCURL)
	assert.Equal(t, "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", cfg.Chain.TokenAddress, "addresses are lowercased")
	assert.Equal(t, testDistributor, cfg.Chain.DistributorAddress)
	assert.Equal(t, 4*time.Second, cfg.Chain.PollInterval)
	assert.Equal(t, 0, cfg.Chain.MaxReconnectAttempts)
	assert.Equal(t, "/data/seed.csv", cfg.Seed.Path)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 10*time.Second, cfg.Redis.MirrorInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RWD_SERVER_PORT", "3000")
	t.Setenv("RWD_CHAIN_RPC_URL", "wss://env.example/ws")
	t.Setenv("RWD_REDIS_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "wss://env.example/ws", cfg.Chain.RPCURL)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("USDC_ADDRESS", testToken)
	t.Setenv("DISTRIBUTOR_ADDRESS", testDistributor)
	t.Setenv("BASE_RPC", "https://mainnet.base.org")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", cfg.Chain.TokenAddress)
	assert.Equal(t, testDistributor, cfg.Chain.DistributorAddress)
	assert.Equal(t, "https://mainnet.base.org", cfg.Chain.RPCURL)
}

func TestLoad_PrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("BASE_RPC", "https://legacy.example")
	t.Setenv("RWD_CHAIN_RPC_URL", "wss://preferred.example")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "wss://preferred.example", cfg.Chain.RPCURL)
}

func TestLoad_BadFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server: [unterminated"), 0644))

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConfig))
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_RPCSchemes(t *testing.T) {
	for _, rpc := range []string{"ws://localhost:8546", "wss://a.b/c", "http://localhost:8545", "https://mainnet.base.org"} {
		cfg := validConfig()
		cfg.Chain.RPCURL = rpc
		assert.NoError(t, cfg.Validate(), rpc)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing rpc", func(c *Config) { c.Chain.RPCURL = "" }, "chain.rpc_url is required"},
		{"bad scheme", func(c *Config) { c.Chain.RPCURL = "ftp://host/x" }, "scheme \"ftp\""},
		{"no host", func(c *Config) { c.Chain.RPCURL = "wss://" }, "not a valid URL"},
		{"missing token", func(c *Config) { c.Chain.TokenAddress = "" }, "chain.token_address is required"},
		{"short distributor", func(c *Config) { c.Chain.DistributorAddress = "0x1234" }, "chain.distributor_address must be"},
		{"unprefixed distributor", func(c *Config) { c.Chain.DistributorAddress = "1111111111111111111111111111111111111111" }, "chain.distributor_address must be"},
		{"queue size", func(c *Config) { c.Ingest.QueueSize = 0 }, "ingest.queue_size"},
		{"reconnect delays", func(c *Config) { c.Chain.MaxReconnectDelay = time.Millisecond }, "chain.reconnect_delay"},
		{"negative attempts", func(c *Config) { c.Chain.MaxReconnectAttempts = -1 }, "chain.max_reconnect_attempts"},
		{"seed path", func(c *Config) { c.Seed.Path = "" }, "seed.path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindConfig))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Chain.RPCURL = ""
	cfg.Chain.TokenAddress = ""
	cfg.Chain.DistributorAddress = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain.rpc_url")
	assert.Contains(t, err.Error(), "chain.token_address")
	assert.Contains(t, err.Error(), "chain.distributor_address")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "indexer",
		Password: "pw",
		DBName:   "reward_indexer",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://indexer:pw@localhost:5432/reward_indexer?sslmode=disable", dbCfg.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	redisCfg := RedisConfig{Host: "redis.local", Port: 6380}
	assert.Equal(t, "redis.local:6380", redisCfg.Addr())
}
