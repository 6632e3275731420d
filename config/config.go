package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"reward-indexer/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the read API listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type ChainConfig struct {
	RPCURL               string        `mapstructure:"rpc_url"`
	TokenAddress         string        `mapstructure:"token_address"`
	DistributorAddress   string        `mapstructure:"distributor_address"`
	TokenDecimals        int32         `mapstructure:"token_decimals"`
	PollInterval         time.Duration `mapstructure:"poll_interval"`
	ReconnectDelay       time.Duration `mapstructure:"reconnect_delay"`
	MaxReconnectDelay    time.Duration `mapstructure:"max_reconnect_delay"`
	MaxReconnectAttempts int           `mapstructure:"max_reconnect_attempts"` // 0 = unlimited
}

type SeedConfig struct {
	Path string `mapstructure:"path"`
}

type IngestConfig struct {
	QueueSize int `mapstructure:"queue_size"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // empty disables the listener
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Password       string        `mapstructure:"password"`
	DB             int           `mapstructure:"db"`
	MirrorInterval time.Duration `mapstructure:"mirror_interval"`
	MirrorKey      string        `mapstructure:"mirror_key"`
	RateLimit      int           `mapstructure:"rate_limit"`
	RateWindow     time.Duration `mapstructure:"rate_window"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// legacyEnv maps config keys to the environment names used by earlier
// deployments of the indexer. RWD_ names take precedence.
var legacyEnv = map[string]string{
	"chain.token_address":       "USDC_ADDRESS",
	"chain.distributor_address": "DISTRIBUTOR_ADDRESS",
	"chain.rpc_url":             "BASE_RPC",
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded first when present.
// Environment variables override file values. Prefix: RWD_.
// Nested keys use underscore: RWD_CHAIN_RPC_URL, RWD_REDIS_ENABLED, etc.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case in containers.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8787)
	v.SetDefault("server.mode", "release")
	v.SetDefault("chain.token_decimals", 6)
	v.SetDefault("chain.poll_interval", "2s")
	v.SetDefault("chain.reconnect_delay", "1s")
	v.SetDefault("chain.max_reconnect_delay", "30s")
	v.SetDefault("chain.max_reconnect_attempts", 10)
	v.SetDefault("seed.path", "seed.csv")
	v.SetDefault("ingest.queue_size", 1024)
	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "reward_indexer")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.mirror_interval", "30s")
	v.SetDefault("redis.mirror_key", "rewards:leaderboard")
	v.SetDefault("redis.rate_limit", 120)
	v.SetDefault("redis.rate_window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: RWD_CHAIN_RPC_URL -> chain.rpc_url
	v.SetEnvPrefix("RWD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := "RWD_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, apperror.WrapConfig("binding "+key, err)
		}
	}

	// Read config file (not required: env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, apperror.WrapConfig("reading config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperror.WrapConfig("unmarshaling config", err)
	}

	cfg.Chain.TokenAddress = strings.ToLower(strings.TrimSpace(cfg.Chain.TokenAddress))
	cfg.Chain.DistributorAddress = strings.ToLower(strings.TrimSpace(cfg.Chain.DistributorAddress))
	cfg.Chain.RPCURL = strings.TrimSpace(cfg.Chain.RPCURL)

	return &cfg, nil
}

// Validate checks required fields and returns a config error naming every
// problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.Chain.RPCURL == "" {
		problems = append(problems, "chain.rpc_url is required")
	} else if u, err := url.Parse(c.Chain.RPCURL); err != nil || u.Host == "" {
		problems = append(problems, "chain.rpc_url is not a valid URL")
	} else {
		switch u.Scheme {
		case "ws", "wss", "http", "https":
		default:
			problems = append(problems, fmt.Sprintf("chain.rpc_url scheme %q is not ws, wss, http or https", u.Scheme))
		}
	}

	problems = append(problems, checkAddress("chain.token_address", c.Chain.TokenAddress)...)
	problems = append(problems, checkAddress("chain.distributor_address", c.Chain.DistributorAddress)...)

	if c.Chain.TokenDecimals < 0 || c.Chain.TokenDecimals > 36 {
		problems = append(problems, "chain.token_decimals must be between 0 and 36")
	}
	if c.Chain.PollInterval <= 0 {
		problems = append(problems, "chain.poll_interval must be positive")
	}
	if c.Chain.ReconnectDelay <= 0 || c.Chain.MaxReconnectDelay < c.Chain.ReconnectDelay {
		problems = append(problems, "chain.reconnect_delay must be positive and not exceed chain.max_reconnect_delay")
	}
	if c.Chain.MaxReconnectAttempts < 0 {
		problems = append(problems, "chain.max_reconnect_attempts must not be negative")
	}
	if c.Seed.Path == "" {
		problems = append(problems, "seed.path is required")
	}
	if c.Ingest.QueueSize <= 0 {
		problems = append(problems, "ingest.queue_size must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port is out of range")
	}

	if len(problems) > 0 {
		return apperror.ErrConfig(strings.Join(problems, "; "))
	}
	return nil
}

func checkAddress(key, value string) []string {
	if value == "" {
		return []string{key + " is required"}
	}
	if !common.IsHexAddress(value) || !strings.HasPrefix(value, "0x") {
		return []string{key + " must be a 0x-prefixed 20-byte hex address"}
	}
	return nil
}
