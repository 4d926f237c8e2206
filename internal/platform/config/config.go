package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Backend names accepted by KVBackend.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Auth modes accepted by AuthMode.
const (
	AuthModeMock   = "mock"
	AuthModeRemote = "remote"
)

// Server captures process level configuration.
type Server struct {
	Addr      string `env:"SOCIALBOOT_ADDR" envDefault:":8080"`
	LogLevel  string `env:"SOCIALBOOT_LOG_LEVEL" envDefault:"info"`
	KVBackend string `env:"SOCIALBOOT_KV_BACKEND" envDefault:"memory"`

	Redis    RedisConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	Auth     AuthConfig
	Audit    AuditConfig

	RewardsCatalogPath string `env:"REWARDS_CATALOG_PATH"`
}

// RedisConfig configures the go-redis client backing the key-value store.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	KeyPrefix    string        `env:"REDIS_KEY_PREFIX" envDefault:"socialboot:"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// PostgresConfig configures the SQL connection backing the key-value store.
type PostgresConfig struct {
	URL          string `env:"DATABASE_URL"`
	Table        string `env:"KV_TABLE" envDefault:"kv_entries"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"10"`
}

// SQLiteConfig configures the embedded file-backed key-value store.
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"socialboot.db"`
}

// AuthConfig selects how login and signup resolve an identity.
type AuthConfig struct {
	Mode          string        `env:"AUTH_MODE" envDefault:"mock"`
	RemoteBaseURL string        `env:"AUTH_REMOTE_BASE_URL"`
	RemoteTimeout time.Duration `env:"AUTH_REMOTE_TIMEOUT" envDefault:"10s"`
	Latency       time.Duration `env:"AUTH_LATENCY" envDefault:"800ms"`
	// Use a default for development - should be overridden in production
	JWTSigningKey string        `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	TokenTTL      time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
}

// AuditConfig enables the Kafka audit sink when Brokers is set.
type AuditConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"AUDIT_TOPIC" envDefault:"socialboot.audit"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements that env tags cannot express.
func (c Server) Validate() error {
	switch c.KVBackend {
	case BackendMemory, BackendSQLite:
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	case BackendPostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown kv backend %q", c.KVBackend)
	}

	switch c.Auth.Mode {
	case AuthModeMock:
	case AuthModeRemote:
		if c.Auth.RemoteBaseURL == "" {
			return fmt.Errorf("AUTH_REMOTE_BASE_URL is required for remote auth")
		}
	default:
		return fmt.Errorf("unknown auth mode %q", c.Auth.Mode)
	}
	return nil
}
