// Package bootstrap opens the configured infrastructure shared by the server
// and the CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"socialboot/internal/kv"
	kvpostgres "socialboot/internal/kv/postgres"
	kvredis "socialboot/internal/kv/redis"
	kvsqlite "socialboot/internal/kv/sqlite"
	"socialboot/internal/kv/memory"
	"socialboot/internal/platform/config"
	"socialboot/internal/platform/metrics"
	"socialboot/internal/platform/postgres"
	"socialboot/internal/platform/redis"
	"socialboot/internal/session"
)

// OpenKV opens the key-value backend named by cfg.KVBackend, wrapped with
// latency metrics. The returned close function releases the backend.
func OpenKV(ctx context.Context, cfg config.Server, m *metrics.Metrics) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.KVBackend {
	case config.BackendMemory:
		return kv.Instrument(memory.New(), m), noop, nil

	case config.BackendRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, errors.New("REDIS_URL is required for the redis backend")
		}
		store := kvredis.New(client, kvredis.WithKeyPrefix(cfg.Redis.KeyPrefix))
		return kv.Instrument(store, m), client.Close, nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if db == nil {
			return nil, nil, errors.New("DATABASE_URL is required for the postgres backend")
		}
		store := kvpostgres.New(db, kvpostgres.WithTable(cfg.Postgres.Table))
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, nil, errors.Join(err, db.Close())
		}
		return kv.Instrument(store, m), db.Close, nil

	case config.BackendSQLite:
		store, err := kvsqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return kv.Instrument(store, m), store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown kv backend %q", cfg.KVBackend)
}

// NewAuthenticator builds the identity resolver for cfg.Mode. In mock mode
// passwords set through settings are kept in store. The token issuer is nil
// in remote mode, where tokens are opaque.
func NewAuthenticator(cfg config.AuthConfig, store kv.Store) (session.Authenticator, *session.TokenIssuer) {
	if cfg.Mode == config.AuthModeRemote {
		return session.NewRemoteAuthenticator(cfg.RemoteBaseURL, cfg.RemoteTimeout), nil
	}
	tokens := session.NewTokenIssuer(cfg.JWTSigningKey, cfg.TokenTTL)
	return session.NewCredentialGuard(store, session.NewMockAuthenticator(cfg.Latency, tokens)), tokens
}
