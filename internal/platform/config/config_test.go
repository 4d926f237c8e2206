package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, BackendMemory, cfg.KVBackend)
		assert.Equal(t, AuthModeMock, cfg.Auth.Mode)
		assert.Equal(t, 800*time.Millisecond, cfg.Auth.Latency)
		assert.Equal(t, "socialboot.audit", cfg.Audit.Topic)
		assert.Empty(t, cfg.Audit.Brokers)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SOCIALBOOT_ADDR", ":9090")
		t.Setenv("SOCIALBOOT_KV_BACKEND", "redis")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("AUTH_LATENCY", "0s")
		t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, BackendRedis, cfg.KVBackend)
		assert.Equal(t, time.Duration(0), cfg.Auth.Latency)
		assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Audit.Brokers)
	})

	t.Run("redis backend requires a url", func(t *testing.T) {
		t.Setenv("SOCIALBOOT_KV_BACKEND", "redis")
		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("remote auth requires a base url", func(t *testing.T) {
		t.Setenv("AUTH_MODE", "remote")
		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		t.Setenv("SOCIALBOOT_KV_BACKEND", "etcd")
		_, err := FromEnv()
		require.Error(t, err)
	})
}
