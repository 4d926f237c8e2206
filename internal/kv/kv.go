// Package kv defines the persistent key-value port every state store mirrors
// itself into. Backends live in subpackages (memory, redis, postgres, sqlite).
//
// Each store owns a disjoint set of keys:
//
//	user                        session record (JSON)
//	token                       bearer token (raw string)
//	coins-{sessionId}           wallet balance (decimal string)
//	tasks                       task list (JSON array)
//	notifications               notification list (JSON array)
//	following                   ids of followed directory users (JSON array)
//	social-profiles-{sessionId} linked social profiles (JSON array)
//	credentials-{accountId}     bcrypt hash of a password set in settings
package kv

import (
	"context"
	"time"

	"socialboot/internal/platform/metrics"
)

// Store is a durable string-keyed store. Get returns sentinel.ErrNotFound
// (possibly wrapped) when the key is absent. Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

const (
	KeyUser          = "user"
	KeyToken         = "token"
	KeyTasks         = "tasks"
	KeyNotifications = "notifications"
	KeyFollowing     = "following"
)

// WalletKey is the per-session balance key.
func WalletKey(sessionID string) string {
	return "coins-" + sessionID
}

// SocialProfilesKey is the per-session linked profiles key.
func SocialProfilesKey(sessionID string) string {
	return "social-profiles-" + sessionID
}

// CredentialKey is the per-account password hash key.
func CredentialKey(accountID string) string {
	return "credentials-" + accountID
}

// Instrumented wraps a Store and records per-operation latency.
type Instrumented struct {
	next    Store
	metrics *metrics.Metrics
}

// Instrument returns store wrapped with latency metrics. A nil m returns store unchanged.
func Instrument(store Store, m *metrics.Metrics) Store {
	if m == nil {
		return store
	}
	return &Instrumented{next: store, metrics: m}
}

func (s *Instrumented) Get(ctx context.Context, key string) (string, error) {
	defer s.metrics.ObserveKV("get", time.Now())
	return s.next.Get(ctx, key)
}

func (s *Instrumented) Set(ctx context.Context, key, value string) error {
	defer s.metrics.ObserveKV("set", time.Now())
	return s.next.Set(ctx, key, value)
}

func (s *Instrumented) Delete(ctx context.Context, key string) error {
	defer s.metrics.ObserveKV("delete", time.Now())
	return s.next.Delete(ctx, key)
}
