// Package wallet tracks the coin balance of the active session.
package wallet

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"sync"

	"socialboot/internal/kv"
	"socialboot/internal/platform/metrics"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

// StartingGrant is credited the first time a session id is seen.
const StartingGrant = 50

// Store holds the balance of the active session. Without a session the
// balance reads 0 and mutations are ignored.
type Store struct {
	kv      kv.Store
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu        sync.Mutex
	sessionID string
	balance   int
}

type Option func(s *Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func New(store kv.Store, opts ...Option) *Store {
	s := &Store{kv: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Balance returns the current balance.
func (s *Store) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// OnSessionChanged rehydrates the balance for sessionID. An empty id resets
// the in-memory balance to 0 and leaves persisted balances alone.
func (s *Store) OnSessionChanged(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" {
		s.sessionID = ""
		s.balance = 0
		return nil
	}

	balance, err := s.read(ctx, sessionID)
	if err != nil {
		return err
	}
	s.sessionID = sessionID
	s.balance = balance
	return nil
}

// read loads the persisted balance, granting StartingGrant when absent or unreadable.
func (s *Store) read(ctx context.Context, sessionID string) (int, error) {
	key := kv.WalletKey(sessionID)
	raw, err := s.kv.Get(ctx, key)
	switch {
	case err == nil:
		balance, convErr := strconv.Atoi(raw)
		if convErr == nil && balance >= 0 {
			return balance, nil
		}
		s.logger.WarnContext(ctx, "discarding corrupt wallet balance",
			"key", key,
			"value", raw,
		)
		s.metrics.IncCorruption("wallet")
		if err := s.kv.Delete(ctx, key); err != nil {
			return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to discard wallet balance")
		}
	case !errors.Is(err, sentinel.ErrNotFound):
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load wallet balance")
	}

	if err := s.kv.Set(ctx, key, strconv.Itoa(StartingGrant)); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist starting grant")
	}
	s.metrics.AddCoins("grant", StartingGrant)
	return StartingGrant, nil
}

// Credit adds amount and returns the new balance.
func (s *Store) Credit(ctx context.Context, amount int) (int, error) {
	if amount < 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "amount must not be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID == "" {
		return s.balance, nil
	}
	if amount > math.MaxInt-s.balance {
		return s.balance, dErrors.New(dErrors.CodeValidation, "amount exceeds the maximum balance")
	}
	if err := s.commit(ctx, s.balance+amount); err != nil {
		return 0, err
	}
	s.metrics.AddCoins("credit", amount)
	return s.balance, nil
}

// Debit removes amount, clamping at 0, and returns the new balance.
func (s *Store) Debit(ctx context.Context, amount int) (int, error) {
	if amount < 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "amount must not be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID == "" {
		return s.balance, nil
	}
	next := max(s.balance-amount, 0)
	moved := s.balance - next
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	s.metrics.AddCoins("debit", moved)
	return s.balance, nil
}

// commit persists next then applies it. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next int) error {
	if err := s.kv.Set(ctx, kv.WalletKey(s.sessionID), strconv.Itoa(next)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist wallet balance")
	}
	s.balance = next
	return nil
}
