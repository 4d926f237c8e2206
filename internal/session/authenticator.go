package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"socialboot/pkg/email"
)

// Authenticator resolves credentials into an identity. Implementations may
// block; they must honour ctx.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Identity, error)
	Signup(ctx context.Context, name, email, password string) (*Identity, error)
}

const (
	DefaultLatency = 800 * time.Millisecond

	defaultBio     = "I love creating content and connecting with others!"
	defaultWebsite = "https://example.com"
)

// sessionNamespace scopes the name-based session ids.
var sessionNamespace = uuid.MustParse("6f1f6a8e-3c55-4d57-9d0a-5b8a1f0c2e71")

// SessionID derives the stable session id for an address.
func SessionID(address string) string {
	return uuid.NewSHA1(sessionNamespace, []byte(email.Normalize(address))).String()
}

// MockAuthenticator accepts any non-empty credentials and fabricates the
// identity from the email after a fixed latency.
type MockAuthenticator struct {
	latency time.Duration
	tokens  *TokenIssuer
}

func NewMockAuthenticator(latency time.Duration, tokens *TokenIssuer) *MockAuthenticator {
	return &MockAuthenticator{latency: latency, tokens: tokens}
}

func (a *MockAuthenticator) Login(ctx context.Context, address, _ string) (*Identity, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	rec := Record{
		ID:       SessionID(address),
		Name:     email.DisplayName(address),
		Email:    address,
		Username: email.LocalPart(address),
		Bio:      defaultBio,
		Website:  defaultWebsite,
	}
	return a.identity(rec)
}

func (a *MockAuthenticator) Signup(ctx context.Context, name, address, _ string) (*Identity, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	rec := Record{
		ID:       SessionID(address),
		Name:     name,
		Email:    address,
		Username: email.LocalPart(address),
	}
	return a.identity(rec)
}

func (a *MockAuthenticator) identity(rec Record) (*Identity, error) {
	token, err := a.tokens.Issue(rec)
	if err != nil {
		return nil, err
	}
	return &Identity{Record: rec, Token: token}, nil
}

func (a *MockAuthenticator) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
