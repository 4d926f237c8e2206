package session

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"socialboot/internal/kv"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

// CredentialGuard wraps an Authenticator that accepts any password. Once a
// password has been set through the settings page, Login must present it;
// accounts without a stored hash pass straight through.
type CredentialGuard struct {
	kv   kv.Store
	next Authenticator
	cost int
}

func NewCredentialGuard(store kv.Store, next Authenticator) *CredentialGuard {
	return &CredentialGuard{kv: store, next: next, cost: bcrypt.DefaultCost}
}

func (g *CredentialGuard) Login(ctx context.Context, address, password string) (*Identity, error) {
	hash, found, err := g.storedHash(ctx, address)
	switch {
	case err != nil:
		return nil, err
	case found:
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return nil, dErrors.New(dErrors.CodeInvalidCredentials, "Invalid credentials")
			}
			return nil, fmt.Errorf("verify credentials: %w", err)
		}
	}
	return g.next.Login(ctx, address, password)
}

// Signup refuses an address that already has a stored password, so a
// second signup cannot replace it.
func (g *CredentialGuard) Signup(ctx context.Context, name, address, password string) (*Identity, error) {
	_, found, err := g.storedHash(ctx, address)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, dErrors.New(dErrors.CodeConflict, "An account with this email already exists")
	}
	identity, err := g.next.Signup(ctx, name, address, password)
	if err != nil {
		return nil, err
	}
	if err := g.SetPassword(ctx, address, password); err != nil {
		return nil, err
	}
	return identity, nil
}

// SetPassword stores a bcrypt hash of password for the account of address.
func (g *CredentialGuard) SetPassword(ctx context.Context, address, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return dErrors.New(dErrors.CodeValidation, "Password is too long")
		}
		return fmt.Errorf("hash password: %w", err)
	}
	if err := g.kv.Set(ctx, kv.CredentialKey(SessionID(address)), string(hashed)); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}
	return nil
}

func (g *CredentialGuard) storedHash(ctx context.Context, address string) (string, bool, error) {
	hash, err := g.kv.Get(ctx, kv.CredentialKey(SessionID(address)))
	if errors.Is(err, sentinel.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read credentials: %w", err)
	}
	return hash, true, nil
}
