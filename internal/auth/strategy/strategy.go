// Package strategy implements the pluggable authentication methods. Every
// strategy knows how to verify login credentials for an existing account and
// how to attach a new account of its kind to a user. The set of strategies is
// closed: handlers dispatch by name, services receive the strategy as an
// explicit argument and keep no cross-call state.
package strategy

//go:generate mockgen -destination=../../mocks/mock_strategy.go -package=mocks github.com/ezov86/nto-users/internal/auth/strategy Strategy

import (
	"context"

	"github.com/ezov86/nto-users/internal/auth/domain"
)

// Credentials is the marker interface for per-strategy login credentials.
// Values are immutable and single-use.
type Credentials interface {
	credentials()
}

// AttachData is the marker interface for per-strategy account-attachment
// data.
type AttachData interface {
	attachData()
}

// Strategy is one authentication method.
type Strategy interface {
	// Name identifies the strategy in routes and logs.
	Name() string

	// LoginForUser verifies the credentials and returns the owning user.
	// Fails with ErrInvalidAuthData when no matching account exists or
	// verification fails; the two cases are indistinguishable to the caller.
	// No scope or disabled check is performed here.
	LoginForUser(ctx context.Context, creds Credentials) (*domain.User, error)

	// AttachToUser creates the strategy's account record bound to the user.
	// Fails with ErrInvalidAuthData when the attach data is invalid and with
	// ErrAlreadyExists when the strategy is already attached to this user or
	// the external identity belongs to a different user.
	AttachToUser(ctx context.Context, user *domain.User, data AttachData) error
}
