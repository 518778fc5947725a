// Package errors defines the domain error kinds shared by strategies,
// services and handlers. Callers match them with errors.Is; extra context is
// attached by wrapping with fmt.Errorf("%w: ...").
package errors

import (
	"errors"
)

var (
	// ErrInvalidAuthData is returned when credentials, attach data or a
	// client-supplied token fail verification. It deliberately carries no
	// detail about which part was wrong.
	ErrInvalidAuthData = errors.New("invalid authentication data")

	// ErrAccessDenied is returned when identity is verified but the action is
	// not permitted (disabled user, missing or revoked scopes).
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyExists is returned on uniqueness conflicts when creating a
	// user or an auth account.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidToken is an internal signature/expiry/claim-shape fault.
	// It must be mapped to ErrInvalidAuthData before crossing the service
	// boundary so signing details never leak to callers.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound is returned when a referenced resource is absent.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyDone is returned when a single-use action is repeated, e.g.
	// an email verification token consumed twice.
	ErrAlreadyDone = errors.New("action is already done")
)
