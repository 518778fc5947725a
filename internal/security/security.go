// Package security holds the pure scope-resolution and permission-check
// logic shared by login, token verification and request authorization.
package security

import (
	"fmt"

	"github.com/ezov86/nto-users/internal/auth/domain"
	autherrors "github.com/ezov86/nto-users/internal/errors"
)

const (
	// ScopeAdmin is the sentinel scope granting unconditional permission.
	ScopeAdmin = "admin"

	// ScopeAll, when present in a scope request (never in a grant), means
	// "give me everything I currently hold".
	ScopeAll = "all"
)

// ResolveGranted resolves requested scopes against the user's granted set.
// Admins get the request unchanged. A request containing "all" expands to the
// user's full granted set. Otherwise scopes requested but not granted are
// silently dropped; an empty request resolves to an empty set.
func ResolveGranted(requested []string, user *domain.User) []string {
	if HasScope(user.Scopes, ScopeAdmin) {
		return requested
	}

	if HasScope(requested, ScopeAll) {
		return user.Scopes
	}

	granted := []string{}
	for _, scope := range requested {
		if HasScope(user.Scopes, scope) {
			granted = append(granted, scope)
		}
	}

	return granted
}

// CheckGranted fails with ErrAccessDenied unless the user is an admin or
// every scope is in the user's granted set. It is used to re-validate scopes
// embedded in a token against the user's current grants.
func CheckGranted(scopes []string, user *domain.User) error {
	if HasScope(user.Scopes, ScopeAdmin) {
		return nil
	}

	for _, scope := range scopes {
		if !HasScope(user.Scopes, scope) {
			return fmt.Errorf("%w: requested scope %q", autherrors.ErrAccessDenied, scope)
		}
	}

	return nil
}

// CheckNotDisabled fails with ErrAccessDenied when the user is disabled.
func CheckNotDisabled(user *domain.User) error {
	if user.IsDisabled {
		return fmt.Errorf("%w: disabled user", autherrors.ErrAccessDenied)
	}

	return nil
}

// HasScope reports whether the scope set contains the given scope.
func HasScope(scopes []string, scope string) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}

	return false
}
