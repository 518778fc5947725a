package security

import (
	"fmt"
	"strings"

	"github.com/ezov86/nto-users/internal/auth/domain"
	autherrors "github.com/ezov86/nto-users/internal/errors"
)

// AuthenticatedUser is the request-scoped principal produced by access-token
// verification. Scopes are the ones embedded in the token, already
// re-validated against the live user at authentication time.
type AuthenticatedUser struct {
	Name   string
	Scopes []string
	User   *domain.User
}

// IsAdmin reports whether the principal holds the admin scope.
func (u *AuthenticatedUser) IsAdmin() bool {
	return HasScope(u.Scopes, ScopeAdmin)
}

// IsPermitted reports whether the principal holds every given scope or is an
// admin.
func (u *AuthenticatedUser) IsPermitted(scopes []string) bool {
	if u.IsAdmin() {
		return true
	}

	for _, scope := range scopes {
		if !HasScope(u.Scopes, scope) {
			return false
		}
	}

	return true
}

// Authorize fails with ErrAccessDenied unless the principal is permitted for
// all given scopes. Authorization is call-site-scoped: passing one check says
// nothing about any other scope set.
func (u *AuthenticatedUser) Authorize(scopes []string) error {
	if !u.IsPermitted(scopes) {
		return fmt.Errorf("%w: action requires scopes %s", autherrors.ErrAccessDenied, strings.Join(scopes, ", "))
	}

	return nil
}
