package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezov86/nto-users/internal/auth/domain"
	autherrors "github.com/ezov86/nto-users/internal/errors"
)

func TestResolveGranted(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		granted   []string
		expected  []string
	}{
		{
			name:      "subset of granted",
			requested: []string{"scope1"},
			granted:   []string{"scope1", "scope2"},
			expected:  []string{"scope1"},
		},
		{
			name:      "ungranted scopes are dropped",
			requested: []string{"scope1", "scope3"},
			granted:   []string{"scope1", "scope2"},
			expected:  []string{"scope1"},
		},
		{
			name:      "nothing granted",
			requested: []string{"scope3"},
			granted:   []string{"scope1", "scope2"},
			expected:  []string{},
		},
		{
			name:      "empty request",
			requested: []string{},
			granted:   []string{"scope1", "scope2"},
			expected:  []string{},
		},
		{
			name:      "all expands to full granted set",
			requested: []string{ScopeAll},
			granted:   []string{"scope1", "scope2"},
			expected:  []string{"scope1", "scope2"},
		},
		{
			name:      "all mixed with other scopes still expands",
			requested: []string{"scope1", ScopeAll},
			granted:   []string{"scope1", "scope2"},
			expected:  []string{"scope1", "scope2"},
		},
		{
			name:      "admin gets the request unchanged",
			requested: []string{"scope1", "anything-at-all"},
			granted:   []string{ScopeAdmin},
			expected:  []string{"scope1", "anything-at-all"},
		},
		{
			name:      "admin requesting all keeps the sentinel",
			requested: []string{ScopeAll},
			granted:   []string{ScopeAdmin, "scope1"},
			expected:  []string{ScopeAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{Name: "alice", Scopes: tt.granted}
			assert.Equal(t, tt.expected, ResolveGranted(tt.requested, user))
		})
	}
}

func TestCheckGranted(t *testing.T) {
	tests := []struct {
		name    string
		scopes  []string
		granted []string
		wantErr bool
	}{
		{name: "all granted", scopes: []string{"scope1"}, granted: []string{"scope1", "scope2"}},
		{name: "empty set", scopes: []string{}, granted: []string{"scope1"}},
		{name: "admin holds everything", scopes: []string{"scope3"}, granted: []string{ScopeAdmin}},
		{name: "revoked scope", scopes: []string{"scope1", "scope3"}, granted: []string{"scope1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{Name: "alice", Scopes: tt.granted}
			err := CheckGranted(tt.scopes, user)
			if tt.wantErr {
				assert.ErrorIs(t, err, autherrors.ErrAccessDenied)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckNotDisabled(t *testing.T) {
	assert.NoError(t, CheckNotDisabled(&domain.User{Name: "alice"}))

	err := CheckNotDisabled(&domain.User{Name: "alice", IsDisabled: true})
	assert.ErrorIs(t, err, autherrors.ErrAccessDenied)
}

func TestAuthenticatedUser_Authorize(t *testing.T) {
	tests := []struct {
		name     string
		held     []string
		required []string
		wantErr  bool
	}{
		{name: "exact scope held", held: []string{"scope1"}, required: []string{"scope1"}},
		{name: "no scopes required", held: []string{}, required: []string{}},
		{name: "admin passes any check", held: []string{ScopeAdmin}, required: []string{"scope1", "scope2"}},
		{name: "missing scope", held: []string{"scope1"}, required: []string{"scope2"}, wantErr: true},
		{name: "partial match is not enough", held: []string{"scope1"}, required: []string{"scope1", "scope2"}, wantErr: true},
		{name: "empty token scopes", held: []string{}, required: []string{"scope1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal := &AuthenticatedUser{Name: "alice", Scopes: tt.held}
			err := principal.Authorize(tt.required)
			if tt.wantErr {
				assert.ErrorIs(t, err, autherrors.ErrAccessDenied)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthenticatedUser_AuthorizationIsPerCheck(t *testing.T) {
	// Passing one check must not leak into a different scope set.
	principal := &AuthenticatedUser{Name: "alice", Scopes: []string{"scope1"}}

	assert.NoError(t, principal.Authorize([]string{"scope1"}))
	assert.ErrorIs(t, principal.Authorize([]string{"scope2"}), autherrors.ErrAccessDenied)
}

func TestAuthenticatedUser_IsAdmin(t *testing.T) {
	assert.True(t, (&AuthenticatedUser{Scopes: []string{ScopeAdmin}}).IsAdmin())
	assert.False(t, (&AuthenticatedUser{Scopes: []string{"scope1"}}).IsAdmin())
}
