package dto

import (
	"time"

	"github.com/ezov86/nto-users/internal/auth/domain"
	"github.com/ezov86/nto-users/internal/security"
)

type UserOutput struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	IsDisabled   bool      `json:"is_disabled"`
	Scopes       []string  `json:"scopes"`
	RegisteredAt time.Time `json:"registered_at"`
}

func NewUserOutput(user *domain.User) UserOutput {
	return UserOutput{
		ID:           user.ID,
		Name:         user.Name,
		IsDisabled:   user.IsDisabled,
		Scopes:       user.Scopes,
		RegisteredAt: user.RegisteredAt,
	}
}

// AuthenticatedUserOutput exposes the principal's view: the scopes are the
// token's, not the user's full grant set.
type AuthenticatedUserOutput struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
}

func NewAuthenticatedUserOutput(principal *security.AuthenticatedUser) AuthenticatedUserOutput {
	return AuthenticatedUserOutput{
		Name:   principal.Name,
		Scopes: principal.Scopes,
	}
}
