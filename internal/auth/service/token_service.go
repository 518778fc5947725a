package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ezov86/nto-users/internal/auth/domain"
	"github.com/ezov86/nto-users/internal/auth/strategy"
	autherrors "github.com/ezov86/nto-users/internal/errors"
	"github.com/ezov86/nto-users/internal/security"
	"github.com/ezov86/nto-users/internal/token"
)

// TokenPair is the access/refresh pair issued on login and refresh. The two
// tokens are independent: refreshing does not invalidate the prior pair.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenService orchestrates login, access-token verification and
// refresh-token rotation. It keeps no per-request state; the strategy is
// always passed in explicitly.
type TokenService struct {
	users domain.UserRepository
	log   *zap.Logger

	accessSecret  string
	refreshSecret string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(
	users domain.UserRepository,
	log *zap.Logger,
	accessSecret, refreshSecret string,
	accessExpiry, refreshExpiry time.Duration,
) *TokenService {
	return &TokenService{
		users:         users,
		log:           log,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *TokenService) encodeTokens(username string, scopes []string) (*TokenPair, error) {
	claims := map[string]string{"scopes": token.JoinScopes(scopes)}

	access, err := token.EncodeWithExpiry(username, s.accessSecret, s.accessExpiry, claims)
	if err != nil {
		return nil, err
	}

	refresh, err := token.EncodeWithExpiry(username, s.refreshSecret, s.refreshExpiry, claims)
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// LoginForTokens verifies the credentials with the given strategy, resolves
// the requested scopes against the user's grants and issues a token pair.
// Scopes requested but not granted are dropped, not errored.
//
// Fails with ErrInvalidAuthData on bad credentials and ErrAccessDenied when
// the user is disabled.
func (s *TokenService) LoginForTokens(
	ctx context.Context,
	strat strategy.Strategy,
	creds strategy.Credentials,
	requestedScopes []string,
) (*TokenPair, error) {
	user, err := strat.LoginForUser(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := security.CheckNotDisabled(user); err != nil {
		s.log.Info("login refused for disabled user",
			zap.String("user", user.Name), zap.String("strategy", strat.Name()))
		return nil, err
	}

	granted := security.ResolveGranted(requestedScopes, user)

	s.log.Info("user logged in",
		zap.String("user", user.Name),
		zap.String("strategy", strat.Name()),
		zap.Strings("scopes", granted))

	return s.encodeTokens(user.Name, granted)
}

// validateTokenPayload re-validates a token's subject and scopes against the
// live user: the user must still exist, must not be disabled, and the scopes
// must still be granted (grants may have been revoked after issuance).
func (s *TokenService) validateTokenPayload(ctx context.Context, username string, scopes []string) (*domain.User, error) {
	user, err := s.users.GetByName(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: unknown token subject", autherrors.ErrInvalidAuthData)
	}

	if err := security.CheckNotDisabled(user); err != nil {
		return nil, err
	}
	if err := security.CheckGranted(scopes, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies an access token and returns the principal. Token
// faults surface as ErrInvalidAuthData, never as raw token errors; a
// disabled user or revoked scopes surface as ErrAccessDenied.
func (s *TokenService) Authenticate(ctx context.Context, accessToken string) (*security.AuthenticatedUser, error) {
	payload, err := token.Decode(accessToken, []string{"exp", "scopes"}, s.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: bad access token", autherrors.ErrInvalidAuthData)
	}

	username := payload["sub"]
	scopes := token.SplitScopes(payload["scopes"])

	user, err := s.validateTokenPayload(ctx, username, scopes)
	if err != nil {
		return nil, err
	}

	return &security.AuthenticatedUser{
		Name:   username,
		Scopes: scopes,
		User:   user,
	}, nil
}

// Refresh validates a refresh token the same way Authenticate validates an
// access token, then issues a fresh pair carrying the token's scopes. The
// re-validation means a refresh fails once a scope was revoked, and the new
// pair can never hold more than the original login granted.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	payload, err := token.Decode(refreshToken, []string{"exp", "scopes"}, s.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: bad refresh token", autherrors.ErrInvalidAuthData)
	}

	username := payload["sub"]
	scopes := token.SplitScopes(payload["scopes"])

	if _, err := s.validateTokenPayload(ctx, username, scopes); err != nil {
		return nil, err
	}

	return s.encodeTokens(username, scopes)
}
