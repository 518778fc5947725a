package strategy

import (
	"context"
	"fmt"

	"github.com/ezov86/nto-users/internal/auth/domain"
	autherrors "github.com/ezov86/nto-users/internal/errors"
	"github.com/ezov86/nto-users/internal/token"
)

// TelegramCredentials carry a JWT issued by the telegram-side token service.
// Verifying the credential means verifying that token with the shared
// telegram secret.
type TelegramCredentials struct {
	Token string
}

func (TelegramCredentials) credentials() {}

// TelegramAttachData carries the same kind of token for account attachment.
type TelegramAttachData struct {
	Token string
}

func (TelegramAttachData) attachData() {}

// telegramTokenData is the claim set extracted from a verified telegram
// token. The external user id comes from "sub".
type telegramTokenData struct {
	tgUserID    string
	tgUsername  string
	tgFirstName string
	tgLastName  *string
	tgPhotoURL  *string
}

// TelegramStrategy authenticates with signed tokens from the external
// telegram identity provider.
type TelegramStrategy struct {
	users       domain.UserRepository
	accounts    domain.TelegramAccountRepository
	tokenSecret string
}

func NewTelegramStrategy(users domain.UserRepository, accounts domain.TelegramAccountRepository, tokenSecret string) *TelegramStrategy {
	return &TelegramStrategy{users: users, accounts: accounts, tokenSecret: tokenSecret}
}

func (s *TelegramStrategy) Name() string {
	return "telegram"
}

// decodeToken verifies the telegram token and extracts the profile claims.
// Token faults are folded into ErrInvalidAuthData so codec details never
// reach the caller.
func (s *TelegramStrategy) decodeToken(tokenString string) (*telegramTokenData, error) {
	payload, err := token.Decode(tokenString, []string{
		"tg_username",
		"tg_first_name",
		"tg_last_name",
		"tg_photo_url",
	}, s.tokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: bad telegram token", autherrors.ErrInvalidAuthData)
	}

	data := &telegramTokenData{
		tgUserID:    payload["sub"],
		tgUsername:  payload["tg_username"],
		tgFirstName: payload["tg_first_name"],
	}

	// Optional profile claims may be null in the token; they are then absent
	// from the decoded payload.
	if lastName, ok := payload["tg_last_name"]; ok {
		data.tgLastName = &lastName
	}
	if photoURL, ok := payload["tg_photo_url"]; ok {
		data.tgPhotoURL = &photoURL
	}

	return data, nil
}

// LoginForUser verifies the telegram token, finds the local account by the
// external user id and refreshes the stored profile fields from the token.
func (s *TelegramStrategy) LoginForUser(ctx context.Context, creds Credentials) (*domain.User, error) {
	tgCreds, ok := creds.(TelegramCredentials)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected credentials type", autherrors.ErrInvalidAuthData)
	}

	tokenData, err := s.decodeToken(tgCreds.Token)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByTgUserID(ctx, tokenData.tgUserID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: no account for telegram identity", autherrors.ErrInvalidAuthData)
	}

	// Token data is trusted at this point, refresh the profile snapshot.
	account.TgUsername = tokenData.tgUsername
	account.TgFirstName = tokenData.tgFirstName
	account.TgLastName = tokenData.tgLastName
	account.TgPhotoURL = tokenData.tgPhotoURL
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, account.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no account for telegram identity", autherrors.ErrInvalidAuthData)
	}

	return user, nil
}

// AttachToUser verifies the telegram token and creates the account for the
// user. An external identity already attached elsewhere surfaces as
// ErrAlreadyExists from the repository.
func (s *TelegramStrategy) AttachToUser(ctx context.Context, user *domain.User, data AttachData) error {
	tgData, ok := data.(TelegramAttachData)
	if !ok {
		return fmt.Errorf("%w: unexpected attach data type", autherrors.ErrInvalidAuthData)
	}

	tokenData, err := s.decodeToken(tgData.Token)
	if err != nil {
		return err
	}

	_, err = s.accounts.Create(ctx, &domain.TelegramAccount{
		UserID:      user.ID,
		TgUserID:    tokenData.tgUserID,
		TgUsername:  tokenData.tgUsername,
		TgFirstName: tokenData.tgFirstName,
		TgLastName:  tokenData.tgLastName,
		TgPhotoURL:  tokenData.tgPhotoURL,
	})

	return err
}
