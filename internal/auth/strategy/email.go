package strategy

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ezov86/nto-users/internal/auth/domain"
	autherrors "github.com/ezov86/nto-users/internal/errors"
)

// EmailCredentials authenticate with a username or email address plus a
// password.
type EmailCredentials struct {
	NameOrEmail string
	Password    string
}

func (EmailCredentials) credentials() {}

// EmailAttachData carries everything needed to attach an email account.
// Verified should be false unless the address was confirmed out of band; an
// unverified account can be confirmed later via the email verification flow.
type EmailAttachData struct {
	Email    string
	Password string
	Verified bool
}

func (EmailAttachData) attachData() {}

// EmailStrategy authenticates with an email account's password, compared
// against a salted bcrypt hash.
type EmailStrategy struct {
	users    domain.UserRepository
	accounts domain.EmailAccountRepository
}

func NewEmailStrategy(users domain.UserRepository, accounts domain.EmailAccountRepository) *EmailStrategy {
	return &EmailStrategy{users: users, accounts: accounts}
}

func (s *EmailStrategy) Name() string {
	return "email"
}

// LoginForUser resolves the identifier as an email address first, then as a
// username. Unknown identifier and wrong password produce the same error so
// accounts cannot be enumerated.
func (s *EmailStrategy) LoginForUser(ctx context.Context, creds Credentials) (*domain.User, error) {
	emailCreds, ok := creds.(EmailCredentials)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected credentials type", autherrors.ErrInvalidAuthData)
	}

	account, user, err := s.findAccount(ctx, emailCreds.NameOrEmail)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: unknown identifier or wrong password", autherrors.ErrInvalidAuthData)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(emailCreds.Password)) != nil {
		return nil, fmt.Errorf("%w: unknown identifier or wrong password", autherrors.ErrInvalidAuthData)
	}

	if user == nil {
		if user, err = s.users.GetByID(ctx, account.UserID); err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: unknown identifier or wrong password", autherrors.ErrInvalidAuthData)
		}
	}

	return user, nil
}

func (s *EmailStrategy) findAccount(ctx context.Context, nameOrEmail string) (*domain.EmailAccount, *domain.User, error) {
	account, err := s.accounts.GetByEmail(ctx, nameOrEmail)
	if err != nil {
		return nil, nil, err
	}
	if account != nil {
		return account, nil, nil
	}

	user, err := s.users.GetByName(ctx, nameOrEmail)
	if err != nil || user == nil {
		return nil, nil, err
	}

	account, err = s.accounts.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return account, user, nil
}

// AttachToUser hashes the password and creates the email account for the
// user. A taken email address or an already attached account surfaces as
// ErrAlreadyExists from the repository.
func (s *EmailStrategy) AttachToUser(ctx context.Context, user *domain.User, data AttachData) error {
	emailData, ok := data.(EmailAttachData)
	if !ok {
		return fmt.Errorf("%w: unexpected attach data type", autherrors.ErrInvalidAuthData)
	}

	if emailData.Email == "" || emailData.Password == "" {
		return fmt.Errorf("%w: empty email or password", autherrors.ErrInvalidAuthData)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(emailData.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.accounts.Create(ctx, &domain.EmailAccount{
		UserID:       user.ID,
		Email:        emailData.Email,
		PasswordHash: string(hash),
		IsVerified:   emailData.Verified,
	})

	return err
}
