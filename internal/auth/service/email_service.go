package service

//go:generate mockgen -destination=../../mocks/mock_mail_sender.go -package=mocks github.com/ezov86/nto-users/internal/auth/service MailSender

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ezov86/nto-users/internal/auth/domain"
	autherrors "github.com/ezov86/nto-users/internal/errors"
	"github.com/ezov86/nto-users/internal/token"
)

// MailSender delivers the single-use tokens of the email flows.
type MailSender interface {
	SendVerificationMail(ctx context.Context, email, verifyToken string) error
	SendPasswordUpdateMail(ctx context.Context, email, updateToken string) error
}

// EmailService drives the email account lifecycle: address verification and
// password updates, both through signed single-purpose tokens sent by mail.
type EmailService struct {
	accounts domain.EmailAccountRepository
	sender   MailSender
	log      *zap.Logger

	verifySecret string
	verifyExpiry time.Duration
	updateSecret string
	updateExpiry time.Duration
}

func NewEmailService(
	accounts domain.EmailAccountRepository,
	sender MailSender,
	log *zap.Logger,
	verifySecret string, verifyExpiry time.Duration,
	updateSecret string, updateExpiry time.Duration,
) *EmailService {
	return &EmailService{
		accounts:     accounts,
		sender:       sender,
		log:          log,
		verifySecret: verifySecret,
		verifyExpiry: verifyExpiry,
		updateSecret: updateSecret,
		updateExpiry: updateExpiry,
	}
}

func (s *EmailService) getAccount(ctx context.Context, email string) (*domain.EmailAccount, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: email account", autherrors.ErrNotFound)
	}

	return account, nil
}

// RequestVerification mails a verification token to the given address.
// Fails with ErrNotFound when no account exists and ErrAlreadyDone when the
// address is already verified.
func (s *EmailService) RequestVerification(ctx context.Context, email string) error {
	account, err := s.getAccount(ctx, email)
	if err != nil {
		return err
	}

	if account.IsVerified {
		return fmt.Errorf("%w: email verification", autherrors.ErrAlreadyDone)
	}

	verifyToken, err := token.EncodeWithExpiry(account.Email, s.verifySecret, s.verifyExpiry, nil)
	if err != nil {
		return err
	}

	return s.sender.SendVerificationMail(ctx, account.Email, verifyToken)
}

// VerifyByToken marks the account carried in the token as verified. Fails
// with ErrInvalidToken on a bad or expired token and ErrAlreadyDone when the
// address was verified in the meantime.
func (s *EmailService) VerifyByToken(ctx context.Context, verifyToken string) error {
	payload, err := token.Decode(verifyToken, nil, s.verifySecret)
	if err != nil {
		return err
	}

	account, err := s.accounts.GetByEmail(ctx, payload["sub"])
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("%w: email verification", autherrors.ErrInvalidToken)
	}

	if account.IsVerified {
		return fmt.Errorf("%w: email verification", autherrors.ErrAlreadyDone)
	}

	account.IsVerified = true
	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}

	s.log.Info("email address verified", zap.String("email", account.Email))

	return nil
}

// RequestPasswordUpdate mails a password-update token to the given address.
// Fails with ErrNotFound when no account exists.
func (s *EmailService) RequestPasswordUpdate(ctx context.Context, email string) error {
	account, err := s.getAccount(ctx, email)
	if err != nil {
		return err
	}

	updateToken, err := token.EncodeWithExpiry(account.Email, s.updateSecret, s.updateExpiry, nil)
	if err != nil {
		return err
	}

	return s.sender.SendPasswordUpdateMail(ctx, account.Email, updateToken)
}

// UpdatePasswordByToken sets a new password for the account carried in the
// token. A token can only be consumed once; reuse fails with ErrAlreadyDone.
func (s *EmailService) UpdatePasswordByToken(ctx context.Context, updateToken, newPassword string) error {
	payload, err := token.Decode(updateToken, nil, s.updateSecret)
	if err != nil {
		return err
	}

	account, err := s.accounts.GetByEmail(ctx, payload["sub"])
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("%w: password update", autherrors.ErrInvalidToken)
	}

	if account.PasswordUpdatedWithToken != nil && *account.PasswordUpdatedWithToken == updateToken {
		return fmt.Errorf("%w: password update with given token", autherrors.ErrAlreadyDone)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	account.PasswordHash = string(hash)
	account.PasswordUpdatedWithToken = &updateToken
	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}

	s.log.Info("password updated by token", zap.String("email", account.Email))

	return nil
}
