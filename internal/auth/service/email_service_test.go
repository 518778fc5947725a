package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ezov86/nto-users/internal/auth/domain"
	"github.com/ezov86/nto-users/internal/auth/service"
	autherrors "github.com/ezov86/nto-users/internal/errors"
	"github.com/ezov86/nto-users/internal/mocks"
	"github.com/ezov86/nto-users/internal/token"
)

const (
	verifySecret = "verify-secret"
	updateSecret = "update-secret"
)

func newEmailService(accounts domain.EmailAccountRepository, sender service.MailSender) *service.EmailService {
	return service.NewEmailService(accounts, sender, zap.NewNop(), verifySecret, time.Hour, updateSecret, time.Hour)
}

func TestEmailService_RequestVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockEmailAccountRepository(ctrl)
	sender := mocks.NewMockMailSender(ctrl)
	svc := newEmailService(accounts, sender)

	account := &domain.EmailAccount{ID: 10, UserID: 1, Email: "alice@example.com"}
	accounts.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(account, nil)
	sender.EXPECT().SendVerificationMail(gomock.Any(), "alice@example.com", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, verifyToken string) error {
			// The mailed token must be consumable by the confirm step.
			payload, err := token.Decode(verifyToken, []string{"exp"}, verifySecret)
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", payload["sub"])
			return nil
		})

	assert.NoError(t, svc.RequestVerification(context.Background(), "alice@example.com"))
}

func TestEmailService_RequestVerification_Faults(t *testing.T) {
	t.Run("unknown address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accounts := mocks.NewMockEmailAccountRepository(ctrl)
		accounts.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
		svc := newEmailService(accounts, mocks.NewMockMailSender(ctrl))

		err := svc.RequestVerification(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, autherrors.ErrNotFound)
	})

	t.Run("already verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accounts := mocks.NewMockEmailAccountRepository(ctrl)
		accounts.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").
			Return(&domain.EmailAccount{Email: "alice@example.com", IsVerified: true}, nil)
		svc := newEmailService(accounts, mocks.NewMockMailSender(ctrl))

		err := svc.RequestVerification(context.Background(), "alice@example.com")
		assert.ErrorIs(t, err, autherrors.ErrAlreadyDone)
	})
}

func TestEmailService_VerifyByToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockEmailAccountRepository(ctrl)
	svc := newEmailService(accounts, mocks.NewMockMailSender(ctrl))

	account := &domain.EmailAccount{ID: 10, UserID: 1, Email: "alice@example.com"}
	accounts.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(account, nil)
	accounts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *domain.EmailAccount) error {
			assert.True(t, updated.IsVerified)
			return nil
		})

	verifyToken, err := token.EncodeWithExpiry("alice@example.com", verifySecret, time.Hour, nil)
	require.NoError(t, err)

	assert.NoError(t, svc.VerifyByToken(context.Background(), verifyToken))
}

func TestEmailService_VerifyByToken_Faults(t *testing.T) {
	t.Run("bad token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newEmailService(mocks.NewMockEmailAccountRepository(ctrl), mocks.NewMockMailSender(ctrl))

		err := svc.VerifyByToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newEmailService(mocks.NewMockEmailAccountRepository(ctrl), mocks.NewMockMailSender(ctrl))

		verifyToken, err := token.EncodeWithExpiry("alice@example.com", verifySecret, -time.Second, nil)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.VerifyByToken(context.Background(), verifyToken), autherrors.ErrInvalidToken)
	})

	t.Run("password-update token is not a verification token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newEmailService(mocks.NewMockEmailAccountRepository(ctrl), mocks.NewMockMailSender(ctrl))

		updateToken, err := token.EncodeWithExpiry("alice@example.com", updateSecret, time.Hour, nil)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.VerifyByToken(context.Background(), updateToken), autherrors.ErrInvalidToken)
	})

	t.Run("account deleted after issuance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accounts := mocks.NewMockEmailAccountRepository(ctrl)
		accounts.EXPECT().GetByEmail(gomock.Any(), "gone@example.com").Return(nil, nil)
		svc := newEmailService(accounts, mocks.NewMockMailSender(ctrl))

		verifyToken, err := token.EncodeWithExpiry("gone@example.com", verifySecret, time.Hour, nil)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.VerifyByToken(context.Background(), verifyToken), autherrors.ErrInvalidToken)
	})

	t.Run("verified in the meantime", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accounts := mocks.NewMockEmailAccountRepository(ctrl)
		accounts.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").
			Return(&domain.EmailAccount{Email: "alice@example.com", IsVerified: true}, nil)
		svc := newEmailService(accounts, mocks.NewMockMailSender(ctrl))

		verifyToken, err := token.EncodeWithExpiry("alice@example.com", verifySecret, time.Hour, nil)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.VerifyByToken(context.Background(), verifyToken), autherrors.ErrAlreadyDone)
	})
}

func TestEmailService_RequestPasswordUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockEmailAccountRepository(ctrl)
	sender := mocks.NewMockMailSender(ctrl)
	svc := newEmailService(accounts, sender)

	account := &domain.EmailAccount{ID: 10, UserID: 1, Email: "alice@example.com", IsVerified: true}
	accounts.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(account, nil)
	sender.EXPECT().SendPasswordUpdateMail(gomock.Any(), "alice@example.com", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updateToken string) error {
			payload, err := token.Decode(updateToken, []string{"exp"}, updateSecret)
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", payload["sub"])
			return nil
		})

	assert.NoError(t, svc.RequestPasswordUpdate(context.Background(), "alice@example.com"))
}

func TestEmailService_RequestPasswordUpdate_UnknownAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockEmailAccountRepository(ctrl)
	accounts.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
	svc := newEmailService(accounts, mocks.NewMockMailSender(ctrl))

	err := svc.RequestPasswordUpdate(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, autherrors.ErrNotFound)
}

func TestEmailService_UpdatePasswordByToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockEmailAccountRepository(ctrl)
	svc := newEmailService(accounts, mocks.NewMockMailSender(ctrl))

	oldHash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &domain.EmailAccount{ID: 10, UserID: 1, Email: "alice@example.com", PasswordHash: string(oldHash)}

	updateToken, err := token.EncodeWithExpiry("alice@example.com", updateSecret, time.Hour, nil)
	require.NoError(t, err)

	accounts.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(account, nil)
	accounts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *domain.EmailAccount) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password")))
			require.NotNil(t, updated.PasswordUpdatedWithToken)
			assert.Equal(t, updateToken, *updated.PasswordUpdatedWithToken)
			return nil
		})

	assert.NoError(t, svc.UpdatePasswordByToken(context.Background(), updateToken, "new-password"))
}

func TestEmailService_UpdatePasswordByToken_Reuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockEmailAccountRepository(ctrl)
	svc := newEmailService(accounts, mocks.NewMockMailSender(ctrl))

	updateToken, err := token.EncodeWithExpiry("alice@example.com", updateSecret, time.Hour, nil)
	require.NoError(t, err)

	// The account already consumed this exact token.
	account := &domain.EmailAccount{
		ID:                       10,
		UserID:                   1,
		Email:                    "alice@example.com",
		PasswordUpdatedWithToken: &updateToken,
	}
	accounts.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(account, nil)

	err = svc.UpdatePasswordByToken(context.Background(), updateToken, "new-password")
	assert.ErrorIs(t, err, autherrors.ErrAlreadyDone)
}

func TestEmailService_UpdatePasswordByToken_BadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newEmailService(mocks.NewMockEmailAccountRepository(ctrl), mocks.NewMockMailSender(ctrl))

	err := svc.UpdatePasswordByToken(context.Background(), "garbage", "new-password")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
