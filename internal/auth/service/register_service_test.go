package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ezov86/nto-users/internal/auth/domain"
	"github.com/ezov86/nto-users/internal/auth/service"
	"github.com/ezov86/nto-users/internal/auth/strategy"
	autherrors "github.com/ezov86/nto-users/internal/errors"
	"github.com/ezov86/nto-users/internal/mocks"
	"github.com/ezov86/nto-users/internal/token"
)

// passthroughTx makes the mock transaction manager run the callback as-is.
func passthroughTx(tx *mocks.MockTxManager) {
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestRegistrationService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	tx := mocks.NewMockTxManager(ctrl)
	strat := mocks.NewMockStrategy(ctrl)
	passthroughTx(tx)

	svc := service.NewRegistrationService(users, tx, zap.NewNop(), []string{"user"})

	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "carol", user.Name)
			assert.False(t, user.IsDisabled)
			assert.Equal(t, []string{"user"}, user.Scopes)
			assert.WithinDuration(t, time.Now().UTC(), user.RegisteredAt, time.Minute)

			created := *user
			created.ID = 3
			return &created, nil
		})
	strat.EXPECT().AttachToUser(gomock.Any(), gomock.Any(), strategy.EmailAttachData{Email: "carol@example.com", Password: "secret"}).
		DoAndReturn(func(_ context.Context, user *domain.User, _ strategy.AttachData) error {
			assert.Equal(t, int64(3), user.ID)
			return nil
		})
	strat.EXPECT().Name().Return("email").AnyTimes()

	user, err := svc.Register(context.Background(), "carol", strat, strategy.EmailAttachData{
		Email:    "carol@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "carol", user.Name)
}

func TestRegistrationService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	tx := mocks.NewMockTxManager(ctrl)
	strat := mocks.NewMockStrategy(ctrl)
	passthroughTx(tx)

	svc := service.NewRegistrationService(users, tx, zap.NewNop(), []string{"user"})

	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, autherrors.ErrAlreadyExists)

	_, err := svc.Register(context.Background(), "carol", strat, strategy.EmailAttachData{})
	assert.ErrorIs(t, err, autherrors.ErrAlreadyExists)
}

func TestRegistrationService_Register_AttachFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	tx := mocks.NewMockTxManager(ctrl)
	strat := mocks.NewMockStrategy(ctrl)
	passthroughTx(tx)

	svc := service.NewRegistrationService(users, tx, zap.NewNop(), []string{"user"})

	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			created := *user
			created.ID = 3
			return &created, nil
		})
	strat.EXPECT().AttachToUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(autherrors.ErrInvalidAuthData)

	// The error from the transaction callback surfaces unchanged; the
	// transaction manager is responsible for rolling the user insert back.
	_, err := svc.Register(context.Background(), "carol", strat, strategy.EmailAttachData{})
	assert.ErrorIs(t, err, autherrors.ErrInvalidAuthData)
}

// TestRegisterThenLoginViaTelegram walks the full path of a new telegram
// user: registration attaches the telegram account, a later login with the
// same external identity resolves the user and a scope request of "all"
// expands to the default grants.
func TestRegisterThenLoginViaTelegram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	accounts := mocks.NewMockTelegramAccountRepository(ctrl)
	tx := mocks.NewMockTxManager(ctrl)
	passthroughTx(tx)

	const tgTokenSecret = "telegram-secret"
	tgStrategy := strategy.NewTelegramStrategy(users, accounts, tgTokenSecret)
	registration := service.NewRegistrationService(users, tx, zap.NewNop(), []string{"user"})
	tokens := newTokenService(users)

	// In-memory state standing in for the database.
	var (
		storedUser    *domain.User
		storedAccount *domain.TelegramAccount
	)

	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			created := *user
			created.ID = 3
			storedUser = &created
			return &created, nil
		})
	users.EXPECT().GetByID(gomock.Any(), int64(3)).DoAndReturn(
		func(context.Context, int64) (*domain.User, error) { return storedUser, nil }).AnyTimes()
	accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account *domain.TelegramAccount) (*domain.TelegramAccount, error) {
			created := *account
			created.ID = 30
			storedAccount = &created
			return &created, nil
		})
	accounts.EXPECT().GetByTgUserID(gomock.Any(), "777").DoAndReturn(
		func(context.Context, string) (*domain.TelegramAccount, error) { return storedAccount, nil }).AnyTimes()
	accounts.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tgToken, err := token.Encode("777", tgTokenSecret, map[string]string{
		"tg_username":   "carol_tg",
		"tg_first_name": "Carol",
		"tg_last_name":  "Jones",
		"tg_photo_url":  "https://t.me/i/userpic/carol.jpg",
	})
	require.NoError(t, err)

	user, err := registration.Register(context.Background(), "carol", tgStrategy, strategy.TelegramAttachData{Token: tgToken})
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Name)
	require.NotNil(t, storedAccount)
	assert.Equal(t, "777", storedAccount.TgUserID)

	pair, err := tokens.LoginForTokens(context.Background(), tgStrategy, strategy.TelegramCredentials{Token: tgToken}, []string{"all"})
	require.NoError(t, err)

	sub, scopes := decodeScopes(t, pair.Access, accessSecret)
	assert.Equal(t, "carol", sub)
	assert.Equal(t, []string{"user"}, scopes)
}
