package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/ezov86/nto-users/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_email_account_repository.go -package=mocks github.com/ezov86/nto-users/internal/auth/domain EmailAccountRepository
//go:generate mockgen -destination=../../mocks/mock_telegram_account_repository.go -package=mocks github.com/ezov86/nto-users/internal/auth/domain TelegramAccountRepository
//go:generate mockgen -destination=../../mocks/mock_tx_manager.go -package=mocks github.com/ezov86/nto-users/internal/auth/domain TxManager

import "context"

// UserRepository persists users. Create fails with ErrAlreadyExists when the
// name is taken; GetByName returns (nil, nil) when no user matches.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) error
}

// EmailAccountRepository persists email auth accounts. Create fails with
// ErrAlreadyExists when the email or the user already has an account.
type EmailAccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*EmailAccount, error)
	GetByUserID(ctx context.Context, userID int64) (*EmailAccount, error)
	Create(ctx context.Context, account *EmailAccount) (*EmailAccount, error)
	Update(ctx context.Context, account *EmailAccount) error
}

// TelegramAccountRepository persists telegram auth accounts. Create fails
// with ErrAlreadyExists when the telegram identity or the user already has an
// account.
type TelegramAccountRepository interface {
	GetByTgUserID(ctx context.Context, tgUserID string) (*TelegramAccount, error)
	Create(ctx context.Context, account *TelegramAccount) (*TelegramAccount, error)
	Update(ctx context.Context, account *TelegramAccount) error
}

// TxManager runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction; fn returning an
// error rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
