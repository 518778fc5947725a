package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ezov86/nto-users/internal/auth/domain"
)

type EmailAccountRepository struct {
	db DB
}

func NewEmailAccountRepository(db DB) *EmailAccountRepository {
	return &EmailAccountRepository{db: db}
}

func scanEmailAccount(row pgx.Row) (*domain.EmailAccount, error) {
	var account domain.EmailAccount

	err := row.Scan(&account.ID, &account.UserID, &account.Email,
		&account.PasswordHash, &account.IsVerified, &account.PasswordUpdatedWithToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan email account: %w", err)
	}

	return &account, nil
}

func (r *EmailAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.EmailAccount, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT id, user_id, email, password_hash, is_verified, password_updated_with_token
		FROM email_accounts
		WHERE email = $1
	`, email)

	return scanEmailAccount(row)
}

func (r *EmailAccountRepository) GetByUserID(ctx context.Context, userID int64) (*domain.EmailAccount, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT id, user_id, email, password_hash, is_verified, password_updated_with_token
		FROM email_accounts
		WHERE user_id = $1
	`, userID)

	return scanEmailAccount(row)
}

func (r *EmailAccountRepository) Create(ctx context.Context, account *domain.EmailAccount) (*domain.EmailAccount, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		INSERT INTO email_accounts (user_id, email, password_hash, is_verified, password_updated_with_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, account.UserID, account.Email, account.PasswordHash, account.IsVerified, account.PasswordUpdatedWithToken)

	created := *account
	if err := row.Scan(&created.ID); err != nil {
		return nil, translateError(err, "email account")
	}

	return &created, nil
}

func (r *EmailAccountRepository) Update(ctx context.Context, account *domain.EmailAccount) error {
	_, err := querier(ctx, r.db).Exec(ctx, `
		UPDATE email_accounts
		SET password_hash = $2, is_verified = $3, password_updated_with_token = $4
		WHERE id = $1
	`, account.ID, account.PasswordHash, account.IsVerified, account.PasswordUpdatedWithToken)
	if err != nil {
		return translateError(err, "email account")
	}

	return nil
}
