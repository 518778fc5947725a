package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ezov86/nto-users/internal/auth/domain"
)

type TelegramAccountRepository struct {
	db DB
}

func NewTelegramAccountRepository(db DB) *TelegramAccountRepository {
	return &TelegramAccountRepository{db: db}
}

func scanTelegramAccount(row pgx.Row) (*domain.TelegramAccount, error) {
	var account domain.TelegramAccount

	err := row.Scan(&account.ID, &account.UserID, &account.TgUserID,
		&account.TgUsername, &account.TgFirstName, &account.TgLastName, &account.TgPhotoURL)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan telegram account: %w", err)
	}

	return &account, nil
}

func (r *TelegramAccountRepository) GetByTgUserID(ctx context.Context, tgUserID string) (*domain.TelegramAccount, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT id, user_id, tg_user_id, tg_username, tg_first_name, tg_last_name, tg_photo_url
		FROM telegram_accounts
		WHERE tg_user_id = $1
	`, tgUserID)

	return scanTelegramAccount(row)
}

func (r *TelegramAccountRepository) Create(ctx context.Context, account *domain.TelegramAccount) (*domain.TelegramAccount, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		INSERT INTO telegram_accounts (user_id, tg_user_id, tg_username, tg_first_name, tg_last_name, tg_photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, account.UserID, account.TgUserID, account.TgUsername,
		account.TgFirstName, account.TgLastName, account.TgPhotoURL)

	created := *account
	if err := row.Scan(&created.ID); err != nil {
		return nil, translateError(err, "telegram account")
	}

	return &created, nil
}

func (r *TelegramAccountRepository) Update(ctx context.Context, account *domain.TelegramAccount) error {
	_, err := querier(ctx, r.db).Exec(ctx, `
		UPDATE telegram_accounts
		SET tg_username = $2, tg_first_name = $3, tg_last_name = $4, tg_photo_url = $5
		WHERE id = $1
	`, account.ID, account.TgUsername, account.TgFirstName, account.TgLastName, account.TgPhotoURL)
	if err != nil {
		return translateError(err, "telegram account")
	}

	return nil
}
