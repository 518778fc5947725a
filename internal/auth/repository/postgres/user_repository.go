package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ezov86/nto-users/internal/auth/domain"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Scopes are stored as one space-joined text column; a scope string never
// contains whitespace.

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var scopes string

	err := row.Scan(&user.ID, &user.Name, &user.IsDisabled, &scopes, &user.RegisteredAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	user.Scopes = strings.Fields(scopes)

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT id, name, is_disabled, scopes, registered_at
		FROM users
		WHERE id = $1
	`, id)

	return scanUser(row)
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT id, name, is_disabled, scopes, registered_at
		FROM users
		WHERE name = $1
	`, name)

	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		INSERT INTO users (name, is_disabled, scopes, registered_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, user.Name, user.IsDisabled, strings.Join(user.Scopes, " "), user.RegisteredAt)

	created := *user
	if err := row.Scan(&created.ID); err != nil {
		return nil, translateError(err, "user")
	}

	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	_, err := querier(ctx, r.db).Exec(ctx, `
		UPDATE users
		SET is_disabled = $2, scopes = $3
		WHERE id = $1
	`, user.ID, user.IsDisabled, strings.Join(user.Scopes, " "))
	if err != nil {
		return translateError(err, "user")
	}

	return nil
}
