package domain

import "time"

// User is the identity record. Name is the unique immutable key; Scopes is a
// set-like sequence of granted scope strings (order irrelevant, duplicates
// meaningless). Scope strings never contain whitespace.
type User struct {
	ID           int64
	Name         string
	IsDisabled   bool
	Scopes       []string
	RegisteredAt time.Time
}

// EmailAccount stores the secret material for email/password authentication.
// At most one per user; the email address is globally unique.
type EmailAccount struct {
	ID           int64
	UserID       int64
	Email        string
	PasswordHash string
	IsVerified   bool

	// PasswordUpdatedWithToken remembers the last password-update token that
	// was consumed, so the same token cannot reset the password twice.
	PasswordUpdatedWithToken *string
}

// TelegramAccount links a user to an external telegram identity. Profile
// fields are refreshed from the telegram token on every login.
type TelegramAccount struct {
	ID          int64
	UserID      int64
	TgUserID    string
	TgUsername  string
	TgFirstName string
	TgLastName  *string
	TgPhotoURL  *string
}
