// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBURL string `env:"DB_URL,required"`

	// Every token purpose signs with its own secret so a leaked secret only
	// compromises tokens of that purpose.
	AccessTokenSecret  string        `env:"ACCESS_TOKEN_SECRET,required"`
	RefreshTokenSecret string        `env:"REFRESH_TOKEN_SECRET,required"`
	AccessTokenExpiry  time.Duration `env:"ACCESS_TOKEN_EXPIRY" envDefault:"15m"`
	RefreshTokenExpiry time.Duration `env:"REFRESH_TOKEN_EXPIRY" envDefault:"168h"`

	TelegramTokenSecret string `env:"TELEGRAM_TOKEN_SECRET,required"`

	// DefaultUserScopes are granted to every newly registered user.
	DefaultUserScopes []string `env:"DEFAULT_USER_SCOPES" envDefault:"user" envSeparator:","`

	EmailVerifyTokenSecret string        `env:"EMAIL_VERIFY_TOKEN_SECRET,required"`
	EmailVerifyTokenExpiry time.Duration `env:"EMAIL_VERIFY_TOKEN_EXPIRY" envDefault:"24h"`
	EmailVerifyURL         string        `env:"EMAIL_VERIFY_URL,required"`

	PasswordUpdateTokenSecret string        `env:"PASSWORD_UPDATE_TOKEN_SECRET,required"`
	PasswordUpdateTokenExpiry time.Duration `env:"PASSWORD_UPDATE_TOKEN_EXPIRY" envDefault:"24h"`
	PasswordUpdateURL         string        `env:"PASSWORD_UPDATE_URL,required"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
