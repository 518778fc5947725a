package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ezov86/nto-users/config"
	"github.com/ezov86/nto-users/db"
	"github.com/ezov86/nto-users/internal/auth/handler"
	"github.com/ezov86/nto-users/internal/auth/repository/postgres"
	"github.com/ezov86/nto-users/internal/auth/service"
	"github.com/ezov86/nto-users/internal/auth/strategy"
	"github.com/ezov86/nto-users/internal/mail"
	"github.com/ezov86/nto-users/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLog.Sync()

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		zapLog.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		zapLog.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	emailAccountRepo := postgres.NewEmailAccountRepository(pool)
	telegramAccountRepo := postgres.NewTelegramAccountRepository(pool)
	txManager := postgres.NewTxManager(pool)

	emailStrategy := strategy.NewEmailStrategy(userRepo, emailAccountRepo)
	telegramStrategy := strategy.NewTelegramStrategy(userRepo, telegramAccountRepo, cfg.TelegramTokenSecret)

	mailSender := mail.NewSMTPSender(mail.Config{
		Host:              cfg.SMTPHost,
		Port:              cfg.SMTPPort,
		User:              cfg.SMTPUser,
		Password:          cfg.SMTPPassword,
		From:              cfg.SMTPFrom,
		UseTLS:            cfg.SMTPUseTLS,
		VerifyURL:         cfg.EmailVerifyURL,
		PasswordUpdateURL: cfg.PasswordUpdateURL,
	}, zapLog)

	registrationService := service.NewRegistrationService(userRepo, txManager, zapLog, cfg.DefaultUserScopes)
	tokenService := service.NewTokenService(userRepo, zapLog,
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	emailService := service.NewEmailService(emailAccountRepo, mailSender, zapLog,
		cfg.EmailVerifyTokenSecret, cfg.EmailVerifyTokenExpiry,
		cfg.PasswordUpdateTokenSecret, cfg.PasswordUpdateTokenExpiry)

	authHandler := handler.NewAuthHandler(registrationService, tokenService, emailService,
		emailStrategy, telegramStrategy)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	zapLog.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLog.Fatal("server stopped", zap.Error(err))
	}
}
