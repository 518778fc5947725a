// Package handler exposes the service over HTTP.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ezov86/nto-users/internal/auth/service"
	"github.com/ezov86/nto-users/internal/auth/strategy"
	autherrors "github.com/ezov86/nto-users/internal/errors"
)

type AuthHandler struct {
	registration *service.RegistrationService
	tokens       *service.TokenService
	emails       *service.EmailService

	emailStrategy    *strategy.EmailStrategy
	telegramStrategy *strategy.TelegramStrategy
}

func NewAuthHandler(
	registration *service.RegistrationService,
	tokens *service.TokenService,
	emails *service.EmailService,
	emailStrategy *strategy.EmailStrategy,
	telegramStrategy *strategy.TelegramStrategy,
) *AuthHandler {
	return &AuthHandler{
		registration:     registration,
		tokens:           tokens,
		emails:           emails,
		emailStrategy:    emailStrategy,
		telegramStrategy: telegramStrategy,
	}
}

// respondError maps domain errors to HTTP statuses. Unknown errors become an
// opaque 500 so internals never leak to clients.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherrors.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherrors.ErrAlreadyDone):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherrors.ErrInvalidAuthData),
		errors.Is(err, autherrors.ErrInvalidToken),
		errors.Is(err, autherrors.ErrAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
}
