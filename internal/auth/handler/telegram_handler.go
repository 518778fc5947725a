package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ezov86/nto-users/internal/auth/dto"
	"github.com/ezov86/nto-users/internal/auth/strategy"
	"github.com/ezov86/nto-users/internal/token"
)

func (h *AuthHandler) TelegramRegister(c *fiber.Ctx) error {
	var input dto.TelegramRegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	user, err := h.registration.Register(c.Context(), input.Name, h.telegramStrategy, strategy.TelegramAttachData{
		Token: input.Token,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

func (h *AuthHandler) TelegramLogin(c *fiber.Ctx) error {
	var input dto.TelegramLoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	pair, err := h.tokens.LoginForTokens(c.Context(), h.telegramStrategy, strategy.TelegramCredentials{
		Token: input.Token,
	}, token.SplitScopes(input.Scope))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(pair)
}

// TelegramAttach adds a telegram account to the authenticated user.
func (h *AuthHandler) TelegramAttach(c *fiber.Ctx) error {
	principal := principalFromCtx(c)

	var input dto.TelegramAttachInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	err := h.telegramStrategy.AttachToUser(c.Context(), principal.User, strategy.TelegramAttachData{
		Token: input.Token,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}
