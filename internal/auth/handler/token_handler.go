package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ezov86/nto-users/internal/auth/dto"
)

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	pair, err := h.tokens.Refresh(c.Context(), input.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(pair)
}

// GetTokenUser returns the principal behind the presented access token.
func (h *AuthHandler) GetTokenUser(c *fiber.Ctx) error {
	principal := principalFromCtx(c)

	return c.Status(fiber.StatusOK).JSON(dto.NewAuthenticatedUserOutput(principal))
}
