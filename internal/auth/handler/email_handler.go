package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ezov86/nto-users/internal/auth/dto"
	"github.com/ezov86/nto-users/internal/auth/strategy"
	"github.com/ezov86/nto-users/internal/token"
)

func (h *AuthHandler) EmailRegister(c *fiber.Ctx) error {
	var input dto.EmailRegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	user, err := h.registration.Register(c.Context(), input.Name, h.emailStrategy, strategy.EmailAttachData{
		Email:    input.Email,
		Password: input.Password,
		Verified: false,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

func (h *AuthHandler) EmailLogin(c *fiber.Ctx) error {
	var input dto.EmailLoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	pair, err := h.tokens.LoginForTokens(c.Context(), h.emailStrategy, strategy.EmailCredentials{
		NameOrEmail: input.NameOrEmail,
		Password:    input.Password,
	}, token.SplitScopes(input.Scope))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(pair)
}

// EmailAttach adds an email account to the authenticated user.
func (h *AuthHandler) EmailAttach(c *fiber.Ctx) error {
	principal := principalFromCtx(c)

	var input dto.EmailAttachInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	err := h.emailStrategy.AttachToUser(c.Context(), principal.User, strategy.EmailAttachData{
		Email:    input.Email,
		Password: input.Password,
		Verified: false,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

func (h *AuthHandler) RequestEmailVerification(c *fiber.Ctx) error {
	var input dto.EmailAddressInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	if err := h.emails.RequestVerification(c.Context(), input.Email); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusAccepted)
}

func (h *AuthHandler) ConfirmEmailVerification(c *fiber.Ctx) error {
	var input dto.EmailTokenInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	if err := h.emails.VerifyByToken(c.Context(), input.Token); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) RequestPasswordUpdate(c *fiber.Ctx) error {
	var input dto.EmailAddressInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	if err := h.emails.RequestPasswordUpdate(c.Context(), input.Email); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusAccepted)
}

func (h *AuthHandler) ConfirmPasswordUpdate(c *fiber.Ctx) error {
	var input dto.PasswordUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	if err := h.emails.UpdatePasswordByToken(c.Context(), input.Token, input.NewPassword); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
