package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ezov86/nto-users/internal/security"
)

const principalLocalsKey = "authUser"

// RequireAuth verifies the bearer access token and stores the principal in
// the request locals for the wrapped handlers.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return h.RequireScopes()
}

// RequireScopes verifies the bearer access token and checks the principal
// holds every given scope (admins pass any check). Authorization is
// call-site-scoped: each route group states the scopes it needs.
func (h *AuthHandler) RequireScopes(requiredScopes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		principal, err := h.tokens.Authenticate(c.Context(), accessToken)
		if err != nil {
			return respondError(c, err)
		}

		if err := principal.Authorize(requiredScopes); err != nil {
			return respondError(c, err)
		}

		c.Locals(principalLocalsKey, principal)

		return c.Next()
	}
}

func principalFromCtx(c *fiber.Ctx) *security.AuthenticatedUser {
	principal, _ := c.Locals(principalLocalsKey).(*security.AuthenticatedUser)
	return principal
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(header, "Bearer "), true
}
