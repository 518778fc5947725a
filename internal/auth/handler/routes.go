package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	api := app.Group("/api/v1")

	email := api.Group("/email")
	email.Post("/register", h.EmailRegister)
	email.Post("/login", h.EmailLogin)
	email.Post("/attach", h.RequireAuth(), h.EmailAttach)
	email.Post("/verification/request", h.RequestEmailVerification)
	email.Post("/verification/confirm", h.ConfirmEmailVerification)
	email.Post("/password/request", h.RequestPasswordUpdate)
	email.Post("/password/confirm", h.ConfirmPasswordUpdate)

	tg := api.Group("/tg")
	tg.Post("/register", h.TelegramRegister)
	tg.Post("/login", h.TelegramLogin)
	tg.Post("/attach", h.RequireAuth(), h.TelegramAttach)

	tokens := api.Group("/tokens")
	tokens.Post("/refresh", h.Refresh)
	tokens.Get("/user", h.RequireAuth(), h.GetTokenUser)
}
