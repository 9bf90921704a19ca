package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shelfwise/shelfwise/internal/auth"
)

// RegisterAuthRoutes wires the login, register and logout screens.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	r.Get("/", h.Home)
	r.Get("/login", h.ShowLogin)
	if rateLimiter != nil {
		r.Post("/login", rateLimiter, h.Login)
	} else {
		r.Post("/login", h.Login)
	}
	r.Get("/register", h.ShowRegister)
	r.Post("/register", h.Register)
	r.Get("/logout", h.Logout)
}
