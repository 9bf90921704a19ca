package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shelfwise/shelfwise/internal/employees"
)

// RegisterEmployeeRoutes wires the employee screens onto a gated router group.
func RegisterEmployeeRoutes(r fiber.Router, h *employees.Handler) {
	r.Get("/", h.Index)
	r.Get("/new", h.New)
	r.Post("/", h.Create)
	r.Get("/edit/:id", h.Edit)
	r.Post("/edit/:id", h.Update)
	r.Post("/delete/:id", h.Delete)
}
