package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shelfwise/shelfwise/internal/borrowings"
)

// RegisterBorrowingRoutes wires the borrowing screens onto a gated router group.
func RegisterBorrowingRoutes(r fiber.Router, h *borrowings.Handler) {
	r.Get("/", h.Index)
	r.Get("/new", h.New)
	r.Post("/", h.Create)
	r.Post("/return/:id", h.Return)
	r.Post("/delete/:id", h.Delete)
}
