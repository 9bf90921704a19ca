package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shelfwise/shelfwise/internal/books"
)

// RegisterBookRoutes wires the book screens onto a gated router group.
func RegisterBookRoutes(r fiber.Router, h *books.Handler) {
	r.Get("/", h.Index)
	r.Get("/new", h.New)
	r.Post("/", h.Create)
	r.Get("/edit/:id", h.Edit)
	r.Post("/edit/:id", h.Update)
	r.Post("/delete/:id", h.Delete)
	r.Get("/:id", h.Show)
}
