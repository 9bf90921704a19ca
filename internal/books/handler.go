package books

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shelfwise/shelfwise/internal/middleware"
)

// Handler serves the book screens.
type Handler struct {
	repo   Repository
	logger *slog.Logger
}

// NewHandler creates the book handler.
func NewHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

type bookForm struct {
	Title       string `form:"title"`
	Author      string `form:"author"`
	Genre       string `form:"genre"`
	Year        string `form:"publishedYear"`
	Description string `form:"description"`
}

// Index lists the catalog.
func (h *Handler) Index(c *fiber.Ctx) error {
	list, err := h.repo.List(c.UserContext())
	if err != nil {
		h.logger.Error("list books", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Server error")
	}
	user, _ := middleware.CurrentUser(c)
	return c.Render("books/index", fiber.Map{"Books": list, "User": user})
}

// Show renders a single book.
func (h *Handler) Show(c *fiber.Ctx) error {
	book, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render("books/show", fiber.Map{"Book": book})
}

// New renders the creation form.
func (h *Handler) New(c *fiber.Ctx) error {
	return c.Render("books/new", fiber.Map{})
}

// Create adds a catalog entry and returns to the list.
func (h *Handler) Create(c *fiber.Ctx) error {
	var form bookForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("books/new", fiber.Map{"ErrorMessage": "Invalid form submission"})
	}
	if strings.TrimSpace(form.Title) == "" {
		return c.Status(http.StatusBadRequest).Render("books/new", fiber.Map{"ErrorMessage": "Title is required"})
	}

	book := Book{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(form.Title),
		Author:      strings.TrimSpace(form.Author),
		Genre:       strings.TrimSpace(form.Genre),
		Year:        parseYear(form.Year),
		Description: form.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.repo.Create(c.UserContext(), book); err != nil {
		h.logger.Error("create book", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Error creating book")
	}
	return c.Redirect("/books", http.StatusFound)
}

// Edit renders the edit form for an existing book.
func (h *Handler) Edit(c *fiber.Ctx) error {
	book, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render("books/edit", fiber.Map{"Book": book})
}

// Update applies the edit form and returns to the book page.
func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	book, err := h.repo.FindByID(c.UserContext(), id)
	if err != nil {
		return h.renderError(c, err)
	}

	var form bookForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("books/edit", fiber.Map{"Book": book, "ErrorMessage": "Invalid form submission"})
	}

	book.Title = strings.TrimSpace(form.Title)
	book.Author = strings.TrimSpace(form.Author)
	book.Genre = strings.TrimSpace(form.Genre)
	book.Year = parseYear(form.Year)
	book.Description = form.Description

	if err := h.repo.Update(c.UserContext(), book); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect("/books/"+id, http.StatusFound)
}

// Delete removes a book and returns to the list.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect("/books", http.StatusFound)
}

func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).SendString("Book not found")
	}
	h.logger.Error("book store failure", slog.Any("error", err))
	return fiber.NewError(http.StatusInternalServerError, "Server error")
}

func parseYear(raw string) int {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return year
}
