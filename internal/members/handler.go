package members

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler serves the member screens.
type Handler struct {
	repo   Repository
	logger *slog.Logger
}

// NewHandler creates the member handler.
func NewHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

type memberForm struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
}

// Index lists members.
func (h *Handler) Index(c *fiber.Ctx) error {
	list, err := h.repo.List(c.UserContext())
	if err != nil {
		h.logger.Error("list members", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Server error")
	}
	return c.Render("members/index", fiber.Map{"Members": list})
}

// New renders the creation form.
func (h *Handler) New(c *fiber.Ctx) error {
	return c.Render("members/new", fiber.Map{})
}

// Create registers a member and returns to the list.
func (h *Handler) Create(c *fiber.Ctx) error {
	var form memberForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("members/new", fiber.Map{"ErrorMessage": "Invalid form submission"})
	}
	if strings.TrimSpace(form.Name) == "" {
		return c.Status(http.StatusBadRequest).Render("members/new", fiber.Map{"ErrorMessage": "Name is required"})
	}

	member := Member{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Create(c.UserContext(), member); err != nil {
		h.logger.Error("create member", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Error creating member")
	}
	return c.Redirect("/members", http.StatusFound)
}

// Edit renders the edit form for an existing member.
func (h *Handler) Edit(c *fiber.Ctx) error {
	member, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render("members/edit", fiber.Map{"Member": member})
}

// Update applies the edit form and returns to the list.
func (h *Handler) Update(c *fiber.Ctx) error {
	member, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}

	var form memberForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("members/edit", fiber.Map{"Member": member, "ErrorMessage": "Invalid form submission"})
	}

	member.Name = strings.TrimSpace(form.Name)
	member.Email = strings.TrimSpace(form.Email)
	member.Phone = strings.TrimSpace(form.Phone)

	if err := h.repo.Update(c.UserContext(), member); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect("/members", http.StatusFound)
}

// Delete removes a member and returns to the list.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect("/members", http.StatusFound)
}

func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).SendString("Member not found")
	}
	h.logger.Error("member store failure", slog.Any("error", err))
	return fiber.NewError(http.StatusInternalServerError, "Server error")
}
