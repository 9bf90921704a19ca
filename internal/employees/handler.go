package employees

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler serves the employee screens.
type Handler struct {
	repo   Repository
	logger *slog.Logger
}

// NewHandler creates the employee handler.
func NewHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

type employeeForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Position string `form:"position"`
}

// Index lists employees.
func (h *Handler) Index(c *fiber.Ctx) error {
	list, err := h.repo.List(c.UserContext())
	if err != nil {
		h.logger.Error("list employees", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Server error")
	}
	return c.Render("employees/index", fiber.Map{"Employees": list})
}

// New renders the creation form.
func (h *Handler) New(c *fiber.Ctx) error {
	return c.Render("employees/new", fiber.Map{})
}

// Create adds an employee and returns to the list.
func (h *Handler) Create(c *fiber.Ctx) error {
	var form employeeForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("employees/new", fiber.Map{"ErrorMessage": "Invalid form submission"})
	}
	if strings.TrimSpace(form.Name) == "" {
		return c.Status(http.StatusBadRequest).Render("employees/new", fiber.Map{"ErrorMessage": "Name is required"})
	}

	employee := Employee{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		Position:  strings.TrimSpace(form.Position),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Create(c.UserContext(), employee); err != nil {
		h.logger.Error("create employee", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Error creating employee")
	}
	return c.Redirect("/employees", http.StatusFound)
}

// Edit renders the edit form for an existing employee.
func (h *Handler) Edit(c *fiber.Ctx) error {
	employee, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render("employees/edit", fiber.Map{"Employee": employee})
}

// Update applies the edit form and returns to the list.
func (h *Handler) Update(c *fiber.Ctx) error {
	employee, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}

	var form employeeForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("employees/edit", fiber.Map{"Employee": employee, "ErrorMessage": "Invalid form submission"})
	}

	employee.Name = strings.TrimSpace(form.Name)
	employee.Email = strings.TrimSpace(form.Email)
	employee.Phone = strings.TrimSpace(form.Phone)
	employee.Position = strings.TrimSpace(form.Position)

	if err := h.repo.Update(c.UserContext(), employee); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect("/employees", http.StatusFound)
}

// Delete removes an employee and returns to the list.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect("/employees", http.StatusFound)
}

func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).SendString("Employee not found")
	}
	h.logger.Error("employee store failure", slog.Any("error", err))
	return fiber.NewError(http.StatusInternalServerError, "Server error")
}
