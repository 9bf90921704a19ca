package borrowings

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shelfwise/shelfwise/internal/books"
	"github.com/shelfwise/shelfwise/internal/members"
)

// Handler serves the borrowing screens.
type Handler struct {
	svc     *Service
	books   books.Repository
	members members.Repository
	logger  *slog.Logger
}

// NewHandler creates the borrowing handler.
func NewHandler(svc *Service, bookRepo books.Repository, memberRepo members.Repository, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, books: bookRepo, members: memberRepo, logger: logger}
}

type borrowingForm struct {
	BookID   string `form:"bookId"`
	MemberID string `form:"memberId"`
	DueDate  string `form:"dueDate"`
}

// Index lists borrowings with book and member names.
func (h *Handler) Index(c *fiber.Ctx) error {
	list, err := h.svc.ListDetails(c.UserContext())
	if err != nil {
		h.logger.Error("list borrowings", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Server error")
	}
	return c.Render("borrowings/index", fiber.Map{"Borrowings": list})
}

// New renders the checkout form with book and member choices.
func (h *Handler) New(c *fiber.Ctx) error {
	bookList, err := h.books.List(c.UserContext())
	if err != nil {
		h.logger.Error("list books", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Server error")
	}
	memberList, err := h.members.List(c.UserContext())
	if err != nil {
		h.logger.Error("list members", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Server error")
	}
	return c.Render("borrowings/new", fiber.Map{"Books": bookList, "Members": memberList})
}

// Create checks out a book.
func (h *Handler) Create(c *fiber.Ctx) error {
	var form borrowingForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).SendString("Invalid form submission")
	}

	in := CreateInput{
		BookID:   strings.TrimSpace(form.BookID),
		MemberID: strings.TrimSpace(form.MemberID),
	}
	if raw := strings.TrimSpace(form.DueDate); raw != "" {
		due, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).SendString("Invalid due date")
		}
		in.DueDate = due
	}

	_, err := h.svc.Create(c.UserContext(), in)
	switch {
	case err == nil:
		return c.Redirect("/borrowings", http.StatusFound)
	case errors.Is(err, ErrUnknownBook):
		return c.Status(http.StatusNotFound).SendString("Book not found")
	case errors.Is(err, ErrUnknownMember):
		return c.Status(http.StatusNotFound).SendString("Member not found")
	default:
		h.logger.Error("create borrowing", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Error creating borrowing")
	}
}

// Return marks a borrowing as returned.
func (h *Handler) Return(c *fiber.Ctx) error {
	if err := h.svc.Return(c.UserContext(), c.Params("id")); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect("/borrowings", http.StatusFound)
}

// Delete removes a borrowing record.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect("/borrowings", http.StatusFound)
}

func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).SendString("Borrowing not found")
	}
	h.logger.Error("borrowing store failure", slog.Any("error", err))
	return fiber.NewError(http.StatusInternalServerError, "Server error")
}
