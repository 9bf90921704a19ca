package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shelfwise/shelfwise/internal/config"
	"github.com/shelfwise/shelfwise/internal/session"
)

// User-facing messages rendered into the login and register screens. These
// deliberately mirror the historical wording, including the distinct
// not-found vs wrong-password messages.
const (
	msgUserNotFound    = "User not found"
	msgInvalidPassword = "Invalid password"
	msgUserExists      = "User already exists"
	msgServerError     = "Server error. Please try again."
	msgMissingFields   = "Email and password are required"
)

// Handler serves the login, register and logout screens.
type Handler struct {
	svc      *Service
	sessions session.Store
	cfg      config.Config
	logger   *slog.Logger
}

// NewHandler creates the auth handler.
func NewHandler(svc *Service, sessions session.Store, cfg config.Config, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, sessions: sessions, cfg: cfg, logger: logger}
}

// Home redirects the root path to the books list for signed-in visitors and
// to the login screen for everyone else.
func (h *Handler) Home(c *fiber.Ctx) error {
	token := c.Cookies(h.cfg.CookieName)
	if token != "" {
		if _, err := h.sessions.Get(c.UserContext(), token); err == nil {
			return c.Redirect("/books", http.StatusFound)
		}
	}
	return c.Redirect("/login", http.StatusFound)
}

// ShowLogin renders the login form.
func (h *Handler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// ShowRegister renders the registration form.
func (h *Handler) ShowRegister(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{})
}

type loginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Login handles the login form submission.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).Render("login", fiber.Map{"ErrorMessage": msgMissingFields})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).Render("login", fiber.Map{"ErrorMessage": msgMissingFields})
	}

	_, token, err := h.svc.Login(c.UserContext(), req.Email, req.Password)
	switch {
	case err == nil:
		h.setSessionCookie(c, token)
		return c.Redirect("/books", http.StatusFound)
	case errors.Is(err, ErrUserNotFound):
		return c.Render("login", fiber.Map{"ErrorMessage": msgUserNotFound})
	case errors.Is(err, ErrInvalidPassword):
		return c.Render("login", fiber.Map{"ErrorMessage": msgInvalidPassword})
	default:
		h.logger.Error("login failed", slog.String("email", req.Email), slog.Any("error", err))
		return c.Status(http.StatusInternalServerError).Render("login", fiber.Map{"ErrorMessage": msgServerError})
	}
}

type registerRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Register handles the registration form submission. A successful
// registration signs the new account in and redirects to the login screen,
// matching the historical flow.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).Render("register", fiber.Map{"ErrorMessage": msgMissingFields})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).Render("register", fiber.Map{"ErrorMessage": msgMissingFields})
	}

	_, token, err := h.svc.Register(c.UserContext(), strings.TrimSpace(req.Name), req.Email, req.Password)
	switch {
	case err == nil:
		h.setSessionCookie(c, token)
		return c.Redirect("/login", http.StatusFound)
	case errors.Is(err, ErrUserExists):
		return c.Render("register", fiber.Map{"ErrorMessage": msgUserExists})
	default:
		h.logger.Error("register failed", slog.String("email", req.Email), slog.Any("error", err))
		return c.Status(http.StatusInternalServerError).Render("register", fiber.Map{"ErrorMessage": msgServerError})
	}
}

// Logout destroys the current session and clears the cookie. Visiting logout
// without a session still lands on the login screen.
func (h *Handler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(h.cfg.CookieName)
	if err := h.svc.Logout(c.UserContext(), token); err != nil {
		h.logger.Error("logout failed", slog.Any("error", err))
		return c.Status(http.StatusInternalServerError).SendString("Failed to log out.")
	}
	h.clearSessionCookie(c)
	return c.Redirect("/login", http.StatusFound)
}

func (h *Handler) setSessionCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.SessionSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if h.cfg.SessionTTL > 0 {
		cookie.MaxAge = int(h.cfg.SessionTTL.Seconds())
		cookie.Expires = time.Now().Add(h.cfg.SessionTTL)
	}
	c.Cookie(cookie)
}

func (h *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.SessionSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
