package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shelfwise/shelfwise/internal/session"
)

// UserKey is the Locals key under which RequireSession stores the resolved
// session snapshot for downstream handlers.
const UserKey = "session.user"

// RequireSession guards protected routes. A request without a resolvable
// session cookie is redirected to the login screen. The check is read-only:
// it never creates, refreshes or destroys sessions.
func RequireSession(store session.Store, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Redirect("/login", http.StatusFound)
		}

		snap, err := store.Get(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return c.Redirect("/login", http.StatusFound)
			}
			return fiber.NewError(http.StatusInternalServerError, "Server error. Please try again.")
		}

		c.Locals(UserKey, snap)
		return c.Next()
	}
}

// CurrentUser returns the session snapshot stashed by RequireSession.
func CurrentUser(c *fiber.Ctx) (session.Snapshot, bool) {
	snap, ok := c.Locals(UserKey).(session.Snapshot)
	return snap, ok
}
