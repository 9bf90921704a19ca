package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/shelfwise/shelfwise/internal/session"
)

const testCookie = "test_session"

func setupGatedApp(t *testing.T) (*fiber.App, session.Store) {
	t.Helper()
	store := session.NewMemoryStore(0)

	app := fiber.New()
	app.Get("/protected", RequireSession(store, testCookie), func(c *fiber.Ctx) error {
		snap, ok := CurrentUser(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendString(snap.Email)
	})

	return app, store
}

func TestRequireSessionWithoutCookie(t *testing.T) {
	app, _ := setupGatedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected %d got %d", http.StatusFound, resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireSessionWithUnknownToken(t *testing.T) {
	app, _ := setupGatedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "never-issued"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected %d got %d", http.StatusFound, resp.StatusCode)
	}
}

func TestRequireSessionWithActiveSession(t *testing.T) {
	app, store := setupGatedApp(t)

	token, err := store.Create(context.Background(), session.Snapshot{UserID: "u1", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, resp.StatusCode)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	if string(payload) != "a@x.com" {
		t.Fatalf("expected snapshot email in response, got %q", payload)
	}
}

func TestRequireSessionAfterDestroy(t *testing.T) {
	app, store := setupGatedApp(t)
	ctx := context.Background()

	token, err := store.Create(ctx, session.Snapshot{UserID: "u1"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected %d got %d", http.StatusFound, resp.StatusCode)
	}
}
