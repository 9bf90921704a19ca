package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/shelfwise/shelfwise/internal/config"
	"github.com/shelfwise/shelfwise/internal/logging"
	"github.com/shelfwise/shelfwise/internal/views"
)

const cookieName = "shelfwise_session"

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	app := fiber.New(fiber.Config{Views: engine})

	cfg := config.Config{
		AppName:    "Shelfwise",
		AppEnv:     "development",
		CookieName: cookieName,
		SessionTTL: time.Hour,
	}
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return string(payload)
}

func register(t *testing.T, app *fiber.App, name, email, password string) *http.Cookie {
	t.Helper()
	resp := postForm(t, app, "/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	}, nil)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("register: expected %d got %d", http.StatusFound, resp.StatusCode)
	}
	cookie := sessionCookie(resp)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("register: expected a session cookie")
	}
	return cookie
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	app := setupApp(t)

	cookie := register(t, app, "A", "a@x.com", "secret")

	// The fresh session admits the protected area.
	resp := get(t, app, "/books", cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d for protected path, got %d", http.StatusOK, resp.StatusCode)
	}

	// Logout destroys the session and bounces to login.
	resp = get(t, app, "/logout", cookie)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("logout: expected %d got %d", http.StatusFound, resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("logout: expected redirect to /login, got %q", loc)
	}

	// The destroyed session no longer admits protected paths.
	resp = get(t, app, "/books", cookie)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after logout, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	// Logging back in issues a new session.
	resp = postForm(t, app, "/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"secret"},
	}, nil)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login: expected %d got %d", http.StatusFound, resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/books" {
		t.Fatalf("login: expected redirect to /books, got %q", loc)
	}
	if sessionCookie(resp) == nil {
		t.Fatalf("login: expected a session cookie")
	}
}

func TestRegisterDuplicateEmailRendersMessage(t *testing.T) {
	app := setupApp(t)
	register(t, app, "A", "a@x.com", "secret")

	resp := postForm(t, app, "/register", url.Values{
		"name":     {"B"},
		"email":    {"a@x.com"},
		"password": {"other"},
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected re-rendered form, got status %d", resp.StatusCode)
	}
	if !strings.Contains(body(t, resp), "User already exists") {
		t.Fatalf("expected duplicate-email message in response")
	}
}

func TestLoginFailureMessages(t *testing.T) {
	app := setupApp(t)
	register(t, app, "A", "a@x.com", "secret")

	resp := postForm(t, app, "/login", url.Values{
		"email":    {"missing@x.com"},
		"password": {"secret"},
	}, nil)
	if !strings.Contains(body(t, resp), "User not found") {
		t.Fatalf("expected user-not-found message")
	}

	resp = postForm(t, app, "/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	}, nil)
	if !strings.Contains(body(t, resp), "Invalid password") {
		t.Fatalf("expected invalid-password message")
	}
}

func TestHomeRedirects(t *testing.T) {
	app := setupApp(t)

	resp := get(t, app, "/", nil)
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected anonymous root to land on /login, got %q", loc)
	}

	cookie := register(t, app, "A", "a@x.com", "secret")
	resp = get(t, app, "/", cookie)
	if loc := resp.Header.Get("Location"); loc != "/books" {
		t.Fatalf("expected signed-in root to land on /books, got %q", loc)
	}
}

func TestProtectedCrudScreens(t *testing.T) {
	app := setupApp(t)
	cookie := register(t, app, "A", "a@x.com", "secret")

	// Anonymous access to every protected area redirects to login.
	for _, path := range []string{"/books", "/employees", "/members", "/borrowings"} {
		resp := get(t, app, path, nil)
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("%s: expected redirect, got %d", path, resp.StatusCode)
		}
	}

	// Create a book through the form and find it in the list.
	resp := postForm(t, app, "/books", url.Values{
		"title":         {"The Go Programming Language"},
		"author":        {"Donovan"},
		"genre":         {"Programming"},
		"publishedYear": {"2015"},
	}, cookie)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("create book: expected %d got %d", http.StatusFound, resp.StatusCode)
	}

	resp = get(t, app, "/books", cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list books: expected %d got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body(t, resp), "The Go Programming Language") {
		t.Fatalf("expected created book in the list")
	}

	// Member roster works the same way.
	resp = postForm(t, app, "/members", url.Values{"name": {"Reader"}}, cookie)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("create member: expected %d got %d", http.StatusFound, resp.StatusCode)
	}
	resp = get(t, app, "/members", cookie)
	if !strings.Contains(body(t, resp), "Reader") {
		t.Fatalf("expected created member in the list")
	}
}

func TestUnknownRouteRenders404(t *testing.T) {
	app := setupApp(t)

	resp := get(t, app, "/nowhere", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, resp.StatusCode)
	}
	if !strings.Contains(body(t, resp), "Page not found") {
		t.Fatalf("expected 404 page body")
	}
}
