package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shelfwise/shelfwise/internal/auth"
	"github.com/shelfwise/shelfwise/internal/books"
	"github.com/shelfwise/shelfwise/internal/borrowings"
	"github.com/shelfwise/shelfwise/internal/config"
	"github.com/shelfwise/shelfwise/internal/employees"
	"github.com/shelfwise/shelfwise/internal/identity"
	"github.com/shelfwise/shelfwise/internal/members"
	"github.com/shelfwise/shelfwise/internal/middleware"
	"github.com/shelfwise/shelfwise/internal/session"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Stores
	var sessions session.Store
	if d.Cache != nil {
		sessions = session.NewRedisStore(d.Cache, d.Cfg.SessionTTL)
	} else {
		sessions = session.NewMemoryStore(d.Cfg.SessionTTL)
	}

	var userRepo identity.Repository
	var bookRepo books.Repository
	var memberRepo members.Repository
	var employeeRepo employees.Repository
	var borrowingRepo borrowings.Repository
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
		bookRepo = books.NewPostgresRepository(d.DB)
		memberRepo = members.NewPostgresRepository(d.DB)
		employeeRepo = employees.NewPostgresRepository(d.DB)
		borrowingRepo = borrowings.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
		bookRepo = books.NewMemoryRepository()
		memberRepo = members.NewMemoryRepository()
		employeeRepo = employees.NewMemoryRepository()
		borrowingRepo = borrowings.NewMemoryRepository()
	}

	// Services and handlers
	authSvc := auth.NewService(userRepo, sessions)
	authHandler := auth.NewHandler(authSvc, sessions, d.Cfg, d.Logger)
	bookHandler := books.NewHandler(bookRepo, d.Logger)
	memberHandler := members.NewHandler(memberRepo, d.Logger)
	employeeHandler := employees.NewHandler(employeeRepo, d.Logger)
	borrowingSvc := borrowings.NewService(borrowingRepo, bookRepo, memberRepo)
	borrowingHandler := borrowings.NewHandler(borrowingSvc, bookRepo, memberRepo, d.Logger)

	// Public routes
	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(app, authHandler, rateLimiter)

	// Protected routes
	gate := middleware.RequireSession(sessions, d.Cfg.CookieName)
	RegisterBookRoutes(app.Group("/books", gate), bookHandler)
	RegisterEmployeeRoutes(app.Group("/employees", gate), employeeHandler)
	RegisterMemberRoutes(app.Group("/members", gate), memberHandler)
	RegisterBorrowingRoutes(app.Group("/borrowings", gate), borrowingHandler)

	// Unknown routes render the 404 page.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).Render("404", fiber.Map{"ErrorMessage": "Page not found"})
	})

	return nil
}
