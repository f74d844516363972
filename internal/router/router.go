package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/andripeetso/group-calendar-scheduler/internal/handler"
	"github.com/andripeetso/group-calendar-scheduler/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Vote    *handler.VoteHandler
	Results *handler.ResultsHandler
	Roster  *handler.RosterHandler
	Config  *handler.ConfigHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins, adminSecret string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Probes and metrics (no auth)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Public reads
	api.Get("/voters", h.Roster.List)
	api.Get("/overlap", h.Results.GetOverlap)
	api.Get("/overlap/day", h.Results.GetDay)
	api.Get("/window", h.Config.GetWindow)
	api.Get("/window/months", h.Config.GetCalendar)
	api.Get("/header", h.Config.GetHeader)

	// Voting (self-service)
	submitLimiter := middleware.NewSubmitRateLimiter()
	api.Post("/votes", h.Vote.Submit, submitLimiter.Handler())
	api.Delete("/votes", h.Vote.Delete)

	// Admin surface
	admin := api.Group("/admin", middleware.RequireAdmin(adminSecret))
	admin.Post("/voters", h.Roster.Add)
	admin.Delete("/voters", h.Roster.Remove)
	admin.Get("/votes", h.Vote.List)
	admin.Delete("/votes/all", h.Vote.DeleteAll)
	admin.Put("/window", h.Config.SetWindow)
	admin.Put("/header", h.Config.SetHeader)
}
