package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sportstats/internal/api/http/handlers"
	"github.com/spec-kit/sportstats/internal/auth"
	"github.com/spec-kit/sportstats/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Teams       *handlers.TeamsHandler
	Players     *handlers.PlayersHandler
	Data        *handlers.DataHandler
	Views       *handlers.ViewsHandler
	Preferences *handlers.PreferencesHandler
	Live        *handlers.LiveHandler
	// AuthMiddleware guards mutating routes. Nil leaves them open.
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	if cfg.AuthMiddleware != nil && cfg.Auth != nil {
		app.Post("/auth/token", cfg.Auth.Token)
	}

	editor := func(h fiber.Handler) []fiber.Handler {
		if cfg.AuthMiddleware == nil {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleEditor), h}
	}

	api := app.Group("/api")

	api.Get("/teams", cfg.Teams.List)
	api.Post("/teams", editor(cfg.Teams.Create)...)
	api.Get("/teams/:name", cfg.Teams.Get)
	api.Patch("/teams/:name", editor(cfg.Teams.Update)...)

	api.Get("/players", cfg.Players.List)
	api.Post("/players", editor(cfg.Players.Create)...)
	api.Get("/players/:name", cfg.Players.Get)
	api.Patch("/players/:name", editor(cfg.Players.Update)...)

	api.Post("/sample", editor(cfg.Data.Sample)...)
	api.Get("/export", cfg.Data.Export)
	api.Post("/import", editor(cfg.Data.Import)...)

	api.Get("/dashboard", cfg.Views.Dashboard)
	api.Get("/dashboard/summary", cfg.Views.Summary)
	api.Get("/dashboard/options", cfg.Views.Options)
	api.Get("/charts/runs", cfg.Views.RunsChart)
	api.Get("/charts/win-rate", cfg.Views.WinRateChart)
	api.Get("/charts/radar", cfg.Views.RadarChart)
	api.Get("/charts/comparison", cfg.Views.Comparison)
	api.Get("/map", cfg.Views.Map)
	api.Get("/report", cfg.Views.Report)

	api.Get("/preferences/theme", cfg.Preferences.GetTheme)
	api.Put("/preferences/theme", editor(cfg.Preferences.PutTheme)...)

	api.Get("/live/clock", cfg.Live.Clock)
	api.Get("/live/scores", cfg.Live.Scores)
}
