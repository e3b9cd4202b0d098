package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-chat-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Chat     *handlers.ChatHandler
	Cases    *handlers.CasesHandler
	Sessions *handlers.SessionsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/chat", cfg.Chat.Handle)

	cases := api.Group("/cases")
	cases.Post("/", cfg.Cases.Create)
	cases.Post("/escalate", cfg.Cases.Escalate)
	cases.Get("/", cfg.Cases.List)
	// Static paths register before :id so they are not swallowed by it.
	cases.Get("/export", cfg.Cases.ExportAll)
	cases.Get("/qrcode", cfg.Cases.QRCode)
	cases.Get("/:id", cfg.Cases.Get)
	cases.Patch("/:id/status", cfg.Cases.UpdateStatus)
	cases.Get("/:id/export", cfg.Cases.Export)

	api.Post("/chat/messages", cfg.Sessions.SaveMessage)

	sessions := api.Group("/chat/sessions")
	sessions.Post("/", cfg.Sessions.CreateSession)
	sessions.Get("/", cfg.Sessions.ListSessions)
	sessions.Get("/search", cfg.Sessions.SearchSessions)
	sessions.Get("/bookmarked", cfg.Sessions.ListBookmarked)
	sessions.Get("/:id", cfg.Sessions.GetSession)
	sessions.Patch("/:id/bookmark", cfg.Sessions.Bookmark)
	sessions.Patch("/:id/title", cfg.Sessions.Rename)
	sessions.Delete("/:id", cfg.Sessions.DeleteSession)
	sessions.Get("/:id/export", cfg.Sessions.Export)
}
