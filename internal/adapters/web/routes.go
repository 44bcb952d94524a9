package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers, rateLimiter *RateLimiter) {
	app.Get("/health", handlers.Health)

	api := app.Group("/api")
	api.Get("/stats", handlers.Stats)

	// Classification endpoints are the only rate-limited surface.
	classifyGroup := api.Group("/classify", rateLimiter.Middleware())
	classifyGroup.Post("/x", handlers.ClassifyX)
	classifyGroup.Post("/youtube", handlers.ClassifyYouTube)
}
