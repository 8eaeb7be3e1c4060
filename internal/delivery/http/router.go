package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/weathermate/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, adviceSvc *service.AdviceService, repo service.LookupRepository) {
	handler := NewHandler(adviceSvc, repo)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/advice", handler.GetAdvice)
		api.Get("/lookups", handler.GetLookups)
		api.Get("/rules", handler.GetRules)
	}
}
