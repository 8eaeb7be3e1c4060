package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/weathermate/backend/internal/domain"
	"github.com/weathermate/backend/internal/service"
	"github.com/weathermate/backend/pkg/utils"
)

// Handler contains all HTTP handlers
type Handler struct {
	adviceSvc *service.AdviceService
	repo      service.LookupRepository
}

// NewHandler creates a new handler
func NewHandler(adviceSvc *service.AdviceService, repo service.LookupRepository) *Handler {
	return &Handler{
		adviceSvc: adviceSvc,
		repo:      repo,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status":  status,
		"service": "weathermate-backend",
		"version": "1.0.0",
	})
}

// GetAdvice returns current weather for a city plus recommendations
func (h *Handler) GetAdvice(c *fiber.Ctx) error {
	ctx := c.Context()

	city := c.Query("city")
	if city == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameter 'city' is required")
	}
	region := c.Query("region")

	advice, err := h.adviceSvc.GetAdvice(ctx, city, region)
	if err != nil {
		var fetchErr *domain.FetchError
		switch {
		case errors.As(err, &fetchErr):
			return fiber.NewError(fiber.StatusBadGateway, fetchErr.Error())
		case errors.Is(err, domain.ErrInvalidReading):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch weather advice")
		}
	}

	return c.JSON(domain.AdviceResponse{
		Data:    advice,
		Success: true,
	})
}

// GetLookups returns the most recent advice lookups
func (h *Handler) GetLookups(c *fiber.Ctx) error {
	ctx := c.Context()

	limit := utils.ClampInt(c.QueryInt("limit", 20), 1, 100)

	data, err := h.repo.ListRecentLookups(ctx, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch lookup history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// GetRules returns the recommendation rule tables
func (h *Handler) GetRules(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.adviceSvc.Rules(),
	})
}
