package api

import (
	"context"
	"time"

	"github.com/bilgisen/geopulse/internal/apperr"
	"github.com/bilgisen/geopulse/internal/cache"
	"github.com/bilgisen/geopulse/internal/config"
	"github.com/bilgisen/geopulse/internal/logger"
	"github.com/bilgisen/geopulse/internal/middleware"
	"github.com/bilgisen/geopulse/internal/service"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	config  *config.Config
	service *service.CountryService
	store   cache.Store
}

func NewHandlers(cfg *config.Config, svc *service.CountryService, store cache.Store) *Handlers {
	return &Handlers{
		config:  cfg,
		service: svc,
		store:   store,
	}
}

// GetCountry handles GET /countries/:countryName
func (h *Handlers) GetCountry(c *fiber.Ctx) error {
	countryName := c.Locals(middleware.CountryNameLocal).(string)

	record, err := h.service.GetCountry(c.Context(), countryName)
	if err != nil {
		kind, _ := apperr.KindOf(err)
		switch kind {
		case apperr.KindNotFound:
			logger.Get().Info().
				Str("country", countryName).
				Msg("Country not found")
			return c.Status(fiber.StatusNotFound).
				JSON(service.ErrorRecord(countryName, err.Error()))
		default:
			logger.Get().Error().
				Err(err).
				Str("country", countryName).
				Msg("Error processing country request")
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(service.ErrorRecord(countryName, "Service temporarily unavailable. Please try again."))
		}
	}

	return c.JSON(record)
}

// SearchCountries handles GET /countries/search
func (h *Handlers) SearchCountries(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter is required",
		})
	}

	return c.JSON(h.service.Search(query))
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "UP",
		"service":   "GeoPulse Backend",
		"version":   "1.0.0",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// HealthStatus handles GET /health/status with per-dependency checks.
func (h *Handlers) HealthStatus(c *fiber.Ctx) error {
	status := fiber.Map{
		"countries_api": "AVAILABLE",
		"weather_api":   "AVAILABLE",
		"news_feeds":    "OPERATIONAL",
		"overall":       "HEALTHY",
	}

	status["cache"] = "CONNECTED"
	if pinger, ok := h.store.(interface{ Ping(ctx context.Context) error }); ok {
		if err := pinger.Ping(c.Context()); err != nil {
			status["cache"] = "UNAVAILABLE"
			status["overall"] = "DEGRADED"
		}
	}

	return c.JSON(status)
}
