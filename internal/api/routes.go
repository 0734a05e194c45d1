package api

import (
	"github.com/bilgisen/geopulse/internal/cache"
	"github.com/bilgisen/geopulse/internal/config"
	"github.com/bilgisen/geopulse/internal/fetch"
	"github.com/bilgisen/geopulse/internal/middleware"
	"github.com/bilgisen/geopulse/internal/risk"
	"github.com/bilgisen/geopulse/internal/service"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires the fetchers, aggregator, and service into the
// fiber app and registers all endpoints.
func SetupRoutes(app *fiber.App, store cache.Store, cfg *config.Config) {
	model := risk.NewModel()
	aggregator := fetch.NewAggregator(
		fetch.NewFactsClient(cfg, model),
		fetch.NewWeatherClient(cfg),
		fetch.NewNewsClient(cfg),
	)
	svc := service.NewCountryService(store, aggregator, cfg.CacheFreshness)
	handlers := NewHandlers(cfg, svc, store)

	// Health endpoints
	health := app.Group("/health")
	{
		health.Get("", handlers.HealthCheck)
		health.Get("/status", handlers.HealthStatus)
	}

	// Country endpoints. Search is registered before the name route so
	// "search" is never read as a country name.
	countries := app.Group("/countries")
	{
		countries.Get("/search", handlers.SearchCountries)
		countries.Get("/:countryName", middleware.ValidateCountryName(), handlers.GetCountry)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
