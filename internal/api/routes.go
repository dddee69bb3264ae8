package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *Handler) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} ${pid} ${locals:requestid} ${status} - ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))

	// The literal route must be registered before the parameter route so
	// "cities" is never read as a city code.
	weather := app.Group("/weather")
	weather.Get("/cities", handler.GetCities)
	weather.Get("/:cityCode", handler.GetWeatherByCity)

	app.Get("/health", handler.GetHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
			"path":  c.Path(),
		})
	})
}
