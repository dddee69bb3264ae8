package api

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jkettunen/finweather/internal/cities"
	"github.com/jkettunen/finweather/internal/scheduler"
	"github.com/jkettunen/finweather/internal/services"
)

type Handler struct {
	service   *services.Service
	directory *cities.Directory
	probe     *scheduler.UpstreamProbe
	validate  *validator.Validate
	logger    *zap.Logger
	startTime time.Time
}

// NewHandler builds the HTTP handlers. probe may be nil when the mock
// provider is active and no upstream exists to watch.
func NewHandler(service *services.Service, directory *cities.Directory, probe *scheduler.UpstreamProbe, logger *zap.Logger) *Handler {
	return &Handler{
		service:   service,
		directory: directory,
		probe:     probe,
		validate:  validator.New(),
		logger:    logger,
		startTime: time.Now(),
	}
}

type cityCodeParam struct {
	Code string `validate:"required,min=1,max=64"`
}

// GetWeatherByCity handles GET /weather/:cityCode
func (h *Handler) GetWeatherByCity(c *fiber.Ctx) error {
	param := cityCodeParam{Code: c.Params("cityCode")}
	if err := h.validate.Struct(param); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid city code",
		})
	}

	h.logger.Info("fetching weather", zap.String("city_code", param.Code))

	report, err := h.service.GetWeatherByCityCode(c.Context(), param.Code)
	if err != nil {
		if errors.Is(err, services.ErrCityNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "City not found: " + param.Code,
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Weather data temporarily unavailable",
		})
	}

	return c.JSON(report)
}

// GetCities handles GET /weather/cities
func (h *Handler) GetCities(c *fiber.Ctx) error {
	return c.JSON(h.directory.All())
}

// GetHealth handles GET /health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	resp := fiber.Map{
		"status":    "ok",
		"provider":  h.service.Provider(),
		"cities":    h.directory.Len(),
		"uptime":    time.Since(h.startTime).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if h.probe != nil {
		if last, ok := h.probe.Last(); ok {
			resp["upstream"] = last
			if !last.Healthy {
				resp["status"] = "degraded"
			}
		} else {
			resp["upstream"] = "pending"
		}
	}

	return c.JSON(resp)
}
