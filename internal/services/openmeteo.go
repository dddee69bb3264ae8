package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jkettunen/finweather/internal/metrics"
	"github.com/jkettunen/finweather/internal/models"
	"github.com/jkettunen/finweather/pkg/client"
)

// OpenMeteoProvider fetches real forecasts from the Open-Meteo API and
// normalizes them into the domain model.
type OpenMeteoProvider struct {
	client *client.OpenMeteoClient
	logger *zap.Logger
}

func NewOpenMeteoProvider(c *client.OpenMeteoClient, logger *zap.Logger) *OpenMeteoProvider {
	return &OpenMeteoProvider{client: c, logger: logger}
}

func (p *OpenMeteoProvider) Name() string { return "openmeteo" }

func (p *OpenMeteoProvider) FetchHourly(ctx context.Context, city models.City) (models.WeatherData, error) {
	start := time.Now()
	resp, err := p.client.GetHourlyForecast(ctx, city.Latitude, city.Longitude)
	metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return models.WeatherData{}, err
	}

	report, err := reportFromResponse(city, resp)
	if err != nil {
		return models.WeatherData{}, err
	}

	p.logger.Debug("normalized upstream forecast",
		zap.String("city", city.Name),
		zap.String("timezone", resp.Timezone),
		zap.Int("hours", len(report.HourlyWeather)))

	return report, nil
}
