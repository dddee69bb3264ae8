package client

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public Open-Meteo forecast API.
const DefaultBaseURL = "https://api.open-meteo.com/v1"

// OpenMeteoClient fetches hourly forecasts from the Open-Meteo API.
type OpenMeteoClient struct {
	*apiClient
	baseURL string
}

// ForecastResponse is the upstream payload, kept verbatim. Normalization
// into the domain model happens in the service layer.
type ForecastResponse struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Hourly    HourlyData `json:"hourly"`
}

// HourlyData holds the parallel hourly sequences of the upstream payload.
// The three slices are index-aligned.
type HourlyData struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
	WeatherCode   []int     `json:"weather_code"`
}

// NewOpenMeteoClient builds a client against baseURL, which has no trailing
// slash, e.g. "https://api.open-meteo.com/v1".
func NewOpenMeteoClient(baseURL string, cfg Config, logger *zap.Logger) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenMeteoClient{
		apiClient: newAPIClient("openmeteo", cfg, logger),
		baseURL:   baseURL,
	}
}

// GetHourlyForecast fetches the hourly temperature and weather code series
// for the given coordinates.
func (c *OpenMeteoClient) GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*ForecastResponse, error) {
	url := fmt.Sprintf("%s/forecast?latitude=%.4f&longitude=%.4f&hourly=temperature_2m,weather_code&timezone=auto",
		c.baseURL, latitude, longitude)

	data, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching hourly forecast: %w", err)
	}

	var response ForecastResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("parsing forecast response: %w", err)
	}

	c.logger.Debug("fetched hourly forecast",
		zap.Float64("latitude", latitude),
		zap.Float64("longitude", longitude),
		zap.Int("hours", len(response.Hourly.Time)))

	return &response, nil
}

// Ping checks upstream reachability with a minimal one-day forecast for the
// Helsinki reference coordinate.
func (c *OpenMeteoClient) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/forecast?latitude=60.1699&longitude=24.9384&hourly=temperature_2m&forecast_days=1", c.baseURL)
	if _, err := c.get(ctx, url); err != nil {
		return fmt.Errorf("upstream ping: %w", err)
	}
	return nil
}
