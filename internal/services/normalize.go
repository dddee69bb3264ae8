package services

import (
	"fmt"

	"github.com/jkettunen/finweather/internal/models"
	"github.com/jkettunen/finweather/pkg/client"
)

// alignHourly merges the parallel upstream sequences into hourly records.
// The sequences should be equal length but are not guaranteed to be, so the
// result is truncated to the shortest one. Records that fail validation
// abort the whole merge.
func alignHourly(times []string, temps []float64, codes []int) ([]models.HourlyWeather, error) {
	n := min(len(times), len(temps), len(codes))

	records := make([]models.HourlyWeather, 0, n)
	for i := 0; i < n; i++ {
		record, err := models.NewHourlyWeather(times[i], temps[i], codes[i])
		if err != nil {
			return nil, fmt.Errorf("hourly record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// reportFromResponse normalizes an upstream forecast into the domain model,
// using the directory coordinates rather than the ones echoed upstream.
func reportFromResponse(city models.City, resp *client.ForecastResponse) (models.WeatherData, error) {
	records, err := alignHourly(resp.Hourly.Time, resp.Hourly.Temperature2M, resp.Hourly.WeatherCode)
	if err != nil {
		return models.WeatherData{}, err
	}
	return models.NewWeatherData(city.Name, city.Latitude, city.Longitude, records)
}
