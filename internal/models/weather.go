package models

import (
	"errors"
	"fmt"
	"strings"
)

// City is a forecast location with validated coordinates.
type City struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCity builds a City, rejecting blank names and out-of-range coordinates.
func NewCity(name string, latitude, longitude float64) (City, error) {
	if strings.TrimSpace(name) == "" {
		return City{}, errors.New("city name cannot be blank")
	}
	if latitude < -90 || latitude > 90 {
		return City{}, fmt.Errorf("latitude %v outside [-90, 90]", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return City{}, fmt.Errorf("longitude %v outside [-180, 180]", longitude)
	}
	return City{Name: name, Latitude: latitude, Longitude: longitude}, nil
}

// MustCity is like NewCity but panics on invalid input. It backs the static
// city table.
func MustCity(name string, latitude, longitude float64) City {
	city, err := NewCity(name, latitude, longitude)
	if err != nil {
		panic(err)
	}
	return city
}

// HourlyWeather is a single hour of forecast data. Time keeps the upstream
// minute-precision layout (2006-01-02T15:04) as an opaque string.
type HourlyWeather struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weatherCode"`
}

// NewHourlyWeather builds an HourlyWeather, rejecting blank timestamps and
// weather codes outside the WMO range.
func NewHourlyWeather(timestamp string, temperature float64, weatherCode int) (HourlyWeather, error) {
	if strings.TrimSpace(timestamp) == "" {
		return HourlyWeather{}, errors.New("hourly timestamp cannot be blank")
	}
	if weatherCode < 0 || weatherCode > 99 {
		return HourlyWeather{}, fmt.Errorf("weather code %d outside [0, 99]", weatherCode)
	}
	return HourlyWeather{Time: timestamp, Temperature: temperature, WeatherCode: weatherCode}, nil
}

// Description maps the WMO weather code to a human readable condition.
func (h HourlyWeather) Description() string {
	switch {
	case h.WeatherCode == 0:
		return "Clear sky"
	case h.WeatherCode >= 1 && h.WeatherCode <= 3:
		return "Partly cloudy"
	case h.WeatherCode == 45 || h.WeatherCode == 48:
		return "Foggy"
	case h.WeatherCode >= 51 && h.WeatherCode <= 67:
		return "Rainy"
	case h.WeatherCode >= 71 && h.WeatherCode <= 77:
		return "Snow"
	case h.WeatherCode >= 80 && h.WeatherCode <= 99:
		return "Thunderstorm"
	default:
		return "Unknown weather condition"
	}
}

// FormattedTemperature renders the temperature for display, e.g. "21.3°C".
func (h HourlyWeather) FormattedTemperature() string {
	return fmt.Sprintf("%.1f°C", h.Temperature)
}

// WeatherData is a city forecast normalized into hourly records, the shape
// every provider produces and the API serves.
type WeatherData struct {
	CityName      string          `json:"cityName"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	HourlyWeather []HourlyWeather `json:"hourlyWeather"`
}

// NewWeatherData builds a WeatherData. The hourly slice is copied so callers
// cannot mutate the report after construction.
func NewWeatherData(cityName string, latitude, longitude float64, hourly []HourlyWeather) (WeatherData, error) {
	if strings.TrimSpace(cityName) == "" {
		return WeatherData{}, errors.New("city name cannot be blank")
	}
	records := make([]HourlyWeather, len(hourly))
	copy(records, hourly)
	return WeatherData{
		CityName:      cityName,
		Latitude:      latitude,
		Longitude:     longitude,
		HourlyWeather: records,
	}, nil
}

// Current returns the first hourly record. ok is false when the forecast is
// empty.
func (w WeatherData) Current() (HourlyWeather, bool) {
	if len(w.HourlyWeather) == 0 {
		return HourlyWeather{}, false
	}
	return w.HourlyWeather[0], true
}

// AverageTemperature returns the mean temperature across all hourly records.
// ok is false when the forecast is empty.
func (w WeatherData) AverageTemperature() (float64, bool) {
	if len(w.HourlyWeather) == 0 {
		return 0, false
	}
	var sum float64
	for _, h := range w.HourlyWeather {
		sum += h.Temperature
	}
	return sum / float64(len(w.HourlyWeather)), true
}
