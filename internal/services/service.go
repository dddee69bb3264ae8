package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jkettunen/finweather/internal/cities"
	"github.com/jkettunen/finweather/internal/metrics"
	"github.com/jkettunen/finweather/internal/models"
)

var (
	// ErrCityNotFound reports a city code missing from the directory.
	ErrCityNotFound = errors.New("city not found")

	// ErrUpstreamUnavailable reports that the provider could not deliver a
	// forecast. The cause is logged, not returned.
	ErrUpstreamUnavailable = errors.New("weather data unavailable")
)

// Provider delivers a 24-hour forecast for a city. Implementations must be
// safe for concurrent use.
type Provider interface {
	Name() string
	FetchHourly(ctx context.Context, city models.City) (models.WeatherData, error)
}

// Service resolves city codes and fetches forecasts from the provider
// selected at startup.
type Service struct {
	directory *cities.Directory
	provider  Provider
	logger    *zap.Logger
}

func NewService(directory *cities.Directory, provider Provider, logger *zap.Logger) *Service {
	return &Service{
		directory: directory,
		provider:  provider,
		logger:    logger,
	}
}

// Provider returns the name of the active forecast provider.
func (s *Service) Provider() string {
	return s.provider.Name()
}

// GetWeatherByCityCode returns the forecast for a city code, matched
// case-insensitively. Unknown codes yield ErrCityNotFound; provider failures
// of any kind yield ErrUpstreamUnavailable.
func (s *Service) GetWeatherByCityCode(ctx context.Context, code string) (models.WeatherData, error) {
	normalized := strings.ToLower(code)

	city, ok := s.directory.Lookup(normalized)
	if !ok {
		metrics.CityNotFound.Inc()
		s.logger.Warn("unknown city code", zap.String("code", normalized))
		return models.WeatherData{}, fmt.Errorf("%w: %s", ErrCityNotFound, normalized)
	}

	report, err := s.provider.FetchHourly(ctx, city)
	if err != nil {
		metrics.UpstreamFailures.Inc()
		s.logger.Error("forecast fetch failed",
			zap.String("city", city.Name),
			zap.String("provider", s.provider.Name()),
			zap.Error(err))
		return models.WeatherData{}, fmt.Errorf("%w for %s", ErrUpstreamUnavailable, city.Name)
	}

	metrics.ReportsServed.WithLabelValues(s.provider.Name()).Inc()
	return report, nil
}
