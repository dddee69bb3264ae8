package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jkettunen/finweather/internal/metrics"
	"github.com/jkettunen/finweather/internal/models"
)

// hourlyTimeLayout is the minute-precision layout the upstream API uses for
// hourly timestamps.
const hourlyTimeLayout = "2006-01-02T15:04"

const mockHours = 24

// randSource supplies the random draws of the generator. Implementations
// must be safe for concurrent use.
type randSource interface {
	Float64() float64
	Intn(n int) int
}

// lockedRand guards a rand.Rand so concurrent requests can share one source.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}

// MockGenerator synthesizes plausible forecasts without any network calls.
// Temperatures follow latitude and season, weather codes follow a fixed
// probability split.
type MockGenerator struct {
	rand   randSource
	now    func() time.Time
	logger *zap.Logger
}

func NewMockGenerator(logger *zap.Logger) *MockGenerator {
	return &MockGenerator{
		rand:   &lockedRand{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))},
		now:    time.Now,
		logger: logger,
	}
}

func (g *MockGenerator) Name() string { return "mock" }

// FetchHourly generates a 24-hour forecast starting at the current time,
// stepping one hour per record. It never fails for a valid city.
func (g *MockGenerator) FetchHourly(ctx context.Context, city models.City) (models.WeatherData, error) {
	start := g.now()
	month := start.Month()

	records := make([]models.HourlyWeather, 0, mockHours)
	for i := 0; i < mockHours; i++ {
		records = append(records, models.HourlyWeather{
			Time:        start.Add(time.Duration(i) * time.Hour).Format(hourlyTimeLayout),
			Temperature: g.temperature(city.Latitude, month),
			WeatherCode: g.weatherCode(),
		})
	}

	report, err := models.NewWeatherData(city.Name, city.Latitude, city.Longitude, records)
	if err != nil {
		return models.WeatherData{}, err
	}

	metrics.MockReports.Inc()
	g.logger.Debug("generated mock forecast",
		zap.String("city", city.Name),
		zap.Int("hours", len(records)))

	return report, nil
}

// temperature models a northern-latitude climate. The base is 20°C at
// latitude 60 minus 2°C per degree north, adjusted by season and a uniform
// [-3, +3) draw per hour.
func (g *MockGenerator) temperature(latitude float64, month time.Month) float64 {
	base := 20 - (latitude-60)*2
	base += seasonalAdjustment(month)
	return base + (g.rand.Float64()-0.5)*6
}

func seasonalAdjustment(month time.Month) float64 {
	switch month {
	case time.December, time.January, time.February:
		return -15
	case time.March, time.April, time.May:
		return -5
	case time.June, time.July, time.August:
		return 5
	default:
		return -2
	}
}

// weatherCode draws a WMO code: 40% clear or partly cloudy, 20% fog,
// 20% drizzle or rain, 10% snow, 10% showers and thunderstorms.
func (g *MockGenerator) weatherCode() int {
	r := g.rand.Float64()
	switch {
	case r < 0.4:
		return g.rand.Intn(4)
	case r < 0.6:
		return 45 + g.rand.Intn(4)
	case r < 0.8:
		return 51 + g.rand.Intn(17)
	case r < 0.9:
		return 71 + g.rand.Intn(7)
	default:
		return 80 + g.rand.Intn(20)
	}
}
