package models

import (
	"math"
	"testing"
)

func TestNewCityValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cityName  string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{name: "valid", cityName: "Helsinki", latitude: 60.1699, longitude: 24.9384, wantErr: false},
		{name: "blank name", cityName: "", latitude: 60, longitude: 24, wantErr: true},
		{name: "whitespace name", cityName: "   ", latitude: 60, longitude: 24, wantErr: true},
		{name: "latitude too low", cityName: "Nowhere", latitude: -90.01, longitude: 0, wantErr: true},
		{name: "latitude too high", cityName: "Nowhere", latitude: 90.01, longitude: 0, wantErr: true},
		{name: "latitude at bound", cityName: "Pole", latitude: 90, longitude: 0, wantErr: false},
		{name: "longitude too low", cityName: "Nowhere", latitude: 0, longitude: -180.01, wantErr: true},
		{name: "longitude too high", cityName: "Nowhere", latitude: 0, longitude: 180.01, wantErr: true},
		{name: "longitude at bound", cityName: "Dateline", latitude: 0, longitude: -180, wantErr: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			city, err := NewCity(tt.cityName, tt.latitude, tt.longitude)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewCity(%q, %v, %v) expected error, got %+v", tt.cityName, tt.latitude, tt.longitude, city)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCity(%q, %v, %v) unexpected error: %v", tt.cityName, tt.latitude, tt.longitude, err)
			}
			if city.Name != tt.cityName || city.Latitude != tt.latitude || city.Longitude != tt.longitude {
				t.Errorf("NewCity returned %+v, want fields echoed back", city)
			}
		})
	}
}

func TestMustCityPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("MustCity with invalid latitude did not panic")
		}
	}()
	MustCity("Broken", 123, 0)
}

func TestNewHourlyWeatherValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		time    string
		code    int
		wantErr bool
	}{
		{name: "valid", time: "2026-01-15T12:00", code: 0, wantErr: false},
		{name: "max code", time: "2026-01-15T12:00", code: 99, wantErr: false},
		{name: "blank time", time: "", code: 0, wantErr: true},
		{name: "whitespace time", time: "  ", code: 0, wantErr: true},
		{name: "negative code", time: "2026-01-15T12:00", code: -1, wantErr: true},
		{name: "code too large", time: "2026-01-15T12:00", code: 100, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewHourlyWeather(tt.time, 5.5, tt.code)
			if tt.wantErr && err == nil {
				t.Fatalf("NewHourlyWeather(%q, 5.5, %d) expected error", tt.time, tt.code)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("NewHourlyWeather(%q, 5.5, %d) unexpected error: %v", tt.time, tt.code, err)
			}
		})
	}
}

func TestDescriptionBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{1, "Partly cloudy"},
		{2, "Partly cloudy"},
		{3, "Partly cloudy"},
		{45, "Foggy"},
		{48, "Foggy"},
		{46, "Unknown weather condition"},
		{47, "Unknown weather condition"},
		{51, "Rainy"},
		{60, "Rainy"},
		{67, "Rainy"},
		{71, "Snow"},
		{77, "Snow"},
		{80, "Thunderstorm"},
		{95, "Thunderstorm"},
		{99, "Thunderstorm"},
		{4, "Unknown weather condition"},
		{44, "Unknown weather condition"},
		{50, "Unknown weather condition"},
		{68, "Unknown weather condition"},
		{70, "Unknown weather condition"},
		{78, "Unknown weather condition"},
		{79, "Unknown weather condition"},
	}

	for _, tt := range tests {
		h := HourlyWeather{Time: "2026-01-15T12:00", WeatherCode: tt.code}
		if got := h.Description(); got != tt.want {
			t.Errorf("Description() for code %d = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFormattedTemperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		temp float64
		want string
	}{
		{21.34, "21.3°C"},
		{-7.96, "-8.0°C"},
		{0, "0.0°C"},
	}

	for _, tt := range tests {
		h := HourlyWeather{Time: "2026-01-15T12:00", Temperature: tt.temp}
		if got := h.FormattedTemperature(); got != tt.want {
			t.Errorf("FormattedTemperature() for %v = %q, want %q", tt.temp, got, tt.want)
		}
	}
}

func TestNewWeatherDataCopiesHourly(t *testing.T) {
	t.Parallel()

	hourly := []HourlyWeather{
		{Time: "2026-01-15T12:00", Temperature: 1, WeatherCode: 0},
		{Time: "2026-01-15T13:00", Temperature: 2, WeatherCode: 3},
	}
	data, err := NewWeatherData("Helsinki", 60.1699, 24.9384, hourly)
	if err != nil {
		t.Fatalf("NewWeatherData: %v", err)
	}

	hourly[0].Temperature = 99
	if data.HourlyWeather[0].Temperature != 1 {
		t.Error("mutating the input slice changed the built WeatherData")
	}
}

func TestNewWeatherDataBlankName(t *testing.T) {
	t.Parallel()

	if _, err := NewWeatherData(" ", 60, 24, nil); err == nil {
		t.Fatal("NewWeatherData with blank city name expected error")
	}
}

func TestCurrentAndAverage(t *testing.T) {
	t.Parallel()

	empty, err := NewWeatherData("Helsinki", 60.1699, 24.9384, nil)
	if err != nil {
		t.Fatalf("NewWeatherData: %v", err)
	}
	if _, ok := empty.Current(); ok {
		t.Error("Current() on empty forecast reported ok")
	}
	if _, ok := empty.AverageTemperature(); ok {
		t.Error("AverageTemperature() on empty forecast reported ok")
	}

	data, err := NewWeatherData("Helsinki", 60.1699, 24.9384, []HourlyWeather{
		{Time: "2026-01-15T12:00", Temperature: -2, WeatherCode: 71},
		{Time: "2026-01-15T13:00", Temperature: 4, WeatherCode: 0},
		{Time: "2026-01-15T14:00", Temperature: 7, WeatherCode: 0},
	})
	if err != nil {
		t.Fatalf("NewWeatherData: %v", err)
	}

	current, ok := data.Current()
	if !ok || current.Time != "2026-01-15T12:00" {
		t.Errorf("Current() = %+v, ok=%v, want first record", current, ok)
	}

	avg, ok := data.AverageTemperature()
	if !ok || math.Abs(avg-3) > 1e-9 {
		t.Errorf("AverageTemperature() = %v, ok=%v, want 3", avg, ok)
	}
}
