package services

import (
	"testing"

	"github.com/jkettunen/finweather/pkg/client"
)

func TestAlignHourlyTruncatesToShortest(t *testing.T) {
	t.Parallel()

	times := []string{"2026-01-15T00:00", "2026-01-15T01:00", "2026-01-15T02:00"}
	temps := []float64{-3.5, -4.1}
	codes := []int{71, 73, 75}

	records, err := alignHourly(times, temps, codes)
	if err != nil {
		t.Fatalf("alignHourly: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[1].Time != "2026-01-15T01:00" || records[1].Temperature != -4.1 || records[1].WeatherCode != 73 {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestAlignHourlyEmptySequences(t *testing.T) {
	t.Parallel()

	records, err := alignHourly(nil, nil, nil)
	if err != nil {
		t.Fatalf("alignHourly: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestAlignHourlyRejectsInvalidElements(t *testing.T) {
	t.Parallel()

	if _, err := alignHourly([]string{"2026-01-15T00:00"}, []float64{1}, []int{150}); err == nil {
		t.Error("out-of-range weather code not rejected")
	}
	if _, err := alignHourly([]string{"  "}, []float64{1}, []int{0}); err == nil {
		t.Error("blank timestamp not rejected")
	}
}

func TestReportFromResponse(t *testing.T) {
	t.Parallel()

	city := helsinkiCity(t)
	resp := &client.ForecastResponse{
		// Upstream echoes grid-snapped coordinates, which must not leak
		// into the report.
		Latitude:  60.18,
		Longitude: 24.93,
		Timezone:  "Europe/Helsinki",
		Hourly: client.HourlyData{
			Time:          []string{"2026-01-15T00:00", "2026-01-15T01:00"},
			Temperature2M: []float64{-3.5, -4.1},
			WeatherCode:   []int{71, 73},
		},
	}

	report, err := reportFromResponse(city, resp)
	if err != nil {
		t.Fatalf("reportFromResponse: %v", err)
	}

	if report.CityName != "Helsinki" {
		t.Errorf("CityName = %q", report.CityName)
	}
	if report.Latitude != city.Latitude || report.Longitude != city.Longitude {
		t.Errorf("coordinates = (%v, %v), want directory values (%v, %v)",
			report.Latitude, report.Longitude, city.Latitude, city.Longitude)
	}
	if len(report.HourlyWeather) != 2 {
		t.Fatalf("len(HourlyWeather) = %d, want 2", len(report.HourlyWeather))
	}
	if report.HourlyWeather[0].WeatherCode != 71 {
		t.Errorf("HourlyWeather[0] = %+v", report.HourlyWeather[0])
	}
}
