package cities

import (
	"sort"
	"strings"

	"github.com/jkettunen/finweather/internal/models"
)

// Directory resolves short city codes to their coordinates. It is immutable
// after construction and safe for concurrent readers.
type Directory struct {
	byCode map[string]models.City
}

// New builds a Directory from a code to city mapping. Codes are stored
// lower-cased and the input map is copied.
func New(entries map[string]models.City) *Directory {
	byCode := make(map[string]models.City, len(entries))
	for code, city := range entries {
		byCode[strings.ToLower(code)] = city
	}
	return &Directory{byCode: byCode}
}

// Default returns the directory of supported Finnish cities.
func Default() *Directory {
	return New(map[string]models.City{
		"helsinki":  models.MustCity("Helsinki", 60.1699, 24.9384),
		"espoo":     models.MustCity("Espoo", 60.2055, 24.6559),
		"vantaa":    models.MustCity("Vantaa", 60.2934, 25.0378),
		"turku":     models.MustCity("Turku", 60.4518, 22.2666),
		"tampere":   models.MustCity("Tampere", 61.4978, 23.7610),
		"jyväskylä": models.MustCity("Jyväskylä", 62.2415, 25.7209),
		"kuopio":    models.MustCity("Kuopio", 62.8924, 27.6770),
		"oulu":      models.MustCity("Oulu", 65.0121, 25.4651),
	})
}

// Lookup resolves a city code case-insensitively.
func (d *Directory) Lookup(code string) (models.City, bool) {
	city, ok := d.byCode[strings.ToLower(code)]
	return city, ok
}

// All returns a copy of the full code to city table.
func (d *Directory) All() map[string]models.City {
	out := make(map[string]models.City, len(d.byCode))
	for code, city := range d.byCode {
		out[code] = city
	}
	return out
}

// Codes returns the supported city codes in sorted order.
func (d *Directory) Codes() []string {
	codes := make([]string, 0, len(d.byCode))
	for code := range d.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len reports how many cities the directory holds.
func (d *Directory) Len() int {
	return len(d.byCode)
}
