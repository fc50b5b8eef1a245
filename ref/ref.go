// Package ref contains static IATA airline and airport reference data used
// to turn raw schedule-API codes into display names, cities, and logo URLs.
// The tables are generated from the OpenFlights dataset; the Index is built
// once at startup and passed to the components that need it.
package ref

import (
	"fmt"
	"sort"
	"strings"
)

// Airport holds display data for one IATA airport code.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Airline holds display data for one IATA airline code.
type Airline struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
	LogoURL string `json:"logo_url"`
}

// Index is an immutable lookup over the reference tables.
type Index struct {
	airports map[string]Airport
	airlines map[string]Airline
}

// NewIndex builds the Index from the generated tables.
func NewIndex() *Index {
	airlines := make(map[string]Airline, len(airlineTable))
	for code, a := range airlineTable {
		a.Code = code
		a.LogoURL = LogoURL(code)
		airlines[code] = a
	}
	airports := make(map[string]Airport, len(airportTable))
	for code, a := range airportTable {
		a.Code = code
		airports[code] = a
	}
	return &Index{airports: airports, airlines: airlines}
}

// LogoURL returns the AirHex CDN logo URL for an airline code.
func LogoURL(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf("https://content.airhex.com/content/logos/airlines_%s_350_100_r.png", strings.ToUpper(code))
}

// Airport looks up an airport by IATA code, case-insensitively.
func (ix *Index) Airport(code string) (Airport, bool) {
	a, ok := ix.airports[strings.ToUpper(code)]
	return a, ok
}

// Airline looks up an airline by IATA code, case-insensitively.
func (ix *Index) Airline(code string) (Airline, bool) {
	a, ok := ix.airlines[strings.ToUpper(code)]
	return a, ok
}

// CityFor resolves an airport code to its city name. Unresolved codes fall
// back to the bare code string.
func (ix *Index) CityFor(code string) string {
	if a, ok := ix.Airport(code); ok && a.City != "" {
		return a.City
	}
	return code
}

// AirlineName resolves an airline code to its display name, falling back to
// the bare code string.
func (ix *Index) AirlineName(code string) string {
	if a, ok := ix.Airline(code); ok && a.Name != "" {
		return a.Name
	}
	return code
}

// Airports returns all known airports sorted by code.
func (ix *Index) Airports() []Airport {
	out := make([]Airport, 0, len(ix.airports))
	for _, a := range ix.airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Airlines returns all known airlines sorted by code.
func (ix *Index) Airlines() []Airline {
	out := make([]Airline, 0, len(ix.airlines))
	for _, a := range ix.airlines {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
