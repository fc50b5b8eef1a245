package schedule

import (
	"regexp"

	"github.com/gilby125/trip-planner-api/ref"
	"github.com/gilby125/trip-planner-api/trips"
)

// Outcome of disambiguating a candidate list.
type Outcome string

const (
	// OutcomeNotFound: zero candidates matched the query.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeSelected: exactly one candidate, auto-selected.
	OutcomeSelected Outcome = "selected"
	// OutcomeNeedsChoice: two or more candidates; the user must pick.
	// There is no tie-break by cabin, time, or codeshare.
	OutcomeNeedsChoice Outcome = "needs_choice"
)

// Result carries the disambiguation outcome. Candidates is the untouched
// input list when a user choice is required.
type Result struct {
	Outcome    Outcome     `json:"outcome"`
	Selected   *Candidate  `json:"selected,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

// Disambiguate decides what to do with the candidates a lookup returned.
func Disambiguate(candidates []Candidate) Result {
	switch len(candidates) {
	case 0:
		return Result{Outcome: OutcomeNotFound}
	case 1:
		return Result{Outcome: OutcomeSelected, Selected: &candidates[0]}
	default:
		return Result{Outcome: OutcomeNeedsChoice, Candidates: candidates}
	}
}

// Selection is the flight-form data extracted from a chosen candidate.
type Selection struct {
	CarrierCode    string         `json:"carrier_code"`
	FlightNumber   string         `json:"flight_number"`
	Airline        string         `json:"airline"`
	AirlineLogoURL string         `json:"airline_logo_url,omitempty"`
	Departure      trips.Endpoint `json:"departure"`
	Arrival        trips.Endpoint `json:"arrival"`
	AircraftType   string         `json:"aircraft_type,omitempty"`
}

var datetimePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2})`)

// DatetimeLocal trims a schedule timestamp to minute precision without the
// zone offset ("2026-04-25T08:00:00-04:00" -> "2026-04-25T08:00").
func DatetimeLocal(value string) string {
	if value == "" {
		return ""
	}
	if m := datetimePrefix.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	if len(value) > 16 {
		return value[:16]
	}
	return value
}

// departureQualifiers and arrivalQualifiers are the timing tags that count
// as the scheduled time on each side of a point.
var (
	departureQualifiers = map[string]bool{"STD": true, "ETD": true, "SCH": true}
	arrivalQualifiers   = map[string]bool{"STA": true, "ETA": true, "SCH": true}
)

// pointTime picks the first timing whose qualifier is in the accepted set,
// falling back to the first timing present when no tag matches.
func pointTime(pt *PointTimes, qualifiers map[string]bool) string {
	if pt == nil || len(pt.Timings) == 0 {
		return ""
	}
	for _, t := range pt.Timings {
		if qualifiers[t.Qualifier] {
			return t.Value
		}
	}
	return pt.Timings[0].Value
}

// DepartureTime extracts the scheduled departure time of a flight point.
func DepartureTime(p FlightPoint) string {
	return pointTime(p.Departure, departureQualifiers)
}

// ArrivalTime extracts the scheduled arrival time of a flight point.
func ArrivalTime(p FlightPoint) string {
	return pointTime(p.Arrival, arrivalQualifiers)
}

// Select extracts flight-form data from a chosen candidate: carrier and
// number from the designator, departure from the first flight point,
// arrival from the last, aircraft metadata from the first leg. City names
// resolve through the reference index with the bare code as fallback.
// Candidates without at least two flight points and one leg carry nothing
// usable and fail with ErrUnexpectedFormat.
func Select(c Candidate, ix *ref.Index) (Selection, error) {
	if len(c.FlightPoints) < 2 || len(c.Legs) == 0 {
		return Selection{}, ErrUnexpectedFormat
	}

	depPoint := c.FlightPoints[0]
	arrPoint := c.FlightPoints[len(c.FlightPoints)-1]

	sel := Selection{
		CarrierCode:    c.FlightDesignator.CarrierCode,
		FlightNumber:   c.FlightDesignator.NumberString(),
		Airline:        ix.AirlineName(c.FlightDesignator.CarrierCode),
		AirlineLogoURL: ref.LogoURL(c.FlightDesignator.CarrierCode),
		Departure: trips.Endpoint{
			Airport:  depPoint.IataCode,
			City:     ix.CityFor(depPoint.IataCode),
			DateTime: DatetimeLocal(DepartureTime(depPoint)),
		},
		Arrival: trips.Endpoint{
			Airport:  arrPoint.IataCode,
			City:     ix.CityFor(arrPoint.IataCode),
			DateTime: DatetimeLocal(ArrivalTime(arrPoint)),
		},
	}
	if eq := c.Legs[0].AircraftEquipment; eq != nil {
		sel.AircraftType = eq.AircraftType
	}
	return sel, nil
}
