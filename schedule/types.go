// Package schedule is a client for the Amadeus flight schedule API plus
// the normalization pipeline that turns raw schedule responses into trip
// flight records: candidate disambiguation, selection, and segment
// reconciliation.
package schedule

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// Query identifies one schedule lookup. Constructed per lookup via
// ParseFlightNumber and discarded afterwards.
type Query struct {
	CarrierCode  string `json:"carrierCode"`
	FlightNumber string `json:"flightNumber"`
	Date         string `json:"date"`
}

var flightNumberRe = regexp.MustCompile(`^([A-Za-z]{2})(\d+)$`)

// ParseFlightNumber splits a combined flight number ("AA123") into a Query.
// Anything that is not exactly a 2-letter carrier prefix followed by digits
// fails with ErrInvalidFormat.
func ParseFlightNumber(flightNumber, date string) (Query, error) {
	m := flightNumberRe.FindStringSubmatch(flightNumber)
	if m == nil {
		return Query{}, ErrInvalidFormat
	}
	return Query{
		CarrierCode:  strings.ToUpper(m[1]),
		FlightNumber: m[2],
		Date:         date,
	}, nil
}

// Designator is a carrier code plus flight number. The number arrives as a
// JSON number at the top level and is occasionally a string on legs, so
// both spellings are accepted.
type Designator struct {
	CarrierCode  string      `json:"carrierCode"`
	Number       json.Number `json:"number"`
	FlightNumber json.Number `json:"flightNumber"`
}

// NumberString returns whichever number field is populated.
func (d Designator) NumberString() string {
	if d.Number != "" {
		return d.Number.String()
	}
	return d.FlightNumber.String()
}

// Timing is one timestamp on a flight point, tagged with a qualifier such
// as STD (scheduled departure) or STA (scheduled arrival).
type Timing struct {
	Qualifier string `json:"qualifier"`
	Value     string `json:"value"`
}

// PointTimes groups the timings on one side (departure or arrival) of a
// flight point.
type PointTimes struct {
	Timings []Timing `json:"timings"`
}

// FlightPoint is a stop (origin, intermediate, or destination) in a
// schedule response.
type FlightPoint struct {
	IataCode  string      `json:"iataCode"`
	Departure *PointTimes `json:"departure,omitempty"`
	Arrival   *PointTimes `json:"arrival,omitempty"`
}

// Aircraft describes the equipment flying a leg.
type Aircraft struct {
	AircraftType string `json:"aircraftType"`
	Manufacturer string `json:"manufacturer"`
}

// Leg is one physical flight segment bound by a board and off airport.
type Leg struct {
	BoardPointIataCode   string      `json:"boardPointIataCode"`
	OffPointIataCode     string      `json:"offPointIataCode"`
	AircraftEquipment    *Aircraft   `json:"aircraftEquipment,omitempty"`
	ScheduledLegDuration string      `json:"scheduledLegDuration,omitempty"`
	FlightDesignator     *Designator `json:"flightDesignator,omitempty"`
}

// Candidate is one schedule-API result. Read-only; discarded after
// selection.
type Candidate struct {
	ScheduledDepartureDate string        `json:"scheduledDepartureDate,omitempty"`
	FlightDesignator       Designator    `json:"flightDesignator"`
	FlightPoints           []FlightPoint `json:"flightPoints"`
	Legs                   []Leg         `json:"legs"`
}

// responseEnvelope covers the wrapped response shapes.
type responseEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Flights json.RawMessage `json:"flights"`
}

// NormalizeCandidates parses a schedule API response body. The upstream
// shape is not guaranteed: a bare array, an object with a "data" array,
// and an object with a "flights" array are all accepted and folded into
// one candidate list. Any other shape is ErrUnexpectedFormat.
func NormalizeCandidates(body []byte) ([]Candidate, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrUnexpectedFormat
	}

	if trimmed[0] == '[' {
		var candidates []Candidate
		if err := json.Unmarshal(trimmed, &candidates); err != nil {
			return nil, ErrUnexpectedFormat
		}
		return candidates, nil
	}

	var env responseEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, ErrUnexpectedFormat
	}

	for _, raw := range []json.RawMessage{env.Data, env.Flights} {
		if len(raw) == 0 {
			continue
		}
		inner := bytes.TrimSpace(raw)
		if len(inner) == 0 || inner[0] != '[' {
			continue
		}
		var candidates []Candidate
		if err := json.Unmarshal(inner, &candidates); err != nil {
			return nil, ErrUnexpectedFormat
		}
		return candidates, nil
	}

	return nil, ErrUnexpectedFormat
}
