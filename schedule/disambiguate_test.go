package schedule

import (
	"encoding/json"
	"testing"

	"github.com/gilby125/trip-planner-api/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(carrier, number, dep, arr, depTime, arrTime string) Candidate {
	return Candidate{
		FlightDesignator: Designator{CarrierCode: carrier, Number: json.Number(number)},
		FlightPoints: []FlightPoint{
			{IataCode: dep, Departure: &PointTimes{Timings: []Timing{{Qualifier: "STD", Value: depTime}}}},
			{IataCode: arr, Arrival: &PointTimes{Timings: []Timing{{Qualifier: "STA", Value: arrTime}}}},
		},
		Legs: []Leg{{
			BoardPointIataCode: dep,
			OffPointIataCode:   arr,
			AircraftEquipment:  &Aircraft{AircraftType: "77W", Manufacturer: "Boeing"},
		}},
	}
}

func TestDisambiguateNotFound(t *testing.T) {
	res := Disambiguate(nil)
	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.Nil(t, res.Selected)
}

func TestDisambiguateAutoSelectsSingle(t *testing.T) {
	c := candidate("AA", "123", "JFK", "LAX", "2026-04-25T08:00", "2026-04-25T11:00")
	res := Disambiguate([]Candidate{c})
	assert.Equal(t, OutcomeSelected, res.Outcome)
	require.NotNil(t, res.Selected)
	assert.Equal(t, "AA", res.Selected.FlightDesignator.CarrierCode)
}

func TestDisambiguateMultipleReturnedUntouched(t *testing.T) {
	cands := []Candidate{
		candidate("AA", "123", "JFK", "LAX", "2026-04-25T08:00", "2026-04-25T11:00"),
		candidate("AA", "123", "JFK", "LAX", "2026-04-25T14:00", "2026-04-25T17:00"),
		candidate("AA", "123", "JFK", "LAX", "2026-04-25T20:00", "2026-04-25T23:00"),
	}
	res := Disambiguate(cands)
	assert.Equal(t, OutcomeNeedsChoice, res.Outcome)
	assert.Nil(t, res.Selected)
	assert.Equal(t, cands, res.Candidates)
}

func TestSelectExtractsFormData(t *testing.T) {
	ix := ref.NewIndex()
	c := candidate("AA", "123", "JFK", "LAX", "2026-04-25T08:00:00-04:00", "2026-04-25T11:00:00-07:00")

	sel, err := Select(c, ix)
	require.NoError(t, err)
	assert.Equal(t, "AA", sel.CarrierCode)
	assert.Equal(t, "123", sel.FlightNumber)
	assert.Equal(t, "American Airlines", sel.Airline)
	assert.Contains(t, sel.AirlineLogoURL, "airlines_AA")
	assert.Equal(t, "JFK", sel.Departure.Airport)
	assert.Equal(t, "New York", sel.Departure.City)
	assert.Equal(t, "2026-04-25T08:00", sel.Departure.DateTime)
	assert.Equal(t, "LAX", sel.Arrival.Airport)
	assert.Equal(t, "Los Angeles", sel.Arrival.City)
	assert.Equal(t, "2026-04-25T11:00", sel.Arrival.DateTime)
	assert.Equal(t, "77W", sel.AircraftType)
}

func TestSelectUnknownAirportFallsBackToCode(t *testing.T) {
	ix := ref.NewIndex()
	c := candidate("Q9", "55", "XQX", "YQY", "2026-06-01T09:00", "2026-06-01T10:30")

	sel, err := Select(c, ix)
	require.NoError(t, err)
	assert.Equal(t, "Q9", sel.Airline) // unknown carrier keeps the bare code
	assert.Equal(t, "XQX", sel.Departure.City)
	assert.Equal(t, "YQY", sel.Arrival.City)
}

func TestSelectRejectsDegenerateCandidate(t *testing.T) {
	ix := ref.NewIndex()
	_, err := Select(Candidate{}, ix)
	assert.ErrorIs(t, err, ErrUnexpectedFormat)
}

func TestTimingQualifierFallback(t *testing.T) {
	p := FlightPoint{
		IataCode: "JFK",
		Departure: &PointTimes{Timings: []Timing{
			{Qualifier: "XXX", Value: "2026-04-25T07:45"},
			{Qualifier: "STD", Value: "2026-04-25T08:00"},
		}},
	}
	// tagged timing wins even when listed later
	assert.Equal(t, "2026-04-25T08:00", DepartureTime(p))

	p.Departure.Timings = []Timing{{Qualifier: "XXX", Value: "2026-04-25T07:45"}}
	// no tag matches: first timing present wins
	assert.Equal(t, "2026-04-25T07:45", DepartureTime(p))

	assert.Equal(t, "", DepartureTime(FlightPoint{}))
}

func TestDatetimeLocal(t *testing.T) {
	assert.Equal(t, "2026-07-08T17:30", DatetimeLocal("2026-07-08T17:30:00-04:00"))
	assert.Equal(t, "2026-07-08T17:30", DatetimeLocal("2026-07-08T17:30"))
	assert.Equal(t, "", DatetimeLocal(""))
}
