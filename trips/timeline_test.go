package trips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrip() Trip {
	return Trip{
		ID:        "trip-1",
		Name:      "Tokyo",
		StartDate: "2026-04-25",
		EndDate:   "2026-04-28",
		Travelers: 2,
	}
}

func TestFlightTouchesDayWithSegments(t *testing.T) {
	f := Flight{
		// Top-level endpoints deliberately stale; segments must win.
		Departure: Endpoint{Airport: "XXX", DateTime: "2026-01-01"},
		Arrival:   Endpoint{Airport: "YYY", DateTime: "2026-01-02"},
		Segments: []Segment{
			seg("UA", "100", "SFO", "NRT", "2026-04-25T11:00", "2026-04-26T14:25"),
		},
	}
	assert.True(t, FlightTouchesDay(f, "2026-04-25"))
	assert.True(t, FlightTouchesDay(f, "2026-04-26"))
	assert.False(t, FlightTouchesDay(f, "2026-01-01"))
	assert.False(t, FlightTouchesDay(f, "2026-04-27"))
}

func TestFlightTouchesDayWithoutSegments(t *testing.T) {
	f := Flight{
		Departure: Endpoint{Airport: "JFK", DateTime: "2026-04-25T22:00"},
		Arrival:   Endpoint{Airport: "LHR", DateTime: "2026-04-26T10:00"},
	}
	assert.True(t, FlightTouchesDay(f, "2026-04-25"))
	assert.True(t, FlightTouchesDay(f, "2026-04-26"))
	assert.False(t, FlightTouchesDay(f, "2026-04-27"))
}

func TestDayRange(t *testing.T) {
	days := DayRange(testTrip(), nil)
	assert.Equal(t, []string{"2026-04-25", "2026-04-26", "2026-04-27", "2026-04-28"}, days)
}

func TestDayRangeWidensForEarlyDeparture(t *testing.T) {
	early := Flight{Departure: Endpoint{Airport: "SFO", DateTime: "2026-04-23T20:00"}}
	days := DayRange(testTrip(), []Flight{early})
	require.Len(t, days, 6)
	assert.Equal(t, "2026-04-23", days[0])
	assert.Equal(t, "2026-04-28", days[len(days)-1])
}

func TestDayRangeDoesNotExtendForward(t *testing.T) {
	// A flight arriving after the trip's end date must not stretch the range.
	late := Flight{
		Departure: Endpoint{Airport: "NRT", DateTime: "2026-04-28T17:00"},
		Arrival:   Endpoint{Airport: "SFO", DateTime: "2026-04-30T10:00"},
	}
	days := DayRange(testTrip(), []Flight{late})
	assert.Equal(t, "2026-04-28", days[len(days)-1])
}

func TestDayRangeInvalidDates(t *testing.T) {
	trip := testTrip()
	trip.EndDate = ""
	assert.Nil(t, DayRange(trip, nil))
}

func TestBuildTimeline(t *testing.T) {
	trip := testTrip()
	overnight := Flight{
		ID: "f1",
		Segments: []Segment{
			seg("UA", "837", "SFO", "NRT", "2026-04-25T11:00", "2026-04-26T14:25"),
		},
	}
	SyncEndpoints(&overnight)
	hotel := Hotel{ID: "h1", Name: "Park Hyatt", CheckInDate: "2026-04-26", CheckOutDate: "2026-04-28"}
	activity := Activity{ID: "a1", Title: "Sushi class", Date: "2026-04-27"}

	timeline := BuildTimeline(trip, []Flight{overnight}, []Hotel{hotel}, []Activity{activity})
	require.Len(t, timeline, 4)

	byDate := map[string]Day{}
	for _, d := range timeline {
		byDate[d.Date] = d
	}

	// An overnight flight appears on both its departure and arrival day.
	assert.Len(t, byDate["2026-04-25"].Flights, 1)
	assert.Len(t, byDate["2026-04-26"].Flights, 1)
	assert.Empty(t, byDate["2026-04-27"].Flights)

	// Hotel on check-in and check-out days only.
	assert.Empty(t, byDate["2026-04-25"].Hotels)
	assert.Len(t, byDate["2026-04-26"].Hotels, 1)
	assert.Empty(t, byDate["2026-04-27"].Hotels)
	assert.Len(t, byDate["2026-04-28"].Hotels, 1)

	assert.Len(t, byDate["2026-04-27"].Activities, 1)

	// Empty buckets marshal as [] rather than null.
	assert.NotNil(t, byDate["2026-04-27"].Flights)
	assert.NotNil(t, byDate["2026-04-25"].Hotels)
}
