package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilby125/trip-planner-api/trips"
)

func TestCreateFlightSyncsEndpoints(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, unconfiguredSession())

	w := performRequest(router, http.MethodPost, "/api/v1/trips", validTripRequest())
	trip := decodeBody[trips.Trip](t, w)

	w = performRequest(router, http.MethodPost, "/api/v1/trips/"+trip.ID+"/flights", FlightRequest{
		Airline: "UA", FlightNumber: "100", PaymentMethod: "cash",
		// Top-level endpoints are deliberately wrong; segments win.
		Departure: trips.Endpoint{Airport: "XXX"},
		Arrival:   trips.Endpoint{Airport: "YYY"},
		Segments: []trips.Segment{
			{Airline: "UA", FlightNumber: "100",
				Departure: trips.Endpoint{Airport: "SFO", DateTime: "2026-04-25T08:00"},
				Arrival:   trips.Endpoint{Airport: "ORD", DateTime: "2026-04-25T14:20"}},
			{Airline: "UA", FlightNumber: "4412",
				Departure: trips.Endpoint{Airport: "ORD", DateTime: "2026-04-25T15:10"},
				Arrival:   trips.Endpoint{Airport: "BOS", DateTime: "2026-04-25T18:30"}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	flight := decodeBody[trips.Flight](t, w)
	assert.Equal(t, "SFO", flight.Departure.Airport)
	assert.Equal(t, "BOS", flight.Arrival.Airport)
}

func TestReplaceSegmentEndpoint(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, unconfiguredSession())

	w := performRequest(router, http.MethodPost, "/api/v1/trips", validTripRequest())
	trip := decodeBody[trips.Trip](t, w)

	w = performRequest(router, http.MethodPost, "/api/v1/trips/"+trip.ID+"/flights", FlightRequest{
		Airline: "UA", FlightNumber: "100", PaymentMethod: "cash",
		Segments: []trips.Segment{
			{Airline: "UA", FlightNumber: "100",
				Departure: trips.Endpoint{Airport: "SFO", DateTime: "2026-04-25T08:00"},
				Arrival:   trips.Endpoint{Airport: "ORD", DateTime: "2026-04-25T14:20"}},
		},
	})
	flight := decodeBody[trips.Flight](t, w)

	w = performRequest(router, http.MethodPut, "/api/v1/flights/"+flight.ID+"/segments/0", trips.Segment{
		Airline: "UA", FlightNumber: "200",
		Departure: trips.Endpoint{Airport: "SFO", DateTime: "2026-04-25T10:00"},
		Arrival:   trips.Endpoint{Airport: "DEN", DateTime: "2026-04-25T13:40"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody[trips.Flight](t, w)
	assert.Equal(t, "DEN", updated.Arrival.Airport)
	assert.Equal(t, "2026-04-25T13:40", updated.Arrival.DateTime)

	// Bad index is rejected without touching the flight.
	w = performRequest(router, http.MethodPut, "/api/v1/flights/"+flight.ID+"/segments/5", trips.Segment{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveSegmentEndpoint(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, unconfiguredSession())

	w := performRequest(router, http.MethodPost, "/api/v1/trips", validTripRequest())
	trip := decodeBody[trips.Trip](t, w)

	w = performRequest(router, http.MethodPost, "/api/v1/trips/"+trip.ID+"/flights", FlightRequest{
		Airline: "UA", FlightNumber: "100", PaymentMethod: "cash",
		Segments: []trips.Segment{
			{Airline: "UA", FlightNumber: "100",
				Departure: trips.Endpoint{Airport: "SFO", DateTime: "2026-04-25T08:00"},
				Arrival:   trips.Endpoint{Airport: "ORD", DateTime: "2026-04-25T14:20"}},
			{Airline: "UA", FlightNumber: "4412",
				Departure: trips.Endpoint{Airport: "ORD", DateTime: "2026-04-25T15:10"},
				Arrival:   trips.Endpoint{Airport: "BOS", DateTime: "2026-04-25T18:30"}},
		},
	})
	flight := decodeBody[trips.Flight](t, w)

	w = performRequest(router, http.MethodDelete, "/api/v1/flights/"+flight.ID+"/segments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody[trips.Flight](t, w)
	require.Len(t, updated.Segments, 1)
	assert.Equal(t, "ORD", updated.Arrival.Airport)
}

func TestLookupSegmentRefreshesFlight(t *testing.T) {
	store := newFakeStore()
	fixture := newScheduleFixture(t)
	fixture.body = oneCandidateData
	router := newTestRouter(store, fixture.session())

	w := performRequest(router, http.MethodPost, "/api/v1/trips", validTripRequest())
	trip := decodeBody[trips.Trip](t, w)

	w = performRequest(router, http.MethodPost, "/api/v1/trips/"+trip.ID+"/flights", FlightRequest{
		Airline: "AA", FlightNumber: "123", PaymentMethod: "cash",
		Segments: []trips.Segment{
			{Airline: "AA", FlightNumber: "AA123",
				Departure: trips.Endpoint{Airport: "JFK", DateTime: "2026-04-25T07:45"},
				Arrival:   trips.Endpoint{Airport: "LAX", DateTime: ""}},
		},
	})
	flight := decodeBody[trips.Flight](t, w)

	w = performRequest(router, http.MethodPost, "/api/v1/flights/"+flight.ID+"/segments/0/lookup", nil)
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody[trips.Flight](t, w)
	require.Len(t, updated.Segments, 1)
	seg := updated.Segments[0]
	assert.Equal(t, "123", seg.FlightNumber)
	assert.Equal(t, "New York", seg.Departure.City)
	assert.Equal(t, "2026-04-25", seg.Departure.DateTime)
	assert.Equal(t, "2026-04-25", seg.Arrival.DateTime)
	assert.Equal(t, "77W", seg.AircraftType)
	// Endpoint invariant holds after refresh.
	assert.Equal(t, seg.Departure, updated.Departure)
	assert.Equal(t, seg.Arrival, updated.Arrival)
}

func TestLookupSegmentNoMatch(t *testing.T) {
	store := newFakeStore()
	fixture := newScheduleFixture(t)
	fixture.body = oneCandidateData
	router := newTestRouter(store, fixture.session())

	w := performRequest(router, http.MethodPost, "/api/v1/trips", validTripRequest())
	trip := decodeBody[trips.Trip](t, w)

	// Segment records a different airport pair and number, so no leg in
	// the candidate can match.
	w = performRequest(router, http.MethodPost, "/api/v1/trips/"+trip.ID+"/flights", FlightRequest{
		Airline: "AA", FlightNumber: "123", PaymentMethod: "cash",
		Segments: []trips.Segment{
			{Airline: "DL", FlightNumber: "DL999",
				Departure: trips.Endpoint{Airport: "ATL", DateTime: "2026-04-25T07:45"},
				Arrival:   trips.Endpoint{Airport: "MIA"}},
		},
	})
	flight := decodeBody[trips.Flight](t, w)

	w = performRequest(router, http.MethodPost, "/api/v1/flights/"+flight.ID+"/segments/0/lookup", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
