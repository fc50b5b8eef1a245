package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/ref"
	"github.com/gilby125/trip-planner-api/schedule"
	"github.com/gilby125/trip-planner-api/trips"
)

// FlightRequest is the create/update payload for a flight
type FlightRequest struct {
	Airline            string          `json:"airline" binding:"required"`
	FlightNumber       string          `json:"flight_number" binding:"required"`
	CabinClass         string          `json:"cabin_class"`
	Departure          trips.Endpoint  `json:"departure"`
	Arrival            trips.Endpoint  `json:"arrival"`
	Segments           []trips.Segment `json:"segments"`
	AirlineLogoURL     string          `json:"airline_logo_url"`
	PricePerPerson     trips.Price     `json:"price_per_person"`
	PaymentMethod      string          `json:"payment_method" binding:"required,oneof=cash points hybrid"`
	Status             string          `json:"status" binding:"omitempty,oneof=planning booked archived"`
	ConfirmationNumber string          `json:"confirmation_number"`
}

func (r FlightRequest) toFlight() trips.Flight {
	f := trips.Flight{
		Airline:            r.Airline,
		FlightNumber:       r.FlightNumber,
		CabinClass:         r.CabinClass,
		Departure:          r.Departure,
		Arrival:            r.Arrival,
		Segments:           r.Segments,
		AirlineLogoURL:     r.AirlineLogoURL,
		PricePerPerson:     r.PricePerPerson,
		PaymentMethod:      r.PaymentMethod,
		Status:             r.Status,
		ConfirmationNumber: r.ConfirmationNumber,
	}
	if f.Status == "" {
		f.Status = trips.TripStatusPlanning
	}
	// Segments are authoritative for the overall endpoints.
	trips.SyncEndpoints(&f)
	return f
}

// ListFlights returns a handler listing a trip's flights
func ListFlights(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := store.GetTrip(c.Request.Context(), c.Param("id")); errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		flights, err := store.ListFlights(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list flights: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, flights)
	}
}

// CreateFlight returns a handler adding a flight to a trip
func CreateFlight(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FlightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tripID := c.Param("id")
		if _, err := store.GetTrip(c.Request.Context(), tripID); errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}

		flight := req.toFlight()
		flight.TripID = tripID
		if err := store.CreateFlight(c.Request.Context(), &flight); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flight: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, flight)
	}
}

// GetFlight returns a handler fetching one flight
func GetFlight(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		flight, err := store.GetFlight(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flight: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, flight)
	}
}

// UpdateFlight returns a handler updating a flight
func UpdateFlight(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FlightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		existing, err := store.GetFlight(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flight: " + err.Error()})
			return
		}

		flight := req.toFlight()
		flight.ID = existing.ID
		flight.TripID = existing.TripID
		flight.CreatedAt = existing.CreatedAt
		if err := store.UpdateFlight(c.Request.Context(), &flight); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flight: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, flight)
	}
}

// DeleteFlight returns a handler deleting a flight
func DeleteFlight(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeleteFlight(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete flight: " + err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// flightAndSegment loads a flight and bounds-checks the :index param.
func flightAndSegment(c *gin.Context, store db.Store) (trips.Flight, int, bool) {
	flight, err := store.GetFlight(c.Request.Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		return trips.Flight{}, 0, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flight: " + err.Error()})
		return trips.Flight{}, 0, false
	}

	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 || i >= len(flight.Segments) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid segment index"})
		return trips.Flight{}, 0, false
	}
	return flight, i, true
}

// ReplaceSegment returns a handler replacing one segment of a flight
func ReplaceSegment(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var seg trips.Segment
		if err := c.ShouldBindJSON(&seg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		flight, i, ok := flightAndSegment(c, store)
		if !ok {
			return
		}

		trips.ReplaceSegment(&flight, i, seg)
		if err := store.UpdateFlight(c.Request.Context(), &flight); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flight: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, flight)
	}
}

// RemoveSegment returns a handler removing one segment of a flight
func RemoveSegment(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		flight, i, ok := flightAndSegment(c, store)
		if !ok {
			return
		}

		trips.RemoveSegment(&flight, i)
		if err := store.UpdateFlight(c.Request.Context(), &flight); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flight: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, flight)
	}
}

// segmentLookupNumber builds the designator to look up for a segment,
// prefixing the airline code when the stored number is bare digits.
func segmentLookupNumber(seg trips.Segment) string {
	if _, err := schedule.ParseFlightNumber(seg.FlightNumber, ""); err == nil {
		return seg.FlightNumber
	}
	return seg.Airline + seg.FlightNumber
}

// LookupSegment returns a handler that refreshes one segment from the
// schedule API: it looks up the segment's flight on its departure date,
// maps the first candidate's legs onto the segment, and persists the
// rebuilt flight with its endpoints re-synced.
func LookupSegment(store db.Store, session *schedule.Session, ix *ref.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		flight, i, ok := flightAndSegment(c, store)
		if !ok {
			return
		}
		seg := flight.Segments[i]

		date := trips.DatePart(seg.Departure.DateTime)
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Segment has no departure date to look up"})
			return
		}

		candidates, err := session.Lookup(c.Request.Context(), segmentLookupNumber(seg), date)
		if err != nil {
			writeLookupError(c, err)
			return
		}
		if len(candidates) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": schedule.ErrNotFound.Error()})
			return
		}

		rebuilt, err := schedule.ReconcileSegment(candidates[0], seg, ix)
		if errors.Is(err, schedule.ErrNoMatch) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		trips.ReplaceSegment(&flight, i, rebuilt)
		if err := store.UpdateFlight(c.Request.Context(), &flight); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flight: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, flight)
	}
}
