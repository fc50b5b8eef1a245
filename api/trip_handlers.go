package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/trips"
)

// TripRequest is the create/update payload for a trip
type TripRequest struct {
	Name        string `json:"name" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Travelers   int    `json:"travelers" binding:"required,min=1"`
	Notes       string `json:"notes"`
	Status      string `json:"status" binding:"omitempty,oneof=planning booked archived"`
}

func (r TripRequest) toTrip() trips.Trip {
	return trips.Trip{
		Name:        r.Name,
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Travelers:   r.Travelers,
		Notes:       r.Notes,
		Status:      r.Status,
	}
}

// ListTrips returns a handler listing all trips
func ListTrips(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.ListTrips(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateTrip returns a handler creating a trip
func CreateTrip(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TripRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.EndDate < req.StartDate {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
			return
		}

		trip := req.toTrip()
		if err := store.CreateTrip(c.Request.Context(), &trip); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, trip)
	}
}

// GetTrip returns a handler fetching one trip
func GetTrip(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		trip, err := store.GetTrip(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get trip: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, trip)
	}
}

// UpdateTrip returns a handler updating a trip
func UpdateTrip(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TripRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.EndDate < req.StartDate {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
			return
		}

		existing, err := store.GetTrip(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get trip: " + err.Error()})
			return
		}

		trip := req.toTrip()
		trip.ID = existing.ID
		trip.CreatedAt = existing.CreatedAt
		if trip.Status == "" {
			trip.Status = existing.Status
		}
		if err := store.UpdateTrip(c.Request.Context(), &trip); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, trip)
	}
}

// DeleteTrip returns a handler deleting a trip and its child records
func DeleteTrip(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeleteTrip(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip: " + err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// tripWithChildren loads a trip and all of its child records.
func tripWithChildren(c *gin.Context, store db.Store, id string) (trips.Trip, []trips.Flight, []trips.Hotel, []trips.Activity, bool) {
	ctx := c.Request.Context()

	trip, err := store.GetTrip(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return trips.Trip{}, nil, nil, nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get trip: " + err.Error()})
		return trips.Trip{}, nil, nil, nil, false
	}

	flights, err := store.ListFlights(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list flights: " + err.Error()})
		return trips.Trip{}, nil, nil, nil, false
	}
	hotels, err := store.ListHotels(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list hotels: " + err.Error()})
		return trips.Trip{}, nil, nil, nil, false
	}
	activities, err := store.ListActivities(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities: " + err.Error()})
		return trips.Trip{}, nil, nil, nil, false
	}
	return trip, flights, hotels, activities, true
}

// GetTimeline returns a handler building the trip's day-by-day view
func GetTimeline(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		trip, flights, hotels, activities, ok := tripWithChildren(c, store, c.Param("id"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"trip": trip,
			"days": trips.BuildTimeline(trip, flights, hotels, activities),
		})
	}
}

// GetSummary returns a handler computing the trip's cost and PTO summary
func GetSummary(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		trip, flights, hotels, activities, ok := tripWithChildren(c, store, c.Param("id"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, trips.CalculateSummary(trip, flights, hotels, activities))
	}
}
