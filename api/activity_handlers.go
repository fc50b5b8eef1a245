package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/trips"
)

// ActivityRequest is the create/update payload for an activity
type ActivityRequest struct {
	Title         string  `json:"title" binding:"required"`
	BookingURL    string  `json:"booking_url" binding:"omitempty,url"`
	Description   string  `json:"description"`
	Category      string  `json:"category" binding:"omitempty,oneof=sightseeing food culture adventure relaxation shopping other"`
	CostPerPerson float64 `json:"cost_per_person" binding:"min=0"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	Time          string  `json:"time" binding:"omitempty,datetime=15:04"`
	Duration      int     `json:"duration" binding:"min=0"`
	Location      string  `json:"location"`
	Status        string  `json:"status" binding:"omitempty,oneof=planned booked done"`
	Notes         string  `json:"notes"`
}

func (r ActivityRequest) toActivity() trips.Activity {
	a := trips.Activity{
		Title:         r.Title,
		BookingURL:    r.BookingURL,
		Description:   r.Description,
		Category:      r.Category,
		CostPerPerson: r.CostPerPerson,
		Date:          r.Date,
		Time:          r.Time,
		Duration:      r.Duration,
		Location:      r.Location,
		Status:        r.Status,
		Notes:         r.Notes,
	}
	if a.Category == "" {
		a.Category = "other"
	}
	if a.Status == "" {
		a.Status = "planned"
	}
	return a
}

// ListActivities returns a handler listing a trip's activities
func ListActivities(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := store.GetTrip(c.Request.Context(), c.Param("id")); errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		activities, err := store.ListActivities(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, activities)
	}
}

// CreateActivity returns a handler adding an activity to a trip
func CreateActivity(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActivityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tripID := c.Param("id")
		if _, err := store.GetTrip(c.Request.Context(), tripID); errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}

		activity := req.toActivity()
		activity.TripID = tripID
		if err := store.CreateActivity(c.Request.Context(), &activity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, activity)
	}
}

// GetActivity returns a handler fetching one activity
func GetActivity(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		activity, err := store.GetActivity(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get activity: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, activity)
	}
}

// UpdateActivity returns a handler updating an activity
func UpdateActivity(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActivityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		existing, err := store.GetActivity(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get activity: " + err.Error()})
			return
		}

		activity := req.toActivity()
		activity.ID = existing.ID
		activity.TripID = existing.TripID
		activity.CreatedAt = existing.CreatedAt
		if err := store.UpdateActivity(c.Request.Context(), &activity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, activity)
	}
}

// DeleteActivity returns a handler deleting an activity
func DeleteActivity(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeleteActivity(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity: " + err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
