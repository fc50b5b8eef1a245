package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/trips"
)

// HotelRequest is the create/update payload for a hotel stay
type HotelRequest struct {
	Name               string          `json:"name" binding:"required"`
	Address            string          `json:"address"`
	BookingSite        string          `json:"booking_site"`
	CheckInDate        string          `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate       string          `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	RoomType           string          `json:"room_type"`
	PricePerNight      float64         `json:"price_per_night" binding:"min=0"`
	TotalCost          trips.HotelCost `json:"total_cost"`
	PaymentMethod      string          `json:"payment_method" binding:"required,oneof=cash points hybrid"`
	Status             string          `json:"status" binding:"omitempty,oneof=planning booked archived"`
	ConfirmationNumber string          `json:"confirmation_number"`
	Notes              string          `json:"notes"`
}

func (r HotelRequest) toHotel() trips.Hotel {
	h := trips.Hotel{
		Name:               r.Name,
		Address:            r.Address,
		BookingSite:        r.BookingSite,
		CheckInDate:        r.CheckInDate,
		CheckOutDate:       r.CheckOutDate,
		RoomType:           r.RoomType,
		PricePerNight:      r.PricePerNight,
		TotalCost:          r.TotalCost,
		PaymentMethod:      r.PaymentMethod,
		Status:             r.Status,
		ConfirmationNumber: r.ConfirmationNumber,
		Notes:              r.Notes,
	}
	if h.Status == "" {
		h.Status = trips.TripStatusPlanning
	}
	return h
}

// ListHotels returns a handler listing a trip's hotels
func ListHotels(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := store.GetTrip(c.Request.Context(), c.Param("id")); errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		hotels, err := store.ListHotels(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list hotels: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, hotels)
	}
}

// CreateHotel returns a handler adding a hotel to a trip
func CreateHotel(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HotelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.CheckOutDate < req.CheckInDate {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_out_date must not be before check_in_date"})
			return
		}

		tripID := c.Param("id")
		if _, err := store.GetTrip(c.Request.Context(), tripID); errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}

		hotel := req.toHotel()
		hotel.TripID = tripID
		if err := store.CreateHotel(c.Request.Context(), &hotel); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotel: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, hotel)
	}
}

// GetHotel returns a handler fetching one hotel
func GetHotel(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotel, err := store.GetHotel(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get hotel: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, hotel)
	}
}

// UpdateHotel returns a handler updating a hotel
func UpdateHotel(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HotelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.CheckOutDate < req.CheckInDate {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_out_date must not be before check_in_date"})
			return
		}

		existing, err := store.GetHotel(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get hotel: " + err.Error()})
			return
		}

		hotel := req.toHotel()
		hotel.ID = existing.ID
		hotel.TripID = existing.TripID
		hotel.CreatedAt = existing.CreatedAt
		if err := store.UpdateHotel(c.Request.Context(), &hotel); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hotel: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, hotel)
	}
}

// DeleteHotel returns a handler deleting a hotel
func DeleteHotel(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeleteHotel(c.Request.Context(), c.Param("id"))
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hotel: " + err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
