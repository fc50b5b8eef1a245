// Package trips holds the domain model for trips and their child records,
// along with the segment sync invariant, cost summaries, and the timeline
// day assignment used for display.
package trips

import "time"

// Trip status values
const (
	TripStatusPlanning = "planning"
	TripStatusBooked   = "booked"
	TripStatusArchived = "archived"
)

// Payment methods
const (
	PaymentCash   = "cash"
	PaymentPoints = "points"
	PaymentHybrid = "hybrid"
)

// Trip is the aggregate root. Activities, flights, and hotels are child
// records keyed by TripID. StartDate and EndDate are ISO date strings.
type Trip struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Travelers   int       `json:"travelers"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Endpoint is one end of a flight or segment. DateTime may be a full
// timestamp or a bare ISO date string.
type Endpoint struct {
	Airport  string `json:"airport"`
	City     string `json:"city"`
	DateTime string `json:"date_time"`
}

// Segment is one leg of a booked itinerary.
type Segment struct {
	Airline              string   `json:"airline"`
	FlightNumber         string   `json:"flight_number"`
	Departure            Endpoint `json:"departure"`
	Arrival              Endpoint `json:"arrival"`
	AircraftType         string   `json:"aircraft_type,omitempty"`
	AircraftManufacturer string   `json:"aircraft_manufacturer,omitempty"`
}

// Price holds per-person flight pricing.
type Price struct {
	Cash   float64 `json:"cash"`
	Points int     `json:"points,omitempty"`
	Taxes  float64 `json:"taxes"`
}

// Flight is a booked or planned flight on a trip. When Segments is
// non-empty, Departure mirrors Segments[0].Departure and Arrival mirrors
// Segments[len-1].Arrival; SyncEndpoints restores that invariant after any
// segment mutation.
type Flight struct {
	ID                 string    `json:"id"`
	TripID             string    `json:"trip_id"`
	Airline            string    `json:"airline"`
	FlightNumber       string    `json:"flight_number"`
	CabinClass         string    `json:"cabin_class"`
	Departure          Endpoint  `json:"departure"`
	Arrival            Endpoint  `json:"arrival"`
	Segments           []Segment `json:"segments,omitempty"`
	AirlineLogoURL     string    `json:"airline_logo_url,omitempty"`
	PricePerPerson     Price     `json:"price_per_person"`
	PaymentMethod      string    `json:"payment_method"`
	Status             string    `json:"status"`
	ConfirmationNumber string    `json:"confirmation_number,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// HotelCost holds total hotel pricing.
type HotelCost struct {
	Cash   float64 `json:"cash"`
	Points int     `json:"points,omitempty"`
}

// Hotel is a stay on a trip. CheckInDate and CheckOutDate are ISO dates.
type Hotel struct {
	ID                 string    `json:"id"`
	TripID             string    `json:"trip_id"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	BookingSite        string    `json:"booking_site,omitempty"`
	CheckInDate        string    `json:"check_in_date"`
	CheckOutDate       string    `json:"check_out_date"`
	RoomType           string    `json:"room_type,omitempty"`
	PricePerNight      float64   `json:"price_per_night"`
	TotalCost          HotelCost `json:"total_cost"`
	PaymentMethod      string    `json:"payment_method"`
	Status             string    `json:"status"`
	ConfirmationNumber string    `json:"confirmation_number,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Activity is a planned activity on a trip. Date is an ISO date; Time is
// an optional HH:MM string.
type Activity struct {
	ID            string    `json:"id"`
	TripID        string    `json:"trip_id"`
	Title         string    `json:"title"`
	BookingURL    string    `json:"booking_url,omitempty"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	CostPerPerson float64   `json:"cost_per_person"`
	Date          string    `json:"date"`
	Time          string    `json:"time,omitempty"`
	Duration      int       `json:"duration,omitempty"` // minutes
	Location      string    `json:"location,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
