package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/ref"
	"github.com/gilby125/trip-planner-api/schedule"
)

// LookupRequest is the payload for the normalized schedule lookup
type LookupRequest struct {
	FlightNumber string `json:"flight_number" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
}

// LookupResponse is the normalized lookup result. Selection is populated
// when exactly one candidate matched; Candidates when the user must pick.
type LookupResponse struct {
	Outcome    schedule.Outcome     `json:"outcome"`
	Selection  *schedule.Selection  `json:"selection,omitempty"`
	Candidates []schedule.Candidate `json:"candidates,omitempty"`
}

// writeLookupError maps schedule errors onto HTTP responses. Upstream
// failures mirror the upstream status and body.
func writeLookupError(c *gin.Context, err error) {
	var upstream *schedule.UpstreamError
	switch {
	case errors.Is(err, schedule.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, schedule.ErrAuth):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Flight lookup not configured: set AMADEUS_API_KEY and AMADEUS_API_SECRET"})
	case errors.As(err, &upstream):
		c.JSON(upstream.Status, gin.H{"error": "Flight lookup failed", "details": upstream.Body})
	case errors.Is(err, schedule.ErrUnexpectedFormat):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Flight lookup failed: " + err.Error()})
	}
}

// LookupFlight returns a handler running the normalized schedule lookup:
// parse, one upstream query, candidate disambiguation.
func LookupFlight(session *schedule.Session, ix *ref.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LookupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		candidates, err := session.Lookup(c.Request.Context(), req.FlightNumber, req.Date)
		if err != nil {
			writeLookupError(c, err)
			return
		}

		result := schedule.Disambiguate(candidates)
		switch result.Outcome {
		case schedule.OutcomeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": schedule.ErrNotFound.Error()})
		case schedule.OutcomeSelected:
			sel, err := schedule.Select(*result.Selected, ix)
			if err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, LookupResponse{Outcome: result.Outcome, Selection: &sel})
		default:
			c.JSON(http.StatusOK, LookupResponse{Outcome: result.Outcome, Candidates: result.Candidates})
		}
	}
}

// ProxyLookupRequest is the raw proxy payload. Field names follow the
// upstream API's camelCase convention.
type ProxyLookupRequest struct {
	FlightNumber string `json:"flightNumber"`
	Date         string `json:"date"`
}

// ProxyFlightLookup returns a handler that forwards a schedule query
// verbatim: the upstream status and JSON body pass through untouched so
// the flight form can do its own parsing.
func ProxyFlightLookup(session *schedule.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProxyLookupRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.FlightNumber == "" || req.Date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "flightNumber and date are required"})
			return
		}

		q, err := schedule.ParseFlightNumber(req.FlightNumber, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !session.Authorized() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Amadeus API credentials not configured"})
			return
		}

		status, body, err := session.Fetch(c.Request.Context(), q)
		if err != nil {
			writeLookupError(c, err)
			return
		}
		if status < 200 || status >= 300 {
			var details any = string(body)
			if json.Valid(body) {
				details = json.RawMessage(body)
			}
			c.JSON(status, gin.H{"error": "Failed to fetch flight data", "details": details})
			return
		}
		c.Data(status, "application/json", body)
	}
}
