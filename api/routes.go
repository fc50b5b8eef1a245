// Package api wires the HTTP surface: trip CRUD, flight schedule lookup,
// timeline and summary views, and reference data.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/pkg/cache"
	"github.com/gilby125/trip-planner-api/pkg/health"
	"github.com/gilby125/trip-planner-api/pkg/middleware"
	"github.com/gilby125/trip-planner-api/ref"
	"github.com/gilby125/trip-planner-api/schedule"
)

// Deps carries everything the route handlers need.
type Deps struct {
	Store   db.Store
	Session *schedule.Session
	Index   *ref.Index
	Cache   *cache.CacheManager
	Health  *health.HealthChecker
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Deps) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	// Health endpoints
	router.GET("/health", GetHealth(deps.Health))
	router.GET("/health/ready", GetReadiness(deps.Health))
	router.GET("/health/live", GetLiveness(deps.Health))

	// Raw schedule proxy, kept for the flight form's direct lookup
	router.POST("/flight-lookup", ProxyFlightLookup(deps.Session))

	v1 := router.Group("/api/v1")
	{
		// Reference data, served from the in-process index and cached
		if deps.Cache != nil {
			cached := middleware.ResponseCache(deps.Cache, middleware.CacheConfig{
				TTL:       cache.ReferenceTTL,
				KeyPrefix: "ref",
			})
			v1.GET("/airports", cached, GetAirports(deps.Index))
			v1.GET("/airlines", cached, GetAirlines(deps.Index))
		} else {
			v1.GET("/airports", GetAirports(deps.Index))
			v1.GET("/airlines", GetAirlines(deps.Index))
		}

		// Normalized schedule lookup
		v1.POST("/lookup", LookupFlight(deps.Session, deps.Index))

		// Trip routes
		v1.GET("/trips", ListTrips(deps.Store))
		v1.POST("/trips", CreateTrip(deps.Store))
		v1.GET("/trips/:id", GetTrip(deps.Store))
		v1.PUT("/trips/:id", UpdateTrip(deps.Store))
		v1.DELETE("/trips/:id", DeleteTrip(deps.Store))

		// Trip views
		v1.GET("/trips/:id/timeline", GetTimeline(deps.Store))
		v1.GET("/trips/:id/summary", GetSummary(deps.Store))

		// Flight routes
		v1.GET("/trips/:id/flights", ListFlights(deps.Store))
		v1.POST("/trips/:id/flights", CreateFlight(deps.Store))
		v1.GET("/flights/:id", GetFlight(deps.Store))
		v1.PUT("/flights/:id", UpdateFlight(deps.Store))
		v1.DELETE("/flights/:id", DeleteFlight(deps.Store))

		// Segment routes
		v1.PUT("/flights/:id/segments/:index", ReplaceSegment(deps.Store))
		v1.DELETE("/flights/:id/segments/:index", RemoveSegment(deps.Store))
		v1.POST("/flights/:id/segments/:index/lookup", LookupSegment(deps.Store, deps.Session, deps.Index))

		// Hotel routes
		v1.GET("/trips/:id/hotels", ListHotels(deps.Store))
		v1.POST("/trips/:id/hotels", CreateHotel(deps.Store))
		v1.GET("/hotels/:id", GetHotel(deps.Store))
		v1.PUT("/hotels/:id", UpdateHotel(deps.Store))
		v1.DELETE("/hotels/:id", DeleteHotel(deps.Store))

		// Activity routes
		v1.GET("/trips/:id/activities", ListActivities(deps.Store))
		v1.POST("/trips/:id/activities", CreateActivity(deps.Store))
		v1.GET("/activities/:id", GetActivity(deps.Store))
		v1.PUT("/activities/:id", UpdateActivity(deps.Store))
		v1.DELETE("/activities/:id", DeleteActivity(deps.Store))
	}
}
