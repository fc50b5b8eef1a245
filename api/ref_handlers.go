package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/ref"
)

// GetAirports returns a handler listing the known airports
func GetAirports(ix *ref.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ix.Airports())
	}
}

// GetAirlines returns a handler listing the known airlines with logo URLs
func GetAirlines(ix *ref.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ix.Airlines())
	}
}
