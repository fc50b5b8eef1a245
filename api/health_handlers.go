package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/trip-planner-api/pkg/health"
)

func writeReport(c *gin.Context, report health.HealthReport) {
	status := http.StatusOK
	if report.Status == health.StatusDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// GetHealth returns a handler running all dependency checks
func GetHealth(checker *health.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeReport(c, checker.CheckHealth(c.Request.Context()))
	}
}

// GetReadiness returns a handler running the readiness subset of checks
func GetReadiness(checker *health.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeReport(c, checker.CheckReadiness(c.Request.Context()))
	}
}

// GetLiveness returns a handler reporting basic process liveness
func GetLiveness(checker *health.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeReport(c, checker.CheckLiveness(c.Request.Context()))
	}
}
