package api

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilby125/trip-planner-api/pkg/cache"
	"github.com/gilby125/trip-planner-api/pkg/health"
	"github.com/gilby125/trip-planner-api/ref"
)

func TestGetAirports(t *testing.T) {
	router := newTestRouter(newFakeStore(), unconfiguredSession())

	w := performRequest(router, http.MethodGet, "/api/v1/airports", nil)
	require.Equal(t, http.StatusOK, w.Code)

	airports := decodeBody[[]ref.Airport](t, w)
	require.NotEmpty(t, airports)

	byCode := map[string]ref.Airport{}
	for _, a := range airports {
		byCode[a.Code] = a
	}
	assert.Equal(t, "New York", byCode["JFK"].City)
	assert.Equal(t, "San Francisco", byCode["SFO"].City)
}

func TestGetAirlines(t *testing.T) {
	router := newTestRouter(newFakeStore(), unconfiguredSession())

	w := performRequest(router, http.MethodGet, "/api/v1/airlines", nil)
	require.Equal(t, http.StatusOK, w.Code)

	airlines := decodeBody[[]ref.Airline](t, w)
	require.NotEmpty(t, airlines)

	byCode := map[string]ref.Airline{}
	for _, a := range airlines {
		byCode[a.Code] = a
	}
	assert.Equal(t, "American Airlines", byCode["AA"].Name)
	assert.Equal(t, "https://content.airhex.com/content/logos/airlines_AA_350_100_r.png", byCode["AA"].LogoURL)
}

func TestReferenceResponsesAreCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	manager := cache.NewCacheManager(cache.NewRedisCache(client, "test"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, Deps{
		Store:   newFakeStore(),
		Session: unconfiguredSession(),
		Index:   ref.NewIndex(),
		Cache:   manager,
		Health:  health.NewHealthChecker("test"),
	})

	first := performRequest(router, http.MethodGet, "/api/v1/airports", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := performRequest(router, http.MethodGet, "/api/v1/airports", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(newFakeStore(), unconfiguredSession())

	w := performRequest(router, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"up"`)

	w = performRequest(router, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
