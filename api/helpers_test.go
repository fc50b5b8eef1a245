package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gilby125/trip-planner-api/config"
	"github.com/gilby125/trip-planner-api/pkg/health"
	"github.com/gilby125/trip-planner-api/ref"
	"github.com/gilby125/trip-planner-api/schedule"
)

// scheduleFixture stands in for the upstream schedule API: a token server
// that always grants and an API server serving the configured response.
type scheduleFixture struct {
	tokenSrv *httptest.Server
	apiSrv   *httptest.Server

	status int
	body   string
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	f := &scheduleFixture{status: http.StatusOK, body: "[]"}

	f.tokenSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":1799}`))
	}))
	f.apiSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		w.Write([]byte(f.body))
	}))
	t.Cleanup(f.tokenSrv.Close)
	t.Cleanup(f.apiSrv.Close)
	return f
}

func (f *scheduleFixture) session() *schedule.Session {
	return schedule.NewSession(config.AmadeusConfig{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		TokenURL:     f.tokenSrv.URL,
		BaseURL:      f.apiSrv.URL,
		Timeout:      5 * time.Second,
	})
}

// unconfiguredSession has no credentials, so every lookup fails with the
// auth error.
func unconfiguredSession() *schedule.Session {
	return schedule.NewSession(config.AmadeusConfig{Timeout: 5 * time.Second})
}

func newTestRouter(store *fakeStore, session *schedule.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, Deps{
		Store:   store,
		Session: session,
		Index:   ref.NewIndex(),
		Health:  health.NewHealthChecker("test"),
	})
	return router
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// oneCandidateData is a single-candidate schedule response in the "data"
// envelope: AA123 JFK -> LAX on 2026-04-25.
const oneCandidateData = `{"data":[{
	"scheduledDepartureDate":"2026-04-25",
	"flightDesignator":{"carrierCode":"AA","flightNumber":123},
	"flightPoints":[
		{"iataCode":"JFK","departure":{"timings":[{"qualifier":"STD","value":"2026-04-25T08:00:00-04:00"}]}},
		{"iataCode":"LAX","arrival":{"timings":[{"qualifier":"STA","value":"2026-04-25T11:30:00-07:00"}]}}
	],
	"legs":[{"boardPointIataCode":"JFK","offPointIataCode":"LAX",
		"aircraftEquipment":{"aircraftType":"77W","manufacturer":"Boeing"},
		"scheduledLegDuration":"PT6H30M"}]
}]}`
