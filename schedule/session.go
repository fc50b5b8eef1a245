package schedule

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gilby125/trip-planner-api/config"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2/clientcredentials"
)

type httpClient interface {
	Do(req *retryablehttp.Request) (*http.Response, error)
}

// Session holds the credentials and HTTP client for schedule lookups. It
// is safe for concurrent use; each lookup is a single request/response
// exchange with no shared mutable state.
type Session struct {
	client  httpClient
	creds   *clientcredentials.Config
	baseURL string
}

// NewSession builds a Session from config. Missing credentials are not an
// error here: lookups fail with ErrAuth per call, matching the per-request
// credential check the lookup endpoint exposes.
func NewSession(cfg config.AmadeusConfig) *Session {
	client := retryablehttp.NewClient()
	// Lookups are user-initiated and never retried automatically.
	client.RetryMax = 0
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.Timeout

	var creds *clientcredentials.Config
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		creds = &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
	}

	return &Session{
		client:  client,
		creds:   creds,
		baseURL: cfg.BaseURL,
	}
}

// Authorized reports whether credentials are configured.
func (s *Session) Authorized() bool { return s.creds != nil }

// Fetch issues one schedule query and returns the upstream status code and
// raw body. Transport and auth failures are returned as errors; non-2xx
// responses are not, so the caller decides whether to mirror them.
func (s *Session) Fetch(ctx context.Context, q Query) (int, []byte, error) {
	if s.creds == nil {
		return 0, nil, fmt.Errorf("%w: AMADEUS_API_KEY and AMADEUS_API_SECRET must be set", ErrAuth)
	}

	token, err := s.creds.Token(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	params := url.Values{}
	params.Set("carrierCode", q.CarrierCode)
	params.Set("flightNumber", q.FlightNumber)
	params.Set("scheduledDepartureDate", q.Date)
	endpoint := fmt.Sprintf("%s/schedule/flights?%s", s.baseURL, params.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build schedule request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("schedule request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read schedule response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// Lookup runs the full pipeline for one user-initiated lookup: flight
// number parsing, token acquisition, one schedule query, and response
// normalization. No caching and no rate limiting.
func (s *Session) Lookup(ctx context.Context, flightNumber, date string) ([]Candidate, error) {
	q, err := ParseFlightNumber(flightNumber, date)
	if err != nil {
		return nil, err
	}

	status, body, err := s.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &UpstreamError{Status: status, Body: string(body)}
	}

	return NormalizeCandidates(body)
}
