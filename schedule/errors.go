package schedule

import (
	"errors"
	"fmt"
)

// Lookup and reconciliation failures. All are surfaced to the user as a
// message on the single operation that failed; none are retried and none
// touch already-saved trip data.
var (
	// ErrInvalidFormat: the flight number is not a 2-letter carrier prefix
	// followed by digits. Returned before any network call.
	ErrInvalidFormat = errors.New("invalid flight number format, expected format: AA123")

	// ErrAuth: credentials are unset or the token endpoint rejected them.
	ErrAuth = errors.New("schedule API credentials not configured or rejected")

	// ErrUnexpectedFormat: the response body was none of the accepted shapes.
	ErrUnexpectedFormat = errors.New("unexpected response format from schedule API")

	// ErrNotFound: the query matched zero schedule candidates.
	ErrNotFound = errors.New("no flights found for this flight number on the selected date")

	// ErrNoMatch: no leg in the candidate matched the target segment.
	ErrNoMatch = errors.New("no matching leg found in flight data")
)

// UpstreamError carries a non-2xx schedule API response. The status and
// body are preserved so the HTTP layer can mirror them to the caller.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("schedule API error: status %d: %s", e.Status, e.Body)
}
