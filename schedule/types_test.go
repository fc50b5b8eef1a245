package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlightNumber(t *testing.T) {
	q, err := ParseFlightNumber("AA123", "2026-04-25")
	require.NoError(t, err)
	assert.Equal(t, "AA", q.CarrierCode)
	assert.Equal(t, "123", q.FlightNumber)
	assert.Equal(t, "2026-04-25", q.Date)

	// carrier prefix is upper-cased
	q, err = ParseFlightNumber("ba9", "2026-04-25")
	require.NoError(t, err)
	assert.Equal(t, "BA", q.CarrierCode)
	assert.Equal(t, "9", q.FlightNumber)
}

func TestParseFlightNumberInvalid(t *testing.T) {
	for _, input := range []string{
		"", "123", "A123", "AAA123", "AA", "AA12a", "AA 123", "1A23", "AA123X",
	} {
		_, err := ParseFlightNumber(input, "2026-04-25")
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", input)
	}
}

func TestNormalizeCandidatesBareArray(t *testing.T) {
	body := `[{"flightDesignator":{"carrierCode":"AA","flightNumber":123}}]`
	candidates, err := NormalizeCandidates([]byte(body))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "AA", candidates[0].FlightDesignator.CarrierCode)
	assert.Equal(t, "123", candidates[0].FlightDesignator.NumberString())
}

func TestNormalizeCandidatesDataEnvelope(t *testing.T) {
	body := `{"data":[{"flightDesignator":{"carrierCode":"DL","flightNumber":42}},{"flightDesignator":{"carrierCode":"DL","flightNumber":42}}]}`
	candidates, err := NormalizeCandidates([]byte(body))
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestNormalizeCandidatesFlightsEnvelope(t *testing.T) {
	body := `{"flights":[{"flightDesignator":{"carrierCode":"UA","flightNumber":"88"}}]}`
	candidates, err := NormalizeCandidates([]byte(body))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "88", candidates[0].FlightDesignator.NumberString())
}

func TestNormalizeCandidatesRejectsOtherShapes(t *testing.T) {
	for _, body := range []string{
		``, `null`, `"flights"`, `42`,
		`{"meta":{"count":2}}`,
		`{"data":{"flightDesignator":{}}}`,
		`{"flights":"none"}`,
		`not json at all`,
	} {
		_, err := NormalizeCandidates([]byte(body))
		assert.ErrorIs(t, err, ErrUnexpectedFormat, "body %q", body)
	}
}

func TestDesignatorNumberString(t *testing.T) {
	assert.Equal(t, "123", Designator{Number: "123"}.NumberString())
	assert.Equal(t, "456", Designator{FlightNumber: "456"}.NumberString())
	assert.Equal(t, "123", Designator{Number: "123", FlightNumber: "456"}.NumberString())
	assert.Equal(t, "", Designator{}.NumberString())
}
