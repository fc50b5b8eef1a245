package ref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportLookup(t *testing.T) {
	ix := NewIndex()

	a, ok := ix.Airport("JFK")
	require.True(t, ok)
	assert.Equal(t, "JFK", a.Code)
	assert.Equal(t, "New York", a.City)

	// case-insensitive
	a, ok = ix.Airport("lax")
	require.True(t, ok)
	assert.Equal(t, "Los Angeles", a.City)

	_, ok = ix.Airport("XXX")
	assert.False(t, ok)
}

func TestCityForFallsBackToCode(t *testing.T) {
	ix := NewIndex()
	assert.Equal(t, "New York", ix.CityFor("JFK"))
	assert.Equal(t, "ZZZ", ix.CityFor("ZZZ"))
}

func TestAirlineLookup(t *testing.T) {
	ix := NewIndex()

	a, ok := ix.Airline("AA")
	require.True(t, ok)
	assert.Equal(t, "American Airlines", a.Name)
	assert.Equal(t, "https://content.airhex.com/content/logos/airlines_AA_350_100_r.png", a.LogoURL)

	assert.Equal(t, "Delta Air Lines", ix.AirlineName("DL"))
	assert.Equal(t, "Q9", ix.AirlineName("Q9"))
}

func TestLogoURL(t *testing.T) {
	assert.Equal(t, "", LogoURL(""))
	assert.Equal(t, "https://content.airhex.com/content/logos/airlines_JL_350_100_r.png", LogoURL("jl"))
}

func TestListingsSorted(t *testing.T) {
	ix := NewIndex()

	airports := ix.Airports()
	require.NotEmpty(t, airports)
	for i := 1; i < len(airports); i++ {
		assert.Less(t, airports[i-1].Code, airports[i].Code)
	}

	airlines := ix.Airlines()
	require.NotEmpty(t, airlines)
	for i := 1; i < len(airlines); i++ {
		assert.Less(t, airlines[i-1].Code, airlines[i].Code)
	}
}
