package trips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSummary(t *testing.T) {
	trip := testTrip() // 2 travelers, 2026-04-25 .. 2026-04-28

	flights := []Flight{
		{
			PaymentMethod:  PaymentCash,
			PricePerPerson: Price{Cash: 400, Taxes: 50},
		},
		{
			PaymentMethod:  PaymentPoints,
			PricePerPerson: Price{Points: 60000, Taxes: 5.60},
		},
	}
	hotels := []Hotel{
		{TotalCost: HotelCost{Cash: 900}},
		{TotalCost: HotelCost{Points: 30000}},
	}
	activities := []Activity{
		{CostPerPerson: 75},
		{CostPerPerson: 25},
	}

	s := CalculateSummary(trip, flights, hotels, activities)

	// Cash flight: (400+50)*2. Points flight: taxes only, 5.60*2.
	assert.InDelta(t, 911.20, s.CostBreakdown.Flights, 0.001)
	assert.InDelta(t, 900, s.CostBreakdown.Hotels, 0.001)
	assert.InDelta(t, 200, s.CostBreakdown.Activities, 0.001)
	assert.InDelta(t, 2011.20, s.TotalCashCost, 0.001)

	// Flight points scale by travelers; hotel points are totals already.
	assert.Equal(t, 150000, s.TotalPointsUsed)

	assert.Equal(t, 4, s.Duration)

	// The display strings mirror the raw figures.
	assert.Contains(t, s.Display.TotalCashCost, "$")
	assert.Contains(t, s.Display.TotalCashCost, "2,011.20")
	assert.Contains(t, s.Display.Flights, "911.20")
	assert.Contains(t, s.Display.Hotels, "900")
	assert.Contains(t, s.Display.Activities, "200")
	assert.Equal(t, "150,000", s.Display.TotalPointsUsed)
}

func TestCalculateSummaryHybridFlight(t *testing.T) {
	trip := testTrip()
	flights := []Flight{{
		PaymentMethod:  PaymentHybrid,
		PricePerPerson: Price{Cash: 100, Points: 20000, Taxes: 30},
	}}

	s := CalculateSummary(trip, flights, nil, nil)
	assert.InDelta(t, 260, s.TotalCashCost, 0.001)
	assert.Equal(t, 40000, s.TotalPointsUsed)
}

func TestCalculateSummaryEmpty(t *testing.T) {
	s := CalculateSummary(testTrip(), nil, nil, nil)
	assert.Zero(t, s.TotalCashCost)
	assert.Zero(t, s.TotalPointsUsed)
	assert.Equal(t, 4, s.Duration)
}

func TestPTODays(t *testing.T) {
	// Sat 2026-04-25 .. Tue 2026-04-28: skip the weekend.
	assert.Equal(t, 2, PTODays("2026-04-25", "2026-04-28"))

	// Week containing Memorial Day 2026 (Mon 2026-05-25).
	assert.Equal(t, 4, PTODays("2026-05-25", "2026-05-29"))

	// Pure weekend needs no PTO.
	assert.Equal(t, 0, PTODays("2026-04-25", "2026-04-26"))

	assert.Equal(t, 0, PTODays("garbage", "2026-04-28"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.50, "USD"))
	assert.Contains(t, FormatCurrency(100, "EUR"), "€")
	// Unknown codes fall back to USD.
	assert.Contains(t, FormatCurrency(10, "???"), "$")
}

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "150,000", FormatPoints(150000))
	assert.Equal(t, "0", FormatPoints(0))
}
