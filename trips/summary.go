package trips

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary aggregates a trip's cost, points, duration, and PTO impact.
type Summary struct {
	Trip            Trip           `json:"trip"`
	TotalCashCost   float64        `json:"total_cash_cost"`
	TotalPointsUsed int            `json:"total_points_used"`
	CostBreakdown   CostBreakdown  `json:"cost_breakdown"`
	Display         SummaryDisplay `json:"display"`
	Duration        int            `json:"duration"`
	PTODaysRequired int            `json:"pto_days_required"`
}

// SummaryDisplay carries the formatted strings the summary view renders
// alongside the raw figures.
type SummaryDisplay struct {
	TotalCashCost   string `json:"total_cash_cost"`
	TotalPointsUsed string `json:"total_points_used"`
	Flights         string `json:"flights"`
	Hotels          string `json:"hotels"`
	Activities      string `json:"activities"`
}

// CostBreakdown splits cash cost by record type.
type CostBreakdown struct {
	Flights    float64 `json:"flights"`
	Hotels     float64 `json:"hotels"`
	Activities float64 `json:"activities"`
}

// CalculateSummary folds a trip's child records into a Summary.
//
// Cash cost semantics: points flights contribute taxes only, cash and
// hybrid flights contribute cash plus taxes; hotels contribute their cash
// total; activities contribute cost-per-person times travelers. Points
// totals multiply flight points by travelers and take hotel points as-is.
func CalculateSummary(trip Trip, flights []Flight, hotels []Hotel, activities []Activity) Summary {
	travelers := float64(trip.Travelers)

	var activitiesCost float64
	for _, a := range activities {
		activitiesCost += a.CostPerPerson
	}
	activitiesCost *= travelers

	var flightsCost float64
	var pointsUsed int
	for _, f := range flights {
		switch f.PaymentMethod {
		case PaymentPoints:
			flightsCost += f.PricePerPerson.Taxes * travelers
		default: // cash and hybrid
			flightsCost += (f.PricePerPerson.Cash + f.PricePerPerson.Taxes) * travelers
		}
		pointsUsed += f.PricePerPerson.Points * trip.Travelers
	}

	var hotelsCost float64
	for _, h := range hotels {
		hotelsCost += h.TotalCost.Cash
		pointsUsed += h.TotalCost.Points
	}

	totalCash := activitiesCost + flightsCost + hotelsCost

	return Summary{
		Trip:            trip,
		TotalCashCost:   totalCash,
		TotalPointsUsed: pointsUsed,
		CostBreakdown: CostBreakdown{
			Flights:    flightsCost,
			Hotels:     hotelsCost,
			Activities: activitiesCost,
		},
		Display: SummaryDisplay{
			TotalCashCost:   FormatCurrency(totalCash, "USD"),
			TotalPointsUsed: FormatPoints(pointsUsed),
			Flights:         FormatCurrency(flightsCost, "USD"),
			Hotels:          FormatCurrency(hotelsCost, "USD"),
			Activities:      FormatCurrency(activitiesCost, "USD"),
		},
		Duration:        DaysBetween(trip.StartDate, trip.EndDate),
		PTODaysRequired: PTODays(trip.StartDate, trip.EndDate),
	}
}

// US federal holidays observed when counting PTO days.
var federalHolidays = map[string]bool{
	"2025-01-01": true, "2025-01-20": true, "2025-02-17": true,
	"2025-05-26": true, "2025-07-04": true, "2025-09-01": true,
	"2025-10-13": true, "2025-11-11": true, "2025-11-27": true,
	"2025-12-25": true,
	"2026-01-01": true, "2026-01-19": true, "2026-02-16": true,
	"2026-05-25": true, "2026-07-03": true, "2026-09-07": true,
	"2026-10-12": true, "2026-11-11": true, "2026-11-26": true,
	"2026-12-25": true,
}

// PTODays counts the business days in [startDate, endDate] needing time
// off: weekends and US federal holidays are skipped.
func PTODays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, DatePart(startDate))
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, DatePart(endDate))
	if err != nil {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if federalHolidays[d.Format(dateLayout)] {
			continue
		}
		days++
	}
	return days
}

var displayPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as "$1,234.56". Unknown codes fall
// back to USD.
func FormatCurrency(amount float64, code string) string {
	cur, err := currency.ParseISO(code)
	if err != nil {
		cur = currency.USD
	}
	return displayPrinter.Sprintf("%v%.2f", currency.Symbol(cur), amount)
}

// FormatPoints renders a points balance with thousands separators.
func FormatPoints(points int) string {
	return displayPrinter.Sprintf("%d", points)
}
