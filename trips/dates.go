package trips

import (
	"regexp"
	"time"

	"github.com/gilby125/trip-planner-api/pkg/logger"
)

const dateLayout = "2006-01-02"

var datePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)

// DatePart extracts the ISO date part from a datetime value. Values may be
// full timestamps ("2026-04-25T08:00:00-04:00") or bare date strings; the
// date prefix is validated by parsing it at local midnight, and values that
// do not yield a real date return "" (logged, not fatal).
func DatePart(value string) string {
	if value == "" {
		return ""
	}
	m := datePrefix.FindStringSubmatch(value)
	if m == nil {
		logger.WithField("value", value).Warn("unparseable date value")
		return ""
	}
	if _, err := time.ParseInLocation(dateLayout, m[1], time.Local); err != nil {
		logger.WithField("value", value).Warn("invalid calendar date")
		return ""
	}
	return m[1]
}

// DaysBetween returns the inclusive number of calendar days between two ISO
// dates. Returns 0 when either date is unparseable.
func DaysBetween(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, DatePart(startDate))
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, DatePart(endDate))
	if err != nil {
		return 0
	}
	if end.Before(start) {
		start, end = end, start
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// addDays shifts an ISO date by n calendar days.
func addDays(date string, n int) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, n).Format(dateLayout)
}
