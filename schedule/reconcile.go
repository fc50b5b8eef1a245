package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gilby125/trip-planner-api/ref"
	"github.com/gilby125/trip-planner-api/trips"
)

var (
	durationHours   = regexp.MustCompile(`(\d+)H`)
	durationMinutes = regexp.MustCompile(`(\d+)M`)
)

// ParseLegDuration parses a PTxHyM-style duration token. Hours and minutes
// are independently optional and default to 0; "PT2H30M", "PT45M", and
// "PT11H" are all valid.
func ParseLegDuration(token string) time.Duration {
	var d time.Duration
	if m := durationHours.FindStringSubmatch(token); m != nil {
		h, _ := strconv.Atoi(m[1])
		d += time.Duration(h) * time.Hour
	}
	if m := durationMinutes.FindStringSubmatch(token); m != nil {
		min, _ := strconv.Atoi(m[1])
		d += time.Duration(min) * time.Minute
	}
	return d
}

// legNumber resolves the flight number a leg flies under, falling back to
// the candidate's top-level designator when the leg carries none.
func legNumber(c Candidate, leg Leg) string {
	if leg.FlightDesignator != nil {
		if n := leg.FlightDesignator.NumberString(); n != "" {
			return n
		}
	}
	return c.FlightDesignator.NumberString()
}

// matchesFlightNumber compares the segment's recorded flight number with a
// leg's, case-insensitively, accepting either the bare number ("123") or
// the combined designator ("AA123").
func matchesFlightNumber(c Candidate, leg Leg, seg trips.Segment) bool {
	num := legNumber(c, leg)
	if num == "" || seg.FlightNumber == "" {
		return false
	}
	if strings.EqualFold(seg.FlightNumber, num) {
		return true
	}
	return strings.EqualFold(seg.FlightNumber, c.FlightDesignator.CarrierCode+num)
}

// matchesBoardOffAndDate compares a leg's board/off airports and the
// aligned flight point's departure date with the segment's recorded values.
func matchesBoardOffAndDate(c Candidate, i int, seg trips.Segment) bool {
	leg := c.Legs[i]
	if leg.BoardPointIataCode != seg.Departure.Airport || leg.OffPointIataCode != seg.Arrival.Airport {
		return false
	}
	return legDepartureDate(c, i) != "" && legDepartureDate(c, i) == trips.DatePart(seg.Departure.DateTime)
}

// legDepartureDate is the date part of the first departure timing on the
// flight point aligned with leg i.
func legDepartureDate(c Candidate, i int) string {
	if i >= len(c.FlightPoints) {
		return ""
	}
	p := c.FlightPoints[i]
	if p.Departure == nil || len(p.Departure.Timings) == 0 {
		return ""
	}
	return trips.DatePart(p.Departure.Timings[0].Value)
}

// inferArrivalDate derives a leg's arrival date when the response has no
// explicit one: the next flight point's departure date if present, else
// the departure date at midnight plus the scheduled leg duration floored
// to a date, else the departure date itself.
func inferArrivalDate(c Candidate, i int, depDate string) string {
	if i+1 < len(c.FlightPoints) {
		if d := legDepartureDate(c, i+1); d != "" {
			return d
		}
	}
	if depDate != "" && c.Legs[i].ScheduledLegDuration != "" {
		dep, err := time.Parse("2006-01-02", depDate)
		if err == nil {
			return dep.Add(ParseLegDuration(c.Legs[i].ScheduledLegDuration)).Format("2006-01-02")
		}
	}
	return depDate
}

// ReconcileSegment maps a candidate's legs onto a target segment. Legs
// matching the segment's flight number exactly are preferred over legs
// matching by board/off airports plus departure date; within a rule the
// first leg in leg order wins. Returns the rebuilt segment, or ErrNoMatch
// when no leg satisfies either rule.
func ReconcileSegment(c Candidate, seg trips.Segment, ix *ref.Index) (trips.Segment, error) {
	if len(c.FlightPoints) < 2 || len(c.Legs) == 0 {
		return trips.Segment{}, ErrUnexpectedFormat
	}

	for _, match := range []func(int) bool{
		func(i int) bool { return matchesFlightNumber(c, c.Legs[i], seg) },
		func(i int) bool { return matchesBoardOffAndDate(c, i, seg) },
	} {
		for i := range c.Legs {
			if !match(i) {
				continue
			}
			return buildSegment(c, i, ix), nil
		}
	}

	return trips.Segment{}, ErrNoMatch
}

// buildSegment rebuilds a trip segment from leg i of the candidate.
func buildSegment(c Candidate, i int, ix *ref.Index) trips.Segment {
	leg := c.Legs[i]
	depDate := legDepartureDate(c, i)

	out := trips.Segment{
		Airline:      c.FlightDesignator.CarrierCode,
		FlightNumber: legNumber(c, leg),
		Departure: trips.Endpoint{
			Airport:  leg.BoardPointIataCode,
			City:     ix.CityFor(leg.BoardPointIataCode),
			DateTime: depDate,
		},
		Arrival: trips.Endpoint{
			Airport:  leg.OffPointIataCode,
			City:     ix.CityFor(leg.OffPointIataCode),
			DateTime: inferArrivalDate(c, i, depDate),
		},
	}
	if leg.AircraftEquipment != nil {
		out.AircraftType = leg.AircraftEquipment.AircraftType
		out.AircraftManufacturer = leg.AircraftEquipment.Manufacturer
	}
	return out
}
