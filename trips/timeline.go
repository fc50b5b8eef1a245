package trips

// Day is one calendar day of a trip's timeline with everything touching it.
type Day struct {
	Date       string     `json:"date"`
	Flights    []Flight   `json:"flights"`
	Hotels     []Hotel    `json:"hotels"`
	Activities []Activity `json:"activities"`
}

// FlightTouchesDay reports whether a flight touches the given calendar day.
// Flights with segments are assigned to a day if any segment departs or
// arrives on it; flights without segments fall back to the top-level
// departure and arrival dates.
func FlightTouchesDay(f Flight, date string) bool {
	if len(f.Segments) > 0 {
		for _, seg := range f.Segments {
			if DatePart(seg.Departure.DateTime) == date || DatePart(seg.Arrival.DateTime) == date {
				return true
			}
		}
		return false
	}
	return DatePart(f.Departure.DateTime) == date || DatePart(f.Arrival.DateTime) == date
}

// hotelTouchesDay: a hotel shows up on its check-in and check-out days.
func hotelTouchesDay(h Hotel, date string) bool {
	return DatePart(h.CheckInDate) == date || DatePart(h.CheckOutDate) == date
}

// effectiveDeparture is the date the flight actually leaves: the first
// segment's departure when segments exist, else the top-level departure.
func effectiveDeparture(f Flight) string {
	if len(f.Segments) > 0 {
		return DatePart(f.Segments[0].Departure.DateTime)
	}
	return DatePart(f.Departure.DateTime)
}

// DayRange returns the trip's displayed day range as ISO dates. The range
// starts at min(trip start, earliest flight departure) so a pre-trip
// outbound flight is visible, and ends at the trip's end date. Late
// arrivals do not extend the range forward; that asymmetry is intentional
// until product decides otherwise.
func DayRange(trip Trip, flights []Flight) []string {
	start := DatePart(trip.StartDate)
	end := DatePart(trip.EndDate)
	if start == "" || end == "" {
		return nil
	}

	for _, f := range flights {
		if dep := effectiveDeparture(f); dep != "" && dep < start {
			start = dep
		}
	}

	n := DaysBetween(start, end)
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, addDays(start, i))
	}
	return days
}

// BuildTimeline buckets a trip's flights, hotels, and activities into
// calendar-day groups over the trip's displayed range.
func BuildTimeline(trip Trip, flights []Flight, hotels []Hotel, activities []Activity) []Day {
	days := DayRange(trip, flights)
	timeline := make([]Day, 0, len(days))

	for _, date := range days {
		day := Day{
			Date:       date,
			Flights:    []Flight{},
			Hotels:     []Hotel{},
			Activities: []Activity{},
		}
		for _, f := range flights {
			if FlightTouchesDay(f, date) {
				day.Flights = append(day.Flights, f)
			}
		}
		for _, h := range hotels {
			if hotelTouchesDay(h, date) {
				day.Hotels = append(day.Hotels, h)
			}
		}
		for _, a := range activities {
			if DatePart(a.Date) == date {
				day.Activities = append(day.Activities, a)
			}
		}
		timeline = append(timeline, day)
	}
	return timeline
}
