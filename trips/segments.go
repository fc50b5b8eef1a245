package trips

// SyncEndpoints re-derives the flight's top-level departure and arrival
// from its segment list: the first segment's departure and the last
// segment's arrival define the overall flight. It must run after every
// segment add, edit, remove, or reconciliation. A flight without segments
// keeps its directly entered endpoints.
func SyncEndpoints(f *Flight) {
	if len(f.Segments) == 0 {
		return
	}
	f.Departure = f.Segments[0].Departure
	f.Arrival = f.Segments[len(f.Segments)-1].Arrival
}

// ReplaceSegment swaps the segment at index i and restores the endpoint
// invariant. Out-of-range indexes are ignored.
func ReplaceSegment(f *Flight, i int, seg Segment) {
	if i < 0 || i >= len(f.Segments) {
		return
	}
	f.Segments[i] = seg
	SyncEndpoints(f)
}

// RemoveSegment deletes the segment at index i and restores the endpoint
// invariant. Out-of-range indexes are ignored.
func RemoveSegment(f *Flight, i int) {
	if i < 0 || i >= len(f.Segments) {
		return
	}
	f.Segments = append(f.Segments[:i], f.Segments[i+1:]...)
	SyncEndpoints(f)
}

// AppendSegment adds a segment at the end and restores the endpoint
// invariant.
func AppendSegment(f *Flight, seg Segment) {
	f.Segments = append(f.Segments, seg)
	SyncEndpoints(f)
}
