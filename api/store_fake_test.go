package api

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/trips"
)

// fakeStore is an in-memory db.Store for handler tests.
type fakeStore struct {
	trips      map[string]trips.Trip
	flights    map[string]trips.Flight
	hotels     map[string]trips.Hotel
	activities map[string]trips.Activity
	nextID     int

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trips:      map[string]trips.Trip{},
		flights:    map[string]trips.Flight{},
		hotels:     map[string]trips.Hotel{},
		activities: map[string]trips.Activity{},
	}
}

func (s *fakeStore) id() string {
	s.nextID++
	return fmt.Sprintf("id-%d", s.nextID)
}

func (s *fakeStore) CreateTrip(_ context.Context, t *trips.Trip) error {
	if s.failWith != nil {
		return s.failWith
	}
	if t.ID == "" {
		t.ID = s.id()
	}
	if t.Status == "" {
		t.Status = trips.TripStatusPlanning
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.trips[t.ID] = *t
	return nil
}

func (s *fakeStore) GetTrip(_ context.Context, id string) (trips.Trip, error) {
	if s.failWith != nil {
		return trips.Trip{}, s.failWith
	}
	t, ok := s.trips[id]
	if !ok {
		return trips.Trip{}, db.ErrNotFound
	}
	return t, nil
}

func (s *fakeStore) ListTrips(context.Context) ([]trips.Trip, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []trips.Trip{}
	for _, t := range s.trips {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) UpdateTrip(_ context.Context, t *trips.Trip) error {
	if _, ok := s.trips[t.ID]; !ok {
		return db.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	s.trips[t.ID] = *t
	return nil
}

func (s *fakeStore) DeleteTrip(_ context.Context, id string) error {
	if _, ok := s.trips[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.trips, id)
	for fid, f := range s.flights {
		if f.TripID == id {
			delete(s.flights, fid)
		}
	}
	for hid, h := range s.hotels {
		if h.TripID == id {
			delete(s.hotels, hid)
		}
	}
	for aid, a := range s.activities {
		if a.TripID == id {
			delete(s.activities, aid)
		}
	}
	return nil
}

func (s *fakeStore) TripsStartingBetween(_ context.Context, startDate, endDate string) ([]trips.Trip, error) {
	out := []trips.Trip{}
	for _, t := range s.trips {
		if t.StartDate >= startDate && t.StartDate <= endDate {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateFlight(_ context.Context, f *trips.Flight) error {
	if s.failWith != nil {
		return s.failWith
	}
	if f.ID == "" {
		f.ID = s.id()
	}
	s.flights[f.ID] = *f
	return nil
}

func (s *fakeStore) GetFlight(_ context.Context, id string) (trips.Flight, error) {
	f, ok := s.flights[id]
	if !ok {
		return trips.Flight{}, db.ErrNotFound
	}
	return f, nil
}

func (s *fakeStore) ListFlights(_ context.Context, tripID string) ([]trips.Flight, error) {
	out := []trips.Flight{}
	for _, f := range s.flights {
		if f.TripID == tripID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) UpdateFlight(_ context.Context, f *trips.Flight) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.flights[f.ID]; !ok {
		return db.ErrNotFound
	}
	s.flights[f.ID] = *f
	return nil
}

func (s *fakeStore) DeleteFlight(_ context.Context, id string) error {
	if _, ok := s.flights[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.flights, id)
	return nil
}

func (s *fakeStore) CreateHotel(_ context.Context, h *trips.Hotel) error {
	if h.ID == "" {
		h.ID = s.id()
	}
	s.hotels[h.ID] = *h
	return nil
}

func (s *fakeStore) GetHotel(_ context.Context, id string) (trips.Hotel, error) {
	h, ok := s.hotels[id]
	if !ok {
		return trips.Hotel{}, db.ErrNotFound
	}
	return h, nil
}

func (s *fakeStore) ListHotels(_ context.Context, tripID string) ([]trips.Hotel, error) {
	out := []trips.Hotel{}
	for _, h := range s.hotels {
		if h.TripID == tripID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) UpdateHotel(_ context.Context, h *trips.Hotel) error {
	if _, ok := s.hotels[h.ID]; !ok {
		return db.ErrNotFound
	}
	s.hotels[h.ID] = *h
	return nil
}

func (s *fakeStore) DeleteHotel(_ context.Context, id string) error {
	if _, ok := s.hotels[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.hotels, id)
	return nil
}

func (s *fakeStore) CreateActivity(_ context.Context, a *trips.Activity) error {
	if a.ID == "" {
		a.ID = s.id()
	}
	s.activities[a.ID] = *a
	return nil
}

func (s *fakeStore) GetActivity(_ context.Context, id string) (trips.Activity, error) {
	a, ok := s.activities[id]
	if !ok {
		return trips.Activity{}, db.ErrNotFound
	}
	return a, nil
}

func (s *fakeStore) ListActivities(_ context.Context, tripID string) ([]trips.Activity, error) {
	out := []trips.Activity{}
	for _, a := range s.activities {
		if a.TripID == tripID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) UpdateActivity(_ context.Context, a *trips.Activity) error {
	if _, ok := s.activities[a.ID]; !ok {
		return db.ErrNotFound
	}
	s.activities[a.ID] = *a
	return nil
}

func (s *fakeStore) DeleteActivity(_ context.Context, id string) error {
	if _, ok := s.activities[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.activities, id)
	return nil
}
