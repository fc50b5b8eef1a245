package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gilby125/trip-planner-api/trips"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence interface the API handlers depend on.
type Store interface {
	CreateTrip(ctx context.Context, t *trips.Trip) error
	GetTrip(ctx context.Context, id string) (trips.Trip, error)
	ListTrips(ctx context.Context) ([]trips.Trip, error)
	UpdateTrip(ctx context.Context, t *trips.Trip) error
	DeleteTrip(ctx context.Context, id string) error
	TripsStartingBetween(ctx context.Context, startDate, endDate string) ([]trips.Trip, error)

	CreateFlight(ctx context.Context, f *trips.Flight) error
	GetFlight(ctx context.Context, id string) (trips.Flight, error)
	ListFlights(ctx context.Context, tripID string) ([]trips.Flight, error)
	UpdateFlight(ctx context.Context, f *trips.Flight) error
	DeleteFlight(ctx context.Context, id string) error

	CreateHotel(ctx context.Context, h *trips.Hotel) error
	GetHotel(ctx context.Context, id string) (trips.Hotel, error)
	ListHotels(ctx context.Context, tripID string) ([]trips.Hotel, error)
	UpdateHotel(ctx context.Context, h *trips.Hotel) error
	DeleteHotel(ctx context.Context, id string) error

	CreateActivity(ctx context.Context, a *trips.Activity) error
	GetActivity(ctx context.Context, id string) (trips.Activity, error)
	ListActivities(ctx context.Context, tripID string) ([]trips.Activity, error)
	UpdateActivity(ctx context.Context, a *trips.Activity) error
	DeleteActivity(ctx context.Context, id string) error
}

var _ Store = (*PostgresDB)(nil)

// CreateTrip inserts a new trip, assigning an ID when none is set.
func (p *PostgresDB) CreateTrip(ctx context.Context, t *trips.Trip) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = trips.TripStatusPlanning
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := p.db.ExecContext(
		ctx,
		`INSERT INTO trips
		(id, name, destination, start_date, end_date, travelers, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.Name, t.Destination, t.StartDate, t.EndDate, t.Travelers, t.Notes, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

func scanTrip(row interface{ Scan(...any) error }) (trips.Trip, error) {
	var t trips.Trip
	err := row.Scan(
		&t.ID, &t.Name, &t.Destination, &t.StartDate, &t.EndDate,
		&t.Travelers, &t.Notes, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

const tripColumns = `id, name, destination, start_date, end_date, travelers, COALESCE(notes, ''), status, created_at, updated_at`

// GetTrip fetches a trip by ID.
func (p *PostgresDB) GetTrip(ctx context.Context, id string) (trips.Trip, error) {
	t, err := scanTrip(p.db.QueryRowContext(
		ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return trips.Trip{}, ErrNotFound
	}
	if err != nil {
		return trips.Trip{}, fmt.Errorf("failed to get trip: %w", err)
	}
	return t, nil
}

// ListTrips returns all trips ordered by start date descending.
func (p *PostgresDB) ListTrips(ctx context.Context) ([]trips.Trip, error) {
	rows, err := p.db.QueryContext(
		ctx, `SELECT `+tripColumns+` FROM trips ORDER BY start_date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()
	return collectTrips(rows)
}

// TripsStartingBetween returns trips whose start date falls in the
// inclusive [startDate, endDate] range. ISO dates compare as strings.
func (p *PostgresDB) TripsStartingBetween(ctx context.Context, startDate, endDate string) ([]trips.Trip, error) {
	rows, err := p.db.QueryContext(
		ctx,
		`SELECT `+tripColumns+` FROM trips
		WHERE start_date >= $1 AND start_date <= $2 AND status != $3
		ORDER BY start_date`,
		startDate, endDate, trips.TripStatusArchived,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming trips: %w", err)
	}
	defer rows.Close()
	return collectTrips(rows)
}

func collectTrips(rows *sql.Rows) ([]trips.Trip, error) {
	out := []trips.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTrip rewrites a trip's mutable fields.
func (p *PostgresDB) UpdateTrip(ctx context.Context, t *trips.Trip) error {
	t.UpdatedAt = time.Now().UTC()
	res, err := p.db.ExecContext(
		ctx,
		`UPDATE trips SET name = $2, destination = $3, start_date = $4, end_date = $5,
		travelers = $6, notes = $7, status = $8, updated_at = $9
		WHERE id = $1`,
		t.ID, t.Name, t.Destination, t.StartDate, t.EndDate, t.Travelers, t.Notes, t.Status, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return checkAffected(res)
}

// DeleteTrip removes a trip; child records cascade.
func (p *PostgresDB) DeleteTrip(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
