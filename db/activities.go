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

const activityColumns = `id, trip_id, title, COALESCE(booking_url, ''), COALESCE(description, ''),
	category, cost_per_person, date, COALESCE(time, ''), COALESCE(duration, 0),
	COALESCE(location, ''), status, COALESCE(notes, ''), created_at, updated_at`

// CreateActivity inserts an activity.
func (p *PostgresDB) CreateActivity(ctx context.Context, a *trips.Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := p.db.ExecContext(
		ctx,
		`INSERT INTO activities
		(id, trip_id, title, booking_url, description, category, cost_per_person,
		date, time, duration, location, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, a.TripID, a.Title, a.BookingURL, a.Description, a.Category, a.CostPerPerson,
		a.Date, a.Time, a.Duration, a.Location, a.Status, a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

func scanActivity(row interface{ Scan(...any) error }) (trips.Activity, error) {
	var a trips.Activity
	err := row.Scan(
		&a.ID, &a.TripID, &a.Title, &a.BookingURL, &a.Description,
		&a.Category, &a.CostPerPerson, &a.Date, &a.Time, &a.Duration,
		&a.Location, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// GetActivity fetches an activity by ID.
func (p *PostgresDB) GetActivity(ctx context.Context, id string) (trips.Activity, error) {
	a, err := scanActivity(p.db.QueryRowContext(
		ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return trips.Activity{}, ErrNotFound
	}
	if err != nil {
		return trips.Activity{}, fmt.Errorf("failed to get activity: %w", err)
	}
	return a, nil
}

// ListActivities returns a trip's activities ordered by date and time.
func (p *PostgresDB) ListActivities(ctx context.Context, tripID string) ([]trips.Activity, error) {
	rows, err := p.db.QueryContext(
		ctx,
		`SELECT `+activityColumns+` FROM activities WHERE trip_id = $1 ORDER BY date, time, created_at`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	out := []trips.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateActivity rewrites an activity's mutable fields.
func (p *PostgresDB) UpdateActivity(ctx context.Context, a *trips.Activity) error {
	a.UpdatedAt = time.Now().UTC()
	res, err := p.db.ExecContext(
		ctx,
		`UPDATE activities SET title = $2, booking_url = $3, description = $4,
		category = $5, cost_per_person = $6, date = $7, time = $8, duration = $9,
		location = $10, status = $11, notes = $12, updated_at = $13
		WHERE id = $1`,
		a.ID, a.Title, a.BookingURL, a.Description,
		a.Category, a.CostPerPerson, a.Date, a.Time, a.Duration,
		a.Location, a.Status, a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return checkAffected(res)
}

// DeleteActivity removes an activity.
func (p *PostgresDB) DeleteActivity(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return checkAffected(res)
}
