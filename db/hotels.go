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

const hotelColumns = `id, trip_id, name, COALESCE(address, ''), COALESCE(booking_site, ''),
	check_in_date, check_out_date, COALESCE(room_type, ''), price_per_night,
	total_cash, total_points, payment_method, status,
	COALESCE(confirmation_number, ''), COALESCE(notes, ''), created_at, updated_at`

// CreateHotel inserts a hotel stay.
func (p *PostgresDB) CreateHotel(ctx context.Context, h *trips.Hotel) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	_, err := p.db.ExecContext(
		ctx,
		`INSERT INTO hotels
		(id, trip_id, name, address, booking_site, check_in_date, check_out_date,
		room_type, price_per_night, total_cash, total_points, payment_method,
		status, confirmation_number, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		h.ID, h.TripID, h.Name, h.Address, h.BookingSite, h.CheckInDate, h.CheckOutDate,
		h.RoomType, h.PricePerNight, h.TotalCost.Cash, h.TotalCost.Points, h.PaymentMethod,
		h.Status, h.ConfirmationNumber, h.Notes, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert hotel: %w", err)
	}
	return nil
}

func scanHotel(row interface{ Scan(...any) error }) (trips.Hotel, error) {
	var h trips.Hotel
	err := row.Scan(
		&h.ID, &h.TripID, &h.Name, &h.Address, &h.BookingSite,
		&h.CheckInDate, &h.CheckOutDate, &h.RoomType, &h.PricePerNight,
		&h.TotalCost.Cash, &h.TotalCost.Points, &h.PaymentMethod, &h.Status,
		&h.ConfirmationNumber, &h.Notes, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// GetHotel fetches a hotel by ID.
func (p *PostgresDB) GetHotel(ctx context.Context, id string) (trips.Hotel, error) {
	h, err := scanHotel(p.db.QueryRowContext(
		ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return trips.Hotel{}, ErrNotFound
	}
	if err != nil {
		return trips.Hotel{}, fmt.Errorf("failed to get hotel: %w", err)
	}
	return h, nil
}

// ListHotels returns a trip's hotels ordered by check-in date.
func (p *PostgresDB) ListHotels(ctx context.Context, tripID string) ([]trips.Hotel, error) {
	rows, err := p.db.QueryContext(
		ctx,
		`SELECT `+hotelColumns+` FROM hotels WHERE trip_id = $1 ORDER BY check_in_date, created_at`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	defer rows.Close()

	out := []trips.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// UpdateHotel rewrites a hotel's mutable fields.
func (p *PostgresDB) UpdateHotel(ctx context.Context, h *trips.Hotel) error {
	h.UpdatedAt = time.Now().UTC()
	res, err := p.db.ExecContext(
		ctx,
		`UPDATE hotels SET name = $2, address = $3, booking_site = $4,
		check_in_date = $5, check_out_date = $6, room_type = $7, price_per_night = $8,
		total_cash = $9, total_points = $10, payment_method = $11, status = $12,
		confirmation_number = $13, notes = $14, updated_at = $15
		WHERE id = $1`,
		h.ID, h.Name, h.Address, h.BookingSite,
		h.CheckInDate, h.CheckOutDate, h.RoomType, h.PricePerNight,
		h.TotalCost.Cash, h.TotalCost.Points, h.PaymentMethod, h.Status,
		h.ConfirmationNumber, h.Notes, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update hotel: %w", err)
	}
	return checkAffected(res)
}

// DeleteHotel removes a hotel.
func (p *PostgresDB) DeleteHotel(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	return checkAffected(res)
}
