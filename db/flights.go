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

const flightColumns = `id, trip_id, airline, flight_number, COALESCE(cabin_class, ''),
	COALESCE(departure_airport, ''), COALESCE(departure_city, ''), COALESCE(departure_datetime, ''),
	COALESCE(arrival_airport, ''), COALESCE(arrival_city, ''), COALESCE(arrival_datetime, ''),
	COALESCE(airline_logo_url, ''), price_cash, price_points, price_taxes,
	payment_method, status, COALESCE(confirmation_number, ''), created_at, updated_at`

// CreateFlight inserts a flight and its segments in one transaction. The
// caller is expected to have run trips.SyncEndpoints beforehand.
func (p *PostgresDB) CreateFlight(ctx context.Context, f *trips.Flight) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO flights
		(id, trip_id, airline, flight_number, cabin_class,
		departure_airport, departure_city, departure_datetime,
		arrival_airport, arrival_city, arrival_datetime,
		airline_logo_url, price_cash, price_points, price_taxes,
		payment_method, status, confirmation_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		f.ID, f.TripID, f.Airline, f.FlightNumber, f.CabinClass,
		f.Departure.Airport, f.Departure.City, f.Departure.DateTime,
		f.Arrival.Airport, f.Arrival.City, f.Arrival.DateTime,
		f.AirlineLogoURL, f.PricePerPerson.Cash, f.PricePerPerson.Points, f.PricePerPerson.Taxes,
		f.PaymentMethod, f.Status, f.ConfirmationNumber, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert flight: %w", err)
	}

	if err := insertSegments(ctx, tx, f.ID, f.Segments); err != nil {
		return err
	}
	return tx.Commit()
}

func insertSegments(ctx context.Context, tx *sql.Tx, flightID string, segments []trips.Segment) error {
	for i, seg := range segments {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO flight_segments
			(flight_id, position, airline, flight_number,
			departure_airport, departure_city, departure_datetime,
			arrival_airport, arrival_city, arrival_datetime,
			aircraft_type, aircraft_manufacturer)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			flightID, i, seg.Airline, seg.FlightNumber,
			seg.Departure.Airport, seg.Departure.City, seg.Departure.DateTime,
			seg.Arrival.Airport, seg.Arrival.City, seg.Arrival.DateTime,
			seg.AircraftType, seg.AircraftManufacturer,
		)
		if err != nil {
			return fmt.Errorf("failed to insert flight segment %d: %w", i, err)
		}
	}
	return nil
}

// GetFlight fetches a flight and its ordered segments.
func (p *PostgresDB) GetFlight(ctx context.Context, id string) (trips.Flight, error) {
	f, err := scanFlight(p.db.QueryRowContext(
		ctx, `SELECT `+flightColumns+` FROM flights WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return trips.Flight{}, ErrNotFound
	}
	if err != nil {
		return trips.Flight{}, fmt.Errorf("failed to get flight: %w", err)
	}
	if err := p.loadSegments(ctx, &f); err != nil {
		return trips.Flight{}, err
	}
	return f, nil
}

// ListFlights returns a trip's flights ordered by departure.
func (p *PostgresDB) ListFlights(ctx context.Context, tripID string) ([]trips.Flight, error) {
	rows, err := p.db.QueryContext(
		ctx,
		`SELECT `+flightColumns+` FROM flights WHERE trip_id = $1 ORDER BY departure_datetime, created_at`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	defer rows.Close()

	out := []trips.Flight{}
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := p.loadSegments(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scanFlight(row interface{ Scan(...any) error }) (trips.Flight, error) {
	var f trips.Flight
	err := row.Scan(
		&f.ID, &f.TripID, &f.Airline, &f.FlightNumber, &f.CabinClass,
		&f.Departure.Airport, &f.Departure.City, &f.Departure.DateTime,
		&f.Arrival.Airport, &f.Arrival.City, &f.Arrival.DateTime,
		&f.AirlineLogoURL, &f.PricePerPerson.Cash, &f.PricePerPerson.Points, &f.PricePerPerson.Taxes,
		&f.PaymentMethod, &f.Status, &f.ConfirmationNumber, &f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}

func (p *PostgresDB) loadSegments(ctx context.Context, f *trips.Flight) error {
	rows, err := p.db.QueryContext(
		ctx,
		`SELECT airline, flight_number,
		COALESCE(departure_airport, ''), COALESCE(departure_city, ''), COALESCE(departure_datetime, ''),
		COALESCE(arrival_airport, ''), COALESCE(arrival_city, ''), COALESCE(arrival_datetime, ''),
		COALESCE(aircraft_type, ''), COALESCE(aircraft_manufacturer, '')
		FROM flight_segments WHERE flight_id = $1 ORDER BY position`,
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load flight segments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seg trips.Segment
		err := rows.Scan(
			&seg.Airline, &seg.FlightNumber,
			&seg.Departure.Airport, &seg.Departure.City, &seg.Departure.DateTime,
			&seg.Arrival.Airport, &seg.Arrival.City, &seg.Arrival.DateTime,
			&seg.AircraftType, &seg.AircraftManufacturer,
		)
		if err != nil {
			return fmt.Errorf("failed to scan flight segment: %w", err)
		}
		f.Segments = append(f.Segments, seg)
	}
	return rows.Err()
}

// UpdateFlight rewrites a flight and replaces its segment list in one
// transaction.
func (p *PostgresDB) UpdateFlight(ctx context.Context, f *trips.Flight) error {
	f.UpdatedAt = time.Now().UTC()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(
		ctx,
		`UPDATE flights SET airline = $2, flight_number = $3, cabin_class = $4,
		departure_airport = $5, departure_city = $6, departure_datetime = $7,
		arrival_airport = $8, arrival_city = $9, arrival_datetime = $10,
		airline_logo_url = $11, price_cash = $12, price_points = $13, price_taxes = $14,
		payment_method = $15, status = $16, confirmation_number = $17, updated_at = $18
		WHERE id = $1`,
		f.ID, f.Airline, f.FlightNumber, f.CabinClass,
		f.Departure.Airport, f.Departure.City, f.Departure.DateTime,
		f.Arrival.Airport, f.Arrival.City, f.Arrival.DateTime,
		f.AirlineLogoURL, f.PricePerPerson.Cash, f.PricePerPerson.Points, f.PricePerPerson.Taxes,
		f.PaymentMethod, f.Status, f.ConfirmationNumber, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update flight: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM flight_segments WHERE flight_id = $1`, f.ID); err != nil {
		return fmt.Errorf("failed to clear flight segments: %w", err)
	}
	if err := insertSegments(ctx, tx, f.ID, f.Segments); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteFlight removes a flight; its segments cascade.
func (p *PostgresDB) DeleteFlight(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}
	return checkAffected(res)
}
