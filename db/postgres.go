// Package db provides the PostgreSQL persistence layer for trips and
// their child records.
package db

import (
	"database/sql"
	"fmt"

	"github.com/gilby125/trip-planner-api/config"
	_ "github.com/lib/pq"
)

// PostgresDB represents a PostgreSQL database connection
type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg config.PostgresConfig) (*PostgresDB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return &PostgresDB{db: db}, nil
}

// Close closes the database connection
func (p *PostgresDB) Close() error {
	return p.db.Close()
}

// GetDB returns the underlying database connection
func (p *PostgresDB) GetDB() *sql.DB {
	return p.db
}

// InitSchema initializes the database schema.
//
// Trip dates and flight datetimes are stored as the ISO strings the API
// exchanges; ISO-8601 strings compare lexicographically, so date range
// queries work without parsing.
func (p *PostgresDB) InitSchema() error {
	_, err := p.db.Exec(`
		-- Trips table
		CREATE TABLE IF NOT EXISTS trips (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			destination VARCHAR(255) NOT NULL,
			start_date VARCHAR(10) NOT NULL,
			end_date VARCHAR(10) NOT NULL,
			travelers INT NOT NULL DEFAULT 1,
			notes TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'planning',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		-- Flights table
		CREATE TABLE IF NOT EXISTS flights (
			id UUID PRIMARY KEY,
			trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
			airline VARCHAR(100) NOT NULL,
			flight_number VARCHAR(10) NOT NULL,
			cabin_class VARCHAR(30),
			departure_airport VARCHAR(5),
			departure_city VARCHAR(100),
			departure_datetime VARCHAR(40),
			arrival_airport VARCHAR(5),
			arrival_city VARCHAR(100),
			arrival_datetime VARCHAR(40),
			airline_logo_url VARCHAR(255),
			price_cash DECIMAL(10, 2) NOT NULL DEFAULT 0,
			price_points INT NOT NULL DEFAULT 0,
			price_taxes DECIMAL(10, 2) NOT NULL DEFAULT 0,
			payment_method VARCHAR(10) NOT NULL DEFAULT 'cash',
			status VARCHAR(20) NOT NULL DEFAULT 'planning',
			confirmation_number VARCHAR(50),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		-- Flight segments table, ordered by position within a flight
		CREATE TABLE IF NOT EXISTS flight_segments (
			id SERIAL PRIMARY KEY,
			flight_id UUID NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
			position INT NOT NULL,
			airline VARCHAR(100) NOT NULL,
			flight_number VARCHAR(10) NOT NULL,
			departure_airport VARCHAR(5),
			departure_city VARCHAR(100),
			departure_datetime VARCHAR(40),
			arrival_airport VARCHAR(5),
			arrival_city VARCHAR(100),
			arrival_datetime VARCHAR(40),
			aircraft_type VARCHAR(20),
			aircraft_manufacturer VARCHAR(50),
			UNIQUE (flight_id, position)
		);

		-- Hotels table
		CREATE TABLE IF NOT EXISTS hotels (
			id UUID PRIMARY KEY,
			trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			address VARCHAR(255),
			booking_site VARCHAR(100),
			check_in_date VARCHAR(10) NOT NULL,
			check_out_date VARCHAR(10) NOT NULL,
			room_type VARCHAR(100),
			price_per_night DECIMAL(10, 2) NOT NULL DEFAULT 0,
			total_cash DECIMAL(10, 2) NOT NULL DEFAULT 0,
			total_points INT NOT NULL DEFAULT 0,
			payment_method VARCHAR(10) NOT NULL DEFAULT 'cash',
			status VARCHAR(20) NOT NULL DEFAULT 'planning',
			confirmation_number VARCHAR(50),
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		-- Activities table
		CREATE TABLE IF NOT EXISTS activities (
			id UUID PRIMARY KEY,
			trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			booking_url VARCHAR(500),
			description TEXT,
			category VARCHAR(30) NOT NULL DEFAULT 'other',
			cost_per_person DECIMAL(10, 2) NOT NULL DEFAULT 0,
			date VARCHAR(10) NOT NULL,
			time VARCHAR(5),
			duration INT,
			location VARCHAR(255),
			status VARCHAR(20) NOT NULL DEFAULT 'planned',
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		-- Indexes for trip-scoped lookups
		CREATE INDEX IF NOT EXISTS idx_flights_trip_id ON flights(trip_id);
		CREATE INDEX IF NOT EXISTS idx_segments_flight_id ON flight_segments(flight_id);
		CREATE INDEX IF NOT EXISTS idx_hotels_trip_id ON hotels(trip_id);
		CREATE INDEX IF NOT EXISTS idx_activities_trip_id ON activities(trip_id);
		CREATE INDEX IF NOT EXISTS idx_trips_start_date ON trips(start_date);
	`)

	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}
