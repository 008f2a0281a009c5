package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Migrate creates the four tables when they are missing. It is idempotent and
// meant to run once before the HTTP server starts.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		createUsersTable,
		createRestaurantsTable,
		createMenusTable,
		createReservationsTable,
	}

	for i, stmt := range statements {
		log.Printf("Running migration %d/%d", i+1, len(statements))
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id SERIAL PRIMARY KEY,
  username VARCHAR(100) NOT NULL,
  email VARCHAR(120) NOT NULL UNIQUE,
  password VARCHAR(100) NOT NULL
)`

const createRestaurantsTable = `
CREATE TABLE IF NOT EXISTS restaurants (
  id SERIAL PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  location VARCHAR(100) NOT NULL,
  max_capacity INTEGER NOT NULL
)`

const createMenusTable = `
CREATE TABLE IF NOT EXISTS menus (
  id SERIAL PRIMARY KEY,
  restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
  name VARCHAR(100) NOT NULL,
  description VARCHAR(255),
  price DOUBLE PRECISION NOT NULL
)`

const createReservationsTable = `
CREATE TABLE IF NOT EXISTS reservations (
  id SERIAL PRIMARY KEY,
  user_id INTEGER NOT NULL REFERENCES users(id),
  restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
  reservation_date TIMESTAMP NOT NULL,
  guests INTEGER NOT NULL
)`
