// Package database owns the Postgres handle: construction with a ping-retry
// loop, schema creation, and first-run seeding. The *sql.DB it returns is
// injected into the repositories and closed by main on shutdown; nothing else
// holds global database state.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
)

const (
	connectAttempts = 30
	connectDelay    = time.Second
)

// Open constructs the pool and waits for the database to accept connections.
// Hosted databases often come up after the app container, so failing fast on
// the first refused connection would just crash-loop.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		err = db.Ping()
		if err == nil {
			log.WithField("attempt", attempt).Info("database connection established")
			return db, nil
		}
		log.WithFields(log.Fields{
			"attempt": attempt,
			"max":     connectAttempts,
		}).WithError(err).Warn("database not ready")
		time.Sleep(connectDelay)
	}

	db.Close()
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", connectAttempts, err)
}

// Migrate creates the schema when it does not exist yet.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price INTEGER NOT NULL,
			image_url TEXT NOT NULL,
			category TEXT NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_address TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_email TEXT,
			total_amount INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			price INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
