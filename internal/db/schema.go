package db

import "database/sql"

// InitSchema creates all tables if they do not exist yet. It is safe to
// call on every startup. Creation order follows the foreign keys:
// branches before vehicles before bookings before schedule.
func InitSchema(conn *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS branches (
			branch_id SERIAL PRIMARY KEY,
			branch_name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			id SERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			manufacturer TEXT NOT NULL,
			model TEXT NOT NULL,
			daily_rental_rate NUMERIC(10,2) NOT NULL,
			number_of_seats INTEGER NOT NULL,
			branch_id INTEGER NOT NULL REFERENCES branches (branch_id)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id SERIAL PRIMARY KEY,
			vehicle_id INTEGER NOT NULL REFERENCES vehicles (id),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			customer_name TEXT NOT NULL,
			cost NUMERIC(10,2) NOT NULL,
			branch_id INTEGER NOT NULL REFERENCES branches (branch_id)
		)`,
		`CREATE TABLE IF NOT EXISTS schedule (
			day DATE NOT NULL,
			vehicle_id INTEGER NOT NULL REFERENCES vehicles (id),
			status TEXT NOT NULL,
			booking_id INTEGER REFERENCES bookings (booking_id),
			PRIMARY KEY (day, vehicle_id)
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
