package repository

import (
	"database/sql"
	"fmt"

	"vanrental/internal/db"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(conn *sql.DB) *AdminRepository {
	return &AdminRepository{DB: conn}
}

// Wipe deletes every row from the domain tables in dependency order so the
// foreign keys hold: schedule, then bookings, then vehicles, then branches.
// The admins table is left alone.
func (r *AdminRepository) Wipe() error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting wipe transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"schedule", "bookings", "vehicles", "branches"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("error wiping %s: %w", table, err)
		}
	}

	// Restart the id sequences so reseeded data gets ids from 1 again.
	for _, seq := range []string{"branches_branch_id_seq", "vehicles_id_seq", "bookings_booking_id_seq"} {
		if _, err := tx.Exec(fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH 1", seq)); err != nil {
			return fmt.Errorf("error restarting sequence %s: %w", seq, err)
		}
	}

	return tx.Commit()
}

// SeedIfEmpty loads the sample data on first startup only; an already
// populated database is left untouched.
func (r *AdminRepository) SeedIfEmpty() error {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM branches`).Scan(&count); err != nil {
		return fmt.Errorf("error counting branches: %w", err)
	}
	if count > 0 {
		return nil
	}
	return r.Seed()
}

// Seed inserts the fixed sample data set: 3 branches, one vehicle per
// category and 3 bookings, plus the schedule rows mirroring those bookings.
// Explicit ids keep the sample referentially consistent; the sequences are
// advanced past them afterwards. Seed rows bypass the no-past-start-date
// rule that applies to API-created bookings.
func (r *AdminRepository) Seed() error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	branches := []db.Branch{
		{BranchID: 1, BranchName: "Downtown Branch", Address: "123 Main Street, City Center", City: "New York"},
		{BranchID: 2, BranchName: "Airport Branch", Address: "456 Airport Drive, Terminal 2", City: "New York"},
		{BranchID: 3, BranchName: "Suburban Branch", Address: "789 Oak Avenue, Suburbia Mall", City: "Albany"},
	}
	for _, b := range branches {
		_, err := tx.Exec(
			`INSERT INTO branches (branch_id, branch_name, address, city) VALUES ($1, $2, $3, $4)`,
			b.BranchID, b.BranchName, b.Address, b.City)
		if err != nil {
			return fmt.Errorf("error seeding branch %d: %w", b.BranchID, err)
		}
	}

	vehicles := []db.Vehicle{
		{ID: 1, Category: "Small", Manufacturer: "Ford", Model: "Courier", DailyRentalRate: 55.00, NumberOfSeats: 8, BranchID: 1},
		{ID: 2, Category: "Medium", Manufacturer: "Ford", Model: "Transit", DailyRentalRate: 85.00, NumberOfSeats: 2, BranchID: 2},
		{ID: 3, Category: "Large", Manufacturer: "Ford", Model: "Jumbo", DailyRentalRate: 95.00, NumberOfSeats: 12, BranchID: 1},
	}
	for _, v := range vehicles {
		_, err := tx.Exec(
			`INSERT INTO vehicles (id, category, manufacturer, model, daily_rental_rate, number_of_seats, branch_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			v.ID, v.Category, v.Manufacturer, v.Model, v.DailyRentalRate, v.NumberOfSeats, v.BranchID)
		if err != nil {
			return fmt.Errorf("error seeding vehicle %d: %w", v.ID, err)
		}
	}

	type seedBooking struct {
		id           int
		vehicleID    int
		start, end   string
		customerName string
		cost         float64
		branchID     int
	}
	bookings := []seedBooking{
		{1, 1, "2024-08-15", "2024-08-20", "John Smith", 375.00, 1},
		{2, 2, "2024-08-18", "2024-08-22", "Jane Doe", 220.00, 2},
		{3, 3, "2024-08-25", "2024-08-30", "Bob Johnson", 475.00, 1},
	}
	for _, b := range bookings {
		_, err := tx.Exec(
			`INSERT INTO bookings (booking_id, vehicle_id, start_date, end_date, customer_name, cost, branch_id)
			 VALUES ($1, $2, $3::date, $4::date, $5, $6, $7)`,
			b.id, b.vehicleID, b.start, b.end, b.customerName, b.cost, b.branchID)
		if err != nil {
			return fmt.Errorf("error seeding booking %d: %w", b.id, err)
		}
		_, err = tx.Exec(
			`INSERT INTO schedule (day, vehicle_id, status, booking_id)
			 SELECT gs::date, $1, $2, $3
			 FROM generate_series($4::date, $5::date, interval '1 day') AS gs`,
			b.vehicleID, db.StatusBooked, b.id, b.start, b.end)
		if err != nil {
			return fmt.Errorf("error seeding schedule rows for booking %d: %w", b.id, err)
		}
	}

	sequences := []struct {
		name string
		next int
	}{
		{"branches_branch_id_seq", len(branches) + 1},
		{"vehicles_id_seq", len(vehicles) + 1},
		{"bookings_booking_id_seq", len(bookings) + 1},
	}
	for _, s := range sequences {
		if _, err := tx.Exec(fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH %d", s.name, s.next)); err != nil {
			return fmt.Errorf("error advancing sequence %s: %w", s.name, err)
		}
	}

	return tx.Commit()
}
