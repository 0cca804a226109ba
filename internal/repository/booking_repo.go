package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"vanrental/internal/db"
	"vanrental/internal/utils"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(conn *sql.DB) *BookingRepository {
	return &BookingRepository{DB: conn}
}

func (r *BookingRepository) GetAll() ([]db.Booking, error) {
	rows, err := r.DB.Query(`
		SELECT booking_id, vehicle_id, start_date, end_date, customer_name, cost, branch_id
		FROM bookings ORDER BY booking_id`)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := rows.Scan(&b.BookingID, &b.VehicleID, &b.StartDate, &b.EndDate, &b.CustomerName, &b.Cost, &b.BranchID); err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

// GetByID returns (nil, nil) when no booking exists with the given id.
func (r *BookingRepository) GetByID(bookingID int) (*db.Booking, error) {
	var b db.Booking
	err := r.DB.QueryRow(`
		SELECT booking_id, vehicle_id, start_date, end_date, customer_name, cost, branch_id
		FROM bookings WHERE booking_id = $1`, bookingID,
	).Scan(&b.BookingID, &b.VehicleID, &b.StartDate, &b.EndDate, &b.CustomerName, &b.Cost, &b.BranchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying booking %d: %w", bookingID, err)
	}
	return &b, nil
}

// CreateBooking runs the whole reservation inside one transaction: it locks
// the candidate vehicle rows, takes the first one (by id) with no overlapping
// booking, inserts the booking and materializes one schedule row per rental
// day. Under READ COMMITTED a transaction that waited on the row lock still
// sees its original snapshot, so two racing requests can both pass the
// availability check; the schedule primary key (day, vehicle_id) then fails
// the loser's insert, which is reported as no vehicle available.
func (r *BookingRepository) CreateBooking(category string, branchID int, startDate, endDate time.Time, customerName string) (*db.Booking, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting booking transaction: %w", err)
	}
	defer tx.Rollback()

	var vehicleID int
	var dailyRate float64
	err = tx.QueryRow(`
		SELECT v.id, v.daily_rental_rate
		FROM vehicles v
		WHERE v.category = $1 AND v.branch_id = $2
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.vehicle_id = v.id
			  AND b.start_date <= $4
			  AND b.end_date >= $3
		  )
		ORDER BY v.id
		LIMIT 1
		FOR UPDATE OF v`,
		category, branchID, startDate, endDate,
	).Scan(&vehicleID, &dailyRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoVehicleAvailable
		}
		return nil, fmt.Errorf("error selecting available vehicle: %w", err)
	}

	booking := &db.Booking{
		VehicleID:    vehicleID,
		StartDate:    startDate,
		EndDate:      endDate,
		CustomerName: customerName,
		Cost:         dailyRate * float64(utils.RentalDays(startDate, endDate)),
		BranchID:     branchID,
	}
	err = tx.QueryRow(`
		INSERT INTO bookings (vehicle_id, start_date, end_date, customer_name, cost, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING booking_id`,
		booking.VehicleID, booking.StartDate, booking.EndDate, booking.CustomerName, booking.Cost, booking.BranchID,
	).Scan(&booking.BookingID)
	if err != nil {
		return nil, fmt.Errorf("error inserting booking: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO schedule (day, vehicle_id, status, booking_id)
		SELECT gs::date, $1, $2, $3
		FROM generate_series($4::date, $5::date, interval '1 day') AS gs`,
		booking.VehicleID, db.StatusBooked, booking.BookingID, booking.StartDate, booking.EndDate,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// A concurrent booking won the race for these days.
			return nil, ErrNoVehicleAvailable
		}
		return nil, fmt.Errorf("error inserting schedule rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing booking: %w", err)
	}
	return booking, nil
}

// DeleteExact removes a booking only when id, start date and customer name
// all match the stored row. It reports false when no such booking exists.
// The booking's schedule rows go with it.
func (r *BookingRepository) DeleteExact(bookingID int, startDate time.Time, customerName string) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, fmt.Errorf("error starting cancel transaction: %w", err)
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRow(`
		SELECT booking_id FROM bookings
		WHERE booking_id = $1 AND start_date = $2 AND customer_name = $3`,
		bookingID, startDate, customerName,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error verifying booking %d: %w", bookingID, err)
	}

	if _, err := tx.Exec(`DELETE FROM schedule WHERE booking_id = $1`, id); err != nil {
		return false, fmt.Errorf("error deleting schedule rows for booking %d: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM bookings WHERE booking_id = $1`, id); err != nil {
		return false, fmt.Errorf("error deleting booking %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing cancel: %w", err)
	}
	return true, nil
}
