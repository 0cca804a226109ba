package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vanrental/internal/db"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func NewScheduleRepository(conn *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: conn}
}

func (r *ScheduleRepository) GetAll() ([]db.ScheduleEntry, error) {
	rows, err := r.DB.Query(`
		SELECT day, vehicle_id, status, booking_id
		FROM schedule ORDER BY day, vehicle_id`)
	if err != nil {
		return nil, fmt.Errorf("error querying schedule: %w", err)
	}
	defer rows.Close()
	return scanScheduleEntries(rows)
}

func (r *ScheduleRepository) GetByVehicle(vehicleID int) ([]db.ScheduleEntry, error) {
	rows, err := r.DB.Query(`
		SELECT day, vehicle_id, status, booking_id
		FROM schedule WHERE vehicle_id = $1 ORDER BY day`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("error querying schedule for vehicle %d: %w", vehicleID, err)
	}
	defer rows.Close()
	return scanScheduleEntries(rows)
}

// SearchAvailable returns vehicles of the category whose schedule has no
// occupied day (booked or maintenance) in the inclusive range.
func (r *ScheduleRepository) SearchAvailable(category string, startDate, endDate time.Time) ([]db.Vehicle, error) {
	rows, err := r.DB.Query(`
		SELECT v.id, v.category, v.manufacturer, v.model, v.daily_rental_rate, v.number_of_seats, v.branch_id
		FROM vehicles v
		WHERE v.category = $1
		  AND NOT EXISTS (
			SELECT 1 FROM schedule s
			WHERE s.vehicle_id = v.id
			  AND s.day BETWEEN $2 AND $3
			  AND s.status <> $4
		  )
		ORDER BY v.id`,
		category, startDate, endDate, db.StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("error searching schedule: %w", err)
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func scanScheduleEntries(rows *sql.Rows) ([]db.ScheduleEntry, error) {
	var entries []db.ScheduleEntry
	for rows.Next() {
		var e db.ScheduleEntry
		var bookingID sql.NullInt64
		if err := rows.Scan(&e.Day, &e.VehicleID, &e.Status, &bookingID); err != nil {
			return nil, fmt.Errorf("error scanning schedule entry: %w", err)
		}
		if bookingID.Valid {
			id := int(bookingID.Int64)
			e.BookingID = &id
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating schedule rows: %w", err)
	}
	return entries, nil
}
