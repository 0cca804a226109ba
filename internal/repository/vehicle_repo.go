package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"vanrental/internal/db"
)

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(conn *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: conn}
}

func (r *VehicleRepository) GetAll() ([]db.Vehicle, error) {
	rows, err := r.DB.Query(`
		SELECT id, category, manufacturer, model, daily_rental_rate, number_of_seats, branch_id
		FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()
	return scanVehicles(rows)
}

// GetByID returns (nil, nil) when no vehicle exists with the given id.
func (r *VehicleRepository) GetByID(vehicleID int) (*db.Vehicle, error) {
	var v db.Vehicle
	err := r.DB.QueryRow(`
		SELECT id, category, manufacturer, model, daily_rental_rate, number_of_seats, branch_id
		FROM vehicles WHERE id = $1`, vehicleID,
	).Scan(&v.ID, &v.Category, &v.Manufacturer, &v.Model, &v.DailyRentalRate, &v.NumberOfSeats, &v.BranchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying vehicle %d: %w", vehicleID, err)
	}
	return &v, nil
}

func (r *VehicleRepository) Create(v *db.Vehicle) error {
	query := `
		INSERT INTO vehicles (category, manufacturer, model, daily_rental_rate, number_of_seats, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return r.DB.QueryRow(query,
		v.Category, v.Manufacturer, v.Model, v.DailyRentalRate, v.NumberOfSeats, v.BranchID,
	).Scan(&v.ID)
}

// GetAvailable returns vehicles with no booking overlapping [startDate, endDate],
// optionally filtered by category and branch. Two inclusive ranges overlap iff
// s1 <= e2 AND s2 <= e1. Results are ordered by vehicle id.
func (r *VehicleRepository) GetAvailable(startDate, endDate time.Time, category *string, branchID *int) ([]db.Vehicle, error) {
	query := `
		SELECT v.id, v.category, v.manufacturer, v.model, v.daily_rental_rate, v.number_of_seats, v.branch_id
		FROM vehicles v
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.vehicle_id = v.id
			  AND b.start_date <= $2
			  AND b.end_date >= $1
		)`
	args := []interface{}{startDate, endDate}
	idx := 3

	if category != nil {
		query += " AND v.category = $" + strconv.Itoa(idx)
		args = append(args, *category)
		idx++
	}
	if branchID != nil {
		query += " AND v.branch_id = $" + strconv.Itoa(idx)
		args = append(args, *branchID)
		idx++
	}
	query += " ORDER BY v.id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying available vehicles: %w", err)
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func scanVehicles(rows *sql.Rows) ([]db.Vehicle, error) {
	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		if err := rows.Scan(&v.ID, &v.Category, &v.Manufacturer, &v.Model, &v.DailyRentalRate, &v.NumberOfSeats, &v.BranchID); err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating vehicle rows: %w", err)
	}
	return vehicles, nil
}
