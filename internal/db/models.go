package db

import "time"

// Schedule row statuses.
const (
	StatusBooked      = "booked"
	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
)

type Branch struct {
	BranchID   int
	BranchName string
	Address    string
	City       string
}

type Vehicle struct {
	ID              int
	Category        string
	Manufacturer    string
	Model           string
	DailyRentalRate float64
	NumberOfSeats   int
	BranchID        int
}

type Booking struct {
	BookingID    int
	VehicleID    int
	StartDate    time.Time
	EndDate      time.Time
	CustomerName string
	Cost         float64
	BranchID     int
}

// ScheduleEntry materializes one day of occupancy for one vehicle.
// BookingID is nil unless the status is booked.
type ScheduleEntry struct {
	Day       time.Time
	VehicleID int
	Status    string
	BookingID *int
}

type Admin struct {
	ID           int
	Email        string
	PasswordHash string
}
