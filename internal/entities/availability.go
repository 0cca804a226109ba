package entities

type AvailabilityRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Category  *string `json:"category,omitempty"`
	BranchID  *int    `json:"branch_id,omitempty"`
}

// AvailableVehicle is one search hit: vehicle attributes plus the total
// cost for the requested span.
type AvailableVehicle struct {
	VehicleID       int     `json:"vehicle_id"`
	Category        string  `json:"category"`
	Manufacturer    string  `json:"manufacturer"`
	Model           string  `json:"model"`
	DailyRentalRate float64 `json:"daily_rental_rate"`
	NumberOfSeats   int     `json:"number_of_seats"`
	BranchID        int     `json:"branch_id"`
	TotalCost       float64 `json:"total_cost"`
}
