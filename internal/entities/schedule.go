package entities

type ScheduleEntryResponse struct {
	Date      string `json:"date"`
	VehicleID int    `json:"vehicle_id"`
	Status    string `json:"status"`
	BookingID *int   `json:"booking_id,omitempty"`
}

// ScheduleSearchRequest searches by start date plus a duration in days
// instead of an explicit end date.
type ScheduleSearchRequest struct {
	Category  string `json:"category"`
	StartDate string `json:"start_date"`
	Duration  int    `json:"duration"`
}

type VehicleSearchResult struct {
	VehicleID       int     `json:"vehicle_id"`
	Category        string  `json:"category"`
	Manufacturer    string  `json:"manufacturer"`
	Model           string  `json:"model"`
	DailyRentalRate float64 `json:"daily_rental_rate"`
	NumberOfSeats   int     `json:"number_of_seats"`
	TotalCost       float64 `json:"total_cost"`
}
