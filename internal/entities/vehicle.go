package entities

type CreateVehicleRequest struct {
	Category        string  `json:"category"`
	Manufacturer    string  `json:"manufacturer"`
	Model           string  `json:"model"`
	DailyRentalRate float64 `json:"daily_rental_rate"`
	NumberOfSeats   int     `json:"number_of_seats"`
	BranchID        int     `json:"branch_id"`
}

type VehicleResponse struct {
	ID              int     `json:"id"`
	Category        string  `json:"category"`
	Manufacturer    string  `json:"manufacturer"`
	Model           string  `json:"model"`
	DailyRentalRate float64 `json:"daily_rental_rate"`
	NumberOfSeats   int     `json:"number_of_seats"`
	BranchID        int     `json:"branch_id"`
}
