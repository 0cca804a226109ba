package entities

type CreateBookingRequest struct {
	Category     string `json:"category"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	CustomerName string `json:"customer_name"`
	BranchID     int    `json:"branch_id"`
}

type CancelBookingRequest struct {
	BookingID    int    `json:"booking_id"`
	StartDate    string `json:"start_date"`
	CustomerName string `json:"customer_name"`
}

type BookingResponse struct {
	BookingID    int     `json:"booking_id"`
	VehicleID    int     `json:"vehicle_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	CustomerName string  `json:"customer_name"`
	Cost         float64 `json:"cost"`
	BranchID     int     `json:"branch_id"`
}
