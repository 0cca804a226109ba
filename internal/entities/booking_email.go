package entities

type BookingEmailData struct {
	BookingID          int
	CustomerName       string
	VehicleDescription string
	BranchName         string
	StartDateFormatted string
	EndDateFormatted   string
	Cost               float64
}
