package service

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"vanrental/internal/db"
	"vanrental/internal/entities"
	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
	"vanrental/internal/utils"
)

type BookingService struct {
	Repo       *repository.BookingRepository
	BranchRepo *repository.BranchRepository
	Vehicles   *repository.VehicleRepository
	Notifier   *NotifyService
}

func NewBookingService(repo *repository.BookingRepository, branchRepo *repository.BranchRepository, vehicleRepo *repository.VehicleRepository, notifier *NotifyService) *BookingService {
	return &BookingService{Repo: repo, BranchRepo: branchRepo, Vehicles: vehicleRepo, Notifier: notifier}
}

func (s *BookingService) ListBookings() ([]entities.BookingResponse, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		log.WithError(err).Error("listing bookings failed")
		return nil, apperrors.System("could not list bookings")
	}
	resp := make([]entities.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, bookingResponse(b))
	}
	return resp, nil
}

func (s *BookingService) GetBooking(bookingID int) (*entities.BookingResponse, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		log.WithError(err).WithField("booking_id", bookingID).Error("getting booking failed")
		return nil, apperrors.System("could not get booking")
	}
	if booking == nil {
		return nil, apperrors.NotFound("Booking not found")
	}
	resp := bookingResponse(*booking)
	return &resp, nil
}

// CreateBooking validates the request, then lets the repository pick the
// first free vehicle and persist everything in one transaction. The assigned
// vehicle and computed cost come back on the response.
func (s *BookingService) CreateBooking(req entities.CreateBookingRequest) (*entities.BookingResponse, error) {
	branch, err := s.BranchRepo.GetByID(req.BranchID)
	if err != nil {
		log.WithError(err).Error("branch lookup failed during booking create")
		return nil, apperrors.System("could not validate branch")
	}
	if branch == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("Branch with ID %d does not exist", req.BranchID))
	}

	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate.Before(utils.Today()) {
		return nil, apperrors.Validation("Start date cannot be in the past")
	}

	booking, err := s.Repo.CreateBooking(req.Category, req.BranchID, startDate, endDate, req.CustomerName)
	if err != nil {
		if errors.Is(err, repository.ErrNoVehicleAvailable) {
			return nil, apperrors.Conflict(fmt.Sprintf(
				"No vehicles of category '%s' available at branch %d from %s to %s",
				req.Category, req.BranchID, req.StartDate, req.EndDate))
		}
		log.WithError(err).Error("creating booking failed")
		return nil, apperrors.System("could not create booking")
	}

	log.WithFields(log.Fields{
		"booking_id": booking.BookingID,
		"vehicle_id": booking.VehicleID,
		"branch_id":  booking.BranchID,
		"cost":       booking.Cost,
	}).Info("booking created")

	s.Notifier.BookingCreated(s.emailData(booking, branch.BranchName))

	resp := bookingResponse(*booking)
	return &resp, nil
}

// CancelBooking deletes a booking only on an exact match of id, start date
// and customer name, so a valid id alone is not enough to cancel someone
// else's reservation.
func (s *BookingService) CancelBooking(req entities.CancelBookingRequest) error {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return apperrors.Validation("Invalid start_date, expected YYYY-MM-DD")
	}

	booking, err := s.Repo.GetByID(req.BookingID)
	if err != nil {
		log.WithError(err).Error("booking lookup failed during cancel")
		return apperrors.System("could not cancel booking")
	}

	deleted, err := s.Repo.DeleteExact(req.BookingID, startDate, req.CustomerName)
	if err != nil {
		log.WithError(err).Error("cancelling booking failed")
		return apperrors.System("could not cancel booking")
	}
	if !deleted {
		return apperrors.NotFound("Booking not found or invalid credentials")
	}

	log.WithField("booking_id", req.BookingID).Info("booking cancelled")
	if booking != nil {
		s.Notifier.BookingCancelled(s.emailData(booking, ""))
	}
	return nil
}

func (s *BookingService) emailData(b *db.Booking, branchName string) entities.BookingEmailData {
	description := fmt.Sprintf("vehicle %d", b.VehicleID)
	if vehicle, err := s.Vehicles.GetByID(b.VehicleID); err == nil && vehicle != nil {
		description = fmt.Sprintf("%s %s (%s)", vehicle.Manufacturer, vehicle.Model, vehicle.Category)
	}
	if branchName == "" {
		if branch, err := s.BranchRepo.GetByID(b.BranchID); err == nil && branch != nil {
			branchName = branch.BranchName
		}
	}
	return entities.BookingEmailData{
		BookingID:          b.BookingID,
		CustomerName:       b.CustomerName,
		VehicleDescription: description,
		BranchName:         branchName,
		StartDateFormatted: utils.FormatDate(b.StartDate),
		EndDateFormatted:   utils.FormatDate(b.EndDate),
		Cost:               b.Cost,
	}
}

func bookingResponse(b db.Booking) entities.BookingResponse {
	return entities.BookingResponse{
		BookingID:    b.BookingID,
		VehicleID:    b.VehicleID,
		StartDate:    utils.FormatDate(b.StartDate),
		EndDate:      utils.FormatDate(b.EndDate),
		CustomerName: b.CustomerName,
		Cost:         b.Cost,
		BranchID:     b.BranchID,
	}
}
