package service

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"vanrental/internal/entities"
	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
	"vanrental/internal/utils"
)

type AvailabilityService struct {
	Vehicles   *repository.VehicleRepository
	BranchRepo *repository.BranchRepository
}

func NewAvailabilityService(vehicleRepo *repository.VehicleRepository, branchRepo *repository.BranchRepository) *AvailabilityService {
	return &AvailabilityService{Vehicles: vehicleRepo, BranchRepo: branchRepo}
}

// Search returns the vehicles with no booking overlapping the requested
// range, filtered by category and branch when given, each annotated with the
// total cost for the span. Results come back ordered by vehicle id.
func (s *AvailabilityService) Search(req entities.AvailabilityRequest) ([]entities.AvailableVehicle, error) {
	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate.Before(utils.Today()) {
		return nil, apperrors.Validation("Start date cannot be in the past")
	}

	if req.BranchID != nil {
		branch, err := s.BranchRepo.GetByID(*req.BranchID)
		if err != nil {
			log.WithError(err).Error("branch lookup failed during availability search")
			return nil, apperrors.System("could not validate branch")
		}
		if branch == nil {
			return nil, apperrors.Validation(fmt.Sprintf("Branch with ID %d does not exist", *req.BranchID))
		}
	}

	vehicles, err := s.Vehicles.GetAvailable(startDate, endDate, req.Category, req.BranchID)
	if err != nil {
		log.WithError(err).Error("availability query failed")
		return nil, apperrors.System("could not search availability")
	}

	rentalDays := utils.RentalDays(startDate, endDate)
	results := make([]entities.AvailableVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		results = append(results, entities.AvailableVehicle{
			VehicleID:       v.ID,
			Category:        v.Category,
			Manufacturer:    v.Manufacturer,
			Model:           v.Model,
			DailyRentalRate: v.DailyRentalRate,
			NumberOfSeats:   v.NumberOfSeats,
			BranchID:        v.BranchID,
			TotalCost:       v.DailyRentalRate * float64(rentalDays),
		})
	}
	return results, nil
}
