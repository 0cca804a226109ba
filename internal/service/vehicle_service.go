package service

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"vanrental/internal/db"
	"vanrental/internal/entities"
	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
)

type VehicleService struct {
	Repo       *repository.VehicleRepository
	BranchRepo *repository.BranchRepository
}

func NewVehicleService(repo *repository.VehicleRepository, branchRepo *repository.BranchRepository) *VehicleService {
	return &VehicleService{Repo: repo, BranchRepo: branchRepo}
}

func (s *VehicleService) ListVehicles() ([]entities.VehicleResponse, error) {
	vehicles, err := s.Repo.GetAll()
	if err != nil {
		log.WithError(err).Error("listing vehicles failed")
		return nil, apperrors.System("could not list vehicles")
	}
	resp := make([]entities.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, vehicleResponse(v))
	}
	return resp, nil
}

func (s *VehicleService) GetVehicle(vehicleID int) (*entities.VehicleResponse, error) {
	vehicle, err := s.Repo.GetByID(vehicleID)
	if err != nil {
		log.WithError(err).WithField("vehicle_id", vehicleID).Error("getting vehicle failed")
		return nil, apperrors.System("could not get vehicle")
	}
	if vehicle == nil {
		return nil, apperrors.NotFound("Vehicle not found")
	}
	resp := vehicleResponse(*vehicle)
	return &resp, nil
}

// CreateVehicle validates the referenced branch before inserting, so a
// vehicle row never points at a branch that does not exist.
func (s *VehicleService) CreateVehicle(req entities.CreateVehicleRequest) (*entities.VehicleResponse, error) {
	branch, err := s.BranchRepo.GetByID(req.BranchID)
	if err != nil {
		log.WithError(err).Error("branch lookup failed during vehicle create")
		return nil, apperrors.System("could not validate branch")
	}
	if branch == nil {
		return nil, apperrors.Validation(fmt.Sprintf("Branch with ID %d does not exist", req.BranchID))
	}

	vehicle := db.Vehicle{
		Category:        req.Category,
		Manufacturer:    req.Manufacturer,
		Model:           req.Model,
		DailyRentalRate: req.DailyRentalRate,
		NumberOfSeats:   req.NumberOfSeats,
		BranchID:        req.BranchID,
	}
	if err := s.Repo.Create(&vehicle); err != nil {
		log.WithError(err).Error("creating vehicle failed")
		return nil, apperrors.System("could not create vehicle")
	}
	resp := vehicleResponse(vehicle)
	return &resp, nil
}

func vehicleResponse(v db.Vehicle) entities.VehicleResponse {
	return entities.VehicleResponse{
		ID:              v.ID,
		Category:        v.Category,
		Manufacturer:    v.Manufacturer,
		Model:           v.Model,
		DailyRentalRate: v.DailyRentalRate,
		NumberOfSeats:   v.NumberOfSeats,
		BranchID:        v.BranchID,
	}
}
