package service

import (
	log "github.com/sirupsen/logrus"

	"vanrental/internal/db"
	"vanrental/internal/entities"
	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
	"vanrental/internal/utils"
)

type ScheduleService struct {
	Repo *repository.ScheduleRepository
}

func NewScheduleService(repo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{Repo: repo}
}

func (s *ScheduleService) GetSchedule() ([]entities.ScheduleEntryResponse, error) {
	entries, err := s.Repo.GetAll()
	if err != nil {
		log.WithError(err).Error("listing schedule failed")
		return nil, apperrors.System("could not list schedule")
	}
	return scheduleResponses(entries), nil
}

func (s *ScheduleService) GetVehicleSchedule(vehicleID int) ([]entities.ScheduleEntryResponse, error) {
	entries, err := s.Repo.GetByVehicle(vehicleID)
	if err != nil {
		log.WithError(err).WithField("vehicle_id", vehicleID).Error("listing vehicle schedule failed")
		return nil, apperrors.System("could not list vehicle schedule")
	}
	return scheduleResponses(entries), nil
}

// Search finds vehicles of a category whose schedule is clear for duration
// days starting at start_date, with the total cost for that span.
func (s *ScheduleService) Search(req entities.ScheduleSearchRequest) ([]entities.VehicleSearchResult, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.Validation("Invalid start_date, expected YYYY-MM-DD")
	}
	if req.Duration < 1 {
		return nil, apperrors.Validation("Duration must be at least 1 day")
	}
	endDate := startDate.AddDate(0, 0, req.Duration-1)

	vehicles, err := s.Repo.SearchAvailable(req.Category, startDate, endDate)
	if err != nil {
		log.WithError(err).Error("schedule search failed")
		return nil, apperrors.System("could not search schedule")
	}

	results := make([]entities.VehicleSearchResult, 0, len(vehicles))
	for _, v := range vehicles {
		results = append(results, entities.VehicleSearchResult{
			VehicleID:       v.ID,
			Category:        v.Category,
			Manufacturer:    v.Manufacturer,
			Model:           v.Model,
			DailyRentalRate: v.DailyRentalRate,
			NumberOfSeats:   v.NumberOfSeats,
			TotalCost:       v.DailyRentalRate * float64(req.Duration),
		})
	}
	return results, nil
}

func scheduleResponses(entries []db.ScheduleEntry) []entities.ScheduleEntryResponse {
	resp := make([]entities.ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entities.ScheduleEntryResponse{
			Date:      utils.FormatDate(e.Day),
			VehicleID: e.VehicleID,
			Status:    e.Status,
			BookingID: e.BookingID,
		})
	}
	return resp
}
