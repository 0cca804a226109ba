package service

import (
	log "github.com/sirupsen/logrus"

	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
)

type AdminService struct {
	Repo *repository.AdminRepository
}

func NewAdminService(repo *repository.AdminRepository) *AdminService {
	return &AdminService{Repo: repo}
}

// DeleteAllData wipes every domain table.
func (s *AdminService) DeleteAllData() error {
	if err := s.Repo.Wipe(); err != nil {
		log.WithError(err).Error("wiping data failed")
		return apperrors.System("Failed to delete data: " + err.Error())
	}
	log.Info("all data deleted")
	return nil
}

// ResetDatabase wipes everything and loads the fixed sample data set.
// Seed insert failures are surfaced, not swallowed.
func (s *AdminService) ResetDatabase() error {
	if err := s.Repo.Wipe(); err != nil {
		log.WithError(err).Error("wipe during reset failed")
		return apperrors.System("Failed to reset database: " + err.Error())
	}
	if err := s.Repo.Seed(); err != nil {
		log.WithError(err).Error("seeding sample data failed")
		return apperrors.System("Failed to reset database: " + err.Error())
	}
	log.Info("database reset with sample data")
	return nil
}
