package service

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"vanrental/internal/repository"
	"vanrental/internal/utils"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// PrunePastScheduleRows drops schedule rows older than today. Scheduled
// nightly from main; past occupancy stays recoverable from bookings.
func (s *JobService) PrunePastScheduleRows() error {
	pruned, err := s.Repo.DeleteScheduleRowsBefore(utils.Today())
	if err != nil {
		return fmt.Errorf("cron job: failed to prune schedule rows: %w", err)
	}
	if pruned > 0 {
		log.WithField("rows", pruned).Info("cron job: pruned past schedule rows")
	}
	return nil
}
