package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(conn *sql.DB) *JobRepository {
	return &JobRepository{DB: conn}
}

// DeleteScheduleRowsBefore prunes schedule rows whose day is older than the
// cutoff. Past occupancy carries no information the bookings table does not
// already hold, so the materialized table stays bounded.
func (r *JobRepository) DeleteScheduleRowsBefore(cutoff time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM schedule WHERE day < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error pruning schedule rows: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}
