package service

import (
	"time"

	apperrors "vanrental/internal/errors"
	"vanrental/internal/utils"
)

// parseRange parses and validates an inclusive date range from the wire
// format. The past-date rule is checked by callers, not here, because admin
// seeding and schedule reads have different needs.
func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Validation("Invalid start_date, expected YYYY-MM-DD")
	}
	endDate, err := utils.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Validation("Invalid end_date, expected YYYY-MM-DD")
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, apperrors.Validation("Start date must be before or equal to end date")
	}
	return startDate, endDate, nil
}
