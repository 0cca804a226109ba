package service

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanrental/internal/entities"
	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
)

func newScheduleService(t *testing.T) (*ScheduleService, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewScheduleService(repository.NewScheduleRepository(conn)), mock
}

func TestScheduleSearchCostUsesDuration(t *testing.T) {
	svc, mock := newScheduleService(t)

	mock.ExpectQuery(`FROM vehicles v`).
		WillReturnRows(sqlmock.NewRows(vehicleCols()).
			AddRow(1, "Small", "Ford", "Courier", 55.0, 8, 1))

	results, err := svc.Search(entities.ScheduleSearchRequest{
		Category:  "Small",
		StartDate: "2030-08-01",
		Duration:  4,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 220.0, results[0].TotalCost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleSearchRejectsBadInput(t *testing.T) {
	svc, _ := newScheduleService(t)

	_, err := svc.Search(entities.ScheduleSearchRequest{Category: "Small", StartDate: "nope", Duration: 2})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))

	_, err = svc.Search(entities.ScheduleSearchRequest{Category: "Small", StartDate: "2030-08-01", Duration: 0})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
}

func TestGetScheduleFormatsEntries(t *testing.T) {
	svc, mock := newScheduleService(t)

	bookingID := int64(3)
	mock.ExpectQuery(`FROM schedule ORDER BY day, vehicle_id`).
		WillReturnRows(sqlmock.NewRows([]string{"day", "vehicle_id", "status", "booking_id"}).
			AddRow(mustDay(t, "2030-08-01"), 1, "booked", bookingID).
			AddRow(mustDay(t, "2030-08-02"), 2, "maintenance", nil))

	entries, err := svc.GetSchedule()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "2030-08-01", entries[0].Date)
	require.NotNil(t, entries[0].BookingID)
	assert.Equal(t, 3, *entries[0].BookingID)

	assert.Equal(t, "maintenance", entries[1].Status)
	assert.Nil(t, entries[1].BookingID)
}
