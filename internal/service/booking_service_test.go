package service

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanrental/internal/entities"
	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
)

func newBookingService(t *testing.T) (*BookingService, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	svc := NewBookingService(
		repository.NewBookingRepository(conn),
		repository.NewBranchRepository(conn),
		repository.NewVehicleRepository(conn),
		NewNotifyService(),
	)
	return svc, mock
}

func branchRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"branch_id", "branch_name", "address", "city"}).
		AddRow(1, "Downtown Branch", "123 Main Street, City Center", "New York")
}

func expectBranchLookup(mock sqlmock.Sqlmock, rows *sqlmock.Rows) {
	q := mock.ExpectQuery(`SELECT branch_id, branch_name, address, city FROM branches WHERE branch_id = \$1`)
	if rows != nil {
		q.WillReturnRows(rows)
	} else {
		q.WillReturnError(sql.ErrNoRows)
	}
}

func TestCreateBookingComputesCostFromInclusiveDays(t *testing.T) {
	svc, mock := newBookingService(t)

	expectBranchLookup(mock, branchRow())
	mock.ExpectBegin()
	// pin the inclusive overlap test: start binds to $3, end to $4
	mock.ExpectQuery(`(?s)SELECT v\.id, v\.daily_rental_rate.*b\.start_date <= \$4.*b\.end_date >= \$3`).
		WithArgs("Small", 1, mustDay(t, "2030-01-10"), mustDay(t, "2030-01-12")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "daily_rental_rate"}).AddRow(1, 50.0))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow(7))
	mock.ExpectExec(`INSERT INTO schedule`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()
	// vehicle lookup for the notification payload
	mock.ExpectQuery(`SELECT id, category, manufacturer, model`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "manufacturer", "model", "daily_rental_rate", "number_of_seats", "branch_id"}).
			AddRow(1, "Small", "Ford", "Courier", 50.0, 8, 1))

	booking, err := svc.CreateBooking(entities.CreateBookingRequest{
		Category:     "Small",
		StartDate:    "2030-01-10",
		EndDate:      "2030-01-12",
		CustomerName: "Alice",
		BranchID:     1,
	})
	require.NoError(t, err)

	// three inclusive days at 50/day
	assert.Equal(t, 150.0, booking.Cost)
	assert.Equal(t, 1, booking.VehicleID)
	assert.Equal(t, 7, booking.BookingID)
	assert.Equal(t, "2030-01-10", booking.StartDate)
	assert.Equal(t, "2030-01-12", booking.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingMissingBranch(t *testing.T) {
	svc, mock := newBookingService(t)
	expectBranchLookup(mock, nil)

	_, err := svc.CreateBooking(entities.CreateBookingRequest{
		Category: "Small", StartDate: "2030-01-10", EndDate: "2030-01-12",
		CustomerName: "Alice", BranchID: 99,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestCreateBookingRejectsReversedRange(t *testing.T) {
	svc, mock := newBookingService(t)
	expectBranchLookup(mock, branchRow())

	_, err := svc.CreateBooking(entities.CreateBookingRequest{
		Category: "Small", StartDate: "2030-01-12", EndDate: "2030-01-10",
		CustomerName: "Alice", BranchID: 1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	assert.Contains(t, err.Error(), "before or equal")
}

func TestCreateBookingRejectsPastStartDate(t *testing.T) {
	svc, mock := newBookingService(t)
	expectBranchLookup(mock, branchRow())

	_, err := svc.CreateBooking(entities.CreateBookingRequest{
		Category: "Small", StartDate: "2020-01-10", EndDate: "2030-01-12",
		CustomerName: "Alice", BranchID: 1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	assert.Contains(t, err.Error(), "past")
}

func TestCreateBookingNoVehicleAvailable(t *testing.T) {
	svc, mock := newBookingService(t)

	expectBranchLookup(mock, branchRow())
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT v\.id, v\.daily_rental_rate`).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := svc.CreateBooking(entities.CreateBookingRequest{
		Category: "Small", StartDate: "2030-01-10", EndDate: "2030-01-12",
		CustomerName: "Alice", BranchID: 1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A transaction that loses the booking race passes the availability check on
// its own snapshot and only fails on the schedule primary key. That loser
// must still see a conflict, not a system error.
func TestCreateBookingRaceLoserGetsConflict(t *testing.T) {
	svc, mock := newBookingService(t)

	expectBranchLookup(mock, branchRow())
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT v\.id, v\.daily_rental_rate`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "daily_rental_rate"}).AddRow(1, 50.0))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow(8))
	mock.ExpectExec(`INSERT INTO schedule`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "schedule_pkey"})
	mock.ExpectRollback()

	_, err := svc.CreateBooking(entities.CreateBookingRequest{
		Category: "Small", StartDate: "2030-01-10", EndDate: "2030-01-12",
		CustomerName: "Alice", BranchID: 1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingExactMatch(t *testing.T) {
	svc, mock := newBookingService(t)

	bookingCols := []string{"booking_id", "vehicle_id", "start_date", "end_date", "customer_name", "cost", "branch_id"}
	start := mustDay(t, "2030-03-01")
	end := mustDay(t, "2030-03-02")

	mock.ExpectQuery(`SELECT booking_id, vehicle_id, start_date`).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(5, 1, start, end, "Test Customer", 110.0, 1))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT booking_id FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow(5))
	mock.ExpectExec(`DELETE FROM schedule WHERE booking_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM bookings WHERE booking_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// lookups for the notification payload
	mock.ExpectQuery(`SELECT id, category, manufacturer, model`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "manufacturer", "model", "daily_rental_rate", "number_of_seats", "branch_id"}).
			AddRow(1, "Small", "Ford", "Courier", 55.0, 8, 1))
	mock.ExpectQuery(`SELECT branch_id, branch_name, address, city FROM branches WHERE branch_id = \$1`).
		WillReturnRows(branchRow())

	err := svc.CancelBooking(entities.CancelBookingRequest{
		BookingID: 5, StartDate: "2030-03-01", CustomerName: "Test Customer",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingMismatchedCredentials(t *testing.T) {
	svc, mock := newBookingService(t)

	bookingCols := []string{"booking_id", "vehicle_id", "start_date", "end_date", "customer_name", "cost", "branch_id"}
	start := mustDay(t, "2030-03-01")
	end := mustDay(t, "2030-03-02")

	// the booking id exists, but the stored name differs
	mock.ExpectQuery(`SELECT booking_id, vehicle_id, start_date`).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(5, 1, start, end, "Someone Else", 110.0, 1))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT booking_id FROM bookings`).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := svc.CancelBooking(entities.CancelBookingRequest{
		BookingID: 5, StartDate: "2030-03-01", CustomerName: "Test Customer",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
