package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vanrental/internal/errors"
	"vanrental/internal/repository"
)

func newAdminService(t *testing.T) (*AdminService, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewAdminService(repository.NewAdminRepository(conn)), mock
}

func expectWipe(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	// dependency order: schedule, bookings, vehicles, branches
	mock.ExpectExec(`DELETE FROM schedule`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM bookings`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM vehicles`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM branches`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ALTER SEQUENCE branches_branch_id_seq`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ALTER SEQUENCE vehicles_id_seq`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`ALTER SEQUENCE bookings_booking_id_seq`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
}

func TestDeleteAllDataRespectsDependencyOrder(t *testing.T) {
	svc, mock := newAdminService(t)
	expectWipe(mock)

	require.NoError(t, svc.DeleteAllData())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetSeedsFixedSampleData(t *testing.T) {
	svc, mock := newAdminService(t)

	expectWipe(mock)

	mock.ExpectBegin()
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO branches`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO vehicles`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO bookings`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO schedule`).WillReturnResult(sqlmock.NewResult(0, 6))
	}
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`ALTER SEQUENCE`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, svc.ResetDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetSurfacesSeedFailure(t *testing.T) {
	svc, mock := newAdminService(t)

	expectWipe(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO branches`).WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()

	err := svc.ResetDatabase()
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(err))
}
