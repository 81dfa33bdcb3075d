package bookingRepo

import (
	"database/sql"
	"testing"
	"time"

	"coworkly/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresBookingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresBookingRepo{db: db}, mock
}

func testBooking() *models.BookingData {
	lat, lng := 45.501, -73.559
	return &models.BookingData{
		Coworking: "Crew Collective & Café",
		Date:      "2025-03-14",
		Time:      "09:00",
		Duration:  "4h",
		Price:     "$30/day",
		Timezone:  "America/Toronto",
		Address:   "360 Rue Saint-Jacques, Montreal, QC",
		Lat:       &lat,
		Lng:       &lng,
	}
}

func TestSaveCreatesUserOnFirstBooking(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := models.User{Name: "Ada", Email: "ada@example.com"}

	mock.ExpectQuery("SELECT email FROM users").
		WithArgs(user.Email).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.Name, user.Email).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(user, testBooking())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSkipsUserInsertWhenUserExists(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := models.User{Name: "Ada", Email: "ada@example.com"}

	mock.ExpectQuery("SELECT email FROM users").
		WithArgs(user.Email).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow(user.Email))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(user, testBooking())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePropagatesInsertFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	user := models.User{Name: "Ada", Email: "ada@example.com"}

	mock.ExpectQuery("SELECT email FROM users").
		WithArgs(user.Email).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow(user.Email))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(sql.ErrConnDone)

	err := repo.Save(user, testBooking())
	assert.Error(t, err)
}

func TestListByEmailNewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	cols := []string{"id", "user_email", "coworking_name", "date", "time",
		"duration", "price", "address", "lat", "lng", "timezone", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("b2", "ada@example.com", "Halte 24-7", "2025-03-20", "10:00",
				"2h", "$25/day", nil, nil, nil, "America/Toronto", now).
			AddRow("b1", "ada@example.com", "Notman House", "2025-03-14", "09:00",
				"4h", "$22/day", "51 Rue Sherbrooke O", 45.511, -73.569,
				"America/Toronto", now.Add(-24*time.Hour)))

	bookings, err := repo.ListByEmail("ada@example.com")
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "Halte 24-7", bookings[0].CoworkingName)
	assert.Empty(t, bookings[0].Address)
	assert.Nil(t, bookings[0].Lat)

	assert.Equal(t, "Notman House", bookings[1].CoworkingName)
	require.NotNil(t, bookings[1].Lat)
	assert.InDelta(t, 45.511, *bookings[1].Lat, 1e-9)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByEmailEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	cols := []string{"id", "user_email", "coworking_name", "date", "time",
		"duration", "price", "address", "lat", "lng", "timezone", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(cols))

	bookings, err := repo.ListByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NotNil(t, bookings)
}
