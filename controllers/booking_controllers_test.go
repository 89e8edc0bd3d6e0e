package controllers

import (
	"net/http"
	"testing"

	"stayhub/services"
	"stayhub/services/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBookingRouter(db *gorm.DB, userID uint) *gin.Engine {
	svc := services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
	bc := NewBookingController(svc)

	router := gin.New()
	router.POST("/api/bookings", asUser(userID), bc.CreateBooking)
	router.GET("/api/bookings/:id", asUser(userID), bc.GetBookingDetail)
	router.PUT("/api/bookings/:id", asUser(userID), bc.UpdateBooking)
	router.PATCH("/api/bookings/:id", asUser(userID), bc.PatchBooking)
	return router
}

func TestCreateBookingRequiresDates(t *testing.T) {
	router := newBookingRouter(nil, 1)

	w := performRequest(router, http.MethodPost, "/api/bookings", `{"room":101}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsWrongDateFormat(t *testing.T) {
	router := newBookingRouter(nil, 1)

	w := performRequest(router, http.MethodPost, "/api/bookings",
		`{"room":101,"check_in_date":"12/01/2024","check_out_date":"2024-01-20"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingConflictReturns409(t *testing.T) {
	db, mock := NewMockDB(t)
	router := newBookingRouter(db, 1)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type"}).
			AddRow(101, 1, "Deluxe Double"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	w := performRequest(router, http.MethodPost, "/api/bookings",
		`{"room":101,"check_in_date":"2024-01-12","check_out_date":"2024-01-20","num_guests":2,"total_price":640}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already booked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingAssignsCaller(t *testing.T) {
	db, mock := NewMockDB(t)
	router := newBookingRouter(db, 42)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type"}).
			AddRow(101, 1, "Deluxe Double"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	// The payload's user field is ignored; the caller owns the booking
	w := performRequest(router, http.MethodPost, "/api/bookings",
		`{"room":101,"user":999,"check_in_date":"2024-01-12","check_out_date":"2024-01-20","num_guests":2,"total_price":640}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"room_name":"Deluxe Double"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// expectBookingWithPreloads mocks the scoped booking load plus its Room and
// User preloads.
func expectBookingWithPreloads(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "user_id", "check_in_date", "check_out_date", "num_guests", "total_price"}).
			AddRow(7, 101, 1, testDate("2024-02-01"), testDate("2024-02-05"), 2, 400))
	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type"}).
			AddRow(101, 1, "Deluxe Double"))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(1, "alice"))
}

func TestUpdateBookingOntoBookedDatesReturns409(t *testing.T) {
	db, mock := NewMockDB(t)
	router := newBookingRouter(db, 1)

	expectBookingWithPreloads(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type"}).
			AddRow(101, 1, "Deluxe Double"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	w := performRequest(router, http.MethodPut, "/api/bookings/7",
		`{"room":101,"check_in_date":"2024-01-12","check_out_date":"2024-01-20","num_guests":2,"total_price":640}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already booked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchBookingPartialPayload(t *testing.T) {
	db, mock := NewMockDB(t)
	router := newBookingRouter(db, 1)

	expectBookingWithPreloads(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type"}).
			AddRow(101, 1, "Deluxe Double"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Only the guest count is sent; dates and room stay as stored
	w := performRequest(router, http.MethodPatch, "/api/bookings/7", `{"num_guests":3}`)
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"num_guests":3`)
	assert.Contains(t, body, `"check_in_date":"2024-02-01"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForeignBookingIsNotFound(t *testing.T) {
	db, mock := NewMockDB(t)
	router := newBookingRouter(db, 1)

	// The ownership scope turns other users' bookings into empty result sets
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(router, http.MethodGet, "/api/bookings/55", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
