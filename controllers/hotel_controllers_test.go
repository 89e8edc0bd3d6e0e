package controllers

import (
	"net/http"
	"testing"
	"time"

	"stayhub/services"
	"stayhub/services/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func testDate(value string) time.Time {
	parsed, err := time.Parse(services.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func newHotelRouter(db *gorm.DB, userID uint) *gin.Engine {
	bookingSvc := services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
	hc := NewHotelController(db, nil, bookingSvc)

	router := gin.New()
	router.GET("/api/hotels/search", hc.SearchAvailableRooms)
	router.GET("/api/hotels/my_hotel", asUser(userID), hc.MyHotel)
	return router
}

func TestStartOfDayKeepsLocalCalendarDay(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*60*60)

	// 23:30 local is already the next day in UTC; the local day must win
	lateEvening := time.Date(2024, 6, 1, 23, 30, 0, 0, zone)
	got := startOfDay(lateEvening)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, zone), got)

	earlyMorning := time.Date(2024, 6, 2, 0, 30, 0, 0, zone)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, zone), startOfDay(earlyMorning))
}

func TestSearchRequiresBothDates(t *testing.T) {
	router := newHotelRouter(nil, 0)

	w := performRequest(router, http.MethodGet, "/api/hotels/search?check_in=2024-01-12", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Check-in and check-out dates are required.")

	w = performRequest(router, http.MethodGet, "/api/hotels/search?check_out=2024-01-20", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsMalformedDates(t *testing.T) {
	router := newHotelRouter(nil, 0)

	w := performRequest(router, http.MethodGet, "/api/hotels/search?check_in=12/01/2024&check_out=2024-01-20", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date format. Use YYYY-MM-DD.")
}

func TestSearchExcludesBookedRooms(t *testing.T) {
	db, mock := NewMockDB(t)
	router := newHotelRouter(db, 0)

	mock.ExpectQuery(`SELECT (.+) FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city"}).
			AddRow(1, "Grand Central", "New York City"))
	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type"}).
			AddRow(101, 1, "Deluxe Double").
			AddRow(102, 1, "Single"))
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "check_in_date", "check_out_date"}).
			AddRow(1, 101, testDate("2024-01-10"), testDate("2024-01-15")))

	w := performRequest(router, http.MethodGet, "/api/hotels/search?check_in=2024-01-12&check_out=2024-01-20", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"id":102`)
	assert.NotContains(t, body, `"id":101`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMyHotelForbiddenForNonManagers(t *testing.T) {
	db, mock := NewMockDB(t)
	router := newHotelRouter(db, 7)

	mock.ExpectQuery(`SELECT (.+) FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id"}))

	w := performRequest(router, http.MethodGet, "/api/hotels/my_hotel", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not assigned to manage any hotel")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMyHotelRejectsMalformedDate(t *testing.T) {
	db, mock := NewMockDB(t)
	router := newHotelRouter(db, 7)

	mock.ExpectQuery(`SELECT (.+) FROM "hotels"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id"}).AddRow(3, 7))
	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id"}))

	w := performRequest(router, http.MethodGet, "/api/hotels/my_hotel?date=01-06-2024", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date format. Use YYYY-MM-DD.")
	assert.NoError(t, mock.ExpectationsWereMet())
}
