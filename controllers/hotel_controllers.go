package controllers

import (
	"time"

	"stayhub/dto"
	"stayhub/middleware"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HotelController struct {
	db         *gorm.DB
	redis      *redis.Client
	bookingSvc *services.BookingService
}

func NewHotelController(db *gorm.DB, redisCli *redis.Client, bookingSvc *services.BookingService) *HotelController {
	return &HotelController{
		db:         db,
		redis:      redisCli,
		bookingSvc: bookingSvc,
	}
}

// GetHotels lists all hotels with their rooms and upcoming bookings
func (h *HotelController) GetHotels(c *gin.Context) {
	hotels, err := services.LoadHotels(h.db, h.redis)
	if err != nil {
		respondAppError(c, err)
		return
	}

	hotelsResponse := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		upcoming, err := h.bookingSvc.UpcomingForHotel(hotel.ID, nil)
		if err != nil {
			respondAppError(c, err)
			return
		}
		hotelsResponse = append(hotelsResponse, toHotelResponse(hotel, upcoming))
	}

	response.Success(c, hotelsResponse)
}

// GetHotelDetail returns a single hotel with rooms and upcoming bookings
func (h *HotelController) GetHotelDetail(c *gin.Context) {
	var hotel models.Hotel
	if err := h.db.Preload("Rooms").First(&hotel, "id = ?", c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	upcoming, err := h.bookingSvc.UpcomingForHotel(hotel.ID, nil)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, toHotelResponse(hotel, upcoming))
}

// SearchAvailableRooms finds rooms free in [check_in, check_out), optionally
// restricted to hotels matching the city filter.
func (h *HotelController) SearchAvailableRooms(c *gin.Context) {
	checkInStr := c.Query("check_in")
	checkOutStr := c.Query("check_out")
	city := c.Query("city")

	if checkInStr == "" || checkOutStr == "" {
		response.BadRequest(c, "Check-in and check-out dates are required.")
		return
	}

	checkIn, err := dto.ParseDate(checkInStr)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD.")
		return
	}
	checkOut, err := dto.ParseDate(checkOutStr)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	rooms, err := services.SearchAvailableRooms(h.db, checkIn, checkOut, city)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toRoomResponses(rooms))
}

// startOfDay returns midnight of t's calendar day in t's own zone
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// MyHotel is the manager dashboard: the caller's hotel plus its bookings that
// have not ended before the reference date (?date=YYYY-MM-DD, default today).
func (h *HotelController) MyHotel(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	hotel, err := services.FindManagedHotel(h.db, userID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	filterDate := startOfDay(time.Now())
	if dateStr := c.Query("date"); dateStr != "" {
		filterDate, err = dto.ParseDate(dateStr)
		if err != nil {
			response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD.")
			return
		}
	}

	upcoming, err := h.bookingSvc.UpcomingForHotel(hotel.ID, &filterDate)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, toHotelResponse(hotel, upcoming))
}

// SuggestCities ranks known hotel cities against ?q= for search-box hints
func (h *HotelController) SuggestCities(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Query parameter q is required.")
		return
	}

	cities, err := services.DistinctCities(h.db)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, services.SuggestCities(cities, query, 5))
}
