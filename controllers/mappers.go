package controllers

import (
	"strconv"

	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id path segment as an unsigned integer
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid ID.")
		return 0, false
	}
	return uint(id), true
}

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:            room.ID,
		Hotel:         room.HotelID,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
	}
}

func toRoomResponses(rooms []models.Room) []dto.RoomResponse {
	out := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}
	return out
}

func toBookingResponse(booking models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:           booking.ID,
		Room:         booking.RoomID,
		CheckInDate:  booking.CheckInDate.Format(services.DateLayout),
		CheckOutDate: booking.CheckOutDate.Format(services.DateLayout),
		NumGuests:    booking.NumGuests,
		TotalPrice:   booking.TotalPrice,
		BookedAt:     booking.BookedAt,
	}
	if booking.Room != nil {
		resp.RoomName = booking.Room.RoomType
	}
	if booking.User != nil {
		resp.GuestName = booking.User.Username
	}
	return resp
}

func toBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, toBookingResponse(booking))
	}
	return out
}

func toHotelResponse(hotel models.Hotel, upcoming []models.Booking) dto.HotelResponse {
	return dto.HotelResponse{
		ID:               hotel.ID,
		Name:             hotel.Name,
		City:             hotel.City,
		Address:          hotel.Address,
		Description:      hotel.Description,
		MainImage:        hotel.MainImage,
		Images:           hotel.Images,
		Rooms:            toRoomResponses(hotel.Rooms),
		UpcomingBookings: toBookingResponses(upcoming),
	}
}

// respondAppError maps an AppError onto the HTTP error taxonomy
func respondAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidEmail, errors.ErrCodeInvalidDates, errors.ErrCodeUserExists:
		response.ValidationError(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken,
		errors.ErrCodeUserNotFound, errors.ErrCodeInvalidPassword:
		response.Unauthorized(c)
	case errors.ErrCodeForbidden:
		response.Forbidden(c, appErr.Message)
	case errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeRoomUnavailable:
		response.Conflict(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}
