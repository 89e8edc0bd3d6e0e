package controllers

import (
	"stayhub/dto"
	"stayhub/middleware"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

func bindBookingInput(c *gin.Context) (services.BookingInput, bool) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return services.BookingInput{}, false
	}

	// Dates already passed the bookdate binding rule
	checkIn, _ := dto.ParseDate(req.CheckInDate)
	checkOut, _ := dto.ParseDate(req.CheckOutDate)

	numGuests := req.NumGuests
	if numGuests == 0 {
		numGuests = 1
	}

	return services.BookingInput{
		RoomID:       req.Room,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    numGuests,
		TotalPrice:   req.TotalPrice,
	}, true
}

// CreateBooking books a room for the authenticated caller. The guest field is
// server-assigned; payload user fields are ignored.
func (b *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	input, ok := bindBookingInput(c)
	if !ok {
		return
	}

	booking, err := b.service.Create(userID, input)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Created(c, toBookingResponse(booking))
}

// GetBookings lists the caller's bookings, most recent first
func (b *BookingController) GetBookings(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookings, err := b.service.ListByUser(userID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, toBookingResponses(bookings))
}

// GetBookingDetail returns one of the caller's bookings
func (b *BookingController) GetBookingDetail(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := b.service.GetByUser(userID, bookingID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// UpdateBooking rewrites one of the caller's bookings
func (b *BookingController) UpdateBooking(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	input, ok := bindBookingInput(c)
	if !ok {
		return
	}

	booking, err := b.service.UpdateByUser(userID, bookingID, input)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// PatchBooking rewrites only the supplied fields of one of the caller's
// bookings. The resulting dates go through the same conflict check as a full
// update.
func (b *BookingController) PatchBooking(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.BookingPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	patch := services.BookingPatch{
		RoomID:     req.Room,
		NumGuests:  req.NumGuests,
		TotalPrice: req.TotalPrice,
	}
	if req.CheckInDate != nil {
		checkIn, _ := dto.ParseDate(*req.CheckInDate)
		patch.CheckInDate = &checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, _ := dto.ParseDate(*req.CheckOutDate)
		patch.CheckOutDate = &checkOut
	}

	booking, err := b.service.PatchByUser(userID, bookingID, patch)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// DeleteBooking cancels one of the caller's bookings
func (b *BookingController) DeleteBooking(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := b.service.DeleteByUser(userID, bookingID); err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, nil)
}
