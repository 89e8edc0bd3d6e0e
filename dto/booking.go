package dto

import (
	"time"
)

// BookingRequest carries the caller-supplied booking fields. Any user field in
// the payload is ignored; the guest is always the authenticated caller.
type BookingRequest struct {
	Room         uint    `json:"room" binding:"required"`
	CheckInDate  string  `json:"check_in_date" binding:"required,bookdate"`
	CheckOutDate string  `json:"check_out_date" binding:"required,bookdate"`
	NumGuests    int     `json:"num_guests" binding:"omitempty,min=1"`
	TotalPrice   float64 `json:"total_price" binding:"omitempty,min=0"`
}

// BookingPatchRequest is the partial-update payload. Omitted fields keep their
// current value.
type BookingPatchRequest struct {
	Room         *uint    `json:"room"`
	CheckInDate  *string  `json:"check_in_date" binding:"omitempty,bookdate"`
	CheckOutDate *string  `json:"check_out_date" binding:"omitempty,bookdate"`
	NumGuests    *int     `json:"num_guests" binding:"omitempty,min=1"`
	TotalPrice   *float64 `json:"total_price" binding:"omitempty,min=0"`
}

type BookingResponse struct {
	ID           uint      `json:"id"`
	Room         uint      `json:"room"`
	RoomName     string    `json:"room_name"`
	GuestName    string    `json:"guest_name"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	NumGuests    int       `json:"num_guests"`
	TotalPrice   float64   `json:"total_price"`
	BookedAt     time.Time `json:"booked_at"`
}
