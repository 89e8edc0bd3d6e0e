package dto

type HotelResponse struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	City             string            `json:"city"`
	Address          string            `json:"address"`
	Description      string            `json:"description"`
	MainImage        string            `json:"main_image"`
	Images           []string          `json:"images,omitempty"`
	Rooms            []RoomResponse    `json:"rooms"`
	UpcomingBookings []BookingResponse `json:"upcoming_bookings"`
}
