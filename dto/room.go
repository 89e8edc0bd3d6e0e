package dto

// RoomRequest creates or updates a room. Hotel is required on create and names
// the hotel the caller must manage.
type RoomRequest struct {
	Hotel         uint    `json:"hotel"`
	RoomType      string  `json:"room_type" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"omitempty,min=0"`
	Capacity      int     `json:"capacity" binding:"omitempty,min=1"`
}

// RoomPatchRequest is the partial-update payload. Omitted fields keep their
// current value.
type RoomPatchRequest struct {
	Hotel         *uint    `json:"hotel"`
	RoomType      *string  `json:"room_type"`
	PricePerNight *float64 `json:"price_per_night" binding:"omitempty,min=0"`
	Capacity      *int     `json:"capacity" binding:"omitempty,min=1"`
}

type RoomResponse struct {
	ID            uint    `json:"id"`
	Hotel         uint    `json:"hotel"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
}
