package notification

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingEvent is broadcast to dashboard clients when a booking is created
type BookingEvent struct {
	Event        string  `json:"event"`
	BookingID    uint    `json:"booking_id"`
	HotelID      uint    `json:"hotel_id"`
	RoomID       uint    `json:"room_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalPrice   float64 `json:"total_price"`
}

func NewBookingCreatedEvent(bookingID, hotelID, roomID uint, checkIn, checkOut string, totalPrice float64) BookingEvent {
	return BookingEvent{
		Event:        "booking_created",
		BookingID:    bookingID,
		HotelID:      hotelID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   totalPrice,
	}
}

func (e BookingEvent) Build() string {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf(`{"event":%q}`, e.Event)
	}
	return string(payload)
}
