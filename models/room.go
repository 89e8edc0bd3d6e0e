package models

import (
	"time"
)

type Room struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	HotelID       uint      `gorm:"not null;index" json:"hotel"`
	RoomType      string    `gorm:"not null" json:"room_type"`
	PricePerNight float64   `json:"price_per_night"`
	Capacity      int       `gorm:"default:2" json:"capacity"`
	Hotel         *Hotel    `gorm:"foreignKey:HotelID" json:"-"`
	Bookings      []Booking `gorm:"foreignKey:RoomID" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
