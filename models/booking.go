package models

import (
	"time"
)

// Dates are date-only and half-open: a booking occupies [CheckInDate, CheckOutDate).
type Booking struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoomID       uint      `gorm:"not null;index" json:"room"`
	Room         *Room     `gorm:"foreignKey:RoomID" json:"-"`
	UserID       uint      `gorm:"not null;index" json:"user"`
	User         *User     `gorm:"foreignKey:UserID" json:"-"`
	CheckInDate  time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`
	NumGuests    int       `gorm:"default:1" json:"num_guests"`
	TotalPrice   float64   `json:"total_price"`
	BookedAt     time.Time `gorm:"autoCreateTime" json:"booked_at"`
}
