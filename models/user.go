package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Hotels    []Hotel   `gorm:"foreignKey:ManagerID" json:"hotels,omitempty"`
	Bookings  []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}
