package models

import (
	"time"

	"github.com/lib/pq"
)

type Hotel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	City        string         `json:"city"`
	Address     string         `json:"address"`
	Description string         `json:"description"`
	MainImage   string         `json:"main_image"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	ManagerID   *uint          `gorm:"uniqueIndex" json:"manager_id"`
	Manager     *User          `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Rooms       []Room         `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
