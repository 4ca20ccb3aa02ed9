package models

import "time"

// Booking references its spot by name, not by key. Spots can be edited or
// deleted after the fact without touching existing bookings.
type Booking struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	User        User   `gorm:"foreignKey:UserID;references:ID"`
	SpotName    string `gorm:"type:varchar(255);not null"`
	Price       float64
	BookingType string `gorm:"type:varchar(20);not null"` // hourly, monthly
	EntryTime   time.Time
	ExitTime    time.Time
	CreatedAt   time.Time
}
