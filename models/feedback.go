package models

import "time"

type Feedback struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	User      User    `gorm:"foreignKey:UserID;references:ID"`
	BookingID uint    `gorm:"not null;index"`
	Booking   Booking `gorm:"foreignKey:BookingID;references:ID"`
	Rating    int     `gorm:"not null"`
	Comment   string  `gorm:"type:text"`
	CreatedAt time.Time
}
