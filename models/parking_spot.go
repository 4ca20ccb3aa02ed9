package models

import "time"

type ParkingSpot struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Address      string  `gorm:"type:varchar(255);not null"`
	Latitude     float64 `gorm:"not null"`
	Longitude    float64 `gorm:"not null"`
	PriceHourly  float64 `gorm:"not null"`
	PriceMonthly float64 `gorm:"not null"`
	CreatedAt    time.Time
}
