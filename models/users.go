package models

import "time"

type Role string

const (
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID                    uint   `gorm:"primaryKey"`
	Name                  string `gorm:"type:varchar(255);not null"`
	Email                 string `gorm:"type:varchar(255);unique;not null"`
	Password              string `gorm:"type:varchar(255)" json:"-"` // empty for Google sign-in accounts
	Role                  Role   `gorm:"type:varchar(20);not null;default:driver"`
	PhoneNumber           string `gorm:"type:varchar(30)"`
	VehicleType           string `gorm:"type:varchar(50)"`
	VehicleModelName      string `gorm:"type:varchar(100)"`
	VehicleRegistrationNo string `gorm:"type:varchar(50)"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
