package models

import "time"

// Notification rows created by the expiry scan carry the booking that
// triggered them; the unique (user_id, booking_id) index makes the scan's
// insert a single conditional write. Admin-sent notifications have a NULL
// BookingID and never collide.
type Notification struct {
	ID        uint     `gorm:"primaryKey"`
	UserID    uint     `gorm:"not null;uniqueIndex:idx_notifications_user_booking"`
	User      User     `gorm:"foreignKey:UserID;references:ID"`
	BookingID *uint    `gorm:"uniqueIndex:idx_notifications_user_booking"`
	Booking   *Booking `gorm:"foreignKey:BookingID;references:ID"`
	Title     string   `gorm:"type:varchar(255);not null"`
	Message   string   `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}
