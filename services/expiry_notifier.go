package services

import (
	"fmt"
	"time"

	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const expiryTitlePrefix = "Booking Ending Soon: "

// ExpiryNotifier creates "ending soon" notifications for bookings whose exit
// time falls inside the configured horizon. There is no background scheduler;
// the driver dashboard runs a scan on every load.
type ExpiryNotifier struct {
	DB      *gorm.DB
	Horizon time.Duration
}

func NewExpiryNotifier(db *gorm.DB, horizon time.Duration) *ExpiryNotifier {
	return &ExpiryNotifier{DB: db, Horizon: horizon}
}

// FindExpiringBookings returns the user's bookings with an exit time inside
// [now, now+horizon], both bounds inclusive.
func FindExpiringBookings(db *gorm.DB, userID uint, now time.Time, horizon time.Duration) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.
		Where("user_id = ? AND exit_time BETWEEN ? AND ?", userID, now, now.Add(horizon)).
		Find(&bookings).Error
	return bookings, err
}

// Scan runs one expiry pass for the user: every expiring booking gets its
// notification, each insert checked independently.
func (en *ExpiryNotifier) Scan(userID uint, now time.Time) error {
	bookings, err := FindExpiringBookings(en.DB, userID, now, en.Horizon)
	if err != nil {
		return err
	}

	for i := range bookings {
		if err := en.ensureExpiryNotification(&bookings[i]); err != nil {
			return err
		}
	}
	return nil
}

// ensureExpiryNotification inserts the booking's notification unless one
// already exists. The unique (user_id, booking_id) index turns the
// check-and-insert into a single conditional write, so concurrent dashboard
// loads cannot double up.
func (en *ExpiryNotifier) ensureExpiryNotification(booking *models.Booking) error {
	notif := models.Notification{
		UserID:    booking.UserID,
		BookingID: &booking.ID,
		Title:     ExpiryTitle(booking.SpotName),
		Message: fmt.Sprintf("Your booking at %s will expire soon (Exit time: %s).",
			booking.SpotName, booking.ExitTime.Format("2006-01-02 15:04")),
	}

	result := en.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "booking_id"}},
		DoNothing: true,
	}).Create(&notif)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		utils.InfoLogger.Printf("Expiry notification created for user %d, booking %d", booking.UserID, booking.ID)
	}
	return nil
}

// ExpiryTitle is the exact title the scan writes for a spot.
func ExpiryTitle(spotName string) string {
	return expiryTitlePrefix + spotName
}
