package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

type adminBookingRow struct {
	ID          uint      `json:"id"`
	DriverName  string    `json:"driver_name"`
	SpotName    string    `json:"spot_name"`
	Price       float64   `json:"price"`
	BookingType string    `json:"booking_type"`
	EntryTime   time.Time `json:"entry_time"`
	ExitTime    time.Time `json:"exit_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type adminFeedbackRow struct {
	ID         uint      `json:"id"`
	DriverName string    `json:"driver_name"`
	SpotName   string    `json:"spot_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// Dashboard assembles the admin's joined read model: drivers, bookings with
// driver names, feedback with driver and spot names, and the spot list.
// Pure read, no side effects.
func (ac *AdminController) Dashboard(c *gin.Context) {
	var drivers []models.User
	if err := ac.DB.Where("role = ?", models.RoleDriver).Find(&drivers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var bookings []adminBookingRow
	err := ac.DB.Model(&models.Booking{}).
		Select("bookings.id, users.name AS driver_name, bookings.spot_name, bookings.price, bookings.booking_type, bookings.entry_time, bookings.exit_time, bookings.created_at").
		Joins("JOIN users ON users.id = bookings.user_id").
		Order("bookings.created_at DESC").
		Scan(&bookings).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var feedbacks []adminFeedbackRow
	err = ac.DB.Model(&models.Feedback{}).
		Select("feedbacks.id, users.name AS driver_name, bookings.spot_name, feedbacks.rating, feedbacks.comment, feedbacks.created_at").
		Joins("JOIN users ON users.id = feedbacks.user_id").
		Joins("JOIN bookings ON bookings.id = feedbacks.booking_id").
		Order("feedbacks.created_at DESC").
		Scan(&feedbacks).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var spots []models.ParkingSpot
	if err := ac.DB.Order("created_at DESC").Find(&spots).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Admin dashboard", gin.H{
		"drivers":       drivers,
		"bookings":      bookings,
		"feedbacks":     feedbacks,
		"parking_spots": spots,
	})
}
