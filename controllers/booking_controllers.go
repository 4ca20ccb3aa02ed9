package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/utils"
	"gorm.io/gorm"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// ListSpots backs the booking form with every available parking spot.
func (bc *BookingController) ListSpots(c *gin.Context) {
	var spots []models.ParkingSpot
	if err := bc.DB.Find(&spots).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Parking spots", spots)
}

// ConfirmBooking inserts the booking for the session user. There is no
// overlap or capacity check: the same spot can be booked by any number of
// drivers for the same window.
func (bc *BookingController) ConfirmBooking(c *gin.Context) {
	type request struct {
		SpotName    string    `json:"spot_name" binding:"required"`
		Price       float64   `json:"price" binding:"required"`
		BookingType string    `json:"booking_type" binding:"required"`
		EntryTime   time.Time `json:"entry_time" binding:"required"`
		ExitTime    time.Time `json:"exit_time" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	booking := models.Booking{
		UserID:      userID,
		SpotName:    req.SpotName,
		Price:       req.Price,
		BookingType: req.BookingType,
		EntryTime:   req.EntryTime,
		ExitTime:    req.ExitTime,
	}

	if err := bc.DB.Create(&booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Booking %d created for user %d at %s", booking.ID, userID, booking.SpotName)

	utils.RespondJSON(c, http.StatusCreated, "Parking spot booked successfully!", booking)
}

// BookingHistory lists the session user's bookings, most recent first.
func (bc *BookingController) BookingHistory(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var bookings []models.Booking
	if err := bc.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking history", bookings)
}
