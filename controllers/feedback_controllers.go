package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/utils"
	"gorm.io/gorm"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// ListOwnBookings backs the feedback form with the driver's bookings.
func (fc *FeedbackController) ListOwnBookings(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var bookings []models.Booking
	if err := fc.DB.Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Your bookings", bookings)
}

// CreateFeedback records a driver's rating for one of their bookings.
func (fc *FeedbackController) CreateFeedback(c *gin.Context) {
	type request struct {
		BookingID uint   `json:"booking_id" binding:"required"`
		Rating    int    `json:"rating" binding:"required"`
		Comment   string `json:"comment"`
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

	feedback := models.Feedback{
		UserID:    userID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := fc.DB.Create(&feedback).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Thank you for your feedback!", feedback)
}

// DeleteFeedback is admin-only; feedback is never edited, only removed.
func (fc *FeedbackController) DeleteFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("feedback_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := fc.DB.Delete(&models.Feedback{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Feedback deleted successfully!", gin.H{"feedback_id": id})
}
