package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/services"
	"github.com/smartpark/parking-app/utils"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB       *gorm.DB
	Notifier *services.ExpiryNotifier
}

func NewNotificationController(db *gorm.DB, notifier *services.ExpiryNotifier) *NotificationController {
	return &NotificationController{DB: db, Notifier: notifier}
}

// DriverDashboard runs the expiry scan for the session user and returns the
// refreshed notification list. Repeating the load inside the same expiry
// window does not add rows.
func (nc *NotificationController) DriverDashboard(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	if err := nc.Notifier.Scan(userID, time.Now()); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var notifications []models.Notification
	if err := nc.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard", gin.H{
		"notifications": notifications,
	})
}

// ListRecipients backs the admin's send-notification form with every driver.
func (nc *NotificationController) ListRecipients(c *gin.Context) {
	type driver struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	var drivers []driver
	if err := nc.DB.Model(&models.User{}).Where("role = ?", models.RoleDriver).Find(&drivers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Drivers", drivers)
}

// SendNotification inserts an admin-authored notification. No dedup applies
// here: sending the same title twice creates two rows.
func (nc *NotificationController) SendNotification(c *gin.Context) {
	type request struct {
		UserID  uint   `json:"user_id" binding:"required"`
		Title   string `json:"title" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	notif := models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
	}

	if err := nc.DB.Create(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Notification sent to user %d: %s", req.UserID, req.Title)

	utils.RespondJSON(c, http.StatusCreated, "Notification sent successfully!", notif)
}
