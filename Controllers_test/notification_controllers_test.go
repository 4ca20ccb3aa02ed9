package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/smartpark/parking-app/controllers"
	"github.com/smartpark/parking-app/middlewares"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/services"
	"github.com/smartpark/parking-app/utils"
)

func setupNotificationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	notifier := services.NewExpiryNotifier(db, time.Hour)
	notifCtrl := controllers.NewNotificationController(db, notifier)

	authed := router.Group("/", middlewares.AuthMiddleware())
	authed.GET("/dashboard", notifCtrl.DriverDashboard)
	authed.GET("/send-notification", notifCtrl.ListRecipients)
	authed.POST("/send-notification", notifCtrl.SendNotification)

	return router
}

func TestDashboardCreatesNotificationOnce(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupNotificationRouter(db)
	alice := seedUser(db, "Alice", "alice@example.com", "password123", models.RoleDriver)

	now := time.Now()
	db.Create(&models.Booking{
		UserID:      alice.ID,
		SpotName:    "Lot A",
		BookingType: "hourly",
		EntryTime:   now.Add(-time.Hour),
		ExitTime:    now.Add(30 * time.Minute),
	})

	// First load creates the notification, the second returns the same one.
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("GET", "/dashboard", nil)
		req.Header.Set("Authorization", bearerToken(t, alice))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Notifications []models.Notification `json:"notifications"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data.Notifications, 1)
		assert.Equal(t, "Booking Ending Soon: Lot A", resp.Data.Notifications[0].Title)
	}

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDashboardIgnoresFarBookings(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupNotificationRouter(db)
	alice := seedUser(db, "Alice", "alice@example.com", "password123", models.RoleDriver)

	now := time.Now()
	db.Create(&models.Booking{
		UserID:      alice.ID,
		SpotName:    "Lot A",
		BookingType: "hourly",
		EntryTime:   now,
		ExitTime:    now.Add(61 * time.Minute),
	})

	req, _ := http.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", bearerToken(t, alice))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminNotificationHasNoDedup(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupNotificationRouter(db)
	admin := seedUser(db, "Admin", "admin@example.com", "password123", models.RoleAdmin)
	driver := seedUser(db, "Bob", "bob@example.com", "password123", models.RoleDriver)

	payload := map[string]interface{}{
		"user_id": driver.ID,
		"title":   "Welcome",
		"message": "Welcome to the service",
	}

	// Two identical sends are two rows: only the expiry scan dedups.
	for i := 0; i < 2; i++ {
		req := jsonRequest(t, "POST", "/send-notification", payload)
		req.Header.Set("Authorization", bearerToken(t, admin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	var count int64
	db.Model(&models.Notification{}).Where("user_id = ? AND title = ?", driver.ID, "Welcome").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestListRecipientsReturnsDriversOnly(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupNotificationRouter(db)
	admin := seedUser(db, "Admin", "admin@example.com", "password123", models.RoleAdmin)
	seedUser(db, "Bob", "bob@example.com", "password123", models.RoleDriver)
	seedUser(db, "Carol", "carol@example.com", "password123", models.RoleDriver)

	req, _ := http.NewRequest("GET", "/send-notification", nil)
	req.Header.Set("Authorization", bearerToken(t, admin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}
