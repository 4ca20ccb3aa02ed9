package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/smartpark/parking-app/controllers"
	"github.com/smartpark/parking-app/middlewares"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/utils"
)

func setupSpotRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	spotCtrl := controllers.NewParkingSpotController(db)
	authed := router.Group("/", middlewares.AuthMiddleware())
	authed.POST("/add-parking-spot", spotCtrl.CreateSpot)
	authed.GET("/edit-parking-spot/:spot_id", spotCtrl.GetSpot)
	authed.POST("/edit-parking-spot/:spot_id", spotCtrl.UpdateSpot)
	authed.POST("/delete-parking-spot/:spot_id", spotCtrl.DeleteSpot)

	return router
}

func TestParkingSpotCRUD(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupSpotRouter(db)
	admin := seedUser(db, "Admin", "admin@example.com", "password123", models.RoleAdmin)

	// Create
	req := jsonRequest(t, "POST", "/add-parking-spot", map[string]interface{}{
		"name":          "Lot A",
		"address":       "1 Main St",
		"latitude":      51.5,
		"longitude":     -0.1,
		"price_hourly":  2.5,
		"price_monthly": 120.0,
	})
	req.Header.Set("Authorization", bearerToken(t, admin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp struct {
		Data models.ParkingSpot `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	spotID := createResp.Data.ID
	assert.NotZero(t, spotID)

	url := "/edit-parking-spot/" + strconv.Itoa(int(spotID))

	// Read
	req, _ = http.NewRequest("GET", url, nil)
	req.Header.Set("Authorization", bearerToken(t, admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Update
	req = jsonRequest(t, "POST", url, map[string]interface{}{
		"name":          "Lot A East",
		"address":       "1 Main St",
		"latitude":      51.5,
		"longitude":     -0.1,
		"price_hourly":  3.0,
		"price_monthly": 130.0,
	})
	req.Header.Set("Authorization", bearerToken(t, admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var spot models.ParkingSpot
	assert.NoError(t, db.First(&spot, spotID).Error)
	assert.Equal(t, "Lot A East", spot.Name)
	assert.Equal(t, 3.0, spot.PriceHourly)

	// Delete
	req, _ = http.NewRequest("POST", "/delete-parking-spot/"+strconv.Itoa(int(spotID)), nil)
	req.Header.Set("Authorization", bearerToken(t, admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.ParkingSpot{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateMissingSpot(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupSpotRouter(db)
	admin := seedUser(db, "Admin", "admin@example.com", "password123", models.RoleAdmin)

	req := jsonRequest(t, "POST", "/edit-parking-spot/999", map[string]interface{}{
		"name":    "Ghost Lot",
		"address": "nowhere",
	})
	req.Header.Set("Authorization", bearerToken(t, admin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
