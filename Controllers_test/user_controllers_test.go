package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/smartpark/parking-app/controllers"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/utils"
)

// setupTestDB uses in-memory SQLite with the same error translation the
// production config enables.
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.ParkingSpot{},
		&models.Booking{},
		&models.Notification{},
		&models.Feedback{},
	)
	if err != nil {
		panic(err)
	}

	return db
}

func seedUser(db *gorm.DB, name, email, password string, role models.Role) models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	db.Create(&user)
	return user
}

func jsonRequest(t *testing.T, method, url string, payload interface{}) *http.Request {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	userCtrl := controllers.NewUserController(db)
	router.POST("/signup", userCtrl.Register)
	router.POST("/login", userCtrl.Login)

	return router
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupUserRouter(db)

	req := jsonRequest(t, "POST", "/signup", map[string]string{
		"name":     "Test Driver",
		"email":    "driver@example.com",
		"password": "password123",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var registerResponse map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &registerResponse))
	assert.Equal(t, true, registerResponse["status"])
	data := registerResponse["data"].(map[string]interface{})
	assert.NotNil(t, data["user_id"])

	req = jsonRequest(t, "POST", "/login", map[string]string{
		"email":    "driver@example.com",
		"password": "password123",
	})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResponse map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResponse))
	assert.Equal(t, true, loginResponse["status"])
	data = loginResponse["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	assert.Equal(t, "driver", data["role"])
	assert.Equal(t, "/dashboard", data["redirect"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupUserRouter(db)

	payload := map[string]string{
		"name":     "Test Driver",
		"email":    "dup@example.com",
		"password": "password123",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(t, "POST", "/signup", payload))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(t, "POST", "/signup", payload))
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email already exists", resp["message"])

	var count int64
	db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginInvalidCredentials(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupUserRouter(db)
	seedUser(db, "Test Driver", "driver@example.com", "password123", models.RoleDriver)

	// Wrong password and unknown email fail identically.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(t, "POST", "/login", map[string]string{
		"email":    "driver@example.com",
		"password": "wrongpass",
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var wrongPass map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &wrongPass))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(t, "POST", "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var unknownEmail map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &unknownEmail))

	assert.Equal(t, wrongPass["message"], unknownEmail["message"])
}
