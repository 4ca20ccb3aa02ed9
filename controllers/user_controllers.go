package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/middlewares"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register creates a local driver account.
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleDriver,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusConflict, ErrEmailExists)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Email)

	utils.RespondJSON(c, http.StatusCreated, "Account created successfully! Please log in.", gin.H{
		"user_id": user.ID,
	})
}

// Login verifies a local credential and issues the session token. The role
// comes back in the payload so the client can land on the right dashboard.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Unknown email and wrong password fail the same way.
	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.SetCookie(middlewares.SessionCookie, token, 86400, "/", "", false, true)

	utils.InfoLogger.Printf("Login successful for user: %s", user.Email)

	utils.RespondJSON(c, http.StatusOK, "Logged in successfully!", gin.H{
		"token":    token,
		"role":     user.Role,
		"redirect": middlewares.DashboardPath(user.Role),
	})
}

// LoginPage is the login entry point unauthenticated requests get redirected to.
func (uc *UserController) LoginPage(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Please log in", nil)
}

func (uc *UserController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	utils.RespondJSON(c, http.StatusOK, "Logged out successfully.", nil)
}

// GetPersonalDetails returns the session user's profile.
func (uc *UserController) GetPersonalDetails(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Personal details", profileData(&user))
}

// UpdatePersonalDetails lets a driver update their phone and vehicle fields.
// Name, email and role stay as created.
func (uc *UserController) UpdatePersonalDetails(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	uc.updateDriverProfile(c, userID, "Personal details updated successfully!")
}

// GetDriver returns one driver record for the admin edit form.
func (uc *UserController) GetDriver(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Driver detail", profileData(&user))
}

// EditDriver lets the admin update any driver's profile fields.
func (uc *UserController) EditDriver(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	uc.updateDriverProfile(c, uint(id), "Driver updated successfully!")
}

func (uc *UserController) updateDriverProfile(c *gin.Context, userID uint, message string) {
	type request struct {
		PhoneNumber           string `json:"phone_number"`
		VehicleType           string `json:"vehicle_type"`
		VehicleModelName      string `json:"vehicle_model_name"`
		VehicleRegistrationNo string `json:"vehicle_registration_no"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result := uc.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"phone_number":            req.PhoneNumber,
		"vehicle_type":            req.VehicleType,
		"vehicle_model_name":      req.VehicleModelName,
		"vehicle_registration_no": req.VehicleRegistrationNo,
	})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, gorm.ErrRecordNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, message, gin.H{"user_id": userID})
}

func profileData(user *models.User) gin.H {
	return gin.H{
		"id":                      user.ID,
		"name":                    user.Name,
		"email":                   user.Email,
		"role":                    user.Role,
		"phone_number":            user.PhoneNumber,
		"vehicle_type":            user.VehicleType,
		"vehicle_model_name":      user.VehicleModelName,
		"vehicle_registration_no": user.VehicleRegistrationNo,
	}
}

// sessionUserID pulls the authenticated user id set by the auth middleware.
func sessionUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
