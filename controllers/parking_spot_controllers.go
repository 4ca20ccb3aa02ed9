package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/utils"
	"gorm.io/gorm"
)

type ParkingSpotController struct {
	DB *gorm.DB
}

func NewParkingSpotController(db *gorm.DB) *ParkingSpotController {
	return &ParkingSpotController{DB: db}
}

type spotRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	PriceHourly  float64 `json:"price_hourly"`
	PriceMonthly float64 `json:"price_monthly"`
}

// CreateSpot adds a parking spot.
func (pc *ParkingSpotController) CreateSpot(c *gin.Context) {
	var req spotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	spot := models.ParkingSpot{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PriceHourly:  req.PriceHourly,
		PriceMonthly: req.PriceMonthly,
	}

	if err := pc.DB.Create(&spot).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Parking spot added successfully!", spot)
}

// GetSpot returns one spot for the edit form.
func (pc *ParkingSpotController) GetSpot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("spot_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var spot models.ParkingSpot
	if err := pc.DB.First(&spot, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Parking spot detail", spot)
}

// UpdateSpot rewrites a spot's fields. Bookings reference spots by name, so
// existing bookings keep the name they were made under.
func (pc *ParkingSpotController) UpdateSpot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("spot_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req spotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result := pc.DB.Model(&models.ParkingSpot{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":          req.Name,
		"address":       req.Address,
		"latitude":      req.Latitude,
		"longitude":     req.Longitude,
		"price_hourly":  req.PriceHourly,
		"price_monthly": req.PriceMonthly,
	})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, gorm.ErrRecordNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Parking spot updated successfully!", gin.H{"spot_id": id})
}

// DeleteSpot removes a spot.
func (pc *ParkingSpotController) DeleteSpot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("spot_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := pc.DB.Delete(&models.ParkingSpot{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Parking spot deleted successfully!", gin.H{"spot_id": id})
}
