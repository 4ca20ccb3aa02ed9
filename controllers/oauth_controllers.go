package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/middlewares"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/services"
	"github.com/smartpark/parking-app/utils"
	"gorm.io/gorm"
)

type OAuthController struct {
	DB       *gorm.DB
	Provider services.IdentityProvider
}

func NewOAuthController(db *gorm.DB, provider services.IdentityProvider) *OAuthController {
	return &OAuthController{DB: db, Provider: provider}
}

// GoogleLogin sends the browser to the provider's consent screen.
func (oc *OAuthController) GoogleLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, oc.Provider.AuthURL("state"))
}

// Callback exchanges the provider callback for a profile and logs the user
// in, creating the account on first sign-in. Resolving the same email twice
// never creates a second row.
func (oc *OAuthController) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.ErrorLogger.Println("OAuth callback without authorization code")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	profile, err := oc.Provider.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.ErrorLogger.Printf("OAuth exchange failed: %v", err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := oc.resolveUser(profile)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.SetCookie(middlewares.SessionCookie, token, 86400, "/", "", false, true)

	utils.InfoLogger.Printf("Google login for %s", user.Email)

	c.Redirect(http.StatusSeeOther, middlewares.DashboardPath(user.Role))
}

func (oc *OAuthController) resolveUser(profile *services.Profile) (*models.User, error) {
	var user models.User
	err := oc.DB.Where("email = ?", profile.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// First sign-in: auto-signup as a driver with no local credential.
	user = models.User{
		Name:  profile.Name,
		Email: profile.Email,
		Role:  models.RoleDriver,
	}
	if err := oc.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent callback won the insert; use its row.
			if err := oc.DB.Where("email = ?", profile.Email).First(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, err
	}

	return &user, nil
}
