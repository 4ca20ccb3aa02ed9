package router

import (
	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/config"
	"github.com/smartpark/parking-app/controllers"
	"github.com/smartpark/parking-app/middlewares"
	"github.com/smartpark/parking-app/models"
	"github.com/smartpark/parking-app/services"
	"github.com/smartpark/parking-app/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	notifier := services.NewExpiryNotifier(db, config.ExpiryHorizon())
	provider := services.NewGoogleProvider(config.GoogleOAuthConfig())

	userCtrl := controllers.NewUserController(db)
	oauthCtrl := controllers.NewOAuthController(db, provider)
	bookingCtrl := controllers.NewBookingController(db)
	notificationCtrl := controllers.NewNotificationController(db, notifier)
	spotCtrl := controllers.NewParkingSpotController(db)
	feedbackCtrl := controllers.NewFeedbackController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		utils.RespondJSON(c, 200, "Parking reservation service", nil)
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/login", userCtrl.LoginPage)
	r.GET("/signup", func(c *gin.Context) {
		utils.RespondJSON(c, 200, "Create an account", nil)
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/signup", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	r.GET("/auth/google", oauthCtrl.GoogleLogin)
	r.GET("/login/callback", oauthCtrl.Callback)

	r.GET("/logout", middlewares.AuthMiddleware(), userCtrl.Logout)

	// ----------------------------------------------------------------
	//                      DRIVER ROUTES
	// ----------------------------------------------------------------
	driver := r.Group("/")
	driver.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleDriver))
	{
		driver.GET("/dashboard", notificationCtrl.DriverDashboard)
		driver.GET("/book-parking", bookingCtrl.ListSpots)
		driver.POST("/confirm-booking", bookingCtrl.ConfirmBooking)
		driver.GET("/booking-history", bookingCtrl.BookingHistory)
		driver.GET("/personal-details", userCtrl.GetPersonalDetails)
		driver.POST("/personal-details", userCtrl.UpdatePersonalDetails)
		driver.GET("/feedback", feedbackCtrl.ListOwnBookings)
		driver.POST("/feedback", feedbackCtrl.CreateFeedback)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/admin-dashboard", adminCtrl.Dashboard)
		admin.GET("/edit-driver/:user_id", userCtrl.GetDriver)
		admin.POST("/edit-driver/:user_id", userCtrl.EditDriver)
		admin.POST("/delete-feedback/:feedback_id", feedbackCtrl.DeleteFeedback)
		admin.GET("/add-parking-spot", func(c *gin.Context) {
			utils.RespondJSON(c, 200, "Add parking spot", nil)
		})
		admin.POST("/add-parking-spot", spotCtrl.CreateSpot)
		admin.GET("/edit-parking-spot/:spot_id", spotCtrl.GetSpot)
		admin.POST("/edit-parking-spot/:spot_id", spotCtrl.UpdateSpot)
		admin.POST("/delete-parking-spot/:spot_id", spotCtrl.DeleteSpot)
		admin.GET("/send-notification", notificationCtrl.ListRecipients)
		admin.POST("/send-notification", notificationCtrl.SendNotification)
	}

	return r
}
