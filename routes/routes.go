package routes

import (
	"net/http"
	"time"

	"parkwise/handlers"
	"parkwise/middleware"
	"parkwise/models"
	"parkwise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login and registration endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/register", hb.Auth.RegisterHandler)
	}
}

// RegisterSlotRoutes registers slot inventory and check-in/out endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Slots.ListSlotsHandler)
		api.GET("/available", hb.Slots.ListAvailableSlotsHandler)
		api.GET("/stats", hb.Slots.SlotStatsHandler)
		api.GET("/:id", hb.Slots.GetSlotHandler)

		// Booking and freeing is open to every authenticated role: owners
		// book their own vehicle, attendants check vehicles in and out.
		api.POST("/:id/book", hb.Bookings.BookSlotHandler)
		api.POST("/:id/free", hb.Bookings.FreeSlotHandler)

		// Inventory management is admin-only.
		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.Slots.CreateSlotHandler)
		admin.PUT("/:id", hb.Slots.UpdateSlotHandler)
		admin.DELETE("/:id", hb.Slots.DeleteSlotHandler)
		admin.POST("/:id/block", hb.Slots.BlockSlotHandler)
		admin.POST("/:id/unblock", hb.Slots.UnblockSlotHandler)
	}
}

// RegisterBookingRoutes registers ledger query endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleAttendant), hb.Bookings.BookingHistoryHandler)
		api.GET("/active", middleware.RequireRoles(models.RoleAdmin, models.RoleAttendant), hb.Bookings.ActiveBookingsHandler)
		api.GET("/stats", middleware.RequireRoles(models.RoleAdmin), hb.Bookings.BookingStatsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
	}
}

// RegisterUserRoutes registers user management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", middleware.RequireRoles(models.RoleAdmin), hb.Users.ListUsersHandler)
		api.GET("/:id", hb.Users.GetUserHandler)
		api.GET("/:id/bookings", hb.Bookings.UserBookingsHandler)
		api.PUT("/:id", middleware.RequireSelfOrRoles(models.RoleAdmin), hb.Users.UpdateUserHandler)
		api.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.Users.DeleteUserHandler)
		api.POST("/:id/toggle-status", middleware.RequireRoles(models.RoleAdmin), hb.Users.ToggleStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
