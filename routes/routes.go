package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	userRepo "dateplanner/database/repository/user"
	"dateplanner/handlers"
	"dateplanner/middleware"
)

// HandlerBundle gathers the handlers and the dependencies route registration
// needs.
type HandlerBundle struct {
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client

	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Booking *handlers.BookingHandler
	Storage *handlers.StorageHandler
}

// RegisterAuthRoutes registers sign-in/sign-out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/session", hb.Auth.SessionHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthUserMiddleware(hb.UserRepo, hb.AuthCache))
		protected.POST("/signout", hb.Auth.SignOutHandler)
	}
}

// RegisterUserRoutes registers profile and partner endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthUserMiddleware(hb.UserRepo, hb.AuthCache))
		api.GET("/me", hb.User.GetProfileHandler)
		api.PATCH("/me", hb.User.UpdateProfileHandler)
		api.GET("/partner", hb.User.GetPartnerHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle and feed endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthUserMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/stream", hb.Booking.StreamBookings)
		api.POST("/:id/approve", hb.Booking.ApproveBooking)
		api.POST("/:id/reject", hb.Booking.RejectBooking)
	}
}

// RegisterStorageRoutes registers media signing and upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.AuthUserMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("/signature", hb.Storage.GetSignatureHandler)
		api.POST("/profile-photo", hb.Storage.UploadProfilePhotoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
