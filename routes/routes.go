package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"islandstay/handlers"
)

// RegisterSearchRoutes registers hotel search and detail endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/search", hb.Search.Search)
		api.GET("/hotels/:id", hb.Hotels.GetHotelDetails)
		api.POST("/hotels/rates", hb.Hotels.GetHotelRates)
	}
}

// RegisterBookingRoutes registers the direct prebook and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/prebook", hb.Bookings.Prebook)
		api.POST("/booking", hb.Bookings.CreateBooking)
		api.GET("/booking/:id", hb.Bookings.GetBooking)
		api.PUT("/booking/:id/cancel", hb.Bookings.CancelBooking)
	}
}

// RegisterCheckoutRoutes sets up the endpoints for the checkout flow.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkoutGroup := r.Group("/api/checkout")
	{
		checkoutGroup.POST("/session", hb.Checkout.StartSession)
		checkoutGroup.GET("/session/:sessionID", hb.Checkout.GetSession)
		checkoutGroup.DELETE("/session/:sessionID", hb.Checkout.AbandonSession)
		checkoutGroup.POST("/session/:sessionID/guest", hb.Checkout.SubmitGuestInfo)
		checkoutGroup.POST("/session/:sessionID/payment/complete", hb.Checkout.CompletePayment)
		checkoutGroup.POST("/session/:sessionID/payment/fail", hb.Checkout.FailPayment)
	}
}

// RegisterWishlistRoutes registers saved-hotel endpoints.
func RegisterWishlistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wishlist")
	{
		api.GET("/:clientID", hb.Wishlist.List)
		api.POST("/:clientID", hb.Wishlist.Add)
		api.DELETE("/:clientID", hb.Wishlist.Clear)
		api.DELETE("/:clientID/:hotelId", hb.Wishlist.Remove)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
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

	RegisterSearchRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterWishlistRoutes(r, hb)
	RegisterHealthRoute(r)
}
