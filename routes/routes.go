package routes

import (
	"net/http"
	"time"

	"slotify/handlers"
	"slotify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPeopleRoutes registers person directory and availability endpoints.
func RegisterPeopleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/people")
	{
		api.GET("", hb.ListPeopleHandler)
		api.POST("", hb.CreatePersonHandler)
		api.GET("/:id", hb.GetPersonHandler)
		api.PUT("/:id", hb.UpdatePersonHandler)
		api.DELETE("/:id", hb.DeletePersonHandler)

		api.GET("/:id/availability", hb.GetAvailabilityHandler)
		api.PUT("/:id/availability", hb.ReplaceAvailabilityHandler)
	}
}

// RegisterSlotRoutes registers the group slot search endpoint.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	{
		api.POST("", hb.FindSlotsHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingsHandler)
		api.POST("", hb.CreateBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
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

	RegisterPeopleRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
