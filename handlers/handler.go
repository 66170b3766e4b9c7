package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// People endpoints.
	ListPeopleHandler   gin.HandlerFunc
	CreatePersonHandler gin.HandlerFunc
	GetPersonHandler    gin.HandlerFunc
	UpdatePersonHandler gin.HandlerFunc
	DeletePersonHandler gin.HandlerFunc

	// Availability endpoints.
	GetAvailabilityHandler     gin.HandlerFunc
	ReplaceAvailabilityHandler gin.HandlerFunc

	// Slot search endpoint.
	FindSlotsHandler gin.HandlerFunc

	// Booking endpoints.
	ListBookingsHandler  gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc
}
