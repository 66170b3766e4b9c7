package handlers

import (
	"net/http"
	"strings"
	"time"

	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints backed by the BookingGuard.
type BookingHandler struct {
	Guard scheduling.BookingGuard
}

func NewBookingHandler(guard scheduling.BookingGuard) *BookingHandler {
	return &BookingHandler{Guard: guard}
}

// ListBookingsHandler returns bookings, optionally filtered by a
// comma-separated personIds query parameter. A booking matches when its
// participant set intersects the filter.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	var personIDs []string
	if raw := c.Query("personIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				personIDs = append(personIDs, trimmed)
			}
		}
	}

	bookings, err := h.Guard.ListBookings(c.Request.Context(), personIDs)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBookingHandler commits a booking through the guard. A 409 means the
// slot was taken between discovery and commit; re-run the slot search.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		PersonIDs   []string `json:"personIds" binding:"required"`
		StartTime   string   `json:"startTime" binding:"required"`
		EndTime     string   `json:"endTime" binding:"required"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startTime; expected RFC3339", "message": err.Error()})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endTime; expected RFC3339", "message": err.Error()})
		return
	}

	booking, err := h.Guard.CreateBooking(c.Request.Context(), req.PersonIDs, start, end, req.Title, req.Description)
	if err != nil {
		logger.Warn("Booking creation rejected", zap.Strings("personIDs", req.PersonIDs), zap.Error(err))
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Guard.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
