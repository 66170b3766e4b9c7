package handlers

import (
	"net/http"
	"time"

	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotsHandler serves the group slot search endpoint.
type SlotsHandler struct {
	Finder scheduling.SlotFinder
}

func NewSlotsHandler(finder scheduling.SlotFinder) *SlotsHandler {
	return &SlotsHandler{Finder: finder}
}

// FindSlotsHandler computes the bookable slots for a group of people on a
// calendar date. Pure read; callers may hammer it concurrently.
func (h *SlotsHandler) FindSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		PersonIDs       []string `json:"personIds" binding:"required"`
		Date            string   `json:"date" binding:"required"`
		DurationMinutes int      `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = 30
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date; expected YYYY-MM-DD", "message": err.Error()})
		return
	}

	slots, err := h.Finder.FindSlots(c.Request.Context(), req.PersonIDs, date, req.DurationMinutes)
	if err != nil {
		logger.Warn("Slot search failed", zap.Strings("personIDs", req.PersonIDs), zap.Error(err))
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
