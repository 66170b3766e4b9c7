package handlers

import (
	"errors"
	"net/http"

	availabilityRepo "slotify/database/repository/availability"
	"slotify/models"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Wire shape for availability: a list of day entries with clock-string
// ranges, e.g. {"day": 0, "timeSlots": [{"start": "08:00", "end": "16:00"}]}.
// Day 0 is Monday. Internally everything is minute offsets.

type timeSlotDTO struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type dayAvailabilityDTO struct {
	Day       int           `json:"day"`
	TimeSlots []timeSlotDTO `json:"timeSlots"`
}

func availabilityFromDTO(days []dayAvailabilityDTO) (models.WeeklyAvailability, error) {
	var raw [7][]models.TimeRange
	for _, d := range days {
		if d.Day < 0 || d.Day > 6 {
			return models.WeeklyAvailability{}, errors.New("day must be between 0 (Monday) and 6 (Sunday)")
		}
		for _, ts := range d.TimeSlots {
			start, err := utils.MinutesFromClock(ts.Start)
			if err != nil {
				return models.WeeklyAvailability{}, err
			}
			end, err := utils.MinutesFromClock(ts.End)
			if err != nil {
				return models.WeeklyAvailability{}, err
			}
			raw[d.Day] = append(raw[d.Day], models.TimeRange{Start: start, End: end})
		}
	}
	return models.NewWeeklyAvailability(raw)
}

func availabilityToDTO(wa models.WeeklyAvailability) []dayAvailabilityDTO {
	out := []dayAvailabilityDTO{}
	for day := 0; day < 7; day++ {
		ranges := wa.RangesFor(day)
		if len(ranges) == 0 {
			continue
		}
		slots := make([]timeSlotDTO, 0, len(ranges))
		for _, r := range ranges {
			slots = append(slots, timeSlotDTO{
				Start: utils.ClockFromMinutes(r.Start),
				End:   utils.ClockFromMinutes(r.End),
			})
		}
		out = append(out, dayAvailabilityDTO{Day: day, TimeSlots: slots})
	}
	return out
}

// AvailabilityHandler serves per-person weekly availability.
type AvailabilityHandler struct {
	Repo availabilityRepo.AvailabilityRepository
}

func NewAvailabilityHandler(repo availabilityRepo.AvailabilityRepository) *AvailabilityHandler {
	return &AvailabilityHandler{Repo: repo}
}

func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	personID := c.Param("id")
	if personID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Person ID is required"})
		return
	}

	wa, err := h.Repo.Get(personID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch availability", zap.String("personID", personID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": availabilityToDTO(wa)})
}

// ReplaceAvailabilityHandler overwrites a person's weekly schedule
// wholesale. There is no partial-day patching.
func (h *AvailabilityHandler) ReplaceAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	personID := c.Param("id")
	if personID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Person ID is required"})
		return
	}

	var req struct {
		Availability []dayAvailabilityDTO `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	wa, err := availabilityFromDTO(req.Availability)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability", "message": err.Error()})
		return
	}

	if err := h.Repo.Replace(personID, wa); err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		logger.Error("Failed to replace availability", zap.String("personID", personID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to replace availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": availabilityToDTO(wa)})
}
