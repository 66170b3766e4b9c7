package handlers

import (
	"errors"
	"net/http"

	personRepo "slotify/database/repository/person"
	"slotify/models"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PersonHandler serves the person directory CRUD endpoints.
type PersonHandler struct {
	Repo personRepo.PersonRepository
}

func NewPersonHandler(repo personRepo.PersonRepository) *PersonHandler {
	return &PersonHandler{Repo: repo}
}

func (h *PersonHandler) ListPeopleHandler(c *gin.Context) {
	people, err := h.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list people", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to list people"})
		return
	}
	if people == nil {
		people = []models.Person{}
	}
	c.JSON(http.StatusOK, people)
}

func (h *PersonHandler) CreatePersonHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name         string               `json:"name" binding:"required"`
		Email        string               `json:"email"`
		Availability []dayAvailabilityDTO `json:"availability"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	availability := models.DefaultAvailability()
	if len(req.Availability) > 0 {
		wa, err := availabilityFromDTO(req.Availability)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability", "message": err.Error()})
			return
		}
		availability = wa
	}

	person := &models.Person{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Availability: availability,
	}
	if err := h.Repo.Create(person); err != nil {
		logger.Error("Failed to create person", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to create person"})
		return
	}

	logger.Info("Person created", zap.String("personID", person.ID), zap.String("name", person.Name))
	c.JSON(http.StatusCreated, person)
}

func (h *PersonHandler) GetPersonHandler(c *gin.Context) {
	personID := c.Param("id")
	person, err := h.Repo.GetByID(personID)
	if err != nil {
		if errors.Is(err, personRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch person", zap.String("personID", personID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch person"})
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) UpdatePersonHandler(c *gin.Context) {
	logger := utils.GetLogger()
	personID := c.Param("id")

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	person, err := h.Repo.GetByID(personID)
	if err != nil {
		if errors.Is(err, personRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		logger.Error("Failed to fetch person", zap.String("personID", personID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch person"})
		return
	}

	if req.Name != "" {
		person.Name = req.Name
	}
	if req.Email != "" {
		person.Email = req.Email
	}
	if err := h.Repo.Update(person); err != nil {
		logger.Error("Failed to update person", zap.String("personID", personID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update person"})
		return
	}

	c.JSON(http.StatusOK, person)
}

func (h *PersonHandler) DeletePersonHandler(c *gin.Context) {
	personID := c.Param("id")
	if err := h.Repo.Delete(personID); err != nil {
		if errors.Is(err, personRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete person", zap.String("personID", personID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to delete person"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Person deleted successfully"})
}
