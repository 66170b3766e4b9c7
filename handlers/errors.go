package handlers

import (
	"errors"
	"net/http"

	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError maps the core's closed error taxonomy onto HTTP.
// Conflicts are a normal outcome of concurrent use, not a server fault.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrInvalidRequest):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, scheduling.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, scheduling.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "Booking conflict", "the requested time overlaps an existing booking; re-run the slot search and pick a fresh slot")
	case errors.Is(err, scheduling.ErrStoreUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", "a backing store failed; please retry")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
