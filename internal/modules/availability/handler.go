package availability

import (
	"errors"
	"net/http"
	"strconv"

	"xavro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/availability", h.GetAvailability)
	rg.GET("/rooms/:id/timeslots", h.GetTimeslots)
}

// GetAvailability handles GET /api/rooms/:id/availability
func (h *Handler) GetAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	dates, err := h.service.AvailableDates(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetTimeslots handles GET /api/rooms/:id/timeslots?date=YYYY-MM-DD
func (h *Handler) GetTimeslots(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_DATE", "Date parameter is required")
		return
	}

	slots, err := h.service.TimeslotsForDate(c.Request.Context(), roomID, dateStr)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Date must be in YYYY-MM-DD format")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load timeslots")
		return
	}

	c.JSON(http.StatusOK, slots)
}
