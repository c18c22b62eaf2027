package showtime

import (
	"errors"
	"net/http"
	"strconv"

	"xavro/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only showtime endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/showtimes", h.ListByRoom)
	rg.GET("/showtimes/:id", h.GetShowtime)
}

// RegisterAdminRoutes mounts the staff-only schedule management endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms/:id/showtimes", h.CreateShowtime)
	rg.PUT("/rooms/:id/showtimes/:showtimeId", h.UpdateShowtime)
	rg.DELETE("/showtimes/:id", h.DeleteShowtime)
}

func (h *Handler) CreateShowtime(c *gin.Context) {
	roomID, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}

	var req ShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	st, err := h.service.CreateShowtime(c.Request.Context(), roomID, req)
	if err != nil {
		if isValidationError(err) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create showtime")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"showtime": st})
}

func (h *Handler) GetShowtime(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid showtime ID")
	if !ok {
		return
	}

	st, err := h.service.GetShowtime(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Showtime not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load showtime")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"showtime": st})
}

func (h *Handler) ListByRoom(c *gin.Context) {
	roomID, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}

	showtimes, err := h.service.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load showtimes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"showtimes": showtimes})
}

func (h *Handler) UpdateShowtime(c *gin.Context) {
	roomID, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}
	showtimeID, ok := parseID(c, "showtimeId", "Invalid showtime ID")
	if !ok {
		return
	}

	var req ShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	st, err := h.service.UpdateShowtime(c.Request.Context(), roomID, showtimeID, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Showtime not found")
		case isValidationError(err):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update showtime")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"showtime": st})
}

func (h *Handler) DeleteShowtime(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid showtime ID")
	if !ok {
		return
	}

	if err := h.service.DeleteShowtime(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Showtime not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete showtime")
		return
	}

	c.Status(http.StatusNoContent)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidWeekday) ||
		errors.Is(err, ErrInvalidTime) ||
		errors.Is(err, ErrTimeOrder) ||
		errors.Is(err, ErrInvalidSlot)
}

func parseID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", message)
		return 0, false
	}
	return id, true
}
