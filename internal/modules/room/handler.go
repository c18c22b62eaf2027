package room

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

// RegisterPublicRoutes mounts the read-only room endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:id", h.GetRoom)
}

// RegisterAdminRoutes mounts the staff-only room management endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeleteRoom)
	rg.GET("/rooms/:id/associations", h.CheckAssociations)

	rg.GET("/rooms/:id/costs", h.ListCosts)
	rg.POST("/rooms/:id/costs", h.CreateCost)
	rg.GET("/rooms/costs/:costId", h.GetCost)
	rg.PUT("/rooms/costs/:costId", h.UpdateCost)
	rg.DELETE("/rooms/costs/:costId", h.DeleteCost)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case isValidationError(err):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CheckAssociations(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}

	has, err := h.service.HasAssociations(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check associations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"has_associations": has})
}

func (h *Handler) CreateCost(c *gin.Context) {
	roomID, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}

	var req CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	cost, err := h.service.CreateCost(c.Request.Context(), roomID, req)
	if err != nil {
		if isValidationError(err) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room cost")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"cost": cost})
}

func (h *Handler) GetCost(c *gin.Context) {
	costID, ok := parseID(c, "costId", "Invalid cost ID")
	if !ok {
		return
	}

	cost, err := h.service.GetCost(c.Request.Context(), costID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room cost not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room cost")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cost": cost})
}

func (h *Handler) ListCosts(c *gin.Context) {
	roomID, ok := parseID(c, "id", "Invalid room ID")
	if !ok {
		return
	}

	costs, err := h.service.ListCosts(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room costs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"costs": costs})
}

func (h *Handler) UpdateCost(c *gin.Context) {
	costID, ok := parseID(c, "costId", "Invalid cost ID")
	if !ok {
		return
	}

	var req CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	cost, err := h.service.UpdateCost(c.Request.Context(), costID, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room cost not found")
		case isValidationError(err):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room cost")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cost": cost})
}

func (h *Handler) DeleteCost(c *gin.Context) {
	costID, ok := parseID(c, "costId", "Invalid cost ID")
	if !ok {
		return
	}

	if err := h.service.DeleteCost(c.Request.Context(), costID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room cost not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete room cost")
		return
	}

	c.Status(http.StatusNoContent)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrMaxCapacity) ||
		errors.Is(err, ErrMinCapacity) ||
		errors.Is(err, ErrCapacityOrder) ||
		errors.Is(err, ErrDuration) ||
		errors.Is(err, ErrInvalidDate)
}

func parseID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", message)
		return 0, false
	}
	return id, true
}
