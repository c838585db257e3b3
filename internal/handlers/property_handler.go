package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// CreateProperty handles POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	property, err := h.propertyService.Create(userID, req)
	if err != nil {
		failFor(c, err, "Failed to create property")
		return
	}

	responses.Success(c, http.StatusCreated, property, "Property created successfully")
}

// GetProperty handles GET /api/v1/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	property, err := h.propertyService.Get(id, userID)
	if err != nil {
		failFor(c, err, "Property not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, property, "Property retrieved successfully")
}

// ListProperties handles GET /api/v1/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	filter := repositories.PropertyFilter{
		City:   c.Query("city"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
	if v := c.Query("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := c.Query("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	properties, err := h.propertyService.List(userID, filter)
	if err != nil {
		failFor(c, err, "Failed to retrieve properties")
		return
	}

	responses.Success(c, http.StatusOK, properties, "Properties retrieved successfully")
}

// UpdateProperty handles PATCH /api/v1/properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	var req services.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	property, err := h.propertyService.Update(id, userID, req)
	if err != nil {
		failFor(c, err, "Failed to update property")
		return
	}

	responses.Success(c, http.StatusOK, property, "Property updated successfully")
}

// DeleteProperty handles DELETE /api/v1/properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	if err := h.propertyService.Delete(id, userID); err != nil {
		failFor(c, err, "Property not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Property deleted successfully")
}
