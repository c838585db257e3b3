package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

type UnitHandler struct {
	unitService *services.UnitService
}

func NewUnitHandler(unitService *services.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// CreateUnit handles POST /api/v1/properties/:id/units
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	propertyID, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	var req services.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	unit, err := h.unitService.Create(propertyID, userID, req)
	if err != nil {
		failFor(c, err, "Failed to create unit")
		return
	}

	responses.Success(c, http.StatusCreated, unit, "Unit created successfully")
}

// ListUnits handles GET /api/v1/properties/:id/units
func (h *UnitHandler) ListUnits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	propertyID, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid property id")
		return
	}

	units, err := h.unitService.ListByProperty(propertyID, userID)
	if err != nil {
		failFor(c, err, "Failed to retrieve units")
		return
	}

	responses.Success(c, http.StatusOK, units, "Units retrieved successfully")
}

// GetUnit handles GET /api/v1/units/:id
func (h *UnitHandler) GetUnit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid unit id")
		return
	}

	unit, err := h.unitService.Get(id, userID)
	if err != nil {
		failFor(c, err, "Unit not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, unit, "Unit retrieved successfully")
}

// UpdateUnit handles PATCH /api/v1/units/:id
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid unit id")
		return
	}

	var req services.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	unit, err := h.unitService.Update(id, userID, req)
	if err != nil {
		failFor(c, err, "Failed to update unit")
		return
	}

	responses.Success(c, http.StatusOK, unit, "Unit updated successfully")
}

// DeleteUnit handles DELETE /api/v1/units/:id
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid unit id")
		return
	}

	if err := h.unitService.Delete(id, userID); err != nil {
		failFor(c, err, "Failed to delete unit")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Unit deleted successfully")
}
