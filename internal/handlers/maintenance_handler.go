package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// CreateRequest handles POST /api/v1/maintenance
func (h *MaintenanceHandler) CreateRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	request, err := h.maintenanceService.Create(userID, req)
	if err != nil {
		failFor(c, err, "Failed to create maintenance request")
		return
	}

	responses.Success(c, http.StatusCreated, request, "Maintenance request created successfully")
}

// GetRequest handles GET /api/v1/maintenance/:id
func (h *MaintenanceHandler) GetRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request id")
		return
	}

	request, err := h.maintenanceService.Get(id, userID)
	if err != nil {
		failFor(c, err, "Maintenance request not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, request, "Maintenance request retrieved successfully")
}

// ListRequests handles GET /api/v1/maintenance
func (h *MaintenanceHandler) ListRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	filter := repositories.MaintenanceFilter{
		Status: c.Query("status"),
	}
	if v := c.Query("property_id"); v != "" {
		filter.PropertyID, _ = uuid.Parse(v)
	}

	requests, err := h.maintenanceService.List(userID, filter)
	if err != nil {
		failFor(c, err, "Failed to retrieve maintenance requests")
		return
	}

	responses.Success(c, http.StatusOK, requests, "Maintenance requests retrieved successfully")
}

// UpdateRequest handles PATCH /api/v1/maintenance/:id
func (h *MaintenanceHandler) UpdateRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request id")
		return
	}

	var req services.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	request, err := h.maintenanceService.Update(id, userID, req)
	if err != nil {
		failFor(c, err, "Failed to update maintenance request")
		return
	}

	responses.Success(c, http.StatusOK, request, "Maintenance request updated successfully")
}

// SetStatus handles POST /api/v1/maintenance/:id/status
func (h *MaintenanceHandler) SetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=in_progress completed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	request, err := h.maintenanceService.SetStatus(id, userID, models.MaintenanceStatus(req.Status))
	if err != nil {
		failFor(c, err, "Failed to update status")
		return
	}

	responses.Success(c, http.StatusOK, request, "Status updated successfully")
}

// AssignVendor handles POST /api/v1/maintenance/:id/assign
func (h *MaintenanceHandler) AssignVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request id")
		return
	}

	var req struct {
		VendorID string `json:"vendor_id" binding:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	request, err := h.maintenanceService.AssignVendor(id, uuid.MustParse(req.VendorID), userID)
	if err != nil {
		failFor(c, err, "Failed to assign vendor")
		return
	}

	responses.Success(c, http.StatusOK, request, "Vendor assigned successfully")
}
