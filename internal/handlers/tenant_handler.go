package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

type TenantHandler struct {
	tenantService *services.TenantService
}

func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// CreateTenant handles POST /api/v1/tenants
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tenant, err := h.tenantService.Create(userID, req)
	if err != nil {
		failFor(c, err, "Failed to create tenant")
		return
	}

	responses.Success(c, http.StatusCreated, tenant, "Tenant created successfully")
}

// GetTenant handles GET /api/v1/tenants/:id
func (h *TenantHandler) GetTenant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid tenant id")
		return
	}

	tenant, err := h.tenantService.Get(id, userID)
	if err != nil {
		failFor(c, err, "Tenant not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, tenant, "Tenant retrieved successfully")
}

// ListTenants handles GET /api/v1/tenants
func (h *TenantHandler) ListTenants(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	tenants, err := h.tenantService.List(userID)
	if err != nil {
		failFor(c, err, "Failed to retrieve tenants")
		return
	}

	responses.Success(c, http.StatusOK, tenants, "Tenants retrieved successfully")
}

// UpdateTenant handles PATCH /api/v1/tenants/:id
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid tenant id")
		return
	}

	var req services.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tenant, err := h.tenantService.Update(id, userID, req)
	if err != nil {
		failFor(c, err, "Failed to update tenant")
		return
	}

	responses.Success(c, http.StatusOK, tenant, "Tenant updated successfully")
}

// DeleteTenant handles DELETE /api/v1/tenants/:id
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid tenant id")
		return
	}

	if err := h.tenantService.Delete(id, userID); err != nil {
		failFor(c, err, "Tenant not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Tenant deleted successfully")
}
