package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

type VendorHandler struct {
	vendorService *services.VendorService
}

func NewVendorHandler(vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// CreateVendor handles POST /api/v1/vendors
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.Create(userID, req)
	if err != nil {
		failFor(c, err, "Failed to create vendor")
		return
	}

	responses.Success(c, http.StatusCreated, vendor, "Vendor created successfully")
}

// GetVendor handles GET /api/v1/vendors/:id
func (h *VendorHandler) GetVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid vendor id")
		return
	}

	vendor, err := h.vendorService.Get(id, userID)
	if err != nil {
		failFor(c, err, "Vendor not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, vendor, "Vendor retrieved successfully")
}

// ListVendors handles GET /api/v1/vendors
func (h *VendorHandler) ListVendors(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	vendors, err := h.vendorService.List(userID)
	if err != nil {
		failFor(c, err, "Failed to retrieve vendors")
		return
	}

	responses.Success(c, http.StatusOK, vendors, "Vendors retrieved successfully")
}

// UpdateVendor handles PATCH /api/v1/vendors/:id
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid vendor id")
		return
	}

	var req services.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.Update(id, userID, req)
	if err != nil {
		failFor(c, err, "Failed to update vendor")
		return
	}

	responses.Success(c, http.StatusOK, vendor, "Vendor updated successfully")
}

// DeleteVendor handles DELETE /api/v1/vendors/:id
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid vendor id")
		return
	}

	if err := h.vendorService.Delete(id, userID); err != nil {
		failFor(c, err, "Vendor not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Vendor deleted successfully")
}
