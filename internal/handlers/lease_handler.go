package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

type LeaseHandler struct {
	leaseService   *services.LeaseService
	paymentService *services.PaymentService
}

func NewLeaseHandler(leaseService *services.LeaseService, paymentService *services.PaymentService) *LeaseHandler {
	return &LeaseHandler{leaseService: leaseService, paymentService: paymentService}
}

// CreateLease handles POST /api/v1/leases
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	lease, err := h.leaseService.Create(userID, req)
	if err != nil {
		failFor(c, err, "Failed to create lease")
		return
	}

	responses.Success(c, http.StatusCreated, lease, "Lease created successfully")
}

// GetLease handles GET /api/v1/leases/:id
func (h *LeaseHandler) GetLease(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid lease id")
		return
	}

	lease, err := h.leaseService.Get(id, userID)
	if err != nil {
		failFor(c, err, "Lease not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, lease, "Lease retrieved successfully")
}

// ListLeases handles GET /api/v1/leases
func (h *LeaseHandler) ListLeases(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	filter := repositories.LeaseFilter{
		Status: c.Query("status"),
	}
	if v := c.Query("unit_id"); v != "" {
		filter.UnitID, _ = uuid.Parse(v)
	}
	if v := c.Query("tenant_id"); v != "" {
		filter.TenantID, _ = uuid.Parse(v)
	}

	leases, err := h.leaseService.List(userID, filter)
	if err != nil {
		failFor(c, err, "Failed to retrieve leases")
		return
	}

	responses.Success(c, http.StatusOK, leases, "Leases retrieved successfully")
}

// TerminateLease handles POST /api/v1/leases/:id/terminate
func (h *LeaseHandler) TerminateLease(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid lease id")
		return
	}

	lease, err := h.leaseService.Terminate(id, userID)
	if err != nil {
		failFor(c, err, "Failed to terminate lease")
		return
	}

	responses.Success(c, http.StatusOK, lease, "Lease terminated successfully")
}

// GetSchedule handles GET /api/v1/leases/:id/schedule
func (h *LeaseHandler) GetSchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid lease id")
		return
	}

	periods, err := h.leaseService.Schedule(id, userID)
	if err != nil {
		failFor(c, err, "Lease not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, periods, "Schedule retrieved successfully")
}

// GeneratePayments handles POST /api/v1/leases/:id/payments/generate
func (h *LeaseHandler) GeneratePayments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid lease id")
		return
	}

	created, err := h.paymentService.GenerateForLease(id, userID)
	if err != nil {
		failFor(c, err, "Failed to generate payments")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"payments_created": created}, "Payments generated successfully")
}
