package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ListPayments handles GET /api/v1/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	filter := repositories.PaymentFilter{
		Status: c.Query("status"),
	}
	if v := c.Query("lease_id"); v != "" {
		filter.LeaseID, _ = uuid.Parse(v)
	}

	payments, err := h.paymentService.List(userID, filter)
	if err != nil {
		failFor(c, err, "Failed to retrieve payments")
		return
	}

	responses.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// GetPayment handles GET /api/v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid payment id")
		return
	}

	payment, err := h.paymentService.Get(id, userID)
	if err != nil {
		failFor(c, err, "Payment not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, payment, "Payment retrieved successfully")
}

// RecordPayment handles POST /api/v1/payments/:id/pay
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid payment id")
		return
	}

	var req services.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	payment, err := h.paymentService.RecordPayment(id, userID, req)
	if err != nil {
		failFor(c, err, "Failed to record payment")
		return
	}

	responses.Success(c, http.StatusOK, payment, "Payment recorded successfully")
}

// GenerateDue handles POST /api/v1/payments/generate
func (h *PaymentHandler) GenerateDue(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	summary, err := h.paymentService.GenerateDue(c.Request.Context())
	if err != nil {
		failFor(c, err, "Failed to generate payments")
		return
	}

	responses.Success(c, http.StatusOK, summary, "Payments generated successfully")
}
