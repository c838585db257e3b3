package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type PaymentRoutes struct {
	handler *handlers.PaymentHandler
}

func NewPaymentRoutes(handler *handlers.PaymentHandler) *PaymentRoutes {
	return &PaymentRoutes{handler: handler}
}

func (r *PaymentRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate, requireAdmin gin.HandlerFunc) {
	payments := router.Group("/payments")
	payments.Use(authenticate)
	{
		payments.GET("", r.handler.ListPayments)
		payments.GET("/:id", r.handler.GetPayment)
		payments.POST("/:id/pay", r.handler.RecordPayment)

		// The generation sweep touches every owner's leases.
		payments.POST("/generate", requireAdmin, r.handler.GenerateDue)
	}
}
