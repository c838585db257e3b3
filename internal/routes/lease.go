package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type LeaseRoutes struct {
	handler *handlers.LeaseHandler
}

func NewLeaseRoutes(handler *handlers.LeaseHandler) *LeaseRoutes {
	return &LeaseRoutes{handler: handler}
}

func (r *LeaseRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	leases := router.Group("/leases")
	leases.Use(authenticate)
	{
		leases.POST("", r.handler.CreateLease)
		leases.GET("", r.handler.ListLeases)
		leases.GET("/:id", r.handler.GetLease)
		leases.POST("/:id/terminate", r.handler.TerminateLease)
		leases.GET("/:id/schedule", r.handler.GetSchedule)
		leases.POST("/:id/payments/generate", r.handler.GeneratePayments)
	}
}
