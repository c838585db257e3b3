package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type MaintenanceRoutes struct {
	handler *handlers.MaintenanceHandler
}

func NewMaintenanceRoutes(handler *handlers.MaintenanceHandler) *MaintenanceRoutes {
	return &MaintenanceRoutes{handler: handler}
}

func (r *MaintenanceRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	maintenance := router.Group("/maintenance")
	maintenance.Use(authenticate)
	{
		maintenance.POST("", r.handler.CreateRequest)
		maintenance.GET("", r.handler.ListRequests)
		maintenance.GET("/:id", r.handler.GetRequest)
		maintenance.PATCH("/:id", r.handler.UpdateRequest)
		maintenance.POST("/:id/status", r.handler.SetStatus)
		maintenance.POST("/:id/assign", r.handler.AssignVendor)
	}
}
