package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type SystemRoutes struct {
	handler *handlers.SystemHandler
}

func NewSystemRoutes(handler *handlers.SystemHandler) *SystemRoutes {
	return &SystemRoutes{handler: handler}
}

func (r *SystemRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate, requireAdmin gin.HandlerFunc) {
	system := router.Group("/system")
	system.Use(authenticate, requireAdmin)
	{
		system.POST("/billing/run", r.handler.RunBilling)
	}
}
