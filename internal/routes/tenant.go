package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type TenantRoutes struct {
	handler *handlers.TenantHandler
}

func NewTenantRoutes(handler *handlers.TenantHandler) *TenantRoutes {
	return &TenantRoutes{handler: handler}
}

func (r *TenantRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	tenants := router.Group("/tenants")
	tenants.Use(authenticate)
	{
		tenants.POST("", r.handler.CreateTenant)
		tenants.GET("", r.handler.ListTenants)
		tenants.GET("/:id", r.handler.GetTenant)
		tenants.PATCH("/:id", r.handler.UpdateTenant)
		tenants.DELETE("/:id", r.handler.DeleteTenant)
	}
}
