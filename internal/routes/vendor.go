package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type VendorRoutes struct {
	handler *handlers.VendorHandler
}

func NewVendorRoutes(handler *handlers.VendorHandler) *VendorRoutes {
	return &VendorRoutes{handler: handler}
}

func (r *VendorRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	vendors := router.Group("/vendors")
	vendors.Use(authenticate)
	{
		vendors.POST("", r.handler.CreateVendor)
		vendors.GET("", r.handler.ListVendors)
		vendors.GET("/:id", r.handler.GetVendor)
		vendors.PATCH("/:id", r.handler.UpdateVendor)
		vendors.DELETE("/:id", r.handler.DeleteVendor)
	}
}
