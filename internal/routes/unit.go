package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type UnitRoutes struct {
	handler *handlers.UnitHandler
}

func NewUnitRoutes(handler *handlers.UnitHandler) *UnitRoutes {
	return &UnitRoutes{handler: handler}
}

func (r *UnitRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	// Nested under the owning property for create and list.
	propertyUnits := router.Group("/properties/:id/units")
	propertyUnits.Use(authenticate)
	{
		propertyUnits.POST("", r.handler.CreateUnit)
		propertyUnits.GET("", r.handler.ListUnits)
	}

	units := router.Group("/units")
	units.Use(authenticate)
	{
		units.GET("/:id", r.handler.GetUnit)
		units.PATCH("/:id", r.handler.UpdateUnit)
		units.DELETE("/:id", r.handler.DeleteUnit)
	}
}
