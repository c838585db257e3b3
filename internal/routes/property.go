package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type PropertyRoutes struct {
	handler *handlers.PropertyHandler
}

func NewPropertyRoutes(handler *handlers.PropertyHandler) *PropertyRoutes {
	return &PropertyRoutes{handler: handler}
}

func (r *PropertyRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	properties := router.Group("/properties")
	properties.Use(authenticate)
	{
		properties.POST("", r.handler.CreateProperty)
		properties.GET("", r.handler.ListProperties)
		properties.GET("/:id", r.handler.GetProperty)
		properties.PATCH("/:id", r.handler.UpdateProperty)
		properties.DELETE("/:id", r.handler.DeleteProperty)
	}
}
