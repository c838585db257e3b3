package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type UserRoutes struct {
	handler *handlers.UserHandler
}

func NewUserRoutes(handler *handlers.UserHandler) *UserRoutes {
	return &UserRoutes{handler: handler}
}

func (r *UserRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	users := router.Group("/users")
	users.Use(authenticate)
	{
		users.GET("/me", r.handler.GetProfile)
		users.PATCH("/me", r.handler.UpdateProfile)
	}
}
