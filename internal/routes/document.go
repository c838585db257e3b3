package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

type DocumentRoutes struct {
	handler *handlers.DocumentHandler
}

func NewDocumentRoutes(handler *handlers.DocumentHandler) *DocumentRoutes {
	return &DocumentRoutes{handler: handler}
}

func (r *DocumentRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	// Download is public: the signed token in the query string is the
	// authorization.
	router.GET("/documents/download", r.handler.Download)

	documents := router.Group("/documents")
	documents.Use(authenticate)
	{
		documents.POST("", r.handler.UploadDocument)
		documents.GET("", r.handler.ListDocuments)
		documents.GET("/:id", r.handler.GetDocument)
		documents.GET("/:id/url", r.handler.GetDownloadURL)
		documents.DELETE("/:id", r.handler.DeleteDocument)
	}
}
