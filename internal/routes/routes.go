package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/handlers"
)

// Handlers bundles every resource handler for route registration.
type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Property    *handlers.PropertyHandler
	Unit        *handlers.UnitHandler
	Tenant      *handlers.TenantHandler
	Lease       *handlers.LeaseHandler
	Payment     *handlers.PaymentHandler
	Maintenance *handlers.MaintenanceHandler
	Vendor      *handlers.VendorHandler
	Document    *handlers.DocumentHandler
	System      *handlers.SystemHandler
}

// RegisterRoutes mounts the full API under /api/v1. The authenticate and
// requireAdmin middlewares are built by the server and threaded through here.
func RegisterRoutes(router *gin.Engine, h Handlers, authenticate, requireAdmin gin.HandlerFunc) {
	api := router.Group("/api/v1")

	NewAuthRoutes(h.Auth).RegisterRoutes(api, authenticate)
	NewUserRoutes(h.User).RegisterRoutes(api, authenticate)
	NewPropertyRoutes(h.Property).RegisterRoutes(api, authenticate)
	NewUnitRoutes(h.Unit).RegisterRoutes(api, authenticate)
	NewTenantRoutes(h.Tenant).RegisterRoutes(api, authenticate)
	NewLeaseRoutes(h.Lease).RegisterRoutes(api, authenticate)
	NewPaymentRoutes(h.Payment).RegisterRoutes(api, authenticate, requireAdmin)
	NewMaintenanceRoutes(h.Maintenance).RegisterRoutes(api, authenticate)
	NewVendorRoutes(h.Vendor).RegisterRoutes(api, authenticate)
	NewDocumentRoutes(h.Document).RegisterRoutes(api, authenticate)
	NewSystemRoutes(h.System).RegisterRoutes(api, authenticate, requireAdmin)

	healthcheck := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
	router.GET("/", healthcheck)
	router.GET("/health", healthcheck)
}
