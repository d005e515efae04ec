package router

import (
	"github.com/gin-gonic/gin"

	"telebill/internal/config"
	"telebill/internal/handler"
	"telebill/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	invoiceH *handler.InvoiceHandler,
	statsH *handler.StatsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(&cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Invoice routes
	invoices := v1.Group("/invoices")
	invoices.POST("/import", invoiceH.Import)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.GET("/:id/export", invoiceH.Export)
	invoices.GET("/:id/document", invoiceH.DocumentURL)
	invoices.DELETE("/:id", invoiceH.Delete)

	// Analytics routes
	analytics := v1.Group("/analytics")
	analytics.GET("/monthly-trends", statsH.MonthlyTrends)
	analytics.GET("/cost-centres", statsH.CostCentreTrends)
	analytics.GET("/top-spenders", statsH.TopSpenders)
	analytics.GET("/carrier-comparison", statsH.Comparison)

	// Dashboard
	v1.GET("/stats", statsH.Dashboard)

	return r
}
