package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"landscout-backoffice/internal/middleware"
	"landscout-backoffice/pkg/database"
	"landscout-backoffice/pkg/logger"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.setupAPIRoutes()
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes
		api.POST("/register", a.UserHandler.Register)
		api.POST("/login", a.UserHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
		{
			gisScraper := protected.Group("/gis-scraper")
			{
				gisScraper.POST("", a.GISHandler.Scrape)
				gisScraper.GET("/properties", a.GISHandler.GetProperties)
				gisScraper.POST("/save-property", a.GISHandler.SaveProperty)
				gisScraper.DELETE("/delete-saved-property", a.GISHandler.DeleteSavedProperty)
				gisScraper.POST("/export-leads", a.GISHandler.ExportLeads)
				gisScraper.POST("/cleanup", a.GISHandler.Cleanup)
			}

			crm := protected.Group("/crm")
			{
				crm.GET("/customers", a.CRMHandler.GetCustomers)
				crm.POST("/customers", a.CRMHandler.CreateCustomer)
				crm.GET("/interactions", a.CRMHandler.GetInteractions)
				crm.POST("/interactions", a.CRMHandler.CreateInteraction)
				crm.GET("/overview", a.CRMHandler.GetOverview)
			}

			protected.GET("/leads", a.LeadHandler.GetLeads)
			protected.POST("/leads", a.LeadHandler.CreateLead)

			transactions := protected.Group("/transactions")
			{
				transactions.GET("", a.TransactionHandler.GetTransactions)
				transactions.POST("", a.TransactionHandler.CreateTransaction)
				transactions.GET("/recurring", a.TransactionHandler.GetRecurringPayments)
				transactions.POST("/recurring", a.TransactionHandler.CreateRecurringPayment)
				transactions.GET("/overview", a.TransactionHandler.GetOverview)
			}

			protected.GET("/mileage", a.MileageHandler.GetEntries)
			protected.POST("/mileage", a.MileageHandler.CreateEntry)

			protected.GET("/inventory", a.InventoryHandler.GetItems)
			protected.POST("/inventory/import", a.InventoryHandler.ImportItems)
		}
	}
}
