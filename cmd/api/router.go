package api

import (
	"net/http"

	"crm-backend/internal/auth/delivery"
	authUsecase "crm-backend/internal/auth/usecase"
	crmDelivery "crm-backend/internal/crm/delivery"
	syncDelivery "crm-backend/internal/emailsync/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, syncHandler *syncDelivery.SyncHandler, crmHandler *crmDelivery.CRMHandler) {
	authHandler := delivery.NewAuthHandler(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Email sync routes (protected)
		sync := api.Group("/email-sync")
		sync.Use(delivery.AuthMiddleware(authUc))
		{
			sync.POST("/run", syncHandler.RunSync)
			sync.GET("/summaries", syncHandler.ListSummaries)
			sync.POST("/accounts", syncHandler.ConnectAccount)
			sync.GET("/accounts", syncHandler.ListAccounts)
		}

		// CRM routes (protected)
		crm := api.Group("/crm")
		crm.Use(delivery.AuthMiddleware(authUc))
		{
			crm.GET("/contacts", crmHandler.ListContacts)
			crm.POST("/contacts", crmHandler.CreateContact)
			crm.GET("/deals", crmHandler.ListDeals)
			crm.POST("/deals", crmHandler.CreateDeal)
			crm.GET("/investors", crmHandler.ListInvestors)
			crm.POST("/investors", crmHandler.CreateInvestor)
		}
	}
}
