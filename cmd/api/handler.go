package api

import (
	authUsecase "crm-backend/internal/auth/usecase"
	crmDelivery "crm-backend/internal/crm/delivery"
	syncDelivery "crm-backend/internal/emailsync/delivery"
	syncUsecasePkg "crm-backend/internal/emailsync/usecase"
	"crm-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	syncUsecase syncUsecasePkg.SyncUsecase
	crmHandler  *crmDelivery.CRMHandler
	syncHandler *syncDelivery.SyncHandler
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, syncUc syncUsecasePkg.SyncUsecase, crmHandler *crmDelivery.CRMHandler, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		syncUsecase: syncUc,
		crmHandler:  crmHandler,
		syncHandler: syncDelivery.NewSyncHandler(syncUc),
		config:      cfg,
	}
}

// Start builds the router and listens on addr
func (h *Handler) Start(addr string) error {
	r := gin.Default()
	SetupRoutes(r, h.authUsecase, h.syncHandler, h.crmHandler)
	return r.Run(addr)
}
