package delivery

import (
	"net/http"
	"strconv"
	"time"

	authdomain "crm-backend/internal/auth/domain"
	emailsyncdomain "crm-backend/internal/emailsync/domain"
	emailsyncdto "crm-backend/internal/emailsync/dto"
	"crm-backend/internal/emailsync/usecase"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncUsecase usecase.SyncUsecase
}

func NewSyncHandler(syncUsecase usecase.SyncUsecase) *SyncHandler {
	return &SyncHandler{syncUsecase: syncUsecase}
}

func currentSyncContext(c *gin.Context) (emailsyncdomain.SyncContext, bool) {
	user, ok := c.MustGet("user").(*authdomain.User)
	if !ok {
		return emailsyncdomain.SyncContext{}, false
	}
	return emailsyncdomain.SyncContext{UserID: user.ID, OrgID: user.OrgID}, true
}

// RunSync runs one synchronous sync pass for the caller's mailboxes. The
// response is always a SyncResult; degraded runs show up as error counts,
// and zero connected mailboxes is a valid empty run.
func (h *SyncHandler) RunSync(c *gin.Context) {
	sctx, ok := currentSyncContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}

	result := h.syncUsecase.RunSync(c.Request.Context(), sctx)
	c.JSON(http.StatusOK, result)
}

func (h *SyncHandler) ListSummaries(c *gin.Context) {
	sctx, ok := currentSyncContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	summaries, err := h.syncUsecase.ListSummaries(sctx.UserID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summaries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

func (h *SyncHandler) ConnectAccount(c *gin.Context) {
	sctx, ok := currentSyncContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}

	var req emailsyncdto.ConnectAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account := &emailsyncdomain.EmailAccount{
		UserID:         sctx.UserID,
		OrgID:          sctx.OrgID,
		Provider:       req.Provider,
		Email:          req.Email,
		AccessToken:    req.AccessToken,
		RefreshToken:   req.RefreshToken,
		TokenExpiresAt: time.Now().Add(time.Duration(req.ExpiresIn) * time.Second),
		SyncEnabled:    true,
	}
	if err := h.syncUsecase.ConnectAccount(account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to connect account"})
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *SyncHandler) ListAccounts(c *gin.Context) {
	sctx, ok := currentSyncContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}

	accounts, err := h.syncUsecase.ListAccounts(sctx.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load accounts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}
