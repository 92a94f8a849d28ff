package delivery

import (
	"net/http"

	authdomain "crm-backend/internal/auth/domain"
	crmdomain "crm-backend/internal/crm/domain"
	crmrepo "crm-backend/internal/crm/repository"

	"github.com/gin-gonic/gin"
)

// CRMHandler serves the thin CRUD surface for contacts, deals, and investors
type CRMHandler struct {
	contactRepo  crmrepo.ContactRepository
	dealRepo     crmrepo.DealRepository
	investorRepo crmrepo.InvestorRepository
}

func NewCRMHandler(contactRepo crmrepo.ContactRepository, dealRepo crmrepo.DealRepository, investorRepo crmrepo.InvestorRepository) *CRMHandler {
	return &CRMHandler{
		contactRepo:  contactRepo,
		dealRepo:     dealRepo,
		investorRepo: investorRepo,
	}
}

func currentOwner(c *gin.Context) (string, *string, bool) {
	user, ok := c.MustGet("user").(*authdomain.User)
	if !ok {
		return "", nil, false
	}
	return user.ID, user.OrgID, true
}

func (h *CRMHandler) ListContacts(c *gin.Context) {
	userID, orgID, ok := currentOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}
	contacts, err := h.contactRepo.List(userID, orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *CRMHandler) CreateContact(c *gin.Context) {
	userID, orgID, ok := currentOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}
	var contact crmdomain.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contact.UserID = userID
	contact.OrgID = orgID
	if err := h.contactRepo.Create(&contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create contact"})
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *CRMHandler) ListDeals(c *gin.Context) {
	userID, orgID, ok := currentOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}
	deals, err := h.dealRepo.List(userID, orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load deals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": deals})
}

func (h *CRMHandler) CreateDeal(c *gin.Context) {
	userID, orgID, ok := currentOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}
	var deal crmdomain.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deal.UserID = userID
	deal.OrgID = orgID
	if err := h.dealRepo.Create(&deal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create deal"})
		return
	}
	c.JSON(http.StatusCreated, deal)
}

func (h *CRMHandler) ListInvestors(c *gin.Context) {
	userID, orgID, ok := currentOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}
	investors, err := h.investorRepo.List(userID, orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load investors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"investors": investors})
}

func (h *CRMHandler) CreateInvestor(c *gin.Context) {
	userID, orgID, ok := currentOwner(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user in context"})
		return
	}
	var investor crmdomain.Investor
	if err := c.ShouldBindJSON(&investor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	investor.UserID = userID
	investor.OrgID = orgID
	if err := h.investorRepo.Create(&investor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create investor"})
		return
	}
	c.JSON(http.StatusCreated, investor)
}
