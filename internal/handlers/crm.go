package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/middleware"
	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/services"
)

type CRMHandler struct {
	crmService *services.CRMDataService
}

func NewCRMHandler(crmService *services.CRMDataService) *CRMHandler {
	return &CRMHandler{crmService: crmService}
}

func forceRefresh(c *gin.Context) bool {
	return c.Query("refresh") == "true"
}

// GetCustomers godoc
// @Summary List customers
// @Tags CRM
// @Produce json
// @Param refresh query bool false "Bypass the cache" default(false)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /crm/customers [get]
func (h *CRMHandler) GetCustomers(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	customers, err := h.crmService.GetCustomers(c.Request.Context(), tenant, forceRefresh(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customers": customers})
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags CRM
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /crm/customers [post]
func (h *CRMHandler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		respondError(c, errors.NewValidationError(errors.MsgInvalidParameters))
		return
	}

	tenant := middleware.TenantFromContext(c)
	if err := h.crmService.CreateCustomer(c.Request.Context(), tenant, &customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "customer": customer})
}

// GetInteractions godoc
// @Summary List customer interactions
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /crm/interactions [get]
func (h *CRMHandler) GetInteractions(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	interactions, err := h.crmService.GetInteractions(c.Request.Context(), tenant, forceRefresh(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "interactions": interactions})
}

// CreateInteraction godoc
// @Summary Record a customer interaction
// @Tags CRM
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /crm/interactions [post]
func (h *CRMHandler) CreateInteraction(c *gin.Context) {
	var interaction models.Interaction
	if err := c.ShouldBindJSON(&interaction); err != nil {
		respondError(c, errors.NewValidationError(errors.MsgInvalidParameters))
		return
	}

	tenant := middleware.TenantFromContext(c)
	if err := h.crmService.CreateInteraction(c.Request.Context(), tenant, &interaction); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "interaction": interaction})
}

// GetOverview godoc
// @Summary Combined customers and interactions view
// @Tags CRM
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /crm/overview [get]
func (h *CRMHandler) GetOverview(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	overview, err := h.crmService.GetCustomersWithInteractions(c.Request.Context(), tenant, forceRefresh(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "overview": overview})
}
