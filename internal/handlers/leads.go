package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/middleware"
	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/services"
)

type LeadHandler struct {
	leadService *services.LeadDataService
}

func NewLeadHandler(leadService *services.LeadDataService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// GetLeads godoc
// @Summary List leads
// @Tags Leads
// @Produce json
// @Param refresh query bool false "Bypass the cache" default(false)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /leads [get]
func (h *LeadHandler) GetLeads(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	leads, err := h.leadService.GetLeads(c.Request.Context(), tenant, forceRefresh(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "leads": leads})
}

// CreateLead godoc
// @Summary Create a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		respondError(c, errors.NewValidationError(errors.MsgInvalidParameters))
		return
	}

	tenant := middleware.TenantFromContext(c)
	if err := h.leadService.CreateLead(c.Request.Context(), tenant, &lead); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "lead": lead})
}
