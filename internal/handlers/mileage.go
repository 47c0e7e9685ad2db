package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/middleware"
	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/services"
)

type MileageHandler struct {
	mileageService *services.MileageService
}

func NewMileageHandler(mileageService *services.MileageService) *MileageHandler {
	return &MileageHandler{mileageService: mileageService}
}

// GetEntries godoc
// @Summary List mileage log entries
// @Tags Mileage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /mileage [get]
func (h *MileageHandler) GetEntries(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	entries, err := h.mileageService.GetEntries(c.Request.Context(), tenant)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}

// CreateEntry godoc
// @Summary Record a mileage entry
// @Tags Mileage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /mileage [post]
func (h *MileageHandler) CreateEntry(c *gin.Context) {
	var entry models.MileageEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		respondError(c, errors.NewValidationError(errors.MsgInvalidParameters))
		return
	}

	tenant := middleware.TenantFromContext(c)
	if err := h.mileageService.CreateEntry(c.Request.Context(), tenant, &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "entry": entry})
}
