package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/middleware"
	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/services"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GetItems godoc
// @Summary List inventory items
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /inventory [get]
func (h *InventoryHandler) GetItems(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	items, err := h.inventoryService.GetItems(c.Request.Context(), tenant)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

type importRequest struct {
	Items []models.InventoryItem `json:"items"`
}

// ImportItems godoc
// @Summary Bulk-import inventory items
// @Description Best-effort batch: each item succeeds or fails on its own
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body importRequest true "Items to import"
// @Security BearerAuth
// @Success 200 {object} models.BulkImportResult
// @Failure 400 {object} map[string]interface{}
// @Router /inventory/import [post]
func (h *InventoryHandler) ImportItems(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(errors.MsgInvalidParameters))
		return
	}

	tenant := middleware.TenantFromContext(c)
	result := h.inventoryService.ImportItems(c.Request.Context(), tenant, req.Items)
	c.JSON(http.StatusOK, result)
}
