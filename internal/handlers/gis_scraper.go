package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/middleware"
	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/services"
)

type GISScraperHandler struct {
	scrapeService *services.ScrapeService
	lifecycle     *services.PropertyLifecycleService
}

func NewGISScraperHandler(scrapeService *services.ScrapeService, lifecycle *services.PropertyLifecycleService) *GISScraperHandler {
	return &GISScraperHandler{
		scrapeService: scrapeService,
		lifecycle:     lifecycle,
	}
}

type scrapeRequest struct {
	MinAcreage float64 `json:"min_acreage"`
	MaxAcreage float64 `json:"max_acreage"`
}

type savePropertyRequest struct {
	ScrapedPropertyID string `json:"scrapedPropertyId"`
}

type savedPropertyRequest struct {
	SavedPropertyID string `json:"savedPropertyId"`
}

// Scrape godoc
// @Summary Run a GIS parcel scrape
// @Description Scrape the county GIS source for parcels in an acreage range
// @Tags GIS Scraper
// @Accept json
// @Produce json
// @Param request body scrapeRequest true "Acreage range"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /gis-scraper [post]
func (h *GISScraperHandler) Scrape(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(errors.MsgInvalidParameters))
		return
	}

	tenant := middleware.TenantFromContext(c)
	result, err := h.scrapeService.Scrape(c.Request.Context(), tenant, models.SearchCriteria{
		MinAcreage: req.MinAcreage,
		MaxAcreage: req.MaxAcreage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"properties":        result.Properties,
		"count":             result.Count,
		"criteria":          result.SearchCriteria,
		"search_session_id": result.SearchSessionID,
	})
}

// GetProperties godoc
// @Summary List scraped or saved properties
// @Tags GIS Scraper
// @Produce json
// @Param type query string false "scraped or saved" default(scraped)
// @Param session_id query string false "Filter scraped results to one search session"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /gis-scraper/properties [get]
func (h *GISScraperHandler) GetProperties(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)

	propertyType := c.DefaultQuery("type", "scraped")
	switch propertyType {
	case "saved":
		properties, err := h.lifecycle.GetSavedProperties(c.Request.Context(), tenant)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "properties": properties, "type": propertyType, "count": len(properties)})
	case "scraped":
		properties, err := h.lifecycle.GetScrapedProperties(c.Request.Context(), tenant, c.Query("session_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "properties": properties, "type": propertyType, "count": len(properties)})
	default:
		respondError(c, errors.NewValidationError("type must be scraped or saved"))
	}
}

// SaveProperty godoc
// @Summary Promote a scraped property to saved
// @Tags GIS Scraper
// @Accept json
// @Produce json
// @Param request body savePropertyRequest true "Scraped property id"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /gis-scraper/save-property [post]
func (h *GISScraperHandler) SaveProperty(c *gin.Context) {
	var req savePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ScrapedPropertyID == "" {
		respondError(c, errors.NewValidationError("scrapedPropertyId is required"))
		return
	}

	tenant := middleware.TenantFromContext(c)
	saved, err := h.lifecycle.SaveProperty(c.Request.Context(), tenant, req.ScrapedPropertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "savedProperty": saved})
}

// DeleteSavedProperty godoc
// @Summary Delete a saved property
// @Tags GIS Scraper
// @Accept json
// @Produce json
// @Param request body savedPropertyRequest true "Saved property id"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /gis-scraper/delete-saved-property [delete]
func (h *GISScraperHandler) DeleteSavedProperty(c *gin.Context) {
	var req savedPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SavedPropertyID == "" {
		respondError(c, errors.NewValidationError("savedPropertyId is required"))
		return
	}

	tenant := middleware.TenantFromContext(c)
	if err := h.lifecycle.DeleteSavedProperty(c.Request.Context(), tenant, req.SavedPropertyID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Saved property deleted"})
}

// ExportLeads godoc
// @Summary Export a saved property to the lead pipeline
// @Tags GIS Scraper
// @Accept json
// @Produce json
// @Param request body savedPropertyRequest true "Saved property id"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /gis-scraper/export-leads [post]
func (h *GISScraperHandler) ExportLeads(c *gin.Context) {
	var req savedPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SavedPropertyID == "" {
		respondError(c, errors.NewValidationError("savedPropertyId is required"))
		return
	}

	tenant := middleware.TenantFromContext(c)
	lead, err := h.lifecycle.ExportSavedPropertyToLead(c.Request.Context(), tenant, req.SavedPropertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "leadId": lead.ID.Hex()})
}

// Cleanup godoc
// @Summary Purge scraped properties
// @Description Normal mode deletes unsaved rows older than seven days; force deletes every scraped row
// @Tags GIS Scraper
// @Produce json
// @Param force query bool false "Delete all scraped rows regardless of age" default(false)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /gis-scraper/cleanup [post]
func (h *GISScraperHandler) Cleanup(c *gin.Context) {
	force := c.Query("force") == "true"

	tenant := middleware.TenantFromContext(c)
	deleted, err := h.lifecycle.Cleanup(c.Request.Context(), tenant, force)
	if err != nil {
		respondError(c, err)
		return
	}

	message := fmt.Sprintf("Deleted %d stale scraped properties", deleted)
	if force {
		message = fmt.Sprintf("Deleted all %d scraped properties", deleted)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"deleted_count": deleted,
		"message":       message,
	})
}
