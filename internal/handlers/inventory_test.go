package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/services"
	"landscout-backoffice/internal/validators"
)

type memInventoryRepo struct {
	items []models.InventoryItem
}

func (r *memInventoryRepo) FindAll(ctx context.Context, tenant models.Tenant) ([]models.InventoryItem, error) {
	return r.items, nil
}

func (r *memInventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	item.ID = primitive.NewObjectID()
	r.items = append(r.items, *item)
	return nil
}

func newInventoryRouter(repo *memInventoryRepo) *gin.Engine {
	handler := NewInventoryHandler(services.NewInventoryService(repo, validators.NewRecordValidator()))
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("organization_id", "org-1")
		c.Next()
	})
	router.GET("/api/inventory", handler.GetItems)
	router.POST("/api/inventory/import", handler.ImportItems)
	return router
}

func TestImportEndpoint_PartialFailureEnvelope(t *testing.T) {
	repo := &memInventoryRepo{}
	router := newInventoryRouter(repo)

	payload := `{"items":[
		{"name":"Fence posts","quantity":40,"unit_price":12.5},
		{"name":"","quantity":3},
		{"name":"Gate hinges","quantity":12,"unit_price":4.75}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/import", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result models.BulkImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Errors, 1)
	assert.Len(t, repo.items, 2)
}

func TestImportEndpoint_MalformedBodyReturns400(t *testing.T) {
	router := newInventoryRouter(&memInventoryRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/import", strings.NewReader(`{"items": "nope"`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
