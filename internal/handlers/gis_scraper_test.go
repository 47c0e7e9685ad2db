package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/services"
	"landscout-backoffice/internal/transformers"
	"landscout-backoffice/internal/validators"
	"landscout-backoffice/pkg/cache"
	"landscout-backoffice/pkg/dedupe"
	"landscout-backoffice/pkg/gis"
	"landscout-backoffice/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
	os.Exit(m.Run())
}

// Minimal in-memory repositories backing real services, so handler tests
// exercise the full request path below the router.

type memScrapedRepo struct {
	properties map[string]*models.ScrapedProperty
}

func (r *memScrapedRepo) InsertBatch(ctx context.Context, properties []models.ScrapedProperty) error {
	for i := range properties {
		p := properties[i]
		r.properties[p.ID.Hex()] = &p
	}
	return nil
}

func (r *memScrapedRepo) FindByTenant(ctx context.Context, tenant models.Tenant, sessionID string) ([]models.ScrapedProperty, error) {
	var out []models.ScrapedProperty
	for _, p := range r.properties {
		if sessionID != "" && p.SearchSessionID != sessionID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memScrapedRepo) FindByID(ctx context.Context, tenant models.Tenant, id string) (*models.ScrapedProperty, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *memScrapedRepo) MarkSaved(ctx context.Context, tenant models.Tenant, id string, savedAt time.Time) error {
	p, ok := r.properties[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.IsSaved = true
	p.SavedAt = &savedAt
	return nil
}

func (r *memScrapedRepo) DeleteUnsavedBefore(ctx context.Context, tenant models.Tenant, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, p := range r.properties {
		if !p.IsSaved && p.ScrapedAt.Before(cutoff) {
			delete(r.properties, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memScrapedRepo) DeleteAll(ctx context.Context, tenant models.Tenant) (int64, error) {
	deleted := int64(len(r.properties))
	r.properties = make(map[string]*models.ScrapedProperty)
	return deleted, nil
}

type memSavedRepo struct {
	properties map[string]*models.SavedProperty
}

func (r *memSavedRepo) Create(ctx context.Context, property *models.SavedProperty) error {
	property.ID = primitive.NewObjectID()
	copied := *property
	r.properties[property.ID.Hex()] = &copied
	return nil
}

func (r *memSavedRepo) FindByTenant(ctx context.Context, tenant models.Tenant) ([]models.SavedProperty, error) {
	var out []models.SavedProperty
	for _, p := range r.properties {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memSavedRepo) FindByID(ctx context.Context, tenant models.Tenant, id string) (*models.SavedProperty, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *memSavedRepo) Delete(ctx context.Context, tenant models.Tenant, id string) error {
	if _, ok := r.properties[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.properties, id)
	return nil
}

func (r *memSavedRepo) MarkExported(ctx context.Context, tenant models.Tenant, id string, exportedAt time.Time) error {
	p, ok := r.properties[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.ExportedToLeads = true
	p.ExportedAt = &exportedAt
	return nil
}

type memLeadRepo struct {
	leads []models.Lead
}

func (r *memLeadRepo) FindAll(ctx context.Context, tenant models.Tenant) ([]models.Lead, error) {
	return r.leads, nil
}

func (r *memLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	lead.ID = primitive.NewObjectID()
	r.leads = append(r.leads, *lead)
	return nil
}

type memOrgRepo struct {
	org *models.Organization
}

func (r *memOrgRepo) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	return r.org, nil
}

func (r *memOrgRepo) Create(ctx context.Context, org *models.Organization) error {
	r.org = org
	return nil
}

type stubFetcher struct {
	parcels []gis.Parcel
	err     error
}

func (f *stubFetcher) SearchByAcreage(ctx context.Context, minAcreage, maxAcreage float64) ([]gis.Parcel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.parcels, nil
}

type gisFixture struct {
	router  *gin.Engine
	scraped *memScrapedRepo
	saved   *memSavedRepo
	leads   *memLeadRepo
	orgs    *memOrgRepo
}

func newGISFixture(fetcher *stubFetcher) *gisFixture {
	scraped := &memScrapedRepo{properties: make(map[string]*models.ScrapedProperty)}
	saved := &memSavedRepo{properties: make(map[string]*models.SavedProperty)}
	leads := &memLeadRepo{}
	orgs := &memOrgRepo{org: &models.Organization{Features: []string{models.FeatureGISScraper}}}

	leadData := services.NewLeadDataService(leads, validators.NewRecordValidator(), cache.New(30*time.Second), dedupe.New())
	lifecycle := services.NewPropertyLifecycleService(
		scraped, saved, leads, orgs,
		transformers.NewPropertyTransformer(),
		transformers.NewLeadTransformer(),
		leadData,
	)
	scrape := services.NewScrapeService(fetcher, lifecycle, validators.NewScrapeValidator())
	handler := NewGISScraperHandler(scrape, lifecycle)

	router := gin.New()
	// Simulates what AuthMiddleware stores after token validation.
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("organization_id", "org-1")
		c.Next()
	})
	api := router.Group("/api/gis-scraper")
	{
		api.POST("", handler.Scrape)
		api.GET("/properties", handler.GetProperties)
		api.POST("/save-property", handler.SaveProperty)
		api.DELETE("/delete-saved-property", handler.DeleteSavedProperty)
		api.POST("/export-leads", handler.ExportLeads)
		api.POST("/cleanup", handler.Cleanup)
	}
	return &gisFixture{router: router, scraped: scraped, saved: saved, leads: leads, orgs: orgs}
}

func (f *gisFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestScrapeEndpoint_Success(t *testing.T) {
	f := newGISFixture(&stubFetcher{parcels: []gis.Parcel{
		{ParcelID: "12-034-056", OwnerName: "Smith Family Trust", Acreage: 12.5},
	}})

	w := f.do(http.MethodPost, "/api/gis-scraper", `{"min_acreage":5,"max_acreage":50}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
	assert.NotEmpty(t, body["search_session_id"])
	assert.Len(t, f.scraped.properties, 1)
}

func TestScrapeEndpoint_InvalidRangeReturns400(t *testing.T) {
	cases := []string{
		`{"min_acreage":0,"max_acreage":50}`,
		`{"min_acreage":-1,"max_acreage":50}`,
		`{"min_acreage":5,"max_acreage":0}`,
		`{"min_acreage":50,"max_acreage":5}`,
	}
	for _, payload := range cases {
		f := newGISFixture(&stubFetcher{})
		w := f.do(http.MethodPost, "/api/gis-scraper", payload)
		require.Equal(t, http.StatusBadRequest, w.Code, payload)

		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["error"])
	}
}

func TestScrapeEndpoint_SourceFailureReturns500(t *testing.T) {
	f := newGISFixture(&stubFetcher{err: fmt.Errorf("GIS source unreachable: connection refused")})

	w := f.do(http.MethodPost, "/api/gis-scraper", `{"min_acreage":5,"max_acreage":50}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body["error"], "connection refused", "technical detail stays out of the response")
}

func TestSavePropertyEndpoint_ReturnsSavedProperty(t *testing.T) {
	f := newGISFixture(&stubFetcher{parcels: []gis.Parcel{{ParcelID: "12-034-056", OwnerName: "Smith Family Trust"}}})
	f.do(http.MethodPost, "/api/gis-scraper", `{"min_acreage":5,"max_acreage":50}`)

	var scrapedID string
	for id := range f.scraped.properties {
		scrapedID = id
	}
	w := f.do(http.MethodPost, "/api/gis-scraper/save-property", `{"scrapedPropertyId":"`+scrapedID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	saved, ok := body["savedProperty"].(map[string]interface{})
	require.True(t, ok, "response carries the saved record under savedProperty")
	assert.Equal(t, "12-034-056", saved["parcel_id"])
}

func TestSavePropertyEndpoint_UnknownIDReturns400(t *testing.T) {
	f := newGISFixture(&stubFetcher{})

	w := f.do(http.MethodPost, "/api/gis-scraper/save-property", `{"scrapedPropertyId":"64f000000000000000000000"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Scraped property not found", body["error"])
}

func TestDeleteSavedPropertyEndpoint_WithoutEntitlementReturns403(t *testing.T) {
	f := newGISFixture(&stubFetcher{parcels: []gis.Parcel{{ParcelID: "12-034-056"}}})
	f.do(http.MethodPost, "/api/gis-scraper", `{"min_acreage":5,"max_acreage":50}`)

	var scrapedID string
	for id := range f.scraped.properties {
		scrapedID = id
	}
	w := f.do(http.MethodPost, "/api/gis-scraper/save-property", `{"scrapedPropertyId":"`+scrapedID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var savedID string
	for id := range f.saved.properties {
		savedID = id
	}

	f.orgs.org = &models.Organization{Features: []string{"crm"}}
	w = f.do(http.MethodDelete, "/api/gis-scraper/delete-saved-property", `{"savedPropertyId":"`+savedID+`"}`)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, f.saved.properties, 1)
}

func TestExportLeadsEndpoint_ReturnsLeadID(t *testing.T) {
	f := newGISFixture(&stubFetcher{parcels: []gis.Parcel{{ParcelID: "12-034-056", OwnerName: "Smith Family Trust"}}})
	f.do(http.MethodPost, "/api/gis-scraper", `{"min_acreage":5,"max_acreage":50}`)

	var scrapedID string
	for id := range f.scraped.properties {
		scrapedID = id
	}
	f.do(http.MethodPost, "/api/gis-scraper/save-property", `{"scrapedPropertyId":"`+scrapedID+`"}`)

	var savedID string
	for id := range f.saved.properties {
		savedID = id
	}
	w := f.do(http.MethodPost, "/api/gis-scraper/export-leads", `{"savedPropertyId":"`+savedID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["leadId"])
	assert.Len(t, f.leads.leads, 1)
}

func TestCleanupEndpoint_ForceReportsCount(t *testing.T) {
	f := newGISFixture(&stubFetcher{parcels: []gis.Parcel{{ParcelID: "a"}, {ParcelID: "b"}}})
	f.do(http.MethodPost, "/api/gis-scraper", `{"min_acreage":5,"max_acreage":50}`)

	w := f.do(http.MethodPost, "/api/gis-scraper/cleanup?force=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["deleted_count"])
	assert.Empty(t, f.scraped.properties)
}

func TestGetPropertiesEndpoint_EchoesResolvedType(t *testing.T) {
	f := newGISFixture(&stubFetcher{parcels: []gis.Parcel{{ParcelID: "12-034-056"}}})
	f.do(http.MethodPost, "/api/gis-scraper", `{"min_acreage":5,"max_acreage":50}`)

	w := f.do(http.MethodGet, "/api/gis-scraper/properties", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "scraped", body["type"])
	assert.Equal(t, float64(1), body["count"])

	w = f.do(http.MethodGet, "/api/gis-scraper/properties?type=saved", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "saved", body["type"])
}

func TestGetPropertiesEndpoint_RejectsUnknownType(t *testing.T) {
	f := newGISFixture(&stubFetcher{})

	w := f.do(http.MethodGet, "/api/gis-scraper/properties?type=archived", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
