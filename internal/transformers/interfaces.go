package transformers

import (
	"time"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/pkg/gis"
)

type PropertyTransformer interface {
	FromParcel(parcel gis.Parcel, tenant models.Tenant, sessionID string, criteria models.SearchCriteria, scrapedAt time.Time) models.ScrapedProperty
	ToSavedProperty(scraped *models.ScrapedProperty, now time.Time) models.SavedProperty
}

type LeadTransformer interface {
	FromSavedProperty(saved *models.SavedProperty) models.Lead
}
