package transformers

import (
	"time"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/pkg/gis"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type propertyTransformer struct{}

func NewPropertyTransformer() PropertyTransformer {
	return &propertyTransformer{}
}

// FromParcel turns one GIS result row into a tenant-scoped scraped record
// tagged with the search session that produced it.
func (t *propertyTransformer) FromParcel(parcel gis.Parcel, tenant models.Tenant, sessionID string, criteria models.SearchCriteria, scrapedAt time.Time) models.ScrapedProperty {
	return models.ScrapedProperty{
		ID:              primitive.NewObjectID(),
		UserID:          tenant.UserID,
		OrganizationID:  tenant.OrganizationID,
		SearchSessionID: sessionID,
		OwnerName:       parcel.OwnerName,
		Address:         parcel.Address,
		City:            parcel.City,
		ZipCode:         parcel.ZipCode,
		Acreage:         parcel.Acreage,
		AssessedValue:   parcel.AssessedValue,
		PropertyType:    parcel.PropertyType,
		ParcelID:        parcel.ParcelID,
		SearchCriteria:  criteria,
		ScrapedAt:       scrapedAt,
		IsSaved:         false,
	}
}

// ToSavedProperty copies the descriptive fields of a scraped record into a
// durable saved record. The back-reference is the scraped id as a string;
// the scraped row may be purged later, so consumers resolve it by lookup.
func (t *propertyTransformer) ToSavedProperty(scraped *models.ScrapedProperty, now time.Time) models.SavedProperty {
	return models.SavedProperty{
		UserID:            scraped.UserID,
		OrganizationID:    scraped.OrganizationID,
		ScrapedPropertyID: scraped.ID.Hex(),
		OwnerName:         scraped.OwnerName,
		Address:           scraped.Address,
		City:              scraped.City,
		ZipCode:           scraped.ZipCode,
		Acreage:           scraped.Acreage,
		AssessedValue:     scraped.AssessedValue,
		PropertyType:      scraped.PropertyType,
		ParcelID:          scraped.ParcelID,
		OriginalScrapedAt: scraped.ScrapedAt,
		ExportedToLeads:   false,
		CreatedAt:         now,
	}
}
