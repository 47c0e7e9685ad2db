package transformers

import (
	"fmt"

	"landscout-backoffice/internal/models"
)

type leadTransformer struct{}

func NewLeadTransformer() LeadTransformer {
	return &leadTransformer{}
}

// FromSavedProperty builds the CRM lead a saved property exports into.
func (t *leadTransformer) FromSavedProperty(saved *models.SavedProperty) models.Lead {
	return models.Lead{
		UserID:         saved.UserID,
		OrganizationID: saved.OrganizationID,
		Name:           saved.OwnerName,
		Address:        fmt.Sprintf("%s, %s %s", saved.Address, saved.City, saved.ZipCode),
		Source:         models.LeadSourceGISScraper,
		Status:         "new",
		Notes: fmt.Sprintf("Parcel %s, %.2f acres, assessed at $%.2f (%s)",
			saved.ParcelID, saved.Acreage, saved.AssessedValue, saved.PropertyType),
	}
}
