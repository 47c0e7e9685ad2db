package validators

import (
	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/models"
)

type scrapeValidator struct{}

func NewScrapeValidator() ScrapeValidator {
	return &scrapeValidator{}
}

// ValidateCriteria rejects non-positive acreage bounds and inverted ranges
// before any scrape or persistence call happens.
func (v *scrapeValidator) ValidateCriteria(criteria *models.SearchCriteria) error {
	if criteria.MinAcreage <= 0 || criteria.MaxAcreage <= 0 {
		return errors.NewValidationError(errors.MsgInvalidAcreage)
	}
	if criteria.MinAcreage > criteria.MaxAcreage {
		return errors.NewValidationError(errors.MsgInvalidAcreage)
	}
	return nil
}
