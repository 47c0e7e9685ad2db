package services

import (
	"context"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/validators"
	"landscout-backoffice/pkg/gis"
	"landscout-backoffice/pkg/logger"
)

// PropertyFetcher is the slice of the GIS client the scrape flow needs.
type PropertyFetcher interface {
	SearchByAcreage(ctx context.Context, minAcreage, maxAcreage float64) ([]gis.Parcel, error)
}

// ScrapeResult is the outcome of one scrape invocation.
type ScrapeResult struct {
	Properties      []models.ScrapedProperty `json:"properties"`
	Count           int                      `json:"count"`
	SearchCriteria  models.SearchCriteria    `json:"search_criteria"`
	SearchSessionID string                   `json:"search_session_id"`
}

// ScrapeService orchestrates a scrape: validate the criteria, fetch parcels
// from the county source, and hand the batch to the lifecycle service for
// ingestion.
type ScrapeService struct {
	fetcher   PropertyFetcher
	lifecycle *PropertyLifecycleService
	validator validators.ScrapeValidator
}

func NewScrapeService(fetcher PropertyFetcher, lifecycle *PropertyLifecycleService, validator validators.ScrapeValidator) *ScrapeService {
	return &ScrapeService{
		fetcher:   fetcher,
		lifecycle: lifecycle,
		validator: validator,
	}
}

func (s *ScrapeService) Scrape(ctx context.Context, tenant models.Tenant, criteria models.SearchCriteria) (*ScrapeResult, error) {
	if err := s.validator.ValidateCriteria(&criteria); err != nil {
		return nil, err
	}

	parcels, err := s.fetcher.SearchByAcreage(ctx, criteria.MinAcreage, criteria.MaxAcreage)
	if err != nil {
		return nil, err
	}

	properties, sessionID, err := s.lifecycle.IngestScrapedProperties(ctx, tenant, criteria, parcels)
	if err != nil {
		return nil, err
	}

	logger.GlobalLogger.Printf("scrape session %s stored %d properties for org %s", sessionID, len(properties), tenant.OrganizationID)
	return &ScrapeResult{
		Properties:      properties,
		Count:           len(properties),
		SearchCriteria:  criteria,
		SearchSessionID: sessionID,
	}, nil
}
