package services

import (
	"context"
	"time"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/repositories"
	"landscout-backoffice/internal/validators"
	"landscout-backoffice/pkg/cache"
	"landscout-backoffice/pkg/dedupe"
)

// LeadDataService fronts the lead repository with the caching layer. The
// lifecycle service also writes leads (property export) and invalidates
// through InvalidateLeads so the next read refetches.
type LeadDataService struct {
	leads     repositories.LeadRepository
	validator validators.RecordValidator
	cache     *cache.Cache
	dedupe    *dedupe.Deduplicator
}

func NewLeadDataService(
	leads repositories.LeadRepository,
	validator validators.RecordValidator,
	c *cache.Cache,
	d *dedupe.Deduplicator,
) *LeadDataService {
	return &LeadDataService{
		leads:     leads,
		validator: validator,
		cache:     c,
		dedupe:    d,
	}
}

func (s *LeadDataService) GetLeads(ctx context.Context, tenant models.Tenant, forceRefresh bool) ([]models.Lead, error) {
	key := cache.ScopedKey(cache.KeyLeads, tenant.OrganizationID, tenant.UserID)
	if !forceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			return cached.([]models.Lead), nil
		}
	}

	result, err := s.dedupe.Do(key, func() (interface{}, error) {
		return s.leads.FindAll(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	leads := result.([]models.Lead)
	s.cache.Set(key, leads)
	return leads, nil
}

func (s *LeadDataService) CreateLead(ctx context.Context, tenant models.Tenant, lead *models.Lead) error {
	if err := s.validator.ValidateLead(lead); err != nil {
		return err
	}

	lead.UserID = tenant.UserID
	lead.OrganizationID = tenant.OrganizationID
	if lead.Source == "" {
		lead.Source = models.LeadSourceManual
	}
	if lead.Status == "" {
		lead.Status = "new"
	}
	lead.CreatedAt = time.Now()
	if err := s.leads.Create(ctx, lead); err != nil {
		return err
	}

	s.InvalidateLeads(tenant)
	return nil
}

func (s *LeadDataService) InvalidateLeads(tenant models.Tenant) {
	s.cache.InvalidateScoped(cache.KeyLeads, tenant.OrganizationID, tenant.UserID)
}
