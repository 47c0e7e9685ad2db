package services

import (
	"context"
	"sync"
	"time"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/repositories"
	"landscout-backoffice/internal/validators"
	"landscout-backoffice/pkg/cache"
	"landscout-backoffice/pkg/dedupe"
)

// CRMDataService fronts the customer and interaction repositories with the
// caching/deduplication layer. Accessors return the cached value when it is
// fresh; a miss or forceRefresh goes through the deduplicator so concurrent
// callers share one repository round trip. Fetch failures propagate to every
// caller and are never cached.
type CRMDataService struct {
	customers    repositories.CustomerRepository
	interactions repositories.InteractionRepository
	validator    validators.RecordValidator
	cache        *cache.Cache
	dedupe       *dedupe.Deduplicator
}

func NewCRMDataService(
	customers repositories.CustomerRepository,
	interactions repositories.InteractionRepository,
	validator validators.RecordValidator,
	c *cache.Cache,
	d *dedupe.Deduplicator,
) *CRMDataService {
	return &CRMDataService{
		customers:    customers,
		interactions: interactions,
		validator:    validator,
		cache:        c,
		dedupe:       d,
	}
}

func (s *CRMDataService) GetCustomers(ctx context.Context, tenant models.Tenant, forceRefresh bool) ([]models.Customer, error) {
	key := cache.ScopedKey(cache.KeyCustomers, tenant.OrganizationID, tenant.UserID)
	if !forceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			return cached.([]models.Customer), nil
		}
	}

	result, err := s.dedupe.Do(key, func() (interface{}, error) {
		return s.customers.FindAll(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	customers := result.([]models.Customer)
	s.cache.Set(key, customers)
	return customers, nil
}

func (s *CRMDataService) GetInteractions(ctx context.Context, tenant models.Tenant, forceRefresh bool) ([]models.Interaction, error) {
	key := cache.ScopedKey(cache.KeyInteractions, tenant.OrganizationID, tenant.UserID)
	if !forceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			return cached.([]models.Interaction), nil
		}
	}

	result, err := s.dedupe.Do(key, func() (interface{}, error) {
		return s.interactions.FindAll(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	interactions := result.([]models.Interaction)
	s.cache.Set(key, interactions)
	return interactions, nil
}

// GetCustomersWithInteractions returns the combined overview, fetching the
// two constituents in parallel on a miss. The constituent fetches run
// through GetCustomers/GetInteractions, so their individual cache entries
// are refreshed alongside the composite one.
func (s *CRMDataService) GetCustomersWithInteractions(ctx context.Context, tenant models.Tenant, forceRefresh bool) (*models.CRMOverview, error) {
	key := cache.ScopedKey(cache.KeyCustomersInteractions, tenant.OrganizationID, tenant.UserID)
	if !forceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(*models.CRMOverview), nil
		}
	}

	var (
		wg           sync.WaitGroup
		customers    []models.Customer
		interactions []models.Interaction
		custErr      error
		intErr       error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		customers, custErr = s.GetCustomers(ctx, tenant, forceRefresh)
	}()
	go func() {
		defer wg.Done()
		interactions, intErr = s.GetInteractions(ctx, tenant, forceRefresh)
	}()
	wg.Wait()

	if custErr != nil {
		return nil, custErr
	}
	if intErr != nil {
		return nil, intErr
	}

	overview := &models.CRMOverview{
		Customers:    customers,
		Interactions: interactions,
	}
	s.cache.Set(key, overview)
	return overview, nil
}

func (s *CRMDataService) InvalidateCustomers(tenant models.Tenant) {
	s.cache.InvalidateScoped(cache.KeyCustomers, tenant.OrganizationID, tenant.UserID)
}

func (s *CRMDataService) InvalidateInteractions(tenant models.Tenant) {
	s.cache.InvalidateScoped(cache.KeyInteractions, tenant.OrganizationID, tenant.UserID)
}

func (s *CRMDataService) InvalidateAll(tenant models.Tenant) {
	s.InvalidateCustomers(tenant)
	s.InvalidateInteractions(tenant)
}

func (s *CRMDataService) CreateCustomer(ctx context.Context, tenant models.Tenant, customer *models.Customer) error {
	if err := s.validator.ValidateCustomer(customer); err != nil {
		return err
	}

	customer.UserID = tenant.UserID
	customer.OrganizationID = tenant.OrganizationID
	customer.CreatedAt = time.Now()
	if err := s.customers.Create(ctx, customer); err != nil {
		return err
	}

	s.InvalidateCustomers(tenant)
	return nil
}

func (s *CRMDataService) CreateInteraction(ctx context.Context, tenant models.Tenant, interaction *models.Interaction) error {
	if err := s.validator.ValidateInteraction(interaction); err != nil {
		return err
	}

	interaction.UserID = tenant.UserID
	interaction.OrganizationID = tenant.OrganizationID
	interaction.CreatedAt = time.Now()
	if err := s.interactions.Create(ctx, interaction); err != nil {
		return err
	}

	s.InvalidateInteractions(tenant)
	return nil
}
