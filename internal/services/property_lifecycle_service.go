package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/repositories"
	"landscout-backoffice/internal/transformers"
	"landscout-backoffice/pkg/gis"
	"landscout-backoffice/pkg/logger"
)

// ScrapedRetention is how long an unsaved scraped property survives before
// normal cleanup purges it.
const ScrapedRetention = 7 * 24 * time.Hour

// PropertyLifecycleService owns the scraped-to-saved-to-lead state machine:
// ingest scraped batches, promote scraped rows to saved, export saved rows
// to the CRM lead pipeline, and purge stale scraped rows.
type PropertyLifecycleService struct {
	scraped   repositories.ScrapedPropertyRepository
	saved     repositories.SavedPropertyRepository
	leads     repositories.LeadRepository
	orgs      repositories.OrganizationRepository
	propTrans transformers.PropertyTransformer
	leadTrans transformers.LeadTransformer
	leadData  *LeadDataService
	now       func() time.Time
}

func NewPropertyLifecycleService(
	scraped repositories.ScrapedPropertyRepository,
	saved repositories.SavedPropertyRepository,
	leads repositories.LeadRepository,
	orgs repositories.OrganizationRepository,
	propTrans transformers.PropertyTransformer,
	leadTrans transformers.LeadTransformer,
	leadData *LeadDataService,
) *PropertyLifecycleService {
	return &PropertyLifecycleService{
		scraped:   scraped,
		saved:     saved,
		leads:     leads,
		orgs:      orgs,
		propTrans: propTrans,
		leadTrans: leadTrans,
		leadData:  leadData,
		now:       time.Now,
	}
}

// IngestScrapedProperties persists one scrape batch under a fresh search
// session id and returns the stored records.
func (s *PropertyLifecycleService) IngestScrapedProperties(ctx context.Context, tenant models.Tenant, criteria models.SearchCriteria, parcels []gis.Parcel) ([]models.ScrapedProperty, string, error) {
	sessionID := uuid.NewString()
	scrapedAt := s.now()

	records := make([]models.ScrapedProperty, 0, len(parcels))
	for _, parcel := range parcels {
		records = append(records, s.propTrans.FromParcel(parcel, tenant, sessionID, criteria, scrapedAt))
	}

	if len(records) > 0 {
		if err := s.scraped.InsertBatch(ctx, records); err != nil {
			return nil, "", err
		}
	}
	return records, sessionID, nil
}

// GetScrapedProperties lists the tenant's scraped rows, optionally filtered
// to one search session.
func (s *PropertyLifecycleService) GetScrapedProperties(ctx context.Context, tenant models.Tenant, sessionID string) ([]models.ScrapedProperty, error) {
	return s.scraped.FindByTenant(ctx, tenant, sessionID)
}

func (s *PropertyLifecycleService) GetSavedProperties(ctx context.Context, tenant models.Tenant) ([]models.SavedProperty, error) {
	return s.saved.FindByTenant(ctx, tenant)
}

// SaveProperty promotes one scraped row to a durable saved record. The
// scraped row is flagged first so cleanup can never purge a row whose saved
// copy exists; if the subsequent insert fails the flag stays set and the row
// is simply retained.
func (s *PropertyLifecycleService) SaveProperty(ctx context.Context, tenant models.Tenant, scrapedID string) (*models.SavedProperty, error) {
	scraped, err := s.scraped.FindByID(ctx, tenant, scrapedID)
	if err != nil {
		return nil, err
	}
	if scraped == nil {
		return nil, errors.NewBusinessError(errors.MsgScrapedNotFound)
	}

	now := s.now()
	if err := s.scraped.MarkSaved(ctx, tenant, scrapedID, now); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NewBusinessError(errors.MsgScrapedNotFound)
		}
		return nil, err
	}

	record := s.propTrans.ToSavedProperty(scraped, now)
	if err := s.saved.Create(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteSavedProperty removes a saved record. Destructive GIS operations
// are gated on the organization's feature entitlements.
func (s *PropertyLifecycleService) DeleteSavedProperty(ctx context.Context, tenant models.Tenant, savedID string) error {
	if err := s.requireGISFeature(ctx, tenant); err != nil {
		return err
	}

	if err := s.saved.Delete(ctx, tenant, savedID); err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.NewBusinessError(errors.MsgSavedNotFound)
		}
		return err
	}
	return nil
}

// ExportSavedPropertyToLead creates a CRM lead from a saved property and
// flags the property as exported. Re-export is allowed and produces another
// lead; the flag records that at least one export happened.
func (s *PropertyLifecycleService) ExportSavedPropertyToLead(ctx context.Context, tenant models.Tenant, savedID string) (*models.Lead, error) {
	saved, err := s.saved.FindByID(ctx, tenant, savedID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, errors.NewBusinessError(errors.MsgSavedNotFound)
	}

	lead := s.leadTrans.FromSavedProperty(saved)
	lead.CreatedAt = s.now()
	if err := s.leads.Create(ctx, &lead); err != nil {
		return nil, err
	}

	if err := s.saved.MarkExported(ctx, tenant, savedID, s.now()); err != nil {
		// The lead exists at this point; surface the flag failure but do
		// not undo the export.
		logger.GlobalLogger.Errorf("export flag update failed for saved property %s: %v", savedID, err)
		return nil, err
	}

	s.leadData.InvalidateLeads(tenant)
	return &lead, nil
}

// Cleanup purges the tenant's scraped rows. Normal mode deletes unsaved
// rows older than the retention window; force deletes every scraped row,
// saved or not, regardless of age.
func (s *PropertyLifecycleService) Cleanup(ctx context.Context, tenant models.Tenant, force bool) (int64, error) {
	if force {
		return s.scraped.DeleteAll(ctx, tenant)
	}
	cutoff := s.now().Add(-ScrapedRetention)
	return s.scraped.DeleteUnsavedBefore(ctx, tenant, cutoff)
}

func (s *PropertyLifecycleService) requireGISFeature(ctx context.Context, tenant models.Tenant) error {
	org, err := s.orgs.FindByID(ctx, tenant.OrganizationID)
	if err != nil {
		return err
	}
	if org == nil {
		return errors.NewEntitlementError(errors.MsgGISFeatureRequired)
	}
	for _, feature := range org.Features {
		if feature == models.FeatureGISScraper {
			return nil
		}
	}
	return errors.NewEntitlementError(errors.MsgGISFeatureRequired)
}
