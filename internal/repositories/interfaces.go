package repositories

import (
	"context"
	"time"

	"landscout-backoffice/internal/models"
)

type ScrapedPropertyRepository interface {
	InsertBatch(ctx context.Context, properties []models.ScrapedProperty) error
	FindByTenant(ctx context.Context, tenant models.Tenant, sessionID string) ([]models.ScrapedProperty, error)
	FindByID(ctx context.Context, tenant models.Tenant, id string) (*models.ScrapedProperty, error)
	MarkSaved(ctx context.Context, tenant models.Tenant, id string, savedAt time.Time) error
	DeleteUnsavedBefore(ctx context.Context, tenant models.Tenant, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context, tenant models.Tenant) (int64, error)
}

type SavedPropertyRepository interface {
	Create(ctx context.Context, property *models.SavedProperty) error
	FindByTenant(ctx context.Context, tenant models.Tenant) ([]models.SavedProperty, error)
	FindByID(ctx context.Context, tenant models.Tenant, id string) (*models.SavedProperty, error)
	Delete(ctx context.Context, tenant models.Tenant, id string) error
	MarkExported(ctx context.Context, tenant models.Tenant, id string, exportedAt time.Time) error
}

type CustomerRepository interface {
	FindAll(ctx context.Context, tenant models.Tenant) ([]models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
}

type InteractionRepository interface {
	FindAll(ctx context.Context, tenant models.Tenant) ([]models.Interaction, error)
	Create(ctx context.Context, interaction *models.Interaction) error
}

type LeadRepository interface {
	FindAll(ctx context.Context, tenant models.Tenant) ([]models.Lead, error)
	Create(ctx context.Context, lead *models.Lead) error
}

type TransactionRepository interface {
	FindAll(ctx context.Context, tenant models.Tenant) ([]models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) error
}

type RecurringPaymentRepository interface {
	FindAll(ctx context.Context, tenant models.Tenant) ([]models.RecurringPayment, error)
	Create(ctx context.Context, payment *models.RecurringPayment) error
}

type MileageRepository interface {
	FindAll(ctx context.Context, tenant models.Tenant) ([]models.MileageEntry, error)
	Create(ctx context.Context, entry *models.MileageEntry) error
}

type InventoryRepository interface {
	FindAll(ctx context.Context, tenant models.Tenant) ([]models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type OrganizationRepository interface {
	FindByID(ctx context.Context, id string) (*models.Organization, error)
	Create(ctx context.Context, org *models.Organization) error
}
