package services

import (
	"context"
	"time"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/repositories"
	"landscout-backoffice/internal/validators"
)

// MileageService handles mileage log entries. The log is small and
// append-only, so it reads straight through to the repository.
type MileageService struct {
	repo      repositories.MileageRepository
	validator validators.RecordValidator
}

func NewMileageService(repo repositories.MileageRepository, validator validators.RecordValidator) *MileageService {
	return &MileageService{
		repo:      repo,
		validator: validator,
	}
}

func (s *MileageService) GetEntries(ctx context.Context, tenant models.Tenant) ([]models.MileageEntry, error) {
	return s.repo.FindAll(ctx, tenant)
}

func (s *MileageService) CreateEntry(ctx context.Context, tenant models.Tenant, entry *models.MileageEntry) error {
	if err := s.validator.ValidateMileageEntry(entry); err != nil {
		return err
	}

	entry.UserID = tenant.UserID
	entry.OrganizationID = tenant.OrganizationID
	entry.CreatedAt = time.Now()
	return s.repo.Create(ctx, entry)
}
