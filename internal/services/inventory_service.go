package services

import (
	"context"
	"fmt"
	"time"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/repositories"
	"landscout-backoffice/internal/validators"
)

// InventoryService handles inventory listings and the best-effort bulk
// import. Import is deliberately non-atomic: each item succeeds or fails on
// its own and the result reports both tallies.
type InventoryService struct {
	repo      repositories.InventoryRepository
	validator validators.RecordValidator
}

func NewInventoryService(repo repositories.InventoryRepository, validator validators.RecordValidator) *InventoryService {
	return &InventoryService{
		repo:      repo,
		validator: validator,
	}
}

func (s *InventoryService) GetItems(ctx context.Context, tenant models.Tenant) ([]models.InventoryItem, error) {
	return s.repo.FindAll(ctx, tenant)
}

func (s *InventoryService) ImportItems(ctx context.Context, tenant models.Tenant, items []models.InventoryItem) *models.BulkImportResult {
	result := &models.BulkImportResult{Errors: []string{}}
	now := time.Now()

	for i := range items {
		item := items[i]
		item.UserID = tenant.UserID
		item.OrganizationID = tenant.OrganizationID
		item.CreatedAt = now

		if err := s.validator.ValidateInventoryItem(&item); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("item %q: %v", item.Name, err))
			continue
		}
		if err := s.repo.Create(ctx, &item); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("item %q: %v", item.Name, err))
			continue
		}
		result.SuccessCount++
	}
	return result
}
