package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/validators"
)

func TestImportItems_PartialFailureReportsBothTallies(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo, validators.NewRecordValidator())

	result := svc.ImportItems(context.Background(), testTenant, []models.InventoryItem{
		{Name: "Fence posts", Quantity: 40, UnitPrice: 12.50},
		{Name: "", Quantity: 3},
		{Name: "Gate hinges", Quantity: 12, UnitPrice: 4.75},
	})

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Errors, 1)
	assert.Len(t, repo.items, 2)
}

func TestImportItems_StoreFailureNamesTheItem(t *testing.T) {
	repo := &fakeInventoryRepo{failNames: map[string]error{"Gate hinges": assert.AnError}}
	svc := NewInventoryService(repo, validators.NewRecordValidator())

	result := svc.ImportItems(context.Background(), testTenant, []models.InventoryItem{
		{Name: "Fence posts", Quantity: 40},
		{Name: "Gate hinges", Quantity: 12},
	})

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Gate hinges")
}

func TestImportItems_StampsTenantOnStoredItems(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo, validators.NewRecordValidator())

	result := svc.ImportItems(context.Background(), testTenant, []models.InventoryItem{
		{Name: "Fence posts", Quantity: 40},
	})
	require.Equal(t, 1, result.SuccessCount)

	stored := repo.items[0]
	assert.Equal(t, testTenant.UserID, stored.UserID)
	assert.Equal(t, testTenant.OrganizationID, stored.OrganizationID)
}
