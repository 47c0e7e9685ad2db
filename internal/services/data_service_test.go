package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/validators"
	"landscout-backoffice/pkg/cache"
	"landscout-backoffice/pkg/dedupe"
)

var testTenant = models.Tenant{UserID: "user-1", OrganizationID: "org-1"}

func newCRMService(customers *fakeCustomerRepo, interactions *fakeInteractionRepo) *CRMDataService {
	return NewCRMDataService(customers, interactions, validators.NewRecordValidator(), cache.New(30*time.Second), dedupe.New())
}

func TestGetCustomers_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []models.Customer{{Name: "Ada"}}}
	svc := newCRMService(repo, &fakeInteractionRepo{})

	first, err := svc.GetCustomers(context.Background(), testTenant, false)
	require.NoError(t, err)
	second, err := svc.GetCustomers(context.Background(), testTenant, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.findCalls)
}

func TestGetCustomers_ForceRefreshBypassesCache(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := newCRMService(repo, &fakeInteractionRepo{})

	_, err := svc.GetCustomers(context.Background(), testTenant, false)
	require.NoError(t, err)
	_, err = svc.GetCustomers(context.Background(), testTenant, true)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.findCalls)
}

func TestGetCustomers_FailureIsNotCached(t *testing.T) {
	repo := &fakeCustomerRepo{findErr: fmt.Errorf("connection reset")}
	svc := newCRMService(repo, &fakeInteractionRepo{})

	_, err := svc.GetCustomers(context.Background(), testTenant, false)
	require.Error(t, err)

	// The backend recovers; the next call must reach it rather than
	// replay the failure or a stale value.
	repo.findErr = nil
	repo.customers = []models.Customer{{Name: "Ada"}}
	customers, err := svc.GetCustomers(context.Background(), testTenant, false)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
	assert.Equal(t, 2, repo.findCalls)
}

func TestGetCustomers_TenantsDoNotShareEntries(t *testing.T) {
	repo := &fakeCustomerRepo{}
	svc := newCRMService(repo, &fakeInteractionRepo{})
	other := models.Tenant{UserID: "user-2", OrganizationID: "org-2"}

	_, err := svc.GetCustomers(context.Background(), testTenant, false)
	require.NoError(t, err)
	_, err = svc.GetCustomers(context.Background(), other, false)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.findCalls)
}

func TestGetCustomersWithInteractions_CachesComposite(t *testing.T) {
	customers := &fakeCustomerRepo{customers: []models.Customer{{Name: "Ada"}}}
	interactions := &fakeInteractionRepo{interactions: []models.Interaction{{Type: "call"}}}
	svc := newCRMService(customers, interactions)

	overview, err := svc.GetCustomersWithInteractions(context.Background(), testTenant, false)
	require.NoError(t, err)
	assert.Len(t, overview.Customers, 1)
	assert.Len(t, overview.Interactions, 1)

	_, err = svc.GetCustomersWithInteractions(context.Background(), testTenant, false)
	require.NoError(t, err)
	assert.Equal(t, 1, customers.findCalls)
	assert.Equal(t, 1, interactions.findCalls)
}

func TestCreateCustomer_InvalidatesCustomersAndComposite(t *testing.T) {
	customers := &fakeCustomerRepo{}
	interactions := &fakeInteractionRepo{}
	svc := newCRMService(customers, interactions)
	ctx := context.Background()

	_, err := svc.GetCustomersWithInteractions(ctx, testTenant, false)
	require.NoError(t, err)

	err = svc.CreateCustomer(ctx, testTenant, &models.Customer{Name: "Grace"})
	require.NoError(t, err)

	// Customers and the composite refetch; interactions stay cached.
	overview, err := svc.GetCustomersWithInteractions(ctx, testTenant, false)
	require.NoError(t, err)
	assert.Len(t, overview.Customers, 1)
	assert.Equal(t, 2, customers.findCalls)
	assert.Equal(t, 1, interactions.findCalls)
}

func TestCreateCustomer_RejectsMissingName(t *testing.T) {
	svc := newCRMService(&fakeCustomerRepo{}, &fakeInteractionRepo{})

	err := svc.CreateCustomer(context.Background(), testTenant, &models.Customer{})
	require.Error(t, err)
}

func TestGetLeads_CachesAndInvalidates(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadDataService(repo, validators.NewRecordValidator(), cache.New(30*time.Second), dedupe.New())
	ctx := context.Background()

	_, err := svc.GetLeads(ctx, testTenant, false)
	require.NoError(t, err)
	_, err = svc.GetLeads(ctx, testTenant, false)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findCalls)

	err = svc.CreateLead(ctx, testTenant, &models.Lead{Name: "New Lead"})
	require.NoError(t, err)

	leads, err := svc.GetLeads(ctx, testTenant, false)
	require.NoError(t, err)
	assert.Len(t, leads, 1)
	assert.Equal(t, models.LeadSourceManual, leads[0].Source)
	assert.Equal(t, 2, repo.findCalls)
}

func TestGetBooksOverview_CachesComposite(t *testing.T) {
	transactions := &fakeTransactionRepo{transactions: []models.Transaction{{Description: "rent", Type: "expense"}}}
	recurring := &fakeRecurringRepo{}
	svc := NewTransactionDataService(transactions, recurring, validators.NewRecordValidator(), cache.New(30*time.Second), dedupe.New())
	ctx := context.Background()

	overview, err := svc.GetBooksOverview(ctx, testTenant, false)
	require.NoError(t, err)
	assert.Len(t, overview.Transactions, 1)

	_, err = svc.GetBooksOverview(ctx, testTenant, false)
	require.NoError(t, err)
	assert.Equal(t, 1, transactions.findCalls)
	assert.Equal(t, 1, recurring.findCalls)
}

func TestCreateTransaction_InvalidatesOverview(t *testing.T) {
	transactions := &fakeTransactionRepo{}
	recurring := &fakeRecurringRepo{}
	svc := NewTransactionDataService(transactions, recurring, validators.NewRecordValidator(), cache.New(30*time.Second), dedupe.New())
	ctx := context.Background()

	_, err := svc.GetBooksOverview(ctx, testTenant, false)
	require.NoError(t, err)

	err = svc.CreateTransaction(ctx, testTenant, &models.Transaction{Description: "sale", Type: "income", Amount: 100})
	require.NoError(t, err)

	overview, err := svc.GetBooksOverview(ctx, testTenant, false)
	require.NoError(t, err)
	assert.Len(t, overview.Transactions, 1)
	assert.Equal(t, 2, transactions.findCalls)
	assert.Equal(t, 1, recurring.findCalls)
}
